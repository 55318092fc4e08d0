package vellum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRestyleTreeAppliesCascadeAndInheritance(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()
	r.Mount(Element{Tag: SymDiv, ID: Intern("app"), Child: Element{Tag: SymSpan, Child: Text("hi")}}, root, NoNode)

	sheet := ParseStylesheet(`#app { color: red; } span { background-color: blue; }`)
	st := NewStylist()
	st.AddStylesheet(sheet)

	doc.RestyleTree(st, root)

	app := doc.Children(root)[0]
	span := doc.Children(app)[0]

	appStyle := doc.ComputedStyle(app)
	require.NotNil(t, appStyle)
	red, _ := ParseColor("red")
	require.Equal(t, red, appStyle.Color)

	spanStyle := doc.ComputedStyle(span)
	require.NotNil(t, spanStyle)
	blue, _ := ParseColor("blue")
	require.Equal(t, blue, spanStyle.BackgroundColor)
	require.Equal(t, red, spanStyle.Color, "color inherits from the div")
}

func TestRunFrameStylesAndLaysOutInOnePass(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()
	r.Mount(Element{Tag: SymDiv, Child: Text("x")}, root, NoNode)

	st := NewStylist()
	st.AddStylesheet(ParseStylesheet(`div { width: 10c; height: 2c; }`))

	RunFrame(doc, st, root, Size{Width: 80, Height: 24}, LayoutOptions{})

	div := doc.Children(root)[0]
	require.NotNil(t, doc.ComputedStyle(div))
	l := doc.NodeLayout(div)
	require.Equal(t, 10, l.BorderBoxSize().Width)
	require.Equal(t, 2, l.BorderBoxSize().Height)
}
