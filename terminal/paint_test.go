package terminal_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tekugo/vellum"
	"github.com/tekugo/vellum/terminal"
)

func TestPaintFillsBorderAndText(t *testing.T) {
	doc := vellum.NewDocument()
	r := vellum.NewReconciler(doc)
	root := doc.Root()
	r.Mount(vellum.Element{
		Tag:   vellum.SymDiv,
		Child: vellum.Text("hi"),
	}, root, vellum.NoNode)

	st := vellum.NewStylist()
	st.AddStylesheet(vellum.ParseStylesheet(`
		div { width: 10c; height: 3c; background-color: blue; color: white; border-style: solid; }
	`))
	vellum.RunFrame(doc, st, root, vellum.Size{Width: 80, Height: 24}, vellum.LayoutOptions{})

	surface := terminal.NewRecordingSurface(80, 24)
	terminal.Paint(doc, surface)

	// The document root is a div too, so it matches the rule and is
	// painted first; each fill covers the border box (10x3 content plus
	// a one-cell border on every side).
	require.Len(t, surface.Fills, 2)
	require.Equal(t, 12, surface.Fills[0].Width)
	require.Equal(t, 5, surface.Fills[0].Height)

	require.Len(t, surface.Borders, 2)
	require.Equal(t, vellum.KeywordSolid, surface.Borders[0].Style)

	require.Len(t, surface.Texts, 1)
	require.Equal(t, "hi", surface.Texts[0].Text)

	require.Equal(t, 1, surface.Flushes)
}

func TestPaintSkipsDisplayNone(t *testing.T) {
	doc := vellum.NewDocument()
	r := vellum.NewReconciler(doc)
	root := doc.Root()
	r.Mount(vellum.Element{Tag: vellum.SymDiv, Child: vellum.Text("hidden")}, root, vellum.NoNode)

	st := vellum.NewStylist()
	st.AddStylesheet(vellum.ParseStylesheet(`div { display: none; }`))
	vellum.RunFrame(doc, st, root, vellum.Size{Width: 80, Height: 24}, vellum.LayoutOptions{})

	surface := terminal.NewRecordingSurface(80, 24)
	terminal.Paint(doc, surface)

	require.Empty(t, surface.Fills)
}
