package vellum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderSingleChildBecomesElementChild(t *testing.T) {
	v := NewBuilder().
		Div().ID("app").
		Text("hello").
		End().
		Build()

	doc, r := newReconciler()
	root := doc.Root()
	r.Mount(v, root, NoNode)

	app := doc.Children(root)[0]
	require.Equal(t, SymDiv, doc.Tag(app))
	require.Equal(t, Intern("app"), doc.ElementID(app))
	require.Equal(t, "hello", doc.Text(doc.FirstChild(app)))
}

func TestBuilderMultipleChildrenBecomeFragment(t *testing.T) {
	v := NewBuilder().
		Div().
		Span().Text("a").End().
		Span().Text("b").End().
		End().
		Build()

	doc, r := newReconciler()
	root := doc.Root()
	r.Mount(v, root, NoNode)

	outer := doc.Children(root)[0]
	children := doc.Children(outer)
	require.Len(t, children, 2)
	require.Equal(t, "a", doc.Text(doc.FirstChild(children[0])))
	require.Equal(t, "b", doc.Text(doc.FirstChild(children[1])))
}

func TestBuilderClassAndAttr(t *testing.T) {
	v := NewBuilder().
		Div().Class("header", "sticky").Attr("role", "banner").
		End().
		Build()

	doc, r := newReconciler()
	root := doc.Root()
	r.Mount(v, root, NoNode)

	el := doc.Children(root)[0]
	require.True(t, doc.HasClass(el, Intern("header")))
	require.True(t, doc.HasClass(el, Intern("sticky")))
	role, ok := doc.Attribute(el, Intern("role"))
	require.True(t, ok)
	require.Equal(t, "banner", role)
}

func TestBuilderAddAcceptsArbitraryView(t *testing.T) {
	v := NewBuilder().
		Div().
		Add(ShowIf(true, Text("shown"))).
		End().
		Build()

	doc, r := newReconciler()
	root := doc.Root()
	r.Mount(v, root, NoNode)

	el := doc.Children(root)[0]
	children := doc.Children(el)
	require.Equal(t, "shown", doc.Text(children[0]))
	require.Equal(t, KindMarker, doc.Kind(children[1]))
}

func TestBuilderWithComposesReusableFragments(t *testing.T) {
	row := func(b *Builder) {
		b.Span().Text("row").End()
	}

	v := NewBuilder().
		Div().
		With(row).
		End().
		Build()

	doc, r := newReconciler()
	root := doc.Root()
	r.Mount(v, root, NoNode)

	el := doc.Children(root)[0]
	require.Equal(t, "row", doc.Text(doc.FirstChild(doc.Children(el)[0])))
}

func TestBuilderBuildPanicsOnUnclosedElement(t *testing.T) {
	defer func() {
		require.NotNil(t, recover())
	}()
	NewBuilder().Div().Build()
}
