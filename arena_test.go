package vellum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaAppendAndChildren(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	a := doc.NewElement(SymSpan)
	b := doc.NewElement(SymSpan)
	doc.AppendChild(root, a)
	doc.AppendChild(root, b)

	require.Equal(t, []NodeID{a, b}, doc.Children(root))
	require.Equal(t, root, doc.Parent(a))
	require.Equal(t, a, doc.FirstChild(root))
	require.Equal(t, b, doc.LastChild(root))
}

func TestArenaInsertBeforeAfter(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	a := doc.NewElement(SymSpan)
	c := doc.NewElement(SymSpan)
	doc.AppendChild(root, a)
	doc.AppendChild(root, c)

	b := doc.NewElement(SymSpan)
	doc.InsertBefore(c, b)
	require.Equal(t, []NodeID{a, b, c}, doc.Children(root))

	d := doc.NewElement(SymSpan)
	doc.InsertAfter(c, d)
	require.Equal(t, []NodeID{a, b, c, d}, doc.Children(root))
}

func TestArenaDetachKeepsSubtree(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	a := doc.NewElement(SymSpan)
	child := doc.NewElement(SymSpan)
	doc.AppendChild(root, a)
	doc.AppendChild(a, child)

	doc.Detach(a)
	require.Empty(t, doc.Children(root))
	require.True(t, doc.Valid(a))
	require.True(t, doc.Valid(child))
	require.Equal(t, a, doc.Parent(child))
}

func TestArenaRemoveSubtreeDestroys(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	a := doc.NewElement(SymSpan)
	child := doc.NewElement(SymSpan)
	doc.AppendChild(root, a)
	doc.AppendChild(a, child)

	doc.RemoveSubtree(a)
	require.False(t, doc.Valid(a))
	require.False(t, doc.Valid(child))
	require.Empty(t, doc.Children(root))
}

func TestArenaRemoveSubtreeClearsFocusHoverActive(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	a := doc.NewElement(SymSpan)
	doc.AppendChild(root, a)

	doc.focused = a
	doc.hovered = a
	doc.active = a

	doc.RemoveSubtree(a)
	require.Equal(t, NoNode, doc.focused)
	require.Equal(t, NoNode, doc.hovered)
	require.Equal(t, NoNode, doc.active)
}

func TestArenaTraversal(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	a := doc.NewElement(SymSpan)
	b := doc.NewElement(SymSpan)
	grandchild := doc.NewElement(SymSpan)
	doc.AppendChild(root, a)
	doc.AppendChild(root, b)
	doc.AppendChild(a, grandchild)

	require.Equal(t, []NodeID{root}, doc.Ancestors(grandchild)[1:])
	require.Equal(t, []NodeID{a, grandchild, b}, doc.Descendants(root))
	require.Equal(t, []NodeID{a}, doc.PrecedingSiblings(b))
	require.Equal(t, []NodeID{b}, doc.FollowingSiblings(a))

	idx, count := doc.SiblingIndex(b)
	require.Equal(t, 1, idx)
	require.Equal(t, 2, count)
}

func TestElementAttributesClassesState(t *testing.T) {
	doc := NewDocument()
	el := doc.NewElement(SymDiv)
	doc.AddClass(el, Intern("btn"))
	doc.AddClass(el, Intern("primary"))
	require.True(t, doc.HasClass(el, Intern("btn")))
	doc.RemoveClass(el, Intern("primary"))
	require.False(t, doc.HasClass(el, Intern("primary")))

	doc.SetAttribute(el, SymHref, "https://example.test")
	v, ok := doc.Attribute(el, SymHref)
	require.True(t, ok)
	require.Equal(t, "https://example.test", v)

	changed := doc.SetState(el, StateHover)
	require.Equal(t, StateHover, changed)
	require.True(t, doc.State(el).Has(StateHover))
}

func TestAssertionOnInvalidNode(t *testing.T) {
	doc := NewDocument()
	require.Panics(t, func() {
		doc.Tag(NodeID(9999))
	})
}

func TestReleaseModeNoOpOnInvalidNode(t *testing.T) {
	old := Debug
	Debug = false
	defer func() { Debug = old }()

	doc := NewDocument()
	require.NotPanics(t, func() {
		doc.Detach(NodeID(9999))
	})
}
