package vellum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func layoutDoc(t *testing.T, css string, tree View) (*Document, NodeID) {
	t.Helper()
	doc, r := newReconciler()
	root := doc.Root()
	r.Mount(tree, root, NoNode)

	st := NewStylist()
	st.AddStylesheet(ParseStylesheet(css))
	doc.RestyleTree(st, root)
	return doc, root
}

func TestBlockStacksChildrenVertically(t *testing.T) {
	doc, root := layoutDoc(t, `div { width: 20c; } .a { height: 2c; } .b { height: 3c; }`,
		Element{Tag: SymDiv, Child: Fragment{
			Element{Tag: SymDiv, Classes: []Symbol{Intern("a")}},
			Element{Tag: SymDiv, Classes: []Symbol{Intern("b")}},
		}})

	ComputeLayout(doc, root, Size{Width: 80, Height: 24}, LayoutOptions{})

	outer := doc.Children(root)[0]
	a, b := doc.Children(outer)[0], doc.Children(outer)[1]

	la, lb := doc.NodeLayout(a), doc.NodeLayout(b)
	require.Equal(t, 0, la.Y)
	require.Equal(t, 2, lb.Y, "b starts right after a's 2-cell height")
	require.Equal(t, 20, la.BorderBoxSize().Width, "the child divs match the div rule's 20c width")
}

func TestInlineWrapsOntoNewLine(t *testing.T) {
	doc, root := layoutDoc(t, `div { display: inline; width: 10c; } span { width: 6c; height: 1c; }`,
		Element{Tag: SymDiv, Child: Fragment{
			Element{Tag: SymSpan},
			Element{Tag: SymSpan},
		}})

	ComputeLayout(doc, root, Size{Width: 80, Height: 24}, LayoutOptions{})

	outer := doc.Children(root)[0]
	first, second := doc.Children(outer)[0], doc.Children(outer)[1]

	lf, ls := doc.NodeLayout(first), doc.NodeLayout(second)
	require.Equal(t, 0, lf.Y)
	require.Equal(t, 0, lf.X)
	require.Equal(t, 1, ls.Y, "second 6-cell span doesn't fit after the first in a 10-cell line, wraps")
	require.Equal(t, 0, ls.X)
}

func TestPercentageWidthResolvesAgainstContainer(t *testing.T) {
	doc, root := layoutDoc(t, `div { width: 40c; } span { display: block; width: 50%; height: 1c; }`,
		Element{Tag: SymDiv, Child: Element{Tag: SymSpan}})

	ComputeLayout(doc, root, Size{Width: 80, Height: 24}, LayoutOptions{})

	outer := doc.Children(root)[0]
	inner := doc.Children(outer)[0]
	require.Equal(t, 20, doc.NodeLayout(inner).BorderBoxSize().Width)
}

func TestDisplayNoneProducesZeroBox(t *testing.T) {
	doc, root := layoutDoc(t, `div { width: 10c; height: 3c; } .hidden { display: none; }`,
		Element{Tag: SymDiv, Child: Fragment{
			Element{Tag: SymDiv, Classes: []Symbol{Intern("hidden")}, Child: Text("gone")},
			Element{Tag: SymDiv},
		}})

	ComputeLayout(doc, root, Size{Width: 80, Height: 24}, LayoutOptions{})

	outer := doc.Children(root)[0]
	hidden, visible := doc.Children(outer)[0], doc.Children(outer)[1]

	require.Equal(t, ZeroBox, doc.NodeLayout(hidden).ResolvedBox)
	require.Equal(t, 0, doc.NodeLayout(visible).Y, "visible sibling isn't pushed down by the display:none box")
}

func TestDisplayGridDegradesToBlockByDefault(t *testing.T) {
	doc, root := layoutDoc(t, `div { width: 20c; } .grid { display: grid; } .a { height: 2c; } .b { height: 3c; }`,
		Element{Tag: SymDiv, Classes: []Symbol{Intern("grid")}, Child: Fragment{
			Element{Tag: SymDiv, Classes: []Symbol{Intern("a")}},
			Element{Tag: SymDiv, Classes: []Symbol{Intern("b")}},
		}})

	ComputeLayout(doc, root, Size{Width: 80, Height: 24}, LayoutOptions{})

	outer := doc.Children(root)[0]
	a, b := doc.Children(outer)[0], doc.Children(outer)[1]
	require.Equal(t, 0, doc.NodeLayout(a).Y)
	require.Equal(t, 2, doc.NodeLayout(b).Y, "grid falls back to block stacking, not a single shared row")
}

func TestDisplayGridPanicsUnderStrictGrid(t *testing.T) {
	doc, root := layoutDoc(t, `div { width: 20c; } .grid { display: grid; }`,
		Element{Tag: SymDiv, Classes: []Symbol{Intern("grid")}})

	require.PanicsWithValue(t, ErrUnsupportedDisplay, func() {
		ComputeLayout(doc, root, Size{Width: 80, Height: 24}, LayoutOptions{StrictGrid: true})
	})
}

func TestDirtyFlagShortCircuitsUnchangedSubtree(t *testing.T) {
	doc, root := layoutDoc(t, `div { width: 10c; height: 2c; }`, Element{Tag: SymDiv})

	ComputeLayout(doc, root, Size{Width: 80, Height: 24}, LayoutOptions{})
	child := doc.Children(root)[0]
	require.False(t, doc.NeedsLayout(child))

	// Poison the cached content box directly, standing in for a node
	// that was laid out once and never invalidated again (X/Y are
	// recomputed on every pass regardless of the dirty flag, since a
	// sibling earlier in the block could have changed height and moved
	// this node down — only its own content box is reused as-is).
	poisoned := doc.NodeLayout(child).ResolvedBox
	poisoned.Content.Width = 777
	l := doc.NodeLayout(child)
	l.ResolvedBox = poisoned
	doc.setLayout(child, l)

	ComputeLayout(doc, root, Size{Width: 80, Height: 24}, LayoutOptions{})
	require.Equal(t, 777, doc.NodeLayout(child).Content.Width, "unflagged child's content box was reused, not recomputed from its style")
}
