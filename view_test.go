package vellum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newReconciler() (*Document, *Reconciler) {
	doc := NewDocument()
	return doc, NewReconciler(doc)
}

func TestElementBuildDoesNotAttach(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	v := Element{Tag: SymDiv, Child: Text("hi")}
	ctx := NewBuildContext(doc, r.Hooks)
	st := v.Build(ctx)

	require.Empty(t, doc.Children(root))

	st.Mount(root, NoNode, doc)
	children := doc.Children(root)
	require.Len(t, children, 1)
	require.Equal(t, SymDiv, doc.Tag(children[0]))
	require.Equal(t, "hi", doc.Text(doc.FirstChild(children[0])))
}

func TestTextRebuildUpdatesInPlace(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Text("one"), root, NoNode)
	textID := doc.FirstChild(root)
	require.Equal(t, "one", doc.Text(textID))

	r.Update(Text("two"))
	require.Equal(t, textID, doc.FirstChild(root))
	require.Equal(t, "two", doc.Text(textID))
}

func TestFragmentMountsFlatSiblingsNoWrapper(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Fragment{Text("a"), Text("b"), Text("c")}, root, NoNode)

	children := doc.Children(root)
	require.Len(t, children, 3)
	require.Equal(t, "a", doc.Text(children[0]))
	require.Equal(t, "b", doc.Text(children[1]))
	require.Equal(t, "c", doc.Text(children[2]))
}

func TestEitherSwitchesBranchOnRebuild(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Either{Left: Text("left"), Right: Text("right"), IsLeft: true}, root, NoNode)
	children := doc.Children(root)
	require.Len(t, children, 2) // text node + trailing marker
	require.Equal(t, "left", doc.Text(children[0]))
	require.Equal(t, KindMarker, doc.Kind(children[1]))

	r.Update(Either{Left: Text("left"), Right: Text("right"), IsLeft: false})
	children = doc.Children(root)
	require.Len(t, children, 2)
	require.Equal(t, "right", doc.Text(children[0]))
	require.Equal(t, KindMarker, doc.Kind(children[1]))
}

func TestEitherSameBranchRebuildDelegates(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Either{Left: Text("left-1"), IsLeft: true, Right: noOp{}}, root, NoNode)
	textID := doc.Children(root)[0]

	r.Update(Either{Left: Text("left-2"), IsLeft: true, Right: noOp{}})
	// Same branch, same node: rebuild delegated rather than unmount/remount.
	require.Equal(t, textID, doc.Children(root)[0])
	require.Equal(t, "left-2", doc.Text(textID))
}

func TestShowIfRendersNothingWhenFalse(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(ShowIf(false, Text("shown")), root, NoNode)
	children := doc.Children(root)
	require.Len(t, children, 1) // only the marker
	require.Equal(t, KindMarker, doc.Kind(children[0]))

	r.Update(ShowIf(true, Text("shown")))
	children = doc.Children(root)
	require.Len(t, children, 2)
	require.Equal(t, "shown", doc.Text(children[0]))
}

func TestUnmountDetachesOwnedNodes(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	r.Mount(Element{Tag: SymDiv, Child: Text("x")}, root, NoNode)
	require.Len(t, doc.Children(root), 1)

	r.Unmount()
	require.Empty(t, doc.Children(root))
}

func TestMemoSkipsRebuildWhenKeyUnchanged(t *testing.T) {
	doc, r := newReconciler()
	root := doc.Root()

	calls := 0
	render := func(label string) View {
		calls++
		return Text(label)
	}

	r.Mount(Memo[string]{Key: "a", Inner: render("a")}, root, NoNode)
	require.Equal(t, 1, calls)

	r.Update(Memo[string]{Key: "a", Inner: render("a-again")})
	require.Equal(t, 2, calls) // render() itself always runs to build the View value...
	require.Equal(t, "a", doc.Text(doc.Children(root)[0]))

	r.Update(Memo[string]{Key: "b", Inner: render("b")})
	require.Equal(t, "b", doc.Text(doc.Children(root)[0]))
}
