package vellum

// A View is a declarative description of a slice of document tree. It
// never touches the document itself: Build materialises the nodes it
// owns (without attaching them anywhere), and Rebuild diffs a new View
// value of the same kind against a previously built State, mutating
// the retained nodes in place (spec.md §4.8).
//
// Go has no associated-type trait, so each concrete view type builds
// its own concrete *XState and Rebuild accepts the State interface,
// type-asserting back to it; a mismatched State passed to Rebuild is a
// programmer error caught by the assertion panicking.
type View interface {
	Build(ctx *BuildContext) State
	Rebuild(state State, ctx *RebuildContext)
}

// State is everything a built View owns in the document: enough to
// mount/unmount it as a unit and to locate its leftmost node when
// something else needs to insert just before it.
//
// TopNodes returns the state's owned nodes in document order, as they
// would appear as direct siblings of one another under whatever parent
// they're mounted in. Element and Text states own exactly one node;
// Fragment/Either/ForEach are compositions that own a flat run of
// sibling nodes with no wrapper (Either and ForEach end theirs with a
// marker node, Fragment has none), so TopNodes recurses into them.
type State interface {
	Mount(parent, before NodeID, doc *Document)
	Unmount(doc *Document)
	TopNodes() []NodeID
}

// FirstNode is the leftmost DOM anchor a state occupies, used as the
// before_sibling target when something to its left needs inserting
// (spec.md §4.8). Empty states (an empty Fragment) have no anchor.
func FirstNode(s State) NodeID {
	nodes := s.TopNodes()
	if len(nodes) == 0 {
		return NoNode
	}
	return nodes[0]
}

// BuildContext carries everything Build needs besides the view itself:
// the document to create nodes in, and the hook-state runtime for
// views (For-each items) that enter a reactive scope.
type BuildContext struct {
	Doc   *Document
	Hooks *HookRuntime
}

func NewBuildContext(doc *Document, hooks *HookRuntime) *BuildContext {
	return &BuildContext{Doc: doc, Hooks: hooks}
}

// RebuildContext is BuildContext's counterpart for the rebuild walk.
type RebuildContext struct {
	Doc   *Document
	Hooks *HookRuntime
}

func NewRebuildContext(doc *Document, hooks *HookRuntime) *RebuildContext {
	return &RebuildContext{Doc: doc, Hooks: hooks}
}

func mountAt(doc *Document, parent, before, id NodeID) {
	if before != NoNode {
		doc.InsertBefore(before, id)
		return
	}
	doc.AppendChild(parent, id)
}

// Element builds one element node with the given tag/id/classes/
// attributes, with Child built and attached under it immediately
// (an element's internal structure is not deferred the way its own
// attachment to an external parent is).
type Element struct {
	Tag        Symbol
	ID         Symbol
	Classes    []Symbol
	Attributes map[Symbol]string
	Child      View // nil for a childless element
}

type ElementState struct {
	id    NodeID
	child State // nil if the view had no child
}

func (e Element) Build(ctx *BuildContext) State {
	id := ctx.Doc.NewElement(e.Tag)
	if e.ID != SymEmpty {
		ctx.Doc.SetElementID(id, e.ID)
	}
	for _, c := range e.Classes {
		ctx.Doc.AddClass(id, c)
	}
	for name, value := range e.Attributes {
		ctx.Doc.SetAttribute(id, name, value)
	}

	st := &ElementState{id: id}
	if e.Child != nil {
		st.child = e.Child.Build(ctx)
		st.child.Mount(id, NoNode, ctx.Doc)
	}
	return st
}

func (e Element) Rebuild(state State, ctx *RebuildContext) {
	st := state.(*ElementState)

	if e.ID != SymEmpty {
		ctx.Doc.SetElementID(st.id, e.ID)
	}
	for _, c := range e.Classes {
		ctx.Doc.AddClass(st.id, c)
	}
	for name, value := range e.Attributes {
		ctx.Doc.SetAttribute(st.id, name, value)
	}

	switch {
	case e.Child == nil && st.child != nil:
		st.child.Unmount(ctx.Doc)
		st.child = nil
	case e.Child != nil && st.child == nil:
		buildCtx := NewBuildContext(ctx.Doc, ctx.Hooks)
		st.child = e.Child.Build(buildCtx)
		st.child.Mount(st.id, NoNode, ctx.Doc)
	case e.Child != nil && st.child != nil:
		e.Child.Rebuild(st.child, ctx)
	}
}

func (s *ElementState) Mount(parent, before NodeID, doc *Document) {
	mountAt(doc, parent, before, s.id)
}

func (s *ElementState) Unmount(doc *Document) {
	doc.Detach(s.id)
}

func (s *ElementState) TopNodes() []NodeID { return []NodeID{s.id} }

// Text builds a single text node; rebuild updates its string content
// in place rather than replacing the node.
type Text string

type TextState struct {
	id NodeID
}

func (t Text) Build(ctx *BuildContext) State {
	return &TextState{id: ctx.Doc.NewText(string(t))}
}

func (t Text) Rebuild(state State, ctx *RebuildContext) {
	st := state.(*TextState)
	ctx.Doc.SetText(st.id, string(t))
}

func (s *TextState) Mount(parent, before NodeID, doc *Document) {
	mountAt(doc, parent, before, s.id)
}

func (s *TextState) Unmount(doc *Document) {
	doc.Detach(s.id)
}

func (s *TextState) TopNodes() []NodeID { return []NodeID{s.id} }

// Fragment is a fixed-arity list of child views materialised as flat
// siblings with no wrapper node. Rebuild requires the same arity as the
// State it's diffing against — a Fragment's shape is part of its view
// identity, unlike For-each's dynamic list (keyed.go).
type Fragment []View

type FragmentState struct {
	children []State
}

func (f Fragment) Build(ctx *BuildContext) State {
	st := &FragmentState{children: make([]State, len(f))}
	for i, v := range f {
		st.children[i] = v.Build(ctx)
	}
	return st
}

func (f Fragment) Rebuild(state State, ctx *RebuildContext) {
	st := state.(*FragmentState)
	if len(f) != len(st.children) {
		panic("vellum: Fragment rebuilt with a different number of children than it was built with")
	}
	for i, v := range f {
		v.Rebuild(st.children[i], ctx)
	}
}

func (s *FragmentState) Mount(parent, before NodeID, doc *Document) {
	for _, c := range s.children {
		c.Mount(parent, before, doc)
	}
}

func (s *FragmentState) Unmount(doc *Document) {
	for _, c := range s.children {
		c.Unmount(doc)
	}
}

func (s *FragmentState) TopNodes() []NodeID {
	var out []NodeID
	for _, c := range s.children {
		out = append(out, c.TopNodes()...)
	}
	return out
}

// Either renders A when Left, B otherwise, behind a trailing marker
// node used as a stable insertion anchor. Switching branches unmounts
// the old one and mounts the new one before the marker; rebuilding
// while staying on the same branch delegates straight to it.
type Either struct {
	Left   View
	Right  View
	IsLeft bool
}

type EitherState struct {
	marker NodeID
	isLeft bool
	branch State
	parent NodeID
}

func (e Either) Build(ctx *BuildContext) State {
	st := &EitherState{marker: ctx.Doc.NewMarker(), isLeft: e.IsLeft}
	if e.IsLeft {
		st.branch = e.Left.Build(ctx)
	} else {
		st.branch = e.Right.Build(ctx)
	}
	return st
}

func (e Either) Rebuild(state State, ctx *RebuildContext) {
	st := state.(*EitherState)

	if e.IsLeft == st.isLeft {
		if e.IsLeft {
			e.Left.Rebuild(st.branch, ctx)
		} else {
			e.Right.Rebuild(st.branch, ctx)
		}
		return
	}

	st.branch.Unmount(ctx.Doc)

	buildCtx := NewBuildContext(ctx.Doc, ctx.Hooks)
	var newBranch State
	if e.IsLeft {
		newBranch = e.Left.Build(buildCtx)
	} else {
		newBranch = e.Right.Build(buildCtx)
	}
	if st.parent != NoNode {
		newBranch.Mount(st.parent, st.marker, ctx.Doc)
	}
	st.branch = newBranch
	st.isLeft = e.IsLeft
}

func (s *EitherState) Mount(parent, before NodeID, doc *Document) {
	s.parent = parent
	mountAt(doc, parent, before, s.marker)
	s.branch.Mount(parent, s.marker, doc)
}

func (s *EitherState) Unmount(doc *Document) {
	s.branch.Unmount(doc)
	doc.Detach(s.marker)
}

func (s *EitherState) TopNodes() []NodeID {
	return append(s.branch.TopNodes(), s.marker)
}

// noOp is the empty view ShowIf renders for its false case: no nodes,
// no anchor of its own.
type noOp struct{}

type noOpState struct{}

func (noOp) Build(ctx *BuildContext) State                   { return noOpState{} }
func (noOp) Rebuild(state State, ctx *RebuildContext)        {}
func (noOpState) Mount(parent, before NodeID, doc *Document) {}
func (noOpState) Unmount(doc *Document)                      {}
func (noOpState) TopNodes() []NodeID                         { return nil }

// ShowIf renders v when cond holds and nothing otherwise, implemented
// as Either of v vs. the empty view (spec.md §4.8).
func ShowIf(cond bool, v View) View {
	return Either{Left: v, Right: noOp{}, IsLeft: cond}
}

// Memo skips rebuilding Inner when Key compares equal to the key it was
// last built/rebuilt with, trading an equality check for however much
// work Inner's own rebuild would otherwise do.
type Memo[K comparable] struct {
	Key   K
	Inner View
}

type memoState struct {
	key   any
	inner State
}

func (m Memo[K]) Build(ctx *BuildContext) State {
	return &memoState{key: m.Key, inner: m.Inner.Build(ctx)}
}

func (m Memo[K]) Rebuild(state State, ctx *RebuildContext) {
	st := state.(*memoState)
	if key, ok := st.key.(K); ok && key == m.Key {
		return
	}
	m.Inner.Rebuild(st.inner, ctx)
	st.key = m.Key
}

func (s *memoState) Mount(parent, before NodeID, doc *Document) {
	s.inner.Mount(parent, before, doc)
}

func (s *memoState) Unmount(doc *Document) { s.inner.Unmount(doc) }

func (s *memoState) TopNodes() []NodeID { return s.inner.TopNodes() }

// Portal mounts Content under Target regardless of where Portal itself
// sits in the declared view tree (tooltips, modal layers, anything
// that needs to render outside its logical parent's box). It occupies
// no position among its declared siblings: TopNodes is always empty.
type Portal struct {
	Target  NodeID
	Content View
}

type PortalState struct {
	target  NodeID
	content State
	mounted bool
}

func (p Portal) Build(ctx *BuildContext) State {
	return &PortalState{target: p.Target, content: p.Content.Build(ctx)}
}

func (p Portal) Rebuild(state State, ctx *RebuildContext) {
	st := state.(*PortalState)
	p.Content.Rebuild(st.content, ctx)
}

func (s *PortalState) Mount(parent, before NodeID, doc *Document) {
	if s.mounted {
		return
	}
	s.content.Mount(s.target, NoNode, doc)
	s.mounted = true
}

func (s *PortalState) Unmount(doc *Document) {
	s.content.Unmount(doc)
	s.mounted = false
}

func (s *PortalState) TopNodes() []NodeID { return nil }
