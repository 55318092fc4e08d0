package vellum

import "fmt"

// Debug gates the assertions spec.md §7 requires "in debug builds":
// mutating an absent or already-removed NodeID panics when Debug is
// true. When it is false, idempotent operations are silent no-ops and
// lookups return zero values (NoNode, SymEmpty, nil); no lookup returns
// an error. Tests run with Debug enabled;
// production code can turn it off to match the release-build story in
// spec.md's error handling design.
var Debug = true

// Document is the arena-backed document tree: a flat, growable slice of
// nodes addressed by stable NodeID, plus whatever cross-cutting state
// the reconciler and event dispatcher need to track against it (focus,
// hover, active element, tab order cache).
//
// A Document is not safe for concurrent use; spec.md §5 expects one
// thread per document, with the process-wide symbol table the only
// shared mutable state.
type Document struct {
	nodes []*node // nodes[0] is never used; NoNode == 0

	root NodeID

	focused NodeID
	hovered NodeID
	active  NodeID

	handlerStore []handlerEntry
}

// NewDocument creates an empty document with a single root element
// node (tag "div") that callers can attach views under.
func NewDocument() *Document {
	d := &Document{nodes: make([]*node, 1)} // index 0 reserved
	d.root = d.NewElement(SymDiv)
	return d
}

// Root returns the document's root node id.
func (d *Document) Root() NodeID { return d.root }

func (d *Document) get(id NodeID) *node {
	if id == NoNode || int(id) >= len(d.nodes) {
		d.fail("node %d does not exist", id)
		return nil
	}
	n := d.nodes[id]
	if n == nil || n.removed {
		d.fail("node %d has been removed", id)
		return nil
	}
	return n
}

func (d *Document) fail(format string, args ...any) {
	if Debug {
		panic(fmt.Sprintf("vellum: "+format, args...))
	}
}

// Valid reports whether id refers to a live node in this document.
func (d *Document) Valid(id NodeID) bool {
	if id == NoNode || int(id) >= len(d.nodes) {
		return false
	}
	n := d.nodes[id]
	return n != nil && !n.removed
}

func (d *Document) alloc(n *node) NodeID {
	d.nodes = append(d.nodes, n)
	return NodeID(len(d.nodes) - 1)
}

// NewElement creates a detached element node with the given tag and
// returns its id. The node has no parent until attached with
// Append/Prepend/InsertBefore/InsertAfter.
func (d *Document) NewElement(tag Symbol) NodeID {
	n := newNode(KindElement)
	n.tag = tag
	return d.alloc(n)
}

// NewText creates a detached text node with the given content.
func (d *Document) NewText(text string) NodeID {
	n := newNode(KindText)
	n.text = text
	n.needsLayout = true
	return d.alloc(n)
}

// NewMarker creates a detached marker node: an inert placeholder used
// by the reconciler for anchoring. Markers are never styled, laid out
// or painted, and never match a selector (spec.md §3 invariant).
func (d *Document) NewMarker() NodeID {
	n := newNode(KindMarker)
	n.needsLayout = false
	return d.alloc(n)
}

// Kind returns the node's tagged-union discriminant.
func (d *Document) Kind(id NodeID) NodeKind {
	n := d.get(id)
	if n == nil {
		return KindMarker
	}
	return n.kind
}

// Parent, FirstChild, LastChild, PrevSibling and NextSibling expose the
// raw arena links; NoNode means "no such neighbour".
func (d *Document) Parent(id NodeID) NodeID {
	if n := d.get(id); n != nil {
		return n.parent
	}
	return NoNode
}

func (d *Document) FirstChild(id NodeID) NodeID {
	if n := d.get(id); n != nil {
		return n.firstChild
	}
	return NoNode
}

func (d *Document) LastChild(id NodeID) NodeID {
	if n := d.get(id); n != nil {
		return n.lastChild
	}
	return NoNode
}

func (d *Document) PrevSibling(id NodeID) NodeID {
	if n := d.get(id); n != nil {
		return n.prevSibling
	}
	return NoNode
}

func (d *Document) NextSibling(id NodeID) NodeID {
	if n := d.get(id); n != nil {
		return n.nextSibling
	}
	return NoNode
}

// Children returns the node's direct children in document order.
func (d *Document) Children(id NodeID) []NodeID {
	var out []NodeID
	for c := d.FirstChild(id); c != NoNode; c = d.NextSibling(c) {
		out = append(out, c)
	}
	return out
}

// Ancestors returns id's ancestors, nearest first, root last.
func (d *Document) Ancestors(id NodeID) []NodeID {
	var out []NodeID
	for p := d.Parent(id); p != NoNode; p = d.Parent(p) {
		out = append(out, p)
	}
	return out
}

// Descendants returns id's descendants in pre-order.
func (d *Document) Descendants(id NodeID) []NodeID {
	var out []NodeID
	var walk func(NodeID)
	walk = func(n NodeID) {
		for c := d.FirstChild(n); c != NoNode; c = d.NextSibling(c) {
			out = append(out, c)
			walk(c)
		}
	}
	walk(id)
	return out
}

// PrecedingSiblings returns id's siblings before it, nearest first.
func (d *Document) PrecedingSiblings(id NodeID) []NodeID {
	var out []NodeID
	for s := d.PrevSibling(id); s != NoNode; s = d.PrevSibling(s) {
		out = append(out, s)
	}
	return out
}

// FollowingSiblings returns id's siblings after it, nearest first.
func (d *Document) FollowingSiblings(id NodeID) []NodeID {
	var out []NodeID
	for s := d.NextSibling(id); s != NoNode; s = d.NextSibling(s) {
		out = append(out, s)
	}
	return out
}

// SiblingIndex returns id's zero-based position among its siblings, and
// the total sibling count, used by :first-child/:last-child/:nth-child.
func (d *Document) SiblingIndex(id NodeID) (index, count int) {
	parent := d.Parent(id)
	i := 0
	found := 0
	for c := d.FirstChild(parent); c != NoNode; c = d.NextSibling(c) {
		if c == id {
			found = i
		}
		i++
	}
	return found, i
}

func (d *Document) assertDetachable(id NodeID) *node {
	n := d.get(id)
	if n == nil {
		return nil
	}
	if n.parent != NoNode {
		d.fail("node %d is already attached", id)
	}
	return n
}

// AppendChild attaches child as parent's last child. child must
// currently be detached (no parent).
func (d *Document) AppendChild(parent, child NodeID) {
	p := d.get(parent)
	c := d.assertDetachable(child)
	if p == nil || c == nil {
		return
	}
	c.parent = parent
	if p.lastChild == NoNode {
		p.firstChild = child
		p.lastChild = child
	} else {
		d.get(p.lastChild).nextSibling = child
		c.prevSibling = p.lastChild
		p.lastChild = child
	}
}

// PrependChild attaches child as parent's first child.
func (d *Document) PrependChild(parent, child NodeID) {
	p := d.get(parent)
	c := d.assertDetachable(child)
	if p == nil || c == nil {
		return
	}
	c.parent = parent
	if p.firstChild == NoNode {
		p.firstChild = child
		p.lastChild = child
	} else {
		d.get(p.firstChild).prevSibling = child
		c.nextSibling = p.firstChild
		p.firstChild = child
	}
}

// InsertBefore attaches newChild immediately before sibling, which must
// already be attached to some parent.
func (d *Document) InsertBefore(sibling, newChild NodeID) {
	s := d.get(sibling)
	c := d.assertDetachable(newChild)
	if s == nil || c == nil {
		return
	}
	parent := s.parent
	c.parent = parent
	c.nextSibling = sibling
	c.prevSibling = s.prevSibling
	if s.prevSibling != NoNode {
		d.get(s.prevSibling).nextSibling = newChild
	} else if parent != NoNode {
		d.get(parent).firstChild = newChild
	}
	s.prevSibling = newChild
}

// InsertAfter attaches newChild immediately after sibling.
func (d *Document) InsertAfter(sibling, newChild NodeID) {
	s := d.get(sibling)
	c := d.assertDetachable(newChild)
	if s == nil || c == nil {
		return
	}
	parent := s.parent
	c.parent = parent
	c.prevSibling = sibling
	c.nextSibling = s.nextSibling
	if s.nextSibling != NoNode {
		d.get(s.nextSibling).prevSibling = newChild
	} else if parent != NoNode {
		d.get(parent).lastChild = newChild
	}
	s.nextSibling = newChild
}

// Detach removes id from its parent's child list without destroying it;
// id keeps its subtree and can be re-attached elsewhere. Detaching an
// already-detached node is a no-op (spec.md §7: idempotent operations
// on an absent/invalid node are no-ops in release builds).
func (d *Document) Detach(id NodeID) {
	n := d.get(id)
	if n == nil || n.parent == NoNode {
		return
	}
	parent := d.get(n.parent)
	if n.prevSibling != NoNode {
		d.get(n.prevSibling).nextSibling = n.nextSibling
	} else if parent != nil {
		parent.firstChild = n.nextSibling
	}
	if n.nextSibling != NoNode {
		d.get(n.nextSibling).prevSibling = n.prevSibling
	} else if parent != nil {
		parent.lastChild = n.prevSibling
	}
	n.parent = NoNode
	n.prevSibling = NoNode
	n.nextSibling = NoNode
}

// RemoveSubtree detaches id and permanently destroys it and every
// descendant: handler tables are cleared and focus/hover/active
// references that pointed into the removed subtree are cleared, per
// the unmount lifecycle in spec.md §3.
func (d *Document) RemoveSubtree(id NodeID) {
	if !d.Valid(id) {
		return
	}
	d.Detach(id)
	d.destroySubtree(id)
}

func (d *Document) destroySubtree(id NodeID) {
	n := d.get(id)
	if n == nil {
		return
	}
	for c := n.firstChild; c != NoNode; {
		next := d.get(c).nextSibling
		d.destroySubtree(c)
		c = next
	}
	if d.focused == id {
		d.focused = NoNode
	}
	if d.hovered == id {
		d.hovered = NoNode
	}
	if d.active == id {
		d.active = NoNode
	}
	n.handlers = nil
	n.removed = true
}
