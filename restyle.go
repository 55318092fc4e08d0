package vellum

// RestyleHint is a bitset describing how far a single state/attribute/
// class/id change must propagate before style recomputation is done.
// Dependencies further from the subject element (ancestor, sibling)
// widen the hint so invalidation never under-restyles.
type RestyleHint uint8

const (
	RestyleNone          RestyleHint = 0
	RestyleSelf          RestyleHint = 1 << 0
	RestyleDescendants   RestyleHint = 1 << 1
	RestyleLaterSiblings RestyleHint = 1 << 2
)

func (h RestyleHint) Contains(flag RestyleHint) bool { return h&flag != 0 }
func (h RestyleHint) IsEmpty() bool                  { return h == 0 }
