package vellum

import "fmt"

// NodeDetails returns a multi-line, human-readable dump of one node's
// current state — tag, parent, painted box and interactive flags —
// adapted from the teacher's WidgetDetails debug helper to the arena's
// NodeID/ComputedStyle/Layout shape instead of a live widget tree.
func NodeDetails(doc *Document, id NodeID) string {
	kind := "element"
	switch doc.Kind(id) {
	case KindText:
		kind = "text"
	case KindMarker:
		kind = "marker"
	}

	result := fmt.Sprintf("%s #%d", kind, id)
	if tag := doc.Tag(id); tag != SymEmpty {
		result += fmt.Sprintf(" <%s>", tag)
	}
	if eid := doc.ElementID(id); eid != SymEmpty {
		result += fmt.Sprintf("\nID        : %q", eid)
	}
	parent := "<none>"
	if p := doc.Parent(id); p != NoNode {
		parent = fmt.Sprintf("#%d", p)
	}
	result += fmt.Sprintf("\nParent    : %s", parent)

	l := doc.NodeLayout(id)
	bb := l.BorderBoxSize()
	result += fmt.Sprintf("\nBounds    : x=%d, y=%d, w=%d, h=%d", l.X, l.Y, bb.Width, bb.Height)

	state := doc.State(id)
	var flags []string
	if doc.IsFocusable(id) {
		flags = append(flags, "focusable")
	}
	if state.Has(StateFocus) {
		flags = append(flags, "focused")
	}
	if state.Has(StateHover) {
		flags = append(flags, "hovered")
	}
	if state.Has(StateActive) {
		flags = append(flags, "active")
	}
	if state.Has(StateDisabled) {
		flags = append(flags, "disabled")
	}
	if len(flags) == 0 {
		flags = []string{"none"}
	}
	result += "\nFlags     : "
	for i, f := range flags {
		if i > 0 {
			result += ", "
		}
		result += f
	}

	return result
}
