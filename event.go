package vellum

import (
	"sort"
	"strconv"
	"strings"
)

// EventPhase marks which leg of dispatch a handler is currently running
// in, mirroring the capture/target/bubble model (spec.md §4.8's event
// section, ported from dom_events/src/event.rs).
type EventPhase uint8

const (
	PhaseNone EventPhase = iota
	PhaseCapturing
	PhaseAtTarget
	PhaseBubbling
)

// Modifiers is a bitset of keyboard modifiers held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

func (m Modifiers) Has(f Modifiers) bool { return m&f != 0 }

// MouseButton identifies which physical button a mouse event concerns.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
)

// Named keys used by the built-in Tab-navigation handling; KeyEventData
// otherwise carries whatever the terminal's input backend reports.
const (
	KeyTab    = "Tab"
	KeyEnter  = "Enter"
	KeyEscape = "Escape"
)

// MouseEventData is the payload for mousemove/mousedown/mouseup/click/
// dblclick/contextmenu.
type MouseEventData struct {
	X, Y      int
	Button    MouseButton
	Modifiers Modifiers
}

// WheelEventData is the payload for wheel.
type WheelEventData struct {
	X, Y           int
	DeltaX, DeltaY int
	Modifiers      Modifiers
}

// KeyEventData is the payload for keydown/keyup.
type KeyEventData struct {
	Key       string
	Modifiers Modifiers
	Repeat    bool
}

// Event is the logical event object handlers receive: one of Mouse,
// Wheel or Key is populated depending on Name. It is narrower than
// dom_events::Event<T,U> — just the nine event kinds symbol_static.go
// declares, with no pointer/composition/custom variants.
type Event struct {
	Name          Symbol
	Target        NodeID
	CurrentTarget NodeID
	Phase         EventPhase

	Mouse *MouseEventData
	Wheel *WheelEventData
	Key   *KeyEventData

	propagationStopped          bool
	immediatePropagationStopped bool
	defaultPrevented            bool
}

func (e *Event) StopPropagation()          { e.propagationStopped = true }
func (e *Event) StopImmediatePropagation() { e.propagationStopped = true; e.immediatePropagationStopped = true }
func (e *Event) PreventDefault()           { e.defaultPrevented = true }
func (e *Event) IsPropagationStopped() bool { return e.propagationStopped }
func (e *Event) DefaultPrevented() bool     { return e.defaultPrevented }

// Dispatch runs ev through the three DOM phases against target: capture
// from the root down to target's parent, then at-target, then bubble
// back up to the root, stopping early once StopPropagation is called.
func (d *Document) Dispatch(target NodeID, ev *Event) {
	ev.Target = target
	ancestors := d.Ancestors(target) // nearest first, root last

	for i := len(ancestors) - 1; i >= 0 && !ev.propagationStopped; i-- {
		ev.CurrentTarget = ancestors[i]
		ev.Phase = PhaseCapturing
		runHandlers(d.handlersFor(ancestors[i], ev.Name), ev)
	}

	if !ev.propagationStopped {
		ev.CurrentTarget = target
		ev.Phase = PhaseAtTarget
		runHandlers(d.handlersFor(target, ev.Name), ev)
	}

	for _, a := range ancestors {
		if ev.propagationStopped {
			break
		}
		ev.CurrentTarget = a
		ev.Phase = PhaseBubbling
		runHandlers(d.handlersFor(a, ev.Name), ev)
	}
}

// runHandlers invokes one node's registered handlers for a phase. A
// handler returning true has consumed the event: it both prevents the
// default action and stops any further propagation, matching Handler's
// documented contract on element.go.
func runHandlers(handlers []Handler, ev *Event) {
	for _, h := range handlers {
		if h(ev) {
			ev.PreventDefault()
			ev.StopPropagation()
		}
		if ev.immediatePropagationStopped {
			return
		}
	}
}

// HitTest returns the topmost element under the point (x, y) in
// absolute screen coordinates, preferring higher z-index and, among
// equal z-index, the element painted last (later in document order
// wins, since later siblings and descendants paint over earlier ones).
// Returns NoNode if nothing is hit.
func (d *Document) HitTest(x, y int) NodeID {
	best := NoNode
	bestZ := 0
	hasBest := false

	var walk func(id NodeID, parentX, parentY int)
	walk = func(id NodeID, parentX, parentY int) {
		l := d.NodeLayout(id)
		absX, absY := parentX+l.X, parentY+l.Y

		if d.Kind(id) == KindElement {
			if cs := d.ComputedStyle(id); cs != nil {
				size := l.BorderBoxSize()
				rect := Rect{X: absX, Y: absY, Width: size.Width, Height: size.Height}
				if rect.Contains(x, y) && (!hasBest || cs.ZIndex >= bestZ) {
					best, bestZ, hasBest = id, cs.ZIndex, true
				}
			}
		}

		for c := d.FirstChild(id); c != NoNode; c = d.NextSibling(c) {
			walk(c, absX, absY)
		}
	}
	walk(d.root, 0, 0)
	return best
}

// Focused, Hovered and Active expose the document's current interactive
// node, NoNode if none.
func (d *Document) Focused() NodeID { return d.focused }
func (d *Document) Hovered() NodeID { return d.hovered }
func (d *Document) Active() NodeID  { return d.active }

// Focus moves keyboard focus to id (NoNode to clear it entirely),
// flipping StateFocus on the old and new focused element.
func (d *Document) Focus(id NodeID) {
	if d.focused == id {
		return
	}
	if d.focused != NoNode && d.Valid(d.focused) {
		d.SetState(d.focused, d.State(d.focused)&^StateFocus)
	}
	d.focused = id
	if id != NoNode {
		d.SetState(id, d.State(id)|StateFocus)
	}
}

// Blur clears keyboard focus.
func (d *Document) Blur() { d.Focus(NoNode) }

// SetHovered updates the element the pointer currently rests over.
func (d *Document) SetHovered(id NodeID) {
	if d.hovered == id {
		return
	}
	if d.hovered != NoNode && d.Valid(d.hovered) {
		d.SetState(d.hovered, d.State(d.hovered)&^StateHover)
	}
	d.hovered = id
	if id != NoNode {
		d.SetState(id, d.State(id)|StateHover)
	}
}

// SetActive flips an element's pressed/active state, used while a mouse
// button is held down over it.
func (d *Document) SetActive(id NodeID, active bool) {
	if active {
		d.active = id
		if id != NoNode {
			d.SetState(id, d.State(id)|StateActive)
		}
		return
	}
	if d.active == id {
		d.active = NoNode
	}
	if id != NoNode {
		d.SetState(id, d.State(id)&^StateActive)
	}
}

// TabIndex parses the "tabindex" attribute, reporting false if absent or
// unparseable.
func (d *Document) TabIndex(id NodeID) (int, bool) {
	v, ok := d.Attribute(id, SymTabIndex)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsFocusable reports whether id can ever receive focus: a form control
// (input/button/select/textarea), a link with an "href" attribute, or
// any element carrying a "tabindex" — excluding disabled elements in
// every case.
func (d *Document) IsFocusable(id NodeID) bool {
	if d.Kind(id) != KindElement || d.State(id).Has(StateDisabled) {
		return false
	}
	switch d.Tag(id) {
	case SymInput, SymButton, SymSelect, SymTextarea:
		return true
	case SymAnchor:
		_, ok := d.Attribute(id, SymHref)
		return ok
	}
	_, ok := d.TabIndex(id)
	return ok
}

// IsTabbable reports whether id is reachable via sequential Tab
// navigation: focusable and not excluded by a negative tabindex.
func (d *Document) IsTabbable(id NodeID) bool {
	if !d.IsFocusable(id) {
		return false
	}
	if ti, ok := d.TabIndex(id); ok && ti < 0 {
		return false
	}
	return true
}

// TabOrder returns every tabbable node in the order Tab would visit
// them: elements with a positive tabindex first (ascending, ties broken
// by document order), then every other tabbable element in document
// order.
func (d *Document) TabOrder() []NodeID {
	var positive, rest []NodeID
	for _, id := range d.Descendants(d.root) {
		if !d.IsTabbable(id) {
			continue
		}
		if ti, ok := d.TabIndex(id); ok && ti > 0 {
			positive = append(positive, id)
		} else {
			rest = append(rest, id)
		}
	}
	sort.SliceStable(positive, func(i, j int) bool {
		a, _ := d.TabIndex(positive[i])
		b, _ := d.TabIndex(positive[j])
		return a < b
	})
	return append(positive, rest...)
}

func indexOfNode(s []NodeID, v NodeID) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// FocusNext moves focus to the next node in TabOrder, wrapping past the
// end back to the first; returns NoNode (and clears focus) if nothing
// is tabbable.
func (d *Document) FocusNext() NodeID {
	order := d.TabOrder()
	if len(order) == 0 {
		d.Blur()
		return NoNode
	}
	idx := indexOfNode(order, d.focused)
	var next NodeID
	if idx == -1 {
		next = order[0]
	} else {
		next = order[(idx+1)%len(order)]
	}
	d.Focus(next)
	return next
}

// FocusPrev moves focus to the previous node in TabOrder, wrapping past
// the start to the last; with nothing focused it starts from the last.
func (d *Document) FocusPrev() NodeID {
	order := d.TabOrder()
	if len(order) == 0 {
		d.Blur()
		return NoNode
	}
	idx := indexOfNode(order, d.focused)
	var prev NodeID
	if idx == -1 {
		prev = order[len(order)-1]
	} else {
		prev = order[(idx-1+len(order))%len(order)]
	}
	d.Focus(prev)
	return prev
}

// ProcessKeyDown dispatches a keydown event to the focused node (or the
// document root if nothing is focused), then — unless a handler called
// PreventDefault — applies the built-in Tab/Shift+Tab focus navigation.
func (d *Document) ProcessKeyDown(data KeyEventData) *Event {
	ev := &Event{Name: SymKeyDown, Key: &data}
	target := d.focused
	if target == NoNode {
		target = d.root
	}
	d.Dispatch(target, ev)
	if ev.DefaultPrevented() {
		return ev
	}
	if data.Key == KeyTab {
		if data.Modifiers.Has(ModShift) {
			d.FocusPrev()
		} else {
			d.FocusNext()
		}
	}
	return ev
}
