package vellum

// This file holds the Document accessor methods for element-specific
// fields: tag, id, classes, attributes, interactive state and event
// handlers. Calling an element accessor on a text or marker node
// returns the zero value rather than panicking, since "is this an
// element" is usually checked once by the caller (style matching, hit
// testing) rather than at every field access.

// Tag returns the element's tag symbol, or SymEmpty for non-elements.
func (d *Document) Tag(id NodeID) Symbol {
	n := d.get(id)
	if n == nil || n.kind != KindElement {
		return SymEmpty
	}
	return n.tag
}

// ElementID returns the element's "id" attribute value as a symbol, or
// SymEmpty if unset. Named ElementID to avoid colliding with the
// NodeID identity of the node itself.
func (d *Document) ElementID(id NodeID) Symbol {
	n := d.get(id)
	if n == nil {
		return SymEmpty
	}
	return n.id
}

// SetElementID sets the element's "id" attribute.
func (d *Document) SetElementID(id NodeID, value Symbol) {
	if n := d.get(id); n != nil {
		n.id = value
	}
}

// HasClass reports whether the element carries the given class.
func (d *Document) HasClass(id NodeID, class Symbol) bool {
	n := d.get(id)
	if n == nil || n.classes == nil {
		return false
	}
	_, ok := n.classes[class]
	return ok
}

// Classes returns the element's class set as a slice (unordered).
func (d *Document) Classes(id NodeID) []Symbol {
	n := d.get(id)
	if n == nil {
		return nil
	}
	out := make([]Symbol, 0, len(n.classes))
	for c := range n.classes {
		out = append(out, c)
	}
	return out
}

// AddClass adds class to the element's class set.
func (d *Document) AddClass(id NodeID, class Symbol) {
	n := d.get(id)
	if n == nil {
		return
	}
	if n.classes == nil {
		n.classes = make(map[Symbol]struct{})
	}
	n.classes[class] = struct{}{}
}

// RemoveClass removes class from the element's class set.
func (d *Document) RemoveClass(id NodeID, class Symbol) {
	n := d.get(id)
	if n == nil || n.classes == nil {
		return
	}
	delete(n.classes, class)
}

// Attribute returns the named attribute's value and whether it is set.
func (d *Document) Attribute(id NodeID, name Symbol) (string, bool) {
	n := d.get(id)
	if n == nil || n.attributes == nil {
		return "", false
	}
	v, ok := n.attributes[name]
	return v, ok
}

// SetAttribute sets an attribute value. Setting the "style" attribute
// marks the element's inline style as dirty so it is re-parsed on next
// style computation.
func (d *Document) SetAttribute(id NodeID, name Symbol, value string) {
	n := d.get(id)
	if n == nil {
		return
	}
	if n.attributes == nil {
		n.attributes = make(map[Symbol]string)
	}
	n.attributes[name] = value
	if name == SymStyleAttr {
		n.inlineStyleDirty = true
	}
}

// RemoveAttribute removes an attribute.
func (d *Document) RemoveAttribute(id NodeID, name Symbol) {
	n := d.get(id)
	if n == nil || n.attributes == nil {
		return
	}
	delete(n.attributes, name)
	if name == SymStyleAttr {
		n.inlineStyleDirty = true
	}
}

// State returns the element's interactive StateFlags bitset.
func (d *Document) State(id NodeID) StateFlags {
	n := d.get(id)
	if n == nil {
		return 0
	}
	return n.state
}

// SetState replaces the element's StateFlags wholesale and returns the
// flags that changed (old XOR new), which callers feed into
// InvalidationMap.RestyleHintForStateChange.
func (d *Document) SetState(id NodeID, state StateFlags) StateFlags {
	n := d.get(id)
	if n == nil {
		return 0
	}
	changed := n.state ^ state
	n.state = state
	return changed
}

// Text returns a text node's string content, or "" for non-text nodes.
func (d *Document) Text(id NodeID) string {
	n := d.get(id)
	if n == nil || n.kind != KindText {
		return ""
	}
	return n.text
}

// SetText updates a text node's string content in place.
func (d *Document) SetText(id NodeID, text string) {
	n := d.get(id)
	if n == nil || n.kind != KindText {
		return
	}
	if n.text != text {
		n.text = text
		n.needsLayout = true
	}
}

// AddHandler registers an event handler on an element for the given
// event name, returning an id that RemoveHandler can later use.
func (d *Document) AddHandler(id NodeID, event Symbol, h Handler) HandlerID {
	n := d.get(id)
	if n == nil {
		return 0
	}
	if n.handlers == nil {
		n.handlers = make(map[Symbol][]HandlerID)
	}
	d.handlerStore = append(d.handlerStore, handlerEntry{event: event, node: id, fn: h})
	hid := HandlerID(len(d.handlerStore))
	n.handlers[event] = append(n.handlers[event], hid)
	return hid
}

// RemoveHandler unregisters a previously added handler.
func (d *Document) RemoveHandler(id NodeID, event Symbol, hid HandlerID) {
	n := d.get(id)
	if n == nil || n.handlers == nil {
		return
	}
	list := n.handlers[event]
	for i, h := range list {
		if h == hid {
			n.handlers[event] = append(list[:i], list[i+1:]...)
			break
		}
	}
}

// handlersFor returns the registered handler functions for id/event in
// registration order.
func (d *Document) handlersFor(id NodeID, event Symbol) []Handler {
	n := d.get(id)
	if n == nil || n.handlers == nil {
		return nil
	}
	ids := n.handlers[event]
	out := make([]Handler, 0, len(ids))
	for _, hid := range ids {
		if int(hid) <= len(d.handlerStore) && hid > 0 {
			out = append(out, d.handlerStore[hid-1].fn)
		}
	}
	return out
}

type handlerEntry struct {
	event Symbol
	node  NodeID
	fn    Handler
}

// Handler is a logical event handler. It returns true if it handled
// (consumed) the event, stopping further propagation/default action,
// mirroring DOM's preventDefault/stopPropagation-ish semantics used by
// the tab-navigation scenario in spec.md §8.
type Handler func(ev *Event) bool

// NeedsLayout reports whether id's cached layout is stale.
func (d *Document) NeedsLayout(id NodeID) bool {
	n := d.get(id)
	return n == nil || n.needsLayout
}

// MarkNeedsLayout flags id (and, per spec.md §3's invariant, implicitly
// every descendant once the layout walk reaches them) as needing
// layout recomputation.
func (d *Document) MarkNeedsLayout(id NodeID) {
	if n := d.get(id); n != nil {
		n.needsLayout = true
	}
}

func (d *Document) clearNeedsLayout(id NodeID) {
	if n := d.get(id); n != nil {
		n.needsLayout = false
	}
}

// NodeLayout returns the node's last-computed Layout.
func (d *Document) NodeLayout(id NodeID) Layout {
	n := d.get(id)
	if n == nil {
		return Layout{}
	}
	return n.layout
}

func (d *Document) setLayout(id NodeID, l Layout) {
	if n := d.get(id); n != nil {
		n.layout = l
	}
}

// ComputedStyle returns the node's resolved style, or nil if unstyled
// (always nil for text/marker nodes, per spec.md §3's invariant).
func (d *Document) ComputedStyle(id NodeID) *ComputedStyle {
	n := d.get(id)
	if n == nil {
		return nil
	}
	return n.computedStyle
}

func (d *Document) setComputedStyle(id NodeID, s *ComputedStyle, custom map[Symbol]Value) {
	if n := d.get(id); n != nil {
		n.computedStyle = s
		n.customProperties = custom
	}
}

// CustomProperties returns the node's resolved custom-property map.
func (d *Document) CustomProperties(id NodeID) map[Symbol]Value {
	n := d.get(id)
	if n == nil {
		return nil
	}
	return n.customProperties
}

// customPropertiesAsStrings unwraps a node's resolved custom-property
// map back to the plain string form CustomPropertiesResolver works
// with, for seeding a child's resolver with its parent's values.
func customPropertiesAsStrings(m map[Symbol]Value) map[Symbol]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[Symbol]string, len(m))
	for k, v := range m {
		out[k] = v.RawTokens
	}
	return out
}

// customPropertiesFromStrings wraps a resolver's resolved string map
// into the Value form stored on the node, so CustomProperties keeps
// returning a Value map while resolution itself works with plain text.
func customPropertiesFromStrings(m map[Symbol]string) map[Symbol]Value {
	if len(m) == 0 {
		return nil
	}
	out := make(map[Symbol]Value, len(m))
	for k, v := range m {
		out[k] = UnresolvedValue(v)
	}
	return out
}

// inlineDeclarations lazily parses an element's "style" attribute into
// longhand Declarations, caching the result until the attribute next
// changes (SetAttribute/RemoveAttribute on "style" flips
// inlineStyleDirty).
func (d *Document) inlineDeclarations(id NodeID) []Declaration {
	n := d.get(id)
	if n == nil || n.kind != KindElement {
		return nil
	}
	if !n.inlineStyleDirty && n.inlineStyle != nil {
		return n.inlineStyle
	}
	raw, ok := n.attributes[SymStyleAttr]
	n.inlineStyleDirty = false
	if !ok || raw == "" {
		n.inlineStyle = nil
		return nil
	}
	n.inlineStyle = parseInlineStyle(raw)
	return n.inlineStyle
}
