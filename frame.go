package vellum

// RestyleTree recomputes and stores the ComputedStyle (and resolved
// custom-property map) for root and every element descendant, each
// inheriting from its own parent's freshly computed values — the
// "reactive re-entry from the top" frame pipeline spec.md §2 describes,
// run as a single unconditional full-tree pass. Text and marker nodes
// carry no style of their own and are skipped, matching
// Document.ComputedStyle's "always nil for text/marker nodes"
// invariant.
//
// A per-change RestyleHint (invalidation.go) can narrow a future
// implementation to the affected subtree/siblings only; this pass
// always recomputes everything, which is correct but not minimal.
func (d *Document) RestyleTree(st *Stylist, root NodeID) {
	d.RestyleTreeObserved(st, root, nil)
}

// RestyleObserver receives one notification per restyled element. It
// lets an external recorder (see package devtools) capture per-frame
// restyle activity without vellum depending on that recorder.
type RestyleObserver interface {
	Observe(node NodeID, old, updated *ComputedStyle, hint RestyleHint)
}

// RestyleTreeObserved is RestyleTree with obs notified of every
// restyled node's before/after ComputedStyle. obs may be nil.
func (d *Document) RestyleTreeObserved(st *Stylist, root NodeID, obs RestyleObserver) {
	d.restyleSubtree(st, root, nil, nil, obs)
}

func (d *Document) restyleSubtree(st *Stylist, id NodeID, parentStyle *ComputedStyle, parentCustom map[Symbol]Value, obs RestyleObserver) {
	if d.Kind(id) != KindElement {
		return
	}
	old := d.ComputedStyle(id)
	style, custom := st.ComputeStyle(d, id, parentStyle, parentCustom)
	d.setComputedStyle(id, &style, custom)
	if obs != nil {
		obs.Observe(id, old, &style, RestyleSelf)
	}
	for _, child := range d.Children(id) {
		d.restyleSubtree(st, child, &style, custom, obs)
	}
}

// RunFrame drives one complete frame: restyle the whole tree from root,
// then lay it out against viewport. This is the single entry point a
// host application (cmd/demo's event loop) calls once per render —
// style and layout never run independently of each other, matching
// spec.md §2's single-direction pipeline.
func RunFrame(doc *Document, st *Stylist, root NodeID, viewport Size, opts LayoutOptions) ResolvedBox {
	doc.RestyleTree(st, root)
	return ComputeLayout(doc, root, viewport, opts)
}

// RunFrameObserved is RunFrame with obs notified of the frame's restyle
// activity, for a host application running with tracing enabled.
func RunFrameObserved(doc *Document, st *Stylist, root NodeID, viewport Size, opts LayoutOptions, obs RestyleObserver) ResolvedBox {
	doc.RestyleTreeObserved(st, root, obs)
	return ComputeLayout(doc, root, viewport, opts)
}
