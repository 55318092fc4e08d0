package vellum

// Reconciler drives one mounted View across frames: an initial
// build+mount, then repeated rebuild passes against fresh View values
// of the same shape (spec.md §5's "apply pending view mutations" step).
// It owns the hook-state runtime views reach into through ForEach's
// per-item scopes (§4.10).
type Reconciler struct {
	Doc   *Document
	Hooks *HookRuntime

	root State
}

func NewReconciler(doc *Document) *Reconciler {
	return &Reconciler{Doc: doc, Hooks: NewHookRuntime()}
}

// Mount builds v and attaches it under parent, before `before` if given
// (NoNode appends). Subsequent Update calls rebuild against this root.
func (r *Reconciler) Mount(v View, parent, before NodeID) {
	ctx := NewBuildContext(r.Doc, r.Hooks)
	r.root = v.Build(ctx)
	r.root.Mount(parent, before, r.Doc)
	r.Hooks.ResetFrame()
}

// Update rebuilds the mounted root against v, which must be the same
// concrete View kind Mount was called with, then retires any hook cell
// that went unrequested during the rebuild.
func (r *Reconciler) Update(v View) {
	if r.root == nil {
		panic("vellum: Reconciler.Update called before Mount")
	}
	ctx := NewRebuildContext(r.Doc, r.Hooks)
	v.Rebuild(r.root, ctx)
	r.Hooks.ResetFrame()
}

// Unmount detaches the mounted root; the Reconciler can Mount again
// afterward to start a fresh tree.
func (r *Reconciler) Unmount() {
	if r.root == nil {
		return
	}
	r.root.Unmount(r.Doc)
	r.root = nil
}

// Root exposes the mounted root's leftmost anchor, NoNode before Mount.
func (r *Reconciler) Root() NodeID {
	if r.root == nil {
		return NoNode
	}
	return FirstNode(r.root)
}
