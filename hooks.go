package vellum

import (
	"runtime"
	"strings"
)

// HookKey identifies one reactive hook cell: the call site that
// requested it, composed with whatever scope was active at request
// time (spec.md §4.10 — "identity is (file,line,column) possibly
// composed with an active scope key"). Column is omitted: Go's runtime
// only reports file/line, and scope composition already disambiguates
// hooks that share a line inside a loop body.
type HookKey struct {
	File  string
	Line  int
	Scope string
}

type hookCell struct {
	value     any
	lastFrame uint64
}

// HookRuntime is the minimal reactive hook-state collaborator spec.md
// §4.10 describes: the reconciler treats it as opaque and only ever
// enters scopes while walking a keyed list (see keyed.go), so this
// stays a small mark-and-sweep cell table rather than a full signal
// graph.
type HookRuntime struct {
	cells map[HookKey]*hookCell
	scope []string
	frame uint64
}

func NewHookRuntime() *HookRuntime {
	return &HookRuntime{cells: make(map[HookKey]*hookCell)}
}

func (r *HookRuntime) currentScope() string {
	if len(r.scope) == 0 {
		return ""
	}
	return strings.Join(r.scope, "\x00")
}

// WithScope pushes key, runs f, and pops it again, so that every
// UseStateAt call f makes is scoped to key. Used by the keyed-list
// reconciler to give each item's hook state an identity tied to its
// key rather than its current index.
func (r *HookRuntime) WithScope(key string, f func()) {
	r.scope = append(r.scope, key)
	f()
	r.scope = r.scope[:len(r.scope)-1]
}

// HookCell is a handle to one persistent value, keyed by call site and
// active scope.
type HookCell struct {
	rt  *HookRuntime
	key HookKey
}

func (c HookCell) Get() any { return c.rt.cells[c.key].value }

func (c HookCell) Set(v any) { c.rt.cells[c.key].value = v }

// UseStateAt returns the hook cell identified by (file, line, current
// scope), initializing it with init() on first request.
func (r *HookRuntime) UseStateAt(file string, line int, init func() any) HookCell {
	key := HookKey{File: file, Line: line, Scope: r.currentScope()}
	cell, ok := r.cells[key]
	if !ok {
		cell = &hookCell{value: init()}
		r.cells[key] = cell
	}
	cell.lastFrame = r.frame
	return HookCell{rt: r, key: key}
}

// UseState is UseStateAt with the call site captured automatically via
// runtime.Caller, for view-building code that doesn't want to thread
// file/line through by hand.
func (r *HookRuntime) UseState(init func() any) HookCell {
	_, file, line, _ := runtime.Caller(1)
	return r.UseStateAt(file, line, init)
}

// ResetFrame advances to a new frame and collects any cell that wasn't
// re-requested during the frame that just ended — the reconciler calls
// this once per render pass, after the rebuild walk has made every
// UseStateAt call it's going to make.
func (r *HookRuntime) ResetFrame() {
	for key, cell := range r.cells {
		if cell.lastFrame != r.frame {
			delete(r.cells, key)
		}
	}
	r.frame++
}
