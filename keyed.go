package vellum

import "fmt"

// ForEach renders one view per item, keyed so that reorders, inserts
// and removals only touch the document nodes that actually moved
// (spec.md §4.9). Key must be stable and unique per item for the
// duration it appears in the list; duplicate keys are undefined
// behaviour.
type ForEach[T any, K comparable] struct {
	Items  []T
	Key    func(item T) K
	Render func(item T) View
}

type forEachState[K comparable] struct {
	marker NodeID
	parent NodeID
	keys   []K
	items  []State
}

func (f ForEach[T, K]) Build(ctx *BuildContext) State {
	st := &forEachState[K]{marker: ctx.Doc.NewMarker()}
	st.keys = make([]K, len(f.Items))
	st.items = make([]State, len(f.Items))
	for i, item := range f.Items {
		key := f.Key(item)
		st.keys[i] = key
		ctx.Hooks.WithScope(scopeOf(key), func() {
			st.items[i] = f.Render(item).Build(ctx)
		})
	}
	return st
}

func (f ForEach[T, K]) Rebuild(state State, ctx *RebuildContext) {
	st := state.(*forEachState[K])

	newKeys := make([]K, len(f.Items))
	itemByKey := make(map[K]T, len(f.Items))
	for i, item := range f.Items {
		key := f.Key(item)
		newKeys[i] = key
		itemByKey[key] = item
	}

	d := diffKeys(st.keys, newKeys)

	// pending holds, per new-list position, the item still waiting to be
	// rebuilt — apply() consumes (nils out) the slots it already built
	// fresh, mirroring for_loop.rs's items_vec.take().
	pending := make([]*T, len(newKeys))
	for i, key := range newKeys {
		if item, ok := itemByKey[key]; ok {
			v := item
			pending[i] = &v
		}
	}

	applyForEachDiff(st, ctx, d, f, pending)

	for i, item := range pending {
		if item == nil || st.items[i] == nil {
			continue
		}
		key := newKeys[i]
		ctx.Hooks.WithScope(scopeOf(key), func() {
			f.Render(*item).Rebuild(st.items[i], ctx)
		})
	}

	st.keys = newKeys
}

func (s *forEachState[K]) Mount(parent, before NodeID, doc *Document) {
	s.parent = parent
	mountAt(doc, parent, before, s.marker)
	for _, it := range s.items {
		if it != nil {
			it.Mount(parent, s.marker, doc)
		}
	}
}

func (s *forEachState[K]) Unmount(doc *Document) {
	for _, it := range s.items {
		if it != nil {
			it.Unmount(doc)
		}
	}
	doc.Detach(s.marker)
}

func (s *forEachState[K]) TopNodes() []NodeID {
	var out []NodeID
	for _, it := range s.items {
		if it != nil {
			out = append(out, it.TopNodes()...)
		}
	}
	return append(out, s.marker)
}

func scopeOf(key any) string { return fmt.Sprint(key) }

// diffOpAddMode distinguishes a plain positional insert from an append
// at the tail, which always lands just before the trailing marker
// regardless of where find_next_mounted_node would otherwise point.
type diffOpAddMode int

const (
	diffAddNormal diffOpAddMode = iota
	diffAddAppend
)

type diffAdd struct {
	at   int
	mode diffOpAddMode
}

type diffRemove struct{ at int }

type diffMove struct {
	from, to  int
	moveInDOM bool
}

type listDiff struct {
	removed []diffRemove
	moved   []diffMove
	added   []diffAdd
	clear   bool
}

// diffKeys computes the edit script taking the ordered key list `from`
// to `to`, in one linear scan to max(len(from), len(to)) (spec.md
// §4.9, ported from for_loop.rs's diff()).
func diffKeys[K comparable](from, to []K) listDiff {
	if len(from) == 0 && len(to) == 0 {
		return listDiff{}
	}
	if len(to) == 0 {
		return listDiff{clear: true}
	}
	if len(from) == 0 {
		d := listDiff{added: make([]diffAdd, len(to))}
		for i := range to {
			d.added[i] = diffAdd{at: i, mode: diffAddAppend}
		}
		return d
	}

	toIndex := make(map[K]int, len(to))
	for i, k := range to {
		toIndex[k] = i
	}
	fromSet := make(map[K]struct{}, len(from))
	for _, k := range from {
		fromSet[k] = struct{}{}
	}

	maxLen := len(from)
	if len(to) > maxLen {
		maxLen = len(to)
	}

	var d listDiff
	for i := 0; i < maxLen; i++ {
		hasFrom := i < len(from)
		hasTo := i < len(to)
		var fromKey, toKey K
		if hasFrom {
			fromKey = from[i]
		}
		if hasTo {
			toKey = to[i]
		}

		if hasFrom && hasTo && fromKey == toKey {
			continue
		}

		if hasFrom {
			if _, ok := toIndex[fromKey]; !ok {
				d.removed = append(d.removed, diffRemove{at: i})
			}
		}
		if hasTo {
			if _, ok := fromSet[toKey]; !ok {
				d.added = append(d.added, diffAdd{at: i, mode: diffAddNormal})
			}
		}
		if hasFrom {
			if toIdx, ok := toIndex[fromKey]; ok {
				movesForwardBy := toIdx - i
				moveInDOM := movesForwardBy != len(d.added)-len(d.removed)
				d.moved = append(d.moved, diffMove{from: i, to: toIdx, moveInDOM: moveInDOM})
			}
		}
	}
	return d
}

// applyForEachDiff runs steps 1-7 of spec.md §4.9's apply order; step 8
// (rebuilding surviving states with their new item) is the caller's
// job since it needs the view's Render function under the right hook
// scope.
func applyForEachDiff[T any, K comparable](st *forEachState[K], ctx *RebuildContext, d listDiff, f ForEach[T, K], items []*T) {
	if st.parent == NoNode {
		return
	}

	if d.clear {
		for _, it := range st.items {
			if it != nil {
				it.Unmount(ctx.Doc)
			}
		}
		st.items = nil
		return
	}

	for _, r := range d.removed {
		if it := st.items[r.at]; it != nil {
			it.Unmount(ctx.Doc)
			st.items[r.at] = nil
		}
	}

	moved := make([]State, len(d.moved))
	for i, m := range d.moved {
		moved[i] = st.items[m.from]
		st.items[m.from] = nil
	}

	newLen := len(st.keys) - len(d.removed) + len(d.added)
	resized := make([]State, newLen)
	copy(resized, st.items)
	st.items = resized

	for i, m := range d.moved {
		if !m.moveInDOM {
			st.items[m.to] = moved[i]
		}
	}

	for i, m := range d.moved {
		if !m.moveInDOM || moved[i] == nil {
			continue
		}
		insertBefore := findNextMountedNode(st.items, m.to+1, st.marker)
		moved[i].Unmount(ctx.Doc)
		moved[i].Mount(st.parent, insertBefore, ctx.Doc)
		st.items[m.to] = moved[i]
	}

	for _, a := range d.added {
		if items[a.at] == nil {
			continue
		}
		item := *items[a.at]
		key := f.Key(item)

		var newState State
		buildCtx := NewBuildContext(ctx.Doc, ctx.Hooks)
		ctx.Hooks.WithScope(scopeOf(key), func() {
			newState = f.Render(item).Build(buildCtx)
		})

		var insertBefore NodeID
		if a.mode == diffAddAppend {
			insertBefore = st.marker
		} else {
			insertBefore = findNextMountedNode(st.items, a.at+1, st.marker)
		}
		newState.Mount(st.parent, insertBefore, ctx.Doc)
		st.items[a.at] = newState
		items[a.at] = nil
	}
}

// findNextMountedNode finds the first non-nil state's anchor at or
// after startIdx, falling back to the fragment's trailing marker if
// every later slot is still empty.
func findNextMountedNode(items []State, startIdx int, marker NodeID) NodeID {
	for i := startIdx; i < len(items); i++ {
		if items[i] == nil {
			continue
		}
		if n := FirstNode(items[i]); n != NoNode {
			return n
		}
	}
	return marker
}
