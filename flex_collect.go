package vellum

import "math"

// collectFlexItems pre-measures every non-display:none child under
// (hypothetical_main, available_cross) to establish its tentative box
// and records cross-size plus the flex-basis/grow/shrink inputs the
// flexible-length resolution needs.
func collectFlexItems(doc *Document, id NodeID, isRow bool, availableMain, availableCross int, opts LayoutOptions) []*flexItem {
	var items []*flexItem
	for child := doc.FirstChild(id); child != NoNode; child = doc.NextSibling(child) {
		style := doc.ComputedStyle(child)
		if style != nil && style.Display == KeywordNone {
			doc.setLayout(child, Layout{ResolvedBox: ZeroBox})
			doc.get(child).needsLayout = false
			continue
		}
		effective := style
		if effective == nil {
			d := DefaultComputedStyle()
			effective = &d
		}
		margin := resolveEdgesDimension(effective.Margin, availableMain)

		basis, hasBasis := effective.FlexBasis.Resolve(availableMain)
		if !hasBasis {
			if isRow {
				basis, hasBasis = effective.Width.Resolve(availableMain)
			} else {
				basis, hasBasis = effective.Height.Resolve(availableMain)
			}
		}

		hypoCross := availableCross
		var measureConstraints Constraints
		if isRow {
			w := availableMain
			if hasBasis {
				w = basis
			}
			measureConstraints = Constraints{Width: w, Height: hypoCross}
		} else {
			h := availableMain
			if hasBasis {
				h = basis
			}
			measureConstraints = Constraints{Width: hypoCross, Height: h}
		}
		box := computeNodeBox(doc, child, measureConstraints, false, opts)
		bb := box.BorderBoxSize()

		if !hasBasis {
			if isRow {
				basis = bb.Width
			} else {
				basis = bb.Height
			}
		}

		minMain, hasMinMain := 0, false
		maxMain, hasMaxMain := 0, false
		if isRow {
			minMain, hasMinMain = effective.MinWidth.Resolve(availableMain)
			maxMain, hasMaxMain = effective.MaxWidth.Resolve(availableMain)
		} else {
			minMain, hasMinMain = effective.MinHeight.Resolve(availableMain)
			maxMain, hasMaxMain = effective.MaxHeight.Resolve(availableMain)
		}

		crossSize := bb.Width
		if isRow {
			crossSize = bb.Height
		}

		items = append(items, &flexItem{
			id: child, style: effective, margin: margin,
			basis: basis, grow: effective.FlexGrow, shrink: effective.FlexShrink,
			minMain: minMain, hasMinMain: hasMinMain, maxMain: maxMain, hasMaxMain: hasMaxMain,
			mainSize: basis, crossSize: crossSize, alignSelf: effective.AlignSelf,
		})
	}
	return items
}

// collectFlexLines packs items into lines. Nowrap puts everything on
// one line; otherwise items are greedily packed while they still fit.
func collectFlexLines(items []*flexItem, wrap Keyword, availableMain, mainGap int) []*flexLine {
	if wrap == KeywordNowrap || len(items) == 0 {
		return []*flexLine{{items: items}}
	}
	var lines []*flexLine
	var current []*flexItem
	width := 0
	for _, it := range items {
		outer := it.basis + it.margin.mainOuter(true)
		gap := 0
		if len(current) > 0 {
			gap = mainGap
		}
		if len(current) > 0 && width+gap+outer > availableMain {
			lines = append(lines, &flexLine{items: current})
			current = nil
			width = 0
			gap = 0
		}
		current = append(current, it)
		width += gap + outer
	}
	if len(current) > 0 {
		lines = append(lines, &flexLine{items: current})
	}
	return lines
}

// resolveFlexibleLengths runs the grow/shrink freeze loop for one
// line per spec.md §4.7 step 3: items that would overflow or violate
// their own min/max clamp freeze at the clamped size, and the
// remaining free space (or deficit) is redistributed among the items
// still flexible, repeating until nothing more clamps.
func resolveFlexibleLengths(items []*flexItem, availableMain, mainGap int) {
	if len(items) == 0 {
		return
	}
	sumHypothetical := 0
	for _, it := range items {
		sumHypothetical += it.basis + it.margin.mainOuter(true)
	}
	if n := len(items); n > 1 {
		sumHypothetical += mainGap * (n - 1)
	}
	free := availableMain - sumHypothetical

	for _, it := range items {
		it.mainSize = it.basis
		it.frozen = it.grow == 0 && it.shrink == 0 && free == 0
	}

	if free > 0 {
		growFlexItems(items, free)
	} else if free < 0 {
		shrinkFlexItems(items, -free)
	}
}

func growFlexItems(items []*flexItem, free int) {
	remaining := float64(free)
	for {
		totalGrow := 0.0
		for _, it := range items {
			if !it.frozen {
				totalGrow += it.grow
			}
		}
		if totalGrow == 0 || remaining <= 0 {
			break
		}
		clampedAny := false
		for _, it := range items {
			if it.frozen {
				continue
			}
			share := remaining * it.grow / totalGrow
			candidate := it.basis + int(math.Floor(share))
			if it.hasMaxMain && candidate > it.maxMain {
				remaining -= float64(it.maxMain - it.basis)
				it.mainSize = it.maxMain
				it.frozen = true
				clampedAny = true
				continue
			}
			it.mainSize = candidate
		}
		if !clampedAny {
			break
		}
	}
	for _, it := range items {
		it.frozen = true
	}
}

func shrinkFlexItems(items []*flexItem, deficit int) {
	remaining := float64(deficit)
	for {
		totalWeight := 0.0
		for _, it := range items {
			if !it.frozen {
				totalWeight += it.shrink * float64(it.basis)
			}
		}
		if totalWeight == 0 || remaining <= 0 {
			break
		}
		clampedAny := false
		for _, it := range items {
			if it.frozen {
				continue
			}
			weight := it.shrink * float64(it.basis)
			share := remaining * weight / totalWeight
			candidate := it.basis - int(math.Floor(share))
			if it.hasMinMain && candidate < it.minMain {
				remaining -= float64(it.basis - it.minMain)
				it.mainSize = it.minMain
				it.frozen = true
				clampedAny = true
				continue
			}
			if candidate < 0 {
				candidate = 0
			}
			it.mainSize = candidate
		}
		if !clampedAny {
			break
		}
	}
	for _, it := range items {
		it.frozen = true
	}
}
