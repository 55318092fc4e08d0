package vellum

// distribution is the (offset, between) pair one of the distribution
// keywords shared by align-content and justify-content resolves to:
// offset is the leading gap before the first item/line, between is the
// extra gap inserted between each pair.
type distribution struct {
	offset  float64
	between float64
}

func resolveDistribution(kind Keyword, free float64, n int) distribution {
	switch kind {
	case KeywordFlexEnd:
		return distribution{offset: free}
	case KeywordCenter:
		return distribution{offset: free / 2}
	case KeywordSpaceBetween:
		if n <= 1 {
			return distribution{}
		}
		return distribution{between: free / float64(n-1)}
	case KeywordSpaceAround:
		if n <= 1 {
			return distribution{offset: free / 2}
		}
		space := free / float64(n)
		return distribution{offset: space / 2, between: space}
	case KeywordSpaceEvenly:
		space := free / float64(n+1)
		return distribution{offset: space, between: space}
	case KeywordStretch:
		return distribution{}
	default: // FlexStart
		return distribution{}
	}
}

// distributeCrossAxis positions each line within the container's
// cross space per align-content (spec.md §4.7 step 4), stretching
// line cross-sizes first when align-content is stretch.
func distributeCrossAxis(lines []*flexLine, alignContent Keyword, availableCross, crossGap int, isRow bool) {
	if len(lines) == 0 {
		return
	}
	used := 0
	for _, l := range lines {
		used += l.crossSize
	}
	if n := len(lines); n > 1 {
		used += crossGap * (n - 1)
	}
	free := float64(availableCross - used)

	if alignContent == KeywordStretch {
		extra := free / float64(len(lines))
		for _, l := range lines {
			l.crossSize += int(extra)
		}
		free = 0
	}

	dist := resolveDistribution(alignContent, free, len(lines))
	pos := dist.offset
	for _, l := range lines {
		l.crossPos = int(pos)
		pos += float64(l.crossSize) + crossGap + dist.between
	}
}

// placeMainAxis applies justify-content to position every item along
// the main axis within its line (spec.md §4.7 step 5).
func placeMainAxis(items []*flexItem, justify Keyword, availableMain, mainGap int, isRow bool) {
	if len(items) == 0 {
		return
	}
	used := 0
	for _, it := range items {
		used += it.mainSize + it.margin.mainOuter(isRow)
	}
	if n := len(items); n > 1 {
		used += mainGap * (n - 1)
	}
	free := float64(availableMain - used)
	dist := resolveDistribution(justify, free, len(items))

	pos := dist.offset
	for _, it := range items {
		leading := it.margin.Left
		if !isRow {
			leading = it.margin.Top
		}
		it.mainPos = int(pos) + leading
		pos += float64(it.mainSize+it.margin.mainOuter(isRow)) + mainGap + dist.between
	}
}

// alignItemsInLine resolves each item's align-self (falling back to
// the container's align-items) and positions/stretches it across the
// line's cross-size (spec.md §4.7 step 6).
func alignItemsInLine(line *flexLine, containerAlign Keyword, isRow bool) {
	for _, it := range line.items {
		align := it.alignSelf
		if align == KeywordAuto {
			align = containerAlign
		}
		crossMargin := it.margin.crossOuter(isRow)
		available := line.crossSize - crossMargin
		switch align {
		case KeywordStretch:
			it.crossSize = max(available, 0)
			it.crossPos = 0
		case KeywordFlexEnd:
			it.crossPos = line.crossSize - it.crossSize - crossMargin
		case KeywordCenter:
			it.crossPos = (line.crossSize - it.crossSize - crossMargin) / 2
		default: // FlexStart, Baseline (treated as start)
			it.crossPos = 0
		}
		leading := it.margin.Top
		if !isRow {
			leading = it.margin.Left
		}
		it.crossPos += leading
	}
}

// writeBackFlexItem re-measures the item at its final resolved size
// (so text wrapping and nested layout reflect the real box, not the
// step-1 hypothetical one) and writes its Layout onto the document.
//
// computeNodeBox receives the item's final main and cross sizes as
// constraints and subtracts the item's own margin, border and padding
// per axis: the content height takes off border.Vertical() +
// padding.Vertical(), the width border.Horizontal() +
// padding.Horizontal(). The original implementation subtracted
// border.horizontal() for the height as well, mis-measuring bordered
// flex children vertically.
func writeBackFlexItem(doc *Document, it *flexItem, isRow bool, lineCrossPos int, opts LayoutOptions) {
	var w, h int
	if isRow {
		w, h = it.mainSize, it.crossSize
	} else {
		w, h = it.crossSize, it.mainSize
	}
	box := computeNodeBox(doc, it.id, Constraints{Width: w, Height: h}, true, opts)

	var x, y int
	if isRow {
		x, y = it.mainPos, lineCrossPos+it.crossPos
	} else {
		x, y = lineCrossPos+it.crossPos, it.mainPos
	}
	doc.setLayout(it.id, Layout{X: x, Y: y, ResolvedBox: box})
}
