package vellum

// flexItem is one child collected for flex layout: its frozen/flexible
// main-size state plus the cross-size measured during pre-measurement
// (spec.md §4.7 step 1).
type flexItem struct {
	id     NodeID
	style  *ComputedStyle
	margin Edges

	basis      int // hypothetical main size before growing/shrinking
	grow       float64
	shrink     float64
	minMain    int
	hasMinMain bool
	maxMain    int
	hasMaxMain bool

	mainSize  int // resolved after step 3
	crossSize int // resolved after step 1 (pre-measure), then possibly stretched in step 6
	frozen    bool
	mainPos   int // resolved in step 5, relative to the line's main-axis origin
	crossPos  int // resolved in step 6, relative to the line's cross-axis origin

	alignSelf Keyword
}

type flexLine struct {
	items     []*flexItem
	crossSize int
	crossPos  int
}

func (e Edges) mainOuter(isRow bool) int {
	if isRow {
		return e.Horizontal()
	}
	return e.Vertical()
}
func (e Edges) crossOuter(isRow bool) int {
	if isRow {
		return e.Vertical()
	}
	return e.Horizontal()
}

// layoutFlex implements spec.md §4.7's seven-step algorithm and writes
// each item's final Layout onto the document.
func layoutFlex(doc *Document, id NodeID, style ComputedStyle, c Constraints, opts LayoutOptions) Size {
	isRow := style.FlexDirection == KeywordRow || style.FlexDirection == KeywordRowReverse
	isReverse := style.FlexDirection == KeywordRowReverse || style.FlexDirection == KeywordColumnReverse

	availableMain, availableCross := c.Width, c.Height
	if !isRow {
		availableMain, availableCross = c.Height, c.Width
	}

	// Step 1: collect and pre-measure items under the hypothetical
	// constraints; reversed directions only affect collection order,
	// never justify-content's own start/end semantics.
	items := collectFlexItems(doc, id, isRow, availableMain, availableCross, opts)
	if isReverse {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}

	rowGap, colGap := style.RowGap.Resolve(availableCross), style.ColumnGap.Resolve(availableMain)
	mainGap, crossGap := colGap, rowGap
	if !isRow {
		mainGap, crossGap = rowGap, colGap
	}

	// Step 2: line collection.
	lines := collectFlexLines(items, style.FlexWrap, availableMain, mainGap)
	if style.FlexWrap == KeywordWrapReverse {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}

	// Step 3: flexible-length resolution, independently per line.
	for _, line := range lines {
		resolveFlexibleLengths(line.items, availableMain, mainGap)
	}

	totalCross := 0
	for i, line := range lines {
		cross := 0
		for _, it := range line.items {
			cross = max(cross, it.crossSize+it.margin.crossOuter(isRow))
		}
		lines[i].crossSize = cross
		totalCross += cross
	}
	if len(lines) > 1 {
		totalCross += crossGap * (len(lines) - 1)
	}

	// Step 4: cross-axis distribution across lines (align-content).
	distributeCrossAxis(lines, style.AlignContent, availableCross, crossGap, isRow)

	maxLineMain := 0
	for _, line := range lines {
		// Step 5: main-axis placement within the line (justify-content).
		placeMainAxis(line.items, style.JustifyContent, availableMain, mainGap, isRow)
		// Step 6: align-items/align-self resolution within the line.
		alignItemsInLine(line, style.AlignItems, isRow)

		lineMain := 0
		for _, it := range line.items {
			lineMain += it.mainSize + it.margin.mainOuter(isRow)
		}
		if n := len(line.items); n > 1 {
			lineMain += mainGap * (n - 1)
		}
		maxLineMain = max(maxLineMain, lineMain)
	}

	// Step 7: write back.
	for _, line := range lines {
		for _, it := range line.items {
			writeBackFlexItem(doc, it, isRow, line.crossPos, opts)
		}
	}

	if isRow {
		return Size{Width: maxLineMain, Height: totalCross}
	}
	return Size{Width: totalCross, Height: maxLineMain}
}
