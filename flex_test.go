package vellum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func makeFlexItem(mainSize int, grow, shrink float64) *flexItem {
	return &flexItem{
		basis: mainSize, grow: grow, shrink: shrink,
		mainSize: mainSize, crossSize: 10,
	}
}

func makeAlignItem(mainSize, crossSize int) *flexItem {
	return &flexItem{basis: mainSize, mainSize: mainSize, crossSize: crossSize, frozen: true, alignSelf: KeywordAuto}
}

func TestResolveFlexibleLengthsNoGrowWhenNoFreeSpace(t *testing.T) {
	items := []*flexItem{makeFlexItem(50, 1, 1), makeFlexItem(50, 1, 1)}
	resolveFlexibleLengths(items, 100, 0)
	require.Equal(t, 50, items[0].mainSize)
	require.Equal(t, 50, items[1].mainSize)
}

func TestResolveFlexibleLengthsGrowDistributesFreeSpace(t *testing.T) {
	items := []*flexItem{makeFlexItem(20, 1, 1), makeFlexItem(20, 1, 1)}
	resolveFlexibleLengths(items, 100, 0)
	require.Equal(t, 50, items[0].mainSize)
	require.Equal(t, 50, items[1].mainSize)
}

func TestResolveFlexibleLengthsGrowRespectsRatio(t *testing.T) {
	items := []*flexItem{makeFlexItem(20, 1, 1), makeFlexItem(20, 3, 1)}
	resolveFlexibleLengths(items, 100, 0)
	require.Equal(t, 35, items[0].mainSize)
	require.Equal(t, 65, items[1].mainSize)
}

func TestResolveFlexibleLengthsGrowZeroNoGrowth(t *testing.T) {
	items := []*flexItem{makeFlexItem(20, 0, 1), makeFlexItem(20, 1, 1)}
	resolveFlexibleLengths(items, 100, 0)
	require.Equal(t, 20, items[0].mainSize)
	require.Equal(t, 80, items[1].mainSize)
}

func TestResolveFlexibleLengthsShrinkRemovesOverflow(t *testing.T) {
	items := []*flexItem{makeFlexItem(60, 1, 1), makeFlexItem(60, 1, 1)}
	resolveFlexibleLengths(items, 100, 0)
	require.Equal(t, 50, items[0].mainSize)
	require.Equal(t, 50, items[1].mainSize)
}

func TestResolveFlexibleLengthsShrinkRespectsMin(t *testing.T) {
	a := makeFlexItem(60, 1, 1)
	a.minMain, a.hasMinMain = 55, true
	b := makeFlexItem(60, 1, 1)
	items := []*flexItem{a, b}
	resolveFlexibleLengths(items, 100, 0)
	require.Equal(t, 55, items[0].mainSize)
	require.Equal(t, 45, items[1].mainSize)
}

func TestResolveFlexibleLengthsGrowRespectsMax(t *testing.T) {
	a := makeFlexItem(20, 1, 1)
	a.maxMain, a.hasMaxMain = 30, true
	b := makeFlexItem(20, 1, 1)
	items := []*flexItem{a, b}
	resolveFlexibleLengths(items, 100, 0)
	require.Equal(t, 30, items[0].mainSize)
	require.Equal(t, 70, items[1].mainSize)
}

func TestResolveFlexibleLengthsGapReducesAvailableSpace(t *testing.T) {
	items := []*flexItem{makeFlexItem(20, 1, 1), makeFlexItem(20, 1, 1)}
	resolveFlexibleLengths(items, 100, 10)
	require.Equal(t, 45, items[0].mainSize)
	require.Equal(t, 45, items[1].mainSize)
}

func TestPlaceMainAxisFlexStart(t *testing.T) {
	items := []*flexItem{makeAlignItem(20, 10), makeAlignItem(30, 10)}
	placeMainAxis(items, KeywordFlexStart, 100, 0, true)
	require.Equal(t, 0, items[0].mainPos)
	require.Equal(t, 20, items[1].mainPos)
}

func TestPlaceMainAxisFlexEnd(t *testing.T) {
	items := []*flexItem{makeAlignItem(20, 10), makeAlignItem(30, 10)}
	placeMainAxis(items, KeywordFlexEnd, 100, 0, true)
	require.Equal(t, 50, items[0].mainPos)
	require.Equal(t, 70, items[1].mainPos)
}

func TestPlaceMainAxisCenter(t *testing.T) {
	items := []*flexItem{makeAlignItem(20, 10), makeAlignItem(30, 10)}
	placeMainAxis(items, KeywordCenter, 100, 0, true)
	require.Equal(t, 25, items[0].mainPos)
	require.Equal(t, 45, items[1].mainPos)
}

func TestPlaceMainAxisSpaceBetween(t *testing.T) {
	items := []*flexItem{makeAlignItem(20, 10), makeAlignItem(20, 10), makeAlignItem(20, 10)}
	placeMainAxis(items, KeywordSpaceBetween, 100, 0, true)
	require.Equal(t, 0, items[0].mainPos)
	require.Equal(t, 40, items[1].mainPos)
	require.Equal(t, 80, items[2].mainPos)
}

func TestPlaceMainAxisWithGap(t *testing.T) {
	items := []*flexItem{makeAlignItem(20, 10), makeAlignItem(20, 10)}
	placeMainAxis(items, KeywordFlexStart, 100, 10, true)
	require.Equal(t, 0, items[0].mainPos)
	require.Equal(t, 30, items[1].mainPos)
}

func TestAlignItemsInLineFlexStart(t *testing.T) {
	line := &flexLine{items: []*flexItem{makeAlignItem(20, 10), makeAlignItem(20, 15)}, crossSize: 20}
	alignItemsInLine(line, KeywordFlexStart, true)
	require.Equal(t, 0, line.items[0].crossPos)
	require.Equal(t, 0, line.items[1].crossPos)
}

func TestAlignItemsInLineFlexEnd(t *testing.T) {
	line := &flexLine{items: []*flexItem{makeAlignItem(20, 10), makeAlignItem(20, 15)}, crossSize: 20}
	alignItemsInLine(line, KeywordFlexEnd, true)
	require.Equal(t, 10, line.items[0].crossPos)
	require.Equal(t, 5, line.items[1].crossPos)
}

func TestAlignItemsInLineCenter(t *testing.T) {
	line := &flexLine{items: []*flexItem{makeAlignItem(20, 10), makeAlignItem(20, 20)}, crossSize: 20}
	alignItemsInLine(line, KeywordCenter, true)
	require.Equal(t, 5, line.items[0].crossPos)
	require.Equal(t, 0, line.items[1].crossPos)
}

func TestAlignItemsInLineStretch(t *testing.T) {
	line := &flexLine{items: []*flexItem{makeAlignItem(20, 10), makeAlignItem(20, 15)}, crossSize: 30}
	alignItemsInLine(line, KeywordStretch, true)
	require.Equal(t, 30, line.items[0].crossSize)
	require.Equal(t, 30, line.items[1].crossSize)
	require.Equal(t, 0, line.items[0].crossPos)
	require.Equal(t, 0, line.items[1].crossPos)
}

func TestDistributeCrossAxisFlexStart(t *testing.T) {
	lines := []*flexLine{{crossSize: 20}, {crossSize: 30}}
	distributeCrossAxis(lines, KeywordFlexStart, 100, 0, true)
	require.Equal(t, 0, lines[0].crossPos)
	require.Equal(t, 20, lines[1].crossPos)
}

func TestDistributeCrossAxisFlexEnd(t *testing.T) {
	lines := []*flexLine{{crossSize: 20}, {crossSize: 30}}
	distributeCrossAxis(lines, KeywordFlexEnd, 100, 0, true)
	require.Equal(t, 50, lines[0].crossPos)
	require.Equal(t, 70, lines[1].crossPos)
}

func TestDistributeCrossAxisCenter(t *testing.T) {
	lines := []*flexLine{{crossSize: 20}, {crossSize: 30}}
	distributeCrossAxis(lines, KeywordCenter, 100, 0, true)
	require.Equal(t, 25, lines[0].crossPos)
	require.Equal(t, 45, lines[1].crossPos)
}

func TestDistributeCrossAxisSpaceBetween(t *testing.T) {
	lines := []*flexLine{{crossSize: 20}, {crossSize: 20}, {crossSize: 20}}
	distributeCrossAxis(lines, KeywordSpaceBetween, 100, 0, true)
	require.Equal(t, 0, lines[0].crossPos)
	require.Equal(t, 40, lines[1].crossPos)
	require.Equal(t, 80, lines[2].crossPos)
}

func TestDistributeCrossAxisStretch(t *testing.T) {
	lines := []*flexLine{{crossSize: 20}, {crossSize: 20}}
	distributeCrossAxis(lines, KeywordStretch, 100, 0, true)
	require.Equal(t, 50, lines[0].crossSize)
	require.Equal(t, 50, lines[1].crossSize)
	require.Equal(t, 0, lines[0].crossPos)
	require.Equal(t, 50, lines[1].crossPos)
}

func TestDistributeCrossAxisGap(t *testing.T) {
	lines := []*flexLine{{crossSize: 20}, {crossSize: 20}}
	distributeCrossAxis(lines, KeywordFlexStart, 100, 10, true)
	require.Equal(t, 0, lines[0].crossPos)
	require.Equal(t, 30, lines[1].crossPos)
}

// layoutFlex end-to-end: a flex row of two auto-width elements with
// equal flex-grow fills the remaining space evenly.
func TestLayoutFlexRowGrowFillsContainer(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	a := doc.NewElement(Intern("div"))
	b := doc.NewElement(Intern("div"))
	doc.AppendChild(root, a)
	doc.AppendChild(root, b)

	rootStyle := DefaultComputedStyle()
	rootStyle.Display = KeywordFlex
	doc.setComputedStyle(root, &rootStyle, nil)

	childStyle := func(grow float64) *ComputedStyle {
		s := DefaultComputedStyle()
		s.FlexGrow = grow
		s.Width = AutoDimension
		return &s
	}
	aStyle := childStyle(1)
	bStyle := childStyle(1)
	doc.setComputedStyle(a, aStyle, nil)
	doc.setComputedStyle(b, bStyle, nil)

	box := ComputeLayout(doc, root, Size{Width: 40, Height: 5}, LayoutOptions{})
	require.Equal(t, 40, box.Content.Width)

	la := doc.NodeLayout(a)
	lb := doc.NodeLayout(b)
	require.Equal(t, 20, la.Content.Width)
	require.Equal(t, 20, lb.Content.Width)
	require.Equal(t, 0, la.X)
	require.Equal(t, 20, lb.X)
}
