package vellum

import "math"

// Length is a CSS-subset length: a fixed cell count, a percentage of
// some reference size (resolved by the layout engine, not here), or a
// calc() expression over both. Percent is stored as a 0-100 value
// following spec.md §3, not 0.0-1.0.
type Length struct {
	kind    lengthKind
	cells   int
	percent float64
	calc    *CalcExpr
}

type lengthKind uint8

const (
	lengthCells lengthKind = iota
	lengthPercent
	lengthCalc
)

// Cells returns a fixed-cell-count Length.
func Cells(n int) Length { return Length{kind: lengthCells, cells: n} }

// Percent returns a percentage Length; pct is in the 0-100 range.
func Percent(pct float64) Length { return Length{kind: lengthPercent, percent: pct} }

// CalcLength wraps a CalcExpr as a Length.
func CalcLength(e *CalcExpr) Length { return Length{kind: lengthCalc, calc: e} }

// IsCalc, IsPercent, IsCells report the Length's concrete variant.
func (l Length) IsCalc() bool    { return l.kind == lengthCalc }
func (l Length) IsPercent() bool { return l.kind == lengthPercent }
func (l Length) IsCells() bool   { return l.kind == lengthCells }

// Resolve computes l's value in cells given the reference size a
// percentage would resolve against (the parent's content width, for
// instance). Fixed-cell lengths ignore the reference entirely.
func (l Length) Resolve(reference int) int {
	switch l.kind {
	case lengthCells:
		return l.cells
	case lengthPercent:
		return int(math.Round(float64(reference) * l.percent / 100))
	case lengthCalc:
		return l.calc.Eval(reference)
	}
	return 0
}

// CalcExpr is a node in a calc() expression tree: sums/differences of
// cell and percentage terms, scaled by plain-number factors through
// Mul/Div. This mirrors spec.md §3's
// `Cells(i16) | Percent(f32) | Add | Sub | Mul(Expr,f32) | Div(Expr,f32)`.
type CalcExpr struct {
	op      calcOp
	cells   int
	percent float64
	left    *CalcExpr
	right   *CalcExpr
	factor  float64
}

type calcOp uint8

const (
	calcCells calcOp = iota
	calcPercent
	calcAdd
	calcSub
	calcMul
	calcDiv
)

func CalcCells(n int) *CalcExpr         { return &CalcExpr{op: calcCells, cells: n} }
func CalcPercent(pct float64) *CalcExpr { return &CalcExpr{op: calcPercent, percent: pct} }
func CalcAdd(a, b *CalcExpr) *CalcExpr  { return &CalcExpr{op: calcAdd, left: a, right: b} }
func CalcSub(a, b *CalcExpr) *CalcExpr  { return &CalcExpr{op: calcSub, left: a, right: b} }
func CalcMul(a *CalcExpr, factor float64) *CalcExpr {
	return &CalcExpr{op: calcMul, left: a, factor: factor}
}
func CalcDiv(a *CalcExpr, factor float64) *CalcExpr {
	return &CalcExpr{op: calcDiv, left: a, factor: factor}
}

// Eval resolves the expression to a cell count against reference, the
// size a percentage term would resolve against.
func (e *CalcExpr) Eval(reference int) int {
	if e == nil {
		return 0
	}
	switch e.op {
	case calcCells:
		return e.cells
	case calcPercent:
		return int(math.Round(float64(reference) * e.percent / 100))
	case calcAdd:
		return e.left.Eval(reference) + e.right.Eval(reference)
	case calcSub:
		return e.left.Eval(reference) - e.right.Eval(reference)
	case calcMul:
		return int(math.Round(float64(e.left.Eval(reference)) * e.factor))
	case calcDiv:
		if e.factor == 0 {
			return 0
		}
		return int(math.Round(float64(e.left.Eval(reference)) / e.factor))
	}
	return 0
}

// DimensionKind distinguishes auto/length/none for width/height-like
// properties.
type DimensionKind uint8

const (
	DimAuto DimensionKind = iota
	DimLength
	DimNone
)

// Dimension wraps Auto | Length | None, as spec.md §3 describes.
type Dimension struct {
	Kind   DimensionKind
	Length Length
}

var AutoDimension = Dimension{Kind: DimAuto}
var NoneDimension = Dimension{Kind: DimNone}

func LengthDimension(l Length) Dimension { return Dimension{Kind: DimLength, Length: l} }

// Resolve returns the dimension's cell value and whether it is
// definite (Length); Auto/None both return (0, false) since neither
// contributes a definite size on its own.
func (d Dimension) Resolve(reference int) (int, bool) {
	if d.Kind != DimLength {
		return 0, false
	}
	return d.Length.Resolve(reference), true
}
