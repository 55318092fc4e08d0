package vellum

import "fmt"

// Edges holds a per-side value for the box model's margin, border and
// padding layers, in CSS clockwise order (Top, Right, Bottom, Left).
//
// Sizes derived from Edges saturate at zero on the low end: a computed
// box never reports a negative dimension. This mirrors the saturating
// u16 arithmetic spec.md requires of ResolvedBox; Go has no native
// saturating integer type, so Clamped, Size.Add, BorderBoxSize and
// MarginBoxSize clamp explicitly. Horizontal and Vertical return plain
// sums and do not clamp.
type Edges struct {
	Top, Right, Bottom, Left int
}

// NoEdges is the zero value, used as the default for margin/padding
// when a style leaves them unset.
var NoEdges = Edges{}

// NewEdges builds an Edges value using CSS shorthand notation:
//
//	NewEdges()           // all sides 0
//	NewEdges(5)          // all sides 5
//	NewEdges(10, 20)     // top/bottom 10, left/right 20
//	NewEdges(1, 2, 3)    // top 1, left/right 2, bottom 3
//	NewEdges(1, 2, 3, 4) // top 1, right 2, bottom 3, left 4
//
// This is the same 1/2/3/4-value expansion spec.md §4.2 specifies for
// the margin/padding shorthand properties.
func NewEdges(values ...int) Edges {
	var e Edges
	switch len(values) {
	case 0:
		// all zero
	case 1:
		e.Top, e.Right, e.Bottom, e.Left = values[0], values[0], values[0], values[0]
	case 2:
		e.Top, e.Bottom = values[0], values[0]
		e.Right, e.Left = values[1], values[1]
	case 3:
		e.Top, e.Right, e.Left, e.Bottom = values[0], values[1], values[1], values[2]
	default:
		e.Top, e.Right, e.Bottom, e.Left = values[0], values[1], values[2], values[3]
	}
	return e
}

func (e Edges) String() string {
	return fmt.Sprintf("(%d %d %d %d)", e.Top, e.Right, e.Bottom, e.Left)
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() int { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e Edges) Vertical() int { return e.Top + e.Bottom }

// Clamped returns e with every side clamped to be non-negative.
func (e Edges) Clamped() Edges {
	return Edges{
		Top:    max(e.Top, 0),
		Right:  max(e.Right, 0),
		Bottom: max(e.Bottom, 0),
		Left:   max(e.Left, 0),
	}
}

// Size is a width/height pair. Layout code works in content-area,
// border-box and margin-box sizes, all represented by Size.
type Size struct {
	Width, Height int
}

// Add returns the componentwise, non-negative-clamped sum of two sizes.
func (s Size) Add(o Size) Size {
	return Size{Width: max(s.Width+o.Width, 0), Height: max(s.Height+o.Height, 0)}
}

// Rect is an axis-aligned rectangle in absolute cell coordinates, shared
// by the layout, hit-test and paint-protocol code.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the point (x, y) falls within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// ResolvedBox is the outcome of laying out one node: its content size
// plus the margin/border/padding edges CSS requires for deriving the
// border-box and margin-box sizes.
type ResolvedBox struct {
	Content Size
	Margin  Edges
	Border  Edges
	Padding Edges
}

// ZeroBox is the all-zero ResolvedBox used for display:none nodes and
// marker nodes.
var ZeroBox = ResolvedBox{}

// BorderBoxSize returns content size plus border and padding, the
// "border_box_size = content_size + border + padding" invariant from
// spec.md §8.
func (b ResolvedBox) BorderBoxSize() Size {
	return Size{
		Width:  max(b.Content.Width+b.Border.Horizontal()+b.Padding.Horizontal(), 0),
		Height: max(b.Content.Height+b.Border.Vertical()+b.Padding.Vertical(), 0),
	}
}

// MarginBoxSize returns the border-box size plus margin:
// "margin_box_size = border_box_size + margin".
func (b ResolvedBox) MarginBoxSize() Size {
	bb := b.BorderBoxSize()
	return Size{
		Width:  max(bb.Width+b.Margin.Horizontal(), 0),
		Height: max(bb.Height+b.Margin.Vertical(), 0),
	}
}
