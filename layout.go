package vellum

// Constraints bounds the space a node may lay itself out within: a
// definite width and height. Both fields are plain ints; there is no
// representation for an unconstrained axis, and every call site passes
// concrete sizes.
type Constraints struct {
	Width, Height int
}

// ConstraintsFromSize returns the constraints a viewport of size
// imposes on the root node: both axes fully definite.
func ConstraintsFromSize(size Size) Constraints {
	return Constraints{Width: size.Width, Height: size.Height}
}

// LayoutOptions tunes engine behaviour that differs from a strict port
// of the original semantics; see DESIGN.md's Open Question
// resolutions for the rationale behind each flag's default.
type LayoutOptions struct {
	// StrictGrid, when true, makes a display:grid node panic instead of
	// degrading to block layout, matching the original's "Grid: reserved;
	// may panic if invoked" behaviour exactly. Default false.
	StrictGrid bool
}

// ComputeLayout lays out doc starting at root against viewport,
// ignoring any cached needs_layout state (force=true at the root, per
// spec.md §4.6).
func ComputeLayout(doc *Document, root NodeID, viewport Size, opts LayoutOptions) ResolvedBox {
	return computeNodeBox(doc, root, ConstraintsFromSize(viewport), true, opts)
}

// computeNodeBox is the recursive layout contract: resolve node's own
// box model, dispatch to the formatting context its display value
// selects, and write the result onto the document.
func computeNodeBox(doc *Document, id NodeID, c Constraints, force bool, opts LayoutOptions) ResolvedBox {
	n := doc.get(id)
	if n == nil {
		return ZeroBox
	}

	if !force && !n.needsLayout {
		return n.layout.ResolvedBox
	}

	switch n.kind {
	case KindText:
		box := layoutText(doc, id, c)
		doc.clearNeedsLayout(id)
		n.layout.ResolvedBox = box
		return box
	case KindMarker:
		doc.clearNeedsLayout(id)
		n.layout.ResolvedBox = ZeroBox
		return ZeroBox
	}

	doc.clearNeedsLayout(id)

	style := n.computedStyle
	if style == nil {
		style = new(ComputedStyle)
		*style = DefaultComputedStyle()
	}
	if style.Display == KeywordNone {
		n.layout.ResolvedBox = ZeroBox
		return ZeroBox
	}

	margin := resolveEdgesDimension(style.Margin, c.Width)
	border := resolveBorderEdges(style.BorderStyle)
	padding := resolveEdgesLength(style.Padding, c.Width)

	minW, hasMinW := style.MinWidth.Resolve(c.Width)
	maxW, hasMaxW := style.MaxWidth.Resolve(c.Width)
	minH, hasMinH := style.MinHeight.Resolve(c.Height)
	maxH, hasMaxH := style.MaxHeight.Resolve(c.Height)
	explicitW, hasExplicitW := style.Width.Resolve(c.Width)
	explicitH, hasExplicitH := style.Height.Resolve(c.Height)

	outerW := c.Width - margin.Horizontal()
	outerH := c.Height - margin.Vertical()
	if hasExplicitW {
		outerW = explicitW + border.Horizontal() + padding.Horizontal()
	}
	if hasExplicitH {
		outerH = explicitH + border.Vertical() + padding.Vertical()
	}

	contentConstraints := Constraints{
		Width:  max(outerW-border.Horizontal()-padding.Horizontal(), 0),
		Height: max(outerH-border.Vertical()-padding.Vertical(), 0),
	}

	var content Size
	switch style.Display {
	case KeywordFlex:
		content = layoutFlex(doc, id, *style, contentConstraints, opts)
	case KeywordInline:
		content = layoutInline(doc, id, contentConstraints, opts)
	case KeywordGrid:
		if opts.StrictGrid {
			panic(ErrUnsupportedDisplay)
		}
		content = layoutBlock(doc, id, contentConstraints, opts)
	default:
		content = layoutBlock(doc, id, contentConstraints, opts)
	}

	content.Width = clampDimension(content.Width, minW, hasMinW, maxW, hasMaxW)
	content.Height = clampDimension(content.Height, minH, hasMinH, maxH, hasMaxH)
	if hasExplicitW {
		content.Width = explicitW
	}
	if hasExplicitH {
		content.Height = explicitH
	}

	box := ResolvedBox{Content: content, Margin: margin.Clamped(), Border: border, Padding: padding.Clamped()}
	n.layout.ResolvedBox = box
	return box
}

func clampDimension(v, min int, hasMin bool, max int, hasMax bool) int {
	if hasMin && v < min {
		v = min
	}
	if hasMax && v > max {
		v = max
	}
	return v
}

func resolveEdgesDimension(d EdgesOf[Dimension], reference int) Edges {
	resolve := func(dim Dimension) int {
		v, ok := dim.Resolve(reference)
		if !ok {
			return 0
		}
		return v
	}
	return Edges{Top: resolve(d.Top), Right: resolve(d.Right), Bottom: resolve(d.Bottom), Left: resolve(d.Left)}
}

func resolveEdgesLength(d EdgesOf[Length], reference int) Edges {
	return Edges{
		Top:    d.Top.Resolve(reference),
		Right:  d.Right.Resolve(reference),
		Bottom: d.Bottom.Resolve(reference),
		Left:   d.Left.Resolve(reference),
	}
}

// resolveBorderEdges gives every non-None border side exactly 1 cell
// of width, per the terminal-specific simplification spec.md's border
// model makes (box-drawing glyphs are always single-width).
func resolveBorderEdges(style EdgesOf[Keyword]) Edges {
	w := func(k Keyword) int {
		if k == KeywordNone {
			return 0
		}
		return 1
	}
	return Edges{Top: w(style.Top), Right: w(style.Right), Bottom: w(style.Bottom), Left: w(style.Left)}
}

// layoutBlock stacks children top-to-bottom. Block margin collapsing
// is not implemented.
func layoutBlock(doc *Document, id NodeID, c Constraints, opts LayoutOptions) Size {
	y := 0
	maxWidth := 0
	for child := doc.FirstChild(id); child != NoNode; child = doc.NextSibling(child) {
		if doc.Kind(child) == KindElement {
			if s := doc.ComputedStyle(child); s != nil && s.Display == KeywordNone {
				doc.setLayout(child, Layout{ResolvedBox: ZeroBox})
				doc.get(child).needsLayout = false
				continue
			}
		}
		childMargin := childMarginOf(doc, child, c.Width)
		y += childMargin.Top
		childConstraints := Constraints{Width: max(c.Width-childMargin.Left-childMargin.Right, 0), Height: max(c.Height-y, 0)}
		box := computeNodeBox(doc, child, childConstraints, false, opts)
		doc.setLayout(child, Layout{X: childMargin.Left, Y: y, ResolvedBox: box})
		bb := box.BorderBoxSize()
		maxWidth = max(maxWidth, bb.Width+childMargin.Horizontal())
		y += bb.Height + childMargin.Bottom
	}
	return Size{Width: c.Width, Height: y}
}

// layoutInline lays children left-to-right, wrapping onto a new line
// when the next child would overflow the available width.
func layoutInline(doc *Document, id NodeID, c Constraints, opts LayoutOptions) Size {
	x, y := 0, 0
	lineHeight := 0
	maxLineWidth := 0
	for child := doc.FirstChild(id); child != NoNode; child = doc.NextSibling(child) {
		childMargin := childMarginOf(doc, child, c.Width)
		box := computeNodeBox(doc, child, Constraints{Width: c.Width, Height: c.Height}, false, opts)
		bb := box.BorderBoxSize()
		outerW := bb.Width + childMargin.Horizontal()
		if x > 0 && x+outerW > c.Width {
			maxLineWidth = max(maxLineWidth, x)
			y += lineHeight
			x, lineHeight = 0, 0
		}
		doc.setLayout(child, Layout{X: x + childMargin.Left, Y: y + childMargin.Top, ResolvedBox: box})
		x += outerW
		lineHeight = max(lineHeight, bb.Height+childMargin.Vertical())
	}
	maxLineWidth = max(maxLineWidth, x)
	return Size{Width: maxLineWidth, Height: y + lineHeight}
}

func childMarginOf(doc *Document, child NodeID, reference int) Edges {
	if s := doc.ComputedStyle(child); s != nil {
		return resolveEdgesDimension(s.Margin, reference)
	}
	return NoEdges
}

// layoutText measures a text node per its effective white-space mode.
// The parent's white-space property governs wrapping (text nodes carry
// no style of their own, per spec.md §3's invariant).
func layoutText(doc *Document, id NodeID, c Constraints) ResolvedBox {
	text := doc.Text(id)
	whiteSpace := KeywordNormal
	if parent := doc.Parent(id); parent != NoNode {
		if s := doc.ComputedStyle(parent); s != nil {
			whiteSpace = s.WhiteSpace
		}
	}
	var size Size
	if whiteSpace == KeywordNowrapText {
		size.Width = displayWidth(text)
		if text != "" {
			size.Height = 1
		}
	} else {
		w, lines := wrapText(text, c.Width)
		size.Width, size.Height = w, lines
	}
	return ResolvedBox{Content: size}
}
