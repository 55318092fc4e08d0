package terminal

import "github.com/tekugo/vellum"

// Paint walks doc's laid-out tree from the root and issues the paint
// protocol (Fill/DrawBorder/DrawText) calls onto surface, then flushes
// once at the end. Absolute position is accumulated the same way
// Document.HitTest does: Layout.X/Y are parent-relative, so each level
// of the walk carries its parent's absolute origin forward.
func Paint(doc *vellum.Document, surface CellSurface) {
	paintNode(doc, doc.Root(), 0, 0, surface)
	surface.Flush()
}

func paintNode(doc *vellum.Document, id vellum.NodeID, parentX, parentY int, surface CellSurface) {
	l := doc.NodeLayout(id)
	x, y := parentX+l.X, parentY+l.Y

	switch doc.Kind(id) {
	case vellum.KindText:
		cs := styleOf(doc, doc.Parent(id))
		if cs != nil && cs.Visibility != vellum.KeywordHidden {
			bb := l.BorderBoxSize()
			surface.DrawText(x, y, doc.Text(id), bb.Width, cs.Color, cs.BackgroundColor,
				cs.FontWeight == vellum.KeywordBold, cs.FontStyle == vellum.KeywordItalic,
				cs.TextDecoration == vellum.KeywordUnderline)
		}
		return
	case vellum.KindMarker:
		return
	}

	cs := styleOf(doc, id)
	if cs == nil || cs.Display == vellum.KeywordNone {
		return
	}
	bb := l.BorderBoxSize()

	if cs.Visibility != vellum.KeywordHidden {
		surface.Fill(x, y, bb.Width, bb.Height, cs.Color, cs.BackgroundColor)
		paintBorders(surface, x, y, bb.Width, bb.Height, l, cs)
	}

	for _, child := range doc.Children(id) {
		paintNode(doc, child, x, y, surface)
	}
}

func styleOf(doc *vellum.Document, id vellum.NodeID) *vellum.ComputedStyle {
	if id == vellum.NoNode {
		return nil
	}
	return doc.ComputedStyle(id)
}

// paintBorders draws one box border per node. The paint protocol names
// a single DrawBorder call per rectangle (spec.md §6); a node with a
// uniform border (the common case — the `border`/`border-style`
// shorthands set all four sides alike) is drawn faithfully, and a node
// with mixed per-side styles is drawn using its top edge as the
// representative style/color rather than four independent calls.
func paintBorders(surface CellSurface, x, y, width, height int, l vellum.Layout, cs *vellum.ComputedStyle) {
	if l.Border.Top == 0 && l.Border.Right == 0 && l.Border.Bottom == 0 && l.Border.Left == 0 {
		return
	}
	if cs.BorderStyle.Top == vellum.KeywordNone {
		return
	}
	surface.DrawBorder(x, y, width, height, cs.BorderStyle.Top, cs.BorderColor.Top)
}
