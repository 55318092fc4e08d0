// Package terminal provides the concrete cell-surface collaborator the
// core's paint protocol targets: a tcell-backed implementation for real
// terminals, and a recording implementation for tests.
package terminal

import (
	"github.com/gdamore/tcell/v3"
	"github.com/tekugo/vellum"
)

// CellSurface is the abstract paint target a render pass draws onto: a
// rectangle of terminal cells addressed in absolute screen coordinates.
// It has no notion of a document tree, a style cascade or layout — the
// reconciler's paint walk is the only caller that knows about those.
type CellSurface interface {
	// Fill paints every cell in the rectangle with a space using fg/bg,
	// establishing a node's background before its border and content
	// are drawn on top.
	Fill(x, y, width, height int, fg, bg vellum.Color)

	// DrawBorder paints the outer border of a rectangle using the given
	// border-style keyword and color. KeywordNone and KeywordHidden (or
	// any keyword glyphsFor does not recognize) draw nothing.
	DrawBorder(x, y, width, height int, style vellum.Keyword, color vellum.Color)

	// DrawText paints a single line of text starting at (x, y), clipped
	// to maxWidth cells.
	DrawText(x, y int, text string, maxWidth int, fg, bg vellum.Color, bold, italic, underline bool)

	// Flush synchronizes any buffered drawing with the actual display.
	Flush()

	// Size reports the surface's current dimensions in cells.
	Size() (width, height int)
}

// Surface is the tcell-backed CellSurface used against a real terminal,
// grounded on the teacher's TcellScreen: a thin translation layer over
// the underlying tcell.Screen, one Put/Set per cell.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps an already-initialized tcell.Screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

func toTcellColor(c vellum.Color) tcell.Color {
	switch c.Kind {
	case vellum.ColorReset:
		return tcell.ColorDefault
	case vellum.ColorAnsi256:
		return tcell.PaletteColor(c.Index)
	default: // ColorNamed and ColorRGB both resolve to an RGB triple.
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
}

func cellStyle(fg, bg vellum.Color, bold, italic, underline bool) tcell.Style {
	st := tcell.StyleDefault.Foreground(toTcellColor(fg)).Background(toTcellColor(bg))
	if bold {
		st = st.Bold(true)
	}
	if italic {
		st = st.Italic(true)
	}
	if underline {
		st = st.Underline(true)
	}
	return st
}

func (s *Surface) Fill(x, y, width, height int, fg, bg vellum.Color) {
	st := cellStyle(fg, bg, false, false, false)
	for row := range height {
		for col := range width {
			s.screen.SetContent(x+col, y+row, ' ', nil, st)
		}
	}
}

func (s *Surface) DrawBorder(x, y, width, height int, style vellum.Keyword, color vellum.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	g, ok := glyphsFor(style)
	if !ok {
		return
	}
	st := cellStyle(color, vellum.Color{Kind: vellum.ColorReset}, false, false, false)
	right, bottom := x+width-1, y+height-1

	for col := x + 1; col < right; col++ {
		s.screen.SetContent(col, y, g.Top, nil, st)
		s.screen.SetContent(col, bottom, g.Bottom, nil, st)
	}
	for row := y + 1; row < bottom; row++ {
		s.screen.SetContent(x, row, g.Left, nil, st)
		s.screen.SetContent(right, row, g.Right, nil, st)
	}
	s.screen.SetContent(x, y, g.TopLeft, nil, st)
	s.screen.SetContent(right, y, g.TopRight, nil, st)
	s.screen.SetContent(x, bottom, g.BottomLeft, nil, st)
	s.screen.SetContent(right, bottom, g.BottomRight, nil, st)
}

func (s *Surface) DrawText(x, y int, text string, maxWidth int, fg, bg vellum.Color, bold, italic, underline bool) {
	st := cellStyle(fg, bg, bold, italic, underline)
	col := x
	for _, r := range text {
		if col >= x+maxWidth {
			break
		}
		s.screen.SetContent(col, y, r, nil, st)
		col++
	}
}

func (s *Surface) Flush() {
	s.screen.Show()
}

func (s *Surface) Size() (width, height int) {
	return s.screen.Size()
}
