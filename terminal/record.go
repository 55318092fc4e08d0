package terminal

import "github.com/tekugo/vellum"

// FillCommand, BorderCommand and TextCommand are the recorded form of
// each CellSurface call RecordingSurface captures, in call order.
type FillCommand struct {
	X, Y, Width, Height int
	FG, BG              vellum.Color
}

type BorderCommand struct {
	X, Y, Width, Height int
	Style               vellum.Keyword
	Color               vellum.Color
}

type TextCommand struct {
	X, Y                    int
	Text                    string
	MaxWidth                int
	FG, BG                  vellum.Color
	Bold, Italic, Underline bool
}

// RecordingSurface is a CellSurface that records every paint command
// instead of drawing to a real terminal, grounded on the teacher's
// MockScreen/mock.go pattern of swapping in a fake collaborator for
// tests — here a plain in-package recorder rather than a fake tty.
type RecordingSurface struct {
	Width, Height int
	Fills         []FillCommand
	Borders       []BorderCommand
	Texts         []TextCommand
	Flushes       int
}

// NewRecordingSurface creates a RecordingSurface reporting the given
// fixed size from Size.
func NewRecordingSurface(width, height int) *RecordingSurface {
	return &RecordingSurface{Width: width, Height: height}
}

func (r *RecordingSurface) Fill(x, y, width, height int, fg, bg vellum.Color) {
	r.Fills = append(r.Fills, FillCommand{X: x, Y: y, Width: width, Height: height, FG: fg, BG: bg})
}

func (r *RecordingSurface) DrawBorder(x, y, width, height int, style vellum.Keyword, color vellum.Color) {
	r.Borders = append(r.Borders, BorderCommand{X: x, Y: y, Width: width, Height: height, Style: style, Color: color})
}

func (r *RecordingSurface) DrawText(x, y int, text string, maxWidth int, fg, bg vellum.Color, bold, italic, underline bool) {
	r.Texts = append(r.Texts, TextCommand{
		X: x, Y: y, Text: text, MaxWidth: maxWidth,
		FG: fg, BG: bg, Bold: bold, Italic: italic, Underline: underline,
	})
}

func (r *RecordingSurface) Flush() {
	r.Flushes++
}

func (r *RecordingSurface) Size() (width, height int) {
	return r.Width, r.Height
}
