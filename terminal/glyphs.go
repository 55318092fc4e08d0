package terminal

import "github.com/tekugo/vellum"

// borderGlyphs is the outer-border rune set for one border-style
// keyword, adapted from the teacher's BorderStyle rune tables
// (theme-unicode-borders.go) down to the keywords the cascade's real
// border-style property actually resolves to (KeywordSolid/Dashed/
// Double/Round/Hidden/None), rather than the teacher's free-form style
// names ("thin", "thick-slashed", ...).
type borderGlyphs struct {
	Top, Right, Bottom, Left                   rune
	TopLeft, TopRight, BottomRight, BottomLeft rune
}

var glyphTable = map[vellum.Keyword]borderGlyphs{
	vellum.KeywordSolid: {
		Top: '─', Right: '│', Bottom: '─', Left: '│',
		TopLeft: '┌', TopRight: '┐', BottomRight: '┘', BottomLeft: '└',
	},
	vellum.KeywordDouble: {
		Top: '═', Right: '║', Bottom: '═', Left: '║',
		TopLeft: '╔', TopRight: '╗', BottomRight: '╝', BottomLeft: '╚',
	},
	vellum.KeywordRound: {
		Top: '─', Right: '│', Bottom: '─', Left: '│',
		TopLeft: '╭', TopRight: '╮', BottomRight: '╯', BottomLeft: '╰',
	},
	vellum.KeywordDashed: {
		Top: '┄', Right: '┆', Bottom: '┄', Left: '┆',
		TopLeft: '┌', TopRight: '┐', BottomRight: '┘', BottomLeft: '└',
	},
}

// glyphsFor looks up the rune set for a border-style keyword. Hidden
// and None (and anything unrecognized) draw nothing.
func glyphsFor(style vellum.Keyword) (borderGlyphs, bool) {
	g, ok := glyphTable[style]
	return g, ok
}
