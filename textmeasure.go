package vellum

import "github.com/rivo/uniseg"

// displayWidth returns a string's terminal cell width using East Asian
// width tables and grapheme clustering, so combining marks and
// double-width CJK characters are measured the way a real terminal
// renders them rather than by counting runes or bytes.
func displayWidth(s string) int {
	return uniseg.StringWidth(s)
}

// wrapText breaks text on Unicode word boundaries to fit within
// maxWidth cells, returning the widest line's width and the line
// count. Leading whitespace on a wrapped line is consumed; a single
// word wider than maxWidth is placed alone on its own line rather than
// being split mid-grapheme. maxWidth <= 0 means unconstrained (no
// wrapping — min/max-content-style single-line measurement).
func wrapText(text string, maxWidth int) (width, lines int) {
	if text == "" {
		return 0, 0
	}
	if maxWidth <= 0 {
		return displayWidth(text), 1
	}

	words := splitWords(text)
	lineWidth := 0
	maxLine := 0
	lineCount := 1
	startOfLine := true

	for _, w := range words {
		if isWhitespaceWord(w) {
			if startOfLine {
				continue // leading whitespace on a new line is consumed
			}
			wWidth := displayWidth(w)
			if lineWidth+wWidth > maxWidth {
				maxLine = max(maxLine, lineWidth)
				lineCount++
				lineWidth = 0
				startOfLine = true
				continue
			}
			lineWidth += wWidth
			continue
		}
		wWidth := displayWidth(w)
		if !startOfLine && lineWidth+wWidth > maxWidth {
			maxLine = max(maxLine, lineWidth)
			lineCount++
			lineWidth = 0
			startOfLine = true
		}
		lineWidth += wWidth
		startOfLine = false
	}
	maxLine = max(maxLine, lineWidth)
	return maxLine, lineCount
}

// minContentWidth returns the width of text's single widest word, the
// narrowest a MinContent measurement can shrink to without splitting a
// word.
func minContentWidth(text string) int {
	max := 0
	for _, w := range splitWords(text) {
		if isWhitespaceWord(w) {
			continue
		}
		if wd := displayWidth(w); wd > max {
			max = wd
		}
	}
	return max
}

// maxContentWidth is the no-wrap width: the text laid out on one line.
func maxContentWidth(text string) int {
	return displayWidth(text)
}

// splitWords breaks text into alternating word/whitespace runs on
// Unicode word boundaries, using uniseg's word segmentation so
// multi-rune graphemes and locale-sensitive boundaries are respected
// instead of splitting on ASCII spaces alone.
func splitWords(text string) []string {
	var out []string
	state := -1
	remaining := text
	for len(remaining) > 0 {
		word, rest, newState := uniseg.FirstWordInString(remaining, state)
		out = append(out, word)
		remaining = rest
		state = newState
	}
	return out
}

func isWhitespaceWord(w string) bool {
	for _, r := range w {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return len(w) > 0
}
