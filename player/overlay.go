package player

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// overlay draws glyph over the cell at (col, row) of a rendered block, keeping the styling of the text around it.
func overlay(block, glyph string, col, row int) string {
	lines := strings.Split(block, "\n")
	if row < 0 || row >= len(lines) || col < 0 {
		return block
	}

	line := lines[row]
	width := ansi.PrintableRuneWidth(line)
	if col >= width {
		lines[row] = line + strings.Repeat(" ", col-width) + glyph
		return strings.Join(lines, "\n")
	}

	lines[row] = truncate.String(line, uint(col)) + glyph + skip(line, col+ansi.PrintableRuneWidth(glyph))
	return strings.Join(lines, "\n")
}

// skip drops the first n printable cells of s. Escape sequences are kept so later text keeps its style.
func skip(s string, n int) string {
	var b strings.Builder
	inEscape := false
	dropped := 0

	for _, r := range s {
		switch {
		case r == ansi.Marker:
			inEscape = true
			b.WriteRune(r)
		case inEscape:
			b.WriteRune(r)
			if ansi.IsTerminator(r) {
				inEscape = false
			}
		case dropped < n:
			dropped += runewidth.RuneWidth(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
