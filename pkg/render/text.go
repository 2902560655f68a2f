package render

import (
	"strings"

	"github.com/pentagongym/gymdiag/pkg/fonts"
)

// maxLineRunes bounds compartment lines; longer lines are cut to 27 runes
// followed by "...".
const maxLineRunes = 30

const ellipsis = "..."

// Truncate shortens s to at most n runes, ending in "..." when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= len(ellipsis) {
		return string(r[:n])
	}
	return string(r[:n-len(ellipsis)]) + ellipsis
}

// lineHeight returns the height of one line of text at size points, in
// diagram units.
func (b *builder) lineHeight(size float64) float64 {
	return size * 1.5 / b.scene.Unit
}

// textWidth measures s in diagram units.
func (b *builder) textWidth(s string, size float64, bold bool) float64 {
	return fonts.Measure(s, fonts.StyleOf(bold, false), size) / b.scene.Unit
}

// fit shortens s with a trailing "..." until it fits in width units.
func (b *builder) fit(s string, size float64, bold bool, width float64) string {
	if width <= 0 || b.textWidth(s, size, bold) <= width {
		return s
	}
	r := []rune(s)
	for n := len(r) - 1; n > 0; n-- {
		cand := strings.TrimRight(string(r[:n]), " ") + ellipsis
		if b.textWidth(cand, size, bold) <= width {
			return cand
		}
	}
	return ellipsis
}

// lines splits a multi-line label.
func lines(s string) []string {
	return strings.Split(s, "\n")
}
