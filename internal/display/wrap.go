package display

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 60

// Wrap word-wraps text to the given width, preserving ANSI escape sequences.
// A width of 0 or less falls back to DefaultWidth.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return wordwrap.String(text, width)
}

// Lines wraps text and splits it into individual lines for row-by-row
// terminal drawing.
func Lines(text string, width int) []string {
	return strings.Split(Wrap(text, width), "\n")
}
