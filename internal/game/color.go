package game

import "fmt"

// PegColor is one slot of a code. ColorNone marks an empty slot and is only
// legal inside an in-progress guess; secrets and finalized history entries
// hold palette colors exclusively.
type PegColor uint8

const (
	ColorNone PegColor = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorOrange
)

// MaxColors is the largest palette a ruleset may ask for.
const MaxColors = 6

// Next returns the color after c, cycling circularly through the palette of
// the given size plus the empty sentinel: None, 1, .., numColors, None, ...
func (c PegColor) Next(numColors int) PegColor {
	if int(c) >= numColors {
		return ColorNone
	}
	return c + 1
}

// Prev is the inverse of Next over the same cycle.
func (c PegColor) Prev(numColors int) PegColor {
	if c == ColorNone {
		return PegColor(numColors)
	}
	return c - 1
}

// InPalette reports whether c is a non-empty color within a palette of the
// given size.
func (c PegColor) InPalette(numColors int) bool {
	return c != ColorNone && int(c) <= numColors
}

func (c PegColor) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}
