package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-codebreaker/internal/game"
	"github.com/pixil98/go-codebreaker/internal/storage"
	"github.com/pixil98/go-errors"
)

// Theme is a storage asset describing how the board is drawn: one glyph and
// terminal color per palette color, glyphs for feedback marks, and templated
// banner strings for the non-playing states. Banners are expanded with
// BannerData.
type Theme struct {
	Name string `json:"name"`

	PegGlyphs  []string `json:"peg_glyphs"`
	PegColors  []string `json:"peg_colors,omitempty"`
	EmptyGlyph string   `json:"empty_glyph"`
	BlackGlyph string   `json:"black_glyph"`
	WhiteGlyph string   `json:"white_glyph"`

	WinBanner    string `json:"win_banner"`
	LoseBanner   string `json:"lose_banner"`
	PauseBanner  string `json:"pause_banner"`
	RevealBanner string `json:"reveal_banner"`

	// Extensions carries forward-compatible per-theme data that the
	// renderer does not interpret.
	Extensions storage.ExtensionState `json:"extensions,omitempty"`
}

// BannerData is the template context for theme banners.
type BannerData struct {
	Attempts    int
	MaxAttempts int
	PlayTime    string
	Rules       string
}

func (t *Theme) Validate() error {
	el := errors.NewErrorList()

	if t.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}

	// A theme must cover the largest palette so it works with any ruleset.
	if len(t.PegGlyphs) != game.MaxColors {
		el.Add(fmt.Errorf("peg_glyphs must have %d entries", game.MaxColors))
	}
	for i, g := range t.PegGlyphs {
		if len([]rune(g)) != 1 {
			el.Add(fmt.Errorf("peg_glyphs[%d] must be a single character", i))
		}
	}

	if len(t.PegColors) != 0 && len(t.PegColors) != len(t.PegGlyphs) {
		el.Add(fmt.Errorf("peg_colors must be empty or match peg_glyphs"))
	}

	for name, g := range map[string]string{
		"empty_glyph": t.EmptyGlyph,
		"black_glyph": t.BlackGlyph,
		"white_glyph": t.WhiteGlyph,
	} {
		if len([]rune(g)) != 1 {
			el.Add(fmt.Errorf("%s must be a single character", name))
		}
	}

	for name, b := range map[string]string{
		"win_banner":   t.WinBanner,
		"lose_banner":  t.LoseBanner,
		"pause_banner": t.PauseBanner,
	} {
		if b == "" {
			el.Add(fmt.Errorf("%s is required", name))
		}
	}

	return el.Err()
}

// Selector labels the theme in selection prompts.
func (t *Theme) Selector() string {
	return t.Name
}

// glyph returns the rune drawn for a peg of the given color.
func (t *Theme) glyph(c game.PegColor) rune {
	if c == game.ColorNone {
		return []rune(t.EmptyGlyph)[0]
	}
	return []rune(t.PegGlyphs[int(c)-1])[0]
}

// color returns the terminal color for a peg. Themes without explicit
// colors fall back to a fixed palette.
func (t *Theme) color(c game.PegColor) tcell.Color {
	if c == game.ColorNone {
		return tcell.ColorGray
	}
	if len(t.PegColors) >= int(c) {
		return tcell.GetColor(t.PegColors[int(c)-1])
	}
	return defaultPegColors[int(c)-1]
}

var defaultPegColors = []tcell.Color{
	tcell.ColorRed,
	tcell.ColorGreen,
	tcell.ColorBlue,
	tcell.ColorYellow,
	tcell.ColorPurple,
	tcell.ColorOrange,
}

// DefaultTheme is used when no theme asset is configured.
func DefaultTheme() *Theme {
	return &Theme{
		Name:         "Default",
		PegGlyphs:    []string{"R", "G", "B", "Y", "P", "O"},
		EmptyGlyph:   ".",
		BlackGlyph:   "#",
		WhiteGlyph:   "o",
		WinBanner:    "YOU WON! Cracked in {{ .Attempts }} of {{ .MaxAttempts }} attempts, {{ .PlayTime }} on the clock.",
		LoseBanner:   "GAME OVER. The code held out for {{ .PlayTime }}.",
		PauseBanner:  "PAUSED - press enter to resume, esc to quit.",
		RevealBanner: "Secret revealed. Press enter to keep playing.",
	}
}
