package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-codebreaker/internal/game"
	"github.com/pixil98/go-testutil"
)

func TestThemeValidate(t *testing.T) {
	tests := map[string]struct {
		mod    func(*Theme)
		expErr string
	}{
		"default theme is valid": {
			mod: func(t *Theme) {},
		},
		"missing name": {
			mod:    func(t *Theme) { t.Name = "" },
			expErr: "name is required",
		},
		"wrong glyph count": {
			mod:    func(t *Theme) { t.PegGlyphs = []string{"R", "G"} },
			expErr: "peg_glyphs must have",
		},
		"multi character glyph": {
			mod:    func(t *Theme) { t.PegGlyphs[2] = "xx" },
			expErr: "peg_glyphs[2] must be a single character",
		},
		"peg colors mismatch": {
			mod:    func(t *Theme) { t.PegColors = []string{"red"} },
			expErr: "peg_colors must be empty or match",
		},
		"missing empty glyph": {
			mod:    func(t *Theme) { t.EmptyGlyph = "" },
			expErr: "empty_glyph must be a single character",
		},
		"missing win banner": {
			mod:    func(t *Theme) { t.WinBanner = "" },
			expErr: "win_banner is required",
		},
		"missing pause banner": {
			mod:    func(t *Theme) { t.PauseBanner = "" },
			expErr: "pause_banner is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			th := DefaultTheme()
			tt.mod(th)

			err := th.Validate()
			if tt.expErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestThemeGlyph(t *testing.T) {
	th := DefaultTheme()

	testutil.AssertEqual(t, "empty slot", th.glyph(game.ColorNone), '.')
	testutil.AssertEqual(t, "first color", th.glyph(game.ColorRed), 'R')
	testutil.AssertEqual(t, "last color", th.glyph(game.ColorOrange), 'O')
}

func TestThemeColor(t *testing.T) {
	th := DefaultTheme()
	testutil.AssertEqual(t, "empty slot", th.color(game.ColorNone), tcell.ColorGray)
	testutil.AssertEqual(t, "fallback palette", th.color(game.ColorRed), tcell.ColorRed)

	th.PegColors = []string{"teal", "teal", "teal", "teal", "teal", "teal"}
	testutil.AssertEqual(t, "explicit palette", th.color(game.ColorGreen), tcell.GetColor("teal"))
}
