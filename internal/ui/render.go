package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-codebreaker/internal/display"
	"github.com/pixil98/go-codebreaker/internal/game"
)

// historyDepth caps how many finalized attempts the board shows; older rows
// scroll out of view but stay in the session history.
const historyDepth = 10

// draw renders one full frame from the current session state.
func (s *Screen) draw(scr tcell.Screen) {
	scr.Clear()
	w, h := scr.Size()
	st := tcell.StyleDefault
	bold := st.Bold(true)
	dim := st.Foreground(tcell.ColorGray)

	sess := s.session
	rules := sess.Rules()

	// Header and HUD
	drawText(scr, 1, 0, bold, "codebreaker")
	hud := fmt.Sprintf("T %s  A %d(%d)", formatPlayTime(sess.PlayTime()), sess.AttemptsUsed(), rules.MaxAttempts)
	drawText(scr, w-len(hud)-1, 0, st, hud)
	drawText(scr, 1, 1, dim, rules.Name)

	// Current guess with cursor
	guessY := 3
	drawText(scr, 1, guessY, st, "code:")
	for i, c := range sess.Guess() {
		x := 9 + i*4
		pst := st.Foreground(s.theme.color(c))
		if i == sess.Cursor() && sess.State() == game.StatePlaying {
			drawText(scr, x-1, guessY, bold, "[")
			drawText(scr, x+1, guessY, bold, "]")
			pst = pst.Bold(true)
		}
		scr.SetContent(x, guessY, s.theme.glyph(c), nil, pst)
	}

	// Feedback for the most recent attempt sits beside the guess
	attempts := sess.Attempts()
	if len(attempts) > 0 {
		s.drawFeedback(scr, 9+rules.NumPegs*4+3, guessY, attempts[len(attempts)-1].Feedback)
	}

	// History tail, most recent first
	historyY := guessY + 2
	drawText(scr, 1, historyY, dim, "attempts:")
	for row, idx := 0, len(attempts)-1; idx >= 0 && row < historyDepth; row, idx = row+1, idx-1 {
		att := attempts[idx]
		y := historyY + 1 + row
		drawText(scr, 1, y, dim, fmt.Sprintf("%3d.", idx+1))
		for i, c := range att.Guess {
			scr.SetContent(7+i*2, y, s.theme.glyph(c), nil, st.Foreground(s.theme.color(c)))
		}
		s.drawFeedback(scr, 7+rules.NumPegs*2+3, y, att.Feedback)
	}

	// The secret comes out in reveal and at the end of the game
	state := sess.State()
	if state == game.StateReveal || state.Finished() {
		y := historyY + historyDepth + 2
		drawText(scr, 1, y, bold, "secret:")
		for i, c := range sess.Secret() {
			scr.SetContent(9+i*2, y, s.theme.glyph(c), nil, st.Foreground(s.theme.color(c)))
		}
	}

	if banner := s.banner(); banner != "" {
		y := historyY + historyDepth + 4
		for i, line := range display.Lines(banner, w-2) {
			drawText(scr, 1, y+i, bold, line)
		}
	}

	drawText(scr, 1, h-1, dim, s.hints())

	scr.Show()
}

func (s *Screen) drawFeedback(scr tcell.Screen, x, y int, marks []game.Feedback) {
	st := tcell.StyleDefault
	for _, m := range marks {
		switch m {
		case game.FeedbackBlack:
			scr.SetContent(x, y, []rune(s.theme.BlackGlyph)[0], nil, st.Bold(true))
		case game.FeedbackWhite:
			scr.SetContent(x, y, []rune(s.theme.WhiteGlyph)[0], nil, st)
		default:
			continue
		}
		x += 2
	}
}

// banner expands the theme's template for the current non-playing state.
func (s *Screen) banner() string {
	var tmpl string
	switch s.session.State() {
	case game.StatePaused:
		tmpl = s.theme.PauseBanner
	case game.StateWon:
		tmpl = s.theme.WinBanner
	case game.StateLost:
		tmpl = s.theme.LoseBanner
	case game.StateReveal:
		tmpl = s.theme.RevealBanner
	default:
		return ""
	}
	if tmpl == "" {
		return ""
	}

	out, err := display.ExpandTemplate(tmpl, BannerData{
		Attempts:    s.session.AttemptsUsed(),
		MaxAttempts: s.session.Rules().MaxAttempts,
		PlayTime:    formatPlayTime(s.session.PlayTime()),
		Rules:       s.session.Rules().Name,
	})
	if err != nil {
		slog.Warn("expanding banner template", "state", s.session.State(), "error", err)
		return s.session.State().String()
	}
	return out
}

func (s *Screen) hints() string {
	switch s.session.State() {
	case game.StatePlaying:
		h := "arrows: move/cycle   r: reveal   esc: pause   q: quit"
		if s.session.CanSubmit() {
			h = "enter: submit   " + h
		}
		return h
	case game.StatePaused:
		return "enter: resume   esc: quit"
	case game.StateReveal:
		return "enter: back to the game"
	default:
		return "enter: play again   q: quit"
	}
}

func drawText(scr tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		scr.SetContent(x, y, r, nil, style)
		x++
	}
}

// formatPlayTime renders the clamped play time as mm:ss.
func formatPlayTime(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
