package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-codebreaker/internal/game"
	"github.com/pixil98/go-testutil"
)

func TestTranslateKey(t *testing.T) {
	tests := map[string]struct {
		key  tcell.Key
		r    rune
		exp  game.Event
	}{
		"left arrow moves left": {
			key: tcell.KeyLeft,
			exp: game.EventMoveLeft,
		},
		"right arrow moves right": {
			key: tcell.KeyRight,
			exp: game.EventMoveRight,
		},
		"up arrow cycles color up": {
			key: tcell.KeyUp,
			exp: game.EventColorUp,
		},
		"down arrow cycles color down": {
			key: tcell.KeyDown,
			exp: game.EventColorDown,
		},
		"enter confirms": {
			key: tcell.KeyEnter,
			exp: game.EventConfirm,
		},
		"space confirms": {
			key: tcell.KeyRune,
			r:   ' ',
			exp: game.EventConfirm,
		},
		"escape cancels": {
			key: tcell.KeyEscape,
			exp: game.EventCancel,
		},
		"r reveals": {
			key: tcell.KeyRune,
			r:   'r',
			exp: game.EventConfirmLong,
		},
		"uppercase R reveals": {
			key: tcell.KeyRune,
			r:   'R',
			exp: game.EventConfirmLong,
		},
		"q quits": {
			key: tcell.KeyRune,
			r:   'q',
			exp: game.EventCancelLong,
		},
		"ctrl-c quits": {
			key: tcell.KeyCtrlC,
			exp: game.EventCancelLong,
		},
		"unmapped rune is dropped": {
			key: tcell.KeyRune,
			r:   'x',
			exp: game.EventNone,
		},
		"unmapped key is dropped": {
			key: tcell.KeyHome,
			exp: game.EventNone,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ev := tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)
			testutil.AssertEqual(t, "event", translateKey(ev), tt.exp)
		})
	}
}
