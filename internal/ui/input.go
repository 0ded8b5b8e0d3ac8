package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-codebreaker/internal/game"
)

// translateKey maps a terminal key event to a discrete game event. Keys
// outside the mapping return EventNone and are dropped before the queue.
//
// Terminals deliver no key-release events, so the original device's long
// presses get dedicated keys instead: 'r' for reveal, 'q' for hard quit.
func translateKey(ev *tcell.EventKey) game.Event {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.EventMoveLeft
	case tcell.KeyRight:
		return game.EventMoveRight
	case tcell.KeyUp:
		return game.EventColorUp
	case tcell.KeyDown:
		return game.EventColorDown
	case tcell.KeyEnter:
		return game.EventConfirm
	case tcell.KeyEscape:
		return game.EventCancel
	case tcell.KeyCtrlC:
		return game.EventCancelLong
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'r', 'R':
			return game.EventConfirmLong
		case 'q', 'Q':
			return game.EventCancelLong
		case ' ':
			return game.EventConfirm
		}
	}
	return game.EventNone
}
