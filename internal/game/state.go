package game

import "fmt"

// State is the session's coarse lifecycle state. Exactly one is active at a
// time. The intended transitions:
//
// playing -> paused | reveal | won | lost
// paused  -> playing
// reveal  -> playing
// won     -> playing (fresh session)
// lost    -> playing (fresh session)
//
// Pause and the long-cancel input may additionally terminate the session
// from any state. Inputs outside this set are no-ops.
type State uint8

const (
	StatePlaying State = iota
	StatePaused
	StateWon
	StateLost
	StateReveal
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateReveal:
		return "reveal"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Finished reports whether the session has reached a terminal outcome.
func (s State) Finished() bool {
	return s == StateWon || s == StateLost
}
