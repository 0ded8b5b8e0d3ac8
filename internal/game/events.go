package game

import "fmt"

// Event is one discrete input delivered to the session transition function.
// Events arrive one at a time from a bounded FIFO queue owned by the input
// collaborator; the session never reorders them.
type Event uint8

const (
	EventNone Event = iota
	EventMoveLeft
	EventMoveRight
	EventColorUp
	EventColorDown
	EventConfirm
	EventConfirmLong
	EventCancel
	EventCancelLong

	// EventTick is the periodic time-sampling tick. It drives the
	// time-limit check and is a no-op outside of playing.
	EventTick
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventMoveLeft:
		return "move-left"
	case EventMoveRight:
		return "move-right"
	case EventColorUp:
		return "color-up"
	case EventColorDown:
		return "color-down"
	case EventConfirm:
		return "confirm"
	case EventConfirmLong:
		return "confirm-long"
	case EventCancel:
		return "cancel"
	case EventCancelLong:
		return "cancel-long"
	case EventTick:
		return "tick"
	default:
		return fmt.Sprintf("event(%d)", uint8(e))
	}
}

// Publisher delivers engine lifecycle events to external observers. Publish
// failures are logged by the session, never surfaced to play.
type Publisher interface {
	Publish(subject string, data []byte) error
}

const (
	SubjectSession = "codebreaker.session"
	SubjectAttempt = "codebreaker.attempt"
	SubjectState   = "codebreaker.state"
)

// SessionEvent announces a fresh session (startup or restart after win/loss).
type SessionEvent struct {
	SessionId string `json:"session_id"`
	Rules     string `json:"rules"`
	Restarted bool   `json:"restarted"`
}

// AttemptEvent reports one evaluated guess.
type AttemptEvent struct {
	SessionId string `json:"session_id"`
	Attempt   int    `json:"attempt"`
	Black     int    `json:"black"`
	White     int    `json:"white"`
	Won       bool   `json:"won"`
}

// StateEvent reports a state-machine transition.
type StateEvent struct {
	SessionId  string `json:"session_id"`
	State      string `json:"state"`
	PlayTimeMs int64  `json:"play_time_ms"`
}
