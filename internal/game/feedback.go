package game

import "fmt"

// Feedback is one mark of a finalized attempt. A feedback row has no
// positional correspondence with guess slots; only the black/white counts
// carry meaning.
type Feedback uint8

const (
	FeedbackNone Feedback = iota

	// FeedbackBlack marks a right color in the right position.
	FeedbackBlack

	// FeedbackWhite marks a right color in the wrong position.
	FeedbackWhite
)

func (f Feedback) String() string {
	switch f {
	case FeedbackNone:
		return "none"
	case FeedbackBlack:
		return "black"
	case FeedbackWhite:
		return "white"
	default:
		return fmt.Sprintf("feedback(%d)", uint8(f))
	}
}
