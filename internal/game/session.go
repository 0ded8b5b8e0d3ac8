package game

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Attempt is one finalized, evaluated guess. Attempts are append-only and
// never rewritten once recorded.
type Attempt struct {
	Guess    []PegColor
	Feedback []Feedback
	Black    int
	White    int
}

// Session owns the full state of one secret-to-win/loss lifecycle: the
// secret, the in-progress guess, the attempt history, the cursor, and the
// pause-aware play timer. It is a pure state container driven by Handle.
//
// A Session is not safe for concurrent use. Exactly one goroutine may call
// Handle, and reads for rendering must happen on that same goroutine.
type Session struct {
	rules *Rules
	id    string

	state    State
	secret   []PegColor
	guess    []PegColor
	cursor   int
	attempts []Attempt

	// elapsed accumulates active play time; resumedAt marks the clock
	// reading of the last entry into playing.
	elapsed   time.Duration
	resumedAt time.Duration

	rand  *rand.Rand
	clock Clock
	pub   Publisher

	done chan struct{}
}

type SessionOpt func(*Session)

// WithClock overrides the monotonic clock, letting tests drive time.
func WithClock(c Clock) SessionOpt {
	return func(s *Session) {
		s.clock = c
	}
}

// WithRand overrides the entropy source used for secret generation.
func WithRand(r *rand.Rand) SessionOpt {
	return func(s *Session) {
		s.rand = r
	}
}

// WithPublisher attaches an event publisher for external observers.
func WithPublisher(p Publisher) SessionOpt {
	return func(s *Session) {
		s.pub = p
	}
}

func NewSession(rules *Rules, opts ...SessionOpt) (*Session, error) {
	if rules == nil {
		return nil, fmt.Errorf("rules are required")
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("validating rules: %w", err)
	}

	s := &Session{
		rules: rules,
		id:    uuid.NewString(),
		done:  make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.clock == nil {
		s.clock = NewMonotonicClock()
	}
	if s.rand == nil {
		s.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s.reset(context.Background(), false)

	return s, nil
}

// Handle applies one discrete input to the state machine and returns true
// when the session has been terminated. Inputs that match no transition in
// the current state are no-ops.
func (s *Session) Handle(ctx context.Context, ev Event) bool {
	switch ev {
	case EventMoveLeft:
		if s.state == StatePlaying && s.cursor > 0 {
			s.cursor--
		}

	case EventMoveRight:
		if s.state == StatePlaying && s.cursor < s.rules.NumPegs-1 {
			s.cursor++
		}

	case EventColorUp:
		if s.state == StatePlaying {
			s.guess[s.cursor] = s.guess[s.cursor].Next(s.rules.NumColors)
		}

	case EventColorDown:
		if s.state == StatePlaying {
			s.guess[s.cursor] = s.guess[s.cursor].Prev(s.rules.NumColors)
		}

	case EventConfirm:
		switch s.state {
		case StatePlaying:
			if s.CanSubmit() {
				s.evaluate(ctx)
			}
		case StatePaused, StateReveal:
			s.resume(ctx)
		case StateWon, StateLost:
			s.reset(ctx, true)
		}

	case EventConfirmLong:
		switch s.state {
		case StatePlaying:
			s.transition(ctx, StateReveal)
		case StateReveal:
			s.resume(ctx)
		}

	case EventCancel:
		switch s.state {
		case StatePlaying:
			s.transition(ctx, StatePaused)
		case StatePaused:
			s.terminate(ctx)
			return true
		}

	case EventCancelLong:
		s.terminate(ctx)
		return true

	case EventTick:
		s.checkTimeLimit(ctx)
	}

	return false
}

// CanSubmit reports whether confirm would be accepted as a submission: the
// session is playing, every slot is filled, and the guess differs from the
// previous attempt. The UI uses this for the confirm affordance.
func (s *Session) CanSubmit() bool {
	return s.state == StatePlaying && s.guessComplete() && s.guessNovel()
}

func (s *Session) guessComplete() bool {
	for _, c := range s.guess {
		if c == ColorNone {
			return false
		}
	}
	return true
}

// guessNovel reports whether the guess differs in at least one slot from the
// immediately preceding attempt. The first submission is always novel.
func (s *Session) guessNovel() bool {
	if len(s.attempts) == 0 {
		return true
	}
	prev := s.attempts[len(s.attempts)-1].Guess
	for i, c := range s.guess {
		if c != prev[i] {
			return true
		}
	}
	return false
}

// evaluate scores the current guess, records the attempt, and transitions to
// won/lost when warranted. The guess buffer is deliberately kept: the next
// attempt starts as an edit of this one.
func (s *Session) evaluate(ctx context.Context) {
	black, white := score(s.secret, s.guess)
	won := exactMatch(s.secret, s.guess)

	s.attempts = append(s.attempts, Attempt{
		Guess:    append([]PegColor(nil), s.guess...),
		Feedback: feedbackRow(black, white, s.rules.NumPegs),
		Black:    black,
		White:    white,
	})

	s.publish(ctx, SubjectAttempt, AttemptEvent{
		SessionId: s.id,
		Attempt:   len(s.attempts),
		Black:     black,
		White:     white,
		Won:       won,
	})

	if won {
		s.transition(ctx, StateWon)
	} else if len(s.attempts) >= s.rules.MaxAttempts {
		s.transition(ctx, StateLost)
	}
}

// checkTimeLimit forces a loss once the play-time budget is exhausted. Only
// meaningful while playing; ticks in any other state are no-ops.
func (s *Session) checkTimeLimit(ctx context.Context) {
	if s.state != StatePlaying {
		return
	}
	if s.PlayTime() >= s.rules.MaxPlayTime() {
		s.transition(ctx, StateLost)
	}
}

// fold moves active wall-clock time into elapsed, clamped to the budget.
// Must run before every transition out of playing.
func (s *Session) fold() {
	if s.state != StatePlaying {
		return
	}
	s.elapsed += s.clock.Now() - s.resumedAt
	if m := s.rules.MaxPlayTime(); s.elapsed > m {
		s.elapsed = m
	}
}

func (s *Session) transition(ctx context.Context, to State) {
	s.fold()
	s.state = to
	s.publishState(ctx)
}

// resume re-enters playing from paused or reveal, restarting the active
// interval at the current clock reading.
func (s *Session) resume(ctx context.Context) {
	s.resumedAt = s.clock.Now()
	s.state = StatePlaying
	s.publishState(ctx)
}

// reset starts a fresh play session in place: new secret, zeroed history and
// timer, cursor at the first slot, cleared guess.
func (s *Session) reset(ctx context.Context, restart bool) {
	if restart {
		s.id = uuid.NewString()
	}
	s.state = StatePlaying
	s.secret = newSecret(s.rand, s.rules)
	s.guess = make([]PegColor, s.rules.NumPegs)
	s.cursor = 0
	s.attempts = nil
	s.elapsed = 0
	s.resumedAt = s.clock.Now()

	s.publish(ctx, SubjectSession, SessionEvent{
		SessionId: s.id,
		Rules:     s.rules.Name,
		Restarted: restart,
	})
}

// terminate ends the session for good. Quit is the only cancellation signal;
// there is nothing to roll back because every transition is atomic.
func (s *Session) terminate(ctx context.Context) {
	select {
	case <-s.done:
		return
	default:
	}

	s.fold()
	slog.InfoContext(ctx, "session terminated",
		"sessionId", s.id,
		"attempts", len(s.attempts),
		"playTime", s.elapsed,
	)
	close(s.done)
}

func (s *Session) publish(ctx context.Context, subject string, payload any) {
	if s.pub == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		slog.WarnContext(ctx, "marshalling game event", "subject", subject, "error", err)
		return
	}

	if err := s.pub.Publish(subject, data); err != nil {
		slog.WarnContext(ctx, "publishing game event", "subject", subject, "error", err)
	}
}

func (s *Session) publishState(ctx context.Context) {
	s.publish(ctx, SubjectState, StateEvent{
		SessionId:  s.id,
		State:      s.state.String(),
		PlayTimeMs: s.PlayTime().Milliseconds(),
	})
}

// PlayTime is the accumulated active play time, clamped to the budget. It
// keeps counting while playing and is frozen in every other state.
func (s *Session) PlayTime() time.Duration {
	total := s.elapsed
	if s.state == StatePlaying {
		total += s.clock.Now() - s.resumedAt
	}
	if m := s.rules.MaxPlayTime(); total > m {
		total = m
	}
	return total
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Rules() *Rules {
	return s.rules
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Cursor() int {
	return s.cursor
}

// Guess is the in-progress guess. Callers must treat it as read-only.
func (s *Session) Guess() []PegColor {
	return s.guess
}

// Secret is the hidden code. The UI only draws it in reveal/won/lost.
func (s *Session) Secret() []PegColor {
	return s.secret
}

// Attempts is the finalized history, oldest first. Callers must treat it as
// read-only.
func (s *Session) Attempts() []Attempt {
	return s.attempts
}

func (s *Session) AttemptsUsed() int {
	return len(s.attempts)
}

// Done is closed when the session has been terminated. Workers outside the
// dispatch loop use it to shut down alongside the game.
func (s *Session) Done() <-chan struct{} {
	return s.done
}
