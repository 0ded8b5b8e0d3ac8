package ui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-codebreaker/internal/game"
)

// eventQueueSize bounds the input FIFO between the poll goroutine and the
// dispatch loop, mirroring the original device's 8-slot message queue.
const eventQueueSize = 8

// Screen is the terminal worker. It plays two collaborator roles around the
// session: input (polling key events into a bounded FIFO) and rendering
// (full-frame redraw after every accepted event and on ticks while playing).
//
// The dispatch loop in Start is the only goroutine that mutates the session
// or reads it for drawing.
type Screen struct {
	session *game.Session
	theme   *Theme

	events    chan game.Event
	ticks     chan struct{}
	newScreen func() (tcell.Screen, error)
}

type ScreenOpt func(*Screen)

// WithScreenFactory overrides how the tcell screen is created. Tests use it
// to substitute a simulation screen.
func WithScreenFactory(f func() (tcell.Screen, error)) ScreenOpt {
	return func(s *Screen) {
		s.newScreen = f
	}
}

func NewScreen(session *game.Session, theme *Theme, opts ...ScreenOpt) (*Screen, error) {
	if session == nil {
		return nil, fmt.Errorf("session is required")
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("validating theme: %w", err)
	}

	s := &Screen{
		session:   session,
		theme:     theme,
		events:    make(chan game.Event, eventQueueSize),
		ticks:     make(chan struct{}, 1),
		newScreen: tcell.NewScreen,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *Screen) Start(ctx context.Context) error {
	scr, err := s.newScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer scr.Fini()

	go s.poll(ctx, scr)

	s.draw(scr)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-s.ticks:
			// The tick only matters while playing: it samples the clock
			// for the time limit and animates the running timer.
			if s.session.State() != game.StatePlaying {
				continue
			}
			s.session.Handle(ctx, game.EventTick)
			s.draw(scr)

		case ev := <-s.events:
			quit := s.session.Handle(ctx, ev)
			s.draw(scr)
			if quit {
				return nil
			}
		}
	}
}

// Tick implements driver.Manager. A pending tick is enough; extras are
// dropped rather than queued behind input.
func (s *Screen) Tick(ctx context.Context) error {
	select {
	case s.ticks <- struct{}{}:
	default:
	}
	return nil
}

// poll runs on its own goroutine, producing events into the bounded queue.
// It blocks when the queue is full and never touches session state.
func (s *Screen) poll(ctx context.Context, scr tcell.Screen) {
	for {
		ev := scr.PollEvent()
		if ev == nil {
			// Screen finalized, dispatch loop is gone.
			return
		}

		switch tev := ev.(type) {
		case *tcell.EventKey:
			gev := translateKey(tev)
			if gev == game.EventNone {
				continue
			}
			select {
			case s.events <- gev:
			case <-ctx.Done():
				return
			}

		case *tcell.EventResize:
			scr.Sync()
			// EventNone is a no-op transition; it just forces a redraw.
			select {
			case s.events <- game.EventNone:
			default:
			}

		default:
			slog.Debug("ignoring terminal event", "event", fmt.Sprintf("%T", ev))
		}
	}
}
