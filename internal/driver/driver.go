package driver

import (
	"context"
	"time"
)

const (
	DefaultTickLength = time.Millisecond * 250
)

type Manager interface {
	Tick(context.Context) error
}

// Driver runs every manager's Tick on a fixed interval. It is the host-side
// periodic tick: the game uses it to sample the clock for the time-limit
// check and to animate the running timer.
type Driver struct {
	tickLength time.Duration
	managers   []Manager
	shutdown   <-chan struct{}
}

func NewDriver(managers []Manager, opts ...DriverOpt) *Driver {
	d := &Driver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Driver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-d.shutdown:
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				return err
			}
		}
	}
}

func (d *Driver) Tick(ctx context.Context) error {
	for _, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}
