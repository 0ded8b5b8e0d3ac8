package driver

import "time"

type DriverOpt func(*Driver)

func WithTickLength(tickLength time.Duration) DriverOpt {
	return func(d *Driver) {
		d.tickLength = tickLength
	}
}

// WithShutdown stops the driver when ch closes, in addition to context
// cancellation. Wired to the session's Done channel so the tick loop ends
// with the game.
func WithShutdown(ch <-chan struct{}) DriverOpt {
	return func(d *Driver) {
		d.shutdown = ch
	}
}
