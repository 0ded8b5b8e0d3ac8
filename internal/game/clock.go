package game

import "time"

// Clock is a monotonic reading used only for differences; it carries no
// wall-clock semantics.
type Clock interface {
	Now() time.Duration
}

type monotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a Clock backed by the runtime's monotonic
// source, measured from the moment of creation.
func NewMonotonicClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Now() time.Duration {
	return time.Since(c.start)
}
