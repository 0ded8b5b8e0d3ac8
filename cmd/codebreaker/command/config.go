package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	TickInterval string        `json:"tick_interval"`
	Rules        RulesConfig   `json:"rules"`
	UI           UIConfig      `json:"ui"`
	Storage      StorageConfig `json:"storage"`
	Bus          BusConfig     `json:"bus"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.TickInterval != "" {
		d, err := time.ParseDuration(c.TickInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing tick_interval: %w", err))
		} else if d < 100*time.Millisecond {
			el.Add(fmt.Errorf("tick_interval must be at least 100ms"))
		}
	}

	el.Add(c.Storage.Validate())
	el.Add(c.Bus.Validate())

	return el.Err()
}

// TickLength resolves the configured tick interval, falling back to the
// driver default when unset. Validate has already vetted the value.
func (c *Config) TickLength(fallback time.Duration) time.Duration {
	if c.TickInterval == "" {
		return fallback
	}
	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		return fallback
	}
	return d
}
