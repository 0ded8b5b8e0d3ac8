package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-codebreaker/internal/messaging"
	"github.com/pixil98/go-errors"
)

type BusConfig struct {
	Enabled      bool   `json:"enabled"`
	Host         string `json:"host"`
	Port         int    `json:"port"`
	StartTimeout string `json:"start_timeout"`
}

func (c *BusConfig) Validate() error {
	el := errors.NewErrorList()

	if c.StartTimeout != "" {
		_, err := time.ParseDuration(c.StartTimeout)
		if err != nil {
			el.Add(fmt.Errorf("parsing start_timeout: %w", err))
		}
	}

	return el.Err()
}

// BuildNatsServer builds the embedded bus, wired to stop when the session
// terminates.
func (c *BusConfig) BuildNatsServer(shutdown <-chan struct{}) (*messaging.NatsServer, error) {
	opts := []messaging.NatsServerOpt{
		messaging.WithShutdown(shutdown),
	}
	if c.StartTimeout != "" {
		d, err := time.ParseDuration(c.StartTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing start_timeout: %w", err)
		}
		opts = append(opts, messaging.WithStartTimeout(d))
	}
	if c.Host != "" {
		opts = append(opts, messaging.WithHost(c.Host))
	}
	if c.Port != 0 {
		opts = append(opts, messaging.WithPort(c.Port))
	}

	return messaging.NewNatsServer(opts...)
}
