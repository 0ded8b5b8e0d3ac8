package messaging

import "log/slog"

// EventPublisher adapts the embedded bus to the game's Publisher interface.
// Construction is two-phase: the publisher is handed to the session first and
// bound to the bus once it exists. Events published before the bind, or while
// the bus worker is still coming up, are dropped rather than treated as
// failures.
type EventPublisher struct {
	server *NatsServer
}

func NewEventPublisher() *EventPublisher {
	return &EventPublisher{}
}

// Bind attaches the bus. Must happen before any worker starts.
func (p *EventPublisher) Bind(server *NatsServer) {
	p.server = server
}

func (p *EventPublisher) Publish(subject string, data []byte) error {
	if p.server == nil || p.server.conn == nil {
		slog.Debug("dropping event, bus not ready", "subject", subject)
		return nil
	}
	return p.server.Publish(subject, data)
}
