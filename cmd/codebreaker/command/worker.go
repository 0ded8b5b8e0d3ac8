package command

import (
	"fmt"

	"github.com/pixil98/go-codebreaker/internal/driver"
	"github.com/pixil98/go-codebreaker/internal/game"
	"github.com/pixil98/go-codebreaker/internal/messaging"
	"github.com/pixil98/go-codebreaker/internal/ui"
	service "github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	lib, err := cfg.Storage.BuildLibrary()
	if err != nil {
		return nil, fmt.Errorf("loading assets: %w", err)
	}

	rules, err := cfg.Rules.BuildRules(lib)
	if err != nil {
		return nil, fmt.Errorf("building rules: %w", err)
	}

	theme, err := cfg.UI.BuildTheme(lib)
	if err != nil {
		return nil, fmt.Errorf("building theme: %w", err)
	}

	// The publisher is bound to the bus below, once the session exists to
	// provide the shutdown signal.
	var sessionOpts []game.SessionOpt
	var pub *messaging.EventPublisher
	if cfg.Bus.Enabled {
		pub = messaging.NewEventPublisher()
		sessionOpts = append(sessionOpts, game.WithPublisher(pub))
	}

	session, err := game.NewSession(rules, sessionOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	screen, err := ui.NewScreen(session, theme)
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}

	workers := service.WorkerList{
		"ui": screen,
		"driver": driver.NewDriver(
			[]driver.Manager{screen},
			driver.WithTickLength(cfg.TickLength(driver.DefaultTickLength)),
			driver.WithShutdown(session.Done()),
		),
	}

	if cfg.Bus.Enabled {
		bus, err := cfg.Bus.BuildNatsServer(session.Done())
		if err != nil {
			return nil, fmt.Errorf("creating bus: %w", err)
		}
		pub.Bind(bus)
		workers["bus"] = bus
	}

	return workers, nil
}
