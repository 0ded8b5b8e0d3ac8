package command

import (
	"fmt"
	"io"
	"os"

	"github.com/pixil98/go-codebreaker/internal/game"
	"github.com/pixil98/go-codebreaker/internal/storage"
)

type RulesConfig struct {
	Preset string `json:"preset"`
}

// BuildRules resolves the ruleset for this run. A configured preset is looked
// up directly; otherwise the available presets are offered on the terminal
// before the screen takes over.
func (c *RulesConfig) BuildRules(lib *Library) (*game.Rules, error) {
	if c.Preset != "" {
		r := lib.Presets.Get(c.Preset)
		if r == nil {
			return nil, fmt.Errorf("unknown rule preset %q", c.Preset)
		}
		return r, nil
	}

	sel := storage.NewSelectableStorer[*game.Rules](lib.Presets)
	id, err := sel.Prompt(stdio{os.Stdin, os.Stdout}, "Choose a rule preset:")
	if err != nil {
		return nil, fmt.Errorf("selecting rule preset: %w", err)
	}

	return lib.Presets.Get(id), nil
}

// stdio pairs the process's standard streams into one ReadWriter for prompts.
type stdio struct {
	io.Reader
	io.Writer
}
