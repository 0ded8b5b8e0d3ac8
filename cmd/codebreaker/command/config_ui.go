package command

import (
	"fmt"

	"github.com/pixil98/go-codebreaker/internal/ui"
)

type UIConfig struct {
	Theme string `json:"theme"`
}

func (c *UIConfig) BuildTheme(lib *Library) (*ui.Theme, error) {
	if c.Theme == "" {
		return ui.DefaultTheme(), nil
	}

	if lib.Themes == nil {
		return nil, fmt.Errorf("theme %q requested but storage.themes is not configured", c.Theme)
	}

	t := lib.Themes.Get(c.Theme)
	if t == nil {
		return nil, fmt.Errorf("unknown theme %q", c.Theme)
	}

	return t, nil
}
