package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-codebreaker/internal/game"
	"github.com/pixil98/go-codebreaker/internal/storage"
	"github.com/pixil98/go-codebreaker/internal/ui"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	Presets AssetConfig[*game.Rules] `json:"presets"`
	Themes  AssetConfig[*ui.Theme]   `json:"themes"`
}

// Library holds every asset store loaded at startup. Assets are read-only;
// nothing is written back during play.
type Library struct {
	Presets *storage.FileStore[*game.Rules]
	Themes  *storage.FileStore[*ui.Theme]
}

func (c *StorageConfig) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Presets.Validate("presets"))

	// Themes are optional; the built-in default covers a bare install.
	if c.Themes.Path != "" {
		el.Add(c.Themes.Validate("themes"))
	}

	return el.Err()
}

func (c *StorageConfig) BuildLibrary() (*Library, error) {
	presets, err := c.Presets.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating preset store: %w", err)
	}

	lib := &Library{Presets: presets}

	if c.Themes.Path != "" {
		themes, err := c.Themes.BuildFileStore()
		if err != nil {
			return nil, fmt.Errorf("creating theme store: %w", err)
		}
		lib.Themes = themes
	}

	return lib, nil
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
