package command

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pixil98/go-codebreaker/internal/driver"
	"github.com/pixil98/go-codebreaker/internal/game"
	"github.com/pixil98/go-codebreaker/internal/ui"
	"github.com/pixil98/go-testutil"
)

func writePreset(t *testing.T, dir, id, body string) {
	t.Helper()

	asset := `{"version": 1, "id": "` + id + `", "spec": ` + body + `}`
	err := os.WriteFile(filepath.Join(dir, id+".json"), []byte(asset), 0o644)
	if err != nil {
		t.Fatalf("writing asset: %v", err)
	}
}

func classicPreset(t *testing.T, dir string) {
	t.Helper()
	writePreset(t, dir, "classic", `{
		"name": "Classic",
		"num_pegs": 4,
		"num_colors": 6,
		"allow_repeats": true,
		"max_attempts": 10,
		"max_time": "10m"
	}`)
}

func TestConfigValidate(t *testing.T) {
	presets := t.TempDir()
	classicPreset(t, presets)

	tests := map[string]struct {
		cfg    Config
		expErr string
	}{
		"minimal config is valid": {
			cfg: Config{
				Storage: StorageConfig{
					Presets: AssetConfig[*game.Rules]{Path: presets},
				},
			},
		},
		"bad tick interval": {
			cfg: Config{
				TickInterval: "fast",
				Storage: StorageConfig{
					Presets: AssetConfig[*game.Rules]{Path: presets},
				},
			},
			expErr: "parsing tick_interval",
		},
		"tick interval too short": {
			cfg: Config{
				TickInterval: "10ms",
				Storage: StorageConfig{
					Presets: AssetConfig[*game.Rules]{Path: presets},
				},
			},
			expErr: "tick_interval must be at least 100ms",
		},
		"missing preset path": {
			cfg:    Config{},
			expErr: "presets: path is required",
		},
		"nonexistent preset path": {
			cfg: Config{
				Storage: StorageConfig{
					Presets: AssetConfig[*game.Rules]{Path: "/does/not/exist"},
				},
			},
			expErr: "invalid path",
		},
		"bad bus timeout": {
			cfg: Config{
				Storage: StorageConfig{
					Presets: AssetConfig[*game.Rules]{Path: presets},
				},
				Bus: BusConfig{StartTimeout: "soon"},
			},
			expErr: "parsing start_timeout",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestTickLength(t *testing.T) {
	tests := map[string]struct {
		interval string
		exp      time.Duration
	}{
		"unset falls back": {
			interval: "",
			exp:      driver.DefaultTickLength,
		},
		"configured value wins": {
			interval: "500ms",
			exp:      500 * time.Millisecond,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Config{TickInterval: tt.interval}
			testutil.AssertEqual(t, "tick length", cfg.TickLength(driver.DefaultTickLength), tt.exp)
		})
	}
}

func TestBuildRules(t *testing.T) {
	presets := t.TempDir()
	classicPreset(t, presets)

	cfg := Config{
		Storage: StorageConfig{
			Presets: AssetConfig[*game.Rules]{Path: presets},
		},
	}

	lib, err := cfg.Storage.BuildLibrary()
	if err != nil {
		t.Fatalf("building library: %v", err)
	}

	t.Run("configured preset", func(t *testing.T) {
		rc := RulesConfig{Preset: "classic"}
		rules, err := rc.BuildRules(lib)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testutil.AssertEqual(t, "name", rules.Name, "Classic")
		testutil.AssertEqual(t, "pegs", rules.NumPegs, 4)
	})

	t.Run("unknown preset", func(t *testing.T) {
		rc := RulesConfig{Preset: "missing"}
		_, err := rc.BuildRules(lib)
		testutil.AssertErrorContains(t, err, `unknown rule preset "missing"`)
	})
}

func TestBuildTheme(t *testing.T) {
	presets := t.TempDir()
	classicPreset(t, presets)

	themes := t.TempDir()
	writePreset(t, themes, "mono", `{
		"name": "Mono",
		"peg_glyphs": ["1", "2", "3", "4", "5", "6"],
		"empty_glyph": "_",
		"black_glyph": "X",
		"white_glyph": "x",
		"win_banner": "won",
		"lose_banner": "lost",
		"pause_banner": "paused",
		"reveal_banner": "revealed"
	}`)

	cfg := Config{
		Storage: StorageConfig{
			Presets: AssetConfig[*game.Rules]{Path: presets},
			Themes:  AssetConfig[*ui.Theme]{Path: themes},
		},
	}

	lib, err := cfg.Storage.BuildLibrary()
	if err != nil {
		t.Fatalf("building library: %v", err)
	}

	t.Run("default when unset", func(t *testing.T) {
		uc := UIConfig{}
		theme, err := uc.BuildTheme(lib)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testutil.AssertEqual(t, "name", theme.Name, "Default")
	})

	t.Run("named theme", func(t *testing.T) {
		uc := UIConfig{Theme: "mono"}
		theme, err := uc.BuildTheme(lib)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testutil.AssertEqual(t, "name", theme.Name, "Mono")
	})

	t.Run("unknown theme", func(t *testing.T) {
		uc := UIConfig{Theme: "neon"}
		_, err := uc.BuildTheme(lib)
		testutil.AssertErrorContains(t, err, `unknown theme "neon"`)
	})

	t.Run("theme without store", func(t *testing.T) {
		bare := &Library{Presets: lib.Presets}
		uc := UIConfig{Theme: "mono"}
		_, err := uc.BuildTheme(bare)
		testutil.AssertErrorContains(t, err, "storage.themes is not configured")
	})
}
