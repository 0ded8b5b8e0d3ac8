package game

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

// Duration wraps time.Duration so rule assets can spell budgets as "90m".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parsing duration: %w", err)
	}

	*d = Duration(v)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Rules parameterizes a session: board dimensions, repetition, and the
// attempt and time budgets. Difficulty variants are rule assets loaded from
// storage, not code forks.
type Rules struct {
	Name         string   `json:"name"`
	NumPegs      int      `json:"num_pegs"`
	NumColors    int      `json:"num_colors"`
	AllowRepeats bool     `json:"allow_repeats"`
	MaxAttempts  int      `json:"max_attempts"`
	MaxTime      Duration `json:"max_time"`
}

func (r *Rules) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}

	if r.NumPegs < 1 {
		el.Add(fmt.Errorf("num_pegs must be at least 1"))
	}

	if r.NumColors < 2 {
		el.Add(fmt.Errorf("num_colors must be at least 2"))
	} else if r.NumColors > MaxColors {
		el.Add(fmt.Errorf("num_colors must be at most %d", MaxColors))
	}

	if !r.AllowRepeats && r.NumColors < r.NumPegs {
		el.Add(fmt.Errorf("num_colors must be at least num_pegs when repeats are disabled"))
	}

	if r.MaxAttempts < 1 {
		el.Add(fmt.Errorf("max_attempts must be at least 1"))
	}

	if r.MaxTime <= 0 {
		el.Add(fmt.Errorf("max_time must be positive"))
	}

	return el.Err()
}

// Selector labels the ruleset in selection prompts.
func (r *Rules) Selector() string {
	return r.Name
}

// MaxPlayTime is the session time budget as a time.Duration.
func (r *Rules) MaxPlayTime() time.Duration {
	return time.Duration(r.MaxTime)
}
