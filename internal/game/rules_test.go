package game

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

func TestRules_Validate(t *testing.T) {
	tests := map[string]struct {
		rules  Rules
		expErr string
	}{
		"valid with repeats": {
			rules: Rules{
				Name:         "classic",
				NumPegs:      4,
				NumColors:    6,
				AllowRepeats: true,
				MaxAttempts:  10,
				MaxTime:      Duration(10 * time.Minute),
			},
		},
		"valid without repeats": {
			rules: Rules{
				Name:        "speedrun",
				NumPegs:     4,
				NumColors:   4,
				MaxAttempts: 99,
				MaxTime:     Duration(90 * time.Minute),
			},
		},
		"missing name": {
			rules: Rules{
				NumPegs:     4,
				NumColors:   6,
				MaxAttempts: 10,
				MaxTime:     Duration(time.Minute),
			},
			expErr: "name is required",
		},
		"palette smaller than pegs without repeats": {
			rules: Rules{
				Name:        "bad",
				NumPegs:     5,
				NumColors:   4,
				MaxAttempts: 10,
				MaxTime:     Duration(time.Minute),
			},
			expErr: "num_colors must be at least num_pegs",
		},
		"palette too large": {
			rules: Rules{
				Name:         "bad",
				NumPegs:      4,
				NumColors:    9,
				AllowRepeats: true,
				MaxAttempts:  10,
				MaxTime:      Duration(time.Minute),
			},
			expErr: "num_colors must be at most",
		},
		"zero attempts": {
			rules: Rules{
				Name:         "bad",
				NumPegs:      4,
				NumColors:    6,
				AllowRepeats: true,
				MaxTime:      Duration(time.Minute),
			},
			expErr: "max_attempts must be at least 1",
		},
		"zero time budget": {
			rules: Rules{
				Name:         "bad",
				NumPegs:      4,
				NumColors:    6,
				AllowRepeats: true,
				MaxAttempts:  10,
			},
			expErr: "max_time must be positive",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.rules.Validate()

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

func TestRules_JSON(t *testing.T) {
	data := []byte(`{
		"name": "speedrun",
		"num_pegs": 4,
		"num_colors": 4,
		"allow_repeats": false,
		"max_attempts": 99,
		"max_time": "90m"
	}`)

	var rules Rules
	if err := json.Unmarshal(data, &rules); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "name", rules.Name, "speedrun")
	testutil.AssertEqual(t, "max play time", rules.MaxPlayTime(), 90*time.Minute)

	if err := rules.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	out, err := json.Marshal(&rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var back Rules
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "roundtrip max time", back.MaxTime, rules.MaxTime)
}

func TestRules_JSON_BadDuration(t *testing.T) {
	var rules Rules
	err := json.Unmarshal([]byte(`{"name": "x", "max_time": "ninety minutes"}`), &rules)
	testutil.AssertErrorContains(t, err, "parsing duration")
}
