// Package rules holds the tunable constants of a game session: grid size,
// gravity pacing, lock delay and the scoring table.
package rules

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid rules")

// Rules describes one game configuration. The zero value is not usable, start
// from Default.
type Rules struct {
	Cols       int `yaml:"cols"`
	Rows       int `yaml:"rows"`
	HiddenRows int `yaml:"hidden_rows"` // rows above the grid a piece spawns into

	LockDelay     float64 `yaml:"lock_delay"`     // seconds
	BaseInterval  float64 `yaml:"base_interval"`  // seconds per row at level 1
	IntervalDecay float64 `yaml:"interval_decay"` // multiplier per level
	MinInterval   float64 `yaml:"min_interval"`   // seconds

	LineScores    []int `yaml:"line_scores"` // indexed by rows cleared at once
	LinesPerLevel int   `yaml:"lines_per_level"`
	HardDropBonus int   `yaml:"hard_drop_bonus"`
	SoftDropBonus int   `yaml:"soft_drop_bonus"` // per row

	Preview int `yaml:"preview"` // upcoming kinds exposed to renderers
}

// Default returns the classic 10x20 configuration.
func Default() Rules {
	return Rules{
		Cols:          10,
		Rows:          20,
		HiddenRows:    2,
		LockDelay:     0.5,
		BaseInterval:  0.9,
		IntervalDecay: 0.85,
		MinInterval:   0.05,
		LineScores:    []int{0, 100, 300, 500, 800},
		LinesPerLevel: 10,
		HardDropBonus: 2,
		SoftDropBonus: 1,
		Preview:       3,
	}
}

// Parse decodes YAML over the defaults, so absent keys keep their default
// value, and validates the result.
func Parse(data []byte) (Rules, error) {
	r := Default()
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("failed to parse rules file: %w", err)
	}

	if err := r.Validate(); err != nil {
		return Rules{}, err
	}

	return r, nil
}

// Load reads rules from a YAML file
func Load(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}

	return Parse(data)
}

// Validate reports the first inconsistent field.
func (r Rules) Validate() error {
	switch {
	case r.Cols < 4:
		return fmt.Errorf("%w: cols must be at least 4, got %d", ErrInvalid, r.Cols)
	case r.Rows < 4:
		return fmt.Errorf("%w: rows must be at least 4, got %d", ErrInvalid, r.Rows)
	case r.HiddenRows < 0 || r.HiddenRows > r.Rows:
		return fmt.Errorf("%w: hidden_rows must be in [0, rows], got %d", ErrInvalid, r.HiddenRows)
	case r.LockDelay <= 0:
		return fmt.Errorf("%w: lock_delay must be positive", ErrInvalid)
	case r.MinInterval <= 0:
		return fmt.Errorf("%w: min_interval must be positive", ErrInvalid)
	case r.BaseInterval < r.MinInterval:
		return fmt.Errorf("%w: base_interval %.3f is below min_interval %.3f", ErrInvalid, r.BaseInterval, r.MinInterval)
	case r.IntervalDecay <= 0 || r.IntervalDecay > 1:
		return fmt.Errorf("%w: interval_decay must be in (0, 1], got %.3f", ErrInvalid, r.IntervalDecay)
	case len(r.LineScores) != 5:
		return fmt.Errorf("%w: line_scores needs 5 entries (0-4 rows), got %d", ErrInvalid, len(r.LineScores))
	case r.LinesPerLevel <= 0:
		return fmt.Errorf("%w: lines_per_level must be positive", ErrInvalid)
	case r.HardDropBonus < 0 || r.SoftDropBonus < 0:
		return fmt.Errorf("%w: drop bonuses cannot be negative", ErrInvalid)
	case r.Preview < 0 || r.Preview > 7:
		return fmt.Errorf("%w: preview must be in [0, 7], got %d", ErrInvalid, r.Preview)
	}

	for i, score := range r.LineScores {
		if score < 0 {
			return fmt.Errorf("%w: line_scores[%d] is negative", ErrInvalid, i)
		}
	}

	return nil
}

// DropInterval returns the seconds between gravity steps at the given level.
func (r Rules) DropInterval(level int) float64 {
	if level < 1 {
		level = 1
	}
	return math.Max(r.MinInterval, r.BaseInterval*math.Pow(r.IntervalDecay, float64(level-1)))
}

// LevelFor derives the level from the total cleared line count.
func (r Rules) LevelFor(lines int) int {
	return 1 + lines/r.LinesPerLevel
}

// ClearScore is the score for clearing rows at once at the given level.
// Counts beyond the table are scored as the largest entry.
func (r Rules) ClearScore(rows, level int) int {
	if rows <= 0 {
		return 0
	}
	rows = min(rows, len(r.LineScores)-1)
	return r.LineScores[rows] * level
}
