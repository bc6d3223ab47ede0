package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/plus3/tetris/game"
)

type weighted struct {
	cmd    game.Command
	weight int
}

// parseMix reads "name=weight" pairs separated by commas.
func parseMix(s string) ([]weighted, error) {
	var out []weighted
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		name, value, found := strings.Cut(field, "=")
		if !found {
			return nil, fmt.Errorf("missing weight in %q", field)
		}

		cmd, err := game.ParseCommand(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		if cmd == game.Quit || cmd == game.Restart {
			return nil, fmt.Errorf("%s cannot be part of the mix", cmd)
		}

		weight, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("failed to parse weight of %s: %w", cmd, err)
		}
		if weight <= 0 {
			return nil, fmt.Errorf("weight of %s must be positive", cmd)
		}

		out = append(out, weighted{cmd: cmd, weight: weight})
	}

	if len(out) == 0 {
		return nil, errors.New("empty mix")
	}
	return out, nil
}

// policy draws commands at random in proportion to their weight.
type policy struct {
	rng   *rand.Rand
	mix   []weighted
	total int
	idle  float64
}

func newPolicy(rng *rand.Rand, mix []weighted, idle float64) *policy {
	total := 0
	for _, w := range mix {
		total += w.weight
	}
	return &policy{rng: rng, mix: mix, total: total, idle: idle}
}

// next returns the command for this tick, or false to stay idle.
func (p *policy) next() (game.Command, bool) {
	if p.rng.Float64() < p.idle {
		return 0, false
	}

	n := p.rng.IntN(p.total)
	for _, w := range p.mix {
		if n < w.weight {
			return w.cmd, true
		}
		n -= w.weight
	}
	return 0, false
}
