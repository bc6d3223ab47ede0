// Package game runs a falling-block session on an ECS scheduler. Each Tick
// executes the pace, gravity, lock and spawn systems in that order; player
// commands are applied between ticks.
package game

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/plus3/ooftn/ecs"
	"github.com/plus3/tetris/piece"
	"github.com/plus3/tetris/rules"
)

// Game owns one session at a time. It is not safe for concurrent use.
type Game struct {
	rules rules.Rules
	rng   *rand.Rand

	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	session   *ecs.Singleton[Session]
	clock     *ecs.Singleton[Clock]
	events    *ecs.View[struct {
		ecs.EntityId
		*Event
	}]

	sessions int
}

// Option configures a Game.
type Option func(*Game)

// WithRand makes the bag draw from rng. Restarted sessions keep drawing from
// the same source.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithSeed is WithRand with a PCG source seeded from seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// New validates r and starts the first session.
func New(r rules.Rules, opts ...Option) (*Game, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{rules: r}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	g.reset()
	return g, nil
}

// reset discards the storage and scheduler and builds a fresh session.
func (g *Game) reset() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Event](registry)

	g.storage = ecs.NewStorage(registry)

	// Singletons must exist before the systems that reference them are
	// registered.
	ecs.NewSingleton[rules.Rules](g.storage, g.rules)
	g.session = ecs.NewSingleton[Session](g.storage, newSession(g.rules, piece.NewBag(g.rng)))
	g.clock = ecs.NewSingleton[Clock](g.storage, Clock{Interval: g.rules.DropInterval(1)})

	g.scheduler = ecs.NewScheduler(g.storage)
	g.scheduler.Register(&PaceSystem{})
	g.scheduler.Register(&GravitySystem{})
	g.scheduler.Register(&LockSystem{})
	g.scheduler.Register(&SpawnSystem{})

	g.events = ecs.NewView[struct {
		ecs.EntityId
		*Event
	}](g.storage)

	g.session.Get().spawn(g.rules, g.clock.Get(), g.spawnNow)
	g.sessions++
}

func (g *Game) spawnNow(components ...any) {
	g.storage.Spawn(components...)
}

// Tick advances the session by dt seconds. It does nothing after game over.
func (g *Game) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	g.scheduler.Once(dt)
}

// Restart abandons the current session, including a finished one, and starts
// a new one with the same rules.
func (g *Game) Restart() {
	g.reset()
}

// Events drains the events recorded since the last call, oldest first.
func (g *Game) Events() []Event {
	var out []Event
	var ids []ecs.EntityId
	for e := range g.events.Iter() {
		out = append(out, *e.Event)
		ids = append(ids, e.EntityId)
	}

	for _, id := range ids {
		g.storage.Delete(id)
	}

	slices.SortFunc(out, func(a, b Event) int {
		switch {
		case a.Seq < b.Seq:
			return -1
		case a.Seq > b.Seq:
			return 1
		}
		return 0
	})
	return out
}

// Stats reports per-system timing for the current session.
func (g *Game) Stats() *ecs.SchedulerStats {
	return g.scheduler.GetStats()
}

// Storage exposes the session's ECS storage to debugging tools.
func (g *Game) Storage() *ecs.Storage {
	return g.storage
}

func (g *Game) Rules() rules.Rules { return g.rules }
func (g *Game) Status() Status     { return g.session.Get().Status }
func (g *Game) Over() bool         { return g.Status() == GameOver }
func (g *Game) Score() int         { return g.session.Get().Board.Score() }
func (g *Game) Lines() int         { return g.session.Get().Board.Lines() }
func (g *Game) Level() int         { return g.session.Get().Board.Level() }

// Sessions counts the sessions started, the first one included.
func (g *Game) Sessions() int { return g.sessions }
