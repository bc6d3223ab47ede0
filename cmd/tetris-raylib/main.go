// Command tetris-raylib plays the game in a raylib window. Input, the game
// step and rendering run as systems on a small frontend scheduler.
package main

import (
	"flag"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/ooftn/ecs"
	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/rules"
)

var (
	rulesPath = flag.String("rules", "", "YAML rules file (defaults to the classic 10x20 rules)")
	seed      = flag.Uint64("seed", 0, "bag seed, 0 picks a random one")
)

func main() {
	flag.Parse()

	r := rules.Default()
	if *rulesPath != "" {
		var err error
		if r, err = rules.Load(*rulesPath); err != nil {
			log.Fatalf("Failed to load rules: %v", err)
		}
	}

	var opts []game.Option
	if *seed != 0 {
		opts = append(opts, game.WithSeed(*seed))
	}

	g, err := game.New(r, opts...)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	width := int32(OffsetX*2 + r.Cols*CellSize + SidebarWidth)
	height := int32(OffsetY*2 + r.Rows*CellSize)
	rl.InitWindow(width, height, "Tetris")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0) // Esc is a game command
	defer rl.CloseWindow()

	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)

	frontend := ecs.NewSingleton[Frontend](storage, Frontend{Game: g})
	ecs.NewSingleton[InputState](storage, InputState{
		RepeatDelay: 0.2,
		RepeatRate:  0.05,
	})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&InputSystem{})
	scheduler.Register(&StepSystem{})
	scheduler.Register(&RenderSystem{})

	log.Printf("Starting %dx%d game", r.Cols, r.Rows)
	for !rl.WindowShouldClose() && !frontend.Get().Quit {
		scheduler.Once(float64(rl.GetFrameTime()))
	}
	log.Printf("Quit after %d game(s), score %d", g.Sessions(), g.Score())
}
