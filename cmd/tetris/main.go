// Command tetris plays the game in an ebiten window. With -debug it adds a
// Dear ImGui overlay showing the session and the scheduler.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/rules"
)

const (
	tps     = 60
	tickDt  = 1.0 / tps
	cell    = 30
	margin  = 20
	sidebar = 160
)

var (
	rulesPath = flag.String("rules", "", "YAML rules file (defaults to the classic 10x20 rules)")
	seed      = flag.Uint64("seed", 0, "bag seed, 0 picks a random one")
	debug     = flag.Bool("debug", false, "show the ImGui debug overlay")
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

	a := &app{
		game:   g,
		input:  newInput(),
		width:  margin*3 + r.Cols*cell + sidebar,
		height: margin*2 + r.Rows*cell,
	}

	ebiten.SetTPS(tps)
	if *debug {
		a.overlay = newOverlay(g, a.width+overlayWidth, a.height)
	} else {
		ebiten.SetWindowSize(a.width, a.height)
		ebiten.SetWindowTitle("Tetris")
	}

	log.Printf("Starting %dx%d game", r.Cols, r.Rows)
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Printf("Quit after %d game(s), score %d", g.Sessions(), g.Score())
}

// app implements ebiten.Game.
type app struct {
	game    *game.Game
	input   *input
	overlay *overlay // nil without -debug

	width, height int
}

func (a *app) Update() error {
	if a.overlay != nil {
		a.overlay.begin()
		defer a.overlay.end()
	}

	if a.overlay == nil || !a.overlay.wantsKeyboard() {
		for _, cmd := range a.input.poll(tickDt) {
			if cmd == game.Quit {
				return ebiten.Termination
			}
			a.game.Apply(cmd)
		}
	}

	a.game.Tick(tickDt)

	for _, e := range a.game.Events() {
		if a.overlay != nil {
			a.overlay.record(e)
		}
		if e.Type == game.EventTopOut || e.Type == game.EventSpawnBlocked {
			log.Printf("Game over (%s): score %d, lines %d, level %d", e.Type, e.Score, a.game.Lines(), a.game.Level())
		}
	}

	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	drawGame(screen, a.game.Snapshot())

	if a.overlay != nil {
		a.overlay.draw(screen)
	}
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.overlay != nil {
		a.overlay.layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return a.width, a.height
}
