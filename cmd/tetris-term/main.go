// Command tetris-term plays the game in a terminal using tcell.
//
// Terminals report key presses but not releases, so held keys arrive as the
// terminal's own auto-repeat and soft drop moves one row per key event.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/rules"
)

var (
	rulesPath = flag.String("rules", "", "YAML rules file (defaults to the classic 10x20 rules)")
	seed      = flag.Uint64("seed", 0, "bag seed, 0 picks a random one")
	frameTime = flag.Duration("frame", 16*time.Millisecond, "redraw interval")
	logPath   = flag.String("log", "", "write log output to this file instead of discarding it")
)

func main() {
	flag.Parse()

	// The terminal belongs to the game while it runs.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	r := rules.Default()
	if *rulesPath != "" {
		var err error
		if r, err = rules.Load(*rulesPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load rules: %v\n", err)
			os.Exit(1)
		}
	}

	var opts []game.Option
	if *seed != 0 {
		opts = append(opts, game.WithSeed(*seed))
	}

	g, err := game.New(r, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	log.Printf("Starting %dx%d game", r.Cols, r.Rows)
	run(screen, g, *frameTime)
	log.Printf("Quit after %d game(s), score %d", g.Sessions(), g.Score())
}

// run drives the game until a quit key. Input is read on its own goroutine
// and handed to the frame loop over a channel.
func run(screen tcell.Screen, g *game.Game, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd, ok := commandFor(ev)
				if !ok {
					continue
				}
				if cmd == game.Quit {
					return
				}
				g.Apply(cmd)
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			g.Tick(now.Sub(last).Seconds())
			last = now

			for _, e := range g.Events() {
				if e.Type == game.EventTopOut || e.Type == game.EventSpawnBlocked {
					log.Printf("Game over (%s): score %d, lines %d, level %d", e.Type, e.Score, g.Lines(), g.Level())
				}
			}

			render(screen, g.Snapshot())
			screen.Show()
		}
	}
}
