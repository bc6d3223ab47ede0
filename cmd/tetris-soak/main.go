// Command tetris-soak plays games headlessly with a random command policy
// and reports tick latency, scores and event histograms.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/rules"
)

const defaultMix = "move-left=3,move-right=3,rotate-cw=2,rotate-ccw=1,soft-drop=4,hard-drop=1"

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	seed := flag.Uint64("seed", 1, "Seed for both the bag and the command policy.")
	rulesPath := flag.String("rules", "", "YAML rules file (defaults to the classic 10x20 rules).")
	step := flag.Float64("dt", 1.0/60, "Simulated seconds per tick.")
	idle := flag.Float64("idle", 0.5, "Probability of issuing no command on a tick.")
	mix := flag.String("mix", defaultMix, "Weighted commands the policy draws from.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	r := rules.Default()
	if *rulesPath != "" {
		var err error
		if r, err = rules.Load(*rulesPath); err != nil {
			log.Fatalf("Failed to load rules: %v", err)
		}
	}

	weights, err := parseMix(*mix)
	if err != nil {
		log.Fatalf("Failed to parse -mix: %v", err)
	}

	g, err := game.New(r, game.WithSeed(*seed))
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	p := newPolicy(rand.New(rand.NewPCG(*seed, ^*seed)), weights, *idle)

	log.Println("Starting soak test...")

	report := newReport(*duration, *seed, *step, r)
	report.GCPauseMetrics = *gcPauseMetrics
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	progress := time.NewTicker(time.Second)
	defer progress.Stop()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		case <-progress.C:
			log.Printf("%d ticks, %d games finished", report.TotalTicks, len(report.Scores))
		default:
			updateStart := time.Now()
			if cmd, ok := p.next(); ok {
				g.Apply(cmd)
				report.Commands++
			}
			g.Tick(*step)
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(updateStart))
			report.TotalTicks++

			report.observe(g.Events())
			if g.Over() {
				report.finishGame(g)
				g.Restart()
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	report.finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
