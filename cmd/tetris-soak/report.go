package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/piece"
	"github.com/plus3/tetris/rules"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	Step     float64
	Rules    rules.Rules

	// Results
	TotalTicks     int64
	Commands       int64
	TotalTime      time.Duration
	TickTime       Stats
	Scores         []int
	Lines          []int
	BestScore      int
	MeanScore      float64
	MeanLines      float64
	Clears         []Bucket
	Locked         []Bucket
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats

	clears *intmap.Map[int, int]
	locked *intmap.Map[piece.Kind, int]
}

// Bucket is one row of a histogram in the report.
type Bucket struct {
	Label string
	Count int
}

func newReport(duration time.Duration, seed uint64, step float64, r rules.Rules) *Report {
	return &Report{
		Duration: duration,
		Seed:     seed,
		Step:     step,
		Rules:    r,
		clears:   intmap.New[int, int](4),
		locked:   intmap.New[piece.Kind, int](piece.Count),
	}
}

func increment[K intmap.IntKey](m *intmap.Map[K, int], k K) {
	n, _ := m.Get(k)
	m.Put(k, n+1)
}

// observe folds one tick's events into the histograms.
func (r *Report) observe(events []game.Event) {
	for _, e := range events {
		switch e.Type {
		case game.EventLocked:
			increment(r.locked, e.Kind)
		case game.EventCleared:
			increment(r.clears, e.Lines)
		}
	}
}

func (r *Report) finishGame(g *game.Game) {
	r.Scores = append(r.Scores, g.Score())
	r.Lines = append(r.Lines, g.Lines())
}

func (r *Report) finalize() {
	if n := len(r.Scores); n > 0 {
		var score, lines int
		for i := range n {
			score += r.Scores[i]
			lines += r.Lines[i]
		}
		r.BestScore = slices.Max(r.Scores)
		r.MeanScore = float64(score) / float64(n)
		r.MeanLines = float64(lines) / float64(n)
	}

	r.Clears = r.Clears[:0]
	for _, rows := range slices.Sorted(r.clears.Keys()) {
		n, _ := r.clears.Get(rows)
		r.Clears = append(r.Clears, Bucket{Label: fmt.Sprintf("%d row(s)", rows), Count: n})
	}

	r.Locked = r.Locked[:0]
	for _, k := range piece.Kinds {
		if n, ok := r.locked.Get(k); ok {
			r.Locked = append(r.Locked, Bucket{Label: k.String(), Count: n})
		}
	}
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	for _, sample := range s.Samples {
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.P99 = sorted[(len(sorted)-1)*99/100]
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Tick Step:** {{printf "%.4f" .Step}}s
- **Board:** {{.Rules.Cols}}x{{.Rules.Rows}} ({{.Rules.HiddenRows}} hidden)

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Commands Applied:** {{.Commands}}
- **Total Test Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}
  - **P99:** {{.TickTime.P99}}

## Games
- **Finished:** {{len .Scores}}
{{- if .Scores}}
- **Best Score:** {{.BestScore}}
- **Mean Score:** {{printf "%.1f" .MeanScore}}
- **Mean Lines:** {{printf "%.1f" .MeanLines}}
{{- end}}

## Line Clears
{{- range .Clears}}
- {{.Label}}: {{.Count}}
{{- else}}
- none
{{- end}}

## Locked Pieces
{{- range .Locked}}
- {{.Label}}: {{.Count}}
{{- else}}
- none
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
