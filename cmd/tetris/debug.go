package main

import (
	"fmt"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ooftn/ecs"
	"github.com/plus3/ooftn/ecs/debugui"
	debugui_ebiten "github.com/plus3/ooftn/ecs/debugui/ebiten"
	"github.com/plus3/tetris/game"
)

const (
	overlayWidth = 420
	eventLogSize = 12
)

// overlay runs its own ECS storage holding the ImGui panels, separate from
// the game session it inspects.
type overlay struct {
	game      *game.Game
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	backend   *ecs.Singleton[debugui_ebiten.ImguiBackend]
	input     *ecs.Singleton[debugui.ImguiInputState]

	events []game.Event
}

func newOverlay(g *game.Game, width, height int) *overlay {
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("Tetris (debug)", width, height)
	imgui.CurrentIO().SetIniFilename("")

	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[debugui_ebiten.ImguiBackend](registry)
	ecs.RegisterComponent[debugui.ImguiItem](registry)
	ecs.RegisterComponent[debugui.ImguiInputState](registry)
	debugui.RegisterDebugUIComponents(registry)

	storage := ecs.NewStorage(registry)
	o := &overlay{
		game:    g,
		storage: storage,
		backend: ecs.NewSingleton[debugui_ebiten.ImguiBackend](storage, debugui_ebiten.ImguiBackend{
			EbitenBackend: imguiBackend,
		}),
		input: ecs.NewSingleton[debugui.ImguiInputState](storage),
	}
	ecs.NewSingleton[debugui.FrameTimer](storage, *debugui.NewFrameTimer())

	panelX := float32(width - overlayWidth + 10)
	storage.Spawn(debugui.ImguiItem{Render: func() { o.renderSession(panelX, 10) }})
	storage.Spawn(debugui.ImguiItem{Render: func() { o.renderSystems(panelX, 230) }})
	storage.Spawn(debugui.ImguiItem{Render: func() { o.renderEvents(panelX, 420) }})
	storage.Spawn(debugui.NewPerformanceStatsComponent(120))

	o.scheduler = ecs.NewScheduler(storage)
	o.scheduler.Register(&debugui.ImguiSystem{})

	return o
}

func (o *overlay) begin() {
	o.backend.Get().BeginFrame()
}

func (o *overlay) end() {
	o.scheduler.Once(tickDt)
	o.backend.Get().EndFrame()
}

func (o *overlay) draw(screen *ebiten.Image) {
	o.backend.Get().Draw(screen)
}

func (o *overlay) layout(width, height int) {
	o.backend.Get().Layout(width, height)
}

// wantsKeyboard reports whether an ImGui widget has keyboard focus, in which
// case game keys are not polled.
func (o *overlay) wantsKeyboard() bool {
	return o.input.Get().WantCaptureKeyboard
}

func (o *overlay) record(e game.Event) {
	o.events = append(o.events, e)
	if len(o.events) > eventLogSize {
		o.events = o.events[len(o.events)-eventLogSize:]
	}
}

func place(x, y, w, h float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(x, y), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(w, h), imgui.CondOnce)
}

func (o *overlay) renderSession(x, y float32) {
	place(x, y, overlayWidth-20, 210)
	if imgui.Begin("Session") {
		snap := o.game.Snapshot()
		r := o.game.Rules()

		imgui.Text(fmt.Sprintf("Status:   %s (session %d)", o.game.Status(), o.game.Sessions()))
		imgui.Text(fmt.Sprintf("Score:    %d", snap.Score))
		imgui.Text(fmt.Sprintf("Lines:    %d", snap.Lines))
		imgui.Text(fmt.Sprintf("Level:    %d", snap.Level))
		imgui.Text(fmt.Sprintf("Interval: %.3fs", r.DropInterval(snap.Level)))
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Current:  %s", snap.CurrentKind))
		if len(snap.Current) > 0 {
			imgui.Text(fmt.Sprintf("Top cell: (%d, %d)  ghost row %d", snap.Current[0].X, snap.Current[0].Y, snap.GhostRow))
		}
		imgui.Text(fmt.Sprintf("Next:     %v", snap.Next))
		imgui.ProgressBar(float32(snap.Lines%r.LinesPerLevel) / float32(r.LinesPerLevel))
	}
	imgui.End()
}

func (o *overlay) renderSystems(x, y float32) {
	place(x, y, overlayWidth-20, 180)
	if imgui.Begin("Systems") {
		stats := o.game.Stats()
		imgui.Text(fmt.Sprintf("%d systems, %d executions", stats.SystemCount, stats.TotalExecutions))
		imgui.Separator()
		for _, s := range stats.Systems {
			imgui.Text(fmt.Sprintf("%-14s avg %-9v max %v", s.Name, s.AvgDuration, s.MaxDuration))
		}
	}
	imgui.End()
}

func (o *overlay) renderEvents(x, y float32) {
	place(x, y, overlayWidth-20, 200)
	if imgui.Begin("Events") {
		if len(o.events) == 0 {
			imgui.Text("none yet")
		}
		for i := len(o.events) - 1; i >= 0; i-- {
			e := o.events[i]
			imgui.Text(fmt.Sprintf("#%-4d %-13s %s lines=%d score=%d", e.Seq, e.Type, e.Kind, e.Lines, e.Score))
		}
	}
	imgui.End()
}
