package main

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/ooftn/ecs"
	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/piece"
)

const (
	CellSize     = 30
	OffsetX      = 50
	OffsetY      = 50
	SidebarWidth = 150
)

var pressKeys = []struct {
	key int32
	cmd game.Command
}{
	{rl.KeyUp, game.RotateCW},
	{rl.KeyX, game.RotateCW},
	{rl.KeyZ, game.RotateCCW},
	{rl.KeySpace, game.HardDrop},
	{rl.KeyC, game.Restart},
	{rl.KeyR, game.Restart},
	{rl.KeyEscape, game.Quit},
	{rl.KeyQ, game.Quit},
}

// InputSystem turns held and pressed keys into game commands.
type InputSystem struct {
	Frontend   ecs.Singleton[Frontend]
	InputState ecs.Singleton[InputState]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	frontend := s.Frontend.Get()
	input := s.InputState.Get()
	dt := float32(frame.DeltaTime)

	if repeat(rl.KeyLeft, &input.MoveLeftTime, input, dt) {
		frontend.pending = append(frontend.pending, game.MoveLeft)
	}
	if repeat(rl.KeyRight, &input.MoveRightTime, input, dt) {
		frontend.pending = append(frontend.pending, game.MoveRight)
	}

	if rl.IsKeyDown(rl.KeyDown) {
		frontend.pending = append(frontend.pending, game.SoftDrop)
	}

	for _, k := range pressKeys {
		if rl.IsKeyPressed(k.key) {
			frontend.pending = append(frontend.pending, k.cmd)
		}
	}
}

// repeat fires on press and then every RepeatRate once the key has been held
// past RepeatDelay.
func repeat(key int32, held *float32, input *InputState, dt float32) bool {
	switch {
	case rl.IsKeyPressed(key):
		*held = 0
		return true
	case rl.IsKeyDown(key):
		*held += dt
		if *held > input.RepeatDelay {
			*held -= input.RepeatRate
			return true
		}
	default:
		*held = 0
	}
	return false
}

// StepSystem applies queued commands and advances the game clock.
type StepSystem struct {
	Frontend ecs.Singleton[Frontend]
}

func (s *StepSystem) Execute(frame *ecs.UpdateFrame) {
	frontend := s.Frontend.Get()
	g := frontend.Game

	for _, cmd := range frontend.pending {
		if cmd == game.Quit {
			frontend.Quit = true
			break
		}
		g.Apply(cmd)
	}
	frontend.pending = frontend.pending[:0]

	g.Tick(frame.DeltaTime)

	for _, e := range g.Events() {
		if e.Type == game.EventTopOut || e.Type == game.EventSpawnBlocked {
			log.Printf("Game over (%s): score %d, lines %d, level %d", e.Type, e.Score, g.Lines(), g.Level())
		}
	}
}

type RenderSystem struct {
	Frontend ecs.Singleton[Frontend]
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	snap := s.Frontend.Get().Game.Snapshot()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	gridW := int32(snap.Cols * CellSize)
	gridH := int32(snap.Rows * CellSize)
	rl.DrawRectangleLines(OffsetX-2, OffsetY-2, gridW+4, gridH+4, rl.Gray)

	for y, row := range snap.Grid {
		for x, k := range row {
			if k != piece.None {
				drawCell(x, y, k.Color())
			}
		}
	}

	if snap.CurrentKind != piece.None {
		ghostColor := rl.NewColor(255, 255, 255, 80)
		if !snap.GameOver {
			for _, c := range snap.Ghost {
				if snap.Visible(c) {
					rl.DrawRectangle(cellX(c.X), cellY(c.Y), CellSize, CellSize, ghostColor)
				}
			}
		}

		clr := snap.CurrentKind.Color()
		for _, c := range snap.Current {
			if snap.Visible(c) {
				drawCell(c.X, c.Y, clr)
			}
		}
	}

	textX := OffsetX + gridW + 20
	rl.DrawText("SCORE", textX, OffsetY, 20, rl.White)
	rl.DrawText(fmt.Sprintf("%d", snap.Score), textX, OffsetY+25, 20, rl.White)

	rl.DrawText("LEVEL", textX, OffsetY+60, 20, rl.White)
	rl.DrawText(fmt.Sprintf("%d", snap.Level), textX, OffsetY+85, 20, rl.White)

	rl.DrawText("LINES", textX, OffsetY+120, 20, rl.White)
	rl.DrawText(fmt.Sprintf("%d", snap.Lines), textX, OffsetY+145, 20, rl.White)

	if len(snap.Next) > 0 {
		rl.DrawText("NEXT", textX, OffsetY+190, 20, rl.White)
		y := OffsetY + int32(220)
		const mini = CellSize / 2
		for _, k := range snap.Next {
			m := piece.Catalog(k).Rotations[0]
			clr := k.Color()
			for r, row := range m {
				for c, occupied := range row {
					if occupied {
						rl.DrawRectangle(textX+int32(c*mini), y+int32(r*mini), mini, mini, clr)
					}
				}
			}
			y += int32(m.Size()*mini + mini/2)
		}
	}

	if snap.GameOver {
		rl.DrawRectangle(OffsetX, OffsetY, gridW, gridH, rl.Fade(rl.Black, 0.7))
		rl.DrawText("GAME OVER", OffsetX+gridW/2-80, OffsetY+gridH/2-30, 30, rl.Red)
		rl.DrawText("C to restart, Esc to quit", OffsetX+gridW/2-125, OffsetY+gridH/2+10, 20, rl.White)
	}

	rl.EndDrawing()
}

func drawCell(x, y int, clr rl.Color) {
	rl.DrawRectangle(cellX(x), cellY(y), CellSize, CellSize, clr)
	rl.DrawRectangleLines(cellX(x), cellY(y), CellSize, CellSize, rl.Black)
}

func cellX(x int) int32 { return OffsetX + int32(x*CellSize) }
func cellY(y int) int32 { return OffsetY + int32(y*CellSize) }
