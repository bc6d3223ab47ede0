package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/piece"
)

var (
	background = color.RGBA{18, 18, 24, 255}
	frame      = color.RGBA{90, 90, 100, 255}
	gridLine   = color.RGBA{30, 30, 38, 255}
	ghostFill  = color.NRGBA{255, 255, 255, 60}
	dim        = color.NRGBA{0, 0, 0, 170}
)

func drawGame(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(background)

	w := float32(snap.Cols * cell)
	h := float32(snap.Rows * cell)
	vector.StrokeRect(screen, margin-2, margin-2, w+4, h+4, 2, frame, false)

	for y, row := range snap.Grid {
		for x, k := range row {
			if k == piece.None {
				vector.StrokeRect(screen, cellX(x), cellY(y), cell, cell, 1, gridLine, false)
				continue
			}
			drawCell(screen, cellX(x), cellY(y), cell, k.Color())
		}
	}

	if snap.CurrentKind != piece.None {
		if !snap.GameOver {
			for _, c := range snap.Ghost {
				if snap.Visible(c) {
					vector.DrawFilledRect(screen, cellX(c.X), cellY(c.Y), cell, cell, ghostFill, false)
				}
			}
		}
		for _, c := range snap.Current {
			if snap.Visible(c) {
				drawCell(screen, cellX(c.X), cellY(c.Y), cell, snap.CurrentKind.Color())
			}
		}
	}

	drawSidebar(screen, snap)

	if snap.GameOver {
		vector.DrawFilledRect(screen, margin, margin, w, h, dim, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", margin+int(w)/2-27, margin+int(h)/2-20)
		ebitenutil.DebugPrintAt(screen, "C to restart, Esc to quit", margin+int(w)/2-75, margin+int(h)/2)
	}
}

func drawSidebar(screen *ebiten.Image, snap game.Snapshot) {
	x := margin*2 + snap.Cols*cell
	y := margin

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", snap.Score), x, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES %d", snap.Lines), x, y+20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d", snap.Level), x, y+40)

	if len(snap.Next) == 0 {
		return
	}

	ebitenutil.DebugPrintAt(screen, "NEXT", x, y+80)
	const mini = cell / 2
	py := float32(y + 100)
	for _, k := range snap.Next {
		m := piece.Catalog(k).Rotations[0]
		for r, row := range m {
			for c, occupied := range row {
				if occupied {
					drawCell(screen, float32(x+c*mini), py+float32(r*mini), mini, k.Color())
				}
			}
		}
		py += float32(m.Size()*mini + mini/2)
	}
}

func drawCell(screen *ebiten.Image, x, y, size float32, clr color.Color) {
	vector.DrawFilledRect(screen, x, y, size, size, clr, false)
	vector.StrokeRect(screen, x, y, size, size, 1, color.Black, false)
}

func cellX(x int) float32 { return float32(margin + x*cell) }
func cellY(y int) float32 { return float32(margin + y*cell) }
