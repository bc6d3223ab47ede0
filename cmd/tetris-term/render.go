package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/piece"
)

// Each grid cell is two terminal columns wide so blocks look square.
const (
	originX  = 1
	originY  = 1
	cellW    = 2
	sidebarX = 2
)

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	overStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func kindStyle(k piece.Kind) tcell.Style {
	c := k.Color()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func ghostStyle(k piece.Kind) tcell.Style {
	c := k.Color()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func render(s tcell.Screen, snap game.Snapshot) {
	s.Clear()

	right := originX + snap.Cols*cellW
	bottom := originY + snap.Rows
	for y := originY; y < bottom; y++ {
		s.SetContent(originX-1, y, '│', nil, frameStyle)
		s.SetContent(right, y, '│', nil, frameStyle)
	}
	for x := originX; x < right; x++ {
		s.SetContent(x, bottom, '─', nil, frameStyle)
	}
	s.SetContent(originX-1, bottom, '└', nil, frameStyle)
	s.SetContent(right, bottom, '┘', nil, frameStyle)

	for y, row := range snap.Grid {
		for x, k := range row {
			if k != piece.None {
				block(s, x, y, ' ', kindStyle(k))
			}
		}
	}

	if snap.CurrentKind != piece.None {
		if !snap.GameOver {
			for _, c := range snap.Ghost {
				if snap.Visible(c) {
					block(s, c.X, c.Y, '░', ghostStyle(snap.CurrentKind))
				}
			}
		}
		for _, c := range snap.Current {
			if snap.Visible(c) {
				block(s, c.X, c.Y, ' ', kindStyle(snap.CurrentKind))
			}
		}
	}

	x := right + sidebarX
	text(s, x, originY, fmt.Sprintf("Score %d", snap.Score), textStyle)
	text(s, x, originY+1, fmt.Sprintf("Lines %d", snap.Lines), textStyle)
	text(s, x, originY+2, fmt.Sprintf("Level %d", snap.Level), textStyle)

	if len(snap.Next) > 0 {
		text(s, x, originY+4, "Next", textStyle)
		y := originY + 5
		for _, k := range snap.Next {
			m := piece.Catalog(k).Rotations[0]
			for r, row := range m {
				for c, occupied := range row {
					if occupied {
						s.SetContent(x+c*cellW, y+r, ' ', nil, kindStyle(k))
						s.SetContent(x+c*cellW+1, y+r, ' ', nil, kindStyle(k))
					}
				}
			}
			y += m.Size()
		}
	}

	if snap.GameOver {
		mid := originY + snap.Rows/2
		text(s, originX+snap.Cols-4, mid, "GAME OVER", overStyle)
		text(s, originX+1, mid+1, "c: restart  q: quit", textStyle)
	}
}

func block(s tcell.Screen, x, y int, glyph rune, style tcell.Style) {
	sx := originX + x*cellW
	s.SetContent(sx, originY+y, glyph, nil, style)
	s.SetContent(sx+1, originY+y, glyph, nil, style)
}

func text(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
