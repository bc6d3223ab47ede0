package game

import (
	"slices"

	"github.com/plus3/tetris/piece"
)

// Snapshot is a copy of everything a renderer draws. It shares nothing with
// the running session.
type Snapshot struct {
	Cols, Rows int
	Grid       [][]piece.Kind // [row][col]

	CurrentKind piece.Kind // None when no piece is in play
	Current     []piece.Cell
	GhostRow    int
	Ghost       []piece.Cell

	Next []piece.Kind

	Score, Lines, Level int
	GameOver            bool
}

// Snapshot copies the render state of the current session.
func (g *Game) Snapshot() Snapshot {
	session := g.session.Get()
	b := session.Board

	snap := Snapshot{
		Cols:     b.Cols(),
		Rows:     b.Rows(),
		Grid:     b.Grid(),
		Next:     session.Bag.Peek(g.rules.Preview),
		Score:    b.Score(),
		Lines:    b.Lines(),
		Level:    b.Level(),
		GameOver: session.Status == GameOver,
	}

	if p := session.Current; p != nil {
		snap.CurrentKind = p.Kind
		snap.Current = slices.Collect(p.Cells())
		snap.GhostRow = p.Y
		if !snap.GameOver {
			snap.GhostRow = b.HardDropRow(p)
		}
		snap.Ghost = slices.Collect(p.CellsAt(p.Rotation, p.X, snap.GhostRow))
	}

	return snap
}

// Visible reports whether a cell falls inside the drawn grid.
func (s Snapshot) Visible(c piece.Cell) bool {
	return c.X >= 0 && c.X < s.Cols && c.Y >= 0 && c.Y < s.Rows
}
