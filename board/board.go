// Package board owns the playfield: occupancy, placement legality, locking,
// line clearing and the score, line and level counters that clearing drives.
package board

import (
	"slices"

	"github.com/plus3/tetris/piece"
	"github.com/plus3/tetris/rules"
)

// Kicks are the offsets tried, in order, when a rotation is blocked in place.
var Kicks = [...]piece.Cell{
	{X: 0, Y: 0},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: -2, Y: 0},
	{X: 2, Y: 0},
	{X: 0, Y: -1},
}

// Board is a Rows x Cols grid of locked kinds. Row 0 is the top visible row;
// negative rows form the hidden spawn buffer and are never stored.
type Board struct {
	rules rules.Rules
	grid  [][]piece.Kind

	score int
	lines int
	level int
}

// New returns an empty board sized by r.
func New(r rules.Rules) *Board {
	b := &Board{
		rules: r,
		grid:  make([][]piece.Kind, r.Rows),
		level: 1,
	}
	for y := range b.grid {
		b.grid[y] = make([]piece.Kind, r.Cols)
	}
	return b
}

func (b *Board) Cols() int  { return b.rules.Cols }
func (b *Board) Rows() int  { return b.rules.Rows }
func (b *Board) Score() int { return b.score }
func (b *Board) Lines() int { return b.lines }
func (b *Board) Level() int { return b.level }

// AddScore adds drop bonuses. Non-positive amounts are ignored so the score
// never decreases.
func (b *Board) AddScore(n int) {
	if n > 0 {
		b.score += n
	}
}

// At returns the kind locked at (x, y), or None for empty and off-grid cells.
func (b *Board) At(x, y int) piece.Kind {
	if y < 0 || !b.InBounds(x, y) {
		return piece.None
	}
	return b.grid[y][x]
}

// Set writes kind at (x, y). It reports false for cells outside the visible
// grid. Used to build fixtures; gameplay writes only through Lock.
func (b *Board) Set(x, y int, kind piece.Kind) bool {
	if y < 0 || !b.InBounds(x, y) {
		return false
	}
	b.grid[y][x] = kind
	return true
}

// Grid returns a copy of the cells, indexed [row][col].
func (b *Board) Grid() [][]piece.Kind {
	out := make([][]piece.Kind, len(b.grid))
	for y, row := range b.grid {
		out[y] = slices.Clone(row)
	}
	return out
}

// InBounds reports whether x is a column and y is above the floor. Rows above
// the grid count as in bounds.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.rules.Cols && y < b.rules.Rows
}

// IsOccupied reports whether a locked cell sits at (x, y). The hidden buffer
// and out-of-bounds cells are never occupied.
func (b *Board) IsOccupied(x, y int) bool {
	if y < 0 || !b.InBounds(x, y) {
		return false
	}
	return b.grid[y][x] != piece.None
}

// IsValid reports whether p fits at its current rotation and position.
func (b *Board) IsValid(p *piece.Piece) bool {
	return b.ValidAt(p, p.Rotation, p.X, p.Y)
}

// ValidAt reports whether p would fit in rotation rot with its matrix at
// (x, y).
func (b *Board) ValidAt(p *piece.Piece, rot, x, y int) bool {
	for c := range p.CellsAt(rot, x, y) {
		if !b.InBounds(c.X, c.Y) || b.IsOccupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// TryMove rotates p by dr and then translates it by (dx, dy), committing only
// when the result is valid.
func (b *Board) TryMove(p *piece.Piece, dx, dy, dr int) bool {
	rot := p.Rotation
	if dr != 0 {
		rot = p.RotationAfter(dr)
	}

	x, y := p.X+dx, p.Y+dy
	if !b.ValidAt(p, rot, x, y) {
		return false
	}

	p.Rotation, p.X, p.Y = rot, x, y
	return true
}

// RotateWithKicks rotates p by dr at the first valid offset from Kicks. The
// piece is unchanged when every offset is blocked.
func (b *Board) RotateWithKicks(p *piece.Piece, dr int) bool {
	rot := p.RotationAfter(dr)
	for _, k := range Kicks {
		x, y := p.X+k.X, p.Y+k.Y
		if b.ValidAt(p, rot, x, y) {
			p.Rotation, p.X, p.Y = rot, x, y
			return true
		}
	}
	return false
}

// HardDropRow returns the lowest row p can reach by falling straight down
// from where it is.
func (b *Board) HardDropRow(p *piece.Piece) int {
	y := p.Y
	for b.ValidAt(p, p.Rotation, p.X, y+1) {
		y++
	}
	return y
}
