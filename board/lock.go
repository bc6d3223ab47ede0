package board

import (
	"errors"
	"fmt"
	"slices"

	"github.com/plus3/tetris/piece"
)

// ErrTopOut is returned by Lock when part of the piece is still above the
// visible grid. It ends the game.
var ErrTopOut = errors.New("piece locked above the grid")

// Lock writes p into the grid and clears any rows it completes, returning the
// number cleared. On ErrTopOut the grid is left untouched.
func (b *Board) Lock(p *piece.Piece) (int, error) {
	for c := range p.Cells() {
		if c.Y < 0 {
			return 0, fmt.Errorf("%w: %s at row %d", ErrTopOut, p.Kind, c.Y)
		}
	}

	if !b.IsValid(p) {
		panic(fmt.Sprintf("board: lock of %s at (%d,%d) overlaps the grid", p.Kind, p.X, p.Y))
	}

	for c := range p.Cells() {
		b.grid[c.Y][c.X] = p.Kind
	}

	return b.ClearLines(), nil
}

// ClearLines removes every full row, inserts as many empty rows at the top
// and scores the clear at the level it happened on.
func (b *Board) ClearLines() int {
	kept := make([][]piece.Kind, 0, len(b.grid))
	for _, row := range b.grid {
		if slices.Contains(row, piece.None) {
			kept = append(kept, row)
		}
	}

	cleared := len(b.grid) - len(kept)
	if cleared == 0 {
		return 0
	}

	fresh := make([][]piece.Kind, cleared, len(b.grid))
	for y := range fresh {
		fresh[y] = make([]piece.Kind, b.rules.Cols)
	}
	b.grid = append(fresh, kept...)

	b.lines += cleared
	b.score += b.rules.ClearScore(cleared, b.level)
	b.level = b.rules.LevelFor(b.lines)

	return cleared
}
