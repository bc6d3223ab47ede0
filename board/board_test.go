package board_test

import (
	"testing"

	"github.com/plus3/tetris/board"
	"github.com/plus3/tetris/piece"
	"github.com/plus3/tetris/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow occupies every column of row y except the ones listed.
func fillRow(b *board.Board, y int, kind piece.Kind, except ...int) {
	for x := range b.Cols() {
		skip := false
		for _, e := range except {
			if e == x {
				skip = true
			}
		}
		if !skip {
			b.Set(x, y, kind)
		}
	}
}

func countOccupied(b *board.Board) int {
	n := 0
	for _, row := range b.Grid() {
		for _, k := range row {
			if k != piece.None {
				n++
			}
		}
	}
	return n
}

func TestNew(t *testing.T) {
	b := board.New(rules.Default())

	assert.Equal(t, 10, b.Cols())
	assert.Equal(t, 20, b.Rows())
	assert.Equal(t, 0, b.Score())
	assert.Equal(t, 0, b.Lines())
	assert.Equal(t, 1, b.Level())
	assert.Zero(t, countOccupied(b))
}

func TestBounds(t *testing.T) {
	b := board.New(rules.Default())
	b.Set(3, 19, piece.T)

	tests := []struct {
		name     string
		x, y     int
		in       bool
		occupied bool
	}{
		{"top left", 0, 0, true, false},
		{"bottom right", 9, 19, true, false},
		{"locked cell", 3, 19, true, true},
		{"hidden buffer", 3, -1, true, false},
		{"far above", 3, -40, true, false},
		{"left wall", -1, 5, false, false},
		{"right wall", 10, 5, false, false},
		{"floor", 3, 20, false, false},
		{"left of hidden buffer", -1, -1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.in, b.InBounds(tt.x, tt.y))
			assert.Equal(t, tt.occupied, b.IsOccupied(tt.x, tt.y))
		})
	}
}

func TestSetAndGrid(t *testing.T) {
	b := board.New(rules.Default())

	assert.True(t, b.Set(0, 0, piece.L))
	assert.False(t, b.Set(0, -1, piece.L))
	assert.False(t, b.Set(10, 0, piece.L))
	assert.Equal(t, piece.L, b.At(0, 0))
	assert.Equal(t, piece.None, b.At(0, -1))

	grid := b.Grid()
	grid[0][0] = piece.None
	assert.Equal(t, piece.L, b.At(0, 0), "grid is a copy")
}

func TestIsValid(t *testing.T) {
	b := board.New(rules.Default())
	b.Set(4, 10, piece.Z)

	// T in its first state covers (x+1,y) and row y+1 from x to x+2.
	tests := []struct {
		name  string
		x, y  int
		valid bool
	}{
		{"open field", 0, 0, true},
		{"spawn buffer", 3, -2, true},
		{"straddling the top", 3, -1, true},
		{"against left wall", 0, 5, true},
		{"through left wall", -1, 5, false},
		{"against right wall", 7, 5, true},
		{"through right wall", 8, 5, false},
		{"resting on floor", 3, 18, true},
		{"through floor", 3, 19, false},
		{"overlapping a locked cell", 3, 9, false},
		{"beside a locked cell", 5, 9, true},
		{"high in the buffer", 0, -3, true},
		{"out of columns above the grid", -1, -3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := piece.New(piece.T)
			p.X, p.Y = tt.x, tt.y
			assert.Equal(t, tt.valid, b.IsValid(p))
			assert.Equal(t, tt.valid, b.ValidAt(piece.New(piece.T), 0, tt.x, tt.y))
		})
	}
}

func TestTryMove(t *testing.T) {
	b := board.New(rules.Default())

	t.Run("translate", func(t *testing.T) {
		p := piece.Spawn(piece.O, 10, 2)
		require.True(t, b.TryMove(p, -1, 0, 0))
		assert.Equal(t, 3, p.X)
		require.True(t, b.TryMove(p, 0, 1, 0))
		assert.Equal(t, -1, p.Y)
	})

	t.Run("blocked leaves piece untouched", func(t *testing.T) {
		p := piece.New(piece.O)
		p.X, p.Y = 0, 0
		assert.False(t, b.TryMove(p, -1, 0, 0))
		assert.Equal(t, 0, p.X)
		assert.Equal(t, 0, p.Y)
	})

	t.Run("rotate then translate", func(t *testing.T) {
		p := piece.New(piece.I)
		p.X, p.Y = 3, 5
		require.True(t, b.TryMove(p, 1, 0, 1))
		assert.Equal(t, 1, p.Rotation)
		assert.Equal(t, 4, p.X)
	})

	t.Run("rotation without kicks", func(t *testing.T) {
		p := piece.New(piece.I)
		p.X, p.Y = -2, 5
		p.Rotation = 1 // vertical in column 0
		require.True(t, b.IsValid(p))
		assert.False(t, b.TryMove(p, 0, 0, 1), "horizontal state overhangs the wall")
		assert.Equal(t, 1, p.Rotation)
	})
}

func TestRotateWithKicks(t *testing.T) {
	t.Run("in place", func(t *testing.T) {
		b := board.New(rules.Default())
		p := piece.New(piece.T)
		p.X, p.Y = 4, 10

		require.True(t, b.RotateWithKicks(p, 1))
		assert.Equal(t, 1, p.Rotation)
		assert.Equal(t, 4, p.X)
		assert.Equal(t, 10, p.Y)
	})

	t.Run("first kick wins", func(t *testing.T) {
		b := board.New(rules.Default())
		b.Set(5, 12, piece.Z) // blocks the stem of the rotated T in place

		p := piece.New(piece.T)
		p.X, p.Y = 4, 10
		require.False(t, b.ValidAt(p, 1, 4, 10))
		require.True(t, b.ValidAt(p, 1, 5, 10), "a right kick would also fit")

		require.True(t, b.RotateWithKicks(p, 1))
		assert.Equal(t, 1, p.Rotation)
		assert.Equal(t, 3, p.X)
		assert.Equal(t, 10, p.Y)
	})

	t.Run("vertical nudge", func(t *testing.T) {
		b := board.New(rules.Default())
		p := piece.New(piece.I)
		p.X, p.Y = 3, 17 // horizontal on row 18, vertical would reach row 20

		require.True(t, b.RotateWithKicks(p, 1))
		assert.Equal(t, 1, p.Rotation)
		assert.Equal(t, 3, p.X)
		assert.Equal(t, 16, p.Y)
	})

	t.Run("every kick blocked", func(t *testing.T) {
		b := board.New(rules.Default())
		p := piece.New(piece.I)
		p.X, p.Y = 3, 18 // horizontal on the floor row

		assert.False(t, b.RotateWithKicks(p, 1))
		assert.Equal(t, 0, p.Rotation)
		assert.Equal(t, 3, p.X)
		assert.Equal(t, 18, p.Y)
	})

	t.Run("counter-clockwise", func(t *testing.T) {
		b := board.New(rules.Default())
		p := piece.New(piece.J)
		p.X, p.Y = 4, 4

		require.True(t, b.RotateWithKicks(p, -1))
		assert.Equal(t, 3, p.Rotation)
	})
}

func TestHardDropRow(t *testing.T) {
	b := board.New(rules.Default())

	p := piece.Spawn(piece.I, 10, 2)
	assert.Equal(t, 18, b.HardDropRow(p), "the I occupies row y+1")
	assert.Equal(t, -2, p.Y, "probing does not move the piece")

	b.Set(5, 12, piece.S)
	assert.Equal(t, 10, b.HardDropRow(p))

	stuck := piece.New(piece.O)
	stuck.X, stuck.Y = 0, 18
	assert.Equal(t, 18, b.HardDropRow(stuck))
}
