package board_test

import (
	"fmt"
	"testing"

	"github.com/plus3/tetris/board"
	"github.com/plus3/tetris/piece"
	"github.com/plus3/tetris/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockHardDroppedI(t *testing.T) {
	b := board.New(rules.Default())
	p := piece.Spawn(piece.I, b.Cols(), 2)
	p.Y = b.HardDropRow(p)

	cleared, err := b.Lock(p)
	require.NoError(t, err)
	assert.Equal(t, 0, cleared)

	for x := range b.Cols() {
		want := piece.None
		if x >= 3 && x <= 6 {
			want = piece.I
		}
		assert.Equal(t, want, b.At(x, 19), "column %d", x)
	}
	assert.Equal(t, 4, countOccupied(b))
	assert.Equal(t, 0, b.Score(), "drop bonuses belong to the caller")
}

func TestLockCompletesRow(t *testing.T) {
	b := board.New(rules.Default())
	fillRow(b, 19, piece.Z, 9)
	b.Set(0, 18, piece.S)

	p := piece.New(piece.I)
	p.Rotation = 1 // vertical in matrix column 2
	p.X, p.Y = 7, 16

	cleared, err := b.Lock(p)
	require.NoError(t, err)
	assert.Equal(t, 1, cleared)
	assert.Equal(t, 1, b.Lines())
	assert.Equal(t, 100, b.Score())
	assert.Equal(t, 1, b.Level())

	assert.Equal(t, piece.S, b.At(0, 19), "rows above shift down")
	for y := 17; y <= 19; y++ {
		assert.Equal(t, piece.I, b.At(9, y))
	}
	assert.Equal(t, piece.None, b.At(9, 16))
	assert.Equal(t, 4, countOccupied(b))
}

func TestLockTopOut(t *testing.T) {
	b := board.New(rules.Default())
	b.Set(2, 19, piece.L)
	before := b.Grid()

	p := piece.Spawn(piece.T, b.Cols(), 2) // first row sits at y=-2

	cleared, err := b.Lock(p)
	require.ErrorIs(t, err, board.ErrTopOut)
	assert.Equal(t, 0, cleared)
	assert.Equal(t, before, b.Grid(), "top out writes nothing")

	t.Run("partially visible", func(t *testing.T) {
		p := piece.New(piece.I)
		p.Rotation = 1
		p.X, p.Y = 0, -1 // rows -1 to 2

		_, err := b.Lock(p)
		require.ErrorIs(t, err, board.ErrTopOut)
		assert.Equal(t, before, b.Grid())
	})
}

func TestLockOverlapPanics(t *testing.T) {
	b := board.New(rules.Default())
	b.Set(4, 19, piece.J)

	p := piece.New(piece.O)
	p.X, p.Y = 4, 18

	assert.Panics(t, func() { _, _ = b.Lock(p) })
}

func TestClearLinesCompaction(t *testing.T) {
	r := rules.Default()
	r.Cols, r.Rows = 4, 6
	b := board.New(r)

	// rows 1 and 3 are full; the rest carry a marker in column 0
	markers := []piece.Kind{piece.I, piece.None, piece.J, piece.None, piece.L, piece.O}
	for y, k := range markers {
		if k == piece.None {
			fillRow(b, y, piece.T)
			continue
		}
		b.Set(0, y, k)
	}

	cleared := b.ClearLines()
	require.Equal(t, 2, cleared)

	grid := b.Grid()
	require.Len(t, grid, 6)
	for y := range 2 {
		assert.Equal(t, []piece.Kind{piece.None, piece.None, piece.None, piece.None}, grid[y])
	}
	assert.Equal(t, []piece.Kind{piece.I, piece.J, piece.L, piece.O},
		[]piece.Kind{grid[2][0], grid[3][0], grid[4][0], grid[5][0]})

	assert.Equal(t, 0, b.ClearLines(), "nothing left to clear")
	assert.Equal(t, 2, b.Lines())
	assert.Equal(t, 300, b.Score())
}

func TestClearLinesScoring(t *testing.T) {
	tests := []struct {
		rows  int
		score int
	}{
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d rows", tt.rows), func(t *testing.T) {
			b := board.New(rules.Default())
			for y := 20 - tt.rows; y < 20; y++ {
				fillRow(b, y, piece.O)
			}
			assert.Equal(t, tt.rows, b.ClearLines())
			assert.Equal(t, tt.score, b.Score())
			assert.Equal(t, tt.rows, b.Lines())
		})
	}
}

func TestClearLinesLevels(t *testing.T) {
	b := board.New(rules.Default())

	// Reach 8 lines at level 1 with two tetrises.
	for range 2 {
		for y := 16; y < 20; y++ {
			fillRow(b, y, piece.I)
		}
		require.Equal(t, 4, b.ClearLines())
		assert.Equal(t, 1, b.Level())
	}
	require.Equal(t, 1600, b.Score())

	// The third crosses into level 2; it still scores at level 1.
	for y := 16; y < 20; y++ {
		fillRow(b, y, piece.I)
	}
	require.Equal(t, 4, b.ClearLines())
	assert.Equal(t, 12, b.Lines())
	assert.Equal(t, 2, b.Level())
	assert.Equal(t, 2400, b.Score())

	// A tetris at level 2 awards 800 x 2.
	for y := 16; y < 20; y++ {
		fillRow(b, y, piece.I)
	}
	require.Equal(t, 4, b.ClearLines())
	assert.Equal(t, 4000, b.Score())
	assert.Equal(t, 16, b.Lines())
	assert.Equal(t, 1+16/10, b.Level())
}

func TestAddScore(t *testing.T) {
	b := board.New(rules.Default())
	b.AddScore(2)
	b.AddScore(-5)
	b.AddScore(0)
	assert.Equal(t, 2, b.Score())
}

func ExampleBoard_Lock() {
	b := board.New(rules.Default())
	for x := range 6 {
		b.Set(x, 19, piece.Z)
	}

	p := piece.New(piece.I)
	p.X = 6
	p.Y = b.HardDropRow(p)

	cleared, err := b.Lock(p)
	fmt.Println(cleared, err, b.Score(), b.Lines())
	// Output: 1 <nil> 100 1
}
