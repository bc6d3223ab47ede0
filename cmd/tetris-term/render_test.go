package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/piece"
	"github.com/plus3/tetris/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(60, 30)
	t.Cleanup(s.Fini)
	return s
}

func line(s tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := range width {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestCommandFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		cmd  game.Command
		okay bool
	}{
		{tcell.KeyLeft, 0, game.MoveLeft, true},
		{tcell.KeyRight, 0, game.MoveRight, true},
		{tcell.KeyUp, 0, game.RotateCW, true},
		{tcell.KeyDown, 0, game.SoftDrop, true},
		{tcell.KeyEscape, 0, game.Quit, true},
		{tcell.KeyRune, ' ', game.HardDrop, true},
		{tcell.KeyRune, 'z', game.RotateCCW, true},
		{tcell.KeyRune, 'Z', game.RotateCCW, true},
		{tcell.KeyRune, 'c', game.Restart, true},
		{tcell.KeyRune, 'q', game.Quit, true},
		{tcell.KeyRune, '?', 0, false},
		{tcell.KeyTab, 0, 0, false},
	}

	for _, tt := range tests {
		cmd, ok := commandFor(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone))
		assert.Equal(t, tt.okay, ok, "key %v %q", tt.key, tt.r)
		assert.Equal(t, tt.cmd, cmd, "key %v %q", tt.key, tt.r)
	}
}

func TestRender(t *testing.T) {
	g, err := game.New(rules.Default(), game.WithSeed(3))
	require.NoError(t, err)
	g.HardDrop()

	s := newScreen(t)
	render(s, g.Snapshot())
	s.Show()

	assert.Contains(t, line(s, originY, 60), "Score 2")
	assert.Contains(t, line(s, originY+1, 60), "Lines 0")
	assert.Contains(t, line(s, originY+2, 60), "Level 1")
	assert.Contains(t, line(s, originY+4, 60), "Next")

	bottom := line(s, originY+20, 60)
	assert.True(t, strings.HasPrefix(bottom, "└"+strings.Repeat("─", 20)+"┘"), bottom)

	// The first piece rests on the bottom row in the spawn columns.
	_, _, style, _ := s.GetContent(originX+5*cellW, originY+19)
	_, bg, _ := style.Decompose()
	assert.NotEqual(t, tcell.ColorDefault, bg)
}

func TestRenderGameOver(t *testing.T) {
	g, err := game.New(rules.Default(), game.WithSeed(3))
	require.NoError(t, err)
	for !g.Over() {
		g.HardDrop()
	}

	s := newScreen(t)
	snap := g.Snapshot()
	require.True(t, snap.GameOver)
	render(s, snap)

	assert.Contains(t, line(s, originY+10, 60), "GAME OVER")
	assert.Contains(t, line(s, originY+11, 60), "restart")
	assert.NotEqual(t, piece.None, snap.CurrentKind)
}
