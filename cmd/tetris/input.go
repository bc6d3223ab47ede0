package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tetris/game"
)

// Auto-repeat timing for held left/right, in seconds.
const (
	repeatDelay = 0.2
	repeatRate  = 0.05
)

var pressKeys = []struct {
	key ebiten.Key
	cmd game.Command
}{
	{ebiten.KeyUp, game.RotateCW},
	{ebiten.KeyX, game.RotateCW},
	{ebiten.KeyZ, game.RotateCCW},
	{ebiten.KeySpace, game.HardDrop},
	{ebiten.KeyC, game.Restart},
	{ebiten.KeyR, game.Restart},
	{ebiten.KeyEscape, game.Quit},
	{ebiten.KeyQ, game.Quit},
}

type repeater struct {
	key  ebiten.Key
	cmd  game.Command
	held float64
}

// fire reports whether the command triggers this frame: once on press, then
// every repeatRate after repeatDelay.
func (r *repeater) fire(dt float64) bool {
	if inpututil.IsKeyJustPressed(r.key) {
		r.held = 0
		return true
	}

	if !ebiten.IsKeyPressed(r.key) {
		r.held = 0
		return false
	}

	r.held += dt
	if r.held > repeatDelay {
		r.held -= repeatRate
		return true
	}
	return false
}

type input struct {
	shift []*repeater
	cmds  []game.Command
}

func newInput() *input {
	return &input{
		shift: []*repeater{
			{key: ebiten.KeyLeft, cmd: game.MoveLeft},
			{key: ebiten.KeyRight, cmd: game.MoveRight},
		},
	}
}

// poll returns the commands issued this frame. Soft drop repeats every frame
// while Down is held.
func (in *input) poll(dt float64) []game.Command {
	in.cmds = in.cmds[:0]

	for _, r := range in.shift {
		if r.fire(dt) {
			in.cmds = append(in.cmds, r.cmd)
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.cmds = append(in.cmds, game.SoftDrop)
	}

	for _, k := range pressKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			in.cmds = append(in.cmds, k.cmd)
		}
	}

	return in.cmds
}
