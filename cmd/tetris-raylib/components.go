package main

import "github.com/plus3/tetris/game"

// Frontend wraps the game driven by this window.
type Frontend struct {
	Game *game.Game
	Quit bool

	pending []game.Command
}

type InputState struct {
	MoveLeftTime  float32
	MoveRightTime float32
	RepeatDelay   float32
	RepeatRate    float32
}
