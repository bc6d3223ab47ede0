package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/game"
)

var runeKeys = map[rune]game.Command{
	' ': game.HardDrop,
	'x': game.RotateCW,
	'z': game.RotateCCW,
	'c': game.Restart,
	'r': game.Restart,
	'q': game.Quit,
	'h': game.MoveLeft,
	'l': game.MoveRight,
	'j': game.SoftDrop,
	'k': game.RotateCW,
}

// commandFor maps a key event to a game command.
func commandFor(ev *tcell.EventKey) (game.Command, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.MoveLeft, true
	case tcell.KeyRight:
		return game.MoveRight, true
	case tcell.KeyUp:
		return game.RotateCW, true
	case tcell.KeyDown:
		return game.SoftDrop, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit, true
	case tcell.KeyRune:
		cmd, ok := runeKeys[unicode.ToLower(ev.Rune())]
		return cmd, ok
	}
	return 0, false
}
