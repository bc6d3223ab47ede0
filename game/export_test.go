package game

import (
	"github.com/plus3/tetris/board"
	"github.com/plus3/tetris/piece"
)

func (g *Game) Board() *board.Board { return g.session.Get().Board }

func (g *Game) Current() *piece.Piece { return g.session.Get().Current }

func (g *Game) Clock() Clock { return *g.clock.Get() }

// SetCurrent replaces the piece in play with a freshly spawned one of kind.
func (g *Game) SetCurrent(kind piece.Kind) *piece.Piece {
	p := piece.Spawn(kind, g.rules.Cols, g.rules.HiddenRows)
	g.session.Get().Current = p
	return p
}
