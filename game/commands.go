package game

import (
	"errors"
	"fmt"
)

// ErrUnknownCommand is returned by ParseCommand for names it does not know.
var ErrUnknownCommand = errors.New("unknown command")

// Command is a discrete player input.
type Command uint8

const (
	MoveLeft Command = iota + 1
	MoveRight
	RotateCW
	RotateCCW
	SoftDrop
	HardDrop
	Restart
	Quit
)

var commandNames = [...]string{
	MoveLeft:  "move-left",
	MoveRight: "move-right",
	RotateCW:  "rotate-cw",
	RotateCCW: "rotate-ccw",
	SoftDrop:  "soft-drop",
	HardDrop:  "hard-drop",
	Restart:   "restart",
	Quit:      "quit",
}

// Commands lists every command in declaration order.
var Commands = [...]Command{MoveLeft, MoveRight, RotateCW, RotateCCW, SoftDrop, HardDrop, Restart, Quit}

func (c Command) String() string {
	if c == 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
	return commandNames[c]
}

// ParseCommand maps a name such as "hard-drop" back to its Command.
func ParseCommand(name string) (Command, error) {
	for _, c := range Commands {
		if commandNames[c] == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// Apply dispatches cmd and reports whether it changed the session. Quit is the
// driver's business and always reports false.
func (g *Game) Apply(cmd Command) bool {
	switch cmd {
	case MoveLeft:
		return g.MoveLeft()
	case MoveRight:
		return g.MoveRight()
	case RotateCW:
		return g.RotateCW()
	case RotateCCW:
		return g.RotateCCW()
	case SoftDrop:
		return g.SoftDrop()
	case HardDrop:
		return g.HardDrop()
	case Restart:
		g.Restart()
		return true
	}
	return false
}

// active returns the session and clock while a piece is in play, or nil after
// game over.
func (g *Game) active() (*Session, *Clock) {
	session := g.session.Get()
	if !session.playing() {
		return nil, nil
	}
	return session, g.clock.Get()
}

func (g *Game) MoveLeft() bool  { return g.shift(-1) }
func (g *Game) MoveRight() bool { return g.shift(1) }
func (g *Game) RotateCW() bool  { return g.rotate(1) }
func (g *Game) RotateCCW() bool { return g.rotate(-1) }

func (g *Game) shift(dx int) bool {
	session, clock := g.active()
	if session == nil || !session.Board.TryMove(session.Current, dx, 0, 0) {
		return false
	}
	clock.Lock = 0
	return true
}

func (g *Game) rotate(dr int) bool {
	session, clock := g.active()
	if session == nil || !session.Board.RotateWithKicks(session.Current, dr) {
		return false
	}
	clock.Lock = 0
	return true
}

// SoftDrop moves the piece one row down and awards the soft drop bonus. It is
// meant to be called once per frame while the key is held.
func (g *Game) SoftDrop() bool {
	session, clock := g.active()
	if session == nil || !session.Board.TryMove(session.Current, 0, 1, 0) {
		return false
	}
	session.Board.AddScore(g.rules.SoftDropBonus)
	clock.Lock = 0
	return true
}

// HardDrop drops the piece to its ghost row, locks it at once and deals the
// next one. A top out ends the game without the bonus.
func (g *Game) HardDrop() bool {
	session, clock := g.active()
	if session == nil {
		return false
	}

	p := session.Current
	p.Y = session.Board.HardDropRow(p)
	if !session.commit(clock, g.spawnNow) {
		return true
	}

	session.Board.AddScore(g.rules.HardDropBonus)
	clock.Interval = g.rules.DropInterval(session.Board.Level())
	session.spawn(g.rules, clock, g.spawnNow)
	return true
}
