package game

import (
	"github.com/plus3/tetris/board"
	"github.com/plus3/tetris/piece"
)

// Status is the state of the game lifecycle.
type Status uint8

const (
	Falling Status = iota
	GameOver
)

func (s Status) String() string {
	if s == GameOver {
		return "game-over"
	}
	return "falling"
}

// Session is the mutable state of one game, stored as a singleton. A restart
// replaces it wholesale.
type Session struct {
	Board   *board.Board
	Current *piece.Piece
	Bag     *piece.Bag
	Status  Status

	seq uint64
}

// Clock holds the gravity and lock-delay accumulators, in seconds.
type Clock struct {
	Interval float64 // seconds per gravity row at the current level
	Fall     float64
	Lock     float64

	Locking  bool // the piece rested for the whole lock delay
	Spawning bool // the next piece is due
}

func (c *Clock) reset() {
	c.Fall = 0
	c.Lock = 0
	c.Locking = false
}

// EventType classifies an Event.
type EventType uint8

const (
	EventLocked EventType = iota + 1
	EventCleared
	EventTopOut
	EventSpawnBlocked
)

func (t EventType) String() string {
	switch t {
	case EventLocked:
		return "locked"
	case EventCleared:
		return "cleared"
	case EventTopOut:
		return "top-out"
	case EventSpawnBlocked:
		return "spawn-blocked"
	}
	return "unknown"
}

// Event records something that happened to the session. Events live as
// entities until drained with Game.Events.
type Event struct {
	Type  EventType
	Kind  piece.Kind
	Lines int // rows cleared by the lock
	Score int // score after the event
	Seq   uint64
}
