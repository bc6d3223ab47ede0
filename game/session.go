package game

import (
	"github.com/plus3/tetris/board"
	"github.com/plus3/tetris/piece"
	"github.com/plus3/tetris/rules"
)

// spawner creates an entity, either right away through the storage or
// deferred through frame commands.
type spawner func(components ...any)

func newSession(r rules.Rules, bag *piece.Bag) Session {
	return Session{
		Board:  board.New(r),
		Bag:    bag,
		Status: Falling,
	}
}

func (s *Session) emit(spawn spawner, e Event) {
	s.seq++
	e.Seq = s.seq
	e.Score = s.Board.Score()
	spawn(e)
}

// commit locks the current piece. It reports false when the lock topped out
// and ended the game.
func (s *Session) commit(clock *Clock, spawn spawner) bool {
	p := s.Current
	cleared, err := s.Board.Lock(p)
	if err != nil {
		s.Status = GameOver
		s.emit(spawn, Event{Type: EventTopOut, Kind: p.Kind})
		return false
	}

	s.emit(spawn, Event{Type: EventLocked, Kind: p.Kind, Lines: cleared})
	if cleared > 0 {
		s.emit(spawn, Event{Type: EventCleared, Kind: p.Kind, Lines: cleared})
	}

	s.Current = nil
	clock.reset()
	clock.Spawning = true
	return true
}

// spawn deals the next piece. A piece that does not fit where it spawns ends
// the game without locking anything.
func (s *Session) spawn(r rules.Rules, clock *Clock, spawn spawner) bool {
	clock.Spawning = false

	p := piece.Spawn(s.Bag.Next(), r.Cols, r.HiddenRows)
	s.Current = p
	if !s.Board.IsValid(p) {
		s.Status = GameOver
		s.emit(spawn, Event{Type: EventSpawnBlocked, Kind: p.Kind})
		return false
	}

	return true
}

func (s *Session) playing() bool {
	return s.Status == Falling && s.Current != nil
}
