package game

import (
	"github.com/plus3/ooftn/ecs"
	"github.com/plus3/tetris/rules"
)

// PaceSystem derives the gravity interval from the current level.
type PaceSystem struct {
	Rules   ecs.Singleton[rules.Rules]
	Session ecs.Singleton[Session]
	Clock   ecs.Singleton[Clock]
}

func (s *PaceSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if session.Status == GameOver {
		return
	}

	s.Clock.Get().Interval = s.Rules.Get().DropInterval(session.Board.Level())
}

// GravitySystem steps the current piece down once per elapsed interval. A
// piece that cannot fall accumulates lock time instead.
type GravitySystem struct {
	Rules   ecs.Singleton[rules.Rules]
	Session ecs.Singleton[Session]
	Clock   ecs.Singleton[Clock]
}

func (s *GravitySystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if !session.playing() {
		return
	}

	clock := s.Clock.Get()
	lockDelay := s.Rules.Get().LockDelay

	clock.Fall += frame.DeltaTime
	for clock.Fall >= clock.Interval {
		clock.Fall -= clock.Interval

		if session.Board.TryMove(session.Current, 0, 1, 0) {
			clock.Lock = 0
			continue
		}

		clock.Lock += clock.Interval
		if clock.Lock >= lockDelay {
			clock.Locking = true
			return
		}
	}
}

// LockSystem commits a piece whose lock delay ran out.
type LockSystem struct {
	Session ecs.Singleton[Session]
	Clock   ecs.Singleton[Clock]
}

func (s *LockSystem) Execute(frame *ecs.UpdateFrame) {
	clock := s.Clock.Get()
	session := s.Session.Get()
	if !clock.Locking || !session.playing() {
		return
	}

	session.commit(clock, frame.Commands.Spawn)
}

// SpawnSystem deals the next piece after a lock.
type SpawnSystem struct {
	Rules   ecs.Singleton[rules.Rules]
	Session ecs.Singleton[Session]
	Clock   ecs.Singleton[Clock]
}

func (s *SpawnSystem) Execute(frame *ecs.UpdateFrame) {
	clock := s.Clock.Get()
	session := s.Session.Get()
	if !clock.Spawning || session.Status == GameOver {
		return
	}

	session.spawn(*s.Rules.Get(), clock, frame.Commands.Spawn)
}
