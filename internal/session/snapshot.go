package session

import (
	"time"

	"github.com/vovakirdan/snake-ultra/internal/engine"
)

// Snapshot is a read-only copy of the session for renderers.
type Snapshot struct {
	engine.State
	Pending  engine.Direction
	Message  string
	Interval time.Duration
	Ticks    uint64
	GridSize int
	// PauseLeft is the remaining milestone pause, zero unless exploding.
	PauseLeft     time.Duration
	PauseDuration time.Duration
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:         s.state.Clone(),
		Pending:       s.input.Pending(),
		Message:       s.Message(),
		Interval:      s.opts.Speed.Interval(s.state.Score),
		Ticks:         s.ticks,
		GridSize:      s.engine.GridSize(),
		PauseDuration: s.opts.ExplosionDuration,
	}
	if s.state.Status.Exploding() {
		elapsed := s.clock.Now().Sub(s.pausedAt)
		snap.PauseLeft = max(s.opts.ExplosionDuration-elapsed, 0)
	}
	return snap
}

// PauseProgress returns how much of the milestone pause has elapsed, in [0, 1].
func (s Snapshot) PauseProgress() float64 {
	if s.PauseDuration <= 0 || !s.Status.Exploding() {
		return 0
	}
	return 1 - float64(s.PauseLeft)/float64(s.PauseDuration)
}

// Length returns the snake length.
func (s Snapshot) Length() int {
	return len(s.Snake)
}
