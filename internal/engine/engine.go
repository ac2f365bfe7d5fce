// Package engine implements the snake simulation: the per-tick transition,
// the pending-direction slot, the trail colour policy and speed scaling.
package engine

import (
	"math/rand"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/snake-ultra/internal/core"
)

const (
	DefaultGridSize = 20
	StartLength     = 3
	MinGridSize     = 5
)

// Config fixes the board for the lifetime of an Engine.
type Config struct {
	GridSize int
	// AvoidSnake makes food spawn only on free cells. When false food is
	// placed uniformly at random and may land on the body.
	AvoidSnake bool
}

// DefaultEngineConfig returns a 20×20 board with permissive food placement.
func DefaultEngineConfig() Config {
	return Config{GridSize: DefaultGridSize}
}

// Engine advances game states. It owns the random source used for food
// placement and trail colours and is not safe for concurrent use.
type Engine struct {
	cfg Config
	rng *rand.Rand
}

// New creates an engine. A zero seed derives one from the clock.
func New(cfg Config, seed int64) *Engine {
	if cfg.GridSize < MinGridSize {
		cfg.GridSize = DefaultGridSize
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// GridSize returns the board edge length.
func (e *Engine) GridSize() int {
	return e.cfg.GridSize
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// NewState returns the canonical initial state: a vertical three-cell snake
// in the middle of the board heading up, white trail, fresh food, score 0,
// status Start.
func (e *Engine) NewState() State {
	n := e.cfg.GridSize
	cx, cy := n/2, n/2
	snake := make([]Cell, StartLength)
	colors := make([]core.Color, StartLength)
	for i := range snake {
		snake[i] = Cell{X: cx, Y: cy + i}
		colors[i] = InitialColor
	}
	return State{
		Snake:     snake,
		Food:      e.spawnFood(snake),
		Direction: Up,
		Status:    StatusStart,
		Colors:    colors,
	}
}

// Tick advances s by one step using pending as the heading. Any status other
// than Playing returns s unchanged. The input state is never modified.
func (e *Engine) Tick(s State, pending Direction) State {
	if s.Status != StatusPlaying || len(s.Snake) == 0 {
		return s
	}
	if !pending.Valid() {
		pending = s.Direction
	}

	head := s.Head().Add(pending)
	if !head.In(e.cfg.GridSize) || occupies(s.Snake, head) {
		out := s
		out.Status = StatusGameOver
		return out
	}

	next := State{
		Food:      s.Food,
		Direction: pending,
		Score:     s.Score,
		Status:    StatusPlaying,
		Pucci:     s.Pucci,
	}

	if head == s.Food {
		next.Score++
		next.Snake = make([]Cell, 0, len(s.Snake)+1)
		next.Snake = append(next.Snake, head)
		next.Snake = append(next.Snake, s.Snake...)
		next.Colors = make([]core.Color, 0, len(s.Colors)+1)
		next.Colors = append(next.Colors, trailColor(next.Score, e.rng))
		next.Colors = append(next.Colors, s.Colors...)
		next.Food = e.spawnFood(next.Snake)
		switch next.Score {
		case 10:
			next.Status = StatusExploding10
		case 20:
			next.Status = StatusExploding20
		}
		return next
	}

	next.Snake = make([]Cell, len(s.Snake))
	next.Snake[0] = head
	copy(next.Snake[1:], s.Snake[:len(s.Snake)-1])
	next.Colors = append([]core.Color(nil), s.Colors...)
	return next
}

// Resume ends a milestone pause. Leaving Exploding10 repaints the whole
// trail in grayscale by segment index and clears Pucci; leaving Exploding20
// enables Pucci for the rest of the run. Other statuses are returned as is.
func (e *Engine) Resume(s State) State {
	switch s.Status {
	case StatusExploding10:
		out := s.Clone()
		out.Status = StatusPlaying
		out.Colors = GrayscaleTrail(len(out.Snake))
		out.Pucci = false
		return out
	case StatusExploding20:
		out := s.Clone()
		out.Status = StatusPlaying
		out.Pucci = true
		return out
	}
	return s
}

// spawnFood picks a cell uniformly at random. With AvoidSnake it draws from
// the free cells instead, falling back to any cell when the board is full.
func (e *Engine) spawnFood(snake []Cell) Cell {
	n := e.cfg.GridSize
	if !e.cfg.AvoidSnake {
		return Cell{X: e.rng.Intn(n), Y: e.rng.Intn(n)}
	}

	occupied := occupancy(snake, n)
	free := make([]int, 0, n*n-occupied.Len())
	for idx := 0; idx < n*n; idx++ {
		if !occupied.Has(idx) {
			free = append(free, idx)
		}
	}
	if len(free) == 0 {
		return Cell{X: e.rng.Intn(n), Y: e.rng.Intn(n)}
	}
	idx := free[e.rng.Intn(len(free))]
	return Cell{X: idx % n, Y: idx / n}
}

// occupancy indexes snake cells by y*n+x, counting repeats.
func occupancy(snake []Cell, n int) *intmap.Map[int, int] {
	m := intmap.New[int, int](len(snake))
	for _, c := range snake {
		key := c.Y*n + c.X
		count, _ := m.Get(key)
		m.Put(key, count+1)
	}
	return m
}

func occupies(snake []Cell, c Cell) bool {
	for _, s := range snake {
		if s == c {
			return true
		}
	}
	return false
}
