package engine

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySnake    = errors.New("engine: snake is empty")
	ErrOutOfBounds   = errors.New("engine: snake cell out of bounds")
	ErrSelfOverlap   = errors.New("engine: snake overlaps itself")
	ErrTrailMismatch = errors.New("engine: colour trail length differs from snake")
)

// Validate checks the structural invariants that hold for every state
// reachable while playing or exploding: a non-empty snake inside the board,
// no repeated cells, and one colour per segment.
func Validate(s State, gridSize int) error {
	if len(s.Snake) == 0 {
		return ErrEmptySnake
	}
	if len(s.Colors) != len(s.Snake) {
		return fmt.Errorf("%w: %d colours for %d cells", ErrTrailMismatch, len(s.Colors), len(s.Snake))
	}
	for i, c := range s.Snake {
		if !c.In(gridSize) {
			return fmt.Errorf("%w: segment %d at %v", ErrOutOfBounds, i, c)
		}
	}
	occupied := occupancy(s.Snake, gridSize)
	if occupied.Len() != len(s.Snake) {
		return fmt.Errorf("%w: %d distinct cells for %d segments", ErrSelfOverlap, occupied.Len(), len(s.Snake))
	}
	return nil
}
