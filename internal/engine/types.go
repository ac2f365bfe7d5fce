package engine

import (
	"fmt"

	"github.com/vovakirdan/snake-ultra/internal/core"
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns c moved by the unit vector of d.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// In reports whether c lies on an n×n grid.
func (c Cell) In(n int) bool {
	return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is the snake's heading. The zero value is Up.
type Direction int32

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the unit vector of d. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse heading. It is an involution.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}
	return fmt.Sprintf("Direction(%d)", int32(d))
}

// Status is the game phase.
type Status int

const (
	StatusStart Status = iota
	StatusPlaying
	StatusExploding10
	StatusExploding20
	StatusGameOver
	// StatusInfo is the guide overlay. Tick ignores it like any other
	// non-playing status.
	StatusInfo
)

func (s Status) String() string {
	switch s {
	case StatusStart:
		return "START"
	case StatusPlaying:
		return "PLAYING"
	case StatusExploding10:
		return "EXPLODING_10"
	case StatusExploding20:
		return "EXPLODING_20"
	case StatusGameOver:
		return "GAME_OVER"
	case StatusInfo:
		return "INFO"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Exploding reports whether s is one of the milestone pauses.
func (s Status) Exploding() bool {
	return s == StatusExploding10 || s == StatusExploding20
}

// MilestoneLevel returns 10 or 20 for the exploding statuses, 0 otherwise.
func (s Status) MilestoneLevel() int {
	switch s {
	case StatusExploding10:
		return 10
	case StatusExploding20:
		return 20
	}
	return 0
}

// State is one frame of the game. Values are treated as immutable:
// Tick returns fresh slices and never writes into its argument.
type State struct {
	Snake     []Cell // head first
	Food      Cell
	Direction Direction // committed heading, used by the reversal guard
	Score     int
	Status    Status
	Colors    []core.Color // head-aligned with Snake
	Pucci     bool
}

// Head returns the first snake cell.
func (s State) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.Snake = append([]Cell(nil), s.Snake...)
	out.Colors = append([]core.Color(nil), s.Colors...)
	return out
}
