package sim

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/snake-ultra/internal/engine"
)

var headings = [...]engine.Direction{engine.Up, engine.Right, engine.Down, engine.Left}

// Choose picks the heading for the next tick: among moves that survive it
// prefers those whose reachable area can hold the snake, then the one
// closest to the food. ok is false when every move is fatal.
func Choose(s engine.State, grid int) (d engine.Direction, ok bool) {
	head := s.Head()
	blocked := intmap.New[int, struct{}](len(s.Snake))
	for _, c := range s.Snake {
		blocked.Put(c.Y*grid+c.X, struct{}{})
	}

	bestRoomy, bestDist := false, 0
	for _, h := range headings {
		if h == s.Direction.Opposite() {
			continue
		}
		next := head.Add(h)
		if !next.In(grid) || blocked.Has(next.Y*grid+next.X) {
			continue
		}
		roomy := reachable(next, grid, blocked, len(s.Snake)) >= len(s.Snake)
		dist := manhattan(next, s.Food)
		if !ok || (roomy && !bestRoomy) || (roomy == bestRoomy && dist < bestDist) {
			d, ok, bestRoomy, bestDist = h, true, roomy, dist
		}
	}
	if !ok {
		return s.Direction, false
	}
	return d, true
}

// Request converts a wanted heading to the key press that produces it,
// accounting for inverted controls.
func Request(want engine.Direction, pucci bool) engine.Direction {
	if pucci {
		return want.Opposite()
	}
	return want
}

// reachable counts free cells connected to start, stopping at limit.
func reachable(start engine.Cell, grid int, blocked *intmap.Map[int, struct{}], limit int) int {
	seen := intmap.New[int, struct{}](limit)
	queue := []engine.Cell{start}
	seen.Put(start.Y*grid+start.X, struct{}{})
	for len(queue) > 0 && seen.Len() < limit {
		c := queue[0]
		queue = queue[1:]
		for _, h := range headings {
			n := c.Add(h)
			key := n.Y*grid + n.X
			if !n.In(grid) || blocked.Has(key) || seen.Has(key) {
				continue
			}
			seen.Put(key, struct{}{})
			queue = append(queue, n)
		}
	}
	return seen.Len()
}

func manhattan(a, b engine.Cell) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
