package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/snake-ultra/internal/core"
)

// bindings maps polled keys to actions. Several keys may share an action.
var bindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeySpace, core.ActionConfirm},
	{ebiten.KeyI, core.ActionInfo},
	{ebiten.KeyC, core.ActionShare},
	{ebiten.KeyEscape, core.ActionBack},
	{ebiten.KeyQ, core.ActionQuit},
}

// keyState is the set of keys held during one frame.
type keyState map[ebiten.Key]bool

// pollKeys reads every bound key.
func pollKeys() keyState {
	cur := make(keyState, len(bindings))
	for _, b := range bindings {
		cur[b.key] = ebiten.IsKeyPressed(b.key)
	}
	return cur
}

// pressedActions returns the actions whose key went down this frame, in
// binding order, each at most once.
func pressedActions(cur, prev keyState) []core.Action {
	var out []core.Action
	seen := make(map[core.Action]bool)
	for _, b := range bindings {
		if !cur[b.key] || prev[b.key] || seen[b.action] {
			continue
		}
		seen[b.action] = true
		out = append(out, b.action)
	}
	return out
}
