package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/snake-ultra/internal/core"
	"github.com/vovakirdan/snake-ultra/internal/engine"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"wasd", runeKey('a'), core.ActionLeft},
		{"vim", runeKey('j'), core.ActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm},
		{"info", runeKey('i'), core.ActionInfo},
		{"share", runeKey('c'), core.ActionShare},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.MapKey(tt.msg))
		})
	}
}

func TestDirectionFor(t *testing.T) {
	d, ok := DirectionFor(core.ActionLeft)
	assert.True(t, ok)
	assert.Equal(t, engine.Left, d)

	d, ok = DirectionFor(core.ActionDown)
	assert.True(t, ok)
	assert.Equal(t, engine.Down, d)

	_, ok = DirectionFor(core.ActionConfirm)
	assert.False(t, ok)
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(runeKey('j')))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionMessages, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey('q')))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey('z')))
}

func TestHelpBindings(t *testing.T) {
	keys := DefaultGameKeyMap()
	assert.NotEmpty(t, keys.ShortHelp())
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	assert.Equal(t, 11, total)
}
