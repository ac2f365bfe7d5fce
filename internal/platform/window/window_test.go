package window

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/snake-ultra/internal/core"
	"github.com/vovakirdan/snake-ultra/internal/engine"
	"github.com/vovakirdan/snake-ultra/internal/session"
)

var epoch = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T, clip func(string) error) (*Game, *session.ManualClock) {
	t.Helper()
	clk := session.NewManualClock(epoch)
	g := New(Options{
		Session:   session.Options{Clock: clk, Seed: 3},
		Clipboard: clip,
		Logger:    log.New(io.Discard),
	})
	t.Cleanup(g.Close)
	return g, clk
}

func TestLogicalSize(t *testing.T) {
	w, h := logicalSize(20)
	assert.Equal(t, 424, w)
	assert.Equal(t, 468, h)
}

func TestCellRect(t *testing.T) {
	x, y, w, h := cellRect(engine.Cell{X: 2, Y: 3})
	assert.Equal(t, float32(marginPx+2*cellPx+1), x)
	assert.Equal(t, float32(hudPx+3*cellPx+1), y)
	assert.Equal(t, float32(cellPx-2), w)
	assert.Equal(t, w, h)
}

func TestFoldASCII(t *testing.T) {
	assert.Equal(t, "LIEN COPIE !", foldASCII(session.CopiedText))
	assert.Equal(t, "Commandes Inversees", foldASCII(session.InvertedText))
	assert.Equal(t, "Fleches a droite", foldASCII("Flèches à droite"))
	assert.Equal(t, "SCORE 0012", foldASCII("SCORE 0012"))
}

func TestPressedActionsEdgeTriggered(t *testing.T) {
	prev := keyState{ebiten.KeyArrowUp: true}
	cur := keyState{ebiten.KeyArrowUp: true, ebiten.KeyA: true, ebiten.KeyArrowLeft: true, ebiten.KeyEnter: true}

	got := pressedActions(cur, prev)
	assert.Equal(t, []core.Action{core.ActionLeft, core.ActionConfirm}, got)
	assert.Empty(t, pressedActions(cur, cur))
}

func TestDispatchDrivesSession(t *testing.T) {
	g, clk := newTestGame(t, nil)

	require.NoError(t, g.dispatch(core.ActionInfo))
	assert.Equal(t, engine.StatusInfo, g.Session().Status())
	assert.Equal(t, core.ActionBack, g.clickAction())
	require.NoError(t, g.dispatch(core.ActionBack))
	assert.Equal(t, engine.StatusStart, g.Session().Status())

	assert.Equal(t, core.ActionConfirm, g.clickAction())
	require.NoError(t, g.dispatch(core.ActionConfirm))
	assert.Equal(t, engine.StatusPlaying, g.Session().Status())

	require.NoError(t, g.dispatch(core.ActionRight))
	assert.Equal(t, engine.Right, g.Session().Snapshot().Pending)

	clk.Advance(200 * time.Millisecond)
	require.NoError(t, g.frame(clk.Now()))
	assert.Equal(t, engine.Cell{X: 11, Y: 10}, g.Session().Snapshot().Head())
}

func TestDispatchQuit(t *testing.T) {
	g, _ := newTestGame(t, nil)
	assert.ErrorIs(t, g.dispatch(core.ActionQuit), ebiten.Termination)
	assert.ErrorIs(t, g.dispatch(core.ActionBack), ebiten.Termination)
}

func TestShareFeedback(t *testing.T) {
	var copied string
	g, clk := newTestGame(t, func(s string) error {
		copied = s
		return nil
	})

	g.share()
	assert.Equal(t, session.ShareText(0), copied)
	assert.Equal(t, session.CopiedText, g.feedback)

	clk.Advance(feedbackDuration)
	require.NoError(t, g.frame(clk.Now()))
	assert.Empty(t, g.feedback)
}

func TestShareFallsBackToText(t *testing.T) {
	g, _ := newTestGame(t, func(string) error { return errors.New("no clipboard") })
	g.share()
	assert.Equal(t, session.ShareText(0), g.feedback)
}

func TestLayout(t *testing.T) {
	g, _ := newTestGame(t, nil)
	w, h := g.Layout(1920, 1080)
	ew, eh := logicalSize(engine.DefaultGridSize)
	assert.Equal(t, ew, w)
	assert.Equal(t, eh, h)
}
