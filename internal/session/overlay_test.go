package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/snake-ultra/internal/engine"
)

func TestOverlayPerStatus(t *testing.T) {
	snap := Snapshot{}
	snap.Score = 7

	snap.Status = engine.StatusStart
	o, ok := snap.Overlay()
	assert.True(t, ok)
	assert.Equal(t, "SNAKE ULTRA", o.Title)
	assert.Equal(t, "COMMENCER", o.Button)

	snap.Status = engine.StatusGameOver
	o, _ = snap.Overlay()
	assert.Equal(t, "PERDU", o.Title)
	assert.Equal(t, "Score final: 7", o.Subtitle)
	assert.Equal(t, "REREESSAYER", o.Button)

	snap.Status = engine.StatusExploding20
	snap.Message = "vous avez débloquer le niveau PUCCI"
	o, _ = snap.Overlay()
	assert.True(t, o.Exploding)
	assert.Equal(t, snap.Message, o.Title)
	assert.Empty(t, o.Button)

	snap.Status = engine.StatusPlaying
	_, ok = snap.Overlay()
	assert.False(t, ok)
}

func TestScoreText(t *testing.T) {
	snap := Snapshot{}
	snap.Score = 42
	assert.Equal(t, "0042", snap.ScoreText())
}
