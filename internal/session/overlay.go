package session

import (
	"fmt"

	"github.com/vovakirdan/snake-ultra/internal/engine"
)

const (
	CopiedText   = "LIEN COPIÉ !"
	InvertedText = "⚠️ Commandes Inversées ⚠️"
)

// Overlay is the panel drawn over the board outside regular play.
type Overlay struct {
	Title     string
	Subtitle  string
	Button    string // empty while exploding
	Exploding bool
}

// Overlay returns the panel for the current status, if any.
func (s Snapshot) Overlay() (Overlay, bool) {
	switch s.Status {
	case engine.StatusStart:
		return Overlay{
			Title:    "SNAKE ULTRA",
			Subtitle: "Atteins le score 10 pour KICHTA et 20 pour PUCCI.",
			Button:   "COMMENCER",
		}, true
	case engine.StatusInfo:
		return Overlay{
			Title:    "GUIDE",
			Subtitle: "Flèches pour diriger. Mange pour grandir. À 10 tout passe en gris, à 20 les commandes s'inversent pour de bon.",
			Button:   "RETOUR",
		}, true
	case engine.StatusGameOver:
		return Overlay{
			Title:    "PERDU",
			Subtitle: fmt.Sprintf("Score final: %d", s.Score),
			Button:   "REREESSAYER",
		}, true
	case engine.StatusExploding10, engine.StatusExploding20:
		return Overlay{Title: s.Message, Exploding: true}, true
	}
	return Overlay{}, false
}

// ScoreText is the zero-padded HUD score.
func (s Snapshot) ScoreText() string {
	return fmt.Sprintf("%04d", s.Score)
}
