package audio

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/snake-ultra/internal/config"
	"github.com/vovakirdan/snake-ultra/internal/session"
)

// Player mixes effects into the system speaker. A nil *Player is valid and
// silent, so callers need not check whether audio is enabled.
type Player struct {
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	logger *log.Logger
}

// NewPlayer opens the speaker. It returns nil, nil when audio is disabled.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) (*Player, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if logger == nil {
		logger = log.Default()
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	p := &Player{
		rate:   rate,
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	speaker.Play(p.mixer)
	logger.Debug("audio ready", "rate", cfg.SampleRate, "volume", cfg.Volume)
	return p, nil
}

// Play queues an effect.
func (p *Player) Play(s Sound, score int) {
	if p == nil {
		return
	}
	streamer := Effect(s, score, p.rate)
	if streamer == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(newVolume(streamer, p.volume))
	speaker.Unlock()
}

// HandleEvents plays the effect matching each session event.
func (p *Player) HandleEvents(events []session.Event) {
	if p == nil {
		return
	}
	for _, ev := range events {
		if s, ok := SoundFor(ev); ok {
			p.Play(s, ev.Score)
		}
	}
}

// Close stops playback.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Clear()
}

// SoundFor maps a session event to an effect.
func SoundFor(ev session.Event) (Sound, bool) {
	switch ev.Kind {
	case session.EventFoodEaten:
		return SoundFood, true
	case session.EventMilestone:
		if ev.Level >= 20 {
			return SoundPucci, true
		}
		return SoundMilestone, true
	case session.EventGameOver:
		return SoundGameOver, true
	}
	return 0, false
}

// Effect builds the streamer for s.
func Effect(s Sound, score int, rate beep.SampleRate) beep.Streamer {
	switch s {
	case SoundFood:
		return FoodSound(score, rate)
	case SoundMilestone:
		return MilestoneSound(10, rate)
	case SoundPucci:
		return MilestoneSound(20, rate)
	case SoundGameOver:
		return GameOverSound(rate)
	}
	return nil
}
