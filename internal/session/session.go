// Package session runs one game: it owns the state, drives the engine at
// the score-dependent interval and handles the timed milestone pauses.
package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-ultra/internal/engine"
	"github.com/vovakirdan/snake-ultra/internal/flavor"
)

const (
	DefaultExplosionDuration = 3 * time.Second
	DefaultFlavorTimeout     = 5 * time.Second
)

// Options configures a Session. Zero values pick the defaults.
type Options struct {
	Engine            engine.Config
	Speed             engine.SpeedConfig
	ExplosionDuration time.Duration
	Flavor            flavor.Source // nil shows the default texts only
	FlavorTimeout     time.Duration
	Clock             Clock
	Seed              int64
	Logger            *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Engine.GridSize == 0 {
		o.Engine.GridSize = engine.DefaultGridSize
	}
	if o.Speed.Base <= 0 {
		o.Speed = engine.DefaultSpeed
	}
	if o.ExplosionDuration <= 0 {
		o.ExplosionDuration = DefaultExplosionDuration
	}
	if o.FlavorTimeout <= 0 {
		o.FlavorTimeout = DefaultFlavorTimeout
	}
	if o.Clock == nil {
		o.Clock = RealClock{}
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// resumeMsg is posted by the pause timer. Messages from an older game are
// recognised by their generation and dropped.
type resumeMsg struct {
	gen uint64
}

// Session is safe for concurrent use. Direction input may arrive from any
// goroutine; Frame is expected to be called from a single periodic driver.
type Session struct {
	opts   Options
	engine *engine.Engine
	input  *engine.Input
	clock  Clock
	logger *log.Logger

	mu         sync.Mutex
	state      engine.State
	lastStep   time.Time
	ticks      uint64
	pauseTimer Timer
	pausedAt   time.Time
	queued     []Event
	mailbox    chan resumeMsg
	gen        atomic.Uint64
	message    atomic.Pointer[string]
	ctx        context.Context
	cancel     context.CancelFunc
	lookups    sync.WaitGroup
	closed     bool
}

// New creates a session showing the start screen.
func New(opts Options) *Session {
	opts = opts.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())
	e := engine.New(opts.Engine, opts.Seed)
	s := &Session{
		opts:    opts,
		engine:  e,
		input:   engine.NewInput(engine.Up),
		clock:   opts.Clock,
		logger:  opts.Logger,
		state:   e.NewState(),
		mailbox: make(chan resumeMsg, 4),
		ctx:     ctx,
		cancel:  cancel,
	}
	return s
}

// Start replaces the state with a fresh game and begins playing. It is
// only accepted from the start screen and after a game over.
func (s *Session) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	if s.state.Status != engine.StatusStart && s.state.Status != engine.StatusGameOver {
		return false
	}

	s.gen.Add(1)
	s.stopPauseLocked()
	state := s.engine.NewState()
	state.Status = engine.StatusPlaying
	s.state = state
	s.input.Reset(state.Direction)
	s.lastStep = s.clock.Now()
	s.message.Store(nil)
	s.queued = append(s.queued, Event{Kind: EventStarted})
	s.logger.Debug("game started", "grid", s.engine.GridSize())
	return true
}

// ToggleInfo switches between the start screen and the guide overlay.
func (s *Session) ToggleInfo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state.Status {
	case engine.StatusStart:
		s.state.Status = engine.StatusInfo
	case engine.StatusInfo:
		s.state.Status = engine.StatusStart
	default:
		return false
	}
	return true
}

// SubmitDirection forwards a direction request to the pending slot. It is
// ignored unless the game is playing.
func (s *Session) SubmitDirection(d engine.Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Submit runs under mu so the guard sees the direction Frame commits.
	if s.state.Status != engine.StatusPlaying {
		return false
	}
	return s.input.Submit(d, s.state.Direction, s.state.Pucci)
}

// Frame is the periodic driver callback. It applies due resumes and runs
// at most one tick when more than the current interval has elapsed since
// the previous one. The returned events describe what changed.
func (s *Session) Frame(now time.Time) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.queued
	s.queued = nil
	events = s.drainLocked(now, events)

	if s.state.Status != engine.StatusPlaying {
		return events
	}
	if now.Sub(s.lastStep) <= s.opts.Speed.Interval(s.state.Score) {
		return events
	}

	s.lastStep = now
	prev := s.state
	next := s.engine.Tick(prev, s.input.Pending())
	s.state = next
	s.ticks++

	switch {
	case next.Status == engine.StatusGameOver:
		events = append(events, Event{Kind: EventGameOver, Score: next.Score})
		s.logger.Debug("game over", "score", next.Score, "ticks", s.ticks)
	case next.Score > prev.Score:
		events = append(events, Event{Kind: EventFoodEaten, Score: next.Score})
		if next.Status.Exploding() {
			events = append(events, s.enterPauseLocked(next))
		}
	}
	return events
}

// drainLocked applies every resume posted by the pause timer.
func (s *Session) drainLocked(now time.Time, events []Event) []Event {
	for {
		select {
		case msg := <-s.mailbox:
			if msg.gen != s.gen.Load() || !s.state.Status.Exploding() {
				continue
			}
			level := s.state.Status.MilestoneLevel()
			s.state = s.engine.Resume(s.state)
			s.pauseTimer = nil
			s.lastStep = now
			events = append(events, Event{Kind: EventResumed, Score: s.state.Score, Level: level})
			s.logger.Debug("milestone resumed", "level", level, "pucci", s.state.Pucci)
		default:
			return events
		}
	}
}

// enterPauseLocked shows the default text, starts the asynchronous lookup
// and schedules the resume.
func (s *Session) enterPauseLocked(state engine.State) Event {
	level := state.Status.MilestoneLevel()
	text := flavor.Default(level)
	s.message.Store(&text)
	s.pausedAt = s.clock.Now()

	gen := s.gen.Load()
	s.stopPauseLocked()
	s.pauseTimer = s.clock.AfterFunc(s.opts.ExplosionDuration, func() {
		select {
		case s.mailbox <- resumeMsg{gen: gen}:
		case <-s.ctx.Done():
		}
	})

	if s.opts.Flavor != nil {
		s.lookups.Add(1)
		go s.lookup(gen, level)
	}

	s.logger.Debug("milestone reached", "level", level, "score", state.Score)
	return Event{Kind: EventMilestone, Score: state.Score, Level: level, Text: text}
}

func (s *Session) lookup(gen uint64, level int) {
	defer s.lookups.Done()

	ctx, cancel := context.WithTimeout(s.ctx, s.opts.FlavorTimeout)
	defer cancel()

	src := flavor.SourceFunc(func(ctx context.Context, level int) (string, error) {
		text, err := s.opts.Flavor.Message(ctx, level)
		if err != nil {
			s.logger.Debug("milestone text unavailable", "level", level, "err", err)
		}
		return text, err
	})
	text := flavor.Lookup(ctx, src, level)
	if s.gen.Load() != gen {
		return
	}
	s.message.Store(&text)
}

func (s *Session) stopPauseLocked() {
	if s.pauseTimer != nil {
		s.pauseTimer.Stop()
		s.pauseTimer = nil
	}
}

// Message returns the milestone text currently displayed.
func (s *Session) Message() string {
	if p := s.message.Load(); p != nil {
		return *p
	}
	return ""
}

// Status returns the current phase.
func (s *Session) Status() engine.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Status
}

// Interval returns the current tick interval.
func (s *Session) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Speed.Interval(s.state.Score)
}

// GridSize returns the board edge length.
func (s *Session) GridSize() int {
	return s.engine.GridSize()
}

// ExplosionDuration returns the configured milestone pause.
func (s *Session) ExplosionDuration() time.Duration {
	return s.opts.ExplosionDuration
}

// ShareText is the message copied by the share action.
func (s *Session) ShareText() string {
	s.mu.Lock()
	score := s.state.Score
	s.mu.Unlock()
	return ShareText(score)
}

// ShareText formats the share message for score.
func ShareText(score int) string {
	return fmt.Sprintf("Mon score: %d sur Snake Ultra ! Essaye de débloquer le mode PUCCI !", score)
}

// Close cancels pending lookups and timers and waits for lookups to return.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.stopPauseLocked()
	s.mu.Unlock()

	s.cancel()
	s.lookups.Wait()
}
