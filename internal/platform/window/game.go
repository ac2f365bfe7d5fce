// Package window is the desktop front end built on Ebiten. It drives the
// same session as the terminal front end and draws it with vector shapes.
package window

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/snake-ultra/internal/audio"
	"github.com/vovakirdan/snake-ultra/internal/core"
	"github.com/vovakirdan/snake-ultra/internal/engine"
	"github.com/vovakirdan/snake-ultra/internal/session"
)

// errQuit ends the Ebiten loop without reporting a failure.
var errQuit = ebiten.Termination

const feedbackDuration = 2 * time.Second

// Options configures the window front end.
type Options struct {
	Session session.Options
	// Audio may be nil.
	Audio *audio.Player
	// Clipboard defaults to the system clipboard.
	Clipboard func(string) error
	Logger    *log.Logger
	Title     string
	// Scale multiplies the window size; the logical size never changes.
	Scale int
}

// Game implements ebiten.Game around a session.
type Game struct {
	opts    Options
	session *session.Session
	logger  *log.Logger
	face    *text.GoXFace
	now     func() time.Time

	prevKeys      keyState
	prevMouse     bool
	feedback      string
	feedbackUntil time.Time
}

// New creates the game on its start screen.
func New(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Session.Logger == nil {
		opts.Session.Logger = opts.Logger
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Title == "" {
		opts.Title = "Snake Ultra"
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	now := time.Now
	if opts.Session.Clock != nil {
		now = opts.Session.Clock.Now
	}

	return &Game{
		opts:     opts,
		session:  session.New(opts.Session),
		logger:   opts.Logger,
		face:     text.NewGoXFace(basicfont.Face7x13),
		now:      now,
		prevKeys: keyState{},
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *session.Session {
	return g.session
}

// Update polls input and advances the session by one frame.
func (g *Game) Update() error {
	cur := pollKeys()
	actions := pressedActions(cur, g.prevKeys)
	g.prevKeys = cur

	mouse := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouse && !g.prevMouse {
		actions = append(actions, g.clickAction())
	}
	g.prevMouse = mouse

	for _, a := range actions {
		if err := g.dispatch(a); err != nil {
			return err
		}
	}
	return g.frame(g.now())
}

// clickAction maps a click to the overlay button for the current screen.
func (g *Game) clickAction() core.Action {
	if g.session.Status() == engine.StatusInfo {
		return core.ActionBack
	}
	return core.ActionConfirm
}

// dispatch applies one action. It returns errQuit to close the window.
func (g *Game) dispatch(a core.Action) error {
	switch a {
	case core.ActionUp:
		g.session.SubmitDirection(engine.Up)
	case core.ActionDown:
		g.session.SubmitDirection(engine.Down)
	case core.ActionLeft:
		g.session.SubmitDirection(engine.Left)
	case core.ActionRight:
		g.session.SubmitDirection(engine.Right)
	case core.ActionConfirm:
		g.session.Start()
	case core.ActionInfo:
		g.session.ToggleInfo()
	case core.ActionShare:
		g.share()
	case core.ActionBack:
		if g.session.Status() == engine.StatusInfo {
			g.session.ToggleInfo()
			return nil
		}
		return errQuit
	case core.ActionQuit:
		return errQuit
	}
	return nil
}

func (g *Game) share() {
	msg := g.session.ShareText()
	g.feedback = session.CopiedText
	if err := g.opts.Clipboard(msg); err != nil {
		g.logger.Warn("clipboard unavailable", "err", err)
		g.feedback = msg
	}
	g.feedbackUntil = g.now().Add(feedbackDuration)
}

func (g *Game) frame(now time.Time) error {
	events := g.session.Frame(now)
	for _, ev := range events {
		g.logger.Debug("session event", "kind", ev.Kind, "score", ev.Score, "level", ev.Level)
	}
	g.opts.Audio.HandleEvents(events)

	if g.feedback != "" && !now.Before(g.feedbackUntil) {
		g.feedback = ""
	}
	return nil
}

// Layout returns the fixed logical size; Ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return logicalSize(g.session.GridSize())
}

// Close releases the session.
func (g *Game) Close() {
	g.session.Close()
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g := New(opts)
	defer g.Close()

	w, h := logicalSize(g.session.GridSize())
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowSize(w*g.opts.Scale, h*g.opts.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	g.logger.Debug("window ready", "width", w, "height", h, "scale", g.opts.Scale)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

