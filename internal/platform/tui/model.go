package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-ultra/internal/audio"
	"github.com/vovakirdan/snake-ultra/internal/core"
	"github.com/vovakirdan/snake-ultra/internal/engine"
	"github.com/vovakirdan/snake-ultra/internal/session"
)

// feedbackDuration is how long the share confirmation stays on screen.
const feedbackDuration = 2 * time.Second

// Options configures a game model.
type Options struct {
	Session session.Options
	FPS     int
	// Audio may be nil.
	Audio *audio.Player
	// Clipboard copies the share text. When nil the text itself is shown
	// under the board, which is what SSH players get.
	Clipboard     func(string) error
	Logger        *log.Logger
	Variant       string
	ScreenshotDir string
	// Embedded models leave quitting the program to their parent, which
	// polls Done.
	Embedded bool
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	variantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#737373"))
)

// Model is the Bubble Tea model for one Snake Ultra session.
type Model struct {
	opts     Options
	session  *session.Session
	keys     *KeyMapper
	help     help.Model
	progress progress.Model
	screen   *core.Screen
	logger   *log.Logger

	width, height int
	feedback      string
	feedbackUntil time.Time
	lastFrame     time.Time
	quitting      bool
	back          bool
}

// NewModel creates a model with a fresh session on its start screen.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Session.Logger == nil {
		opts.Session.Logger = opts.Logger
	}
	s := session.New(opts.Session)
	w, h := BoardSize(s.GridSize())

	bar := progress.New(progress.WithGradient("#FACC15", "#FF00FF"), progress.WithoutPercentage())
	bar.Width = w

	return Model{
		opts:     opts,
		session:  s,
		keys:     NewKeyMapper(),
		help:     help.New(),
		progress: bar,
		screen:   core.NewScreen(w, h),
		logger:   opts.Logger,
	}
}

// Session exposes the underlying session.
func (m Model) Session() *session.Session {
	return m.session
}

// Done reports whether the player left the game, by quitting or going back.
func (m Model) Done() bool {
	return m.quitting || m.back
}

// Quitting reports whether the player asked to quit entirely.
func (m Model) Quitting() bool {
	return m.quitting
}

// Close releases the session.
func (m Model) Close() {
	m.session.Close()
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if d, ok := DirectionFor(action); ok {
		m.session.SubmitDirection(d)
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, m.exit()
	case core.ActionConfirm:
		if m.session.Start() {
			m.feedback = ""
		}
	case core.ActionInfo:
		m.session.ToggleInfo()
	case core.ActionShare:
		m.share()
	case core.ActionBack:
		// Back closes the guide first, then leaves the game.
		if m.session.Status() == engine.StatusInfo {
			m.session.ToggleInfo()
			return m, nil
		}
		m.back = true
		return m, m.exit()
	}
	return m, nil
}

func (m Model) exit() tea.Cmd {
	if m.opts.Embedded {
		return nil
	}
	return tea.Quit
}

// share copies the share text and shows the confirmation.
func (m *Model) share() {
	text := m.session.ShareText()
	if m.opts.Clipboard == nil {
		m.setFeedback(text)
		return
	}
	if err := m.opts.Clipboard(text); err != nil {
		m.logger.Warn("clipboard unavailable", "err", err)
		m.setFeedback(text)
		return
	}
	m.setFeedback(session.CopiedText)
}

func (m *Model) setFeedback(text string) {
	now := m.lastFrame
	if now.IsZero() {
		now = time.Now()
	}
	m.feedback = text
	m.feedbackUntil = now.Add(feedbackDuration)
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.Done() {
		return m, nil
	}
	m.lastFrame = now
	events := m.session.Frame(now)
	for _, ev := range events {
		m.logger.Debug("session event", "kind", ev.Kind, "score", ev.Score, "level", ev.Level)
	}
	m.opts.Audio.HandleEvents(events)

	if m.feedback != "" && !now.Before(m.feedbackUntil) {
		m.feedback = ""
	}
	return m, tickCmd(m.opts.FPS)
}

// saveScreenshot writes the current board as plain text.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "err", err)
			return
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	DrawBoard(m.screen, m.session.Snapshot(), m.feedback)
	name := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	w, h := BoardSize(snap.GridSize)
	m.screen.Resize(w, h)
	DrawBoard(m.screen, snap, m.feedback)

	title := titleStyle.Render("SNAKE ULTRA")
	if m.opts.Variant != "" {
		title = lipgloss.JoinHorizontal(lipgloss.Bottom, title, variantStyle.Render("  "+m.opts.Variant))
	}

	parts := []string{title, "", RenderScreen(m.screen)}
	if snap.Status.Exploding() {
		parts = append(parts, m.progress.ViewAs(snap.PauseProgress()))
	}
	parts = append(parts, m.help.View(m.keys.Keys()))
	view := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return strings.TrimRight(view, "\n")
}

// Run starts the Bubble Tea program for a single game.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
