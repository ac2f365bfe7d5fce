package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// OptionsFunc builds the game options for a variant ID.
type OptionsFunc func(variantID string) (Options, error)

// AppModel manages the full flow: menu -> game -> menu, with the cached
// messages viewer reachable from the menu when a store is available.
type AppModel struct {
	build    OptionsFunc
	store    MessageStore
	user     string
	logger   *log.Logger
	menu     MenuModel
	game     *Model
	messages *MessagesModel
	width    int
	height   int
	quitting bool
}

// NewAppModel creates the top-level model. store may be nil.
func NewAppModel(build OptionsFunc, store MessageStore, user string, width, height int, logger *log.Logger) AppModel {
	if logger == nil {
		logger = log.Default()
	}
	return AppModel{
		build:  build,
		store:  store,
		user:   user,
		logger: logger,
		menu:   NewMenuModel(width, height),
		width:  width,
		height: height,
	}
}

// Init initializes the menu.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch {
	case m.game != nil:
		return m.updateGame(msg)
	case m.messages != nil:
		return m.updateMessages(msg)
	}
	return m.updateMenu(msg)
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsMessages():
		m.menu = NewMenuModel(m.width, m.height)
		if m.store == nil {
			return m, nil
		}
		viewer := NewMessagesModel(m.store, m.width, m.height)
		m.messages = &viewer
		return m, viewer.Init()

	case m.menu.Selected() != nil:
		id := m.menu.Selected().ID
		opts, err := m.build(id)
		if err != nil {
			m.logger.Error("cannot start variant", "variant", id, "user", m.user, "err", err)
			m.menu = NewMenuModel(m.width, m.height)
			return m, nil
		}
		opts.Embedded = true
		game := NewModel(opts)
		game.width, game.height = m.width, m.height
		game.help.Width = m.width
		m.game = &game
		m.logger.Info("game started", "variant", id, "user", m.user)
		return m, game.Init()
	}

	return m, cmd
}

// updateGame forwards to the game and returns to the menu once it is done.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = &game
	}
	if !m.game.Done() {
		return m, cmd
	}

	snap := m.game.Session().Snapshot()
	m.logger.Info("game left", "user", m.user, "score", snap.Score, "status", snap.Status)
	m.game.Close()
	quit := m.game.Quitting()
	m.game = nil

	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	m.menu = NewMenuModel(m.width, m.height)
	return m, m.menu.Init()
}

func (m AppModel) updateMessages(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}
	next, cmd := m.messages.Update(msg)
	if viewer, ok := next.(MessagesModel); ok {
		m.messages = &viewer
	}
	switch {
	case m.messages.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.messages.IsGoingBack():
		m.messages = nil
		return m, nil
	}
	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch {
	case m.game != nil:
		return m.game.View()
	case m.messages != nil:
		return m.messages.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is on screen.
func (m AppModel) InGame() bool {
	return m.game != nil
}

// Close releases the running game, if any.
func (m AppModel) Close() {
	if m.game != nil {
		m.game.Close()
	}
}

// RunApp runs the menu-driven flow until the player quits.
func RunApp(build OptionsFunc, store MessageStore, width, height int, logger *log.Logger) error {
	p := tea.NewProgram(NewAppModel(build, store, "", width, height, logger), tea.WithAltScreen())
	final, err := p.Run()
	if app, ok := final.(AppModel); ok {
		app.Close()
	}
	return err
}
