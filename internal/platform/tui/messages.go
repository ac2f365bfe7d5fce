package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-ultra/internal/storage"
)

// MessageStore is the part of the storage layer the viewer needs.
type MessageStore interface {
	Messages(ctx context.Context) ([]storage.MessageEntry, error)
	ClearMessages(ctx context.Context) (int64, error)
}

// MessagesKeyMap defines the key bindings for the messages viewer.
type MessagesKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Clear key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MessagesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Clear, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MessagesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Clear, k.Back, k.Quit}}
}

// DefaultMessagesKeyMap returns default key bindings.
func DefaultMessagesKeyMap() MessagesKeyMap {
	return MessagesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear cache"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	messagesTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				MarginBottom(1)

	messagesBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)

	messagesEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Italic(true).
				Padding(2, 4)

	messagesHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// MessagesModel shows the milestone texts cached by the flavor service.
type MessagesModel struct {
	store     MessageStore
	entries   []storage.MessageEntry
	err       error
	notice    string
	table     table.Model
	help      help.Model
	keys      MessagesKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewMessagesModel creates the viewer and loads the cache.
func NewMessagesModel(store MessageStore, width, height int) MessagesModel {
	m := MessagesModel{
		store:  store,
		keys:   DefaultMessagesKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *MessagesModel) createTable() table.Model {
	textWidth := 40
	if m.width > 0 {
		textWidth = max(m.width-44, 20)
	}
	columns := []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Text", Width: textWidth},
		{Title: "Source", Width: 8},
		{Title: "Fetched", Width: 14},
		{Title: "Hits", Width: 5},
	}

	height := 10
	if m.height > 0 {
		height = max(m.height-8, 3)
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *MessagesModel) load() {
	m.entries, m.err = nil, nil
	if m.store != nil {
		m.entries, m.err = m.store.Messages(context.Background())
	}
	m.updateRows()
}

func (m *MessagesModel) updateRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			strconv.Itoa(e.Level),
			e.Text,
			e.Source,
			e.FetchedAt.Local().Format("Jan 02 15:04"),
			strconv.Itoa(e.Hits),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the viewer.
func (m MessagesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the viewer.
func (m MessagesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Clear):
			m.clear()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *MessagesModel) clear() {
	if m.store == nil {
		return
	}
	n, err := m.store.ClearMessages(context.Background())
	if err != nil {
		m.err = err
		return
	}
	m.notice = fmt.Sprintf("%d cached texts removed", n)
	m.load()
}

// View renders the viewer.
func (m MessagesModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var body string
	switch {
	case m.err != nil:
		body = messagesEmptyStyle.Render("Cannot read the cache:\n" + m.err.Error())
	case len(m.entries) == 0:
		body = messagesEmptyStyle.Render("No milestone texts cached yet.\nReach score 10 to fetch one!")
	default:
		body = m.table.View()
	}

	parts := []string{
		messagesTitleStyle.Render("MILESTONE MESSAGES"),
		messagesBoxStyle.Render(body),
	}
	if m.notice != "" {
		parts = append(parts, messagesHelpStyle.Render(m.notice))
	}
	parts = append(parts, messagesHelpStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m MessagesModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m MessagesModel) IsQuitting() bool {
	return m.quitting
}

// Entries returns the loaded cache rows.
func (m MessagesModel) Entries() []storage.MessageEntry {
	return m.entries
}

// RunMessages runs the viewer. It returns true when the user went back.
func RunMessages(store MessageStore, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewMessagesModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(MessagesModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
