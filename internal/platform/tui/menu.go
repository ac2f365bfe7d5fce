package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-ultra/internal/registry"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF"))

	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A3A3A3"))

	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FACC15"))

	menuHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items        []registry.Variant
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	quitting     bool
	selected     *registry.Variant
	openMessages bool
}

// NewMenuModel creates a menu listing every registered variant with the
// default variant preselected.
func NewMenuModel(width, height int) MenuModel {
	items := registry.List()
	cursor := 0
	for i, v := range items {
		if v.ID == registry.DefaultVariant {
			cursor = i
		}
	}
	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionMessages:
		m.openMessages = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{menuTitleStyle.Render("S N A K E   U L T R A"), ""}
	for i, v := range m.items {
		if i == m.cursor {
			lines = append(lines, menuSelectedStyle.Render("> "+v.Title))
			if v.Description != "" {
				lines = append(lines, menuItemStyle.Render("  "+v.Description))
			}
			continue
		}
		lines = append(lines, menuItemStyle.Render("  "+v.Title))
	}
	lines = append(lines, "", menuHintStyle.Render("↑/↓ choose · enter play · tab messages · q quit"))

	view := strings.Join(lines, "\n")
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Selected returns the chosen variant, or nil if none was chosen.
func (m MenuModel) Selected() *registry.Variant {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsMessages returns true if the user asked for the cached messages.
func (m MenuModel) WantsMessages() bool {
	return m.openMessages
}

// Size returns the last known terminal size.
func (m MenuModel) Size() (int, int) {
	return m.width, m.height
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	VariantID     string
	Width, Height int
	WantsMessages bool
	Quit          bool
}

// Result summarises the final menu state.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{Width: m.width, Height: m.height}
	switch {
	case m.openMessages:
		r.WantsMessages = true
	case m.selected != nil:
		r.VariantID = m.selected.ID
	default:
		r.Quit = true
	}
	return r
}
