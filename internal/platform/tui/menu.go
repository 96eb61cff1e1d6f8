package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/multiball/internal/core"
	"github.com/vovakirdan/multiball/internal/registry"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel lets the player choose a registered game mode.
type MenuModel struct {
	items    []registry.GameInfo
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	selected string
	quitting bool
}

// NewMenuModel creates a mode selector over every registered mode.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		items:  registry.List(),
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
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
		if len(m.items) == 0 {
			return m, nil
		}
		m.selected = m.items[m.cursor].ID
		return m, tea.Quit
	}
	return m, nil
}

// View renders the mode list.
func (m MenuModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("M U L T I B A L L", m.width, titleStyle))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width, itemStyle))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(centerText(fmt.Sprintf("> %s", item.Title), m.width, selectedStyle))
		} else {
			b.WriteString(centerText(fmt.Sprintf("  %s", item.Title), m.width, itemStyle))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width, lipgloss.NewStyle()))

	return b.String()
}

// Selected returns the chosen mode ID, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int, style lipgloss.Style) string {
	rendered := style.Render(text)
	w := lipgloss.Width(rendered)
	if w >= width {
		return rendered
	}
	return strings.Repeat(" ", (width-w)/2) + rendered
}

// RunModeSelector runs the mode selector and returns the chosen mode ID.
// An empty ID means the player quit.
func RunModeSelector(cfg core.RuntimeConfig) (string, error) {
	p := tea.NewProgram(NewMenuModel(cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("mode selector: %w", err)
	}

	m, ok := final.(MenuModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
