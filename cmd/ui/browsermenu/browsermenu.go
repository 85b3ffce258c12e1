// Package browsermenu renders the interactive picker shown when detection
// finds more than one browser. It is a thin veneer over the same selection
// policy the line-oriented prompt implements: pick a candidate by index or
// escape to manual entry.
package browsermenu

import (
	"fmt"

	"quicktabs/pkg/browser"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle        = lipgloss.NewStyle().Background(lipgloss.Color("#FFB454")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	focusedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB454")).Bold(true)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	descriptionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A"))
)

const manualEntryLabel = "Enter a browser path manually"

type model struct {
	cursor     int
	candidates []browser.Browser
	header     string
	selected   int
	manual     bool
	cancelled  bool
}

func initialModel(candidates []browser.Browser) model {
	return model{
		candidates: candidates,
		header:     titleStyle.Render("Select a browser"),
		selected:   -1,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			// The manual-entry row sits one past the last candidate.
			if m.cursor < len(m.candidates) {
				m.cursor++
			}
		case "enter":
			if m.cursor == len(m.candidates) {
				m.manual = true
			} else {
				m.selected = m.cursor
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	s := m.header + "\n\n"

	for i, b := range m.candidates {
		cursor := " "
		title := b.Name
		if m.cursor == i {
			cursor = focusedStyle.Render(">")
			title = selectedItemStyle.Render(title)
		}
		version := b.Version
		if version == "" {
			version = "unknown version"
		}
		desc := descriptionStyle.Render(fmt.Sprintf("%s · %s", version, b.Path))
		s += fmt.Sprintf("%s %s\n  %s\n", cursor, title, desc)
	}

	cursor := " "
	title := manualEntryLabel
	if m.cursor == len(m.candidates) {
		cursor = focusedStyle.Render(">")
		title = selectedItemStyle.Render(title)
	}
	s += fmt.Sprintf("%s %s\n", cursor, title)

	s += fmt.Sprintf("\nPress %s to confirm, %s to cancel.\n",
		focusedStyle.Render("enter"), focusedStyle.Render("esc/q"))
	return s
}

// Show displays the picker and returns the chosen candidate index, or
// manual=true when the user escaped to manual entry. Cancelling the menu
// is an error; the caller treats it as "no browser selected".
func Show(candidates []browser.Browser) (index int, manual bool, err error) {
	p := tea.NewProgram(initialModel(candidates))
	finalModel, err := p.Run()
	if err != nil {
		return 0, false, fmt.Errorf("error running browser menu: %w", err)
	}

	final := finalModel.(model)
	if final.cancelled || (final.selected < 0 && !final.manual) {
		return 0, false, fmt.Errorf("selection cancelled")
	}
	return final.selected, final.manual, nil
}
