package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type WelcomeModel struct {
	items []string
	idx   int
}

func NewWelcomeModel() *WelcomeModel {
	return &WelcomeModel{
		items: []string{"Create a new identity", "I already have a token"},
	}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		if m.idx == 0 {
			return m, func() tea.Msg { return NavigateTo{Page: "new"} }
		}
		return m, func() tea.Msg { return NavigateTo{Page: "enter"} }
	}

	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder

	b.WriteString("Your token is your only key. No email, no password,\n")
	b.WriteString("no recovery. Keep it safe.\n\n")

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-3s │ %-*s\n", "", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", 3))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d │ %-*s\n", cursor, i+1, actionColWidth, item))
	}

	return renderPage("WELCOME TO PRIVY", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: version")
}
