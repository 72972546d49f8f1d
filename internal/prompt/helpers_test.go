package prompt

import tea "github.com/charmbracelet/bubbletea"

func keyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}
