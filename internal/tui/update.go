package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
)

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ResultsMsg:
		m.results = msg.Results
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.setFocus(m.focus - 1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.setFocus(m.focus + 1)
			return m, nil

		case key.Matches(msg, m.keys.Left):
			m.sliders[m.focus].Decrement()
			return m, recomputeCmd(m.builder, m.currentInputs())

		case key.Matches(msg, m.keys.Right):
			m.sliders[m.focus].Increment()
			return m, recomputeCmd(m.builder, m.currentInputs())

		case key.Matches(msg, m.keys.Toggle):
			m.showReal = !m.showReal
			return m, nil
		}
	}

	return m, nil
}

// setFocus moves the focus, wrapping around the slider list.
func (m *Model) setFocus(focus int) {
	m.sliders[m.focus].IsFocused = false
	if focus < 0 {
		focus = len(m.sliders) - 1
	}
	if focus >= len(m.sliders) {
		focus = 0
	}
	m.focus = focus
	m.sliders[m.focus].IsFocused = true
}
