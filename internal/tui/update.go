package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "q":
		// The state field needs the letter, so q only quits from a toggle.
		if m.focused >= fieldCount {
			return m, tea.Quit
		}

	case "tab", "down":
		m.moveFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil

	case "enter":
		if m.focused >= fieldCount {
			m.flipToggle()
		} else {
			m.moveFocus(1)
		}
		return m, nil

	case " ":
		if m.focused >= fieldCount {
			m.flipToggle()
			return m, nil
		}
	}

	if m.focused < fieldCount {
		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		m.recalc()
		return m, cmd
	}

	return m, nil
}

func (m *Model) moveFocus(delta int) {
	if m.focused < fieldCount {
		m.inputs[m.focused].Blur()
	}
	m.focused = (m.focused + delta + rowCount) % rowCount
	if m.focused < fieldCount {
		m.inputs[m.focused].Focus()
	}
}

func (m *Model) flipToggle() {
	switch m.focused {
	case toggleBorderZone:
		m.borderZone = !m.borderZone
	case toggleAbsorbQuota:
		m.absorbQuota = !m.absorbQuota
	}
	m.recalc()
}
