package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.ShowHelp = false
		}
		return m, nil
	}

	n := m.Workspace.Len()
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil

	case key.Matches(msg, Keys.Next):
		m.Selected = (m.Selected + 1) % n
		return m, nil

	case key.Matches(msg, Keys.Prev):
		m.Selected = (m.Selected - 1 + n) % n
		return m, nil

	case key.Matches(msg, Keys.Collapse):
		m.Workspace.Collapse(m.Selected)
		return m, m.autoSave()

	case key.Matches(msg, Keys.Equalize):
		m.Workspace.Equalize()
		return m, m.autoSave()

	case key.Matches(msg, Keys.Orientation):
		if err := m.Workspace.Toggle(); err != nil {
			m.Logger.Error("orientation change failed", "error", err)
			return m.setStatus(err.Error(), true)
		}
		m.Logger.Info("orientation changed", "direction", m.Workspace.Direction())
		return m, m.autoSave()

	case key.Matches(msg, Keys.Save):
		if m.Store == nil {
			return m.setStatus("Layout store unavailable", true)
		}
		return m, SaveLayoutCmd(m.Store, m.Workspace.Snapshot(m.LayoutName), false)

	case key.Matches(msg, Keys.Restore):
		if m.Store == nil {
			return m.setStatus("Layout store unavailable", true)
		}
		return m, LoadLayoutCmd(m.Store, m.LayoutName)
	}

	return m, nil
}
