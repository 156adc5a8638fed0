package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/splitpane/internal/store"
)

// Command factories for async operations

// SaveLayoutCmd writes a layout to the store
func SaveLayoutCmd(s *store.LayoutStore, l store.Layout, auto bool) tea.Cmd {
	return func() tea.Msg {
		if err := s.Save(l); err != nil {
			return ErrMsg{Err: err, Context: "saving layout"}
		}
		return LayoutSavedMsg{Name: l.Name, Auto: auto}
	}
}

// LoadLayoutCmd reads a layout from the store
func LoadLayoutCmd(s *store.LayoutStore, name string) tea.Cmd {
	return func() tea.Msg {
		l, err := s.Get(name)
		if errors.Is(err, store.ErrLayoutNotFound) {
			return LayoutMissingMsg{Name: name}
		}
		if err != nil {
			return ErrMsg{Err: err, Context: "loading layout"}
		}
		return LayoutLoadedMsg{Layout: l}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
