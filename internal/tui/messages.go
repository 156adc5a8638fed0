package tui

import "github.com/mmcdole/splitpane/internal/store"

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// LayoutSavedMsg signals that a layout was written to the store
type LayoutSavedMsg struct {
	Name string
	Auto bool // Saved after a drag rather than on request
}

// LayoutLoadedMsg signals that a layout was read from the store
type LayoutLoadedMsg struct {
	Layout store.Layout
}

// LayoutMissingMsg signals that no layout is saved under Name
type LayoutMissingMsg struct {
	Name string
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
