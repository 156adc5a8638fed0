package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/splitpane/internal/config"
	"github.com/mmcdole/splitpane/internal/store"
	"github.com/mmcdole/splitpane/internal/tui/styles"
)

// Layout constants
const (
	// Vertical layout: single footer line
	ChromeHeight = 1

	statusTimeout = 3 * time.Second
)

// Model is the main Bubble Tea model for the application
type Model struct {
	Ready    bool
	ShowHelp bool

	Config    *config.Config
	Store     *store.LayoutStore // May be nil; save and restore are then disabled
	Logger    *slog.Logger
	Workspace *Workspace
	Help      help.Model

	// Layout saved and restored by name
	LayoutName string

	// Dimensions
	Width  int
	Height int

	// UI state
	Selected    int
	StatusMsg   string
	StatusIsErr bool
}

// NewModel creates a new application model
func NewModel(cfg *config.Config, st *store.LayoutStore, logger *slog.Logger) Model {
	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	return Model{
		Config:     cfg,
		Store:      st,
		Logger:     logger,
		Workspace:  NewWorkspace(cfg, logger),
		Help:       h,
		LayoutName: cfg.UI.Layout,
	}
}

// Init restores the configured layout, if any
func (m Model) Init() tea.Cmd {
	if m.Store == nil || m.LayoutName == "" {
		return nil
	}
	return LoadLayoutCmd(m.Store, m.LayoutName)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.Ready = true
		if err := m.Workspace.Resize(msg.Width, msg.Height-ChromeHeight); err != nil {
			m.Logger.Error("workspace resize failed", "error", err)
			return m.setStatus(err.Error(), true)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case LayoutLoadedMsg:
		if err := m.Workspace.Apply(msg.Layout); err != nil {
			m.Logger.Warn("layout not applied", "layout", msg.Layout.Name, "error", err)
			return m.setStatus(err.Error(), true)
		}
		m.Logger.Info("layout restored", "layout", msg.Layout.Name, "sizes", msg.Layout.Sizes)
		return m.setStatus("Restored "+msg.Layout.Name, false)

	case LayoutMissingMsg:
		return m.setStatus("No saved layout "+msg.Name, false)

	case LayoutSavedMsg:
		m.Logger.Debug("layout saved", "layout", msg.Name, "auto", msg.Auto)
		if msg.Auto {
			return m, nil
		}
		return m.setStatus("Saved "+msg.Name, false)

	case ErrMsg:
		m.Logger.Error("command failed", "context", msg.Context, "error", msg.Err)
		return m.setStatus(msg.Error(), true)

	case StatusMsg:
		return m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

func (m Model) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return m, ClearStatusCmd(statusTimeout)
}

// handleMouseMsg selects the pane under a left press and forwards the event
// to the workspace
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.Ready || m.ShowHelp {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if i := m.Workspace.PaneAt(msg.X, msg.Y); i >= 0 {
			m.Selected = i
		}
	}
	if m.Workspace.Mouse(msg) {
		return m, m.autoSave()
	}
	return m, nil
}

// autoSave persists the layout after a change when the config asks for it
func (m Model) autoSave() tea.Cmd {
	if !m.Config.UI.AutoSave || m.Store == nil || m.LayoutName == "" {
		return nil
	}
	return SaveLayoutCmd(m.Store, m.Workspace.Snapshot(m.LayoutName), true)
}
