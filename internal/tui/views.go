package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/splitpane/internal/split"
	"github.com/mmcdole/splitpane/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}
	if m.ShowHelp {
		return m.renderHelp()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderPanes(), m.renderFooter())
}

// renderPanes draws every region of the workspace at its surface geometry
func (m Model) renderPanes() string {
	width, height := m.Width, m.Height-ChromeHeight
	if width <= 0 || height <= 0 {
		return ""
	}
	vertical := m.Workspace.Direction() == split.Vertical

	var blocks []string
	for _, r := range m.Workspace.Regions() {
		n := r.End - r.Start
		if n <= 0 {
			continue
		}
		bw, bh := n, height
		if vertical {
			bw, bh = width, n
		}
		if r.Pane < 0 {
			blocks = append(blocks, renderGutter(r, bw, bh, vertical))
			continue
		}
		blocks = append(blocks, m.renderPane(r.Pane, bw, bh))
	}

	if vertical {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func renderGutter(r Region, width, height int, vertical bool) string {
	ch, style := styles.VerticalRule, styles.GutterStyle
	if vertical {
		ch = styles.HorizontalRule
	}
	if r.Dragging {
		style = styles.GutterDraggingStyle
		if !vertical {
			ch = styles.GripChar
		}
	}
	return styles.Block(ch, width, height, style)
}

// renderPane draws pane i as a bordered box of exactly width x height cells
func (m Model) renderPane(i, width, height int) string {
	if width < 2 || height < 2 {
		return styles.Block(" ", width, height, lipgloss.NewStyle())
	}
	innerW, innerH := width-2, height-2

	p := m.Config.Panes[i]
	title := p.Title
	if title == "" {
		title = p.ID
	}

	lines := []string{styles.TitleStyle.Render(styles.Truncate(title, innerW))}
	if sizes, mins := m.Workspace.Sizes(), m.Workspace.MinSizes(); i < len(sizes) {
		info := fmt.Sprintf("%.1f%% · %.0f cells · min %.0f", sizes[i], m.Workspace.Cells(i), mins[i])
		lines = append(lines, styles.DimStyle.Render(styles.Truncate(info, innerW)))
	}
	if p.Body != "" {
		lines = append(lines, "")
		for _, l := range strings.Split(p.Body, "\n") {
			lines = append(lines, styles.Truncate(l, innerW))
		}
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	border := styles.InactiveBorder
	if i == m.Selected {
		border = styles.ActiveBorder
	}
	return border.Width(innerW).Height(innerH).Render(strings.Join(lines, "\n"))
}

// renderFooter renders the single status line: sizes, cursor, status and help
func (m Model) renderFooter() string {
	sizes := m.Workspace.Sizes()
	parts := make([]string, 0, len(sizes))
	for i, s := range sizes {
		text := fmt.Sprintf("%.1f%%", s)
		if i == m.Selected {
			parts = append(parts, styles.AccentStyle.Render(text))
		} else {
			parts = append(parts, styles.DimStyle.Render(text))
		}
	}
	left := styles.DimBadgeStyle.Render(string(m.Workspace.Direction())) + " " +
		strings.Join(parts, styles.DimStyle.Render(" "+styles.VerticalRule+" "))

	if m.Workspace.Dragging() {
		left += " " + styles.BadgeStyle.Render(m.Workspace.Cursor())
	}
	if m.StatusMsg != "" {
		status := styles.SuccessStyle
		if m.StatusIsErr {
			status = styles.ErrorStyle
		}
		left += "  " + status.Render(m.StatusMsg)
	}

	right := m.Help.View(Keys)
	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		return lipgloss.NewStyle().MaxWidth(m.Width).Render(left)
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the full key map centered on screen
func (m Model) renderHelp() string {
	h := m.Help
	h.ShowAll = true

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Amber).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.TitleStyle.Render("Keys"),
			"",
			h.View(Keys),
			"",
			styles.DimStyle.Render("Drag a divider with the mouse to resize panes"),
		))
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}
