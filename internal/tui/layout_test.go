package tui

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/splitpane/internal/config"
	"github.com/mmcdole/splitpane/internal/split"
	"github.com/mmcdole/splitpane/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Store.Dir = ""
	return cfg
}

// newWorkspace builds the default three panes in a 100x20 viewport.
func newWorkspace(t *testing.T) *Workspace {
	t.Helper()
	w := NewWorkspace(testConfig(), discard())
	require.NoError(t, w.Resize(100, 20))
	return w
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestWorkspace_BuildsOnFirstResize(t *testing.T) {
	w := NewWorkspace(testConfig(), discard())
	assert.Nil(t, w.Sizes())

	require.NoError(t, w.Resize(100, 20))
	sizes := w.Sizes()
	require.Len(t, sizes, 3)
	for _, s := range sizes {
		assert.InDelta(t, 100.0/3, s, 1e-9)
	}
	assert.Equal(t, split.Horizontal, w.Direction())
}

func TestWorkspace_RegionsTileTheViewport(t *testing.T) {
	w := newWorkspace(t)

	regions := w.Regions()
	require.Len(t, regions, 5)

	want := []Region{
		{Pane: 0, Pair: -1, Start: 0, End: 33},
		{Pane: -1, Pair: 0, Start: 33, End: 34},
		{Pane: 1, Pair: -1, Start: 34, End: 66},
		{Pane: -1, Pair: 1, Start: 66, End: 67},
		{Pane: 2, Pair: -1, Start: 67, End: 100},
	}
	assert.Equal(t, want, regions)
}

func TestWorkspace_MouseDrag(t *testing.T) {
	w := newWorkspace(t)

	assert.False(t, w.Mouse(mouse(tea.MouseActionPress, 33, 5)))
	assert.True(t, w.Dragging())
	assert.Equal(t, "col-resize", w.Cursor())

	assert.False(t, w.Mouse(mouse(tea.MouseActionMotion, 50, 5)))
	assert.True(t, w.Mouse(mouse(tea.MouseActionRelease, 50, 5)), "release ends the drag")
	assert.False(t, w.Dragging())

	sizes := w.Sizes()
	assert.InDelta(t, 50.5, sizes[0], 1e-9)
	assert.InDelta(t, 200.0/3-50.5, sizes[1], 1e-9)
	assert.InDelta(t, 100.0/3, sizes[2], 1e-9)

	// The divider now sits under the cell the pointer was released on
	g := w.Regions()[1]
	assert.Equal(t, -1, g.Pane)
	assert.Equal(t, 50, g.Start)
}

func TestWorkspace_MouseSnapsToMinimum(t *testing.T) {
	w := newWorkspace(t)

	w.Mouse(mouse(tea.MouseActionPress, 33, 5))
	w.Mouse(mouse(tea.MouseActionMotion, 5, 5))
	w.Mouse(mouse(tea.MouseActionRelease, 5, 5))

	assert.InDelta(t, 8.5, w.Sizes()[0], 1e-9)
	assert.InDelta(t, 8, w.Cells(0), 1e-9)
}

func TestWorkspace_IgnoresOtherButtonsAndPanePresses(t *testing.T) {
	w := newWorkspace(t)
	before := w.Sizes()

	w.Mouse(tea.MouseMsg{X: 33, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.False(t, w.Dragging())
	w.Mouse(tea.MouseMsg{X: 33, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.False(t, w.Dragging())

	w.Mouse(mouse(tea.MouseActionPress, 10, 5))
	w.Mouse(mouse(tea.MouseActionMotion, 40, 5))
	w.Mouse(mouse(tea.MouseActionRelease, 40, 5))
	assert.Equal(t, before, w.Sizes())
}

func TestWorkspace_PaneAt(t *testing.T) {
	w := newWorkspace(t)

	assert.Equal(t, 0, w.PaneAt(0, 0))
	assert.Equal(t, -1, w.PaneAt(33, 0))
	assert.Equal(t, 1, w.PaneAt(50, 10))
	assert.Equal(t, 2, w.PaneAt(99, 19))
}

func TestWorkspace_Collapse(t *testing.T) {
	w := newWorkspace(t)

	w.Collapse(1)
	sizes := w.Sizes()
	assert.InDelta(t, 9, sizes[1], 1e-9)
	assert.InDelta(t, 8, w.Cells(1), 1e-9)
	assert.InDelta(t, 100, sizes[0]+sizes[1]+sizes[2], 1e-9)
}

func TestWorkspace_Equalize(t *testing.T) {
	w := newWorkspace(t)
	w.Collapse(0)

	w.Equalize()
	for _, s := range w.Sizes() {
		assert.InDelta(t, 100.0/3, s, 1e-9)
	}
}

func TestWorkspace_Toggle(t *testing.T) {
	w := NewWorkspace(testConfig(), discard())
	require.NoError(t, w.Resize(90, 60))
	w.Collapse(0)
	before := w.Sizes()

	require.NoError(t, w.Toggle())
	assert.Equal(t, split.Vertical, w.Direction())
	assert.Equal(t, "column", w.doc.Style(w.container, "flex-direction"))
	assert.Empty(t, w.doc.Style(w.panes[0], "width"), "horizontal styles are cleared")
	assert.NotEmpty(t, w.doc.Style(w.panes[0], "height"))
	assert.Len(t, w.doc.Children(w.container), 5, "old dividers are removed")

	for i, s := range w.Sizes() {
		assert.InDelta(t, before[i], s, 1e-9)
	}

	regions := w.Regions()
	assert.Equal(t, 0, regions[0].Start)
	assert.Equal(t, 60, regions[len(regions)-1].End)

	require.NoError(t, w.Toggle())
	assert.Equal(t, split.Horizontal, w.Direction())
	assert.Equal(t, "row", w.doc.Style(w.container, "flex-direction"))
}

func TestWorkspace_ApplyBeforeResize(t *testing.T) {
	w := NewWorkspace(testConfig(), discard())

	require.NoError(t, w.Apply(store.Layout{Name: "x", Direction: "vertical", Sizes: []float64{20, 30, 50}}))
	assert.Equal(t, split.Vertical, w.Direction())

	require.NoError(t, w.Resize(80, 40))
	assert.Equal(t, []float64{20, 30, 50}, w.Sizes())
	assert.Equal(t, "column", w.doc.Style(w.container, "flex-direction"))
}

func TestWorkspace_ApplyRejectsMismatch(t *testing.T) {
	w := newWorkspace(t)

	assert.Error(t, w.Apply(store.Layout{Name: "x", Sizes: []float64{50, 50}}))
	assert.Error(t, w.Apply(store.Layout{Name: "x", Direction: "diagonal", Sizes: []float64{20, 30, 50}}))

	require.NoError(t, w.Apply(store.Layout{Name: "x", Sizes: []float64{20, 30, 50}}))
	assert.Equal(t, []float64{20, 30, 50}, w.Sizes())
	assert.Equal(t, split.Horizontal, w.Direction())
}

func TestWorkspace_Snapshot(t *testing.T) {
	w := newWorkspace(t)
	w.Collapse(2)

	l := w.Snapshot("work")
	assert.Equal(t, "work", l.Name)
	assert.Equal(t, "horizontal", l.Direction)
	assert.Equal(t, w.Sizes(), l.Sizes)
}
