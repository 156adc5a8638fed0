package tui

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/splitpane/internal/config"
	"github.com/mmcdole/splitpane/internal/dom"
	"github.com/mmcdole/splitpane/internal/dom/memdom"
	"github.com/mmcdole/splitpane/internal/split"
	"github.com/mmcdole/splitpane/internal/store"
)

// Workspace owns the headless document the splitter runs against. One
// terminal cell is one document pixel.
type Workspace struct {
	cfg    *config.Config
	logger *slog.Logger

	doc       *memdom.Document
	container *memdom.Node
	panes     []*memdom.Node

	splitter  *split.Splitter
	direction split.Direction
	pending   []float64 // Sizes applied when the splitter is first built
	dragEnded bool
}

// Region is a run of cells along the split axis occupied by a pane or a
// divider.
type Region struct {
	Pane     int // -1 for a divider
	Pair     int // -1 for a pane
	Start    int
	End      int
	Dragging bool
}

// NewWorkspace creates the document tree for the configured panes. The
// splitter itself is built on the first Resize, once the viewport is known.
func NewWorkspace(cfg *config.Config, logger *slog.Logger) *Workspace {
	doc := memdom.New(0, 0)
	w := &Workspace{
		cfg:       cfg,
		logger:    logger,
		doc:       doc,
		container: doc.Append(nil, "div", "workspace"),
		direction: split.Direction(cfg.Splitter.Direction),
	}
	for _, p := range cfg.Panes {
		w.panes = append(w.panes, doc.Append(w.container, "div", p.ID))
	}
	return w
}

// Resize maps the terminal area to the document viewport
func (w *Workspace) Resize(width, height int) error {
	w.doc.Resize(float64(max(0, width)), float64(max(0, height)))
	if w.splitter == nil {
		return w.build(w.direction, w.pending)
	}
	return nil
}

func (w *Workspace) build(dir split.Direction, sizes []float64) error {
	flow := dom.FlowRow
	if dir == split.Vertical {
		flow = dom.FlowColumn
	}
	w.doc.SetStyle(w.container, "flex-direction", string(flow))

	opts := append(w.cfg.Options(),
		split.WithDirection(dir),
		split.WithLogger(w.logger),
		split.OnDragEnd(func() { w.dragEnded = true }),
	)
	if len(sizes) == len(w.panes) {
		opts = append(opts, split.WithSizes(sizes...))
	}

	ids := make([]any, len(w.panes))
	for i, p := range w.panes {
		ids[i] = p
	}
	sp, err := split.New(w.doc, ids, opts...)
	if err != nil {
		return fmt.Errorf("building splitter: %w", err)
	}
	w.splitter = sp
	w.direction = dir
	w.pending = nil
	return nil
}

// rebuild replaces the splitter, carrying sizes over to the new one
func (w *Workspace) rebuild(dir split.Direction, sizes []float64) error {
	if w.splitter != nil {
		w.splitter.Destroy()
		w.splitter = nil
	}
	return w.build(dir, sizes)
}

// Len returns the number of panes
func (w *Workspace) Len() int { return len(w.panes) }

// Direction returns the current split direction
func (w *Workspace) Direction() split.Direction { return w.direction }

// Sizes returns the pane percentages, or nil before the first Resize
func (w *Workspace) Sizes() []float64 {
	if w.splitter == nil {
		return nil
	}
	return w.splitter.Sizes()
}

// MinSizes returns the effective pane minimums in cells
func (w *Workspace) MinSizes() []float64 {
	if w.splitter == nil {
		return nil
	}
	return w.splitter.MinSizes()
}

// Cells returns the length of pane i along the split axis
func (w *Workspace) Cells(i int) float64 {
	r := w.doc.Rect(w.panes[i])
	if w.direction == split.Vertical {
		return r.Height
	}
	return r.Width
}

// Dragging reports whether a divider is being dragged
func (w *Workspace) Dragging() bool {
	return w.splitter != nil && w.splitter.Dragging()
}

// Cursor returns the cursor the document body currently asks for
func (w *Workspace) Cursor() string {
	return w.doc.Style(w.doc.Body(), "cursor")
}

// SetDirection rebuilds the splitter along dir, keeping the current sizes
func (w *Workspace) SetDirection(dir split.Direction) error {
	if w.splitter == nil {
		w.direction = dir
		return nil
	}
	return w.rebuild(dir, w.splitter.Sizes())
}

// Toggle flips the split direction
func (w *Workspace) Toggle() error {
	if w.direction == split.Vertical {
		return w.SetDirection(split.Horizontal)
	}
	return w.SetDirection(split.Vertical)
}

// Collapse drives pane i to its minimum
func (w *Workspace) Collapse(i int) {
	if w.splitter != nil {
		w.splitter.Collapse(i)
	}
}

// Equalize gives every pane the same share
func (w *Workspace) Equalize() {
	if w.splitter == nil {
		return
	}
	sizes := make([]float64, len(w.panes))
	for i := range sizes {
		sizes[i] = 100 / float64(len(sizes))
	}
	w.splitter.SetSizes(sizes)
}

// Snapshot captures the current arrangement under name
func (w *Workspace) Snapshot(name string) store.Layout {
	return store.Layout{
		Name:      name,
		Direction: string(w.direction),
		Sizes:     w.Sizes(),
	}
}

// Apply restores a saved arrangement. A layout that arrives before the first
// Resize is held until the splitter is built.
func (w *Workspace) Apply(l store.Layout) error {
	if len(l.Sizes) != len(w.panes) {
		return fmt.Errorf("layout %q has %d sizes for %d panes", l.Name, len(l.Sizes), len(w.panes))
	}
	dir := split.Direction(l.Direction)
	switch dir {
	case "":
		dir = w.direction
	case split.Horizontal, split.Vertical:
	default:
		return fmt.Errorf("layout %q has unknown direction %q", l.Name, l.Direction)
	}

	if w.splitter == nil {
		w.direction = dir
		w.pending = append([]float64(nil), l.Sizes...)
		return nil
	}
	if dir != w.direction {
		return w.rebuild(dir, l.Sizes)
	}
	w.splitter.SetSizes(l.Sizes)
	return nil
}

// Mouse feeds a terminal mouse event into the document. Presses go to the
// element under the pointer; every event bubbles up to the window where an
// active drag listens. It reports whether a drag ended.
func (w *Workspace) Mouse(msg tea.MouseMsg) bool {
	// Cell centers keep a divider under the pointer's cell
	x, y := float64(msg.X)+0.5, float64(msg.Y)+0.5
	ev := &dom.Event{X: x, Y: y}

	switch msg.Action {
	case tea.MouseActionPress:
		b, ok := buttons[msg.Button]
		if !ok {
			return false
		}
		ev.Type, ev.Button = dom.MouseDown, b
	case tea.MouseActionMotion:
		ev.Type = dom.MouseMove
	case tea.MouseActionRelease:
		ev.Type = dom.MouseUp
	default:
		return false
	}
	w.doc.Dispatch(w.doc.ElementAt(x, y), ev)

	ended := w.dragEnded
	w.dragEnded = false
	if ended {
		w.logger.Debug("drag ended", "sizes", w.Sizes())
	}
	return ended
}

var buttons = map[tea.MouseButton]int{
	tea.MouseButtonLeft:   dom.ButtonPrimary,
	tea.MouseButtonMiddle: dom.ButtonMiddle,
	tea.MouseButtonRight:  dom.ButtonRight,
}

// PaneAt returns the pane under the cell, or -1
func (w *Workspace) PaneAt(x, y int) int {
	hit := w.doc.ElementAt(float64(x)+0.5, float64(y)+0.5)
	for i, p := range w.panes {
		if hit == p {
			return i
		}
	}
	return -1
}

// Regions lists panes and dividers in visual order with their cell spans
// along the split axis.
func (w *Workspace) Regions() []Region {
	vertical := w.direction == split.Vertical
	span := func(el dom.Element) (int, int) {
		r := w.doc.Rect(el)
		if vertical {
			return int(math.Round(r.Top())), int(math.Round(r.Bottom()))
		}
		return int(math.Round(r.Left())), int(math.Round(r.Right()))
	}

	out := make([]Region, 0, 2*len(w.panes))
	for i, p := range w.panes {
		start, end := span(p)
		out = append(out, Region{Pane: i, Pair: -1, Start: start, End: end})
	}
	if w.splitter != nil {
		for i, p := range w.splitter.Pairs() {
			if p.Gutter == nil {
				continue
			}
			start, end := span(p.Gutter)
			out = append(out, Region{Pane: -1, Pair: i, Start: start, End: end, Dragging: p.Dragging})
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Start < out[b].Start })
	return out
}

// Close tears the splitter down
func (w *Workspace) Close() {
	if w.splitter != nil {
		w.splitter.Destroy()
		w.splitter = nil
	}
}
