// Package split inserts draggable dividers between sibling elements of a
// rendering surface and keeps the panes' sizes summing to the parent's space
// while the dividers are dragged.
package split

import (
	"log/slog"

	"github.com/mmcdole/splitpane/internal/dom"
	"github.com/mmcdole/splitpane/internal/geometry"
	"github.com/mmcdole/splitpane/internal/style"
)

// Splitter manages one sequence of panes sharing a parent.
type Splitter struct {
	surface dom.Surface
	opts    Options
	axis    geometry.Axis
	log     *slog.Logger

	parent    dom.Element
	panes     []*pane
	pairs     []*pair
	degraded  bool
	destroyed bool
}

// DestroyOptions controls what Destroy leaves behind.
type DestroyOptions struct {
	// PreserveStyles keeps the panes' size styles in place.
	PreserveStyles bool
	// PreserveGutters leaves the divider elements in the parent, inert.
	PreserveGutters bool
}

// New builds a splitter over ids, each a selector string or a dom.Element.
// Every id is resolved before the surface is touched: a selector matching
// nothing fails with an *ElementNotFoundError and leaves no divider behind.
func New(s dom.Surface, ids []any, opts ...Option) (*Splitter, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(ids) == 0 {
		return nil, invalid("no panes")
	}
	els, err := resolveElements(s, ids)
	if err != nil {
		return nil, err
	}
	if err := o.resolve(s, len(els)); err != nil {
		return nil, err
	}
	parent := s.Parent(els[0])
	if parent == nil {
		return nil, invalid("element %q has no parent", els[0].ID())
	}

	sp := &Splitter{
		surface:  s,
		opts:     o,
		axis:     o.Direction.axis(),
		log:      o.Logger,
		parent:   parent,
		degraded: !s.Capabilities().Events,
	}
	sp.panes = buildPanes(els, &sp.opts)
	sp.pairs = buildPairs(sp.panes, parent, s.Flow(parent).Reversed())

	for i, p := range sp.panes {
		if i > 0 && !sp.degraded {
			sp.wire(sp.pairs[i-1], i)
		}
		sp.stylePane(p)
	}
	sp.clampMinimums()

	sp.log.Debug("splitter created",
		"panes", len(sp.panes),
		"direction", o.Direction,
		"degraded", sp.degraded,
		"sizes", sp.Sizes())
	return sp, nil
}

// wire creates the divider in front of pane i and listens for presses on it.
func (s *Splitter) wire(p *pair, i int) {
	g := s.opts.Gutter(i, s.opts.Direction)
	style.Apply(s.surface, g, s.opts.GutterStyle(s.axis.Dimension(), s.opts.GutterSize, i))

	press := func(ev *dom.Event) { s.startDragging(p, ev) }
	p.unwire = append(p.unwire,
		s.surface.Listen(g, dom.MouseDown, press),
		s.surface.Listen(g, dom.TouchStart, press),
	)
	s.surface.InsertBefore(s.parent, g, s.panes[i].el)
	p.gutter = g
}

// clampMinimums lowers any minimum the initial layout cannot honor.
func (s *Splitter) clampMinimums() {
	for _, p := range s.panes {
		measured := geometry.Measure(s.surface, p.el, s.axis, false).Size
		if measured < p.minSize {
			s.log.Debug("minimum size clamped",
				"pane", p.index, "configured", p.minSize, "measured", measured)
			p.minSize = measured
		}
	}
}

func (s *Splitter) stylePane(p *pane) {
	style.Apply(s.surface, p.el, s.opts.PaneStyle(s.axis.Dimension(), p.size, p.allowance, p.index))
}

// Sizes returns the pane percentages in pane order.
func (s *Splitter) Sizes() []float64 {
	out := make([]float64, len(s.panes))
	for i, p := range s.panes {
		out[i] = p.size
	}
	return out
}

// MinSizes returns the effective pane minimums in pixels.
func (s *Splitter) MinSizes() []float64 {
	out := make([]float64, len(s.panes))
	for i, p := range s.panes {
		out[i] = p.minSize
	}
	return out
}

// SetSizes overwrites pane percentages and restyles the panes. Extra values
// are ignored and the sum is not checked.
func (s *Splitter) SetSizes(sizes []float64) {
	if s.destroyed {
		return
	}
	for i, p := range s.panes {
		if i >= len(sizes) {
			break
		}
		p.size = sizes[i]
		s.stylePane(p)
	}
}

// Collapse drives pane i to its minimum by moving the divider it shares with
// its neighbor. i may equal the pair count to collapse the last pane.
func (s *Splitter) Collapse(i int) {
	if s.destroyed || s.degraded || len(s.pairs) == 0 || i < 0 || i > len(s.pairs) {
		return
	}
	p := s.pairs[min(i, len(s.pairs)-1)]
	s.calculateSizes(p)

	offset := s.panes[p.a].minSize + p.aGutter
	if p.b == i {
		offset = p.size - (s.panes[p.b].minSize + p.bGutter)
	}
	s.adjust(basePair(p), offset)
	s.log.Debug("pane collapsed", "pane", i, "sizes", s.Sizes())
}

// Dragging reports whether any divider is being dragged.
func (s *Splitter) Dragging() bool {
	for _, p := range s.pairs {
		if p.dragging {
			return true
		}
	}
	return false
}

// Direction returns the split axis.
func (s *Splitter) Direction() Direction { return s.opts.Direction }

// Pairs describes the dividers in pane order.
func (s *Splitter) Pairs() []PairInfo {
	out := make([]PairInfo, len(s.pairs))
	for i, p := range s.pairs {
		out[i] = PairInfo{A: p.a, B: p.b, Gutter: p.gutter, Dragging: p.dragging}
	}
	return out
}

// Destroy removes the dividers and clears the size style of every pane.
func (s *Splitter) Destroy() {
	s.DestroyWith(DestroyOptions{})
}

// DestroyWith tears the splitter down. Listeners are always removed and any
// open drag is ended first.
func (s *Splitter) DestroyWith(o DestroyOptions) {
	if s.destroyed {
		return
	}
	for _, p := range s.pairs {
		s.stopDragging(p)
		for _, rm := range p.unwire {
			rm()
		}
		p.unwire = nil
		if p.gutter != nil && !o.PreserveGutters {
			s.surface.RemoveChild(p.parent, p.gutter)
			p.gutter = nil
		}
	}
	if !o.PreserveStyles {
		for _, p := range s.panes {
			style.Clear(s.surface, p.el, s.opts.PaneStyle(s.axis.Dimension(), p.size, p.allowance, p.index))
		}
	}
	s.destroyed = true
	s.log.Debug("splitter destroyed", "panes", len(s.panes))
}
