package split

import (
	"math"

	"github.com/mmcdole/splitpane/internal/geometry"
)

// effectivePair is the span a single move event resizes: the dragged pair,
// or the pair extended over one borrowed neighbor when pushing. It is derived
// per move and never written back to the base pair.
type effectivePair struct {
	a, b    int
	aGutter float64
	bGutter float64
	size    float64
	start   float64

	// pinned is the pane between the divider and the borrowed pane, held at
	// its minimum while pushing, or -1.
	pinned       int
	pinnedExtent float64
	borrowed     bool
}

func basePair(p *pair) effectivePair {
	return effectivePair{
		a:       p.a,
		b:       p.b,
		aGutter: p.aGutter,
		bGutter: p.bGutter,
		size:    p.size,
		start:   p.start,
		pinned:  -1,
	}
}

// effective derives the span for a pointer at pos and returns it with the
// offset of pane a's far edge from the span's start.
func (s *Splitter) effective(p *pair, pos float64) (effectivePair, float64) {
	offset := pos - p.start
	if s.opts.PushablePanes && len(s.pairs) > 1 {
		if offset < 0 {
			if prev := s.before(p); prev != nil {
				p.rebased = true
				return s.borrow(prev.a, prev.aGutter, p.a, p.b, p.bGutter, pos, true)
			}
		} else if offset > p.size {
			if next := s.after(p); next != nil {
				p.rebased = true
				return s.borrow(p.a, p.aGutter, p.b, next.b, next.bGutter, pos, false)
			}
		}
	}
	if p.rebased {
		// A push moved this pair's frame; measure it again.
		s.calculateSizes(p)
		p.rebased = false
		offset = pos - p.start
	}
	return basePair(p), offset
}

// borrow builds the three-pane span a, pinned, b from fresh geometry. When
// pinnedBefore is set the dragged divider sits after the pinned pane.
func (s *Splitter) borrow(a int, aGutter float64, pinned, b int, bGutter float64, pos float64, pinnedBefore bool) (effectivePair, float64) {
	ea := geometry.Measure(s.surface, s.panes[a].el, s.axis, false)
	eb := geometry.Measure(s.surface, s.panes[b].el, s.axis, false)
	mid := s.panes[pinned]

	e := effectivePair{
		a:            a,
		b:            b,
		aGutter:      aGutter,
		bGutter:      bGutter,
		start:        ea.Start,
		size:         ea.Size + aGutter + mid.extent(s.surface, s.axis) + eb.Size + bGutter,
		pinned:       pinned,
		pinnedExtent: mid.minExtent(),
		borrowed:     true,
	}
	offset := pos - e.start
	if pinnedBefore {
		offset -= e.pinnedExtent
	}
	return e, offset
}

// snap clamps offset to a pane's minimum when it lands within the snap
// distance of it.
func (s *Splitter) snap(e effectivePair, offset float64) float64 {
	a, b := s.panes[e.a], s.panes[e.b]
	far := e.size - e.pinnedExtent
	switch {
	case offset <= a.minSize+s.opts.SnapOffset+e.aGutter:
		return a.minSize + e.aGutter
	case offset >= far-(b.minSize+s.opts.SnapOffset+e.bGutter):
		return far - (b.minSize + e.bGutter)
	}
	return offset
}

func (s *Splitter) interval(offset float64) float64 {
	if s.opts.DragInterval <= 1 {
		return offset
	}
	return math.Round(offset/s.opts.DragInterval) * s.opts.DragInterval
}

// adjust moves the divider to offset, redistributing the span's combined
// percentage. The total held by the span never changes.
func (s *Splitter) adjust(e effectivePair, offset float64) {
	if e.size <= 0 {
		return
	}
	a, b := s.panes[e.a], s.panes[e.b]
	combined := a.size + b.size

	var mid *pane
	pinnedShare := 0.0
	if e.pinned >= 0 {
		mid = s.panes[e.pinned]
		combined += mid.size
		pinnedShare = e.pinnedExtent / e.size * combined
		mid.size = pinnedShare
	}

	a.size = offset / e.size * combined
	b.size = combined - a.size - pinnedShare

	s.stylePane(a)
	if mid != nil {
		s.stylePane(mid)
	}
	s.stylePane(b)
}
