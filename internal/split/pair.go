package split

import (
	"github.com/mmcdole/splitpane/internal/dom"
	"github.com/mmcdole/splitpane/internal/geometry"
)

// pair joins two adjacent panes around one divider. a is the pane visually
// before the divider, b the one after it.
type pair struct {
	a, b    int
	aGutter float64
	bGutter float64
	first   bool
	last    bool

	dragging bool
	// size and start are the pair's pixel span and leading edge, snapshotted
	// when a drag starts.
	size  float64
	start float64
	// rebased is set while a push-through has moved this pair's frame.
	rebased bool

	gutter  dom.Element
	parent  dom.Element
	session *dragSession
	unwire  []func()
}

// buildPairs creates one pair per adjacent index pair. A reversed parent flow
// swaps the roles so drags follow the visual direction.
func buildPairs(panes []*pane, parent dom.Element, reversed bool) []*pair {
	if len(panes) < 2 {
		return nil
	}
	pairs := make([]*pair, 0, len(panes)-1)
	for i := 1; i < len(panes); i++ {
		p := &pair{
			a:       i - 1,
			b:       i,
			aGutter: panes[i-1].allowance,
			bGutter: panes[i].allowance,
			first:   i == 1,
			last:    i == len(panes)-1,
			parent:  parent,
		}
		if reversed {
			p.a, p.b = p.b, p.a
			p.aGutter, p.bGutter = p.bGutter, p.aGutter
		}
		pairs = append(pairs, p)
	}
	return pairs
}

// calculateSizes snapshots the pair's span and leading edge from live
// geometry.
func (s *Splitter) calculateSizes(p *pair) {
	a := geometry.Measure(s.surface, s.panes[p.a].el, s.axis, false)
	b := geometry.Measure(s.surface, s.panes[p.b].el, s.axis, false)
	p.size = a.Size + b.Size + p.aGutter + p.bGutter
	p.start = a.Start
}

// before returns the pair sharing p's a pane as its b pane, the visual
// neighbor ahead of p.
func (s *Splitter) before(p *pair) *pair {
	for _, q := range s.pairs {
		if q.b == p.a {
			return q
		}
	}
	return nil
}

// after returns the visual neighbor following p.
func (s *Splitter) after(p *pair) *pair {
	for _, q := range s.pairs {
		if q.a == p.b {
			return q
		}
	}
	return nil
}

// PairInfo is a read-only view of a pair for hosts.
type PairInfo struct {
	A, B     int
	Gutter   dom.Element
	Dragging bool
}
