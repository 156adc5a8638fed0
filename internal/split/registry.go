package split

import (
	"github.com/mmcdole/splitpane/internal/dom"
	"github.com/mmcdole/splitpane/internal/geometry"
)

// pane is one managed element. The element itself belongs to the surface.
type pane struct {
	el    dom.Element
	index int
	// size is the share of the parent's axis, in percent.
	size float64
	// minSize is the floor in pixels.
	minSize float64
	// allowance is the gutter space the pane gives up: half a gutter at the
	// outer ends of the sequence, a full gutter inside it.
	allowance float64
}

// extent is the pane's pixel span including its gutter allowance.
func (p *pane) extent(s dom.Surface, axis geometry.Axis) float64 {
	return geometry.Measure(s, p.el, axis, false).Size + p.allowance
}

// minExtent is the span the pane occupies when held at its minimum.
func (p *pane) minExtent() float64 {
	return p.minSize + p.allowance
}

// resolveElements turns every id into a live element before anything is
// mutated, so a bad id leaves the surface untouched.
func resolveElements(s dom.Surface, ids []any) ([]dom.Element, error) {
	els := make([]dom.Element, len(ids))
	for i, id := range ids {
		switch v := id.(type) {
		case string:
			el, ok := s.Query(v)
			if !ok {
				return nil, notFound(s, v)
			}
			els[i] = el
		case dom.Element:
			els[i] = v
		case nil:
			return nil, invalid("nil id at index %d", i)
		default:
			return nil, invalid("unsupported id %T at index %d", id, i)
		}
	}
	return els, nil
}

// gutterAllowance is the space a pane reserves for adjoining dividers.
func gutterAllowance(gutter float64, n, i int) float64 {
	switch {
	case n < 2:
		return 0
	case i == 0 || i == n-1:
		return gutter / 2
	default:
		return gutter
	}
}

// buildPanes computes the initial registry from resolved elements.
func buildPanes(els []dom.Element, o *Options) []*pane {
	n := len(els)
	panes := make([]*pane, n)
	for i, el := range els {
		p := &pane{
			el:        el,
			index:     i,
			size:      100 / float64(n),
			minSize:   o.MinSize,
			allowance: gutterAllowance(o.GutterSize, n, i),
		}
		if o.Sizes != nil {
			p.size = o.Sizes[i]
		}
		if o.MinSizes != nil {
			p.minSize = o.MinSizes[i]
		}
		panes[i] = p
	}
	return panes
}
