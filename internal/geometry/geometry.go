// Package geometry reads live element geometry along a split axis.
package geometry

import "github.com/mmcdole/splitpane/internal/dom"

// Axis is the layout dimension sizing and dragging happen along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Dimension is the style property the axis sizes.
func (a Axis) Dimension() string {
	if a == Vertical {
		return "height"
	}
	return "width"
}

// Cursor is the default drag cursor for the axis.
func (a Axis) Cursor() string {
	if a == Vertical {
		return "row-resize"
	}
	return "col-resize"
}

// Coord returns the event's pointer coordinate along the axis. ok is false for
// a touch event without touch points.
func (a Axis) Coord(ev *dom.Event) (float64, bool) {
	x, y, ok := ev.Position()
	if !ok {
		return 0, false
	}
	if a == Vertical {
		return y, true
	}
	return x, true
}

// Extent is an element's span along an axis.
type Extent struct {
	Size     float64
	Leading  float64
	Trailing float64
	// Start is the reference edge offsets are measured from: Leading, or
	// Trailing for a reversed measurement.
	Start float64
}

// Measure reads the element's current bounding box along axis. It never
// caches; layout may change between calls.
func Measure(s dom.Surface, el dom.Element, axis Axis, reverse bool) Extent {
	r := s.Rect(el)
	var e Extent
	if axis == Vertical {
		e = Extent{Size: r.Height, Leading: r.Top(), Trailing: r.Bottom()}
	} else {
		e = Extent{Size: r.Width, Leading: r.Left(), Trailing: r.Right()}
	}
	e.Start = e.Leading
	if reverse {
		e.Start = e.Trailing
	}
	return e
}
