package split

import "github.com/mmcdole/splitpane/internal/dom"

// dragSession owns everything a drag changes outside the panes' sizes: the
// transient listeners and the cursor, selection and pointer-event styles.
// release undoes all of it, in reverse order, exactly once.
type dragSession struct {
	surface  dom.Surface
	undo     []func()
	released bool
}

func newDragSession(s dom.Surface) *dragSession {
	return &dragSession{surface: s}
}

// setStyle writes a style and records the prior value for release.
func (ds *dragSession) setStyle(el dom.Element, prop, value string) {
	if el == nil {
		return
	}
	prev := ds.surface.Style(el, prop)
	ds.surface.SetStyle(el, prop, value)
	ds.undo = append(ds.undo, func() { ds.surface.SetStyle(el, prop, prev) })
}

// listen registers a handler that lives until release.
func (ds *dragSession) listen(el dom.Element, typ dom.EventType, h dom.Handler) {
	if el == nil {
		return
	}
	ds.undo = append(ds.undo, ds.surface.Listen(el, typ, h))
}

func (ds *dragSession) release() {
	if ds == nil || ds.released {
		return
	}
	ds.released = true
	for i := len(ds.undo) - 1; i >= 0; i-- {
		ds.undo[i]()
	}
	ds.undo = nil
}

func preventDefault(ev *dom.Event) { ev.PreventDefault() }
