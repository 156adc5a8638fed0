package split

import "github.com/mmcdole/splitpane/internal/dom"

// startDragging moves p from idle to dragging on a divider press.
func (s *Splitter) startDragging(p *pair, ev *dom.Event) {
	if !ev.IsTouch() && ev.Button != dom.ButtonPrimary {
		return
	}
	if ev.IsTouch() && len(ev.Touches) == 0 {
		return
	}
	// One pointer, one gesture: a press elsewhere ends any drag still open.
	for _, q := range s.pairs {
		if q != p && q.dragging {
			s.stopDragging(q)
		}
	}

	if !p.dragging {
		s.opts.OnDragStart()
	}
	ev.PreventDefault()
	p.dragging = true
	p.rebased = false

	p.session.release()
	p.session = s.acquire(p)

	s.calculateSizes(p)
	s.log.Debug("drag started", "a", p.a, "b", p.b, "size", p.size, "start", p.start)
}

// acquire opens the drag session for p.
func (s *Splitter) acquire(p *pair) *dragSession {
	ds := newDragSession(s.surface)
	win := s.surface.Window()
	move := func(ev *dom.Event) { s.drag(p, ev) }
	stop := func(*dom.Event) { s.stopDragging(p) }

	ds.listen(win, dom.MouseUp, stop)
	ds.listen(win, dom.TouchEnd, stop)
	ds.listen(win, dom.TouchCancel, stop)
	ds.listen(win, dom.MouseMove, move)
	ds.listen(win, dom.TouchMove, move)

	for _, el := range []dom.Element{s.panes[p.a].el, s.panes[p.b].el} {
		ds.listen(el, dom.SelectStart, preventDefault)
		ds.listen(el, dom.DragStart, preventDefault)
		ds.setStyle(el, "user-select", "none")
		ds.setStyle(el, "pointer-events", "none")
	}

	ds.setStyle(p.gutter, "cursor", s.opts.Cursor)
	ds.setStyle(p.parent, "cursor", s.opts.Cursor)
	ds.setStyle(s.surface.Body(), "cursor", s.opts.Cursor)
	return ds
}

// drag handles one pointer move while p is dragging.
func (s *Splitter) drag(p *pair, ev *dom.Event) {
	if !p.dragging {
		return
	}
	pos, ok := s.axis.Coord(ev)
	if !ok {
		return
	}

	e, offset := s.effective(p, pos)
	offset = s.interval(offset)
	offset = s.snap(e, offset)
	s.adjust(e, offset)

	s.opts.OnDrag()
}

// stopDragging returns p to idle and releases its session.
func (s *Splitter) stopDragging(p *pair) {
	if p.dragging {
		s.opts.OnDragEnd()
		s.log.Debug("drag ended", "a", p.a, "b", p.b, "sizes", s.Sizes())
	}
	p.dragging = false
	p.rebased = false
	p.session.release()
	p.session = nil
}
