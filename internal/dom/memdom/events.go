package memdom

import "github.com/mmcdole/splitpane/internal/dom"

// Listen implements dom.Surface.
func (d *Document) Listen(target dom.Element, typ dom.EventType, h dom.Handler) func() {
	n := d.node(target)
	if n == nil || !d.caps.Events {
		return func() {}
	}
	reg := &registration{h: h}
	n.handlers[typ] = append(n.handlers[typ], reg)
	return func() {
		if reg.removed {
			return
		}
		reg.removed = true
		list := n.handlers[typ]
		for i, r := range list {
			if r == reg {
				n.handlers[typ] = append(list[:i], list[i+1:]...)
				break
			}
		}
	}
}

// ListenerCount returns how many handlers of typ are registered on el.
func (d *Document) ListenerCount(el dom.Element, typ dom.EventType) int {
	if n := d.node(el); n != nil {
		return len(n.handlers[typ])
	}
	return 0
}

// Dispatch delivers ev to target, then to each ancestor and finally to the
// window, stopping early when a handler stops propagation. It reports whether
// the default action was prevented.
func (d *Document) Dispatch(target dom.Element, ev *dom.Event) bool {
	n := d.node(target)
	if n == nil {
		n = d.window
	}
	ev.Target = n

	path := make([]*Node, 0, 8)
	for p := n; p != nil; p = p.parent {
		path = append(path, p)
	}
	if path[len(path)-1] != d.window {
		path = append(path, d.window)
	}

	for _, p := range path {
		regs := append([]*registration(nil), p.handlers[ev.Type]...)
		for _, r := range regs {
			if !r.removed {
				r.h(ev)
			}
		}
		if ev.Stopped() {
			break
		}
	}
	return ev.DefaultPrevented()
}

// ElementAt returns the deepest attached element under the point, skipping
// elements whose pointer-events style is "none". The body is returned when
// nothing else matches.
func (d *Document) ElementAt(x, y float64) *Node {
	d.layout()
	if hit := d.hit(d.body, x, y); hit != nil {
		return hit
	}
	return d.body
}

func (d *Document) hit(n *Node, x, y float64) *Node {
	if !n.rect.Contains(x, y) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if h := d.hit(n.children[i], x, y); h != nil {
			return h
		}
	}
	if n.style["pointer-events"] == "none" {
		return nil
	}
	return n
}
