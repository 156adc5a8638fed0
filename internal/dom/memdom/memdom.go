// Package memdom is a headless dom.Surface. It keeps an element tree in memory,
// lays children out along a single flex axis and dispatches events with
// bubbling to a window target.
package memdom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mmcdole/splitpane/internal/dom"
)

// Node is an element of a Document.
type Node struct {
	id       string
	tag      string
	named    bool
	parent   *Node
	children []*Node
	style    map[string]string
	attrs    map[string]string
	handlers map[dom.EventType][]*registration
	rect     dom.Rect
}

type registration struct {
	h       dom.Handler
	removed bool
}

// ID implements dom.Element.
func (n *Node) ID() string { return n.id }

// Tag returns the element's tag name.
func (n *Node) Tag() string { return n.tag }

func (n *Node) String() string { return fmt.Sprintf("<%s #%s>", n.tag, n.id) }

// Document is an in-memory element tree sized to a viewport.
type Document struct {
	window   *Node
	body     *Node
	byID     map[string]*Node
	caps     dom.Capabilities
	viewport dom.Rect
	dirty    bool
	seq      int
}

var _ dom.Surface = (*Document)(nil)
var _ dom.Enumerator = (*Document)(nil)

// New returns an empty document whose body fills a width x height viewport.
func New(width, height float64) *Document {
	d := &Document{
		byID:     make(map[string]*Node),
		caps:     dom.Modern,
		viewport: dom.Rect{Width: width, Height: height},
		dirty:    true,
	}
	d.window = d.newNode("window", "window")
	d.body = d.newNode("body", "body")
	return d
}

func (d *Document) newNode(tag, id string) *Node {
	return &Node{
		id:       id,
		tag:      tag,
		style:    make(map[string]string),
		attrs:    make(map[string]string),
		handlers: make(map[dom.EventType][]*registration),
	}
}

// SetCapabilities overrides the capabilities reported to splitters.
func (d *Document) SetCapabilities(c dom.Capabilities) {
	d.caps = c
	d.dirty = true
}

// Resize changes the viewport size.
func (d *Document) Resize(width, height float64) {
	d.viewport = dom.Rect{Width: width, Height: height}
	d.dirty = true
}

// Append creates a named element and appends it to parent (the body when nil).
// It panics when the id is already taken.
func (d *Document) Append(parent dom.Element, tag, id string) *Node {
	if _, ok := d.byID[id]; ok {
		panic(fmt.Sprintf("memdom: duplicate id %q", id))
	}
	n := d.newNode(tag, id)
	n.named = true
	d.byID[id] = n
	p := d.body
	if parent != nil {
		p = d.node(parent)
	}
	d.InsertBefore(p, n, nil)
	return n
}

// Children returns the element's children in document order.
func (d *Document) Children(el dom.Element) []*Node {
	n := d.node(el)
	if n == nil {
		return nil
	}
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Attribute returns an attribute previously set with SetAttribute.
func (d *Document) Attribute(el dom.Element, name string) string {
	if n := d.node(el); n != nil {
		return n.attrs[name]
	}
	return ""
}

func (d *Document) node(el dom.Element) *Node {
	n, _ := el.(*Node)
	return n
}

// Query implements dom.Surface. Only id selectors are understood.
func (d *Document) Query(selector string) (dom.Element, bool) {
	id, ok := strings.CutPrefix(selector, "#")
	if !ok {
		return nil, false
	}
	n, ok := d.byID[id]
	if !ok || !d.attached(n) {
		return nil, false
	}
	return n, true
}

// ElementIDs implements dom.Enumerator.
func (d *Document) ElementIDs() []string {
	ids := make([]string, 0, len(d.byID))
	for id, n := range d.byID {
		if d.attached(n) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func (d *Document) attached(n *Node) bool {
	for p := n; p != nil; p = p.parent {
		if p == d.body {
			return true
		}
	}
	return false
}

// CreateElement implements dom.Surface. The element stays detached until
// inserted.
func (d *Document) CreateElement(tag string) dom.Element {
	d.seq++
	return d.newNode(tag, fmt.Sprintf("%s-%d", tag, d.seq))
}

func (d *Document) Parent(el dom.Element) dom.Element {
	n := d.node(el)
	if n == nil || n.parent == nil {
		return nil
	}
	return n.parent
}

// InsertBefore implements dom.Surface. A nil ref appends.
func (d *Document) InsertBefore(parent, child, ref dom.Element) {
	p, c := d.node(parent), d.node(child)
	if p == nil || c == nil {
		return
	}
	if c.parent != nil {
		d.RemoveChild(c.parent, c)
	}
	idx := len(p.children)
	if r := d.node(ref); r != nil {
		for i, ch := range p.children {
			if ch == r {
				idx = i
				break
			}
		}
	}
	p.children = append(p.children, nil)
	copy(p.children[idx+1:], p.children[idx:])
	p.children[idx] = c
	c.parent = p
	d.dirty = true
}

func (d *Document) RemoveChild(parent, child dom.Element) {
	p, c := d.node(parent), d.node(child)
	if p == nil || c == nil || c.parent != p {
		return
	}
	for i, ch := range p.children {
		if ch == c {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	c.parent = nil
	c.rect = dom.Rect{}
	d.dirty = true
}

func (d *Document) SetAttribute(el dom.Element, name, value string) {
	if n := d.node(el); n != nil {
		n.attrs[name] = value
	}
}

func (d *Document) Body() dom.Element   { return d.body }
func (d *Document) Window() dom.Element { return d.window }

func (d *Document) Style(el dom.Element, prop string) string {
	if n := d.node(el); n != nil {
		return n.style[prop]
	}
	return ""
}

// SetStyle implements dom.Surface. An empty value removes the property.
func (d *Document) SetStyle(el dom.Element, prop, value string) {
	n := d.node(el)
	if n == nil {
		return
	}
	if value == "" {
		delete(n.style, prop)
	} else {
		n.style[prop] = value
	}
	d.dirty = true
}

// Styles returns a copy of the element's inline style.
func (d *Document) Styles(el dom.Element) map[string]string {
	out := make(map[string]string)
	if n := d.node(el); n != nil {
		for k, v := range n.style {
			out[k] = v
		}
	}
	return out
}

func (d *Document) Flow(el dom.Element) dom.Flow {
	n := d.node(el)
	if n == nil {
		return dom.FlowRow
	}
	switch f := dom.Flow(n.style["flex-direction"]); f {
	case dom.FlowRowReverse, dom.FlowColumn, dom.FlowColumnReverse:
		return f
	}
	return dom.FlowRow
}

func (d *Document) Capabilities() dom.Capabilities { return d.caps }

func (d *Document) Rect(el dom.Element) dom.Rect {
	n := d.node(el)
	if n == nil {
		return dom.Rect{}
	}
	d.layout()
	return n.rect
}
