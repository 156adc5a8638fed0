// Package dom describes the rendering surface a splitter drives: element lookup
// and creation, child insertion, geometry queries, inline style writes and event
// registration. Hosts provide an implementation; memdom is the headless one.
package dom

// Element is an opaque handle to a node owned by a Surface.
type Element interface {
	ID() string
}

// Rect is an element's rendered bounding box in surface pixels.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether the point lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Flow is a container's computed flex direction.
type Flow string

const (
	FlowRow           Flow = "row"
	FlowRowReverse    Flow = "row-reverse"
	FlowColumn        Flow = "column"
	FlowColumnReverse Flow = "column-reverse"
)

// Reversed reports whether children are laid out end to start.
func (f Flow) Reversed() bool {
	return f == FlowRowReverse || f == FlowColumnReverse
}

// Capabilities lists the optional features of a surface.
type Capabilities struct {
	// Events is false on legacy surfaces that cannot register listeners.
	Events bool
	// Calc is false when calc() lengths are not understood.
	Calc bool
}

// Modern is the capability set of any current surface.
var Modern = Capabilities{Events: true, Calc: true}

// Surface is the capability interface a splitter needs from its host.
type Surface interface {
	// Query resolves a selector ("#id") to an element.
	Query(selector string) (Element, bool)
	CreateElement(tag string) Element
	Parent(el Element) Element
	InsertBefore(parent, child, ref Element)
	RemoveChild(parent, child Element)
	SetAttribute(el Element, name, value string)

	// Body is the document-level element whose cursor covers the whole surface.
	Body() Element
	// Window is the global event target every event bubbles to.
	Window() Element

	Rect(el Element) Rect
	Style(el Element, prop string) string
	SetStyle(el Element, prop, value string)
	Flow(el Element) Flow

	// Listen registers h for events of type typ reaching target and returns a
	// function removing the registration.
	Listen(target Element, typ EventType, h Handler) (remove func())

	Capabilities() Capabilities
}

// Enumerator is implemented by surfaces that can list the ids of their
// elements. It is used to suggest alternatives for unresolved selectors.
type Enumerator interface {
	ElementIDs() []string
}
