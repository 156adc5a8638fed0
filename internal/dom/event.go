package dom

// EventType names an input event.
type EventType string

const (
	MouseDown   EventType = "mousedown"
	MouseMove   EventType = "mousemove"
	MouseUp     EventType = "mouseup"
	TouchStart  EventType = "touchstart"
	TouchMove   EventType = "touchmove"
	TouchEnd    EventType = "touchend"
	TouchCancel EventType = "touchcancel"
	SelectStart EventType = "selectstart"
	DragStart   EventType = "dragstart"
)

// Mouse buttons
const (
	ButtonPrimary = 0
	ButtonMiddle  = 1
	ButtonRight   = 2
)

// Point is a touch point in surface pixels.
type Point struct {
	X float64
	Y float64
}

// Event is delivered to handlers. Touch events carry their points in Touches;
// mouse events use X and Y.
type Event struct {
	Type    EventType
	X       float64
	Y       float64
	Button  int
	Touches []Point
	Target  Element

	defaultPrevented bool
	stopped          bool
}

// Handler receives events registered with Surface.Listen.
type Handler func(ev *Event)

// PreventDefault suppresses the surface's native behavior for the event.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation keeps the event from bubbling to further ancestors.
func (e *Event) StopPropagation() { e.stopped = true }

// Stopped reports whether a handler called StopPropagation.
func (e *Event) Stopped() bool { return e.stopped }

// IsTouch reports whether the event came from a touch source.
func (e *Event) IsTouch() bool {
	switch e.Type {
	case TouchStart, TouchMove, TouchEnd, TouchCancel:
		return true
	}
	return false
}

// Position returns the pointer position. For touch events only the first
// touch point is honored; ok is false when a touch event carries none.
func (e *Event) Position() (x, y float64, ok bool) {
	if e.IsTouch() {
		if len(e.Touches) == 0 {
			return 0, 0, false
		}
		return e.Touches[0].X, e.Touches[0].Y, true
	}
	return e.X, e.Y, true
}
