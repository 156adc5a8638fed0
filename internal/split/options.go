package split

import (
	"io"
	"log/slog"

	"github.com/mmcdole/splitpane/internal/dom"
	"github.com/mmcdole/splitpane/internal/geometry"
	"github.com/mmcdole/splitpane/internal/style"
)

// Direction is the axis panes are laid out along.
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

func (d Direction) axis() geometry.Axis {
	if d == Vertical {
		return geometry.Vertical
	}
	return geometry.Horizontal
}

// Option defaults
const (
	DefaultMinSize    = 100
	DefaultGutterSize = 10
	DefaultSnapOffset = 30
)

// GutterFactory creates the divider placed before pane index.
type GutterFactory func(index int, direction Direction) dom.Element

// Options configures a Splitter. Start from DefaultOptions and adjust with
// the With* helpers.
type Options struct {
	// Sizes are the initial pane percentages; nil splits evenly.
	Sizes []float64
	// MinSize is broadcast to every pane unless MinSizes is set.
	MinSize  float64
	MinSizes []float64

	GutterSize float64
	SnapOffset float64
	// DragInterval rounds drag offsets to multiples of itself when above 1.
	DragInterval float64

	// PushablePanes lets a drag past the pair's edge push the neighboring
	// divider along.
	PushablePanes bool

	Direction Direction
	// Cursor defaults to col-resize or row-resize by direction.
	Cursor string

	Gutter      GutterFactory
	PaneStyle   style.PaneFunc
	GutterStyle style.GutterFunc

	OnDrag      func()
	OnDragStart func()
	OnDragEnd   func()

	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the option set used when nothing is overridden.
// Surface-dependent fields (Gutter, PaneStyle) stay nil and are filled when
// the splitter is built.
func DefaultOptions() Options {
	return Options{
		MinSize:     DefaultMinSize,
		GutterSize:  DefaultGutterSize,
		SnapOffset:  DefaultSnapOffset,
		Direction:   Horizontal,
		GutterStyle: style.Gutter,
		OnDrag:      func() {},
		OnDragStart: func() {},
		OnDragEnd:   func() {},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func WithSizes(sizes ...float64) Option {
	return func(o *Options) { o.Sizes = append([]float64(nil), sizes...) }
}

func WithMinSize(px float64) Option {
	return func(o *Options) { o.MinSize = px }
}

func WithMinSizes(px ...float64) Option {
	return func(o *Options) { o.MinSizes = append([]float64(nil), px...) }
}

func WithGutterSize(px float64) Option {
	return func(o *Options) { o.GutterSize = px }
}

func WithSnapOffset(px float64) Option {
	return func(o *Options) { o.SnapOffset = px }
}

func WithDragInterval(px float64) Option {
	return func(o *Options) { o.DragInterval = px }
}

func WithPushablePanes(enabled bool) Option {
	return func(o *Options) { o.PushablePanes = enabled }
}

func WithDirection(d Direction) Option {
	return func(o *Options) { o.Direction = d }
}

func WithCursor(cursor string) Option {
	return func(o *Options) { o.Cursor = cursor }
}

func WithGutter(f GutterFactory) Option {
	return func(o *Options) { o.Gutter = f }
}

func WithPaneStyle(f style.PaneFunc) Option {
	return func(o *Options) { o.PaneStyle = f }
}

func WithGutterStyle(f style.GutterFunc) Option {
	return func(o *Options) { o.GutterStyle = f }
}

func OnDrag(f func()) Option {
	return func(o *Options) { o.OnDrag = f }
}

func OnDragStart(f func()) Option {
	return func(o *Options) { o.OnDragStart = f }
}

func OnDragEnd(f func()) Option {
	return func(o *Options) { o.OnDragEnd = f }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// resolve fills surface-dependent defaults and rejects unusable values.
func (o *Options) resolve(s dom.Surface, n int) error {
	switch o.Direction {
	case "":
		o.Direction = Horizontal
	case Horizontal, Vertical:
	default:
		return invalid("direction %q", o.Direction)
	}
	if o.MinSize < 0 || o.GutterSize < 0 || o.SnapOffset < 0 || o.DragInterval < 0 {
		return invalid("negative size (min %v, gutter %v, snap %v, interval %v)",
			o.MinSize, o.GutterSize, o.SnapOffset, o.DragInterval)
	}
	if o.Sizes != nil && len(o.Sizes) != n {
		return invalid("%d sizes for %d panes", len(o.Sizes), n)
	}
	if o.MinSizes != nil && len(o.MinSizes) != n {
		return invalid("%d minimum sizes for %d panes", len(o.MinSizes), n)
	}
	for _, m := range o.MinSizes {
		if m < 0 {
			return invalid("negative minimum size %v", m)
		}
	}

	if o.Cursor == "" {
		o.Cursor = o.Direction.axis().Cursor()
	}
	if o.PaneStyle == nil {
		o.PaneStyle = style.Default(s.Capabilities())
	}
	if o.GutterStyle == nil {
		o.GutterStyle = style.Gutter
	}
	if o.Gutter == nil {
		o.Gutter = func(int, Direction) dom.Element {
			el := s.CreateElement("div")
			s.SetAttribute(el, "class", "gutter gutter-"+string(o.Direction))
			return el
		}
	}
	noop := func() {}
	if o.OnDrag == nil {
		o.OnDrag = noop
	}
	if o.OnDragStart == nil {
		o.OnDragStart = noop
	}
	if o.OnDragEnd == nil {
		o.OnDragEnd = noop
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return nil
}
