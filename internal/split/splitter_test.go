package split

import (
	"errors"
	"testing"

	"github.com/mmcdole/splitpane/internal/dom"
	"github.com/mmcdole/splitpane/internal/dom/memdom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-6

// newDoc builds a document whose body holds one container with the given
// panes as children.
func newDoc(width float64, ids ...string) (*memdom.Document, *memdom.Node) {
	d := memdom.New(width, 100)
	c := d.Append(nil, "div", "container")
	for _, id := range ids {
		d.Append(c, "div", id)
	}
	return d, c
}

func selectors(ids ...string) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = "#" + id
	}
	return out
}

func width(d *memdom.Document, id string) float64 {
	el, ok := d.Query("#" + id)
	if !ok {
		return -1
	}
	return d.Rect(el).Width
}

func TestNew_EqualSplit(t *testing.T) {
	d, c := newDoc(410, "a", "b")

	sp, err := New(d, selectors("a", "b"))
	require.NoError(t, err)

	assert.Equal(t, []float64{50, 50}, sp.Sizes())
	children := d.Children(c)
	require.Len(t, children, 3, "one gutter between two panes")
	assert.Equal(t, "a", children[0].ID())
	assert.Equal(t, "gutter gutter-horizontal", d.Attribute(children[1], "class"))
	assert.Equal(t, "b", children[2].ID())

	assert.Equal(t, "calc(50% - 5px)", d.Style(children[0], "width"))
	assert.Equal(t, "10px", d.Style(children[1], "width"))
	assert.InDelta(t, 200, width(d, "a"), delta)
	assert.InDelta(t, 200, width(d, "b"), delta)
}

func TestNew_Sizes(t *testing.T) {
	tests := []struct {
		name  string
		panes []string
		opts  []Option
		want  []float64
	}{
		{"two_default", []string{"a", "b"}, nil, []float64{50, 50}},
		{"three_default", []string{"a", "b", "c"}, nil, []float64{100.0 / 3, 100.0 / 3, 100.0 / 3}},
		{"explicit", []string{"a", "b", "c"}, []Option{WithSizes(20, 30, 50)}, []float64{20, 30, 50}},
		{"single", []string{"a"}, nil, []float64{100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newDoc(1000, tt.panes...)
			sp, err := New(d, selectors(tt.panes...), append(tt.opts, WithMinSize(10))...)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, sp.Sizes(), delta)
		})
	}
}

func TestNew_GutterAllowances(t *testing.T) {
	d, _ := newDoc(620, "a", "b", "c")
	_, err := New(d, selectors("a", "b", "c"), WithMinSize(10))
	require.NoError(t, err)

	a, _ := d.Query("#a")
	b, _ := d.Query("#b")
	cc, _ := d.Query("#c")
	assert.Equal(t, "calc(33.333333333333336% - 5px)", d.Style(a, "width"))
	assert.Equal(t, "calc(33.333333333333336% - 10px)", d.Style(b, "width"))
	assert.Equal(t, "calc(33.333333333333336% - 5px)", d.Style(cc, "width"))

	total := width(d, "a") + width(d, "b") + width(d, "c") + 2*DefaultGutterSize
	assert.InDelta(t, 620, total, delta, "panes and gutters fill the parent")
}

func TestNew_SinglePane(t *testing.T) {
	d, c := newDoc(300, "a")

	sp, err := New(d, selectors("a"))
	require.NoError(t, err)

	assert.Empty(t, sp.Pairs())
	assert.Len(t, d.Children(c), 1)
	assert.InDelta(t, 300, width(d, "a"), delta)

	sp.Collapse(0)
	assert.Equal(t, []float64{100}, sp.Sizes())
	sp.Destroy()
}

func TestNew_MissingSelectorIsAtomic(t *testing.T) {
	d, c := newDoc(400, "a", "b")

	_, err := New(d, selectors("a", "b", "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrElementNotFound))

	var nf *ElementNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "#missing", nf.Selector)

	assert.Len(t, d.Children(c), 2, "no gutter inserted")
	a, _ := d.Query("#a")
	assert.Empty(t, d.Style(a, "width"), "no pane styled")
}

func TestNew_MissingSelectorSuggestions(t *testing.T) {
	d, _ := newDoc(400, "left-pane", "right-pane")

	_, err := New(d, []any{"#left", "#right-pane"})

	var nf *ElementNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Contains(t, nf.Suggestions, "#left-pane")
	assert.Contains(t, err.Error(), "did you mean")
}

func TestNew_ElementIDs(t *testing.T) {
	d, _ := newDoc(400, "a", "b")
	a, _ := d.Query("#a")

	sp, err := New(d, []any{a, "#b"}, WithMinSize(10))
	require.NoError(t, err)
	assert.Len(t, sp.Pairs(), 1)
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		ids  []any
		opts []Option
	}{
		{"no_panes", nil, nil},
		{"sizes_length", selectors("a", "b"), []Option{WithSizes(100)}},
		{"min_sizes_length", selectors("a", "b"), []Option{WithMinSizes(1, 2, 3)}},
		{"negative_gutter", selectors("a", "b"), []Option{WithGutterSize(-1)}},
		{"negative_min", selectors("a", "b"), []Option{WithMinSizes(10, -1)}},
		{"bad_direction", selectors("a", "b"), []Option{WithDirection("diagonal")}},
		{"bad_id_type", []any{42, "#b"}, nil},
		{"nil_id", []any{nil, "#b"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newDoc(400, "a", "b")
			_, err := New(d, tt.ids, tt.opts...)
			assert.ErrorIs(t, err, ErrInvalidOption)
		})
	}
}

func TestNew_MinSizeClampedToMeasured(t *testing.T) {
	d, _ := newDoc(210, "a", "b")

	sp, err := New(d, selectors("a", "b"), WithMinSizes(300, 50))
	require.NoError(t, err)

	mins := sp.MinSizes()
	assert.InDelta(t, 100, mins[0], delta, "clamped to the rendered size")
	assert.Equal(t, 50.0, mins[1])
}

func TestNew_CustomGutterAndStyles(t *testing.T) {
	d, c := newDoc(400, "a", "b")
	var created []int

	_, err := New(d, selectors("a", "b"),
		WithMinSize(10),
		WithGutter(func(i int, dir Direction) dom.Element {
			created = append(created, i)
			el := d.CreateElement("span")
			d.SetAttribute(el, "class", "handle-"+string(dir))
			return el
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, []int{1}, created)
	children := d.Children(c)
	require.Len(t, children, 3)
	assert.Equal(t, "span", children[1].Tag())
	assert.Equal(t, "handle-horizontal", d.Attribute(children[1], "class"))
}

func TestNew_DegradedSurface(t *testing.T) {
	tests := []struct {
		name  string
		caps  dom.Capabilities
		style string
	}{
		{"no_events", dom.Capabilities{Calc: true}, "calc(50% - 5px)"},
		{"legacy", dom.Capabilities{}, "50%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, c := newDoc(400, "a", "b")
			d.SetCapabilities(tt.caps)

			sp, err := New(d, selectors("a", "b"), WithMinSize(10))
			require.NoError(t, err)

			assert.Len(t, d.Children(c), 2, "no gutters without events")
			a, _ := d.Query("#a")
			assert.Equal(t, tt.style, d.Style(a, "width"))

			sp.SetSizes([]float64{30, 70})
			assert.Equal(t, []float64{30, 70}, sp.Sizes())

			sp.Collapse(0)
			assert.Equal(t, []float64{30, 70}, sp.Sizes(), "collapse needs drag support")

			sp.Destroy()
			assert.Empty(t, d.Style(a, "width"))
		})
	}
}

func TestSetSizes(t *testing.T) {
	d, c := newDoc(410, "a", "b")
	sp, err := New(d, selectors("a", "b"), WithMinSize(10))
	require.NoError(t, err)

	sp.SetSizes([]float64{25, 75, 99})

	assert.Equal(t, []float64{25, 75}, sp.Sizes())
	a, _ := d.Query("#a")
	assert.Equal(t, "calc(25% - 5px)", d.Style(a, "width"))
	assert.Len(t, d.Children(c), 3, "gutters stay where they are in the tree")

	sp.SetSizes([]float64{40, 40})
	assert.Equal(t, []float64{40, 40}, sp.Sizes(), "sum is the caller's business")
}

func TestCollapse(t *testing.T) {
	tests := []struct {
		name    string
		panes   []string
		index   int
		minPane string
	}{
		{"first", []string{"a", "b"}, 0, "a"},
		{"last_by_pair_count", []string{"a", "b"}, 1, "b"},
		{"middle", []string{"a", "b", "c"}, 1, "b"},
		{"last_of_three", []string{"a", "b", "c"}, 2, "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newDoc(620, tt.panes...)
			sp, err := New(d, selectors(tt.panes...), WithMinSize(50))
			require.NoError(t, err)
			before := sum(sp.Sizes())

			sp.Collapse(tt.index)

			assert.InDelta(t, 50, width(d, tt.minPane), delta)
			assert.InDelta(t, before, sum(sp.Sizes()), delta)
		})
	}
}

func TestCollapse_OutOfRange(t *testing.T) {
	d, _ := newDoc(410, "a", "b")
	sp, err := New(d, selectors("a", "b"), WithMinSize(50))
	require.NoError(t, err)

	sp.Collapse(-1)
	sp.Collapse(2)
	assert.Equal(t, []float64{50, 50}, sp.Sizes())
}

func TestCollapse_ReversedFlow(t *testing.T) {
	d, c := newDoc(410, "a", "b")
	d.SetStyle(c, "flex-direction", "row-reverse")
	sp, err := New(d, selectors("a", "b"), WithMinSize(50))
	require.NoError(t, err)

	sp.Collapse(0)
	assert.InDelta(t, 50, width(d, "a"), delta)

	sp.Collapse(1)
	assert.InDelta(t, 50, width(d, "b"), delta)
}

func TestDestroy(t *testing.T) {
	d, c := newDoc(620, "a", "b", "c")
	for _, id := range []string{"a", "b", "c"} {
		el, _ := d.Query("#" + id)
		d.SetStyle(el, "background", "red")
	}
	sp, err := New(d, selectors("a", "b", "c"), WithMinSize(10))
	require.NoError(t, err)
	require.Len(t, d.Children(c), 5)
	gutter := sp.Pairs()[0].Gutter

	sp.Destroy()

	assert.Len(t, d.Children(c), 3, "both gutters removed")
	for _, id := range []string{"a", "b", "c"} {
		el, _ := d.Query("#" + id)
		assert.Empty(t, d.Style(el, "width"), id)
		assert.Equal(t, "red", d.Style(el, "background"), id)
	}
	assert.Zero(t, d.ListenerCount(gutter, dom.MouseDown))

	sp.SetSizes([]float64{10, 10, 80})
	assert.InDeltaSlice(t, []float64{100.0 / 3, 100.0 / 3, 100.0 / 3}, sp.Sizes(), delta)
	sp.Destroy()
}

func TestDestroyWith_Preserve(t *testing.T) {
	d, c := newDoc(410, "a", "b")
	sp, err := New(d, selectors("a", "b"), WithMinSize(10))
	require.NoError(t, err)
	gutter := sp.Pairs()[0].Gutter

	sp.DestroyWith(DestroyOptions{PreserveStyles: true, PreserveGutters: true})

	assert.Len(t, d.Children(c), 3)
	a, _ := d.Query("#a")
	assert.Equal(t, "calc(50% - 5px)", d.Style(a, "width"))
	assert.Zero(t, d.ListenerCount(gutter, dom.MouseDown))
	assert.Zero(t, d.ListenerCount(gutter, dom.TouchStart))
}

func TestDestroy_DuringDrag(t *testing.T) {
	d, _ := newDoc(410, "a", "b")
	ended := 0
	sp, err := New(d, selectors("a", "b"), WithMinSize(50), OnDragEnd(func() { ended++ }))
	require.NoError(t, err)

	press(d, sp.Pairs()[0].Gutter, 205, 5)
	require.True(t, sp.Dragging())

	sp.Destroy()

	assert.False(t, sp.Dragging())
	assert.Equal(t, 1, ended)
	assert.Empty(t, d.Style(d.Body(), "cursor"))
	assert.Zero(t, d.ListenerCount(d.Window(), dom.MouseMove))
}

func sum(v []float64) float64 {
	total := 0.0
	for _, f := range v {
		total += f
	}
	return total
}
