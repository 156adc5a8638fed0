package memdom

import (
	"strconv"
	"strings"

	"github.com/mmcdole/splitpane/internal/dom"
)

// layout recomputes every attached rectangle when the tree or a style changed
// since the last pass.
func (d *Document) layout() {
	if !d.dirty {
		return
	}
	d.dirty = false
	d.place(d.body, d.viewport)
}

func (d *Document) place(n *Node, r dom.Rect) {
	n.rect = r
	if len(n.children) == 0 {
		return
	}

	flow := d.Flow(n)
	horizontal := flow == dom.FlowRow || flow == dom.FlowRowReverse
	dim, avail := "height", r.Height
	if horizontal {
		dim, avail = "width", r.Width
	}

	lengths := make([]float64, len(n.children))
	known := make([]bool, len(n.children))
	used, auto := 0.0, 0
	for i, c := range n.children {
		v, ok := d.length(c, dim, avail)
		if !ok {
			auto++
			continue
		}
		lengths[i], known[i] = v, true
		used += v
	}
	if auto > 0 {
		share := max(0, (avail-used)/float64(auto))
		for i := range lengths {
			if !known[i] {
				lengths[i] = share
			}
		}
	}

	pos := 0.0
	if flow.Reversed() {
		pos = avail
	}
	for i, c := range n.children {
		var start float64
		if flow.Reversed() {
			pos -= lengths[i]
			start = pos
		} else {
			start = pos
			pos += lengths[i]
		}
		cr := dom.Rect{X: r.X, Y: r.Y + start, Width: r.Width, Height: lengths[i]}
		if horizontal {
			cr = dom.Rect{X: r.X + start, Y: r.Y, Width: lengths[i], Height: r.Height}
		}
		d.place(c, cr)
	}
}

// length resolves the child's main-axis length from its inline dimension or,
// failing that, its flex-basis.
func (d *Document) length(n *Node, dim string, avail float64) (float64, bool) {
	if v, ok := parseLength(n.style[dim], avail, d.caps.Calc); ok {
		return v, true
	}
	return parseLength(n.style["flex-basis"], avail, d.caps.Calc)
}

// parseLength understands "Npx", "N", "P%" and, when calc is supported,
// "calc(P% - Npx)" / "calc(P% + Npx)". Unknown values are ignored the way a
// browser drops an invalid declaration.
func parseLength(v string, avail float64, calc bool) (float64, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	if inner, ok := strings.CutPrefix(v, "calc("); ok {
		if !calc {
			return 0, false
		}
		inner, ok = strings.CutSuffix(inner, ")")
		if !ok {
			return 0, false
		}
		return parseCalc(inner, avail)
	}
	return parseTerm(v, avail)
}

func parseCalc(expr string, avail float64) (float64, bool) {
	fields := strings.Fields(expr)
	if len(fields) == 0 || len(fields)%2 == 0 {
		return 0, false
	}
	total, ok := parseTerm(fields[0], avail)
	if !ok {
		return 0, false
	}
	for i := 1; i < len(fields); i += 2 {
		v, ok := parseTerm(fields[i+1], avail)
		if !ok {
			return 0, false
		}
		switch fields[i] {
		case "+":
			total += v
		case "-":
			total -= v
		default:
			return 0, false
		}
	}
	return max(0, total), true
}

func parseTerm(v string, avail float64) (float64, bool) {
	if p, ok := strings.CutSuffix(v, "%"); ok {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false
		}
		return f / 100 * avail, true
	}
	v = strings.TrimSuffix(v, "px")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
