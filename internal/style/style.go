// Package style computes the inline style properties written onto panes and
// gutters. Every function here is pure.
package style

import (
	"sort"
	"strconv"

	"github.com/mmcdole/splitpane/internal/dom"
)

// Properties maps style property names to values.
type Properties map[string]string

// PaneFunc formats a pane of size percent that reserves gutter pixels for its
// adjoining dividers.
type PaneFunc func(dim string, size, gutter float64, index int) Properties

// GutterFunc formats a divider of gutter pixels.
type GutterFunc func(dim string, gutter float64, index int) Properties

// Calc is the default pane style on calc-capable surfaces.
func Calc(dim string, size, gutter float64, _ int) Properties {
	return Properties{dim: "calc(" + num(size) + "% - " + num(gutter) + "px)"}
}

// Bare is the pane style for surfaces without calc support.
func Bare(dim string, size, _ float64, _ int) Properties {
	return Properties{dim: num(size) + "%"}
}

// Flex sizes the pane through flex-basis for flexbox containers.
func Flex(dim string, size, gutter float64, _ int) Properties {
	return Properties{"flex-basis": "calc(" + num(size) + "% - " + num(gutter) + "px)"}
}

// Gutter is the default divider style.
func Gutter(dim string, gutter float64, _ int) Properties {
	return Properties{dim: num(gutter) + "px"}
}

// Default returns the pane style matching the surface's capabilities.
func Default(caps dom.Capabilities) PaneFunc {
	if caps.Calc {
		return Calc
	}
	return Bare
}

// Apply writes props onto el in key order.
func Apply(s dom.Surface, el dom.Element, props Properties) {
	for _, k := range props.keys() {
		s.SetStyle(el, k, props[k])
	}
}

// Clear resets every property named in props on el.
func Clear(s dom.Surface, el dom.Element, props Properties) {
	for _, k := range props.keys() {
		s.SetStyle(el, k, "")
	}
}

func (p Properties) keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
