package vlist

import (
	"typeset/breaker"
	"typeset/element"
	"typeset/units"
)

// vAxis is the breaker.Axis implementation for the vertical list: it
// measures height+depth, materializes Pages, and groups multi-column
// runs into element.Columns.
type vAxis struct {
	geometry Geometry
	columns  *ColumnRegistry
}

func (v vAxis) Measure(e element.Element) units.SP {
	switch v := e.(type) {
	case *element.Discretionary:
		// Discretionaries never appear on the vertical axis; the zero
		// value is the only sane answer if one ever did.
		return 0
	case *element.Glue:
		return v.Size
	case *element.Kern:
		return v.Width
	default:
		m := e.Dims()
		return m.Height + m.Depth
	}
}

func (v vAxis) Stretch(e element.Element) (units.SP, bool) {
	if g, ok := e.(*element.Glue); ok {
		return g.Stretch, g.StretchInfinite
	}
	return 0, false
}

func (v vAxis) Shrink(e element.Element) (units.SP, bool) {
	if g, ok := e.(*element.Glue); ok {
		return g.Shrink, g.ShrinkInfinite
	}
	return 0, false
}

// DiscretionaryWidth never applies on the vertical axis; the horizontal
// list resolves all Discretionaries into plain Text before a line ever
// reaches here.
func (v vAxis) DiscretionaryWidth(d *element.Discretionary, side element.BreakSide) units.SP {
	return 0
}

func (v vAxis) MakeOutputBox(content []element.Element, counter int, shift units.SP) element.Element {
	return &element.Page{Children: content, Number: counter, BaselineShift: shift}
}

// ExtraIncrement sums the whole-page advances ImageBreak markers record
// in this chunk, letting a page of sibling whole-page figures advance the
// physical page counter past them.
func (v vAxis) ExtraIncrement(chunk []element.Element) int {
	n := 0
	for _, e := range chunk {
		if ib, ok := e.(*element.ImageBreak); ok {
			n += ib.Pages
		}
	}
	return n
}

// GetElementSublist returns the elements materializing one page: a
// single-column stretch is flattened via breaker.Sublist; a stretch whose
// ColumnRegistry layout (looked up at begin) has
// more than one column is instead split on element.ColumnBreak markers
// into per-column children and grouped into one element.Columns spanning
// the full text width.
func (v vAxis) GetElementSublist(list []element.Element, begin, end int) []element.Element {
	layout := v.columns.LayoutAt(begin)
	if layout.N <= 1 {
		return breaker.Sublist(list, begin, end)
	}

	flat := breaker.Sublist(list, begin, end)
	var cols [][]element.Element
	var cur []element.Element
	for _, e := range flat {
		if _, ok := e.(*element.ColumnBreak); ok {
			cols = append(cols, cur)
			cur = nil
			continue
		}
		cur = append(cur, e)
	}
	cols = append(cols, cur)

	return []element.Element{element.NewColumns(layout, v.geometry.ColumnWidth(), cols)}
}

// BreakPages runs the shared breaker over list along the vertical axis,
// producing one Page per chosen break. startPage seeds the physical page
// counter (ordinarily 1).
func BreakPages(list []element.Element, geometry Geometry, columns *ColumnRegistry, startPage int) []element.Element {
	cfg := breaker.DefaultConfig(units.SP(geometry.PageHeight))
	return breaker.Break(list, vAxis{geometry: geometry, columns: columns}, cfg, startPage)
}
