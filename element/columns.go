package element

import (
	"typeset/font"
	"typeset/units"
)

// ColumnLayout describes the multi-column region effective from some
// element index forward: N parallel columns separated by Margin, each
// typeset against a narrower measure by the caller before grouping.
type ColumnLayout struct {
	N      int
	Margin units.SP
}

// SingleColumn is the default layout covering index 0 when the caller has
// not configured any column regions.
var SingleColumn = ColumnLayout{N: 1}

// Columns groups a run of vertical-list elements that share a multi-column
// layout into one element occupying the full page text-area width; its
// children were assembled against the narrower per-column measure before
// being grouped here.
type Columns struct {
	Layout   ColumnLayout
	Children []Element
	// Cols keeps the per-column split of Children, which the flat slice
	// alone cannot recover; layout walks Cols, everything that only needs
	// the elements in document order (bookmark collection, page-ref
	// resolution) walks Children.
	Cols     [][]Element
	ColWidth units.SP
	W, H, D  units.SP
}

func (c *Columns) Kind() Kind { return KindColumns }
func (c *Columns) Dims() font.Metrics {
	return font.Metrics{Width: c.W, Height: c.H, Depth: c.D}
}

// NewColumns lays children side by side: width is the full text-area
// measure (columns*colWidth + (columns-1)*margin), height is the tallest
// column's summed child heights plus depths, and depth is zero.
func NewColumns(layout ColumnLayout, columnWidth units.SP, children [][]Element) *Columns {
	c := &Columns{Layout: layout, Cols: children, ColWidth: columnWidth}
	for _, col := range children {
		c.Children = append(c.Children, col...)
		var h, d units.SP
		for _, e := range col {
			m := e.Dims()
			h += m.Height + m.Depth
		}
		c.H = maxSP(c.H, h)
		c.D = maxSP(c.D, d)
	}
	c.W = units.SP(layout.N)*columnWidth + units.SP(maxInt(layout.N-1, 0))*layout.Margin
	return c
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
