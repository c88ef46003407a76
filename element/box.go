package element

import (
	"typeset/font"
	"typeset/units"
)

// Box is the shared representation behind HBox and VBox: an ordered list
// of children plus intrinsic dimensions computed once by the assembler
// that built it (NewHBox/NewVBox), never recomputed from the children
// afterward.
type Box struct {
	Children []Element
	W, H, D  units.SP
	// Shift is an optional vertical displacement applied when the box is
	// placed into its parent (used by footnote rules and sub/superscript
	// style runs); zero for ordinary lines.
	Shift units.SP
}

// HBox is a line: an ordered row of elements with intrinsic width/height/
// depth, the output of breaking an element list on the horizontal axis.
type HBox struct{ Box }

func (b *HBox) Kind() Kind { return KindHBox }
func (b *HBox) Dims() font.Metrics {
	return font.Metrics{Width: b.W, Height: b.H, Depth: b.D}
}

// VBox stacks elements vertically: a paragraph's lines, or (nested) a
// whole page body before pagination.
type VBox struct{ Box }

func (b *VBox) Kind() Kind { return KindVBox }
func (b *VBox) Dims() font.Metrics {
	return font.Metrics{Width: b.W, Height: b.H, Depth: b.D}
}

// NewHBox sums children widths and takes the max height/depth across
// them, the natural metrics of a row of boxes sitting on a shared
// baseline.
func NewHBox(children []Element, shift units.SP) *HBox {
	b := &HBox{Box{Children: children, Shift: shift}}
	for _, c := range children {
		switch v := c.(type) {
		case *Glue:
			b.W += v.Size
		case *Kern:
			b.W += v.Width
		default:
			m := c.Dims()
			b.W += m.Width
			b.H = maxSP(b.H, m.Height)
			b.D = maxSP(b.D, m.Depth)
		}
	}
	return b
}

// NewVBox sums children heights+depths into a running height and takes
// the width of the widest child.
func NewVBox(children []Element) *VBox {
	b := &VBox{Box{Children: children}}
	for _, c := range children {
		switch v := c.(type) {
		case *Glue:
			b.H += v.Size
		case *Kern:
			b.H += v.Width
		default:
			m := c.Dims()
			b.W = maxSP(b.W, m.Width)
			b.H += m.Height + m.Depth
		}
	}
	return b
}

func maxSP(a, b units.SP) units.SP {
	if a > b {
		return a
	}
	return b
}
