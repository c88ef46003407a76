package element

import "typeset/font"

// ColumnBreak is a zero-size marker the caller inserts between one
// column's content and the next within a multi-column region, so the
// vertical axis's GetElementSublist knows where to split a same-layout
// run into the per-column children a Columns element expects.
type ColumnBreak struct{}

func (ColumnBreak) Kind() Kind         { return KindColumnBreak }
func (ColumnBreak) Dims() font.Metrics { return font.Metrics{} }

// ImageBreak is a zero-size marker noting that the chunk it rides in
// carries Pages additional whole-page images, so the vertical axis's
// ExtraIncrement can advance the physical page counter past them.
type ImageBreak struct {
	Pages int
}

func (i *ImageBreak) Kind() Kind         { return KindImageBreak }
func (i *ImageBreak) Dims() font.Metrics { return font.Metrics{} }
