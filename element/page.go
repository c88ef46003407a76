package element

import (
	"typeset/font"
	"typeset/units"
)

// Page is the root element produced by the vertical breaker: one
// paginated screen's worth of content, addressed by its 1-based physical
// number.
type Page struct {
	Children      []Element
	Number        int
	BaselineShift units.SP
}

func (p *Page) Kind() Kind         { return KindPage }
func (p *Page) Dims() font.Metrics { return font.Metrics{} }
