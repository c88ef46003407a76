package element

import (
	"typeset/font"
	"typeset/units"
)

// Glue is elastic spacing: a natural size plus stretch/shrink components.
// An infinite stretch or shrink component dominates every finite one in
// the same chunk, matching TeX's "fil" glue order collapsed to a single
// bit since the core never needs more than one order of infinity.
type Glue struct {
	Size            units.SP
	Stretch         units.SP
	StretchInfinite bool
	Shrink          units.SP
	ShrinkInfinite  bool
	Horizontal      bool
}

func (g *Glue) Kind() Kind         { return KindGlue }
func (g *Glue) Dims() font.Metrics { return font.Metrics{} }

// Kern is a rigid offset that, unlike Glue, is never a legal breakpoint by
// itself. Implicit kerns (inserted by the kerning pass) are discarded by
// the breaker exactly like Glue when adjacent to a break; Explicit ones
// (author-specified) are not.
type Kern struct {
	Width    units.SP
	Explicit bool
}

func (k *Kern) Kind() Kind         { return KindKern }
func (k *Kern) Dims() font.Metrics { return font.Metrics{} }

// Penalty marks a point the breaker may (or must, or must not) break at.
// Inf is used as the ± sentinel for "never"/"always" rather than a true
// mathematical infinity so that arithmetic on it (e.g. in demerits) stays
// within int range.
const Inf = 1 << 30

type Penalty struct {
	Cost int
	// EvenPageOnly restricts a forced break to take effect only when the
	// breaker is currently on an even physical page (used by oddPage()).
	EvenPageOnly bool
}

func (p *Penalty) Kind() Kind         { return KindPenalty }
func (p *Penalty) Dims() font.Metrics { return font.Metrics{} }
