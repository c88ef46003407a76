package hlist

import (
	"typeset/breaker"
	"typeset/element"
	"typeset/units"
)

// hAxis is the breaker.Axis implementation for the horizontal list: it
// measures width, and its GetElementSublist renders one chosen line,
// including the ragged-margin glue the caller's Mode asks for.
type hAxis struct {
	mode Mode
}

func (h hAxis) Measure(e element.Element) units.SP {
	switch v := e.(type) {
	case *element.Discretionary:
		return v.NoBreak.W
	case *element.Glue:
		return v.Size
	case *element.Kern:
		return v.Width
	default:
		return e.Dims().Width
	}
}

func (h hAxis) Stretch(e element.Element) (units.SP, bool) {
	if g, ok := e.(*element.Glue); ok {
		return g.Stretch, g.StretchInfinite
	}
	return 0, false
}

func (h hAxis) Shrink(e element.Element) (units.SP, bool) {
	if g, ok := e.(*element.Glue); ok {
		return g.Shrink, g.ShrinkInfinite
	}
	return 0, false
}

func (h hAxis) DiscretionaryWidth(d *element.Discretionary, side element.BreakSide) units.SP {
	return d.BranchWidth(side)
}

func (h hAxis) MakeOutputBox(content []element.Element, counter int, shift units.SP) element.Element {
	return element.NewHBox(content, shift)
}

func (h hAxis) ExtraIncrement(chunk []element.Element) int {
	return 0
}

// GetElementSublist renders the line spanning [begin, end): a Discretionary
// chosen as the line's leading break contributes its postBreak content, one
// chosen as the trailing break (at the now-excluded index end) contributes
// its preBreak, and a plain Glue that was itself the leading break is
// dropped - the interword space it represents was spent on the break, not
// printed - matching the width correction the breaker's own chunk math
// applies at the same boundary.
func (h hAxis) GetElementSublist(list []element.Element, begin, end int) []element.Element {
	var out []element.Element
	if h.mode == RaggedLeft {
		out = append(out, raggedGlue())
	}
	for i := begin; i < end; i++ {
		e := list[i]
		if d, ok := e.(*element.Discretionary); ok {
			if i == begin {
				out = append(out, d.PostBreak.Children...)
			} else {
				out = append(out, d.NoBreak.Children...)
			}
			continue
		}
		if i == begin && begin > 0 {
			if _, ok := e.(*element.Glue); ok {
				continue
			}
		}
		out = append(out, e)
	}
	if end < len(list) {
		if d, ok := list[end].(*element.Discretionary); ok {
			out = append(out, d.PreBreak.Children...)
		}
	}
	if h.mode == RaggedRight {
		out = append(out, raggedGlue())
	}
	return out
}

// raggedGlue is the ~10pt of extra stretch a ragged margin adds so the
// breaker favors the natural word spacing over forcing the line to the
// full measure.
func raggedGlue() *element.Glue {
	return &element.Glue{Size: 0, Stretch: units.FromPt(10), Horizontal: true}
}

// BreakLines runs the shared breaker over list along the horizontal axis,
// producing one HBox per chosen line.
func (a *Assembler) BreakLines(list []element.Element, measure units.SP) []element.Element {
	return breaker.Break(list, hAxis{mode: a.Opts.Mode}, breaker.DefaultConfig(measure), 0)
}
