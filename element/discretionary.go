package element

import (
	"typeset/font"
	"typeset/units"
)

// Discretionary marks a potential break inside a word: PreBreak is set if
// the break is taken here, PostBreak if the break fell just before this
// element, NoBreak if no break occurred at all. All three are laid out
// with the same font as their surrounding Text, though their widths need
// not agree - a hyphen added by PreBreak is the common case.
type Discretionary struct {
	PreBreak, PostBreak, NoBreak *HBox
	Penalty                      int
}

func (d *Discretionary) Kind() Kind         { return KindDiscretionary }
func (d *Discretionary) Dims() font.Metrics { return font.Metrics{} }

// NewDiscretionary builds the three branch boxes from plain strings set in
// font f, the shape every hyphenation point and every ligature-folded
// discretionary takes.
func NewDiscretionary(pre, post, noBreak string, f font.SizedFont, penalty int) *Discretionary {
	box := func(s string) *HBox {
		if s == "" {
			return NewHBox(nil, 0)
		}
		return NewHBox([]Element{NewText(s, f)}, 0)
	}
	return &Discretionary{
		PreBreak:  box(pre),
		PostBreak: box(post),
		NoBreak:   box(noBreak),
		Penalty:   penalty,
	}
}

// BranchWidth returns the width of the branch taken when breaking At,
// AfterBreak at the previous discretionary's post side, or neither (the
// noBreak branch, the ordinary in-line case).
type BreakSide int

const (
	NoBreakSide BreakSide = iota
	AtBreak
	AfterBreak
)

func (d *Discretionary) BranchWidth(side BreakSide) units.SP {
	switch side {
	case AtBreak:
		return d.PreBreak.W
	case AfterBreak:
		return d.PostBreak.W
	default:
		return d.NoBreak.W
	}
}
