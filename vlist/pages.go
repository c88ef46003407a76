package vlist

import "typeset/element"

// infiniteGlue is the vertical analogue of the horizontal end-of-
// paragraph glue: it absorbs whatever room is left at the foot of a page
// so a forced break doesn't stretch the last line to fill it.
func infiniteGlue() *element.Glue {
	return &element.Glue{StretchInfinite: true}
}

// NewPage forces a page break after whatever has been appended so far,
// the vertical-list analogue of TeX's \eject: a no-op on an empty list
// (there is nothing to eject yet), otherwise infinite glue followed by a
// mandatory break.
func (l *List) NewPage() {
	if len(l.Elements) == 0 {
		return
	}
	l.Elements = append(l.Elements,
		infiniteGlue(),
		&element.Penalty{Cost: -element.Inf},
	)
}

// OddPage guarantees the next content appended starts on an odd physical
// page: it offers the breaker a neutral break immediately followed by a
// forced, even-page-only break. When the content ends on an even page the
// forced break closes it directly; when it ends on an odd page the
// neutral break closes it and the forced break then closes one blank
// even page. Either way the following content lands on an odd page. See
// breaker.Break's EvenPageOnly predecessor constraint for how the choice
// is made.
func (l *List) OddPage() {
	l.Elements = append(l.Elements,
		infiniteGlue(),
		&element.Penalty{Cost: 0},
		infiniteGlue(),
		&element.Penalty{Cost: -element.Inf, EvenPageOnly: true},
	)
}
