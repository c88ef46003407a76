package hlist

import (
	"strings"
	"unicode"

	"typeset/element"
	"typeset/font"
	"typeset/span"
	"typeset/units"
)

// isWordRune reports whether r belongs to a "word" run for the purposes
// of stage 1 splitting and stage 2 hyphenation eligibility: a Unicode
// letter, or one of the three punctuation marks that can appear inside a
// hyphenatable word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '-' || r == '\'' || r == '’'
}

// words runs stage 1 over every span of a block: TextSpans are split into
// word/non-word Text runs plus space and no-break-space Glue; the
// non-text span kinds become their element-model counterparts directly.
func (a *Assembler) words(spans []span.Span) []element.Element {
	var out []element.Element
	for _, sp := range spans {
		switch v := sp.(type) {
		case *span.Text:
			out = append(out, a.wordsFromText(v.Value, v.Style)...)
		case *span.Image:
			out = append(out, &element.Rule{Width: v.Width, Height: v.Height, Depth: v.Depth})
		case *span.Footnote:
			inner := a.AssembleParagraph(v.Block)
			out = append(out, element.NewFootnoteBookmark(inner))
		case *span.Label:
			out = append(out, element.NewLabelBookmark(v.Name))
		case *span.Index:
			out = append(out, element.NewIndexBookmark(v.Entries))
		case *span.PageRef:
			out = append(out, element.NewPageRefBookmark(v.Name, v.Style))
		}
	}
	return out
}

// wordsFromText implements the word-splitting scan: maximal
// word/non-word runs become Text elements, plain spaces become breakable
// Glue (or are dropped under NoLineBreaks), and U+00A0/U+202F become an
// unbreakable-but-elastic Penalty+Glue pair.
func (a *Assembler) wordsFromText(text string, style font.Variant) []element.Element {
	f := a.Fonts.lookup(style)
	var out []element.Element
	var buf strings.Builder
	var bufIsWord bool

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		out = append(out, element.NewText(buf.String(), f))
		buf.Reset()
	}

	for _, r := range text {
		switch {
		case r == ' ':
			flush()
			if !a.Opts.NoLineBreaks {
				out = append(out, spaceGlue(f, a.Opts.Mode, false))
			}
		case r == '\u00A0' || r == '\u202F':
			flush()
			out = append(out, &element.Penalty{Cost: element.Inf})
			out = append(out, spaceGlue(f, a.Opts.Mode, r == '\u202F'))
		default:
			w := isWordRune(r)
			if buf.Len() > 0 && w != bufIsWord {
				flush()
			}
			bufIsWord = w
			buf.WriteRune(r)
		}
	}
	flush()
	return out
}

// spaceGlue builds the space Glue (or, thin=true, the U+202F thin
// no-break-space variant sized at half the ordinary space). Stretch and shrink are
// zeroed outside justified mode, where lines keep their natural spacing.
func spaceGlue(f font.SizedFont, mode Mode, thin bool) *element.Glue {
	size := f.SpaceWidth()
	if thin {
		size /= 2
	}
	var s units.SP
	if mode == Justified {
		s = 1
	}
	return &element.Glue{
		Size:       size,
		Stretch:    size / 2 * s,
		Shrink:     size / 3 * s,
		Horizontal: true,
	}
}
