// Package hlist implements the horizontal assembler: it turns a
// paragraph's Spans into a hyphenated, ligature-folded, kerned and
// (where needed) bidi-reordered element list ready for the shared
// breaker. Each stage is its own file, applied in this order: words.go,
// hyphenate.go, ligature.go, kern.go, bidi.go.
package hlist

import (
	"typeset/element"
	"typeset/font"
	"typeset/hyphen"
	"typeset/span"
)

// Mode selects how a paragraph's space Glue is sized and how its lines
// are finished.
type Mode int

const (
	Justified Mode = iota
	RaggedLeft
	RaggedRight
)

// Options are the assembler's per-document knobs.
type Options struct {
	Mode Mode
	// NoLineBreaks disables space Glue entirely (stage 1), the way a
	// title or a code span is kept on one line regardless of measure.
	NoLineBreaks bool
	// HyphenPenalty is the Discretionary penalty stage 2 gives every
	// hyphenation point it inserts.
	HyphenPenalty int
}

// DefaultOptions mirrors TeX's conventional \hyphenpenalty of 50.
func DefaultOptions() Options {
	return Options{Mode: Justified, HyphenPenalty: 50}
}

// FontPack supplies one sized font per style flag a TextSpan may carry;
// a style with no entry falls back to VariantRegular.
type FontPack map[font.Variant]font.SizedFont

func (fp FontPack) lookup(v font.Variant) font.SizedFont {
	if sf, ok := fp[v]; ok {
		return sf
	}
	return fp[font.VariantRegular]
}

// Assembler runs the six stages over one paragraph block at a
// time. It holds no per-paragraph state, so one Assembler may process
// many paragraphs (and, via recursion, footnote blocks nested inside
// them) in sequence.
type Assembler struct {
	Fonts   FontPack
	Hyphens *hyphen.Dictionary // nil skips stage 2 entirely
	Opts    Options
}

// New returns an Assembler. hyphens may be nil to disable hyphenation
// (e.g. for a code-styled block, or a language with no loaded pattern
// file).
func New(fonts FontPack, hyphens *hyphen.Dictionary, opts Options) *Assembler {
	return &Assembler{Fonts: fonts, Hyphens: hyphens, Opts: opts}
}

// AssembleParagraph runs all six stages over spans and returns the
// resulting element list, including the trailing end-of-paragraph
// penalties and glue (stage 6) that make the last line a legal forced
// break.
func (a *Assembler) AssembleParagraph(spans []span.Span) []element.Element {
	list := a.words(spans)
	list = a.hyphenate(list)
	list = a.foldLigatures(list)
	list = a.kern(list)
	list = reorderRTL(list)
	list = append(list, endOfParagraph()...)
	return list
}

// endOfParagraph appends the forced break that ends every paragraph:
// Penalty(+inf) prevents a break from being attributed to the paragraph's
// own content, the infinite glue absorbs any leftover line width, and
// Penalty(-inf) forces the actual break.
func endOfParagraph() []element.Element {
	return []element.Element{
		&element.Penalty{Cost: element.Inf},
		&element.Glue{Size: 0, StretchInfinite: true, Horizontal: true},
		&element.Penalty{Cost: -element.Inf},
	}
}
