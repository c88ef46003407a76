// Package font specifies the engine's contract with the font back-end: a
// Font produces a SizedFont for a given point size, and a SizedFont answers
// the metrics, ligature and kerning questions the assemblers need. Actual
// glyph outlines, OpenType parsing and rasterization live outside this
// package entirely - font.Font is an interface the book application
// satisfies however it likes (FreeType, go-text/typesetting, a test double).
package font

import (
	"typeset/errs"
	"typeset/units"
)

// Variant selects which face of a type family to use. These are the style
// flags a TextSpan carries from the source parser.
type Variant int

const (
	VariantRegular Variant = iota
	VariantBold
	VariantItalic
	VariantBoldItalic
	VariantSmallCaps
	VariantCode
)

func (v Variant) String() string {
	switch v {
	case VariantRegular:
		return "regular"
	case VariantBold:
		return "bold"
	case VariantItalic:
		return "italic"
	case VariantBoldItalic:
		return "bold-italic"
	case VariantSmallCaps:
		return "small-caps"
	case VariantCode:
		return "code"
	default:
		return "variant(?)"
	}
}

// Metrics is the triple every glyph and string measurement returns.
type Metrics struct {
	Width, Height, Depth units.SP
}

// Sink is the back-end drawing surface. It is never exercised by the
// breaking algorithms themselves - only by SizedFont.Draw, which the core
// calls through this seam rather than on any concrete PDF/rasterizer type.
type Sink interface {
	DrawGlyphs(s string, x, y units.SP)
	DrawRule(x, y, w, h units.SP)
}

// SizedFont is a Font at a fixed point size.
type SizedFont interface {
	HasCharacter(cp rune) bool
	SpaceWidth() units.SP
	CharacterMetrics(cp rune) Metrics
	StringMetrics(s string) Metrics
	Kerning(prev, curr rune) units.SP
	TransformLigatures(s string) string
	Draw(s string, x, y units.SP, sink Sink) error
}

// Font is a typeface+variant pair capable of producing a SizedFont at any
// point size. Concrete implementations are supplied by the caller; Font
// loading itself is the caller's responsibility (see Manager).
type Font interface {
	Sized(size units.SP) SizedFont
}

// failover composes a primary and a fallback SizedFont, delegating each
// code point to whichever reports HasCharacter. SpaceWidth always comes
// from the primary.
type failover struct {
	primary, fallback SizedFont
}

// NewFailover returns a SizedFont that tries primary first and falls back to
// fallback for code points primary does not support. fallback may be nil,
// in which case the result behaves exactly like primary.
func NewFailover(primary, fallback SizedFont) SizedFont {
	return &failover{primary: primary, fallback: fallback}
}

func (f *failover) HasCharacter(cp rune) bool {
	return f.primary.HasCharacter(cp) || (f.fallback != nil && f.fallback.HasCharacter(cp))
}

func (f *failover) SpaceWidth() units.SP { return f.primary.SpaceWidth() }

// which returns whichever constituent font actually supports cp, nil if
// neither does.
func (f *failover) which(cp rune) SizedFont {
	if f.primary.HasCharacter(cp) {
		return f.primary
	}
	if f.fallback != nil && f.fallback.HasCharacter(cp) {
		return f.fallback
	}
	return nil
}

func (f *failover) CharacterMetrics(cp rune) Metrics {
	if sf := f.which(cp); sf != nil {
		return sf.CharacterMetrics(cp)
	}
	return Metrics{}
}

func (f *failover) StringMetrics(s string) Metrics {
	var m Metrics
	for _, r := range s {
		cm := f.CharacterMetrics(r)
		m.Width += cm.Width
		m.Height = units.Max(m.Height, cm.Height)
		m.Depth = units.Max(m.Depth, cm.Depth)
	}
	return m
}

// Kerning returns 0 when either code point is 0; every other pair,
// including one involving a code point only the fallback supports, is
// looked up in the primary's table.
func (f *failover) Kerning(prev, curr rune) units.SP {
	if prev == 0 || curr == 0 {
		return 0
	}
	return f.primary.Kerning(prev, curr)
}

func (f *failover) TransformLigatures(s string) string {
	return f.primary.TransformLigatures(s)
}

func (f *failover) Draw(s string, x, y units.SP, sink Sink) error {
	for _, r := range s {
		sf := f.which(r)
		if sf == nil {
			return errs.Renderf("FailoverFont.Draw", "no constituent font supports U+%04X", r)
		}
		if err := sf.Draw(string(r), x, y, sink); err != nil {
			return err
		}
	}
	return nil
}
