package hlist

import (
	"typeset/font"
	"typeset/units"
)

// testFont is a minimal SizedFont double shared by the stage tests, built
// the same way the font package's own tests stub out a back-end.
type testFont struct {
	chars map[rune]font.Metrics
	space units.SP
	kerns map[[2]rune]units.SP
	ligs  map[string]string
}

func (f *testFont) HasCharacter(cp rune) bool { _, ok := f.chars[cp]; return ok }
func (f *testFont) SpaceWidth() units.SP { return f.space }
func (f *testFont) CharacterMetrics(cp rune) font.Metrics {
	return f.chars[cp]
}
func (f *testFont) StringMetrics(s string) font.Metrics {
	var m font.Metrics
	for _, r := range s {
		m.Width += f.chars[r].Width
	}
	return m
}
func (f *testFont) Kerning(prev, curr rune) units.SP {
	if prev == 0 || curr == 0 {
		return 0
	}
	return f.kerns[[2]rune{prev, curr}]
}
func (f *testFont) TransformLigatures(s string) string {
	if out, ok := f.ligs[s]; ok {
		return out
	}
	return s
}
func (f *testFont) Draw(string, units.SP, units.SP, font.Sink) error { return nil }

func newStubFont() *testFont {
	chars := map[rune]font.Metrics{}
	for _, r := range "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		chars[r] = font.Metrics{Width: units.FromPt(5)}
	}
	return &testFont{chars: chars, space: units.FromPt(3)}
}
