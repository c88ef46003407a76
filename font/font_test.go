package font

import (
	"sync"
	"testing"

	"typeset/units"
)

// testFont is a minimal SizedFont/Font double covering a fixed alphabet,
// letting these tests exercise the contract directly without loading a
// real embedded font resource.
type testFont struct {
	chars map[rune]Metrics
	space units.SP
	kerns map[[2]rune]units.SP
	ligs  map[string]string
}

func (f *testFont) Sized(units.SP) SizedFont { return f }
func (f *testFont) HasCharacter(cp rune) bool { _, ok := f.chars[cp]; return ok }
func (f *testFont) SpaceWidth() units.SP { return f.space }
func (f *testFont) CharacterMetrics(cp rune) Metrics {
	return f.chars[cp]
}
func (f *testFont) StringMetrics(s string) Metrics {
	var m Metrics
	for _, r := range s {
		cm := f.chars[r]
		m.Width += cm.Width
		m.Height = units.Max(m.Height, cm.Height)
		m.Depth = units.Max(m.Depth, cm.Depth)
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
func (f *testFont) Draw(s string, x, y units.SP, sink Sink) error {
	for _, r := range s {
		if !f.HasCharacter(r) {
			return errTestNoGlyph
		}
	}
	return nil
}

var errTestNoGlyph = &testErr{"no glyph"}

type testErr struct{ msg string }

func (e *testErr) Error() string { return e.msg }

func newLatinFont() *testFont {
	return &testFont{
		chars: map[rune]Metrics{
			'a': {Width: units.FromPt(5)},
			'f': {Width: units.FromPt(4)},
			'i': {Width: units.FromPt(2)},
		},
		space: units.FromPt(3),
	}
}

func TestFailoverDispatchesPerCodepoint(t *testing.T) {
	primary := newLatinFont()
	fallback := &testFont{chars: map[rune]Metrics{
		'X': {Width: units.FromPt(9)},
	}}

	fo := NewFailover(primary, fallback)

	if !fo.HasCharacter('a') || !fo.HasCharacter('X') {
		t.Fatalf("failover should support chars from either constituent")
	}
	if fo.HasCharacter('z') {
		t.Fatalf("failover should not support chars neither constituent has")
	}
	if fo.SpaceWidth() != primary.SpaceWidth() {
		t.Errorf("SpaceWidth must always come from primary")
	}
	if m := fo.CharacterMetrics('X'); m.Width != units.FromPt(9) {
		t.Errorf("CharacterMetrics('X') = %v, want fallback metrics", m)
	}

	if err := fo.Draw("z", 0, 0, nil); err == nil {
		t.Errorf("Draw of unsupported codepoint should fail")
	}
}

func TestManagerCachesByTypefaceVariant(t *testing.T) {
	var calls int
	var mu sync.Mutex
	loader := func(typeface string, variant Variant) (Font, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return newLatinFont(), nil
	}

	m := NewManager(loader, "")
	if _, err := m.GetSized("Serif", VariantRegular, units.FromPt(10)); err != nil {
		t.Fatal(err)
	}
	if _, err := m.GetSized("Serif", VariantRegular, units.FromPt(12)); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("expected loader called once for repeated key, got %d", calls)
	}

	if _, err := m.GetSized("Serif", VariantBold, units.FromPt(10)); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("expected loader called again for a new variant, got %d", calls)
	}
}

func TestManagerFailoverComposition(t *testing.T) {
	loader := func(typeface string, variant Variant) (Font, error) {
		if typeface == "Fallback" {
			return &testFont{chars: map[rune]Metrics{'X': {Width: units.FromPt(1)}}}, nil
		}
		return newLatinFont(), nil
	}
	m := NewManager(loader, "Fallback")
	sf, err := m.GetSized("Serif", VariantRegular, units.FromPt(10))
	if err != nil {
		t.Fatal(err)
	}
	if !sf.HasCharacter('a') || !sf.HasCharacter('X') {
		t.Errorf("expected composed failover font to support both alphabets")
	}
}
