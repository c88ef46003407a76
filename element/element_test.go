package element

import (
	"strings"
	"testing"

	"typeset/font"
	"typeset/units"
)

type stubFont struct{ w units.SP }

func (f *stubFont) Sized(units.SP) font.SizedFont { return f }
func (f *stubFont) HasCharacter(rune) bool { return true }
func (f *stubFont) SpaceWidth() units.SP { return f.w }
func (f *stubFont) CharacterMetrics(rune) font.Metrics {
	return font.Metrics{Width: f.w}
}
func (f *stubFont) StringMetrics(s string) font.Metrics {
	n := units.SP(len([]rune(s)))
	return font.Metrics{Width: f.w * n}
}
func (f *stubFont) Kerning(rune, rune) units.SP { return 0 }
func (f *stubFont) TransformLigatures(s string) string { return s }
func (f *stubFont) Draw(string, units.SP, units.SP, font.Sink) error { return nil }

func TestHBoxAggregatesChildMetrics(t *testing.T) {
	f := &stubFont{w: units.FromPt(5)}
	text := NewText("ab", f)
	rule := &Rule{Width: units.FromPt(1), Height: units.FromPt(20), Depth: units.FromPt(2)}

	hb := NewHBox([]Element{text, rule}, 0)
	want := text.Dims().Width + rule.Dims().Width
	if hb.W != want {
		t.Errorf("HBox width = %d, want %d", hb.W, want)
	}
	if hb.H != units.FromPt(20) {
		t.Errorf("HBox height = %d, want max child height", hb.H)
	}
}

func TestVBoxSumsHeights(t *testing.T) {
	f := &stubFont{w: units.FromPt(5)}
	a := NewHBox([]Element{NewText("a", f)}, 0)
	b := NewHBox([]Element{NewText("bb", f)}, 0)
	vb := NewVBox([]Element{a, b})
	if vb.H != a.Dims().Height+a.Dims().Depth+b.Dims().Height+b.Dims().Depth {
		t.Errorf("VBox height did not sum children")
	}
}

func TestDiscretionaryBranchWidths(t *testing.T) {
	f := &stubFont{w: units.FromPt(5)}
	d := NewDiscretionary("-", "", "", f, 50)
	if d.BranchWidth(AtBreak) == 0 {
		t.Errorf("expected nonzero preBreak width for %q", "-")
	}
	if d.BranchWidth(AfterBreak) != 0 {
		t.Errorf("expected zero postBreak width")
	}
	if d.BranchWidth(NoBreakSide) != 0 {
		t.Errorf("expected zero noBreak width")
	}
}

func TestDumpProducesTreeForEachKind(t *testing.T) {
	f := &stubFont{w: units.FromPt(5)}
	page := &Page{Number: 1, Children: []Element{
		NewHBox([]Element{
			NewText("hi", f),
			&Glue{Size: units.FromPt(3)},
			&Kern{Width: units.FromPt(1)},
			&Penalty{Cost: Inf},
			NewDiscretionary("-", "", "", f, 50),
			&Rule{Width: units.FromPt(1)},
			NewSectionBookmark(SectionChapter, "Intro"),
		}, 0),
	}}

	out := Dump(page)
	for _, want := range []string{"Page 1", "HBox", "Text", "Glue", "Kern", "Penalty +inf", "Discretionary", "Rule", "Bookmark section"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output missing %q:\n%s", want, out)
		}
	}
}
