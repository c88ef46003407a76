package breaker

import (
	"strings"
	"testing"

	"typeset/element"
	"typeset/font"
	"typeset/units"
)

// lineAxis is a minimal Axis over plain width, the shape a horizontal
// assembler's axis takes with the ragged-margin framing stripped out -
// enough to exercise the DP in isolation.
type lineAxis struct{}

func (lineAxis) Measure(e element.Element) units.SP {
	switch v := e.(type) {
	case *element.Glue:
		return v.Size
	case *element.Kern:
		return v.Width
	case *element.Discretionary:
		return v.NoBreak.W
	default:
		return e.Dims().Width
	}
}

func (lineAxis) Stretch(e element.Element) (units.SP, bool) {
	if g, ok := e.(*element.Glue); ok {
		return g.Stretch, g.StretchInfinite
	}
	return 0, false
}

func (lineAxis) Shrink(e element.Element) (units.SP, bool) {
	if g, ok := e.(*element.Glue); ok {
		return g.Shrink, g.ShrinkInfinite
	}
	return 0, false
}

func (lineAxis) DiscretionaryWidth(d *element.Discretionary, side element.BreakSide) units.SP {
	return d.BranchWidth(side)
}

func (lineAxis) MakeOutputBox(content []element.Element, counter int, shift units.SP) element.Element {
	return element.NewHBox(content, shift)
}

func (lineAxis) GetElementSublist(list []element.Element, begin, end int) []element.Element {
	return Sublist(list, begin, end)
}

func (lineAxis) ExtraIncrement([]element.Element) int { return 0 }

// unitFont gives every character a fixed width, so a word's measured
// width is simply charWidth times its rune count - enough to build
// "Text(10pt each)" style fixtures without a real font backend.
type unitFont struct{ charWidth units.SP }

func (f *unitFont) Sized(units.SP) font.SizedFont { return f }
func (f *unitFont) HasCharacter(rune) bool { return true }
func (f *unitFont) SpaceWidth() units.SP { return f.charWidth }
func (f *unitFont) CharacterMetrics(rune) font.Metrics {
	return font.Metrics{Width: f.charWidth}
}
func (f *unitFont) StringMetrics(s string) font.Metrics {
	return font.Metrics{Width: f.charWidth * units.SP(len([]rune(s)))}
}
func (f *unitFont) Kerning(rune, rune) units.SP { return 0 }
func (f *unitFont) TransformLigatures(s string) string { return s }
func (f *unitFont) Draw(string, units.SP, units.SP, font.Sink) error { return nil }

func wordText(f *unitFont, width units.SP) *element.Text {
	n := int(width / f.charWidth)
	return element.NewText(strings.Repeat("w", n), f)
}

func wordGlue(size, stretch, shrink units.SP) *element.Glue {
	return &element.Glue{Size: size, Stretch: stretch, Shrink: shrink, Horizontal: true}
}

func buildWordList(n int, f *unitFont, wordWidth, space, stretch, shrink units.SP) []element.Element {
	var list []element.Element
	for i := 0; i < n; i++ {
		if i > 0 {
			list = append(list, wordGlue(space, stretch, shrink))
		}
		list = append(list, wordText(f, wordWidth))
	}
	list = append(list, &element.Penalty{Cost: element.Inf})
	list = append(list, wordGlue(0, 1<<30, 0))
	list = append(list, &element.Penalty{Cost: -element.Inf})
	return list
}

// naiveGreedyLineCount packs words onto a line until the next word would
// overflow the target - the baseline property E7 compares the optimal
// breaker against.
func naiveGreedyLineCount(list []element.Element, target units.SP) int {
	lines := 1
	var cur units.SP
	for _, e := range list {
		switch v := e.(type) {
		case *element.Text:
			w := v.Dims().Width
			if cur+w > target {
				lines++
				cur = w
			} else {
				cur += w
			}
		case *element.Glue:
			cur += v.Size
		}
	}
	return lines
}

func TestOptimalLineBreakingBeatsNaiveGreedy(t *testing.T) {
	axis := lineAxis{}
	cfg := DefaultConfig(units.FromPt(100))
	f := &unitFont{charWidth: units.FromPt(1)}

	list := buildWordList(20, f, units.FromPt(10), units.FromPt(2), units.FromPt(1), 0)

	out := Break(list, axis, cfg, 0)
	if len(out) == 0 {
		t.Fatal("Break produced no output boxes")
	}

	greedyLines := naiveGreedyLineCount(list, units.FromPt(100))
	if len(out) > greedyLines+1 {
		t.Errorf("optimal breaker produced %d lines, naive greedy needed only %d", len(out), greedyLines)
	}
	for i, e := range out {
		hb, ok := e.(*element.HBox)
		if !ok {
			t.Fatalf("output[%d] is not an HBox: %T", i, e)
		}
		if i < len(out)-1 && hb.W > units.FromPt(100)+units.FromPt(20) {
			t.Errorf("line %d grossly overfull: width=%v", i, hb.W)
		}
	}
}

func TestSublistFlattensDiscretionaryBranches(t *testing.T) {
	f := &unitFont{charWidth: units.FromPt(5)}
	d := element.NewDiscretionary("-", "", "", f, 50)
	list := []element.Element{element.NewText("auto", f), d, element.NewText("mobile", f)}

	before := Sublist(list, 0, 1)
	after := Sublist(list, 1, len(list))

	if len(before) != 2 {
		t.Fatalf("expected auto+preBreak before break, got %d", len(before))
	}
	if len(after) != 1 {
		t.Fatalf("expected only mobile after break (postBreak is empty), got %d", len(after))
	}
}

func TestForcedBreakAlwaysEndsAChunk(t *testing.T) {
	axis := lineAxis{}
	cfg := DefaultConfig(units.FromPt(100))
	f := &unitFont{charWidth: units.FromPt(1)}

	list := []element.Element{
		wordText(f, units.FromPt(10)),
		&element.Penalty{Cost: -element.Inf},
		wordText(f, units.FromPt(10)),
	}
	out := Break(list, axis, cfg, 0)
	if len(out) != 2 {
		t.Fatalf("expected 2 chunks split by the forced penalty, got %d", len(out))
	}
}
