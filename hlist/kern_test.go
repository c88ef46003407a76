package hlist

import (
	"testing"

	"typeset/element"
	"typeset/font"
	"typeset/units"
)

func newKernFont() *testFont {
	f := newStubFont()
	f.kerns = map[[2]rune]units.SP{
		{'A', 'V'}: units.FromPt(-2),
		{'f', 'f'}: units.FromPt(1),
	}
	return f
}

func kernAssembler() *Assembler {
	return New(FontPack{font.VariantRegular: newKernFont()}, nil, DefaultOptions())
}

func TestKernSplitsTextAtKernedBoundary(t *testing.T) {
	a := kernAssembler()
	f := a.Fonts.lookup(font.VariantRegular)

	out := a.kern([]element.Element{element.NewText("AVE", f)})

	if len(out) != 3 {
		t.Fatalf("got %d elements, want Text(A), Kern, Text(VE): %v", len(out), out)
	}
	k, ok := out[1].(*element.Kern)
	if !ok || k.Width != units.FromPt(-2) {
		t.Errorf("middle element = %#v, want Kern(-2pt)", out[1])
	}
	if out[0].(*element.Text).Value != "A" || out[2].(*element.Text).Value != "VE" {
		t.Errorf("text split wrong: %q / %q",
			out[0].(*element.Text).Value, out[2].(*element.Text).Value)
	}
}

func TestKernGlueResetsContextToSpace(t *testing.T) {
	a := kernAssembler()
	f := a.Fonts.lookup(font.VariantRegular)

	out := a.kern([]element.Element{
		element.NewText("A", f),
		&element.Glue{Size: units.FromPt(3), Horizontal: true},
		element.NewText("V", f),
	})

	for _, e := range out {
		if _, ok := e.(*element.Kern); ok {
			t.Fatalf("A-V pair separated by a space must not be kerned: %v", out)
		}
	}
}

// The f-f boundary that exists only in the no-break reading of a hyphen
// discretionary gets its kern inside the noBreak branch, and nowhere
// else: the boundary is never double-counted.
func TestKernAroundHyphenDiscretionaryNoDoubleCount(t *testing.T) {
	a := kernAssembler()
	f := a.Fonts.lookup(font.VariantRegular)

	list := []element.Element{
		element.NewText("of", f),
		element.NewDiscretionary("-", "", "", f, 50),
		element.NewText("fer", f),
	}
	out := a.kern(list)

	var outer int
	var disc *element.Discretionary
	for _, e := range out {
		switch v := e.(type) {
		case *element.Kern:
			outer++
		case *element.Discretionary:
			disc = v
		}
	}
	if disc == nil {
		t.Fatal("discretionary lost during kerning")
	}
	if outer != 0 {
		t.Errorf("found %d kerns at the outer level, want the f-f kern confined to the noBreak branch", outer)
	}

	countKerns := func(b *element.HBox) int {
		n := 0
		for _, c := range b.Children {
			if _, ok := c.(*element.Kern); ok {
				n++
			}
		}
		return n
	}
	if got := countKerns(disc.NoBreak); got != 1 {
		t.Errorf("noBreak branch has %d kerns, want 1 (the f-f boundary)", got)
	}
	if got := countKerns(disc.PostBreak); got != 0 {
		t.Errorf("postBreak branch has %d kerns, want 0 (a break precedes it)", got)
	}
	if got := countKerns(disc.PreBreak); got != 0 {
		t.Errorf("preBreak branch has %d kerns, want 0", got)
	}
}
