package hlist

import (
	"testing"

	"typeset/element"
	"typeset/font"
	"typeset/span"
)

func newTestAssembler() *Assembler {
	f := newStubFont()
	opts := DefaultOptions()
	return New(FontPack{font.VariantRegular: f}, nil, opts)
}

func TestWordsSplitsOnSpace(t *testing.T) {
	a := newTestAssembler()
	out := a.words([]span.Span{&span.Text{Value: "run fast"}})

	if len(out) != 3 {
		t.Fatalf("got %d elements, want 3 (word, glue, word): %v", len(out), out)
	}
	w1, ok := out[0].(*element.Text)
	if !ok || w1.Value != "run" {
		t.Errorf("first element = %#v, want Text(run)", out[0])
	}
	if _, ok := out[1].(*element.Glue); !ok {
		t.Errorf("second element = %#v, want Glue", out[1])
	}
	w2, ok := out[2].(*element.Text)
	if !ok || w2.Value != "fast" {
		t.Errorf("third element = %#v, want Text(fast)", out[2])
	}
}

func TestWordsNoBreakSpaceIsUnbreakable(t *testing.T) {
	a := newTestAssembler()
	out := a.words([]span.Span{&span.Text{Value: "Mr Smith"}})

	if len(out) != 4 {
		t.Fatalf("got %d elements, want 4 (word, penalty, glue, word): %v", len(out), out)
	}
	p, ok := out[1].(*element.Penalty)
	if !ok || p.Cost != element.Inf {
		t.Errorf("expected Penalty(+inf) guarding the no-break space, got %#v", out[1])
	}
	if _, ok := out[2].(*element.Glue); !ok {
		t.Errorf("expected Glue after the guarding penalty, got %#v", out[2])
	}
}

func TestWordsNoLineBreaksDropsSpaceGlue(t *testing.T) {
	a := newTestAssembler()
	a.Opts.NoLineBreaks = true
	out := a.words([]span.Span{&span.Text{Value: "run fast"}})

	for _, e := range out {
		if _, ok := e.(*element.Glue); ok {
			t.Fatalf("NoLineBreaks should suppress space glue, got %v", out)
		}
	}
}
