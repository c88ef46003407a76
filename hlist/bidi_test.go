package hlist

import (
	"testing"

	"typeset/element"
)

func textValues(list []element.Element) string {
	var out string
	for _, e := range list {
		if t, ok := e.(*element.Text); ok {
			out += t.Value
		}
	}
	return out
}

func TestReorderRTLIsNoOpForPureLTR(t *testing.T) {
	f := newStubFont()
	list := []element.Element{
		element.NewText("hello", f),
		&element.Glue{Size: 1, Horizontal: true},
		element.NewText("world", f),
	}
	out := reorderRTL(list)
	if len(out) != len(list) {
		t.Fatalf("pure LTR input must pass through unsplit, got %d elements", len(out))
	}
}

func TestReorderRTLReversesHebrewRun(t *testing.T) {
	f := newStubFont()
	list := []element.Element{
		element.NewText("abc ", f),
		element.NewText("שלום", f),
	}
	out := reorderRTL(list)

	if got := textValues(out); got != "abc םולש" {
		t.Errorf("reordered text = %q, want %q", got, "abc םולש")
	}
}

func TestReorderRTLRunSpansNeutralsBetweenRTLEnds(t *testing.T) {
	f := newStubFont()
	// A neutral (the space) inside an RTL-delimited run travels with it;
	// a neutral after the last RTL codepoint does not.
	list := []element.Element{
		element.NewText("אב גד", f),
		element.NewText("!", f),
	}
	out := reorderRTL(list)

	if got := textValues(out); got != "דג בא!" {
		t.Errorf("reordered text = %q, want %q", got, "דג בא!")
	}
}
