package locale

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestEnglishQuotesToggleAcrossSpans(t *testing.T) {
	p := New(English, nil)
	out := p.ProcessBlock([]string{`She said "hello`, ` world"`}, 1)
	if !strings.Contains(out[0], "“") {
		t.Errorf("opening span missing left double quote: %q", out[0])
	}
	if !strings.Contains(out[1], "”") {
		t.Errorf("closing span missing right double quote: %q", out[1])
	}
}

func TestFrenchQuotesUseGuillemets(t *testing.T) {
	p := New(French, nil)
	out := p.ProcessBlock([]string{`"bonjour"`}, 1)
	want := "« bonjour »"
	if out[0] != want {
		t.Errorf("ProcessBlock() = %q, want %q", out[0], want)
	}
}

func TestFrenchLeadingDashBecomesEmDash(t *testing.T) {
	p := New(French, nil)
	out := p.ProcessBlock([]string{"- Bonjour"}, 1)
	want := "—Bonjour"
	if out[0] != want {
		t.Errorf("ProcessBlock() = %q, want %q", out[0], want)
	}
}

func TestLeadingDashOnlyAppliesToFirstSpan(t *testing.T) {
	p := New(French, nil)
	out := p.ProcessBlock([]string{"Bonjour", "- not a dialogue marker"}, 1)
	if strings.Contains(out[1], "—") {
		t.Errorf("second span should not receive the leading-dash rule: %q", out[1])
	}
}

func TestEllipsisBecomesSpacedNoBreakDots(t *testing.T) {
	p := New(English, nil)
	out := p.ProcessBlock([]string{"Wait..."}, 1)
	want := "Wait . . ."
	if out[0] != want {
		t.Errorf("ProcessBlock() = %q, want %q", out[0], want)
	}
}

func TestFrenchThinSpaceBeforePunctuation(t *testing.T) {
	p := New(French, nil)
	out := p.ProcessBlock([]string{"Vraiment?"}, 1)
	want := "Vraiment ?"
	if out[0] != want {
		t.Errorf("ProcessBlock() = %q, want %q", out[0], want)
	}
}

func TestFrenchFullNoBreakSpaceAfterEllipsisBeforePunctuation(t *testing.T) {
	p := New(French, nil)
	out := p.ProcessBlock([]string{"Alors...!"}, 1)
	want := "Alors . . . !"
	if out[0] != want {
		t.Errorf("ProcessBlock() = %q, want %q", out[0], want)
	}
}

func TestTildeAndApostrophe(t *testing.T) {
	p := New(English, nil)
	out := p.ProcessBlock([]string{"it~isn't"}, 1)
	want := "it isn’t"
	if out[0] != want {
		t.Errorf("ProcessBlock() = %q, want %q", out[0], want)
	}
}

func TestUnbalancedQuoteWarnsWithLineNumber(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p := New(English, zap.New(core))

	p.ProcessBlock([]string{`"never closed`}, 42)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected exactly one warning, got %d", len(entries))
	}
	if line, ok := entries[0].ContextMap()["line"].(int64); !ok || line != 42 {
		t.Errorf("warning missing line=42 field: %v", entries[0].ContextMap())
	}
}

func TestBalancedQuotesEmitNoWarning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p := New(English, zap.New(core))

	p.ProcessBlock([]string{`"closed"`}, 1)

	if n := logs.Len(); n != 0 {
		t.Errorf("expected no warnings for balanced quotes, got %d", n)
	}
}

func TestQuoteStateResetsBetweenBlocks(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p := New(English, zap.New(core))

	p.ProcessBlock([]string{`"unbalanced`}, 1)
	p.ProcessBlock([]string{`"balanced"`}, 2)

	if n := logs.Len(); n != 1 {
		t.Errorf("expected exactly one warning (from block 1 only), got %d", n)
	}
}

func TestFrenchPassIsIdempotent(t *testing.T) {
	p := New(French, nil)
	first := p.ProcessBlock([]string{`"Alors...!" dit-il. Vraiment?`}, 1)
	second := p.ProcessBlock(first, 1)
	if first[0] != second[0] {
		t.Errorf("second pass changed the text:\n first: %q\nsecond: %q", first[0], second[0])
	}
}
