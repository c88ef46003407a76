// Package locale implements the punctuation post-processor applied to a
// paragraph's text spans before horizontal assembly: no-break
// space and typographic-quote substitution, French guillemets and
// spacing rules, and the spaced-ellipsis rewrite. State (principally open
// quotation) is carried across every span of one block, not reset per
// span, so a quote opened in an italic run can close in the roman run
// that follows it - the same "carry context across fragments" shape as
// the source's transformSpeech/transformDashes/transformDialogue passage
// over a whole paragraph's text.
package locale

import (
	"strings"

	"go.uber.org/zap"
)

// Locale selects which punctuation convention ProcessBlock applies.
type Locale int

const (
	English Locale = iota
	French
)

func (l Locale) String() string {
	switch l {
	case French:
		return "french"
	default:
		return "english"
	}
}

// Punctuation runes named rather than left as bare literals, since
// several (nbsp, thin space) are visually indistinguishable from an
// ordinary space in source.
const (
	nbsp      = ' '
	thinSpace = ' '
	rsquo     = '’'
	ldquo     = '“'
	rdquo     = '”'
	laquo     = '«'
	raquo     = '»'
	emDash    = '—'
)

// Processor applies locale punctuation rules to the spans of one
// paragraph at a time. It is not safe for concurrent use by multiple
// goroutines processing different blocks simultaneously - construct one
// Processor per worker, the way the breaker is one per worker.
type Processor struct {
	locale    Locale
	log       *zap.Logger
	quoteOpen bool
}

// New returns a Processor for locale, logging unbalanced-quote warnings to
// log. A nil log is replaced with a no-op logger.
func New(locale Locale, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{locale: locale, log: log}
}

// ProcessBlock applies the punctuation rules to every span of one
// paragraph, in order, carrying quotation state from span to span. line
// identifies the block for the unbalanced-quote warning. The returned
// slice has the same length as spans.
func (p *Processor) ProcessBlock(spans []string, line int) []string {
	p.quoteOpen = false
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = p.processSpan(s, i == 0)
	}
	if p.quoteOpen {
		p.log.Warn("unbalanced quotation marks in block",
			zap.Int("line", line), zap.String("locale", p.locale.String()))
	}
	return out
}

// processSpan rewrites one span; isFirstSpan gates the French
// leading-dialogue-dash rule, which only fires at the very start of a
// block.
func (p *Processor) processSpan(text string, isFirstSpan bool) string {
	if p.locale == French && isFirstSpan && strings.HasPrefix(text, "- ") {
		text = string(emDash) + text[2:]
	}

	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	var lastOut rune

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '~':
			b.WriteRune(nbsp)
			lastOut = nbsp
		case r == '\'':
			b.WriteRune(rsquo)
			lastOut = rsquo
		case r == '"':
			lastOut = p.writeQuote(&b)
		case r == '.' && i+2 < len(runes) && runes[i+1] == '.' && runes[i+2] == '.':
			b.WriteRune(nbsp)
			b.WriteByte('.')
			b.WriteRune(nbsp)
			b.WriteByte('.')
			b.WriteRune(nbsp)
			b.WriteByte('.')
			lastOut = '.'
			i += 2
		case p.locale == French && isThinSpacePunct(r):
			// A no-break space already sitting before the mark (written
			// by the author with '~', or by an earlier pass over this
			// same text) satisfies the spacing rule as it stands, which
			// keeps the whole pass idempotent.
			switch lastOut {
			case thinSpace, nbsp:
			case '.':
				b.WriteRune(nbsp)
			default:
				b.WriteRune(thinSpace)
			}
			b.WriteRune(r)
			lastOut = r
		default:
			b.WriteRune(r)
			lastOut = r
		}
	}
	return b.String()
}

// writeQuote toggles p.quoteOpen and writes the locale-appropriate quote
// glyph(s), returning the final rune written (used for the
// thin-space-after-ellipsis check).
func (p *Processor) writeQuote(b *strings.Builder) rune {
	if p.quoteOpen {
		p.quoteOpen = false
		if p.locale == French {
			b.WriteRune(nbsp)
			b.WriteRune(raquo)
			return raquo
		}
		b.WriteRune(rdquo)
		return rdquo
	}
	p.quoteOpen = true
	if p.locale == French {
		b.WriteRune(laquo)
		b.WriteRune(nbsp)
		return nbsp
	}
	b.WriteRune(ldquo)
	return ldquo
}

func isThinSpacePunct(r rune) bool {
	switch r {
	case ':', ';', '!', '?':
		return true
	}
	return false
}
