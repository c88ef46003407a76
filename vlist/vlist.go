// Package vlist implements the vertical assembler: it accumulates line
// boxes (and the Glue/Penalty/Bookmark/Columns elements interleaved with
// them) into one element list, maintaining constant baseline-to-baseline
// spacing as lines are appended, and hands that list to the shared
// breaker (typeset/breaker) to produce paginated Pages.
package vlist

import (
	"typeset/element"
	"typeset/units"
)

// DefaultBaselineSkip is 11pt * 1.2, the default baseline-to-baseline
// distance for an 11pt text face.
var DefaultBaselineSkip = units.FromPt(11 * 1.2)

// List accumulates one document's vertical element stream. Unlike
// hlist.Assembler, which is stateless across paragraphs, a List carries
// per-document state (the running baseline skip, the previous line's
// depth, whether any line has been appended yet) that must survive
// across many AppendLine calls.
type List struct {
	Elements []element.Element

	baselineSkip units.SP
	havePrev     bool
	prevDepth    units.SP

	// FirstHBoxHeight is the height of the first HBox ever appended, kept
	// for callers that need to baseline-align the whole vbox against
	// surrounding content (e.g. a footnote rule sharing a baseline with
	// the text that references it).
	FirstHBoxHeight units.SP
}

// New returns an empty List with the default baseline skip.
func New() *List {
	return &List{baselineSkip: DefaultBaselineSkip}
}

// SetBaselineSkip changes the baseline-to-baseline distance used by
// subsequent AppendLine calls and returns the previous value, the way
// TeX's \baselineskip assignment reports what it replaced.
func (l *List) SetBaselineSkip(sp units.SP) units.SP {
	old := l.baselineSkip
	l.baselineSkip = sp
	return old
}

// BaselineSkip reports the current baseline-to-baseline distance.
func (l *List) BaselineSkip() units.SP {
	return l.baselineSkip
}

// AppendLine appends one line box, first inserting the baseline Glue
// needed to keep this line's baseline exactly BaselineSkip below the
// previous one: size = max(0, baselineSkip - prevDepth - box.height). The
// very first line of a List gets no leading glue at all.
func (l *List) AppendLine(hbox *element.HBox) {
	if !l.havePrev {
		l.FirstHBoxHeight = hbox.H
		l.havePrev = true
	} else {
		size := l.baselineSkip - l.prevDepth - hbox.H
		if size < 0 {
			size = 0
		}
		l.Elements = append(l.Elements, &element.Glue{Size: size, Horizontal: false})
	}
	l.Elements = append(l.Elements, hbox)
	l.prevDepth = hbox.D
}

// Append appends an arbitrary element (Penalty, Glue, Bookmark, Rule,
// ColumnBreak, ImageBreak, ...) without touching the baseline-skip
// bookkeeping, for every vertical-list addition that is not itself a
// line.
func (l *List) Append(e element.Element) {
	l.Elements = append(l.Elements, e)
}
