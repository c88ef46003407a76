// Package span defines the contract between the (out-of-scope) source
// parser and the horizontal assembler: a paragraph block is an
// ordered list of Spans, one per style run plus the non-text span kinds
// the core recognizes - images, footnotes, labels, index entries and
// page cross-references.
package span

import (
	"typeset/font"
	"typeset/units"
)

// Kind discriminates the Span variants the horizontal assembler switches
// on.
type Kind int

const (
	KindText Kind = iota
	KindImage
	KindFootnote
	KindLabel
	KindIndex
	KindPageRef
)

// Span is one semantic run within a paragraph block.
type Span interface {
	Kind() Kind
}

// Text is a run of characters set in one style. The horizontal assembler
// only reads Value; locale post-processing works on plain strings and does
// not modify a Text span.
type Text struct {
	Value string
	Style font.Variant
}

func (*Text) Kind() Kind { return KindText }

// Image is a fixed-size inline figure; the core has no notion of the
// actual picture, only the box it occupies in the horizontal list.
type Image struct {
	Width, Height, Depth units.SP
}

func (*Image) Kind() Kind { return KindImage }

// Footnote carries its own nested block, assembled independently by the
// horizontal assembler and attached to the surrounding list as a
// zero-size Footnote bookmark.
type Footnote struct {
	Block []Span
}

func (*Footnote) Kind() Kind { return KindFootnote }

// Label names a cross-reference target anchored at this point in the
// text.
type Label struct {
	Name string
}

func (*Label) Kind() Kind { return KindLabel }

// Index anchors a set of index entries at this point in the text.
type Index struct {
	Entries []string
}

func (*Index) Kind() Kind { return KindIndex }

// PageRef is a cross-reference: "see page N", where N is not known until
// the named Label's page is resolved after pagination.
type PageRef struct {
	Name  string
	Style font.Variant
}

func (*PageRef) Kind() Kind { return KindPageRef }
