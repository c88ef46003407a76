package element

import "typeset/font"

// BookmarkSub discriminates the zero-size marker variants that ride along
// in an element list without affecting layout.
type BookmarkSub int

const (
	SubSection BookmarkSub = iota
	SubLabel
	SubIndex
	SubFootnote
	// SubPageRef marks a cross-reference placeholder: it rides through
	// pagination unresolved and is rewritten to a literal Text once the
	// target label's physical page is known (see sections.ResolvePageRefs).
	SubPageRef
)

// SectionType distinguishes a book Part from an ordinary Chapter for
// front/body-matter detection.
type SectionType int

const (
	SectionChapter SectionType = iota
	SectionPart
)

// Bookmark is a zero-size marker: a Section (naming its type and title), a
// Label (a named cross-reference target), an Index (a set of index
// entries anchored at this point), or a Footnote (carrying the footnote's
// own element list, laid out separately and drawn at the page foot).
type Bookmark struct {
	Sub         BookmarkSub
	SectionType SectionType
	Name        string
	Entries     []string
	Footnote    []Element
	// RefStyle is the style a SubPageRef bookmark's resolved Text should
	// be set in, since the placeholder carries no font of its own.
	RefStyle font.Variant
}

func (b *Bookmark) Kind() Kind         { return KindBookmark }
func (b *Bookmark) Dims() font.Metrics { return font.Metrics{} }

func NewSectionBookmark(t SectionType, name string) *Bookmark {
	return &Bookmark{Sub: SubSection, SectionType: t, Name: name}
}

func NewLabelBookmark(name string) *Bookmark {
	return &Bookmark{Sub: SubLabel, Name: name}
}

func NewIndexBookmark(entries []string) *Bookmark {
	return &Bookmark{Sub: SubIndex, Entries: entries}
}

func NewFootnoteBookmark(block []Element) *Bookmark {
	return &Bookmark{Sub: SubFootnote, Footnote: block}
}

func NewPageRefBookmark(name string, style font.Variant) *Bookmark {
	return &Bookmark{Sub: SubPageRef, Name: name, RefStyle: style}
}
