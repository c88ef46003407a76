// Package sections walks a book's paginated output to recover section and
// label bookmarks per physical page, derives the front-matter/body-matter
// boundary from them, and renders Roman/Arabic page number labels and
// running headlines accordingly.
package sections

import (
	"sort"
	"strconv"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"typeset/element"
)

// sectionMark is one Section bookmark's location, recorded in page order
// so SectionBookmarkForPage can binary-search for the nearest one at or
// before a given physical page - the same floor-lookup shape as
// vlist.ColumnRegistry.
type sectionMark struct {
	page int
	mark *element.Bookmark
}

// Book is the result of walking a document's paginated output: every
// bookmark's physical page, every label's target page, and the derived
// front/body-matter split.
type Book struct {
	pages []element.Element

	bookmarksByPage map[int][]*element.Bookmark
	labelPage       map[string]int
	sectionMarks    []sectionMark

	firstBodyMatterPage int

	indexTerms map[string]map[int]bool // term -> set of pages it was anchored on

	log      *zap.Logger
	warnings error
}

// Build walks pages (the []*element.Page the vertical breaker produced,
// passed as plain elements since that's what breaker.Break returns) and
// derives the bookmark/section registry. log may be nil.
func Build(pages []element.Element, log *zap.Logger) *Book {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Book{
		pages:           pages,
		bookmarksByPage: make(map[int][]*element.Bookmark),
		labelPage:       make(map[string]int),
		indexTerms:      make(map[string]map[int]bool),
		log:             log,
	}

	var firstPartPage, firstChapterPage int

	for _, pe := range pages {
		page, ok := pe.(*element.Page)
		if !ok {
			continue
		}
		marks := collectBookmarks(page.Children)
		sectionsOnPage := 0
		for _, m := range marks {
			b.bookmarksByPage[page.Number] = append(b.bookmarksByPage[page.Number], m)
			switch m.Sub {
			case element.SubLabel:
				if _, exists := b.labelPage[m.Name]; !exists {
					b.labelPage[m.Name] = page.Number
				}
			case element.SubSection:
				sectionsOnPage++
				b.sectionMarks = append(b.sectionMarks, sectionMark{page: page.Number, mark: m})
				switch m.SectionType {
				case element.SectionPart:
					if firstPartPage == 0 {
						firstPartPage = page.Number
					}
				case element.SectionChapter:
					if firstChapterPage == 0 {
						firstChapterPage = page.Number
					}
				}
			case element.SubIndex:
				for _, term := range m.Entries {
					if b.indexTerms[term] == nil {
						b.indexTerms[term] = make(map[int]bool)
					}
					b.indexTerms[term][page.Number] = true
				}
			}
		}
		if sectionsOnPage > 1 {
			b.log.Warn("duplicate section bookmarks on one physical page",
				zap.Int("page", page.Number), zap.Int("count", sectionsOnPage))
			b.warnings = multierr.Append(b.warnings,
				errDuplicateSection(page.Number, sectionsOnPage))
		}
	}

	switch {
	case firstPartPage != 0:
		b.firstBodyMatterPage = firstPartPage
	case firstChapterPage != 0:
		b.firstBodyMatterPage = firstChapterPage
	default:
		b.firstBodyMatterPage = 1
	}

	return b
}

// collectBookmarks recurses into a page's children (HBox/VBox/Columns all
// nest further Elements) gathering every Bookmark it finds, in document
// order, since a Bookmark rides inside whichever line or column box its
// host line ended up in rather than sitting at the Page's top level.
func collectBookmarks(children []element.Element) []*element.Bookmark {
	var out []*element.Bookmark
	for _, c := range children {
		switch v := c.(type) {
		case *element.Bookmark:
			out = append(out, v)
		case *element.HBox:
			out = append(out, collectBookmarks(v.Children)...)
		case *element.VBox:
			out = append(out, collectBookmarks(v.Children)...)
		case *element.Columns:
			out = append(out, collectBookmarks(v.Children)...)
		}
	}
	return out
}

// FirstBodyMatterPage is the first physical page numbered with Arabic
// numerals: the first Part's page if the book has one, else the first
// Chapter's page, else 1 (an all-front-matter-numbered book).
func (b *Book) FirstBodyMatterPage() int { return b.firstBodyMatterPage }

// LabelPage returns the physical page a named Label bookmark fell on, and
// whether that label was ever seen.
func (b *Book) LabelPage(name string) (int, bool) {
	p, ok := b.labelPage[name]
	return p, ok
}

// BookmarksOnPage returns every bookmark recorded on physical page p, in
// document order.
func (b *Book) BookmarksOnPage(p int) []*element.Bookmark {
	return b.bookmarksByPage[p]
}

// SectionBookmarkForPage returns the Section bookmark governing physical
// page p: the last one whose page is <= p, or nil before the first
// section in the book.
func (b *Book) SectionBookmarkForPage(p int) *element.Bookmark {
	marks := b.sectionMarks
	i := sort.Search(len(marks), func(i int) bool { return marks[i].page > p })
	if i == 0 {
		return nil
	}
	return marks[i-1].mark
}

// ShouldDrawHeadline reports whether page p should carry a running
// headline: false on a page that itself starts a section (its own title
// already identifies it), and false anywhere before the body matter
// begins (front matter carries no running headline).
func (b *Book) ShouldDrawHeadline(p int) bool {
	if p < b.firstBodyMatterPage {
		return false
	}
	for _, m := range b.bookmarksByPage[p] {
		if m.Sub == element.SubSection {
			return false
		}
	}
	return true
}

// PageNumberLabel renders physical page p's printed label: lowercase
// Roman numerals (1-indexed within front matter) before the body matter
// begins, Arabic numerals (1-indexed within body matter) from there on.
func (b *Book) PageNumberLabel(p int) string {
	if p < b.firstBodyMatterPage {
		return Roman(p)
	}
	return strconv.Itoa(p - b.firstBodyMatterPage + 1)
}

// HeadlineLabel renders page p's running headline: the book title on
// even pages, the name of the nearest prior section on odd pages (falling
// back to the book title if no section has started yet).
func (b *Book) HeadlineLabel(p int, bookTitle string) string {
	if p%2 == 0 {
		return bookTitle
	}
	if m := b.SectionBookmarkForPage(p); m != nil {
		return m.Name
	}
	return bookTitle
}

// IndexEntry is one term's appearance list in the rendered index, sorted
// by page number, for a term that appeared at least once.
type IndexEntry struct {
	Term  string
	Pages []int
}

// Index returns every collected index term, naturally sorted ("Chapter
// 2" before "Chapter 10") with maruel/natural, each with its own physical
// pages in ascending order.
func (b *Book) Index() []IndexEntry {
	terms := make([]string, 0, len(b.indexTerms))
	for t := range b.indexTerms {
		terms = append(terms, t)
	}
	sort.Sort(natural.StringSlice(terms))

	out := make([]IndexEntry, 0, len(terms))
	for _, t := range terms {
		pageSet := b.indexTerms[t]
		pages := make([]int, 0, len(pageSet))
		for p := range pageSet {
			pages = append(pages, p)
		}
		sort.Ints(pages)
		out = append(out, IndexEntry{Term: t, Pages: pages})
	}
	return out
}

// Warnings returns every duplicate-section and unresolved-page-ref
// warning accumulated while building the Book and resolving page
// references, combined with multierr so a caller can log or ignore the
// whole batch without losing any individual warning.
func (b *Book) Warnings() error { return b.warnings }

func errDuplicateSection(page, count int) error {
	return &sectionWarning{msg: "page " + strconv.Itoa(page) + ": " + strconv.Itoa(count) + " section bookmarks on one physical page"}
}

type sectionWarning struct{ msg string }

func (e *sectionWarning) Error() string { return e.msg }

// HasParts reports whether any Part bookmark was ever seen. A book mixing
// Parts with plain front-matter sections has no single obvious rule for
// which governs FirstBodyMatterPage; this engine lets only the *first*
// Part (or, absent one, the first Chapter) decide it - every later Section
// bookmark, Part or Chapter alike, is just another entry in sectionMarks
// with no further special treatment.
func (b *Book) HasParts() bool {
	for _, m := range b.sectionMarks {
		if m.mark.SectionType == element.SectionPart {
			return true
		}
	}
	return false
}
