package sections

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"typeset/element"
	"typeset/font"
)

// ResolvePageRefs rewrites every SubPageRef bookmark in pages into a
// literal Text showing the target label's printed page number, once
// every Label bookmark's page is known - the rewrite described by the
// SubPageRef doc comment in element/bookmark.go. fonts
// supplies one sized font per style a PageRefSpan may have carried
// (RefStyle); a style with no entry falls back to VariantRegular, the
// same rule hlist.FontPack.lookup applies.
//
// A PageRef naming a Label never seen renders as "?" and is recorded in
// Warnings() rather than failing the whole document - the same
// never-fail-the-job treatment given every other recoverable defect
// (unbalanced quotes, duplicate sections).
func (b *Book) ResolvePageRefs(pages []element.Element, fonts map[font.Variant]font.SizedFont) []element.Element {
	out := make([]element.Element, len(pages))
	for i, p := range pages {
		out[i] = b.resolveElement(p, fonts)
	}
	return out
}

func (b *Book) resolveElement(e element.Element, fonts map[font.Variant]font.SizedFont) element.Element {
	switch v := e.(type) {
	case *element.Page:
		return &element.Page{
			Children:      b.resolveChildren(v.Children, fonts),
			Number:        v.Number,
			BaselineShift: v.BaselineShift,
		}
	case *element.HBox:
		return element.NewHBox(b.resolveChildren(v.Children, fonts), v.Shift)
	case *element.VBox:
		return element.NewVBox(b.resolveChildren(v.Children, fonts))
	case *element.Columns:
		cols := make([][]element.Element, len(v.Cols))
		for i, col := range v.Cols {
			cols[i] = b.resolveChildren(col, fonts)
		}
		out := &element.Columns{
			Layout:   v.Layout,
			Cols:     cols,
			ColWidth: v.ColWidth,
			W:        v.W, H: v.H, D: v.D,
		}
		for _, col := range cols {
			out.Children = append(out.Children, col...)
		}
		return out
	case *element.Bookmark:
		if v.Sub != element.SubPageRef {
			return v
		}
		return b.resolvePageRef(v, fonts)
	default:
		return e
	}
}

func (b *Book) resolveChildren(children []element.Element, fonts map[font.Variant]font.SizedFont) []element.Element {
	out := make([]element.Element, len(children))
	for i, c := range children {
		out[i] = b.resolveElement(c, fonts)
	}
	return out
}

func (b *Book) resolvePageRef(ref *element.Bookmark, fonts map[font.Variant]font.SizedFont) element.Element {
	f, ok := fonts[ref.RefStyle]
	if !ok {
		f = fonts[font.VariantRegular]
	}

	page, ok := b.labelPage[ref.Name]
	if !ok {
		b.warnings = multierr.Append(b.warnings, errUnresolvedPageRef(ref.Name))
		b.log.Warn("unresolved page reference", zap.String("label", ref.Name))
		return element.NewText("?", f)
	}
	return element.NewText(b.PageNumberLabel(page), f)
}

func errUnresolvedPageRef(name string) error {
	return &sectionWarning{msg: "unresolved page reference to label " + name}
}
