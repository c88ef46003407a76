package element

import (
	"fmt"
	"strconv"
	"strings"

	"typeset/units"
)

// Dump renders a human-readable tree of e, one element per line with
// children indented below their parent. Distances print in points rather
// than raw scaled points, since a dump is read against a page geometry
// expressed in points.
func Dump(e Element) string {
	var d dumper
	d.element(e, 0)
	return d.b.String()
}

type dumper struct {
	b strings.Builder
}

func (d *dumper) line(depth int, format string, args ...any) {
	for range depth {
		d.b.WriteString("  ")
	}
	fmt.Fprintf(&d.b, format, args...)
	d.b.WriteByte('\n')
}

func (d *dumper) children(children []Element, depth int) {
	for _, c := range children {
		d.element(c, depth)
	}
}

func pt(v units.SP) string {
	return strconv.FormatFloat(v.Pt(), 'g', 6, 64) + "pt"
}

// elastic formats one stretch/shrink component; the infinite flag renders
// as "inf" since the finite amount next to it carries no meaning then.
func elastic(amount units.SP, infinite bool) string {
	if infinite {
		return "inf"
	}
	return pt(amount)
}

func (d *dumper) element(e Element, depth int) {
	switch v := e.(type) {
	case *Text:
		d.line(depth, "Text %s w=%s", strconv.Quote(v.Value), pt(v.dims.Width))
	case *HBox:
		d.line(depth, "HBox w=%s h=%s d=%s shift=%s", pt(v.W), pt(v.H), pt(v.D), pt(v.Shift))
		d.children(v.Children, depth+1)
	case *VBox:
		d.line(depth, "VBox w=%s h=%s d=%s", pt(v.W), pt(v.H), pt(v.D))
		d.children(v.Children, depth+1)
	case *Glue:
		d.line(depth, "Glue size=%s plus=%s minus=%s", pt(v.Size),
			elastic(v.Stretch, v.StretchInfinite), elastic(v.Shrink, v.ShrinkInfinite))
	case *Kern:
		if v.Explicit {
			d.line(depth, "Kern %s explicit", pt(v.Width))
		} else {
			d.line(depth, "Kern %s", pt(v.Width))
		}
	case *Penalty:
		switch {
		case v.Cost >= Inf:
			d.line(depth, "Penalty +inf")
		case v.Cost <= -Inf && v.EvenPageOnly:
			d.line(depth, "Penalty -inf evenPageOnly")
		case v.Cost <= -Inf:
			d.line(depth, "Penalty -inf")
		default:
			d.line(depth, "Penalty %d", v.Cost)
		}
	case *Discretionary:
		d.line(depth, "Discretionary penalty=%d", v.Penalty)
		d.branch(v.PreBreak, "pre", depth+1)
		d.branch(v.PostBreak, "post", depth+1)
		d.branch(v.NoBreak, "no", depth+1)
	case *Rule:
		d.line(depth, "Rule w=%s h=%s d=%s", pt(v.Width), pt(v.Height), pt(v.Depth))
	case *Columns:
		d.line(depth, "Columns n=%d margin=%s colWidth=%s", v.Layout.N, pt(v.Layout.Margin), pt(v.ColWidth))
		for i, col := range v.Cols {
			d.line(depth+1, "column %d", i+1)
			d.children(col, depth+2)
		}
	case *Page:
		d.line(depth, "Page %d", v.Number)
		d.children(v.Children, depth+1)
	case *Bookmark:
		d.bookmark(v, depth)
	case *ColumnBreak:
		d.line(depth, "ColumnBreak")
	case *ImageBreak:
		d.line(depth, "ImageBreak pages=%d", v.Pages)
	default:
		d.line(depth, "<%s>", e.Kind())
	}
}

// branch prints one Discretionary alternative on a single line when it is
// a plain run of Texts (the overwhelmingly common case), falling back to
// the nested form once kerning has split it.
func (d *dumper) branch(b *HBox, label string, depth int) {
	if b == nil || len(b.Children) == 0 {
		d.line(depth, "%s: \"\"", label)
		return
	}
	plain := true
	var sb strings.Builder
	for _, c := range b.Children {
		t, ok := c.(*Text)
		if !ok {
			plain = false
			break
		}
		sb.WriteString(t.Value)
	}
	if plain {
		d.line(depth, "%s: %s", label, strconv.Quote(sb.String()))
		return
	}
	d.line(depth, "%s:", label)
	d.children(b.Children, depth+1)
}

func (d *dumper) bookmark(b *Bookmark, depth int) {
	switch b.Sub {
	case SubSection:
		kind := "chapter"
		if b.SectionType == SectionPart {
			kind = "part"
		}
		d.line(depth, "Bookmark section %s %s", kind, strconv.Quote(b.Name))
	case SubLabel:
		d.line(depth, "Bookmark label %s", strconv.Quote(b.Name))
	case SubIndex:
		d.line(depth, "Bookmark index %q", b.Entries)
	case SubFootnote:
		d.line(depth, "Bookmark footnote (%d elements)", len(b.Footnote))
	case SubPageRef:
		d.line(depth, "Bookmark pageref %s", strconv.Quote(b.Name))
	default:
		d.line(depth, "Bookmark")
	}
}
