package hlist

import (
	"strings"

	"typeset/element"
)

// foldLigatures runs stage 3. It walks the list with a work queue rather
// than a plain index, because folding a Text/Discretionary/Text triplet
// produces a new trailing Text that must itself be reconsidered against
// whatever discretionary follows it - the "subtle step" of the horizontal
// assembler.
func (a *Assembler) foldLigatures(list []element.Element) []element.Element {
	pending := append([]element.Element(nil), list...)
	var out []element.Element

	for len(pending) > 0 {
		e := pending[0]
		pending = pending[1:]

		before, ok := e.(*element.Text)
		if !ok || len(pending) < 2 {
			out = append(out, e)
			continue
		}
		disc, ok1 := pending[0].(*element.Discretionary)
		after, ok2 := pending[1].(*element.Text)
		if !ok1 || !ok2 {
			out = append(out, e)
			continue
		}
		pending = pending[2:]

		head, folded, tail := foldTriplet(before, disc, after)
		out = append(out, head, folded)
		pending = append([]element.Element{tail}, pending...)
	}
	return out
}

// foldTriplet applies the three-string ligature reconstruction: the three
// full alternative strings a reader of before+disc+after would see are
// ligated independently, then the longest run shared with the no-break
// alternative is hoisted out into a plain Text on either side, leaving
// only the genuinely break-dependent remainder inside the Discretionary.
func foldTriplet(before *element.Text, disc *element.Discretionary, after *element.Text) (head *element.Text, folded *element.Discretionary, tail *element.Text) {
	f := before.Font

	entirePreBreak := f.TransformLigatures(before.Value + discText(disc.PreBreak))
	entirePostBreak := f.TransformLigatures(discText(disc.PostBreak) + after.Value)
	entireNoBreak := f.TransformLigatures(before.Value + discText(disc.NoBreak) + after.Value)

	p := commonPrefix(entirePreBreak, entireNoBreak)
	s := commonSuffix(entirePostBreak, entireNoBreak)

	preBreak := strings.TrimPrefix(entirePreBreak, p)
	postBreak := strings.TrimSuffix(entirePostBreak, s)
	noBreak := strings.TrimSuffix(strings.TrimPrefix(entireNoBreak, p), s)

	head = element.NewText(p, f)
	folded = element.NewDiscretionary(preBreak, postBreak, noBreak, f, disc.Penalty)
	tail = element.NewText(s, f)
	return head, folded, tail
}

// commonPrefix and commonSuffix compare a and b rune by rune so the
// boundary they report never falls inside a multi-byte code point.
func commonPrefix(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}
	i := 0
	for i < n && ra[i] == rb[i] {
		i++
	}
	return string(ra[:i])
}

func commonSuffix(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	n := la
	if lb < n {
		n = lb
	}
	i := 0
	for i < n && ra[la-1-i] == rb[lb-1-i] {
		i++
	}
	return string(ra[la-i:])
}
