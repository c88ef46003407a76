package hlist

import (
	"golang.org/x/text/unicode/bidi"

	"typeset/element"
)

// reorderRTL runs stage 5. Most paragraphs are pure LTR and this is a
// no-op scan; once any Text is found to contain an RTL codepoint, every
// Text is exploded to one codepoint each so maximal RTL runs can be
// reversed in place without disturbing the neutral and non-Text
// elements (Kern, Glue, Discretionary, bookmarks) that may sit inside
// them.
func reorderRTL(list []element.Element) []element.Element {
	if !anyRTL(list) {
		return list
	}
	out := splitToRunes(list)
	reverseRuns(out)
	return out
}

func anyRTL(list []element.Element) bool {
	for _, e := range list {
		t, ok := e.(*element.Text)
		if !ok {
			continue
		}
		for _, r := range t.Value {
			if isRTLRune(r) {
				return true
			}
		}
	}
	return false
}

func splitToRunes(list []element.Element) []element.Element {
	var out []element.Element
	for _, e := range list {
		t, ok := e.(*element.Text)
		if !ok {
			out = append(out, e)
			continue
		}
		for _, r := range t.Value {
			out = append(out, element.NewText(string(r), t.Font))
		}
	}
	return out
}

// reverseRuns scans list for maximal runs that both start and end on an
// RTL-codepoint Text, with only RTL, neutral, or non-Text elements in
// between, and reverses each run's element order in place.
func reverseRuns(list []element.Element) {
	i := 0
	for i < len(list) {
		if !isRTLText(list[i]) {
			i++
			continue
		}
		j, lastRTL := i+1, i
		for j < len(list) {
			if isRTLText(list[j]) {
				lastRTL = j
				j++
				continue
			}
			if isNeutralOrNonText(list[j]) {
				j++
				continue
			}
			break
		}
		if lastRTL > i {
			reverse(list[i : lastRTL+1])
		}
		i = lastRTL + 1
	}
}

func isRTLText(e element.Element) bool {
	t, ok := e.(*element.Text)
	if !ok || t.Value == "" {
		return false
	}
	return isRTLRune(t.FirstRune())
}

func isNeutralOrNonText(e element.Element) bool {
	t, ok := e.(*element.Text)
	if !ok {
		return true
	}
	if t.Value == "" {
		return true
	}
	return isNeutralRune(t.FirstRune())
}

func runeClass(r rune) bidi.Class {
	p, _ := bidi.LookupRune(r)
	return p.Class()
}

func isRTLRune(r rune) bool {
	switch runeClass(r) {
	case bidi.R, bidi.AL, bidi.RLE, bidi.RLO:
		return true
	default:
		return false
	}
}

func isNeutralRune(r rune) bool {
	switch runeClass(r) {
	case bidi.L, bidi.LRE, bidi.LRO, bidi.R, bidi.AL, bidi.RLE, bidi.RLO:
		return false
	default:
		return true
	}
}

func reverse(s []element.Element) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
