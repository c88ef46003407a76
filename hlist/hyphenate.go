package hlist

import (
	"strings"

	"typeset/element"
)

// hyphenate runs stage 2 over stage 1's output: every word-shaped Text
// element (a run made entirely of word runes - letters, hyphens and
// apostrophes - since wordsFromText never
// mixes word and non-word runes in one buffer) is split at its
// Dictionary.Hyphenate boundaries, and a Discretionary offering the
// hyphen is spliced between consecutive segments. Non-word Text,
// Glue and everything else passes through untouched.
func (a *Assembler) hyphenate(list []element.Element) []element.Element {
	if a.Hyphens == nil {
		return list
	}
	var out []element.Element
	for _, e := range list {
		t, ok := e.(*element.Text)
		if !ok || !isWordText(t.Value) {
			out = append(out, e)
			continue
		}
		segments := a.Hyphens.Hyphenate(t.Value)
		if len(segments) <= 1 {
			out = append(out, e)
			continue
		}
		for i, seg := range segments {
			out = append(out, element.NewText(seg, t.Font))
			if i < len(segments)-1 {
				// A segment already ending in "-" (a compound word's own
				// hyphen, kept on the segment tail by the dictionary's
				// post-fix rules) breaks with an empty preBreak: the
				// hyphen is part of the text, not added by the break.
				pre := "-"
				if strings.HasSuffix(seg, "-") {
					pre = ""
				}
				out = append(out, element.NewDiscretionary(pre, "", "", t.Font, a.Opts.HyphenPenalty))
			}
		}
	}
	return out
}

// isWordText reports whether every rune in s is a word rune, the
// condition under which a Text buffer from stage 1 is hyphenation
// eligible.
func isWordText(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isWordRune(r) {
			return false
		}
	}
	return true
}

// discText returns the single string content of an HBox built by
// NewDiscretionary's box helper (nil or one Text child), the common
// reader used by stage 3 and stage 4 when inspecting a branch.
func discText(b *element.HBox) string {
	if b == nil || len(b.Children) == 0 {
		return ""
	}
	if t, ok := b.Children[0].(*element.Text); ok {
		return t.Value
	}
	var sb strings.Builder
	for _, c := range b.Children {
		if t, ok := c.(*element.Text); ok {
			sb.WriteString(t.Value)
		}
	}
	return sb.String()
}
