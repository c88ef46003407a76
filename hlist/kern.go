package hlist

import (
	"typeset/element"
	"typeset/font"
)

// kern runs stage 4: prevCp is threaded across the whole list, reset to
// SPACE by positive Glue and to 0 (no adjacent glyph) by a wide Rule or
// VBox, and left untouched by everything else including zero-size
// bookmarks and explicit Kerns.
func (a *Assembler) kern(list []element.Element) []element.Element {
	var out []element.Element
	var prevCp rune
	var curFont font.SizedFont

	for i, e := range list {
		switch v := e.(type) {
		case *element.Text:
			if v.Value == "" {
				out = append(out, e)
				continue
			}
			curFont = v.Font
			segs, newCp := kernRunes(v.Value, prevCp, v.Font)
			out = append(out, segs...)
			prevCp = newCp
		case *element.Glue:
			out = append(out, e)
			if v.Size > 0 {
				prevCp = ' '
			}
		case *element.Discretionary:
			var next *element.Text
			if i+1 < len(list) {
				next, _ = list[i+1].(*element.Text)
			}
			newDisc, newCp := kernDiscretionary(v, prevCp, next, curFont)
			out = append(out, newDisc)
			prevCp = newCp
		case *element.Rule:
			out = append(out, e)
			if v.Width > 0 {
				prevCp = 0
			}
		case *element.VBox:
			out = append(out, e)
			if v.W > 0 {
				prevCp = 0
			}
		default:
			out = append(out, e)
		}
	}
	return out
}

// kernRunes walks text's runes, threading prevCp in from the surrounding
// context, and splits it into Text/Kern pairs wherever font.Kerning
// reports a nonzero adjustment. It returns the rebuilt elements and the
// text's last rune, the prevCp the caller should carry forward.
func kernRunes(text string, prevCp rune, f font.SizedFont) ([]element.Element, rune) {
	runes := []rune(text)
	var out []element.Element
	cp := prevCp
	segStart := 0
	for i, r := range runes {
		if k := f.Kerning(cp, r); k != 0 {
			if i > segStart {
				out = append(out, element.NewText(string(runes[segStart:i]), f))
			}
			out = append(out, &element.Kern{Width: k})
			segStart = i
		}
		cp = r
	}
	out = append(out, element.NewText(string(runes[segStart:]), f))
	return out, cp
}

// kernDiscretionary recurses into d's three branches: preBreak and
// noBreak inherit prevCp, postBreak starts fresh at 0 since taking that
// branch means a break happened right before it. Because the breaker -
// not this pass - eventually decides which branch survives, the kern
// against whatever Text follows the Discretionary in the list is applied
// inside both the postBreak and noBreak branches rather than guessed at
// the outer level; the caller is then told to carry prevCp=0 into that
// next Text so it isn't kerned twice. Without a following Text to peek
// at, this falls back to the best-effort prevCp=noBreakCh the source
// itself acknowledges as approximate.
func kernDiscretionary(d *element.Discretionary, prevCp rune, next *element.Text, fallback font.SizedFont) (*element.Discretionary, rune) {
	preBox, _ := kernBranch(d.PreBreak, prevCp, fallback)
	noBox, noTrailing := kernBranch(d.NoBreak, prevCp, fallback)
	postBox, postTrailing := kernBranch(d.PostBreak, 0, fallback)

	if next != nil && next.Value != "" {
		c := firstRune(next.Value)
		if f := fontOf(postBox, fallback); f != nil {
			if k := f.Kerning(postTrailing, c); k != 0 {
				postBox = element.NewHBox(append(append([]element.Element{}, postBox.Children...), &element.Kern{Width: k}), 0)
			}
		}
		if f := fontOf(noBox, fallback); f != nil {
			if k := f.Kerning(noTrailing, c); k != 0 {
				noBox = element.NewHBox(append(append([]element.Element{}, noBox.Children...), &element.Kern{Width: k}), 0)
			}
		}
		return &element.Discretionary{PreBreak: preBox, PostBreak: postBox, NoBreak: noBox, Penalty: d.Penalty}, 0
	}

	return &element.Discretionary{PreBreak: preBox, PostBreak: postBox, NoBreak: noBox, Penalty: d.Penalty}, noTrailing
}

// kernBranch kerns one Discretionary branch in isolation, returning its
// rebuilt HBox and the last rune it contributes. An empty branch is
// transparent: it passes leadCp straight through, so the no-break
// reading of a hyphen discretionary (whose noBreak box is empty) still
// kerns the two letters it joins.
func kernBranch(b *element.HBox, leadCp rune, fallback font.SizedFont) (*element.HBox, rune) {
	text := discText(b)
	if text == "" {
		return element.NewHBox(nil, 0), leadCp
	}
	f := fontOf(b, fallback)
	if f == nil {
		return b, lastRune(text)
	}
	elems, trailing := kernRunes(text, leadCp, f)
	return element.NewHBox(elems, 0), trailing
}

func fontOf(b *element.HBox, fallback font.SizedFont) font.SizedFont {
	if b != nil {
		for _, c := range b.Children {
			if t, ok := c.(*element.Text); ok {
				return t.Font
			}
		}
	}
	return fallback
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}
