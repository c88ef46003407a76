package hyphen

import (
	"strings"
	"unicode"
)

// addPatternString stores a TeX-style hyphenation pattern such as ".hy2p"
// or "hy3phen" in the trie, keyed by its letters (anchor dots included
// literally) with digits stripped, and a value array carrying the digit
// that appeared after each letter (0 if absent), the standard Liang
// pattern representation.
func (p *trie) addPatternString(s string) {
	var v []int
	const zero = '0'

	runes := []rune(s)
	for i, sym := range runes {
		if unicode.IsDigit(sym) {
			if i == 0 {
				v = append(v, int(sym-zero))
			}
			continue
		}
		if i < len(runes)-1 && unicode.IsDigit(runes[i+1]) {
			v = append(v, int(runes[i+1]-zero))
		} else {
			v = append(v, 0)
		}
	}

	pure := strings.Map(func(sym rune) rune {
		if unicode.IsDigit(sym) {
			return -1
		}
		return sym
	}, s)

	p.addValue(pure, v)
}
