package hyphen

import (
	"io"
	"strings"
	"unicode/utf8"
)

// trie is a rune-indexed trie used to store hyphenation patterns keyed by
// their letters (digits stripped), each leaf holding the pattern's digit
// value array.
type trie struct {
	leaf     bool
	value    any
	children map[rune]*trie
}

func newTrie() *trie {
	return &trie{children: make(map[rune]*trie)}
}

func (p *trie) addRunes(r io.RuneReader) *trie {
	sym, _, err := r.ReadRune()
	if err != nil {
		p.leaf = true
		return p
	}
	n := p.children[sym]
	if n == nil {
		n = newTrie()
		p.children[sym] = n
	}
	return n.addRunes(r)
}

// addValue adds a string to the trie with an associated value, overwriting
// any value already stored at that leaf.
func (p *trie) addValue(s string, v any) {
	if len(s) == 0 {
		return
	}
	leaf := p.addRunes(strings.NewReader(s))
	leaf.value = v
}

// allSubstringsAndValues returns every anchored prefix of s present in the
// trie, together with its stored value, in order of increasing length.
func (p *trie) allSubstringsAndValues(s string) ([]string, []any) {
	var sv []string
	var vv []any
	for pos, r := range s {
		child, ok := p.children[r]
		if !ok {
			break
		}
		if child.leaf {
			sv = append(sv, s[0:pos+utf8.RuneLen(r)])
			vv = append(vv, child.value)
		}
		p = child
	}
	return sv, vv
}
