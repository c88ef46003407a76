// Package hyphen implements the Liang/TeX pattern-matching hyphenation
// engine: it loads a .dic pattern file and segments words into
// hyphenatable syllables. Once loaded a Dictionary is immutable and safe
// to share across goroutines and jobs.
package hyphen

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"typeset/errs"
)

// Dictionary holds a loaded set of hyphenation patterns for one language.
type Dictionary struct {
	patterns *trie

	LeftHyphenMin          int
	RightHyphenMin         int
	CompoundLeftHyphenMin  int
	CompoundRightHyphenMin int
	UTF8                   bool
}

// defaults mirror the conventional Liang minimums used when a .dic omits
// the corresponding header key.
const (
	defaultLeftHyphenMin  = 2
	defaultRightHyphenMin = 3
)

// Load parses a .dic file: header keys (one per line, "KEY value" or a bare
// boolean key like "UTF-8"), a "NEXTLEVEL" delimiter, then one pattern per
// body line. Blank lines and lines starting with '%' are comments anywhere
// in the file. Load fails with a *errs.Error of KindLoad on an unknown
// header key or a malformed minimum.
func Load(r io.Reader) (*Dictionary, error) {
	const op = "hyphen.Load"

	d := &Dictionary{
		patterns:       newTrie(),
		LeftHyphenMin:  defaultLeftHyphenMin,
		RightHyphenMin: defaultRightHyphenMin,
	}

	sc := bufio.NewScanner(r)
	inHeader := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if line == "NEXTLEVEL" {
			inHeader = false
			continue
		}
		if !inHeader {
			d.patterns.addPatternString(strings.ToLower(line))
			continue
		}

		key, rest, _ := strings.Cut(line, " ")
		key = strings.ToUpper(strings.TrimSpace(key))
		val := strings.TrimSpace(rest)

		switch key {
		case "LEFTHYPHENMIN":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, errs.Load(op, err)
			}
			d.LeftHyphenMin = n
		case "RIGHTHYPHENMIN":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, errs.Load(op, err)
			}
			d.RightHyphenMin = n
		case "COMPOUNDLEFTHYPHENMIN":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, errs.Load(op, err)
			}
			d.CompoundLeftHyphenMin = n
		case "COMPOUNDRIGHTHYPHENMIN":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, errs.Load(op, err)
			}
			d.CompoundRightHyphenMin = n
		case "UTF-8":
			d.UTF8 = true
		default:
			return nil, errs.Loadf(op, "unknown header key %q", key)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Load(op, err)
	}
	return d, nil
}

// markers returns, for each inter-letter position of word, the maximum
// pattern digit that applies there - the classic Liang "value" array,
// folded from every anchored pattern match against the sentinel-wrapped,
// lowercased word.
func (d *Dictionary) markers(word string) []int {
	wrapped := "." + strings.ToLower(word) + "."
	v := make([]int, utf8.RuneCountInString(wrapped))

	vIndex := 0
	for pos := range wrapped {
		strs, values := d.patterns.allSubstringsAndValues(wrapped[pos:])
		for i, val := range values {
			digits := val.([]int)
			matched := strs[i]
			diff := len(digits) - utf8.RuneCountInString(matched)
			vs := v[vIndex-diff:]
			for j, dv := range digits {
				if dv > vs[j] {
					vs[j] = dv
				}
			}
		}
		vIndex++
	}
	// Drop the two sentinel-boundary slots.
	return v[1 : len(v)-1]
}

// Hyphenate splits word into hyphenatable segments. Concatenating the
// result always reproduces word, except that a segment
// made entirely of an original "-" is merged onto the preceding segment and
// a segment starting with "-" has that hyphen moved to the previous
// segment's tail instead.
func (d *Dictionary) Hyphenate(word string) []string {
	if word == "" {
		return nil
	}
	runes := []rune(word)
	markers := d.markers(word)

	var segments []string
	var cur strings.Builder
	for i, r := range runes {
		cur.WriteRune(r)
		if i >= d.LeftHyphenMin-1 && i < len(markers)-d.RightHyphenMin && markers[i]%2 != 0 {
			segments = append(segments, cur.String())
			cur.Reset()
		}
	}
	segments = append(segments, cur.String())

	return postFixSegments(segments)
}

// postFixSegments applies the two segment clean-up rules.
func postFixSegments(segments []string) []string {
	out := segments[:0:0]
	for _, seg := range segments {
		switch {
		case seg == "-" && len(out) > 0:
			out[len(out)-1] += "-"
		case strings.HasPrefix(seg, "-") && len(out) > 0:
			out[len(out)-1] += "-"
			rest := seg[len("-"):]
			if rest != "" {
				out = append(out, rest)
			}
		default:
			out = append(out, seg)
		}
	}
	return out
}
