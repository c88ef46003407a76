package breaker

import "typeset/element"

// Sublist flattens list[begin:end) into the elements actually drawn for
// one output chunk: the breakpoint element starting this chunk (at begin)
// is dropped if discardable, or replaced by its postBreak content if it is
// a Discretionary; a Discretionary ending the chunk (at end, outside the
// exclusive range) contributes its preBreak content; any other
// Discretionary encountered renders as its noBreak content. The vertical
// axis calls this and then groups columns; the horizontal axis builds its
// lines with its own loop that adds ragged-margin glue.
func Sublist(list []element.Element, begin, end int) []element.Element {
	n := len(list)
	var out []element.Element
	for k := begin; k < end; k++ {
		e := list[k]
		if k == begin {
			if d, ok := e.(*element.Discretionary); ok {
				out = append(out, d.PostBreak.Children...)
				continue
			}
			if discardable(e) {
				continue
			}
		}
		if d, ok := e.(*element.Discretionary); ok {
			out = append(out, d.NoBreak.Children...)
			continue
		}
		out = append(out, e)
	}
	if end < n {
		if d, ok := list[end].(*element.Discretionary); ok {
			out = append(out, d.PreBreak.Children...)
		}
	}
	return out
}
