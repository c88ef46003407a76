package vlist

import (
	"sort"

	"typeset/element"
)

// ColumnLayout and SingleColumn are re-exported from element so callers
// configuring a registry don't need to import both packages.
type ColumnLayout = element.ColumnLayout

var SingleColumn = element.SingleColumn

// ColumnRegistry is a floor-lookup registry from element index to the
// ColumnLayout effective from that index forward, until a later recorded
// index supersedes it. Go has no built-in floor-lookup map, so this is
// the idiomatic stand-in: a slice kept sorted by index, queried with
// sort.Search.
type ColumnRegistry struct {
	entries []layoutEntry
}

type layoutEntry struct {
	from   int
	layout ColumnLayout
}

// NewColumnRegistry returns a registry covering index 0 with the
// single-column default, so every lookup is guaranteed to resolve even
// before any layout change has been recorded.
func NewColumnRegistry() *ColumnRegistry {
	return &ColumnRegistry{entries: []layoutEntry{{from: 0, layout: SingleColumn}}}
}

// SetLayout records that layout takes effect from element index from
// onward. Calling it with the same from twice replaces the earlier
// entry; indices must be supplied in non-decreasing order by the caller
// (the vertical list is built append-only, left to right).
func (r *ColumnRegistry) SetLayout(from int, layout ColumnLayout) {
	n := len(r.entries)
	if n > 0 && r.entries[n-1].from == from {
		r.entries[n-1].layout = layout
		return
	}
	r.entries = append(r.entries, layoutEntry{from: from, layout: layout})
}

// LayoutAt returns the layout effective at elementIndex: the entry with
// the largest from <= elementIndex.
func (r *ColumnRegistry) LayoutAt(elementIndex int) ColumnLayout {
	i := sort.Search(len(r.entries), func(i int) bool {
		return r.entries[i].from > elementIndex
	})
	return r.entries[i-1].layout
}
