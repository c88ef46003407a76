// Package breaker implements the TeX-style optimal-fit dynamic-programming
// line/page breaker shared by the horizontal and vertical assemblers. It
// is abstracted over an Axis so the same algorithm serves both: the
// horizontal list measures width and emits HBoxes, the vertical list
// measures height and emits Pages.
package breaker

import (
	"math"

	"typeset/element"
	"typeset/units"
)

// Axis supplies everything the breaker needs to know about one dimension
// of a specific element without hard-coding horizontal or vertical
// semantics into the DP itself.
type Axis interface {
	// Measure returns e's natural contribution along this axis when not
	// itself the chosen break; a Discretionary measures as its NoBreak
	// branch.
	Measure(e element.Element) units.SP
	// Stretch and Shrink report e's elastic contribution (0, false for
	// anything but Glue). infinite, when true, dominates every finite
	// contribution accumulated in the same chunk.
	Stretch(e element.Element) (amount units.SP, infinite bool)
	Shrink(e element.Element) (amount units.SP, infinite bool)
	// DiscretionaryWidth returns the branch width a Discretionary
	// contributes when it is the start (side=AfterBreak, its postBreak)
	// or end (side=AtBreak, its preBreak) of a chunk.
	DiscretionaryWidth(d *element.Discretionary, side element.BreakSide) units.SP
	// MakeOutputBox materializes the box for one chosen chunk; counter is
	// Break's running counter (startCounter for the first box, then
	// advanced by 1+ExtraIncrement per box), shift an axis-specific
	// vertical offset.
	MakeOutputBox(content []element.Element, counter int, shift units.SP) element.Element
	// GetElementSublist returns the elements actually drawn for the chunk
	// [beginBP, endBP), applying axis-specific framing: ragged-margin
	// glue for lines, column grouping for pages.
	GetElementSublist(list []element.Element, beginBP, endBP int) []element.Element
	// ExtraIncrement lets the vertical axis advance the physical page
	// counter for a chunk containing whole-page inserts; horizontal
	// implementations return 0.
	ExtraIncrement(chunk []element.Element) int
}

// Config holds the demerit weights the source left as implicit constants
// as tunable configuration.
type Config struct {
	Target         units.SP
	FlaggedDemerit float64
	LinePenalty    float64
}

// DefaultConfig mirrors TeX's conventional \linepenalty and
// \doublehyphendemerits defaults.
func DefaultConfig(target units.SP) Config {
	return Config{Target: target, FlaggedDemerit: 3000, LinePenalty: 10}
}

// infFloat stands in for +∞ in ratio/badness arithmetic: large enough to
// always lose against any feasible alternative, small enough that squaring
// it in the demerits formula stays within float64 range.
const infFloat = 1e6

func discardable(e element.Element) bool {
	switch v := e.(type) {
	case *element.Glue, *element.Penalty, *element.ColumnBreak, *element.ImageBreak:
		return true
	case *element.Kern:
		return !v.Explicit
	default:
		return false
	}
}

// legalBreak reports whether position p (0<=p<len(list)) is a legal
// breakpoint, and whether it is a forced one.
func legalBreak(list []element.Element, p int) (legal, forced bool) {
	switch v := list[p].(type) {
	case *element.Penalty:
		if v.Cost <= -element.Inf {
			return true, true
		}
		return v.Cost < element.Inf, false
	case *element.Discretionary:
		return true, false
	case *element.Glue:
		if p == 0 {
			return false, false
		}
		// A kern before the glue makes it breakable even when the kern
		// itself is implicit (and therefore discardable once broken at).
		if _, isKern := list[p-1].(*element.Kern); isKern {
			return true, false
		}
		return !discardable(list[p-1]), false
	default:
		return false, false
	}
}

func flaggedAt(list []element.Element, k int) bool {
	return k > 0 && k < len(list) && list[k].Kind() == element.KindDiscretionary
}

// penaltyCostAt returns the demerit-relevant cost of the breakpoint at k.
func penaltyCostAt(list []element.Element, k int) (int, bool) {
	if k < 0 || k >= len(list) {
		return 0, false
	}
	switch v := list[k].(type) {
	case *element.Penalty:
		return v.Cost, true
	case *element.Discretionary:
		return v.Penalty, true
	default:
		return 0, false
	}
}

// sums holds the running prefix totals used to measure any chunk [i,j) in
// O(1): cumulative width, and stretch/shrink split into a finite part and
// an infinite-glue occurrence count, since an infinite component
// dominates any finite one accumulated in the same range.
type sums struct {
	w                []float64
	yFin, zFin       []float64
	yInfCnt, zInfCnt []int
}

func buildSums(list []element.Element, axis Axis) sums {
	n := len(list)
	s := sums{
		w: make([]float64, n+1), yFin: make([]float64, n+1), zFin: make([]float64, n+1),
		yInfCnt: make([]int, n+1), zInfCnt: make([]int, n+1),
	}
	for k, e := range list {
		w := axis.Measure(e)
		y, yInf := axis.Stretch(e)
		z, zInf := axis.Shrink(e)
		s.w[k+1] = s.w[k] + float64(w)
		s.yFin[k+1] = s.yFin[k]
		s.yInfCnt[k+1] = s.yInfCnt[k]
		if yInf {
			s.yInfCnt[k+1]++
		} else {
			s.yFin[k+1] += float64(y)
		}
		s.zFin[k+1] = s.zFin[k]
		s.zInfCnt[k+1] = s.zInfCnt[k]
		if zInf {
			s.zInfCnt[k+1]++
		} else {
			s.zFin[k+1] += float64(z)
		}
	}
	return s
}

// chunk reports the natural width and elastic capacity of list[i:j), with
// the boundary elements corrected for discard/discretionary-branch rules:
// the breakpoint element ending the previous chunk (at i) is excluded (or,
// for a Discretionary, replaced by its postBreak width), and a
// Discretionary chosen as this chunk's own end (at j) contributes its
// preBreak width though it falls outside the [i,j) range.
func chunk(list []element.Element, axis Axis, s sums, i, j int) (w, yFin, zFin float64, yInf, zInf bool) {
	n := len(list)
	w = s.w[j] - s.w[i]
	yFin = s.yFin[j] - s.yFin[i]
	zFin = s.zFin[j] - s.zFin[i]
	yInfCnt := s.yInfCnt[j] - s.yInfCnt[i]
	zInfCnt := s.zInfCnt[j] - s.zInfCnt[i]

	if i > 0 && i < n {
		switch v := list[i].(type) {
		case *element.Glue:
			w -= float64(v.Size)
			y, yi := axis.Stretch(v)
			if yi {
				yInfCnt--
			} else {
				yFin -= float64(y)
			}
			z, zi := axis.Shrink(v)
			if zi {
				zInfCnt--
			} else {
				zFin -= float64(z)
			}
		case *element.Discretionary:
			w += -float64(axis.Measure(v)) + float64(axis.DiscretionaryWidth(v, element.AfterBreak))
		}
	}
	if j < n {
		if v, ok := list[j].(*element.Discretionary); ok {
			w += float64(axis.DiscretionaryWidth(v, element.AtBreak))
		}
	}
	return w, yFin, zFin, yInfCnt > 0, zInfCnt > 0
}

func ratio(target units.SP, w, yFin, zFin float64, yInf, zInf bool) float64 {
	slack := float64(target) - w
	switch {
	case slack >= 0 && yInf:
		return 0
	case slack >= 0 && yFin > 0:
		return math.Min(slack/yFin, infFloat)
	case slack >= 0:
		return infFloat
	case zInf:
		return 0
	case zFin > 0:
		return math.Max(slack/zFin, -infFloat)
	default:
		return -infFloat
	}
}

func badness(r float64) float64 {
	if r < -1 {
		return infFloat
	}
	b := 100 * math.Pow(math.Abs(r), 3)
	if b > 10000 {
		return 10000
	}
	return b
}

// demerits implements d = (lineBadness+b)² + pi·|pi| +
// consecutiveFlaggedPenalty (so a negative penalty lowers d by pi²),
// skipping the penalty term for a forced break
// (mandatory, not a quality signal) and charging the flagged-pair term
// only when both the predecessor and this break are Discretionaries.
func demerits(cfg Config, list []element.Element, i, j int, r float64, forced bool) float64 {
	b := badness(r)
	d := cfg.LinePenalty + b
	d = d * d
	if !forced {
		if pen, ok := penaltyCostAt(list, j); ok {
			if pen >= 0 {
				d += float64(pen) * float64(pen)
			} else {
				d -= float64(pen) * float64(pen)
			}
		}
	}
	if flaggedAt(list, i) && flaggedAt(list, j) {
		d += cfg.FlaggedDemerit
	}
	return d
}

// Break runs the optimal-fit DP over list along axis and returns the
// output boxes materialized for the chosen breakpoints (HBoxes for lines,
// Pages for pages). startCounter seeds the running counter axis.
// MakeOutputBox receives (e.g. the first line number, or first physical
// page number).
func Break(list []element.Element, axis Axis, cfg Config, startCounter int) []element.Element {
	n := len(list)
	if n == 0 {
		return nil
	}

	s := buildSums(list, axis)

	const unreachable = math.MaxFloat64
	D := make([]float64, n+1)
	pred := make([]int, n+1)
	// pageNum[j] is the physical page number the optimal path reaching j
	// would have just closed - tracked purely to resolve EvenPageOnly
	// penalties (oddPage()'s forced alternative), whose applicability is
	// conditional on a page parity nothing else in the DP needs to know.
	// It deliberately ignores axis.ExtraIncrement (only applied once, at
	// final materialization below) since consulting it here would mean
	// materializing every candidate chunk's content just to resolve a
	// penalty that, in practice, never coincides with a whole-page image
	// insert; an approximation in the same spirit as the kerning
	// discretionary fallback this breaker already treats as approximate.
	pageNum := make([]int, n+1)
	for i := range D {
		D[i] = unreachable
	}
	D[0] = 0
	pred[0] = -1
	pageNum[0] = startCounter - 1

	var candidates []int // legal breakpoints seen so far, including the virtual start 0
	candidates = append(candidates, 0)
	lastForced := 0

	// considerBreak relaxes breakpoint j against every live predecessor.
	// evenOnly restricts predecessors to those for which the chunk [i, j)
	// would close an even physical page: an even-page-only forced penalty
	// either ends an even page (the blank verso oddPage() asks for, or
	// the content page itself when it happens to be even) or is inert,
	// which is what guarantees the content after it starts on an odd
	// page. An inert penalty relaxes nothing and does not reset the
	// forced-break barrier.
	considerBreak := func(j int, forced, evenOnly bool) {
		best := unreachable
		bestI := -1
		for _, i := range candidates {
			if i < lastForced || D[i] == unreachable {
				continue
			}
			if evenOnly && (pageNum[i]+1)%2 != 0 {
				continue
			}
			w, yFin, zFin, yInf, zInf := chunk(list, axis, s, i, j)
			r := ratio(cfg.Target, w, yFin, zFin, yInf, zInf)
			d := D[i] + demerits(cfg, list, i, j, r, forced)
			if d < best {
				best = d
				bestI = i
			}
		}
		if bestI >= 0 {
			D[j] = best
			pred[j] = bestI
			pageNum[j] = pageNum[bestI] + 1
		}
		candidates = append(candidates, j)
		if forced && (!evenOnly || bestI >= 0) {
			lastForced = j
		}
	}

	for p := 0; p < n; p++ {
		legal, forced := legalBreak(list, p)
		if !legal {
			continue
		}
		pen, isPen := list[p].(*element.Penalty)
		considerBreak(p, forced, isPen && pen.EvenPageOnly)
	}
	considerBreak(n, true, false)

	if D[n] == unreachable {
		// Nothing was ever feasible (e.g. a single grossly oversized
		// element); fall back to one chunk spanning the whole list.
		return []element.Element{axis.MakeOutputBox(axis.GetElementSublist(list, 0, n), startCounter, 0)}
	}

	var bps []int
	for b := n; b >= 0; b = pred[b] {
		bps = append(bps, b)
		if b == 0 {
			break
		}
	}
	// bps is n,...,0; reverse to 0,...,n.
	for l, r := 0, len(bps)-1; l < r; l, r = l+1, r-1 {
		bps[l], bps[r] = bps[r], bps[l]
	}

	var out []element.Element
	counter := startCounter
	for k := 0; k < len(bps)-1; k++ {
		begin, end := bps[k], bps[k+1]
		content := axis.GetElementSublist(list, begin, end)
		out = append(out, axis.MakeOutputBox(content, counter, 0))
		counter += 1 + axis.ExtraIncrement(content)
	}
	return out
}
