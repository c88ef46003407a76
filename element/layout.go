package element

import (
	"typeset/errs"
	"typeset/font"
	"typeset/units"
)

// LayOutVertically emits e and everything inside it to sink, with (x, y)
// the top-left corner of the space e occupies, and returns the vertical
// advance e consumed. Glue is placed at its natural size; the breaker has
// already chosen breaks so that each page's content is near its target,
// and distributing the residual is the back-end's concern, not the
// element model's.
//
// Coordinate convention: vertical placement passes the top edge down;
// horizontal placement (inside a line) passes the baseline. An HBox
// bridges the two by placing its children on the baseline sitting
// Height below its own top edge.
func LayOutVertically(e Element, x, y units.SP, sink font.Sink) (units.SP, error) {
	switch v := e.(type) {
	case *Page:
		var adv units.SP
		for _, c := range v.Children {
			d, err := LayOutVertically(c, x, y+adv+v.BaselineShift, sink)
			if err != nil {
				return adv, err
			}
			adv += d
		}
		return adv, nil
	case *VBox:
		var adv units.SP
		for _, c := range v.Children {
			d, err := LayOutVertically(c, x, y+adv, sink)
			if err != nil {
				return adv, err
			}
			adv += d
		}
		return adv, nil
	case *HBox:
		baseline := y + v.H + v.Shift
		cx := x
		for _, c := range v.Children {
			d, err := LayOutHorizontally(c, cx, baseline, sink)
			if err != nil {
				return 0, err
			}
			cx += d
		}
		return v.H + v.D, nil
	case *Columns:
		for i, col := range v.Cols {
			cx := x + units.SP(i)*(v.ColWidth+v.Layout.Margin)
			cy := y
			for _, c := range col {
				d, err := LayOutVertically(c, cx, cy, sink)
				if err != nil {
					return 0, err
				}
				cy += d
			}
		}
		return v.H + v.D, nil
	case *Rule:
		sink.DrawRule(x, y, v.Width, v.Height+v.Depth)
		return v.Height + v.Depth, nil
	case *Glue:
		return v.Size, nil
	case *Kern:
		return v.Width, nil
	case *Penalty, *Bookmark, *ColumnBreak, *ImageBreak:
		return 0, nil
	case *Text, *Discretionary:
		errs.Raise("LayOutVertically", "horizontal-only element "+e.Kind().String()+" in a vertical list")
		return 0, nil
	default:
		return e.Dims().Height + e.Dims().Depth, nil
	}
}

// LayOutHorizontally emits e to sink with x its left edge and y the
// baseline of the line it sits on, returning the horizontal advance.
func LayOutHorizontally(e Element, x, y units.SP, sink font.Sink) (units.SP, error) {
	switch v := e.(type) {
	case *Text:
		if err := v.Font.Draw(v.Value, x, y, sink); err != nil {
			return 0, err
		}
		return v.dims.Width, nil
	case *HBox:
		cx := x
		for _, c := range v.Children {
			d, err := LayOutHorizontally(c, cx, y+v.Shift, sink)
			if err != nil {
				return 0, err
			}
			cx += d
		}
		return v.W, nil
	case *VBox:
		// A VBox inside a line sits on the baseline, its content growing
		// upward from there.
		cy := y - v.H
		for _, c := range v.Children {
			d, err := LayOutVertically(c, x, cy, sink)
			if err != nil {
				return 0, err
			}
			cy += d
		}
		return v.W, nil
	case *Rule:
		sink.DrawRule(x, y-v.Height, v.Width, v.Height+v.Depth)
		return v.Width, nil
	case *Glue:
		return v.Size, nil
	case *Kern:
		return v.Width, nil
	case *Discretionary:
		// The breaker resolves every Discretionary into its surviving
		// branch before a line is materialized; one reaching layout means
		// the list was never broken, so the in-line reading applies.
		cx := x
		for _, c := range v.NoBreak.Children {
			d, err := LayOutHorizontally(c, cx, y, sink)
			if err != nil {
				return 0, err
			}
			cx += d
		}
		return v.NoBreak.W, nil
	case *Penalty, *Bookmark:
		return 0, nil
	default:
		return e.Dims().Width, nil
	}
}
