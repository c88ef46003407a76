package vlist

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"typeset/errs"
	"typeset/units"
)

// distance is a YAML scalar carrying a distance literal ("12pt", "1in");
// it unmarshals straight into an SP via a custom UnmarshalYAML alongside
// the plain units.SP it's defined over.
type distance units.SP

func (d *distance) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	sp, err := units.ParseDistance(s)
	if err != nil {
		return err
	}
	*d = distance(sp)
	return nil
}

// Geometry is the page/column/baseline configuration a document is
// typeset against - the one piece of "configuration" genuinely owned by
// the core rather than the out-of-scope config loader, since the
// vertical breaker needs these numbers to run at all.
type Geometry struct {
	PageWidth    distance `yaml:"page_width" validate:"gt=0"`
	PageHeight   distance `yaml:"page_height" validate:"gt=0"`
	Margin       distance `yaml:"margin" validate:"gte=0"`
	BaselineSkip distance `yaml:"baseline_skip" validate:"gt=0"`
	Columns      int      `yaml:"columns" validate:"min=1"`
	ColumnMargin distance `yaml:"column_margin" validate:"gte=0"`
}

// TextWidth is the page width minus both side margins.
func (g Geometry) TextWidth() units.SP {
	return units.SP(g.PageWidth) - 2*units.SP(g.Margin)
}

// ColumnWidth is the width available to one of Columns parallel columns
// within TextWidth, after subtracting the inter-column margins.
func (g Geometry) ColumnWidth() units.SP {
	if g.Columns <= 1 {
		return g.TextWidth()
	}
	gutters := units.SP(g.Columns-1) * units.SP(g.ColumnMargin)
	return (g.TextWidth() - gutters) / units.SP(g.Columns)
}

// DefaultGeometry is a US-trade-sized single-column page with a 0.75in
// margin, 11pt/1.2 baseline skip - a plausible sensible default for
// callers that don't load a document-specific Geometry.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:    distance(units.FromIn(6)),
		PageHeight:   distance(units.FromIn(9)),
		Margin:       distance(units.FromIn(0.75)),
		BaselineSkip: distance(DefaultBaselineSkip),
		Columns:      1,
	}
}

// LoadGeometry parses a YAML document into a Geometry and validates it
// with struct tags (validator.v10, the same library and tag style the
// teacher's config package uses for its own YAML-backed structs).
func LoadGeometry(data []byte) (Geometry, error) {
	const op = "vlist.LoadGeometry"
	var g Geometry
	if err := yaml.Unmarshal(data, &g); err != nil {
		return Geometry{}, errs.Load(op, err)
	}
	if err := validator.New().Struct(g); err != nil {
		return Geometry{}, errs.Load(op, fmt.Errorf("invalid geometry: %w", err))
	}
	return g, nil
}
