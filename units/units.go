// Package units implements the engine's single distance type: the scaled
// point. Every width, height, depth, glue size and kern in the typesetter is
// an SP, so all layout arithmetic is exact signed 64-bit integer arithmetic -
// never floating point.
//
// Conversion factors and rounding follow the same "derive everything from a
// handful of named constants" style used for the KP3 unit tables, see
// convert/kfx/kp3_units.go in the source this package was adapted from.
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"typeset/errs"
)

// SP is a scaled point: 1pt == 65536 SP. All document geometry is expressed
// in SP so that line and page breaking never accumulates floating-point
// error across thousands of glue computations.
type SP int64

const (
	// PerPoint is the number of scaled points in one point (TeX's definition).
	PerPoint SP = 1 << 16
	// PerPica is the number of scaled points in one pica (12pt).
	PerPica = PerPoint * 12
	// PerInch is the number of scaled points in one inch (72pt).
	PerInch = PerPoint * 72
)

// cmPerInch is the standard metric/imperial conversion factor.
const cmPerInch = 2.54

// perCM and perMM are not integer constants because 2.54 does not divide
// PerInch evenly; they are computed once and used by FromCM/FromMM, rounding
// to the nearest SP the same way FromPt does for fractional points.
var (
	perCM = float64(PerInch) / cmPerInch
	perMM = perCM / 10
)

func round(v float64) SP {
	return SP(math.Round(v))
}

// FromPt converts a floating-point point value to SP, rounding to the
// nearest scaled point.
func FromPt(pt float64) SP { return round(pt * float64(PerPoint)) }

// FromPc converts picas to SP.
func FromPc(pc float64) SP { return round(pc * float64(PerPica)) }

// FromIn converts inches to SP.
func FromIn(in float64) SP { return round(in * float64(PerInch)) }

// FromCM converts centimeters to SP.
func FromCM(cm float64) SP { return round(cm * perCM) }

// FromMM converts millimeters to SP.
func FromMM(mm float64) SP { return round(mm * perMM) }

// Pt returns the value in points.
func (s SP) Pt() float64 { return float64(s) / float64(PerPoint) }

// Pc returns the value in picas.
func (s SP) Pc() float64 { return float64(s) / float64(PerPica) }

// In returns the value in inches.
func (s SP) In() float64 { return float64(s) / float64(PerInch) }

// CM returns the value in centimeters.
func (s SP) CM() float64 { return float64(s) / perCM }

// MM returns the value in millimeters.
func (s SP) MM() float64 { return float64(s) / perMM }

// unitScale maps a lowercase unit name to the factor used to convert a
// floating-point literal in that unit into SP.
var unitScale = map[string]func(float64) SP{
	"pt": FromPt,
	"pc": FromPc,
	"in": FromIn,
	"cm": FromCM,
	"mm": FromMM,
	"sp": func(v float64) SP { return SP(math.Round(v)) },
}

// ParseDistance parses a distance literal of the form
// "<signed-decimal>\s*<unit>" where unit is one of pt, pc, in, cm, mm, sp,
// matched case-insensitively. Returns a *errs.Error of KindParse on missing
// or unknown unit, or on a malformed number.
func ParseDistance(s string) (SP, error) {
	const op = "ParseDistance"
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, errs.Parsef(op, "empty distance literal")
	}

	i := 0
	if trimmed[0] == '+' || trimmed[0] == '-' {
		i++
	}
	for i < len(trimmed) && (isDigit(trimmed[i]) || trimmed[i] == '.') {
		i++
	}
	numPart := trimmed[:i]
	rest := strings.TrimSpace(trimmed[i:])

	if numPart == "" || numPart == "+" || numPart == "-" {
		return 0, errs.Parsef(op, "missing numeric value in %q", s)
	}
	if rest == "" {
		return 0, errs.Parsef(op, "missing unit in %q", s)
	}

	value, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, errs.Parse(op, fmt.Errorf("invalid number %q: %w", numPart, err))
	}

	conv, ok := unitScale[strings.ToLower(rest)]
	if !ok {
		return 0, errs.Parsef(op, "unknown unit %q", rest)
	}
	return conv(value), nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// FormatDistance renders an SP value back as a distance literal in the
// requested unit, e.g. FormatDistance(65536, "pt") == "1pt". unit is matched
// case-insensitively against the same closed set accepted by ParseDistance.
func FormatDistance(v SP, unit string) (string, error) {
	const op = "FormatDistance"
	switch strings.ToLower(unit) {
	case "pt":
		return formatFloat(v.Pt()) + "pt", nil
	case "pc":
		return formatFloat(v.Pc()) + "pc", nil
	case "in":
		return formatFloat(v.In()) + "in", nil
	case "cm":
		return formatFloat(v.CM()) + "cm", nil
	case "mm":
		return formatFloat(v.MM()) + "mm", nil
	case "sp":
		return strconv.FormatInt(int64(v), 10) + "sp", nil
	default:
		return "", errs.Parsef(op, "unknown unit %q", unit)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Max returns the larger of a and b.
func Max(a, b SP) SP {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b SP) SP {
	if a < b {
		return a
	}
	return b
}
