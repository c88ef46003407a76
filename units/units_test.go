package units

import (
	"testing"
)

func TestParseDistance(t *testing.T) {
	cases := []struct {
		in   string
		want SP
	}{
		{"2.54 cm", PerInch},
		{"-3 pt", -3 * PerPoint},
		{"1in", PerInch},
		{"12pc", PerPica * 12},
		{"10 SP", 10},
		{"+5pt", 5 * PerPoint},
	}
	for _, c := range cases {
		got, err := ParseDistance(c.in)
		if err != nil {
			t.Fatalf("ParseDistance(%q) unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseDistance(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseDistanceErrors(t *testing.T) {
	cases := []string{"5", "1km", "", "pt", "abcpt"}
	for _, in := range cases {
		if _, err := ParseDistance(in); err == nil {
			t.Errorf("ParseDistance(%q) expected error, got nil", in)
		}
	}
}

func TestFormatDistanceRoundTrip(t *testing.T) {
	cases := []struct {
		v    SP
		unit string
	}{
		{PerInch, "in"},
		{PerPoint * 12, "pt"},
		{1234567, "sp"},
		{-PerPica * 3, "pc"},
	}
	for _, c := range cases {
		s, err := FormatDistance(c.v, c.unit)
		if err != nil {
			t.Fatalf("FormatDistance error: %v", err)
		}
		got, err := ParseDistance(s)
		if err != nil {
			t.Fatalf("ParseDistance(%q) error: %v", s, err)
		}
		if got != c.v {
			t.Errorf("round trip %d %s -> %q -> %d", c.v, c.unit, s, got)
		}
	}
}
