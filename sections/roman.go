package sections

import "strings"

// romanDigits pairs each subtractive/additive Roman numeral symbol with
// its value, largest first, the standard greedy-encoding table.
var romanDigits = []struct {
	value  int
	symbol string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

// Roman formats n (n >= 1) as a lowercase Roman numeral, the front-matter
// page-label convention. n <= 0 returns "".
func Roman(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	for _, d := range romanDigits {
		for n >= d.value {
			b.WriteString(d.symbol)
			n -= d.value
		}
	}
	return b.String()
}
