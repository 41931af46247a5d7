package gcode

import (
	"strconv"
	"strings"
)

// FormatNumber renders v with the given number of decimals and strips
// trailing zeros and a trailing decimal point ("10.50" -> "10.5",
// "3.00" -> "3").
func FormatNumber(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Word renders a single letter-value word such as " X10.5".
func Word(letter string, v float64, decimals int) string {
	return " " + letter + FormatNumber(v, decimals)
}

// Round rounds v to the given number of decimals. The exact binary value
// is rounded, so 1.48725 (stored just below the tie) gives 1.4872.
func Round(v float64, decimals int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	return r
}
