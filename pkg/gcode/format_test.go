package gcode

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		expected string
	}{
		{10, 2, "10"},
		{100, 2, "100"},
		{10.5, 2, "10.5"},
		{10.457, 2, "10.46"},
		{0, 2, "0"},
		{-3.2, 2, "-3.2"},
		{5.5, 4, "5.5"},
		{0.00004, 4, "0"},
		{12.34567, 4, "12.3457"},
		{7, 0, "7"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.v, tt.decimals); got != tt.expected {
			t.Errorf("FormatNumber(%v, %d) = %q, expected %q", tt.v, tt.decimals, got, tt.expected)
		}
	}
}

func TestWord(t *testing.T) {
	if got := Word("E", 10.5, 4); got != " E10.5" {
		t.Errorf("expected ' E10.5', got %q", got)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		v        float64
		expected float64
	}{
		{5.5, 5.5},
		{0.12346, 0.1235},
		{1.00004, 1},
		{-0.12346, -0.1235},
		// Stored just below the tie; scaling by 10^4 would land on .5.
		{1.48725, 1.4872},
		{0.00015, 0.0001},
		{0.12345, 0.1235},
	}
	for _, tt := range tests {
		if got := Round(tt.v, 4); got != tt.expected {
			t.Errorf("Round(%v, 4) = %v, expected %v", tt.v, got, tt.expected)
		}
	}
	// An exact binary tie goes to even.
	if got := Round(2.5, 0); got != 2 {
		t.Errorf("Round(2.5, 0) = %v, expected 2", got)
	}
}
