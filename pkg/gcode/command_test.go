package gcode

import (
	"testing"
)

func TestParseLine(t *testing.T) {
	cmd := ParseLine("G1 X10.5 y20 E1.25 F1800 ; perimeter")
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	if cmd.Name != "G1" {
		t.Errorf("expected name 'G1', got '%s'", cmd.Name)
	}
	if cmd.Args["Y"] != "20" {
		t.Errorf("expected Y=20, got '%s'", cmd.Args["Y"])
	}
	if _, ok := cmd.Args["P"]; ok {
		t.Error("expected comment text to be stripped")
	}
	if cmd.Raw != "G1 X10.5 y20 E1.25 F1800 ; perimeter" {
		t.Errorf("expected raw line preserved, got '%s'", cmd.Raw)
	}
}

func TestParseLineBlankAndComments(t *testing.T) {
	for _, line := range []string{"", "   ", "; layer 2", "(just a note)"} {
		if cmd := ParseLine(line); cmd != nil {
			t.Errorf("ParseLine(%q) = %+v, expected nil", line, cmd)
		}
	}
}

func TestParseLineParenComment(t *testing.T) {
	cmd := ParseLine("G1 (Extrude more) X5")
	if cmd.Args["X"] != "5" {
		t.Errorf("expected X=5, got '%s'", cmd.Args["X"])
	}
	if _, ok := cmd.Args["E"]; ok {
		t.Error("expected parenthesized comment to be stripped")
	}
}

func TestNormalizeOpcode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"G1", "G1"},
		{"g01", "G1"},
		{"G092", "G92"},
		{"G10", "G10"},
		{"M104", "M104"},
		{"T0", "T0"},
		{"G", "G"},
		{"Gx", "GX"},
	}
	for _, tt := range tests {
		if got := normalizeOpcode(tt.input); got != tt.expected {
			t.Errorf("normalizeOpcode(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestCommandIs(t *testing.T) {
	if !ParseLine("G1 X1").Is(OpMove) {
		t.Error("expected G1 to be a move")
	}
	if ParseLine("G10").Is(OpMove) {
		t.Error("expected G10 not to be a move")
	}
	var nilCmd *Command
	if nilCmd.Is(OpMove) {
		t.Error("expected nil command not to match")
	}
}

func TestCommandFloat(t *testing.T) {
	cmd := ParseLine("G1 X1.5 Yabc E")

	if v, st := cmd.Float("X"); st != Parsed || v != 1.5 {
		t.Errorf("expected (1.5, Parsed), got (%v, %v)", v, st)
	}
	if _, st := cmd.Float("Y"); st != Malformed {
		t.Errorf("expected Malformed for Yabc, got %v", st)
	}
	if _, st := cmd.Float("E"); st != Malformed {
		t.Errorf("expected Malformed for bare E, got %v", st)
	}
	if _, st := cmd.Float("Z"); st != Absent {
		t.Errorf("expected Absent for Z, got %v", st)
	}
}

func TestCommandRelease(t *testing.T) {
	cmd := ParseLine("G1 X1 E2")
	cmd.Release()
	if cmd.Args != nil {
		t.Errorf("expected args dropped after release, got %v", cmd.Args)
	}
	if _, st := cmd.Float("X"); st != Absent {
		t.Errorf("expected released command to report Absent, got %v", st)
	}

	var nilCmd *Command
	nilCmd.Release()
}
