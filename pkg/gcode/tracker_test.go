package gcode

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAdvanceMoveCarriesAxes(t *testing.T) {
	s := State{Cur: Position{X: 1, Y: 2, Z: 0.3, E: 4}, Feed: 1200, PrevFeed: 1200}

	next, kind, malformed := s.Step("G1 X10 E5.5")

	if kind != KindMove {
		t.Errorf("expected KindMove, got %v", kind)
	}
	if len(malformed) != 0 {
		t.Errorf("expected no malformed words, got %v", malformed)
	}
	want := State{
		Prev:     Position{X: 1, Y: 2, Z: 0.3, E: 4},
		Cur:      Position{X: 10, Y: 2, Z: 0.3, E: 5.5},
		PrevFeed: 1200,
		Feed:     1200,
	}
	if diff := cmp.Diff(want, next); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestAdvanceDoesNotMutateReceiver(t *testing.T) {
	s := State{Cur: Position{X: 1}}
	s.Step("G1 X2")
	if s.Cur.X != 1 {
		t.Errorf("expected receiver untouched, got X=%v", s.Cur.X)
	}
}

func TestAdvanceFeed(t *testing.T) {
	s := State{Feed: 1800, PrevFeed: 1800}

	s, _, _ = s.Step("G1 X1 F9000")
	if s.Feed != 9000 || s.PrevFeed != 1800 {
		t.Errorf("expected feed 1800->9000, got %d->%d", s.PrevFeed, s.Feed)
	}

	// Feed pair only moves on an explicit token.
	s, _, _ = s.Step("G1 X2")
	if s.Feed != 9000 || s.PrevFeed != 1800 {
		t.Errorf("expected feed pair unchanged, got %d->%d", s.PrevFeed, s.Feed)
	}

	s, _, _ = s.Step("G1 X3 F1800.000")
	if s.Feed != 1800 || s.PrevFeed != 9000 {
		t.Errorf("expected fractional feed token to be read, got %d->%d", s.PrevFeed, s.Feed)
	}
}

func TestAdvanceMalformedKeepsPrevious(t *testing.T) {
	s := State{Cur: Position{X: 1, Y: 2, Z: 3, E: 4}, Feed: 600}

	next, kind, malformed := s.Step("G1 Xnope Y5 Ffast")

	if kind != KindMove {
		t.Fatalf("expected KindMove, got %v", kind)
	}
	if next.Cur.X != 1 || next.Cur.Y != 5 {
		t.Errorf("expected X kept and Y updated, got %+v", next.Cur)
	}
	if next.Feed != 600 {
		t.Errorf("expected feed kept at 600, got %d", next.Feed)
	}
	if diff := cmp.Diff([]string{"Xnope", "Ffast"}, malformed); diff != "" {
		t.Errorf("malformed mismatch (-want +got):\n%s", diff)
	}
}

func TestAdvanceSetPosition(t *testing.T) {
	s := State{
		Prev: Position{E: 10},
		Cur:  Position{X: 5, Y: 5, Z: 1, E: 12},
	}

	next, kind, _ := s.Step("G92 E0 X99")

	if kind != KindSetPosition {
		t.Errorf("expected KindSetPosition, got %v", kind)
	}
	want := State{
		Prev: Position{X: 5, Y: 5, Z: 1, E: 12},
		Cur:  Position{X: 5, Y: 5, Z: 1, E: 0},
	}
	if diff := cmp.Diff(want, next); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestAdvanceSetPositionWithoutE(t *testing.T) {
	s := State{Cur: Position{E: 3}}
	next, _, _ := s.Step("G92")
	if next.Cur.E != 3 || next.Prev.E != 3 {
		t.Errorf("expected E carried over, got prev=%v cur=%v", next.Prev.E, next.Cur.E)
	}
}

func TestAdvanceOtherLines(t *testing.T) {
	s := State{Prev: Position{E: 1}, Cur: Position{E: 2}, Feed: 100}
	for _, line := range []string{"M104 S200", "; G1 X5", "G10", "G0 X5 Y5", ""} {
		next, kind, malformed := s.Step(line)
		if kind != KindOther {
			t.Errorf("Step(%q) kind = %v, expected other", line, kind)
		}
		if next != s || malformed != nil {
			t.Errorf("Step(%q) changed state: %+v", line, next)
		}
	}
}

func TestEDelta(t *testing.T) {
	s := State{Prev: Position{E: 5}, Cur: Position{E: 10}}
	if s.EDelta() != 5 {
		t.Errorf("expected delta 5, got %v", s.EDelta())
	}
}
