package gcode

import "math"

// Position is an absolute printer position. E is the cumulative length of
// filament fed, not a per-move delta.
type Position struct {
	X, Y, Z, E float64
}

// Kind classifies a line for the rewriter.
type Kind int

const (
	// KindOther is any line that does not touch tracked state.
	KindOther Kind = iota
	// KindMove is a G1 linear move.
	KindMove
	// KindSetPosition is a G92 extruder reset. It updates E but is not a move.
	KindSetPosition
)

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindSetPosition:
		return "set_position"
	default:
		return "other"
	}
}

// State is the tracker's snapshot: the previous and current position and
// the previous and current raw feed rate (units per minute).
//
// State is a value; Advance returns the successor without touching the
// receiver, so tests can build snapshots directly.
type State struct {
	Prev     Position
	Cur      Position
	PrevFeed int
	Feed     int
}

// Advance applies one tokenized line. Unspecified axes carry over from
// Cur. Words whose values fail to parse are treated as unspecified and
// reported back in malformed.
func (s State) Advance(cmd *Command) (next State, kind Kind, malformed []string) {
	next = s
	switch {
	case cmd.Is(OpMove):
		next.Prev = s.Cur
		for _, axis := range []struct {
			key string
			dst *float64
		}{
			{"X", &next.Cur.X},
			{"Y", &next.Cur.Y},
			{"Z", &next.Cur.Z},
			{"E", &next.Cur.E},
		} {
			v, st := cmd.Float(axis.key)
			switch st {
			case Parsed:
				*axis.dst = v
			case Malformed:
				malformed = append(malformed, axis.key+cmd.Args[axis.key])
			}
		}
		f, st := cmd.Float("F")
		switch st {
		case Parsed:
			next.PrevFeed = s.Feed
			next.Feed = int(math.Trunc(f))
		case Malformed:
			malformed = append(malformed, "F"+cmd.Args["F"])
		}
		return next, KindMove, malformed

	case cmd.Is(OpSetPosition):
		next.Prev = s.Cur
		e, st := cmd.Float("E")
		switch st {
		case Parsed:
			next.Cur.E = e
		case Malformed:
			malformed = append(malformed, "E"+cmd.Args["E"])
		}
		return next, KindSetPosition, malformed
	}
	return s, KindOther, nil
}

// Step tokenizes and applies a raw line.
func (s State) Step(line string) (State, Kind, []string) {
	cmd := ParseLine(line)
	defer cmd.Release()
	return s.Advance(cmd)
}

// EDelta is the extrusion since the previous position.
func (s State) EDelta() float64 {
	return s.Cur.E - s.Prev.E
}
