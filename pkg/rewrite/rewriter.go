// Package rewrite applies per-layer flow and speed tweaks to a G-code
// stream, one line at a time.
package rewrite

import (
	"fmt"
	"strings"

	"tedjust-go/pkg/errors"
	"tedjust-go/pkg/gcode"
	"tedjust-go/pkg/layers"
	"tedjust-go/pkg/log"
)

// Synthetic commands. The trailing comments are part of the output format.
const (
	restoreSpeedFormat    = "G1 F%d; tedjust restore speed"
	restoreExtruderFormat = "G92 E%.4f ; tedjust restore extruder"
	resetExtruder         = "G92 E0 ; tedjust reset extruder"
)

const (
	coordDecimals   = 2
	extrudeDecimals = 4
)

// State is the rewriter's bookkeeping between lines.
type State struct {
	// Tweak is the override resolved for the latest move. It is cleared
	// before each move is resolved.
	Tweak layers.Tweak
	// OutE is the extruder position the rewritten stream has reached.
	OutE float64
	// LastFlow is the flow of the last tweaked move; a change starts a new
	// extrusion origin.
	LastFlow float64
	// Speed is the feed rate the output stream is currently running at.
	Speed int
	// ExtrudeSpeed is the feed rate used for tweaked extruding moves, and
	// ExtrudeFeed/ExtrudeOverride the raw feed and override it was derived
	// from.
	ExtrudeSpeed    int
	ExtrudeFeed     int
	ExtrudeOverride int

	Retraction Retraction
}

// Rewriter owns the motion tracker and the rewrite state for one stream.
// It is not safe for concurrent use.
type Rewriter struct {
	table  *layers.Table
	logger *log.Logger

	motion gcode.State
	state  State
	stats  Stats
	lineNo int
}

// New returns a rewriter applying table.
func New(table *layers.Table) *Rewriter {
	if table == nil {
		table = layers.NewTable()
	}
	return &Rewriter{
		table:  table,
		logger: log.Discard(),
	}
}

// SetLogger sets where diagnostics go. Output G-code never goes there.
func (r *Rewriter) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Discard()
	}
	r.logger = l
}

// State returns the rewrite bookkeeping after the last processed line.
func (r *Rewriter) State() State {
	return r.state
}

// Stats returns the counters so far.
func (r *Rewriter) Stats() Stats {
	return r.stats
}

// Process consumes one input line and returns the lines to emit in its
// place, in order.
func (r *Rewriter) Process(line string) []string {
	r.lineNo++
	r.stats.LinesRead++

	next, kind, malformed := r.motion.Step(line)
	r.motion = next
	for _, word := range malformed {
		r.stats.MalformedWords++
		r.logger.WithError(errors.GCodeParseError(r.lineNo, word)).Debug("ignoring word")
	}

	var out []string
	if kind == gcode.KindMove {
		r.stats.Moves++
		out = r.move(line)
	} else {
		out = []string{line}
		// Any other line while the last step lowered E realigns the output
		// to the raw E. This covers G92 E0 and a retraction below zero that
		// a tweak dropped.
		if r.motion.Cur.E < r.motion.Prev.E {
			r.state.OutE = r.motion.Cur.E
		}
	}
	r.stats.LinesWritten += len(out)
	return out
}

func (r *Rewriter) move(line string) []string {
	m := r.motion
	wasTweaked := r.state.Tweak.Active()
	r.state.Tweak = layers.Tweak{}

	suppressed, priming := r.state.Retraction.Observe(m.Prev.E, m.Cur.E)
	if suppressed {
		r.stats.Suppressed++
	} else {
		r.state.Tweak = r.table.Resolve(m.Cur.Z)
	}

	if r.state.Tweak.Active() {
		return r.tweak()
	}

	out := make([]string, 0, 3)
	if wasTweaked && r.state.Speed != m.Feed {
		out = append(out, fmt.Sprintf(restoreSpeedFormat, m.Feed))
		r.stats.SpeedRestores++
		r.logger.WithField("line", r.lineNo).Debugf("restoring speed F%d", m.Feed)
	}
	if m.Prev.E != r.state.OutE {
		out = append(out, fmt.Sprintf(restoreExtruderFormat, m.Prev.E))
		r.stats.ExtruderRestores++
		r.logger.WithField("line", r.lineNo).Debugf("restoring extruder E%.4f from E%.4f", m.Prev.E, r.state.OutE)
	}
	r.state.Speed = m.Feed
	r.state.OutE = m.Cur.E
	out = append(out, line)

	if priming {
		r.state.Retraction.Primed()
	}
	return out
}

// tweak builds the replacement for a move under an active override.
func (r *Rewriter) tweak() []string {
	m := r.motion
	tw := r.state.Tweak

	// Without a flow override the raw delta is kept as is.
	eDelta := m.EDelta()
	if tw.Flow != 0 {
		// Rounded per segment so error does not accumulate.
		eDelta = gcode.Round(eDelta*tw.Flow, extrudeDecimals)
	}

	var cmd strings.Builder
	cmd.WriteString(gcode.OpMove)
	moved := false
	for _, axis := range []struct {
		letter    string
		cur, prev float64
	}{
		{"X", m.Cur.X, m.Prev.X},
		{"Y", m.Cur.Y, m.Prev.Y},
		{"Z", m.Cur.Z, m.Prev.Z},
	} {
		if axis.cur != axis.prev {
			cmd.WriteString(gcode.Word(axis.letter, axis.cur, coordDecimals))
			moved = true
		}
	}

	var out []string
	if r.state.LastFlow != tw.Flow {
		r.state.LastFlow = tw.Flow
		if m.Cur.E != 0 {
			out = append(out, resetExtruder)
			r.stats.ExtruderResets++
			r.logger.WithField("line", r.lineNo).Debugf("flow now %g, resetting extruder origin", tw.Flow)
		}
		r.state.OutE = 0
	}

	// A negative delta is a destring move that slipped past the
	// retraction tracker; it is not extrusion.
	extruding := eDelta > 0
	if extruding {
		r.state.OutE += eDelta
		cmd.WriteString(gcode.Word("E", r.state.OutE, extrudeDecimals))
	}

	if extruding && (m.Feed != r.state.ExtrudeFeed || tw.Speed != r.state.ExtrudeOverride) {
		r.state.ExtrudeFeed = m.Feed
		r.state.ExtrudeOverride = tw.Speed
		r.state.ExtrudeSpeed = m.Feed
		if tw.Speed > 0 {
			r.state.ExtrudeSpeed = tw.Speed
		}
	}
	speed := m.Feed
	if extruding {
		speed = r.state.ExtrudeSpeed
	}
	// Never emit a bare feed change.
	if (moved || extruding) && speed != r.state.Speed {
		r.state.Speed = speed
		fmt.Fprintf(&cmd, " F%d", speed)
	}

	if cmd.Len() > len(gcode.OpMove) {
		out = append(out, cmd.String())
		r.stats.Rewritten++
	} else {
		r.stats.Dropped++
	}
	return out
}
