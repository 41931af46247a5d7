package rewrite

import (
	"tedjust-go/pkg/log"
	"tedjust-go/pkg/metrics"
)

// Stats counts what a run did to the stream.
type Stats struct {
	LinesRead        int
	LinesWritten     int
	Moves            int
	Rewritten        int // tweaked moves emitted
	Dropped          int // tweaked moves with nothing left to emit
	Suppressed       int // moves passed untweaked inside a retraction episode
	SpeedRestores    int
	ExtruderRestores int
	ExtruderResets   int
	MalformedWords   int
}

// Fields renders the stats as log fields.
func (s Stats) Fields() log.Fields {
	return log.Fields{
		"lines_read":        s.LinesRead,
		"lines_written":     s.LinesWritten,
		"moves":             s.Moves,
		"rewritten":         s.Rewritten,
		"dropped":           s.Dropped,
		"suppressed":        s.Suppressed,
		"speed_restores":    s.SpeedRestores,
		"extruder_restores": s.ExtruderRestores,
		"extruder_resets":   s.ExtruderResets,
		"malformed_words":   s.MalformedWords,
	}
}

// Export registers the run's counters in reg, labelled with labels.
func (s Stats) Export(reg *metrics.Registry, labels metrics.Labels) error {
	lines := metrics.NewCounter("tedjust_lines_total", "G-code lines by direction.")
	moves := metrics.NewCounter("tedjust_moves_total", "G1 moves by outcome.")
	synth := metrics.NewCounter("tedjust_synthetic_commands_total", "Commands inserted by the rewriter by kind.")
	malformed := metrics.NewCounter("tedjust_malformed_words_total", "Numeric words that failed to parse.")
	for _, m := range []metrics.Metric{lines, moves, synth, malformed} {
		if err := reg.Register(m); err != nil {
			return err
		}
	}

	with := func(k, v string) metrics.Labels {
		l := metrics.Labels{k: v}
		for lk, lv := range labels {
			l[lk] = lv
		}
		return l
	}
	lines.Add(with("direction", "read"), uint64(s.LinesRead))
	lines.Add(with("direction", "written"), uint64(s.LinesWritten))
	moves.Add(with("outcome", "passed"), uint64(s.Moves-s.Rewritten-s.Dropped-s.Suppressed))
	moves.Add(with("outcome", "rewritten"), uint64(s.Rewritten))
	moves.Add(with("outcome", "dropped"), uint64(s.Dropped))
	moves.Add(with("outcome", "suppressed"), uint64(s.Suppressed))
	synth.Add(with("kind", "restore_speed"), uint64(s.SpeedRestores))
	synth.Add(with("kind", "restore_extruder"), uint64(s.ExtruderRestores))
	synth.Add(with("kind", "reset_extruder"), uint64(s.ExtruderResets))
	malformed.Add(labels, uint64(s.MalformedWords))
	return nil
}
