package rewrite

import "testing"

func TestRetractionEpisode(t *testing.T) {
	var r Retraction

	steps := []struct {
		prevE, curE    float64
		wantSuppressed bool
		wantPriming    bool
		wantPhase      Phase
	}{
		{0, 1, false, false, Normal},      // extrude
		{1, 2, false, false, Normal},      // extrude
		{2, 1.5, true, false, Retracting}, // retract
		{1.5, 1.5, true, false, Retracting},
		{1.5, 2, true, true, Retracting}, // prime, closed by the caller
	}
	for i, s := range steps {
		suppressed, priming := r.Observe(s.prevE, s.curE)
		if suppressed != s.wantSuppressed || priming != s.wantPriming {
			t.Errorf("step %d: expected suppressed=%v priming=%v, got %v %v",
				i, s.wantSuppressed, s.wantPriming, suppressed, priming)
		}
		if r.Phase() != s.wantPhase {
			t.Errorf("step %d: expected phase %v, got %v", i, s.wantPhase, r.Phase())
		}
	}

	r.Primed()
	if r.Phase() != Normal {
		t.Errorf("expected normal after Primed, got %v", r.Phase())
	}
	if suppressed, _ := r.Observe(2, 3); suppressed {
		t.Error("expected extrusion after prime to be tweakable")
	}
}

func TestRetractionToZeroIsNotAnEpisode(t *testing.T) {
	var r Retraction
	// Dropping E to zero is a full retract or a reset convention, not a
	// destring move.
	if suppressed, _ := r.Observe(2, 0); suppressed {
		t.Error("expected E -> 0 not to start an episode")
	}
	if suppressed, _ := r.Observe(0, -1); suppressed {
		t.Error("expected negative E not to start an episode")
	}
	if r.Phase() != Normal {
		t.Errorf("expected normal, got %v", r.Phase())
	}
}

func TestRetractionRepeatedRetracts(t *testing.T) {
	var r Retraction
	r.Observe(3, 2)
	r.Observe(2, 1)
	if suppressed, priming := r.Observe(1, 1.5); !suppressed || !priming {
		t.Errorf("expected first raise to prime, got suppressed=%v priming=%v", suppressed, priming)
	}
}

func TestPhaseString(t *testing.T) {
	if Normal.String() != "normal" || Retracting.String() != "retracting" {
		t.Errorf("unexpected phase names %q %q", Normal, Retracting)
	}
}
