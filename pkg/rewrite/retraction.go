package rewrite

// Phase is the retraction state.
type Phase int

const (
	// Normal moves may be tweaked.
	Normal Phase = iota
	// Retracting covers the span from a retraction up to and including
	// the move that re-primes. Nothing in it is tweaked.
	Retracting
)

func (p Phase) String() string {
	if p == Retracting {
		return "retracting"
	}
	return "normal"
}

// Retraction tracks retract/re-prime episodes from consecutive E values.
// A retraction is a move that lowers E while leaving it positive; the
// episode ends with the first move that raises E again.
type Retraction struct {
	phase Phase
}

// Phase returns the current phase.
func (r Retraction) Phase() Phase {
	return r.phase
}

// Observe classifies a move from prevE to curE. suppressed is true when
// the move must pass through untweaked; priming is true when the move
// ends the episode, in which case the caller reports completion with
// Primed once the line has been emitted.
func (r *Retraction) Observe(prevE, curE float64) (suppressed, priming bool) {
	priming = r.phase == Retracting && curE > prevE
	if curE > 0 && curE < prevE {
		r.phase = Retracting
	}
	return r.phase == Retracting, priming
}

// Primed closes the current episode.
func (r *Retraction) Primed() {
	r.phase = Normal
}
