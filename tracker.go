package gocube

import "github.com/SeamusWaldron/gocube_engine/internal/facelet"

// Tracker follows the facelet state of a cube and reports phase changes.
type Tracker struct {
	model         *facelet.Facelets
	lastPhase     Phase
	highestPhase  Phase // Monotonic - never goes backwards
	phaseCallback func(phase Phase)
}

// NewTracker creates a new tracker starting from a solved state.
func NewTracker() *Tracker {
	return &Tracker{
		model:     facelet.Solved(),
		lastPhase: PhaseSolved,
	}
}

// SetPhaseCallback sets a callback that fires when a new highest phase is
// reached.
func (t *Tracker) SetPhaseCallback(cb func(phase Phase)) {
	t.phaseCallback = cb
}

// Reset resets the tracker to a solved cube state.
func (t *Tracker) Reset() {
	t.model = facelet.Solved()
	t.lastPhase = PhaseSolved
	t.highestPhase = PhaseScrambled // Start at lowest phase
}

// Observe records a new cube state given as a facelet string.
func (t *Tracker) Observe(facelets string) error {
	model, err := facelet.Parse(facelets)
	if err != nil {
		return err
	}
	t.model = model
	t.checkPhaseTransition()
	return nil
}

// checkPhaseTransition checks if we've completed a new phase.
func (t *Tracker) checkPhaseTransition() {
	currentPhase := t.model.DetectPhase()
	t.lastPhase = currentPhase

	// Only a new high fires the callback; scrambling again after reaching a
	// phase does not lower it.
	if currentPhase > t.highestPhase {
		t.highestPhase = currentPhase
		if t.phaseCallback != nil {
			t.phaseCallback(currentPhase)
		}
	}
}

// CurrentPhase returns the phase of the last observed state.
// This may go backwards during solving.
func (t *Tracker) CurrentPhase() Phase {
	return t.lastPhase
}

// HighestPhase returns the highest phase reached.
func (t *Tracker) HighestPhase() Phase {
	return t.highestPhase
}

// Progress returns the detailed progress.
func (t *Tracker) Progress() Progress {
	return t.model.Progress()
}

// IsSolved returns true if the last observed state is solved.
func (t *Tracker) IsSolved() bool {
	return t.model.IsSolved()
}

// Facelets returns a copy of the last observed state.
func (t *Tracker) Facelets() *facelet.Facelets {
	return t.model.Clone()
}
