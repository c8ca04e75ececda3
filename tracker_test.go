package gocube

import (
	"errors"
	"testing"

	"github.com/SeamusWaldron/gocube_engine/internal/facelet"
)

func TestTrackerStartsSolved(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Error("new tracker should be solved")
	}
	if tr.CurrentPhase() != PhaseSolved {
		t.Errorf("CurrentPhase() = %v", tr.CurrentPhase())
	}
	if tr.HighestPhase() != PhaseScrambled {
		t.Errorf("HighestPhase() = %v, want scrambled before any observation", tr.HighestPhase())
	}
}

func TestTrackerHighestPhaseIsMonotonic(t *testing.T) {
	tr := NewTracker()
	var fired []Phase
	tr.SetPhaseCallback(func(p Phase) { fired = append(fired, p) })

	f := facelet.Solved()
	f.Move(facelet.FaceD, 1)
	if err := tr.Observe(f.Encoding()); err != nil {
		t.Fatal(err)
	}
	if tr.HighestPhase() != PhaseLastCross {
		t.Errorf("HighestPhase() = %v", tr.HighestPhase())
	}

	f.Move(facelet.FaceR, 1)
	if err := tr.Observe(f.Encoding()); err != nil {
		t.Fatal(err)
	}
	if tr.CurrentPhase() != PhaseScrambled {
		t.Errorf("CurrentPhase() = %v, want scrambled", tr.CurrentPhase())
	}
	if tr.HighestPhase() != PhaseLastCross {
		t.Errorf("HighestPhase() went backwards to %v", tr.HighestPhase())
	}
	if len(fired) != 1 {
		t.Errorf("callback fired %d times, want 1", len(fired))
	}

	p := tr.Progress()
	if p.Cross || p.Solved {
		t.Errorf("unexpected progress %+v", p)
	}
}

func TestTrackerRejectsInvalidState(t *testing.T) {
	tr := NewTracker()
	if err := tr.Observe("UUU"); !errors.Is(err, ErrInvalidFacelets) {
		t.Errorf("expected ErrInvalidFacelets, got %v", err)
	}
	if !tr.IsSolved() {
		t.Error("a rejected observation must not change the state")
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	f := facelet.Solved()
	f.Move(facelet.FaceU, 1)
	if err := tr.Observe(f.Encoding()); err != nil {
		t.Fatal(err)
	}
	tr.Reset()
	if !tr.IsSolved() || tr.HighestPhase() != PhaseScrambled {
		t.Error("Reset should restore a solved state and clear the highest phase")
	}
}
