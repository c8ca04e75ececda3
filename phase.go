package gocube

import "github.com/SeamusWaldron/gocube_engine/internal/facelet"

// Phase represents the current solving phase in the layer-by-layer method,
// built from the U layer down. Phases progress from Scrambled (0) to
// Solved (7), allowing comparison with < and >.
type Phase = facelet.Phase

const (
	// PhaseScrambled indicates no phase is complete.
	PhaseScrambled = facelet.PhaseScrambled

	// PhaseCross indicates the four U edges are placed, each side sticker
	// matching its center.
	PhaseCross = facelet.PhaseCross

	// PhaseFirstLayer indicates the whole U layer is complete.
	PhaseFirstLayer = facelet.PhaseFirstLayer

	// PhaseSecondLayer indicates the middle layer edges are placed.
	PhaseSecondLayer = facelet.PhaseSecondLayer

	// PhaseLastCross indicates the D edges show the D color.
	PhaseLastCross = facelet.PhaseLastCross

	// PhaseCornersPositioned indicates every D corner sits in its slot,
	// possibly twisted.
	PhaseCornersPositioned = facelet.PhaseCornersPositioned

	// PhaseCornersOriented indicates the D corners are also twisted correctly.
	PhaseCornersOriented = facelet.PhaseCornersOriented

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved = facelet.PhaseSolved
)

// Progress represents which phases have been completed.
type Progress = facelet.Progress
