package facelet

// Phase detection for the layer-by-layer method, starting from the U layer.
// Every check compares against the face centers, so it holds for any color
// scheme.

// Phase represents which layer-by-layer stage the cube has reached.
type Phase int

const (
	PhaseScrambled Phase = iota
	PhaseCross
	PhaseFirstLayer
	PhaseSecondLayer
	PhaseLastCross
	PhaseCornersPositioned
	PhaseCornersOriented
	PhaseSolved
)

func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseCross:
		return "cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseSecondLayer:
		return "second_layer"
	case PhaseLastCross:
		return "last_cross"
	case PhaseCornersPositioned:
		return "corners_positioned"
	case PhaseCornersOriented:
		return "corners_oriented"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

var sideFaces = []Face{FaceF, FaceR, FaceB, FaceL}

func (f *Facelets) center(face Face) byte {
	return f.Stickers[face][4]
}

func (f *Facelets) matchesCenter(face Face, positions ...int) bool {
	c := f.center(face)
	for _, pos := range positions {
		if f.Stickers[face][pos] != c {
			return false
		}
	}
	return true
}

// IsCrossComplete checks the four U edges: U stickers on U and the side
// stickers matching their centers.
func (f *Facelets) IsCrossComplete() bool {
	if !f.matchesCenter(FaceU, 1, 3, 5, 7) {
		return false
	}
	for _, face := range sideFaces {
		if !f.matchesCenter(face, 1) {
			return false
		}
	}
	return true
}

// IsFirstLayerComplete checks the whole U layer.
func (f *Facelets) IsFirstLayerComplete() bool {
	if !f.IsCrossComplete() || !f.matchesCenter(FaceU, 0, 1, 2, 3, 5, 6, 7, 8) {
		return false
	}
	for _, face := range sideFaces {
		if !f.matchesCenter(face, 0, 2) {
			return false
		}
	}
	return true
}

// IsSecondLayerComplete checks the middle layer edges.
func (f *Facelets) IsSecondLayerComplete() bool {
	if !f.IsFirstLayerComplete() {
		return false
	}
	for _, face := range sideFaces {
		if !f.matchesCenter(face, 3, 5) {
			return false
		}
	}
	return true
}

// IsLastCrossComplete checks that the D edges show the D color.
// Their positions are not checked.
func (f *Facelets) IsLastCrossComplete() bool {
	return f.IsSecondLayerComplete() && f.matchesCenter(FaceD, 1, 3, 5, 7)
}

type cornerSlot [3][2]int

var dCorners = []cornerSlot{
	{{int(FaceF), 8}, {int(FaceR), 6}, {int(FaceD), 2}},
	{{int(FaceR), 8}, {int(FaceB), 6}, {int(FaceD), 8}},
	{{int(FaceB), 8}, {int(FaceL), 6}, {int(FaceD), 6}},
	{{int(FaceL), 8}, {int(FaceF), 6}, {int(FaceD), 0}},
}

// AreCornersPositioned checks that every D corner holds the right piece,
// in any orientation.
func (f *Facelets) AreCornersPositioned() bool {
	if !f.IsLastCrossComplete() {
		return false
	}
	for _, corner := range dCorners {
		var actual, expected [3]byte
		for i, pos := range corner {
			actual[i] = f.Stickers[pos[0]][pos[1]]
			expected[i] = f.center(Face(pos[0]))
		}
		if !sameLetters(actual, expected) {
			return false
		}
	}
	return true
}

// AreCornersOriented checks that the D corners are also twisted correctly.
func (f *Facelets) AreCornersOriented() bool {
	if !f.AreCornersPositioned() || !f.matchesCenter(FaceD, 0, 2, 6, 8) {
		return false
	}
	for _, face := range sideFaces {
		if !f.matchesCenter(face, 6, 8) {
			return false
		}
	}
	return true
}

func sameLetters(a, b [3]byte) bool {
	count := make(map[byte]int, 3)
	for i := range a {
		count[a[i]]++
		count[b[i]]--
	}
	for _, v := range count {
		if v != 0 {
			return false
		}
	}
	return true
}

// DetectPhase returns the furthest phase the cube currently satisfies.
func (f *Facelets) DetectPhase() Phase {
	switch {
	case f.IsSolved():
		return PhaseSolved
	case f.AreCornersOriented():
		return PhaseCornersOriented // last layer edges may still need cycling
	case f.AreCornersPositioned():
		return PhaseCornersPositioned
	case f.IsLastCrossComplete():
		return PhaseLastCross
	case f.IsSecondLayerComplete():
		return PhaseSecondLayer
	case f.IsFirstLayerComplete():
		return PhaseFirstLayer
	case f.IsCrossComplete():
		return PhaseCross
	default:
		return PhaseScrambled
	}
}

// Progress records which phases are complete.
type Progress struct {
	Cross             bool `json:"cross"`
	FirstLayer        bool `json:"first_layer"`
	SecondLayer       bool `json:"second_layer"`
	LastCross         bool `json:"last_cross"`
	CornersPositioned bool `json:"corners_positioned"`
	CornersOriented   bool `json:"corners_oriented"`
	Solved            bool `json:"solved"`
}

// Progress returns the current progress through all phases.
func (f *Facelets) Progress() Progress {
	return Progress{
		Cross:             f.IsCrossComplete(),
		FirstLayer:        f.IsFirstLayerComplete(),
		SecondLayer:       f.IsSecondLayerComplete(),
		LastCross:         f.IsLastCrossComplete(),
		CornersPositioned: f.AreCornersPositioned(),
		CornersOriented:   f.AreCornersOriented(),
		Solved:            f.IsSolved(),
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseCross:
		return "Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseSecondLayer:
		return "Second Layer"
	case PhaseLastCross:
		return "Last Layer Cross"
	case PhaseCornersPositioned:
		return "Last Layer Corners Positioned"
	case PhaseCornersOriented:
		return "Last Layer Corners Oriented"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}
