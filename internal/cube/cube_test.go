package cube

import (
	"math"
	"testing"
)

type turn struct {
	axis      Axis
	slice     int
	clockwise bool
}

func allTurns() []turn {
	var turns []turn
	for _, a := range []Axis{X, Y, Z} {
		for s := 0; s < Size; s++ {
			turns = append(turns, turn{a, s, true}, turn{a, s, false})
		}
	}
	return turns
}

func isPermutation(ids [NumCubies]int) bool {
	var seen [NumCubies]bool
	for _, id := range ids {
		if id < 0 || id >= NumCubies || seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

func TestNewCubeIsSolved(t *testing.T) {
	c := New(DefaultSpacing)
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	for i := 0; i < NumCubies; i++ {
		if c.Cubie(i).ID != i {
			t.Errorf("slot %d holds piece %d", i, c.Cubie(i).ID)
		}
	}
}

func TestStickerCounts(t *testing.T) {
	c := New(DefaultSpacing)
	counts := map[int]int{}
	for i := 0; i < NumCubies; i++ {
		counts[c.Cubie(i).Stickers()]++
	}

	want := map[int]int{3: 8, 2: 12, 1: 6, 0: 1}
	for stickers, n := range want {
		if counts[stickers] != n {
			t.Errorf("expected %d pieces with %d stickers, got %d", n, stickers, counts[stickers])
		}
	}
}

func TestIndexCoordsRoundTrip(t *testing.T) {
	for i := 0; i < NumCubies; i++ {
		x, y, z := Coords(i)
		if Index(x, y, z) != i {
			t.Errorf("Index(Coords(%d)) = %d", i, Index(x, y, z))
		}
	}
	if Index(1, 2, 0) != 7 {
		t.Errorf("Index(1,2,0) = %d, want 7", Index(1, 2, 0))
	}
}

func TestIndexPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range coordinates")
		}
	}()
	Index(3, 0, 0)
}

func TestRotateColorsInverse(t *testing.T) {
	for _, a := range []Axis{X, Y, Z} {
		var cb Cubie
		for i, f := range Faces {
			cb.SetFaceColor(f, Color(i+1))
		}
		before := cb.Colors

		cb.RotateColors(a, true)
		if cb.Colors == before {
			t.Errorf("axis %v: rotation should change side colors", a)
		}
		cb.RotateColors(a, false)
		if cb.Colors != before {
			t.Errorf("axis %v: cw then ccw should be identity", a)
		}

		for i := 0; i < 4; i++ {
			cb.RotateColors(a, false)
		}
		if cb.Colors != before {
			t.Errorf("axis %v: four ccw rotations should be identity", a)
		}
	}
}

func TestRotateColorsKeepsAxisFaces(t *testing.T) {
	axisFaces := map[Axis][2]Face{
		X: {Left, Right},
		Y: {Up, Down},
		Z: {Front, Back},
	}
	for a, faces := range axisFaces {
		var cb Cubie
		for i, f := range Faces {
			cb.SetFaceColor(f, Color(i+1))
		}
		cb.RotateColors(a, true)
		for _, f := range faces {
			if cb.FaceColor(f) != Color(int(f)+1) {
				t.Errorf("axis %v: face %v should keep its color", a, f)
			}
		}
	}
}

func TestPermutationClosure(t *testing.T) {
	for _, tr := range allTurns() {
		c := New(DefaultSpacing)
		c.Rotate(tr.axis, tr.slice, tr.clockwise)
		if !isPermutation(c.Identities()) {
			t.Errorf("%v slice %d cw=%v: slots no longer hold a permutation", tr.axis, tr.slice, tr.clockwise)
		}
	}
}

func TestTurnOnlyMovesItsSlice(t *testing.T) {
	for _, tr := range allTurns() {
		c := New(DefaultSpacing)
		c.Rotate(tr.axis, tr.slice, tr.clockwise)

		inSlice := map[int]bool{}
		for _, i := range SliceIndices(tr.axis, tr.slice) {
			inSlice[i] = true
		}
		for i := 0; i < NumCubies; i++ {
			if inSlice[i] {
				continue
			}
			if c.Cubie(i).ID != i {
				t.Errorf("%v slice %d: slot %d outside the slice changed", tr.axis, tr.slice, i)
			}
		}
	}
}

func TestInverseLaw(t *testing.T) {
	for _, tr := range allTurns() {
		c := New(DefaultSpacing)
		c.Rotate(X, 2, true) // start away from solved
		c.Rotate(Y, 2, true)
		before := c.Clone()

		c.Rotate(tr.axis, tr.slice, tr.clockwise)
		c.Rotate(tr.axis, tr.slice, !tr.clockwise)
		if !c.SameState(before) {
			t.Errorf("%v slice %d cw=%v: turn and inverse should restore state", tr.axis, tr.slice, tr.clockwise)
		}
	}
}

func TestFourTurnIdentity(t *testing.T) {
	for _, tr := range allTurns() {
		c := New(DefaultSpacing)
		before := c.Clone()
		for i := 0; i < 4; i++ {
			c.Rotate(tr.axis, tr.slice, tr.clockwise)
		}
		if !c.SameState(before) {
			t.Errorf("%v slice %d cw=%v: four turns should be identity", tr.axis, tr.slice, tr.clockwise)
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := New(DefaultSpacing)
	for i := 0; i < 6; i++ {
		c.RotateRight(true)
		c.RotateUp(true)
		c.RotateRight(false)
		c.RotateUp(false)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
	}
	if c.Cubie(Index(2, 2, 2)).ID != Index(2, 2, 2) {
		t.Error("URF corner should be back in its slot")
	}
}

func TestSliceZeroMirrorsSliceTwo(t *testing.T) {
	// A clockwise L turn is a geometric counter-clockwise turn about +X.
	c := New(DefaultSpacing)
	c.RotateLeft(true)
	c.rotateSlice(X, 0, true)
	if !c.SameState(New(DefaultSpacing)) {
		t.Error("L followed by a geometric clockwise x=0 turn should cancel")
	}

	// L and R clockwise move the Up stickers towards opposite faces.
	l := New(DefaultSpacing)
	l.RotateLeft(true)
	if got := l.At(0, 1, 2).FaceColor(Front); got != White {
		t.Errorf("after L, front-left edge should show White on Front, got %v", got)
	}
	r := New(DefaultSpacing)
	r.RotateRight(true)
	if got := r.At(2, 1, 0).FaceColor(Back); got != White {
		t.Errorf("after R, back-right edge should show White on Back, got %v", got)
	}
}

func TestRightTurnMovesFrontStickersUp(t *testing.T) {
	c := New(DefaultSpacing)
	c.RotateRight(true)

	for z := 0; z < Size; z++ {
		if got := c.At(2, 2, z).FaceColor(Up); got != Red {
			t.Errorf("U sticker at (2,2,%d) = %v, want Red", z, got)
		}
	}
	if got := c.At(2, 1, 1).FaceColor(Right); got != Blue {
		t.Errorf("R center should keep Blue, got %v", got)
	}
}

func TestFaceTurnKeepsOwnCenter(t *testing.T) {
	for _, f := range Faces {
		c := New(DefaultSpacing)
		switch f {
		case Up:
			c.RotateUp(true)
		case Down:
			c.RotateDown(true)
		case Left:
			c.RotateLeft(true)
		case Right:
			c.RotateRight(true)
		case Front:
			c.RotateFront(true)
		case Back:
			c.RotateBack(true)
		}
		x, y, z := centerSlot(f)
		if c.At(x, y, z).ID != Index(x, y, z) {
			t.Errorf("%v turn moved its own center", f)
		}
	}
}

func TestFaceletColorMapFollowsCenters(t *testing.T) {
	c := New(DefaultSpacing)
	m := c.FaceletColorMap()
	want := map[Color]byte{White: 'U', Yellow: 'D', Green: 'L', Blue: 'R', Red: 'F', Orange: 'B'}
	for color, letter := range want {
		if m[color] != letter {
			t.Errorf("color %v mapped to %c, want %c", color, m[color], letter)
		}
	}

	// The middle X slice carries the Front center up.
	c.RotateMiddleX(true)
	m = c.FaceletColorMap()
	if m[Red] != 'U' {
		t.Errorf("after middle slice turn Red should map to U, got %c", m[Red])
	}
	if m[Blue] != 'R' {
		t.Errorf("Right center should be unaffected, got %c", m[Blue])
	}
}

func TestReinitProducesCanonicalPoses(t *testing.T) {
	c := New(0.5)
	for _, tr := range allTurns() {
		c.Rotate(tr.axis, tr.slice, tr.clockwise)
	}
	for i := 0; i < NumCubies; i++ {
		x, y, z := Coords(i)
		if c.Cubie(i).Pose != SlotPose(x, y, z, 0.5) {
			t.Errorf("slot %d pose is not canonical: %v", i, c.Cubie(i).Pose)
		}
	}
}

// nearlyEqual compares component-wise with an absolute tolerance; float32
// rotations leave residue around zero.
func nearlyEqual(a, b [4]float32) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-4 {
			return false
		}
	}
	return true
}

func TestTurnMatrixMatchesPermutation(t *testing.T) {
	// Rotating a slot center by the geometric quarter turn lands on the slot
	// the engine moves the piece to.
	const angle = -1.5707964 // clockwise viewed from +axis
	for _, a := range []Axis{X, Y, Z} {
		for s := 0; s < Size; s++ {
			c := New(DefaultSpacing)
			c.rotateSlice(a, s, true)
			rot := TurnMatrix(a, angle)
			for i := 0; i < NumCubies; i++ {
				x, y, z := Coords(i)
				id := c.Cubie(i).ID
				ox, oy, oz := Coords(id)
				if id == i {
					continue
				}
				from := SlotPose(ox, oy, oz, 1).Col(3)
				got := rot.Mul4x1(from)
				want := SlotPose(x, y, z, 1).Col(3)
				if !nearlyEqual(got, want) {
					t.Errorf("%v slice %d: piece %d moved to %v, rotation gives %v", a, s, id, want, got)
				}
			}
		}
	}
}
