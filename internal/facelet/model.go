package facelet

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/gocube_engine/pkg/types"
)

// Face indexes the six faces in solver string order.
type Face int

const (
	FaceU Face = 0
	FaceR Face = 1
	FaceF Face = 2
	FaceD Face = 3
	FaceL Face = 4
	FaceB Face = 5
)

// Letters are the face letters in solver string order.
const Letters = "URFDLB"

func (f Face) String() string {
	if f < 0 || int(f) >= len(Letters) {
		return "?"
	}
	return Letters[f : f+1]
}

// Facelets is a sticker-level model of the cube holding one face letter per
// facelet. Each face is indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// with the layout of the solver string, so Facelets and its string form
// convert without reordering. Position 4 is the face center and never moves.
type Facelets struct {
	Stickers [6][9]byte
}

// Solved returns the facelet model of a solved cube.
func Solved() *Facelets {
	f := &Facelets{}
	for face := 0; face < 6; face++ {
		for i := 0; i < 9; i++ {
			f.Stickers[face][i] = Letters[face]
		}
	}
	return f
}

// Parse builds a facelet model from a 54 character solver string.
// The string must hold nine of each letter and carry its own letter at every
// face center.
func Parse(s string) (*Facelets, error) {
	if len(s) != Length {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrInvalidFacelets, len(s), Length)
	}

	counts := make(map[byte]int, 6)
	f := &Facelets{}
	for i := 0; i < Length; i++ {
		ch := s[i]
		if strings.IndexByte(Letters, ch) < 0 {
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidFacelets, ch, i)
		}
		counts[ch]++
		f.Stickers[i/9][i%9] = ch
	}

	for face := 0; face < 6; face++ {
		if got := f.Stickers[face][4]; got != Letters[face] {
			return nil, fmt.Errorf("%w: %c center shows %c", ErrInvalidFacelets, Letters[face], got)
		}
		if counts[Letters[face]] != 9 {
			return nil, fmt.Errorf("%w: %d stickers of %c", ErrInvalidFacelets, counts[Letters[face]], Letters[face])
		}
	}

	return f, nil
}

// Clone creates a deep copy of the model.
func (f *Facelets) Clone() *Facelets {
	clone := *f
	return &clone
}

// Encoding returns the 54 character solver string.
func (f *Facelets) Encoding() string {
	var b strings.Builder
	b.Grow(Length)
	for face := 0; face < 6; face++ {
		b.Write(f.Stickers[face][:])
	}
	return b.String()
}

// IsSolved returns true if every facelet matches its face center.
func (f *Facelets) IsSolved() bool {
	for face := 0; face < 6; face++ {
		center := f.Stickers[face][4]
		for i := 0; i < 9; i++ {
			if f.Stickers[face][i] != center {
				return false
			}
		}
	}
	return true
}

// Move turns a face. turn: 1 = CW, -1 = CCW, 2 = 180 degrees.
func (f *Facelets) Move(face Face, turn int) {
	switch turn {
	case 1:
		f.moveCW(face)
	case -1:
		f.moveCW(face)
		f.moveCW(face)
		f.moveCW(face)
	case 2:
		f.moveCW(face)
		f.moveCW(face)
	}
}

// Apply applies a notation move.
func (f *Facelets) Apply(m types.Move) {
	f.Move(faceOf(m.Face), int(m.Turn))
}

// ApplyMoves applies a sequence of notation moves.
func (f *Facelets) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		f.Apply(m)
	}
}

func faceOf(f types.Face) Face {
	switch f {
	case types.FaceU:
		return FaceU
	case types.FaceR:
		return FaceR
	case types.FaceF:
		return FaceF
	case types.FaceD:
		return FaceD
	case types.FaceL:
		return FaceL
	case types.FaceB:
		return FaceB
	default:
		panic(fmt.Sprintf("facelet: invalid face %q", f))
	}
}

// moveCW turns a face clockwise as seen when looking at it.
func (f *Facelets) moveCW(face Face) {
	s := &f.Stickers[face]
	s[0], s[2], s[8], s[6] = s[6], s[0], s[2], s[8]
	s[1], s[5], s[7], s[3] = s[3], s[1], s[5], s[7]

	// Each ring lists four strips of three facelets; a clockwise turn moves
	// every strip onto the next one.
	var ring [4]strip
	switch face {
	case FaceU:
		ring = [4]strip{{FaceF, 0, 1, 2}, {FaceL, 0, 1, 2}, {FaceB, 0, 1, 2}, {FaceR, 0, 1, 2}}
	case FaceD:
		ring = [4]strip{{FaceF, 6, 7, 8}, {FaceR, 6, 7, 8}, {FaceB, 6, 7, 8}, {FaceL, 6, 7, 8}}
	case FaceF:
		ring = [4]strip{{FaceU, 6, 7, 8}, {FaceR, 0, 3, 6}, {FaceD, 2, 1, 0}, {FaceL, 8, 5, 2}}
	case FaceB:
		ring = [4]strip{{FaceU, 2, 1, 0}, {FaceL, 0, 3, 6}, {FaceD, 6, 7, 8}, {FaceR, 8, 5, 2}}
	case FaceR:
		ring = [4]strip{{FaceU, 2, 5, 8}, {FaceB, 6, 3, 0}, {FaceD, 2, 5, 8}, {FaceF, 2, 5, 8}}
	case FaceL:
		ring = [4]strip{{FaceU, 0, 3, 6}, {FaceF, 0, 3, 6}, {FaceD, 0, 3, 6}, {FaceB, 8, 5, 2}}
	}
	f.cycle(ring)
}

type strip struct {
	face    Face
	a, b, c int
}

// cycle moves strip i onto strip i+1, wrapping the last onto the first.
func (f *Facelets) cycle(ring [4]strip) {
	last := ring[3]
	saved := [3]byte{
		f.Stickers[last.face][last.a],
		f.Stickers[last.face][last.b],
		f.Stickers[last.face][last.c],
	}
	for i := 3; i > 0; i-- {
		to, from := ring[i], ring[i-1]
		f.Stickers[to.face][to.a] = f.Stickers[from.face][from.a]
		f.Stickers[to.face][to.b] = f.Stickers[from.face][from.b]
		f.Stickers[to.face][to.c] = f.Stickers[from.face][from.c]
	}
	first := ring[0]
	f.Stickers[first.face][first.a] = saved[0]
	f.Stickers[first.face][first.b] = saved[1]
	f.Stickers[first.face][first.c] = saved[2]
}

// String returns the net layout: U on top, L F R B in a row, D below.
func (f *Facelets) String() string {
	var b strings.Builder

	row := func(face Face, r int) {
		for col := 0; col < 3; col++ {
			b.WriteByte(f.Stickers[face][r*3+col])
			b.WriteByte(' ')
		}
	}

	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(FaceU, r)
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			row(face, r)
		}
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(FaceD, r)
		b.WriteString("\n")
	}

	return b.String()
}
