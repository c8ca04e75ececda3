package cube

import "fmt"

// Size is the number of slots along each axis.
const Size = 3

// NumCubies is the number of grid slots, including the hidden core.
const NumCubies = Size * Size * Size

// DefaultSpacing is the distance between neighbouring slot centers.
const DefaultSpacing float32 = 1.0

// Cube is the 3x3x3 grid of cubies.
//
// Every slot holds exactly one piece; turns permute pieces between slots of
// one slice and never duplicate or drop them.
type Cube struct {
	cubies  [NumCubies]Cubie
	spacing float32
}

// New creates a solved cube in standard orientation: White up, Red front,
// Blue right. Only outward faces carry a sticker.
func New(spacing float32) *Cube {
	if spacing <= 0 {
		spacing = DefaultSpacing
	}
	c := &Cube{spacing: spacing}
	for z := 0; z < Size; z++ {
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				i := Index(x, y, z)
				cb := &c.cubies[i]
				cb.ID = i
				cb.Reinit(x, y, z, spacing)
				for _, f := range Faces {
					if onSurface(x, y, z, f) {
						cb.SetFaceColor(f, solvedColor(f))
					}
				}
			}
		}
	}
	return c
}

// onSurface reports whether the slot at (x, y, z) has a face pointing out of
// the cube in direction f.
func onSurface(x, y, z int, f Face) bool {
	switch f {
	case Up:
		return y == Size-1
	case Down:
		return y == 0
	case Left:
		return x == 0
	case Right:
		return x == Size-1
	case Front:
		return z == Size-1
	case Back:
		return z == 0
	default:
		return false
	}
}

// Index maps grid coordinates to a flat slot index (x + 3y + 9z).
// Coordinates outside 0..2 are a programming error and panic.
func Index(x, y, z int) int {
	if x < 0 || x >= Size || y < 0 || y >= Size || z < 0 || z >= Size {
		panic(fmt.Sprintf("cube: coordinates out of range: (%d,%d,%d)", x, y, z))
	}
	return x + y*Size + z*Size*Size
}

// Coords is the inverse of Index.
func Coords(i int) (x, y, z int) {
	if i < 0 || i >= NumCubies {
		panic(fmt.Sprintf("cube: index out of range: %d", i))
	}
	return i % Size, (i / Size) % Size, i / (Size * Size)
}

// At returns the cubie in the slot at (x, y, z).
func (c *Cube) At(x, y, z int) *Cubie {
	return &c.cubies[Index(x, y, z)]
}

// Cubie returns the cubie in the slot with flat index i.
func (c *Cube) Cubie(i int) *Cubie {
	if i < 0 || i >= NumCubies {
		panic(fmt.Sprintf("cube: index out of range: %d", i))
	}
	return &c.cubies[i]
}

// Spacing returns the distance between slot centers.
func (c *Cube) Spacing() float32 {
	return c.spacing
}

// Identities returns the piece ID held by every slot, in slot order.
func (c *Cube) Identities() [NumCubies]int {
	var ids [NumCubies]int
	for i := range c.cubies {
		ids[i] = c.cubies[i].ID
	}
	return ids
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// SameState reports whether both cubes hold the same pieces in the same slots
// with the same sticker layout. Poses are ignored.
func (c *Cube) SameState(other *Cube) bool {
	for i := range c.cubies {
		if c.cubies[i].ID != other.cubies[i].ID || c.cubies[i].Colors != other.cubies[i].Colors {
			return false
		}
	}
	return true
}

// IsSolved reports whether every visible face shows a single color.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		want := c.CenterColor(f)
		for i := range c.cubies {
			x, y, z := Coords(i)
			if onSurface(x, y, z, f) && c.cubies[i].Colors[f] != want {
				return false
			}
		}
	}
	return true
}

// centerSlot returns the coordinates of the center piece of a face.
func centerSlot(f Face) (x, y, z int) {
	switch f {
	case Up:
		return 1, 2, 1
	case Down:
		return 1, 0, 1
	case Left:
		return 0, 1, 1
	case Right:
		return 2, 1, 1
	case Front:
		return 1, 1, 2
	case Back:
		return 1, 1, 0
	default:
		panic("cube: invalid face")
	}
}

// CenterColor returns the outward sticker of the center piece of a face.
func (c *Cube) CenterColor(f Face) Color {
	x, y, z := centerSlot(f)
	return c.At(x, y, z).FaceColor(f)
}

// FaceletColorMap binds each center sticker color to its face letter.
// It is rebuilt on every call because centers move under slice turns.
func (c *Cube) FaceletColorMap() map[Color]byte {
	m := make(map[Color]byte, len(Faces))
	for _, f := range Faces {
		m[c.CenterColor(f)] = f.String()[0]
	}
	return m
}
