package cube

import "fmt"

// Request identifies one quarter turn of one slice. Clockwise has face-turn
// meaning, see Rotate.
type Request struct {
	Axis      Axis
	Slice     int
	Clockwise bool
}

// Inverse returns the request that undoes r.
func (r Request) Inverse() Request {
	r.Clockwise = !r.Clockwise
	return r
}

func (r Request) String() string {
	dir := "cw"
	if !r.Clockwise {
		dir = "ccw"
	}
	return fmt.Sprintf("%v%d %s", r.Axis, r.Slice, dir)
}

// Apply commits the quarter turn described by r.
func (c *Cube) Apply(r Request) {
	c.Rotate(r.Axis, r.Slice, r.Clockwise)
}

// EffectiveClockwise converts a face-turn direction into the geometric
// direction viewed from the positive end of the axis.
//
// Slice 0 faces the negative end of its axis, so a clockwise turn of that face
// is counter-clockwise seen from the positive end.
func EffectiveClockwise(slice int, clockwise bool) bool {
	if slice == 0 {
		return !clockwise
	}
	return clockwise
}

// slotCoords places in-plane coordinates (u, v) of a slice back into the grid.
// The pairs are right-handed: X uses (y, z), Y uses (z, x), Z uses (x, y).
func slotCoords(a Axis, slice, u, v int) (x, y, z int) {
	switch a {
	case X:
		return slice, u, v
	case Y:
		return v, slice, u
	case Z:
		return u, v, slice
	default:
		panic("cube: invalid axis")
	}
}

// SliceIndices returns the flat indices of the nine slots of a slice.
func SliceIndices(a Axis, slice int) [Size * Size]int {
	checkSlice(slice)
	var idx [Size * Size]int
	for u := 0; u < Size; u++ {
		for v := 0; v < Size; v++ {
			idx[u*Size+v] = Index(slotCoords(a, slice, u, v))
		}
	}
	return idx
}

func checkSlice(slice int) {
	if slice < 0 || slice >= Size {
		panic(fmt.Sprintf("cube: slice out of range: %d", slice))
	}
}

// Rotate turns one slice a quarter turn. Clockwise follows face-turn
// semantics: for slice 0 it is judged looking at the negative face, for the
// other slices looking from the positive end of the axis.
func (c *Cube) Rotate(a Axis, slice int, clockwise bool) {
	switch a {
	case X:
		switch slice {
		case 0:
			c.RotateLeft(clockwise)
		case 1:
			c.RotateMiddleX(clockwise)
		case 2:
			c.RotateRight(clockwise)
		default:
			checkSlice(slice)
		}
	case Y:
		switch slice {
		case 0:
			c.RotateDown(clockwise)
		case 1:
			c.RotateMiddleY(clockwise)
		case 2:
			c.RotateUp(clockwise)
		default:
			checkSlice(slice)
		}
	case Z:
		switch slice {
		case 0:
			c.RotateBack(clockwise)
		case 1:
			c.RotateMiddleZ(clockwise)
		case 2:
			c.RotateFront(clockwise)
		default:
			checkSlice(slice)
		}
	default:
		panic(fmt.Sprintf("cube: invalid axis: %d", a))
	}
}

// RotateLeft turns the x=0 slice.
func (c *Cube) RotateLeft(clockwise bool) { c.rotateSlice(X, 0, EffectiveClockwise(0, clockwise)) }

// RotateMiddleX turns the x=1 slice.
func (c *Cube) RotateMiddleX(clockwise bool) { c.rotateSlice(X, 1, clockwise) }

// RotateRight turns the x=2 slice.
func (c *Cube) RotateRight(clockwise bool) { c.rotateSlice(X, 2, clockwise) }

// RotateDown turns the y=0 slice.
func (c *Cube) RotateDown(clockwise bool) { c.rotateSlice(Y, 0, EffectiveClockwise(0, clockwise)) }

// RotateMiddleY turns the y=1 slice.
func (c *Cube) RotateMiddleY(clockwise bool) { c.rotateSlice(Y, 1, clockwise) }

// RotateUp turns the y=2 slice.
func (c *Cube) RotateUp(clockwise bool) { c.rotateSlice(Y, 2, clockwise) }

// RotateBack turns the z=0 slice.
func (c *Cube) RotateBack(clockwise bool) { c.rotateSlice(Z, 0, EffectiveClockwise(0, clockwise)) }

// RotateMiddleZ turns the z=1 slice.
func (c *Cube) RotateMiddleZ(clockwise bool) { c.rotateSlice(Z, 1, clockwise) }

// RotateFront turns the z=2 slice.
func (c *Cube) RotateFront(clockwise bool) { c.rotateSlice(Z, 2, clockwise) }

// rotateSlice permutes the nine pieces of a slice and spins their stickers.
// geoCW is the geometric direction viewed from the positive end of the axis:
// clockwise maps (u, v) to (v, 2-u), counter-clockwise to (2-v, u).
func (c *Cube) rotateSlice(a Axis, slice int, geoCW bool) {
	const last = Size - 1

	// Copy out first; writing in place would overwrite pieces not yet moved.
	var old [Size * Size]Cubie
	for u := 0; u < Size; u++ {
		for v := 0; v < Size; v++ {
			old[u*Size+v] = *c.At(slotCoords(a, slice, u, v))
		}
	}

	for u := 0; u < Size; u++ {
		for v := 0; v < Size; v++ {
			nu, nv := last-v, u
			if geoCW {
				nu, nv = v, last-u
			}
			x, y, z := slotCoords(a, slice, nu, nv)

			piece := old[u*Size+v]
			piece.Reinit(x, y, z, c.spacing)
			piece.RotateColors(a, geoCW)
			c.cubies[Index(x, y, z)] = piece
		}
	}
}
