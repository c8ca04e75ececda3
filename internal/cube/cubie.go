package cube

import "github.com/go-gl/mathgl/mgl32"

// Cubie is one of the 27 pieces of the cube.
//
// Colors is indexed by Face and records which sticker points in that world
// direction. Pose is only consumed by renderers; the logical state lives in
// the slot a cubie occupies and in Colors.
type Cubie struct {
	ID     int // Slot index the piece occupies when solved
	Pose   mgl32.Mat4
	Colors [6]Color
}

// SetFaceColor sets the sticker color pointing in the given direction.
func (c *Cubie) SetFaceColor(f Face, color Color) {
	c.Colors[f] = color
}

// FaceColor returns the sticker color pointing in the given direction.
func (c *Cubie) FaceColor(f Face) Color {
	return c.Colors[f]
}

// Stickers returns the number of visible stickers on the piece:
// 3 for corners, 2 for edges, 1 for centers and 0 for the core.
func (c *Cubie) Stickers() int {
	n := 0
	for _, color := range c.Colors {
		if color != None {
			n++
		}
	}
	return n
}

// sideCycle returns the four side faces of an axis in the order a sticker
// travels during a clockwise quarter turn viewed from the positive axis.
func sideCycle(a Axis) [4]Face {
	switch a {
	case X:
		return [4]Face{Up, Back, Down, Front}
	case Y:
		return [4]Face{Front, Left, Back, Right}
	case Z:
		return [4]Face{Right, Down, Left, Up}
	default:
		panic("cube: invalid axis")
	}
}

// RotateColors spins the sticker layout a quarter turn about the axis.
// Clockwise is geometric, viewed from the positive end of the axis. The two
// faces on the axis keep their colors.
func (c *Cubie) RotateColors(a Axis, clockwise bool) {
	cycle := sideCycle(a)
	old := c.Colors
	for i, from := range cycle {
		var to Face
		if clockwise {
			to = cycle[(i+1)%4]
		} else {
			to = cycle[(i+3)%4]
		}
		c.Colors[to] = old[from]
	}
}

// Reinit resets the pose to the axis-aligned transform of a grid slot.
// Any rotation accumulated during an animation is discarded; the sticker
// layout already carries the orientation.
func (c *Cubie) Reinit(x, y, z int, spacing float32) {
	c.Pose = SlotPose(x, y, z, spacing)
}

// SlotPose returns the canonical transform of the slot at (x, y, z).
func SlotPose(x, y, z int, spacing float32) mgl32.Mat4 {
	return mgl32.Translate3D(
		float32(x-1)*spacing,
		float32(y-1)*spacing,
		float32(z-1)*spacing,
	)
}

// TurnMatrix returns the rotation by angle radians about the axis.
func TurnMatrix(a Axis, angle float32) mgl32.Mat4 {
	switch a {
	case X:
		return mgl32.HomogRotate3DX(angle)
	case Y:
		return mgl32.HomogRotate3DY(angle)
	case Z:
		return mgl32.HomogRotate3DZ(angle)
	default:
		panic("cube: invalid axis")
	}
}
