// Package cube provides the 3x3x3 cubie model and the layer-turn engine.
//
// The model tracks which piece occupies each of the 27 grid slots and which
// sticker color faces each world direction. Grid coordinates run 0..2 on every
// axis: x grows to the right, y grows up and z grows towards the viewer, so the
// Right, Up and Front faces sit at slice 2 of their axis.
package cube

import "github.com/go-gl/mathgl/mgl32"

// Color represents a sticker color.
type Color byte

const (
	None   Color = 0 // Internal face, no sticker
	White  Color = 1 // Up face when solved
	Yellow Color = 2 // Down face when solved
	Red    Color = 3 // Front face when solved
	Orange Color = 4 // Back face when solved
	Green  Color = 5 // Left face when solved
	Blue   Color = 6 // Right face when solved
)

func (c Color) String() string {
	switch c {
	case None:
		return "-"
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// Face is one of the six world directions a sticker can point to.
type Face int

const (
	Up    Face = 0
	Down  Face = 1
	Left  Face = 2
	Right Face = 3
	Front Face = 4
	Back  Face = 5
)

// Faces lists every face in enum order.
var Faces = [6]Face{Up, Down, Left, Right, Front, Back}

func (f Face) String() string {
	switch f {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	case Front:
		return "F"
	case Back:
		return "B"
	default:
		return "?"
	}
}

// Normal returns the unit vector the face points along.
func (f Face) Normal() mgl32.Vec3 {
	switch f {
	case Up:
		return mgl32.Vec3{0, 1, 0}
	case Down:
		return mgl32.Vec3{0, -1, 0}
	case Left:
		return mgl32.Vec3{-1, 0, 0}
	case Right:
		return mgl32.Vec3{1, 0, 0}
	case Front:
		return mgl32.Vec3{0, 0, 1}
	case Back:
		return mgl32.Vec3{0, 0, -1}
	default:
		panic("cube: invalid face")
	}
}

// Axis is a rotation axis of the cube.
type Axis int

const (
	X Axis = 0
	Y Axis = 1
	Z Axis = 2
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// Vec returns the positive unit vector of the axis.
func (a Axis) Vec() mgl32.Vec3 {
	switch a {
	case X:
		return mgl32.Vec3{1, 0, 0}
	case Y:
		return mgl32.Vec3{0, 1, 0}
	case Z:
		return mgl32.Vec3{0, 0, 1}
	default:
		panic("cube: invalid axis")
	}
}

// solvedColor returns the sticker color carried by a face in the solved state.
func solvedColor(f Face) Color {
	switch f {
	case Up:
		return White
	case Down:
		return Yellow
	case Left:
		return Green
	case Right:
		return Blue
	case Front:
		return Red
	case Back:
		return Orange
	default:
		return None
	}
}
