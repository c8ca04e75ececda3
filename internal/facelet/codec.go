// Package facelet converts between the cubie model and the 54 character
// facelet string spoken by two-phase solvers, and decodes the move tokens
// those solvers answer with.
package facelet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/gocube_engine/internal/cube"
	"github.com/SeamusWaldron/gocube_engine/pkg/types"
)

// Length is the number of facelets in a solver string.
const Length = 54

// failurePrefix marks a solver answer that is an error message, not moves.
const failurePrefix = "Error"

var (
	ErrInvalidFacelets = errors.New("gocube: invalid facelet string")
	ErrUnmappedColor   = errors.New("gocube: sticker color matches no center")
	ErrSolveFailed     = errors.New("gocube: solver reported an error")
	ErrNoSolution      = errors.New("gocube: solver returned no moves")
)

// slot returns the grid coordinates of facelet (r, c) of a face and the world
// direction its sticker points to.
func slot(face Face, r, c int) (x, y, z int, dir cube.Face) {
	switch face {
	case FaceU:
		return c, 2, r, cube.Up
	case FaceR:
		return 2, 2 - r, 2 - c, cube.Right
	case FaceF:
		return c, 2 - r, 2, cube.Front
	case FaceD:
		return c, 0, 2 - r, cube.Down
	case FaceL:
		return 0, 2 - r, c, cube.Left
	case FaceB:
		return 2 - c, 2 - r, 0, cube.Back
	default:
		panic(fmt.Sprintf("facelet: invalid face %d", face))
	}
}

// Colors returns the sticker colors of the cube in facelet order.
func Colors(c *cube.Cube) [Length]cube.Color {
	var out [Length]cube.Color
	for face := FaceU; face <= FaceB; face++ {
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				x, y, z, dir := slot(face, r, col)
				out[int(face)*9+r*3+col] = c.At(x, y, z).FaceColor(dir)
			}
		}
	}
	return out
}

// Encode serializes the cube into a solver string: faces in URFDLB order,
// each read row by row as seen from outside the cube. Sticker colors are
// translated to face letters through the current centers.
func Encode(c *cube.Cube) (string, error) {
	letters := c.FaceletColorMap()

	var b strings.Builder
	b.Grow(Length)
	for i, color := range Colors(c) {
		letter, ok := letters[color]
		if !ok {
			return "", fmt.Errorf("%w: %v at %v%d", ErrUnmappedColor, color, Face(i/9), i%9+1)
		}
		b.WriteByte(letter)
	}
	return b.String(), nil
}

// DecodeToken translates one move token into the slice request that performs
// it and the number of quarter turns. Clockwise on the request has face-turn
// meaning, so U and D, R and L, F and B all decode as clockwise.
func DecodeToken(token string) (cube.Request, int, error) {
	m, err := types.ParseMove(token)
	if err != nil {
		return cube.Request{}, 0, err
	}
	return RequestFor(m), m.Quarters(), nil
}

// RequestFor returns the quarter turn a notation move is made of.
func RequestFor(m types.Move) cube.Request {
	req := cube.Request{Clockwise: m.Clockwise()}
	switch m.Face {
	case types.FaceU:
		req.Axis, req.Slice = cube.Y, 2
	case types.FaceD:
		req.Axis, req.Slice = cube.Y, 0
	case types.FaceR:
		req.Axis, req.Slice = cube.X, 2
	case types.FaceL:
		req.Axis, req.Slice = cube.X, 0
	case types.FaceF:
		req.Axis, req.Slice = cube.Z, 2
	case types.FaceB:
		req.Axis, req.Slice = cube.Z, 0
	default:
		panic(fmt.Sprintf("facelet: invalid face %q", m.Face))
	}
	return req
}

// TokenFor returns the notation token of a face quarter turn.
// Middle slices have no token and report false.
func TokenFor(req cube.Request) (string, bool) {
	var face types.Face
	switch {
	case req.Axis == cube.Y && req.Slice == 2:
		face = types.FaceU
	case req.Axis == cube.Y && req.Slice == 0:
		face = types.FaceD
	case req.Axis == cube.X && req.Slice == 2:
		face = types.FaceR
	case req.Axis == cube.X && req.Slice == 0:
		face = types.FaceL
	case req.Axis == cube.Z && req.Slice == 2:
		face = types.FaceF
	case req.Axis == cube.Z && req.Slice == 0:
		face = types.FaceB
	default:
		return "", false
	}
	turn := types.TurnCW
	if !req.Clockwise {
		turn = types.TurnCCW
	}
	return types.Move{Face: face, Turn: turn}.Notation(), true
}

// ParseSolution splits a solver answer into move tokens.
// An answer starting with "Error" fails with ErrSolveFailed and an empty one
// with ErrNoSolution. A single malformed token rejects the whole answer.
func ParseSolution(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, failurePrefix) {
		return nil, fmt.Errorf("%w: %s", ErrSolveFailed, raw)
	}

	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return nil, ErrNoSolution
	}

	for i, tok := range tokens {
		if _, _, err := DecodeToken(tok); err != nil {
			return nil, fmt.Errorf("solution token %d: %w", i+1, err)
		}
	}
	return tokens, nil
}
