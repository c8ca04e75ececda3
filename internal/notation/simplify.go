// Package notation rewrites move sequences into their shortest equivalent
// form.
package notation

import (
	"github.com/SeamusWaldron/gocube_engine/pkg/types"
)

// NormalizeTurn folds a sum of quarter turns into a turn value.
// 0 reports false: the turns cancel out.
//
//	-3 -> 1, -2 -> 2, -1 -> -1, 1 -> 1, 2 -> 2, 3 -> -1
func NormalizeTurn(quarters int) (types.Turn, bool) {
	quarters = ((quarters % 4) + 4) % 4
	switch quarters {
	case 0:
		return 0, false
	case 3:
		return types.TurnCCW, true
	default:
		return types.Turn(quarters), true
	}
}

// merge combines two turns of the same face. It returns false when they
// cancel out (e.g. R + R').
func merge(a, b types.Move) (types.Move, bool) {
	turn, ok := NormalizeTurn(int(a.Turn) + int(b.Turn))
	if !ok {
		return types.Move{}, false
	}
	return types.Move{Face: a.Face, Turn: turn}, true
}

// opposite reports whether two faces share an axis.
func opposite(a, b types.Face) bool {
	switch a {
	case types.FaceR:
		return b == types.FaceL
	case types.FaceL:
		return b == types.FaceR
	case types.FaceU:
		return b == types.FaceD
	case types.FaceD:
		return b == types.FaceU
	case types.FaceF:
		return b == types.FaceB
	case types.FaceB:
		return b == types.FaceF
	}
	return false
}

// Simplify merges consecutive turns of the same face and drops turns that
// cancel out. Turns of opposite faces commute, so R L R' becomes L.
// The result leaves the cube in the same state as the input.
func Simplify(moves []types.Move) []types.Move {
	out := make([]types.Move, 0, len(moves))

	for _, m := range moves {
		// Look back past at most one commuting opposite-face turn.
		j := len(out) - 1
		if j >= 1 && opposite(out[j].Face, m.Face) && out[j-1].Face == m.Face {
			j--
		}

		if j >= 0 && out[j].Face == m.Face {
			if merged, ok := merge(out[j], m); ok {
				out[j] = merged
			} else {
				out = append(out[:j], out[j+1:]...)
			}
			continue
		}
		out = append(out, m)
	}
	return out
}

// SimplifyString parses, simplifies and formats a sequence.
func SimplifyString(seq string) (string, error) {
	moves, err := types.ParseMoves(seq)
	if err != nil {
		return "", err
	}
	return types.FormatMoves(Simplify(moves)), nil
}
