package facelet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_engine/pkg/types"
)

func TestSolvedModel(t *testing.T) {
	f := Solved()
	assert.True(t, f.IsSolved())
	assert.Equal(t, solvedString, f.Encoding())
}

func TestParseRoundTrip(t *testing.T) {
	f := Solved()
	f.Move(FaceR, 1)
	f.Move(FaceU, -1)

	parsed, err := Parse(f.Encoding())
	require.NoError(t, err)
	assert.Equal(t, f.Stickers, parsed.Stickers)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"short", solvedString[:53]},
		{"long", solvedString + "U"},
		{"bad letter", "X" + solvedString[1:]},
		{"wrong center", solvedString[:4] + "R" + solvedString[5:13] + "U" + solvedString[14:]},
		{"wrong counts", "R" + solvedString[1:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			assert.ErrorIs(t, err, ErrInvalidFacelets)
		})
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	f := Solved()
	f.Move(FaceR, 1)
	assert.False(t, f.IsSolved())
}

func TestFourQuarterTurnsRestore(t *testing.T) {
	for face := FaceU; face <= FaceB; face++ {
		f := Solved()
		for i := 0; i < 4; i++ {
			f.Move(face, 1)
		}
		assert.True(t, f.IsSolved(), "%v x 4 should return to solved\n%s", face, f)
	}
}

func TestMoveThenInverse(t *testing.T) {
	for face := FaceU; face <= FaceB; face++ {
		f := Solved()
		f.Move(face, 1)
		f.Move(face, -1)
		assert.True(t, f.IsSolved(), "%v then %v' should cancel", face, face)

		f.Move(face, 2)
		f.Move(face, 2)
		assert.True(t, f.IsSolved(), "%v2 %v2 should cancel", face, face)
	}
}

func TestSexyMoveSixTimes(t *testing.T) {
	moves, err := types.ParseMoves("R U R' U'")
	require.NoError(t, err)

	f := Solved()
	for i := 0; i < 6; i++ {
		f.ApplyMoves(moves)
	}
	assert.True(t, f.IsSolved())
}

func TestStringNet(t *testing.T) {
	lines := strings.Split(strings.TrimRight(Solved().String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "      U U U ", lines[0])
	assert.Equal(t, "L L L F F F R R R B B B ", lines[3])
	assert.Equal(t, "      D D D ", lines[8])
}

func TestDetectPhase(t *testing.T) {
	tests := []struct {
		name  string
		moves string
		want  Phase
	}{
		{"solved", "", PhaseSolved},
		{"D turn keeps two layers", "D", PhaseLastCross},
		{"U turn breaks cross", "U", PhaseScrambled},
		{"R turn breaks cross", "R", PhaseScrambled},
		{"D2 keeps two layers", "D2", PhaseLastCross},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves, err := types.ParseMoves(tt.moves)
			require.NoError(t, err)
			f := Solved()
			f.ApplyMoves(moves)
			assert.Equal(t, tt.want, f.DetectPhase())
		})
	}
}

func TestProgressIsCumulative(t *testing.T) {
	f := Solved()
	f.Move(FaceD, 1)
	p := f.Progress()
	assert.True(t, p.Cross)
	assert.True(t, p.FirstLayer)
	assert.True(t, p.SecondLayer)
	assert.True(t, p.LastCross)
	assert.False(t, p.CornersPositioned)
	assert.False(t, p.Solved)
}
