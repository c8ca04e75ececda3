package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_engine/internal/facelet"
	"github.com/SeamusWaldron/gocube_engine/pkg/types"
)

func TestNormalizeTurn(t *testing.T) {
	tests := []struct {
		in   int
		want types.Turn
		ok   bool
	}{
		{-3, types.TurnCW, true},
		{-2, types.Turn180, true},
		{-1, types.TurnCCW, true},
		{0, 0, false},
		{1, types.TurnCW, true},
		{2, types.Turn180, true},
		{3, types.TurnCCW, true},
		{4, 0, false},
	}
	for _, tt := range tests {
		got, ok := NormalizeTurn(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}

func TestSimplifyString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"R U", "R U"},
		{"R R", "R2"},
		{"R R R", "R'"},
		{"R R'", ""},
		{"R2 R2", ""},
		{"U R R' U'", ""},
		{"R L R'", "L"},
		{"R L R", "R2 L"},
		{"R U R'", "R U R'"},
		{"F F F F B", "B"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := SimplifyString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimplifyRejectsBadNotation(t *testing.T) {
	_, err := SimplifyString("R X")
	assert.ErrorIs(t, err, types.ErrInvalidNotation)
}

func TestSimplifyKeepsCubeState(t *testing.T) {
	seqs := []string{
		"R R U U' L R' R' D D D",
		"F B F' B' U D U D",
		"R L R L R L R L",
	}
	for _, seq := range seqs {
		moves, err := types.ParseMoves(seq)
		require.NoError(t, err)

		a := facelet.Solved()
		a.ApplyMoves(moves)
		b := facelet.Solved()
		b.ApplyMoves(Simplify(moves))

		assert.Equal(t, a.Encoding(), b.Encoding(), seq)
		assert.LessOrEqual(t, len(Simplify(moves)), len(moves))
	}
}
