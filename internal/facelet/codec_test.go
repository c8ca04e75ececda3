package facelet

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_engine/internal/cube"
	"github.com/SeamusWaldron/gocube_engine/pkg/types"
)

const solvedString = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

var tokens = []string{
	"U", "U'", "U2", "D", "D'", "D2",
	"R", "R'", "R2", "L", "L'", "L2",
	"F", "F'", "F2", "B", "B'", "B2",
}

func applyToken(t *testing.T, c *cube.Cube, tok string) {
	t.Helper()
	req, turns, err := DecodeToken(tok)
	require.NoError(t, err)
	for i := 0; i < turns; i++ {
		c.Apply(req)
	}
}

func randomSequence(rng *rand.Rand, n int) []string {
	seq := make([]string, n)
	for i := range seq {
		seq[i] = tokens[rng.Intn(len(tokens))]
	}
	return seq
}

func TestEncodeSolved(t *testing.T) {
	s, err := Encode(cube.New(cube.DefaultSpacing))
	require.NoError(t, err)
	assert.Equal(t, solvedString, s)
}

func TestEncodeSingleTurns(t *testing.T) {
	for _, tok := range tokens {
		t.Run(tok, func(t *testing.T) {
			c := cube.New(cube.DefaultSpacing)
			applyToken(t, c, tok)

			m, err := types.ParseMove(tok)
			require.NoError(t, err)
			ref := Solved()
			ref.Apply(m)

			got, err := Encode(c)
			require.NoError(t, err)
			assert.Equal(t, ref.Encoding(), got)
		})
	}
}

func TestEncodeMatchesReferenceModel(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		seq := randomSequence(rng, 30)

		c := cube.New(cube.DefaultSpacing)
		for _, tok := range seq {
			applyToken(t, c, tok)
		}
		moves, err := types.ParseMoves(strings.Join(seq, " "))
		require.NoError(t, err)
		ref := Solved()
		ref.ApplyMoves(moves)

		got, err := Encode(c)
		require.NoError(t, err)
		require.Equal(t, ref.Encoding(), got, "sequence %v", seq)
	}
}

func TestEncodeIsValidAfterSliceTurns(t *testing.T) {
	c := cube.New(cube.DefaultSpacing)
	c.RotateMiddleX(true)
	c.RotateMiddleY(false)
	c.RotateRight(true)
	c.RotateMiddleZ(true)

	s, err := Encode(c)
	require.NoError(t, err)
	_, err = Parse(s)
	assert.NoError(t, err)
}

func TestEncodeUnmappedColor(t *testing.T) {
	c := cube.New(cube.DefaultSpacing)
	c.At(0, 2, 0).SetFaceColor(cube.Up, cube.None)

	_, err := Encode(c)
	assert.ErrorIs(t, err, ErrUnmappedColor)
}

func TestScrambleThenInverseRestoresSolvedString(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	seq := randomSequence(rng, 20)

	c := cube.New(cube.DefaultSpacing)
	for _, tok := range seq {
		applyToken(t, c, tok)
	}
	scrambled, err := Encode(c)
	require.NoError(t, err)

	moves, err := types.ParseMoves(strings.Join(seq, " "))
	require.NoError(t, err)
	solution := types.FormatMoves(types.InvertMoves(moves))

	toks, err := ParseSolution(solution)
	require.NoError(t, err)

	model, err := Parse(scrambled)
	require.NoError(t, err)
	for _, tok := range toks {
		applyToken(t, c, tok)
		m, err := types.ParseMove(tok)
		require.NoError(t, err)
		model.Apply(m)
	}

	got, err := Encode(c)
	require.NoError(t, err)
	assert.Equal(t, solvedString, got)
	assert.True(t, model.IsSolved())
	assert.True(t, c.IsSolved())
}

func TestDecodeToken(t *testing.T) {
	tests := []struct {
		token string
		want  cube.Request
		turns int
	}{
		{"U", cube.Request{Axis: cube.Y, Slice: 2, Clockwise: true}, 1},
		{"D", cube.Request{Axis: cube.Y, Slice: 0, Clockwise: true}, 1},
		{"R", cube.Request{Axis: cube.X, Slice: 2, Clockwise: true}, 1},
		{"L", cube.Request{Axis: cube.X, Slice: 0, Clockwise: true}, 1},
		{"F", cube.Request{Axis: cube.Z, Slice: 2, Clockwise: true}, 1},
		{"B", cube.Request{Axis: cube.Z, Slice: 0, Clockwise: true}, 1},
		{"U'", cube.Request{Axis: cube.Y, Slice: 2, Clockwise: false}, 1},
		{"L'", cube.Request{Axis: cube.X, Slice: 0, Clockwise: false}, 1},
		{"R2", cube.Request{Axis: cube.X, Slice: 2, Clockwise: true}, 2},
		{"B2", cube.Request{Axis: cube.Z, Slice: 0, Clockwise: true}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			req, turns, err := DecodeToken(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, req)
			assert.Equal(t, tt.turns, turns)
		})
	}
}

func TestDecodeTokenInvalid(t *testing.T) {
	for _, tok := range []string{"", "X", "M", "u", "R3", "R''", "RU"} {
		_, _, err := DecodeToken(tok)
		assert.ErrorIs(t, err, types.ErrInvalidNotation, "token %q", tok)
	}
}

func TestDoubleTokenEqualsTwoQuarterTurns(t *testing.T) {
	for _, face := range []string{"U", "D", "R", "L", "F", "B"} {
		a := cube.New(cube.DefaultSpacing)
		applyToken(t, a, face+"2")

		b := cube.New(cube.DefaultSpacing)
		applyToken(t, b, face)
		applyToken(t, b, face)

		assert.True(t, a.SameState(b), "%s2 should equal %s %s", face, face, face)
	}
}

func TestParseSolution(t *testing.T) {
	toks, err := ParseSolution("  R U2 F' \n")
	require.NoError(t, err)
	assert.Equal(t, []string{"R", "U2", "F'"}, toks)

	_, err = ParseSolution("Error 8: probe table file not found")
	assert.ErrorIs(t, err, ErrSolveFailed)

	_, err = ParseSolution("   ")
	assert.ErrorIs(t, err, ErrNoSolution)

	_, err = ParseSolution("R U X F")
	assert.ErrorIs(t, err, types.ErrInvalidNotation)
}
