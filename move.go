package gocube

import "github.com/SeamusWaldron/gocube_engine/pkg/types"

// Move notation types, shared with the internal packages.
type (
	Face = types.Face
	Turn = types.Turn
	Move = types.Move
)

const (
	FaceR = types.FaceR // Right
	FaceL = types.FaceL // Left
	FaceU = types.FaceU // Up
	FaceD = types.FaceD // Down
	FaceF = types.FaceF // Front
	FaceB = types.FaceB // Back
)

const (
	CW     = types.TurnCW  // Clockwise (90 degrees)
	CCW    = types.TurnCCW // Counter-clockwise (90 degrees)
	Double = types.Turn180 // Half turn (180 degrees)
)

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
func ParseMove(s string) (Move, error) {
	return types.ParseMove(s)
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// A single invalid token rejects the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	return types.ParseMoves(s)
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	return types.FormatMoves(moves)
}
