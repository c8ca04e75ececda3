// Package types contains the move notation shared by the engine, the solver
// boundary and the command-line tools.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNotation is returned when a move token cannot be parsed.
var ErrInvalidNotation = errors.New("gocube: invalid move notation")

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Faces lists the faces in the order the solver protocol writes them.
var Faces = []Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
	Turn180 Turn = 2  // Half turn, two clockwise quarter turns
)

// Move represents a single face turn.
type Move struct {
	Face Face `json:"face"`
	Turn Turn `json:"turn"`
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case TurnCCW:
		suffix = "'"
	case Turn180:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
	// Turn180 is its own inverse
	}
	return inv
}

// Quarters returns the number of quarter turns the move is made of.
func (m Move) Quarters() int {
	if m.Turn == Turn180 {
		return 2
	}
	return 1
}

// Clockwise reports the direction of each quarter turn.
func (m Move) Clockwise() bool {
	return m.Turn != TurnCCW
}

// Single returns the quarter turn a half turn is expanded into.
func (m Move) Single() Move {
	if m.Turn == Turn180 {
		m.Turn = TurnCW
	}
	return m
}

// ParseMove parses a standard notation token into a Move.
// Accepted: a face letter, optionally followed by ', ` or 2.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty token", ErrInvalidNotation)
	}

	var face Face
	switch s[0] {
	case 'R':
		face = FaceR
	case 'L':
		face = FaceL
	case 'U':
		face = FaceU
	case 'D':
		face = FaceD
	case 'F':
		face = FaceF
	case 'B':
		face = FaceB
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := TurnCW
	switch s[1:] {
	case "":
	case "'", "`":
		turn = TurnCCW
	case "2", "2'", "2`":
		turn = Turn180
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// The whole sequence is rejected if any token is invalid.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
