package storage

import (
	"fmt"
	"time"

	"github.com/SeamusWaldron/gocube_engine/internal/solver"
)

// SolveAttempt is one request to the external solver.
type SolveAttempt struct {
	AttemptID int64
	SessionID string
	CreatedAt time.Time
	Facelets  string
	Solution  *string
	Length    int
	ElapsedMs int64
	Error     *string
}

// SolveRepository provides CRUD operations for solve attempts.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve attempt repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Record stores the outcome of a solver call. A non-nil solveErr is stored
// in place of the solution.
func (r *SolveRepository) Record(sessionID, facelets string, sol solver.Solution, solveErr error) (int64, error) {
	var solution, errText *string
	length := 0
	if solveErr != nil {
		msg := solveErr.Error()
		errText = &msg
	} else {
		s := sol.String()
		solution = &s
		length = sol.Len()
	}

	result, err := r.db.Exec(`
		INSERT INTO solve_attempts (session_id, created_at, facelets, solution, length, elapsed_ms, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, sessionID, time.Now().UTC().Format(timeFormat), facelets, solution, length,
		sol.Elapsed.Milliseconds(), errText)
	if err != nil {
		return 0, fmt.Errorf("failed to record solve attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get attempt ID: %w", err)
	}
	return id, nil
}

// GetBySession retrieves the attempts of a session, oldest first.
func (r *SolveRepository) GetBySession(sessionID string) ([]SolveAttempt, error) {
	rows, err := r.db.Query(`
		SELECT attempt_id, session_id, created_at, facelets, solution, length, elapsed_ms, error
		FROM solve_attempts
		WHERE session_id = ?
		ORDER BY attempt_id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get solve attempts: %w", err)
	}
	defer rows.Close()

	var attempts []SolveAttempt
	for rows.Next() {
		var a SolveAttempt
		var createdAt string
		err := rows.Scan(&a.AttemptID, &a.SessionID, &createdAt, &a.Facelets,
			&a.Solution, &a.Length, &a.ElapsedMs, &a.Error)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve attempt: %w", err)
		}
		a.CreatedAt, _ = time.Parse(timeFormat, createdAt)
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// RecentLengths returns the solution lengths of the last limit successful
// attempts, oldest first.
func (r *SolveRepository) RecentLengths(limit int) ([]float64, error) {
	rows, err := r.db.Query(`
		SELECT length FROM (
			SELECT attempt_id, length FROM solve_attempts
			WHERE error IS NULL
			ORDER BY attempt_id DESC
			LIMIT ?
		) ORDER BY attempt_id
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get solution lengths: %w", err)
	}
	defer rows.Close()

	var lengths []float64
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan length: %w", err)
		}
		lengths = append(lengths, float64(n))
	}
	return lengths, rows.Err()
}
