package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SeamusWaldron/gocube_engine/internal/anim"
	"github.com/SeamusWaldron/gocube_engine/internal/cube"
)

// MoveRecord represents a committed turn in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	TsMs      int64
	Token     string
	Request   cube.Request
	Instant   bool
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

const insertMove = `
	INSERT INTO moves (session_id, move_index, ts_ms, token, axis, slice, clockwise, instant)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

// Create records a commit and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, at time.Time, c anim.Commit) (int64, error) {
	result, err := r.db.Exec(insertMove,
		sessionID, moveIndex, at.UnixMilli(), c.Token,
		int(c.Request.Axis), c.Request.Slice, c.Request.Clockwise, c.Instant)
	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}
	return id, nil
}

// CreateBatch records several commits in a single transaction.
func (r *MoveRepository) CreateBatch(sessionID string, commits []anim.Commit, startIndex int, at time.Time) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, c := range commits {
			_, err := tx.Exec(insertMove,
				sessionID, startIndex+i, at.UnixMilli(), c.Token,
				int(c.Request.Axis), c.Request.Slice, c.Request.Clockwise, c.Instant)
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves of a session in commit order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, token, axis, slice, clockwise, instant
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		var axis int
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Token,
			&axis, &m.Request.Slice, &m.Request.Clockwise, &m.Instant)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		m.Request.Axis = cube.Axis(axis)
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

// Count returns the number of moves in a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get move count: %w", err)
	}
	return count, nil
}
