package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeFormat sorts lexically; all stored times are UTC.
const timeFormat = "2006-01-02T15:04:05.000Z07:00"

// Session sources.
const (
	SourcePlay     = "play"
	SourceMirror   = "mirror"
	SourceScramble = "scramble"
	SourceSolve    = "solve"
)

// Session represents one engine run in the database.
type Session struct {
	SessionID  string
	StartedAt  time.Time
	EndedAt    *time.Time
	DurationMs *int64
	Source     string
	DeviceName *string
	Scramble   *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(source, deviceName string) (string, error) {
	id := uuid.New().String()

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, source, device_name)
		VALUES (?, ?, ?, ?)
	`, id, time.Now().UTC().Format(timeFormat), source, nullString(deviceName))
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// SetScramble records the scramble applied at the start of a session.
func (r *SessionRepository) SetScramble(sessionID, scramble string) error {
	_, err := r.db.Exec("UPDATE sessions SET scramble = ? WHERE session_id = ?", nullString(scramble), sessionID)
	if err != nil {
		return fmt.Errorf("failed to set scramble: %w", err)
	}
	return nil
}

// End marks a session as complete.
func (r *SessionRepository) End(sessionID string) error {
	s, err := r.Get(sessionID)
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("session %s not found", sessionID)
	}

	endedAt := time.Now().UTC()
	durationMs := endedAt.Sub(s.StartedAt).Milliseconds()

	_, err = r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, duration_ms = ?
		WHERE session_id = ?
	`, endedAt.Format(timeFormat), durationMs, sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

const sessionColumns = `session_id, started_at, ended_at, duration_ms, source, device_name, scramble`

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var s Session
	var startedAt string
	var endedAt sql.NullString

	err := row.Scan(&s.SessionID, &startedAt, &endedAt, &s.DurationMs, &s.Source, &s.DeviceName, &s.Scramble)
	if err != nil {
		return nil, err
	}

	s.StartedAt, _ = time.Parse(timeFormat, startedAt)
	if endedAt.Valid {
		t, _ := time.Parse(timeFormat, endedAt.String)
		s.EndedAt = &t
	}
	return &s, nil
}

// Get retrieves a session by ID. It returns nil, nil if none exists.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow("SELECT "+sessionColumns+" FROM sessions WHERE session_id = ?", sessionID)

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// List retrieves the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

// Delete deletes a session with its moves and solve attempts.
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
