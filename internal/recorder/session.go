package recorder

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_engine/internal/anim"
	"github.com/SeamusWaldron/gocube_engine/internal/solver"
	"github.com/SeamusWaldron/gocube_engine/internal/storage"
)

// ErrNotRecording is returned when a session operation needs a started session.
var ErrNotRecording = errors.New("recorder: no active session")

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session persists what happens to one engine: committed turns, the scramble
// and every solver attempt.
type Session struct {
	logger *zap.Logger

	mu        sync.Mutex
	state     SessionState
	sessionID string
	startTime time.Time
	moveIndex int

	sessions *storage.SessionRepository
	moves    *storage.MoveRepository
	solves   *storage.SolveRepository
}

// NewSession creates a session manager on db.
func NewSession(db *storage.DB, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		logger:   logger,
		state:    StateIdle,
		sessions: storage.NewSessionRepository(db),
		moves:    storage.NewMoveRepository(db),
		solves:   storage.NewSolveRepository(db),
	}
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ID returns the session ID, empty before Start.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// MoveCount returns the number of turns recorded so far.
func (s *Session) MoveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moveIndex
}

// Elapsed returns the time since Start.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRecording {
		return 0
	}
	return time.Since(s.startTime)
}

// Start opens a new session row.
func (s *Session) Start(source, deviceName string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.sessions.Create(source, deviceName)
	if err != nil {
		return "", err
	}

	s.sessionID = id
	s.state = StateRecording
	s.startTime = time.Now()
	s.moveIndex = 0

	s.logger.Info("session started", zap.String("session_id", id), zap.String("source", source))
	return id, nil
}

// End closes the session. Ending an idle session is a no-op.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return nil
	}
	if err := s.sessions.End(s.sessionID); err != nil {
		return err
	}
	s.state = StateEnded

	s.logger.Info("session ended",
		zap.String("session_id", s.sessionID),
		zap.Int("moves", s.moveIndex),
		zap.Duration("elapsed", time.Since(s.startTime)),
	)
	return nil
}

// RecordCommit stores a committed turn.
func (s *Session) RecordCommit(c anim.Commit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}
	if _, err := s.moves.Create(s.sessionID, s.moveIndex, time.Now(), c); err != nil {
		return err
	}
	s.moveIndex++
	return nil
}

// OnCommit is a commit hook. Storage errors are logged, never returned to
// the frame loop.
func (s *Session) OnCommit(c anim.Commit) {
	if err := s.RecordCommit(c); err != nil && !errors.Is(err, ErrNotRecording) {
		s.logger.Warn("record commit", zap.Error(err))
	}
}

// RecordScramble stores the scramble sequence of the session.
func (s *Session) RecordScramble(scramble string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}
	return s.sessions.SetScramble(s.sessionID, scramble)
}

// RecordSolve stores one solver attempt, failed or not.
func (s *Session) RecordSolve(facelets string, sol solver.Solution, solveErr error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}
	_, err := s.solves.Record(s.sessionID, facelets, sol, solveErr)
	return err
}
