package recorder

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_engine/internal/anim"
	"github.com/SeamusWaldron/gocube_engine/internal/cube"
	"github.com/SeamusWaldron/gocube_engine/internal/solver"
	"github.com/SeamusWaldron/gocube_engine/internal/storage"
)

func openTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSessionRecordsCommits(t *testing.T) {
	db := openTestDB(t)
	s := NewSession(db, nil)
	assert.Equal(t, StateIdle, s.State())

	// Commits before Start are not recorded.
	s.OnCommit(anim.Commit{Token: "R"})
	assert.ErrorIs(t, s.RecordCommit(anim.Commit{Token: "R"}), ErrNotRecording)

	id, err := s.Start(storage.SourcePlay, "")
	require.NoError(t, err)
	assert.Equal(t, StateRecording, s.State())
	assert.Equal(t, id, s.ID())

	s.OnCommit(anim.Commit{Request: cube.Request{Axis: cube.X, Slice: 2, Clockwise: true}, Token: "R"})
	s.OnCommit(anim.Commit{Request: cube.Request{Axis: cube.Y, Slice: 2, Clockwise: true}, Token: "U"})
	assert.Equal(t, 2, s.MoveCount())
	require.NoError(t, s.RecordScramble("R U"))

	require.NoError(t, s.End())
	assert.Equal(t, StateEnded, s.State())
	require.NoError(t, s.End())

	moves, err := storage.NewMoveRepository(db).GetBySession(id)
	require.NoError(t, err)
	require.Len(t, moves, 2)
	assert.Equal(t, "U", moves[1].Token)

	sess, err := storage.NewSessionRepository(db).Get(id)
	require.NoError(t, err)
	require.NotNil(t, sess.Scramble)
	assert.Equal(t, "R U", *sess.Scramble)
	assert.NotNil(t, sess.EndedAt)
}

func TestSessionRecordsSolves(t *testing.T) {
	db := openTestDB(t)
	s := NewSession(db, nil)

	assert.ErrorIs(t, s.RecordSolve("x", solver.Solution{}, nil), ErrNotRecording)

	id, err := s.Start(storage.SourceSolve, "")
	require.NoError(t, err)
	require.NoError(t, s.RecordSolve("facelets", solver.Solution{Tokens: []string{"R", "U"}}, nil))
	require.NoError(t, s.RecordSolve("facelets", solver.Solution{}, errors.New("boom")))

	attempts, err := storage.NewSolveRepository(db).GetBySession(id)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, 2, attempts[0].Length)
	assert.NotNil(t, attempts[1].Error)
}

func TestStateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dir", "state.yaml")

	sf, err := NewStateFile(path)
	require.NoError(t, err)
	assert.Equal(t, AppState{}, sf.State())

	require.NoError(t, sf.SetLastDevice("AA:BB", "GoCube_1"))
	require.NoError(t, sf.SetLastSession("abc"))

	again, err := NewStateFile(path)
	require.NoError(t, err)
	assert.Equal(t, AppState{LastDeviceID: "AA:BB", LastDeviceName: "GoCube_1", LastSessionID: "abc"}, again.State())
}

func TestSessionStateString(t *testing.T) {
	assert.Equal(t, "recording", StateRecording.String())
	assert.Equal(t, "unknown", SessionState(9).String())
}
