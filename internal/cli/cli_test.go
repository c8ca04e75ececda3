package cli

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_engine"
	"github.com/SeamusWaldron/gocube_engine/internal/config"
	"github.com/SeamusWaldron/gocube_engine/internal/cube"
	"github.com/SeamusWaldron/gocube_engine/internal/protocol"
	"github.com/SeamusWaldron/gocube_engine/internal/storage"
)

// newTestRun points config, database, log and state file at a temp dir.
func newTestRun(t *testing.T) *engineRun {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cfg = config.DefaultConfig()
	cfg.DBPath = filepath.Join(dir, "engine.db")
	cfg.LogDir = filepath.Join(dir, "logs")

	run, err := newEngineRun(storage.SourcePlay, "")
	require.NoError(t, err)
	t.Cleanup(func() { run.Close() })
	return run
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// frames feeds n frame messages 50ms apart.
func frames(m *playModel, n int) {
	t := time.Now()
	for i := 0; i < n; i++ {
		t = t.Add(50 * time.Millisecond)
		m.Update(frameMsg(t))
	}
}

func TestTokenForKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{"r", "R", true},
		{"R", "R'", true},
		{"b", "B", true},
		{"D", "D'", true},
		{"x", "", false},
		{"enter", "", false},
	}
	for _, tt := range tests {
		got, ok := tokenForKey(tt.key)
		assert.Equal(t, tt.ok, ok, tt.key)
		assert.Equal(t, tt.want, got, tt.key)
	}
}

func TestSliceKeysInvertWithShift(t *testing.T) {
	for _, k := range []string{"m", "e", "s"} {
		lower, upper := sliceKeys[k], sliceKeys[strings.ToUpper(k)]
		assert.Equal(t, lower.axis, upper.axis)
		assert.NotEqual(t, lower.clockwise, upper.clockwise)
	}
}

func TestPlayModelTurnsAndRecords(t *testing.T) {
	run := newTestRun(t)
	m := newPlayModel(run, nil)

	m.Update(key("r"))
	m.Update(key("U"))
	assert.Equal(t, 2, run.engine.Pending())

	frames(m, 100)
	require.True(t, run.engine.Idle())

	var tokens []string
	for _, c := range run.engine.History() {
		tokens = append(tokens, c.Token)
	}
	assert.Equal(t, []string{"R", "U'"}, tokens)
	assert.Equal(t, 2, run.session.MoveCount())
	assert.Contains(t, m.View(), "Moves (2)")
}

func TestPlayModelMiddleSlice(t *testing.T) {
	run := newTestRun(t)
	m := newPlayModel(run, nil)

	m.Update(key("m"))
	m.Update(key("e"))
	assert.ErrorIs(t, m.err, gocube.ErrAnimating)

	frames(m, 100)
	require.Len(t, run.engine.History(), 1)
	c := run.engine.History()[0]
	assert.Equal(t, cube.Request{Axis: cube.X, Slice: 1, Clockwise: false}, c.Request)
	assert.Equal(t, "[X1 ccw]", commitLabel(c))
}

func TestPlayModelScrambleDiscardReset(t *testing.T) {
	run := newTestRun(t)
	m := newPlayModel(run, nil)

	m.Update(key(" "))
	require.NoError(t, m.err)
	assert.True(t, strings.HasPrefix(m.status, "Scramble: "))
	assert.Greater(t, run.engine.Pending(), 0)

	m.Update(key("backspace"))
	assert.Equal(t, 0, run.engine.Pending())

	frames(m, 100)
	m.Update(key("i"))
	require.NoError(t, m.err)
	assert.False(t, run.engine.IsSolved())

	m.Update(key("0"))
	require.NoError(t, m.err)
	assert.True(t, run.engine.IsSolved())
}

func TestPlayModelSolveWithoutSolver(t *testing.T) {
	run := newTestRun(t)
	m := newPlayModel(run, nil)

	m.Update(key("f"))
	frames(m, 100)
	m.Update(key("enter"))
	assert.ErrorIs(t, m.err, gocube.ErrNoSolver)
}

func TestPlayModelQuit(t *testing.T) {
	run := newTestRun(t)
	m := newPlayModel(run, nil)

	_, cmd := m.Update(key("q"))
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Contains(t, m.View(), "Log saved to:")
}

func TestRenderNet(t *testing.T) {
	net := renderNet(cube.New(cube.DefaultSpacing))
	lines := strings.Split(strings.TrimRight(net, "\n"), "\n")
	assert.Len(t, lines, 9)
}

func TestRecentTokens(t *testing.T) {
	assert.Equal(t, "R U", recentTokens([]string{"R", "U"}, 5))
	assert.Equal(t, "... U F", recentTokens([]string{"R", "U", "F"}, 2))
}

func TestLengthGraph(t *testing.T) {
	assert.Equal(t, "No solutions recorded yet", lengthGraph(nil))
	assert.Equal(t, "19 moves", lengthGraph([]float64{19}))
	assert.Contains(t, lengthGraph([]float64{19, 21, 18}), "moves per solution")
}

func TestPickDevicePrefersLast(t *testing.T) {
	devices := []gocube.Device{{Name: "A", UUID: "1"}, {Name: "B", UUID: "2"}}
	assert.Equal(t, "B", pickDevice(devices, "2").Name)
	assert.Equal(t, "A", pickDevice(devices, "").Name)
	assert.Equal(t, "A", pickDevice(devices, "9").Name)
}

func TestDescribeFrame(t *testing.T) {
	line := describeFrame(&protocol.Message{Type: protocol.MsgTypeRotation, Payload: []byte{0x00, 0x00, 0x09, 0x03}})
	assert.Contains(t, line, "rotation")
	assert.Contains(t, line, "B cw")
	assert.Contains(t, line, "R ccw")

	line = describeFrame(&protocol.Message{Type: protocol.MsgTypeBattery, Payload: []byte{64}})
	assert.Contains(t, line, "64%")

	line = describeFrame(&protocol.Message{Type: protocol.MsgTypeRotation, Payload: []byte{0x00}})
	assert.Contains(t, line, "even length")
}

func TestCompactHistory(t *testing.T) {
	commits := []gocube.Commit{{Token: "R"}, {Token: "R"}, {Token: "U"}, {Token: "U'"}}
	got, ok := compactHistory(commits)
	require.True(t, ok)
	assert.Equal(t, []string{"R2"}, got)

	_, ok = compactHistory(append(commits, gocube.Commit{Request: cube.Request{Axis: cube.X, Slice: 1}}))
	assert.False(t, ok)
}
