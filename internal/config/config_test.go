package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_engine/internal/solver"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, float32(5.0), cfg.TurnSpeed)
	assert.Equal(t, 60, cfg.FrameRate)
	assert.Equal(t, 25, cfg.ScrambleLength)
	assert.Equal(t, solver.DefaultOptions(), cfg.SolverOptions())
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.TurnSpeed = 8
	cfg.Solver.Kind = "http"
	cfg.Solver.URL = "http://localhost:8080"
	cfg.Solver.Timeout = 5 * time.Second
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "turn_speed: 2.5\nsolver:\n  kind: exec\n  path: /usr/bin/kociemba\n  timeout: 10s\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), cfg.TurnSpeed)
	assert.Equal(t, 60, cfg.FrameRate)
	assert.Equal(t, 10*time.Second, cfg.Solver.Timeout)
	assert.Equal(t, solver.DefaultMaxDepth, cfg.Solver.MaxDepth)

	s, err := cfg.NewSolver()
	require.NoError(t, err)
	assert.Equal(t, solver.Exec{Path: "/usr/bin/kociemba"}, s)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "turn_speed: [\n"},
		{"zero speed", "turn_speed: 0\n"},
		{"negative spacing", "spacing: -1\n"},
		{"zero frame rate", "frame_rate: 0\n"},
		{"unknown solver", "solver:\n  kind: magic\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestNewSolverNone(t *testing.T) {
	_, err := DefaultConfig().NewSolver()
	assert.ErrorIs(t, err, solver.ErrNoSolver)
}
