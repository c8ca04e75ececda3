// Package config loads and saves the gocube-engine YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/gocube_engine/internal/solver"
)

const (
	DefaultSpacing        = 1.0
	DefaultTurnSpeed      = 5.0 // rad/s
	DefaultFrameRate      = 60
	DefaultScrambleLength = 25
	DefaultSolverTimeout  = 30 * time.Second

	dirName = ".gocube_engine"
)

type Config struct {
	Spacing        float32      `yaml:"spacing"`
	TurnSpeed      float32      `yaml:"turn_speed"`
	FrameRate      int          `yaml:"frame_rate"`
	ScrambleLength int          `yaml:"scramble_length"`
	DBPath         string       `yaml:"db_path"`
	LogDir         string       `yaml:"log_dir"`
	Solver         SolverConfig `yaml:"solver"`
}

// SolverConfig selects and parameterises the external solver.
type SolverConfig struct {
	Kind      string        `yaml:"kind"` // exec, http or none
	Path      string        `yaml:"path"`
	URL       string        `yaml:"url"`
	MaxDepth  int           `yaml:"max_depth"`
	Budget    int           `yaml:"budget"`
	Verbosity int           `yaml:"verbosity"`
	TablePath string        `yaml:"table_path"`
	Timeout   time.Duration `yaml:"timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		Spacing:        DefaultSpacing,
		TurnSpeed:      DefaultTurnSpeed,
		FrameRate:      DefaultFrameRate,
		ScrambleLength: DefaultScrambleLength,
		Solver: SolverConfig{
			Kind:      "none",
			MaxDepth:  solver.DefaultMaxDepth,
			Budget:    solver.DefaultBudget,
			TablePath: solver.DefaultTablePath,
			Timeout:   DefaultSolverTimeout,
		},
	}
}

// Dir returns ~/.gocube_engine.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns the defaults when the file
// does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the engine cannot run with.
func (c *Config) Validate() error {
	if c.Spacing <= 0 {
		return fmt.Errorf("spacing must be positive, got %v", c.Spacing)
	}
	if c.TurnSpeed <= 0 {
		return fmt.Errorf("turn_speed must be positive, got %v", c.TurnSpeed)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame_rate must be positive, got %d", c.FrameRate)
	}
	if c.ScrambleLength < 0 {
		return fmt.Errorf("scramble_length must not be negative, got %d", c.ScrambleLength)
	}
	switch c.Solver.Kind {
	case "", "none", "exec", "http":
	default:
		return fmt.Errorf("unknown solver kind %q", c.Solver.Kind)
	}
	return nil
}

// FrameInterval returns the time between two frames.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// SolverOptions returns the options passed to every solver call.
func (c *Config) SolverOptions() solver.Options {
	return solver.Options{
		MaxDepth:  c.Solver.MaxDepth,
		Budget:    c.Solver.Budget,
		Verbosity: c.Solver.Verbosity,
		TablePath: c.Solver.TablePath,
	}
}

// NewSolver builds the configured solver. It returns solver.ErrNoSolver when
// the kind is none.
func (c *Config) NewSolver() (solver.Solver, error) {
	target := c.Solver.Path
	if c.Solver.Kind == "http" {
		target = c.Solver.URL
	}
	return solver.New(c.Solver.Kind, target)
}
