package gocube

import (
	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_engine/internal/anim"
	"github.com/SeamusWaldron/gocube_engine/internal/cube"
	"github.com/SeamusWaldron/gocube_engine/internal/solver"
)

// Option configures an Engine.
type Option func(*config)

type config struct {
	spacing     float32
	turnSpeed   float32
	solver      solver.Solver
	solverOpts  solver.Options
	logger      *zap.Logger
	moveHistory bool
	commitHooks []func(Commit)
	solveHooks  []func(input string, sol Solution, err error)
}

func defaultConfig() *config {
	return &config{
		spacing:     cube.DefaultSpacing,
		turnSpeed:   anim.DefaultSpeed,
		solverOpts:  solver.DefaultOptions(),
		logger:      zap.NewNop(),
		moveHistory: true,
	}
}

// WithSpacing sets the distance between neighbouring cubie centers.
func WithSpacing(spacing float32) Option {
	return func(c *config) {
		if spacing > 0 {
			c.spacing = spacing
		}
	}
}

// WithTurnSpeed sets the animation speed in radians per second.
func WithTurnSpeed(radPerSec float32) Option {
	return func(c *config) {
		if radPerSec > 0 {
			c.turnSpeed = radPerSec
		}
	}
}

// WithSolver sets the external solver used by Solve.
func WithSolver(s solver.Solver) Option {
	return func(c *config) {
		c.solver = s
	}
}

// WithSolverOptions overrides the options passed to the solver.
func WithSolverOptions(opts solver.Options) Option {
	return func(c *config) {
		c.solverOpts = opts
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), committed turns are accessible via History().
// Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithCommitHook registers a callback fired after every committed quarter
// turn.
func WithCommitHook(fn func(Commit)) Option {
	return func(c *config) {
		if fn != nil {
			c.commitHooks = append(c.commitHooks, fn)
		}
	}
}

// WithSolveHook registers a callback fired after every solver call with the
// facelet input and the outcome. Rejected answers are reported with their
// error.
func WithSolveHook(fn func(input string, sol Solution, err error)) Option {
	return func(c *config) {
		if fn != nil {
			c.solveHooks = append(c.solveHooks, fn)
		}
	}
}
