// Package solver talks to an external two-phase solver. The solver is a black
// box: a 54 character facelet string goes in, a line of move tokens comes out.
package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SeamusWaldron/gocube_engine/internal/facelet"
)

// ErrNoSolver is returned when no solver has been configured.
var ErrNoSolver = errors.New("gocube: no solver configured")

// Defaults passed to the solver on every call.
const (
	DefaultMaxDepth  = 24
	DefaultBudget    = 20000
	DefaultTablePath = "kociemba/cprunetables"
)

// Options are handed to the solver unchanged.
type Options struct {
	MaxDepth  int    `yaml:"max_depth"`
	Budget    int    `yaml:"budget"` // Probe budget, solver specific unit
	Verbosity int    `yaml:"verbosity"`
	TablePath string `yaml:"table_path"`
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		MaxDepth:  DefaultMaxDepth,
		Budget:    DefaultBudget,
		TablePath: DefaultTablePath,
	}
}

// Solution is a parsed solver answer.
type Solution struct {
	Input   string        `json:"input"`
	Tokens  []string      `json:"tokens"`
	Raw     string        `json:"raw"`
	Elapsed time.Duration `json:"elapsed"`
}

// String returns the solution as space separated tokens.
func (s Solution) String() string {
	return strings.Join(s.Tokens, " ")
}

// Len returns the number of tokens.
func (s Solution) Len() int {
	return len(s.Tokens)
}

// Solver computes a move sequence that solves the given cube.
// Every call is a single attempt; callers bound it with ctx.
type Solver interface {
	Solve(ctx context.Context, facelets string, opts Options) (Solution, error)
}

// New builds a solver by kind: "exec" runs target as a binary, "http" sends
// requests to target as a base URL.
func New(kind, target string) (Solver, error) {
	switch kind {
	case "exec":
		return Exec{Path: target}, nil
	case "http":
		return HTTP{URL: target}, nil
	case "", "none":
		return nil, ErrNoSolver
	default:
		return nil, fmt.Errorf("unknown solver kind %q", kind)
	}
}

// Func adapts a function returning a raw solver answer to the Solver
// interface.
type Func func(ctx context.Context, facelets string, opts Options) (string, error)

// Solve implements Solver.
func (f Func) Solve(ctx context.Context, facelets string, opts Options) (Solution, error) {
	return run(ctx, facelets, func(ctx context.Context) (string, error) {
		return f(ctx, facelets, opts)
	})
}

// run validates the input, calls the solver once and parses its answer.
func run(ctx context.Context, facelets string, call func(context.Context) (string, error)) (Solution, error) {
	if _, err := facelet.Parse(facelets); err != nil {
		return Solution{}, err
	}

	start := time.Now()
	raw, err := call(ctx)
	if err != nil {
		return Solution{}, fmt.Errorf("solver call: %w", err)
	}

	tokens, err := facelet.ParseSolution(raw)
	if err != nil {
		return Solution{}, err
	}

	return Solution{
		Input:   facelets,
		Tokens:  tokens,
		Raw:     strings.TrimSpace(raw),
		Elapsed: time.Since(start),
	}, nil
}
