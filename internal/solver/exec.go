package solver

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Exec runs a solver binary once per request. The binary receives
//
//	<facelets> <max depth> <budget> <verbosity> <table path>
//
// as arguments and prints the solution on stdout.
type Exec struct {
	Path string
	Args []string // Extra arguments placed before the facelets
}

// Solve implements Solver.
func (e Exec) Solve(ctx context.Context, facelets string, opts Options) (Solution, error) {
	if e.Path == "" {
		return Solution{}, ErrNoSolver
	}
	return run(ctx, facelets, func(ctx context.Context) (string, error) {
		args := append(append([]string(nil), e.Args...),
			facelets,
			strconv.Itoa(opts.MaxDepth),
			strconv.Itoa(opts.Budget),
			strconv.Itoa(opts.Verbosity),
			opts.TablePath,
		)

		var stdout, stderr bytes.Buffer
		cmd := exec.CommandContext(ctx, e.Path, args...)
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return "", fmt.Errorf("%s: %w: %s", e.Path, err, msg)
			}
			return "", fmt.Errorf("%s: %w", e.Path, err)
		}
		return stdout.String(), nil
	})
}
