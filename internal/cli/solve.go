package cli

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_engine"
	"github.com/SeamusWaldron/gocube_engine/internal/notation"
	"github.com/SeamusWaldron/gocube_engine/internal/storage"
)

var (
	solveScramble string
	solveSeed     int64
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Scramble a cube and solve it with the configured solver",
	Long: `Scramble a cube (randomly, or with --scramble), ask the configured
solver for a solution and play it back headless at the configured frame rate.

The solver is configured in the config file:
  solver:
    kind: exec          # or http
    path: /usr/local/bin/kociemba
    timeout: 30s`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Scramble to solve (default: random)")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Random seed for the scramble (default: time based)")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	run, err := newEngineRun(storage.SourceSolve, "")
	if err != nil {
		return err
	}
	defer run.Close()
	engine := run.engine

	scramble := solveScramble
	if scramble != "" {
		if err := engine.Execute(scramble, true); err != nil {
			return err
		}
	} else {
		seed := solveSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		tokens, err := engine.Scramble(cfg.ScrambleLength, rand.New(rand.NewSource(seed)), true)
		if err != nil {
			return err
		}
		scramble = joinTokens(tokens)
	}
	if err := run.session.RecordScramble(scramble); err != nil {
		return err
	}

	fmt.Printf("Scramble: %s\n", moveStyle.Render(scramble))
	if short, err := notation.SimplifyString(scramble); err == nil && short != scramble {
		fmt.Printf("Simplified: %s\n", short)
	}
	fmt.Println()
	fmt.Print(renderNet(engine.Cube()))
	fmt.Println()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Solver.Timeout)
	defer cancel()

	sol, err := engine.Solve(ctx)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	fmt.Printf("Solution (%d moves, %s): %s\n\n", sol.Len(), sol.Elapsed.Round(time.Millisecond), moveStyle.Render(sol.String()))

	frames := playBack(engine, cfg.FrameInterval())
	fmt.Print(renderNet(engine.Cube()))
	fmt.Println()

	if !engine.IsSolved() {
		return fmt.Errorf("cube not solved after %d frames", frames)
	}
	fmt.Println(phaseStyle.Render("SOLVED"))
	fmt.Println(statusStyle.Render(fmt.Sprintf("%d frames, session %s", frames, run.session.ID()[:8])))
	return nil
}

// playBack ticks the engine with a fixed frame step until it is idle and
// returns the number of frames.
func playBack(engine *gocube.Engine, step time.Duration) int {
	dt := float32(step.Seconds())
	frames := 0
	for !engine.Idle() {
		engine.Tick(dt)
		frames++
	}
	return frames
}
