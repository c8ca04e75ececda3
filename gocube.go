// Package gocube provides an animated 3x3x3 cube engine with a bridge to
// external two-phase solvers and GoCube smart cubes.
//
// # Features
//
//   - Cubie model with per-piece poses for renderers
//   - Frame-driven turn animation that never corrupts the logical state
//   - Move queue fed by notation, solvers or a physical cube
//   - Facelet string codec for Kociemba-style solvers
//   - Automatic solving phase detection
//
// # Quick Start
//
// Queue moves and drive the engine from a frame loop:
//
//	engine := gocube.NewEngine()
//	if err := engine.Push("R U R' U'"); err != nil {
//	    log.Fatal(err)
//	}
//
//	for !engine.Idle() {
//	    engine.Tick(1.0 / 60)
//	    render(engine.Cube())
//	}
//
// # Solving
//
// Configure a solver and let the engine queue its answer:
//
//	engine := gocube.NewEngine(gocube.WithSolver(solver.Exec{Path: "kociemba"}))
//	engine.Scramble(25, nil, true)
//
//	sol, err := engine.Solve(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Solution:", sol)
//
// Solve is refused while a turn animates or moves are queued, and an answer
// is queued only if it actually solves the cube.
//
// # Predefined Moves
//
// The package provides predefined moves for convenience:
//
//	gocube.R      // Right clockwise
//	gocube.RPrime // Right counter-clockwise
//	gocube.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
//
// # Solving Phases
//
// The engine detects layer-by-layer phases, starting from the U layer:
//
//   - PhaseScrambled: No phase complete
//   - PhaseCross: U cross complete
//   - PhaseFirstLayer: First layer complete
//   - PhaseSecondLayer: Middle layer complete
//   - PhaseLastCross: D edges oriented
//   - PhaseCornersPositioned: D corners positioned
//   - PhaseCornersOriented: D corners oriented
//   - PhaseSolved: Cube is solved
package gocube
