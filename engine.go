package gocube

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_engine/internal/anim"
	"github.com/SeamusWaldron/gocube_engine/internal/cube"
	"github.com/SeamusWaldron/gocube_engine/internal/facelet"
	"github.com/SeamusWaldron/gocube_engine/internal/solver"
	"github.com/SeamusWaldron/gocube_engine/pkg/types"
)

// DefaultScrambleLength is the number of turns in a scramble.
const DefaultScrambleLength = 25

// scrambleTokens are the turns a scramble draws from.
var scrambleTokens = []string{"U", "L", "R", "F", "B", "D"}

// Commit describes a quarter turn applied to the cube.
type Commit = anim.Commit

// Solution is a parsed solver answer.
type Solution = solver.Solution

// Engine owns a cube, its animation scheduler and the solver connection.
//
// An Engine is driven by a single frame loop: Tick advances the animation and
// every other method is expected to be called from the same goroutine.
type Engine struct {
	cfg     *config
	cube    *cube.Cube
	sched   *anim.Scheduler
	tracker *Tracker
	history []Commit
	logger  *zap.Logger
}

// NewEngine creates an engine holding a solved cube.
func NewEngine(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	e := &Engine{
		cfg:     cfg,
		cube:    cube.New(cfg.spacing),
		tracker: NewTracker(),
		logger:  cfg.logger,
	}
	e.sched = anim.New(e.cube,
		anim.WithSpeed(cfg.turnSpeed),
		anim.WithLogger(cfg.logger),
		anim.WithCommitHook(e.onCommit),
	)
	return e
}

func (e *Engine) onCommit(c Commit) {
	if e.cfg.moveHistory {
		e.history = append(e.history, c)
	}

	if s, err := facelet.Encode(e.cube); err != nil {
		e.logger.Error("encode after commit", zap.Error(err))
	} else if err := e.tracker.Observe(s); err != nil {
		e.logger.Error("track phase", zap.Error(err))
	}

	for _, fn := range e.cfg.commitHooks {
		fn(c)
	}
}

// Cube returns the cube for rendering. Callers must not mutate it.
func (e *Engine) Cube() *cube.Cube {
	return e.cube
}

// Tracker returns the phase tracker.
func (e *Engine) Tracker() *Tracker {
	return e.tracker
}

// Tick advances the animation by dt seconds. Call it once per frame.
func (e *Engine) Tick(dt float32) {
	e.sched.Tick(dt)
}

// Push queues a space separated move sequence for animation. Nothing is
// queued if any token is invalid.
func (e *Engine) Push(seq string) error {
	return e.sched.Enqueue(strings.Fields(seq)...)
}

// PushMoves queues moves for animation.
func (e *Engine) PushMoves(moves ...Move) error {
	return e.Push(types.FormatMoves(moves))
}

// Request starts one slice turn immediately, including the middle slices.
// It returns false while another turn is animating.
func (e *Engine) Request(axis cube.Axis, slice int, clockwise bool) bool {
	return e.sched.Request(axis, slice, clockwise)
}

// Discard drops queued turns that have not started.
func (e *Engine) Discard() int {
	return e.sched.Discard()
}

// Idle reports whether nothing is animating or queued.
func (e *Engine) Idle() bool {
	return e.sched.Idle()
}

// Animating reports whether a turn is in flight.
func (e *Engine) Animating() bool {
	return e.sched.Animating()
}

// Pending returns the number of queued tokens.
func (e *Engine) Pending() int {
	return e.sched.Pending()
}

// Progress returns the completed fraction of the turn in flight.
func (e *Engine) Progress() float32 {
	return e.sched.Progress()
}

// Facelets returns the 54 character solver string of the current state.
func (e *Engine) Facelets() (string, error) {
	return facelet.Encode(e.cube)
}

// Net returns the facelet net of the current state as text.
func (e *Engine) Net() (string, error) {
	s, err := e.Facelets()
	if err != nil {
		return "", err
	}
	model, err := facelet.Parse(s)
	if err != nil {
		return "", err
	}
	return model.String(), nil
}

// IsSolved reports whether every face shows a single color.
func (e *Engine) IsSolved() bool {
	return e.cube.IsSolved()
}

// Phase returns the phase of the current state.
func (e *Engine) Phase() Phase {
	return e.tracker.CurrentPhase()
}

// History returns the committed turns since creation or the last reset.
func (e *Engine) History() []Commit {
	result := make([]Commit, len(e.history))
	copy(result, e.history)
	return result
}

// Solve asks the solver for a solution and queues it for animation.
//
// It is refused with ErrBusy while a turn animates or tokens are queued. The
// answer is checked on a facelet model before anything is queued; an answer
// that does not solve the cube is rejected as a whole. A solved cube returns
// an empty solution without calling the solver.
func (e *Engine) Solve(ctx context.Context) (Solution, error) {
	if !e.sched.Idle() {
		return Solution{}, ErrBusy
	}
	if e.cfg.solver == nil {
		return Solution{}, ErrNoSolver
	}

	input, err := e.Facelets()
	if err != nil {
		return Solution{}, err
	}
	if e.cube.IsSolved() {
		return Solution{Input: input}, nil
	}

	e.logger.Info("solve requested", zap.String("facelets", input))

	sol, err := e.cfg.solver.Solve(ctx, input, e.cfg.solverOpts)
	if err != nil {
		e.logger.Warn("solve failed", zap.String("facelets", input), zap.Error(err))
		e.solved(input, sol, err)
		return Solution{}, err
	}

	if err := verifySolution(input, sol.Tokens); err != nil {
		e.logger.Warn("solution rejected", zap.String("solution", sol.String()), zap.Error(err))
		e.solved(input, sol, err)
		return Solution{}, err
	}
	e.solved(input, sol, nil)

	if err := e.sched.Enqueue(sol.Tokens...); err != nil {
		return Solution{}, err
	}

	e.logger.Info("solution queued",
		zap.String("solution", sol.String()),
		zap.Int("moves", sol.Len()),
		zap.Duration("elapsed", sol.Elapsed),
	)
	return sol, nil
}

func (e *Engine) solved(input string, sol Solution, err error) {
	for _, fn := range e.cfg.solveHooks {
		fn(input, sol, err)
	}
}

// verifySolution applies tokens to a facelet model of input and checks the
// result is solved.
func verifySolution(input string, tokens []string) error {
	model, err := facelet.Parse(input)
	if err != nil {
		return err
	}
	moves, err := types.ParseMoves(strings.Join(tokens, " "))
	if err != nil {
		return err
	}
	model.ApplyMoves(moves)
	if !model.IsSolved() {
		return fmt.Errorf("%w: answer leaves the cube unsolved", ErrSolveFailed)
	}
	return nil
}

// Scramble applies n random face turns. Animated scrambles are queued;
// instant ones are committed at once. Both are refused with ErrBusy unless
// the engine is idle. rng may be nil.
func (e *Engine) Scramble(n int, rng *rand.Rand, instant bool) ([]string, error) {
	if !e.sched.Idle() {
		return nil, ErrBusy
	}
	if n <= 0 {
		n = DefaultScrambleLength
	}

	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = scrambleTokens[intn(len(scrambleTokens))]
	}

	e.logger.Info("scramble", zap.Strings("tokens", tokens), zap.Bool("instant", instant))
	if instant {
		return tokens, e.sched.ApplyInstant(tokens...)
	}
	return tokens, e.sched.Enqueue(tokens...)
}

// Execute runs a move sequence, animated or instantly. Instant execution
// needs an idle engine.
func (e *Engine) Execute(seq string, instant bool) error {
	if !instant {
		return e.Push(seq)
	}
	return e.sched.ApplyInstant(strings.Fields(seq)...)
}

// Reset discards queued turns and restores the solved cube. It fails with
// ErrAnimating while a turn is in flight.
func (e *Engine) Reset() error {
	if e.sched.Animating() {
		return ErrAnimating
	}
	e.sched.Discard()
	*e.cube = *cube.New(e.cfg.spacing)
	e.tracker.Reset()
	e.history = nil
	e.logger.Info("cube reset")
	return nil
}

// TokenForColor returns the token that turns the face whose center shows
// color. The mapping is read from the current centers, so it stays correct
// after middle slice turns.
func (e *Engine) TokenForColor(color cube.Color, clockwise bool) (string, error) {
	letter, ok := e.cube.FaceletColorMap()[color]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnmappedColor, color)
	}
	m := Move{Face: Face(letter), Turn: CW}
	if !clockwise {
		m.Turn = CCW
	}
	return m.Notation(), nil
}
