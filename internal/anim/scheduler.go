package anim

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_engine/internal/cube"
	"github.com/SeamusWaldron/gocube_engine/internal/facelet"
	"github.com/SeamusWaldron/gocube_engine/pkg/types"
)

// ErrBusy is returned when an operation needs an idle scheduler.
var ErrBusy = errors.New("gocube: turn in progress or moves queued")

// Commit describes a quarter turn that was applied to the grid.
type Commit struct {
	Request cube.Request
	Token   string // Empty for middle slice turns
	Instant bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithSpeed sets the turn speed in radians per second.
func WithSpeed(radPerSec float32) Option {
	return func(s *Scheduler) {
		if radPerSec > 0 {
			s.speed = radPerSec
		}
	}
}

// WithLogger sets the logger for turn events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCommitHook registers a function called after every committed quarter
// turn, once the grid and poses are consistent again.
func WithCommitHook(fn func(Commit)) Option {
	return func(s *Scheduler) {
		if fn != nil {
			s.hooks = append(s.hooks, fn)
		}
	}
}

// Scheduler serializes turns on a cube. It is driven by Tick from a single
// frame loop and is not safe for concurrent use.
type Scheduler struct {
	cube   *cube.Cube
	turn   Turn
	token  string
	queue  []string
	speed  float32
	logger *zap.Logger
	hooks  []func(Commit)
}

// New creates a scheduler for c.
func New(c *cube.Cube, opts ...Option) *Scheduler {
	s := &Scheduler{
		cube:   c,
		speed:  DefaultSpeed,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cube returns the cube the scheduler drives.
func (s *Scheduler) Cube() *cube.Cube {
	return s.cube
}

// Request starts animating one quarter turn of a slice. It returns false and
// does nothing while another turn is in flight.
func (s *Scheduler) Request(axis cube.Axis, slice int, clockwise bool) bool {
	req := cube.Request{Axis: axis, Slice: slice, Clockwise: clockwise}
	token, _ := facelet.TokenFor(req)
	return s.start(req, token)
}

func (s *Scheduler) start(req cube.Request, token string) bool {
	if s.turn.Active() {
		return false
	}

	var pieces [cube.Size * cube.Size]*cube.Cubie
	for i, idx := range cube.SliceIndices(req.Axis, req.Slice) {
		pieces[i] = s.cube.Cubie(idx)
	}
	s.turn.Start(req, pieces, s.speed)
	s.token = token

	s.logger.Debug("turn started",
		zap.Stringer("request", req),
		zap.String("token", token),
		zap.Int("queued", len(s.queue)),
	)
	return true
}

// Tick advances the animation by dt seconds. A turn that reaches its target
// is committed to the grid, then at most one queued token is started.
func (s *Scheduler) Tick(dt float32) {
	if s.turn.Advance(dt) {
		s.commit(s.turn.Request(), s.token, false)
		s.token = ""
	}
	s.drain()
}

func (s *Scheduler) commit(req cube.Request, token string, instant bool) {
	s.cube.Apply(req)

	s.logger.Debug("turn committed",
		zap.Stringer("request", req),
		zap.String("token", token),
		zap.Bool("instant", instant),
	)

	c := Commit{Request: req, Token: token, Instant: instant}
	for _, fn := range s.hooks {
		fn(c)
	}
}

// drain starts the next queued token when no turn is active. A half turn is
// split here: its single-quarter copy goes back to the front of the queue and
// the first quarter starts now.
func (s *Scheduler) drain() {
	if s.turn.Active() || len(s.queue) == 0 {
		return
	}

	token := s.queue[0]
	s.queue = s.queue[1:]

	m, err := types.ParseMove(token)
	if err != nil {
		// Tokens are validated on enqueue.
		panic(fmt.Sprintf("anim: queued invalid token %q", token))
	}
	if m.Quarters() == 2 {
		single := m.Single().Notation()
		s.queue = append([]string{single}, s.queue...)
		token = single
	}
	s.start(facelet.RequestFor(m), token)
}

// Enqueue appends move tokens to the queue. Every token is validated first;
// if any is malformed nothing is queued.
func (s *Scheduler) Enqueue(tokens ...string) error {
	if err := validate(tokens); err != nil {
		return err
	}
	s.queue = append(s.queue, tokens...)
	if len(tokens) > 0 {
		s.logger.Debug("tokens enqueued", zap.Strings("tokens", tokens), zap.Int("queued", len(s.queue)))
	}
	return nil
}

func validate(tokens []string) error {
	for i, tok := range tokens {
		if _, _, err := facelet.DecodeToken(tok); err != nil {
			return fmt.Errorf("token %d: %w", i+1, err)
		}
	}
	return nil
}

// Discard drops every queued token that has not started and returns how many
// were dropped. A turn in flight always completes.
func (s *Scheduler) Discard() int {
	n := len(s.queue)
	s.queue = nil
	if n > 0 {
		s.logger.Debug("queue discarded", zap.Int("dropped", n))
	}
	return n
}

// ApplyInstant commits tokens to the grid without animation. It fails with
// ErrBusy while a turn is in flight or tokens are queued.
func (s *Scheduler) ApplyInstant(tokens ...string) error {
	if !s.Idle() {
		return ErrBusy
	}
	if err := validate(tokens); err != nil {
		return err
	}
	for _, tok := range tokens {
		m, _ := types.ParseMove(tok)
		single := m.Single().Notation()
		for i := 0; i < m.Quarters(); i++ {
			s.commit(facelet.RequestFor(m), single, true)
		}
	}
	return nil
}

// Idle reports whether no turn is in flight and the queue is empty.
func (s *Scheduler) Idle() bool {
	return !s.turn.Active() && len(s.queue) == 0
}

// Animating reports whether a turn is in flight.
func (s *Scheduler) Animating() bool {
	return s.turn.Active()
}

// Pending returns the number of queued tokens.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Queue returns a copy of the queued tokens.
func (s *Scheduler) Queue() []string {
	return append([]string(nil), s.queue...)
}

// Current returns the turn in flight, if any.
func (s *Scheduler) Current() (cube.Request, bool) {
	if !s.turn.Active() {
		return cube.Request{}, false
	}
	return s.turn.Request(), true
}

// Progress returns the completed fraction of the turn in flight.
func (s *Scheduler) Progress() float32 {
	return s.turn.Progress()
}
