// Package anim drives quarter turns of the cube over time.
//
// A Scheduler owns a move queue and at most one animated Turn. Poses of the
// turning pieces are rotated every frame, but the logical grid only changes
// when a turn reaches its target angle.
package anim

import (
	"math"

	"github.com/SeamusWaldron/gocube_engine/internal/cube"
)

// DefaultSpeed is the turn speed in radians per second.
const DefaultSpeed float32 = 5.0

const quarterTurn = float32(math.Pi / 2)

// Turn is the animation state of one quarter turn. The zero value is idle.
type Turn struct {
	active bool
	req    cube.Request
	angle  float32
	target float32
	speed  float32
	pieces [cube.Size * cube.Size]*cube.Cubie
}

// Start begins animating req on the given pieces. It is a no-op and returns
// false while another turn is active.
//
// The target is -π/2 for a geometric clockwise turn (seen from the positive
// end of the axis) and +π/2 otherwise, matching the right-handed rotation the
// pieces will end up in.
func (t *Turn) Start(req cube.Request, pieces [cube.Size * cube.Size]*cube.Cubie, speed float32) bool {
	if t.active {
		return false
	}
	if speed <= 0 {
		speed = DefaultSpeed
	}
	target := quarterTurn
	if cube.EffectiveClockwise(req.Slice, req.Clockwise) {
		target = -quarterTurn
	}
	*t = Turn{
		active: true,
		req:    req,
		target: target,
		speed:  speed,
		pieces: pieces,
	}
	return true
}

// Active reports whether a turn is in flight.
func (t *Turn) Active() bool {
	return t.active
}

// Request returns the turn being animated.
func (t *Turn) Request() cube.Request {
	return t.req
}

// Angle returns the rotation applied so far, in radians.
func (t *Turn) Angle() float32 {
	return t.angle
}

// Target returns the final angle of the turn.
func (t *Turn) Target() float32 {
	return t.target
}

// Progress returns the completed fraction of the turn, 0 when idle.
func (t *Turn) Progress() float32 {
	if !t.active || t.target == 0 {
		return 0
	}
	return t.angle / t.target
}

// Advance rotates the captured poses by speed*dt towards the target and
// reports whether the turn finished in this step. The last step is clamped
// so the accumulated angle lands exactly on the target. A non-positive dt
// does nothing.
func (t *Turn) Advance(dt float32) bool {
	if !t.active || dt <= 0 {
		return false
	}

	step := t.speed * dt
	if t.target < 0 {
		step = -step
	}

	finished := false
	if (t.target > 0 && t.angle+step >= t.target) || (t.target < 0 && t.angle+step <= t.target) {
		step = t.target - t.angle
		t.angle = t.target
		finished = true
	} else {
		t.angle += step
	}

	rot := cube.TurnMatrix(t.req.Axis, step)
	for _, p := range t.pieces {
		if p != nil {
			p.Pose = rot.Mul4(p.Pose)
		}
	}

	if finished {
		t.active = false
		t.pieces = [cube.Size * cube.Size]*cube.Cubie{}
	}
	return finished
}
