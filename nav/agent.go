// Package nav provides the navigation collaborator used by enemies: a
// walkable grid with A* paths and an agent that follows them.
package nav

//go:generate mockgen -destination=mock_nav/mock_nav.go -package=mock_nav github.com/milk9111/fireteam/nav Agent

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type PathStatus int

const (
	PathComplete PathStatus = iota
	PathPartial
	PathInvalid
)

func (s PathStatus) String() string {
	switch s {
	case PathComplete:
		return "complete"
	case PathPartial:
		return "partial"
	default:
		return "invalid"
	}
}

// Agent is what behaviour code may ask of, and tell to, a navigating body.
type Agent interface {
	Position() mgl64.Vec3
	SetDestination(point mgl64.Vec3) bool
	ResetPath()
	RemainingDistance() float64
	HasPath() bool
	PathPending() bool
	PathStatus() PathStatus
	SteeringTarget() mgl64.Vec3
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	IsStopped() bool
	SetStopped(stopped bool)
	StoppingDistance() float64
	SetSpeed(speed float64)
	SamplePosition(point mgl64.Vec3, maxDistance float64) (mgl64.Vec3, bool)
}

var _ Agent = (*GridAgent)(nil)

const arriveEpsilon = 1e-6

// MoveFunc applies a ground-plane displacement and returns what was
// actually applied, letting a physics body veto motion into walls.
type MoveFunc func(delta mgl64.Vec3) mgl64.Vec3

// GridAgent follows paths on a Grid. Paths requested with SetDestination
// are computed on the next Step, so PathPending is true for one tick.
// Requesting the destination it is already following is a no-op.
type GridAgent struct {
	grid     *Grid
	pos      mgl64.Vec3
	speed    float64
	stopping float64
	stopped  bool
	velocity mgl64.Vec3
	move     MoveFunc

	dest    mgl64.Vec3
	pending bool
	hasPath bool
	status  PathStatus
	corners []mgl64.Vec3
}

func NewGridAgent(grid *Grid, pos mgl64.Vec3, stoppingDistance float64) *GridAgent {
	return &GridAgent{
		grid:     grid,
		pos:      pos,
		stopping: math.Max(stoppingDistance, 0),
		status:   PathInvalid,
	}
}

// SetMover routes motion through fn instead of moving freely.
func (a *GridAgent) SetMover(fn MoveFunc) {
	a.move = fn
}

// Warp teleports the agent and drops its path.
func (a *GridAgent) Warp(pos mgl64.Vec3) {
	a.pos = pos
	a.ResetPath()
}

func (a *GridAgent) Position() mgl64.Vec3 { return a.pos }

func (a *GridAgent) Destination() mgl64.Vec3 { return a.dest }

func (a *GridAgent) SetDestination(point mgl64.Vec3) bool {
	if a.grid == nil {
		return false
	}
	if a.hasPath && !a.pending && flatDist(a.dest, point) < 1e-3 {
		return true
	}
	a.dest = point
	a.pending = true
	return true
}

func (a *GridAgent) ResetPath() {
	a.pending = false
	a.hasPath = false
	a.status = PathInvalid
	a.corners = nil
}

// RemainingDistance is the length of what is left of the path. It is
// infinite while a path is pending and zero without a path.
func (a *GridAgent) RemainingDistance() float64 {
	if a.pending {
		return math.Inf(1)
	}
	total := 0.0
	prev := a.pos
	for _, c := range a.corners {
		total += flatDist(prev, c)
		prev = c
	}
	return total
}

func (a *GridAgent) HasPath() bool { return a.hasPath }

func (a *GridAgent) PathPending() bool { return a.pending }

func (a *GridAgent) PathStatus() PathStatus { return a.status }

// SteeringTarget is the next corner, or the agent's own position when
// there is nothing left to follow.
func (a *GridAgent) SteeringTarget() mgl64.Vec3 {
	if len(a.corners) == 0 {
		return a.pos
	}
	return a.corners[0]
}

func (a *GridAgent) Velocity() mgl64.Vec3 { return a.velocity }

func (a *GridAgent) SetVelocity(v mgl64.Vec3) { a.velocity = v }

func (a *GridAgent) IsStopped() bool { return a.stopped }

func (a *GridAgent) SetStopped(stopped bool) { a.stopped = stopped }

func (a *GridAgent) StoppingDistance() float64 { return a.stopping }

func (a *GridAgent) Speed() float64 { return a.speed }

func (a *GridAgent) SetSpeed(speed float64) { a.speed = math.Max(speed, 0) }

func (a *GridAgent) SamplePosition(point mgl64.Vec3, maxDistance float64) (mgl64.Vec3, bool) {
	if a.grid == nil {
		return mgl64.Vec3{}, false
	}
	return a.grid.SamplePosition(point, maxDistance)
}

// Step resolves a pending path and advances along the current one.
func (a *GridAgent) Step(dt float64) {
	if a.pending {
		a.pending = false
		a.corners, a.status = a.grid.FindPath(a.pos, a.dest)
		a.hasPath = a.status != PathInvalid && len(a.corners) > 0
	}

	if a.stopped || !a.hasPath || dt <= 0 {
		a.velocity = mgl64.Vec3{}
		return
	}
	remaining := a.RemainingDistance()
	if remaining <= a.stopping+arriveEpsilon {
		a.velocity = mgl64.Vec3{}
		return
	}

	budget := math.Min(a.speed*dt, remaining-a.stopping)
	start := a.pos
	for budget > 1e-9 && len(a.corners) > 0 {
		next := a.corners[0]
		to := flat(next.Sub(a.pos))
		d := to.Len()
		if d <= budget {
			a.advance(to)
			if a.move == nil {
				a.pos = mgl64.Vec3{next[0], a.pos[1], next[2]}
			}
			budget -= d
			if len(a.corners) > 1 {
				a.corners = a.corners[1:]
			} else {
				break
			}
			continue
		}
		a.advance(to.Mul(budget / d))
		budget = 0
	}
	a.velocity = flat(a.pos.Sub(start)).Mul(1 / dt)
}

// advance moves by delta, through the mover when one is set.
func (a *GridAgent) advance(delta mgl64.Vec3) {
	if a.move != nil {
		delta = a.move(delta)
	}
	a.pos = a.pos.Add(delta)
}

func flat(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

func flatDist(a, b mgl64.Vec3) float64 {
	return flat(b.Sub(a)).Len()
}
