package enemy

import "github.com/go-gl/mathgl/mgl64"

// State is one behaviour of an Agent. Exactly one is active at a time.
type State interface {
	Name() string
	Enter(a *Agent)
	Exit(a *Agent)
	Update(a *Agent, dt float64)
}

// Enemy state singletons (avoid allocations on transitions).
var (
	stateIdle   State = &idleState{}
	stateRoam   State = &roamState{}
	statePatrol State = &patrolState{}
	stateChase  State = &chaseState{}
	stateAttack State = &attackState{}
)

type idleState struct{}

type roamState struct{}

type patrolState struct{}

type chaseState struct{}

type attackState struct{}

func (idleState) Name() string { return "idle" }
func (idleState) Enter(a *Agent) {}
func (idleState) Exit(a *Agent)  {}
func (idleState) Update(a *Agent, dt float64) {
	a.deps.Nav.SetStopped(false)
	a.deps.Nav.ResetPath()
}

func (roamState) Name() string { return "roam" }
func (roamState) Enter(a *Agent) {}
func (roamState) Exit(a *Agent)  {}
func (roamState) Update(a *Agent, dt float64) {
	n := a.deps.Nav
	n.SetStopped(false)

	arrived := a.arrivedAtRoamPoint()
	if (arrived || a.hasNoValidPath()) && a.now >= a.nextRoamPick {
		a.pickRoamPoint(false)
	} else if arrived {
		n.SetVelocity(mgl64.Vec3{})
	}
	a.steer(dt)
}

func (patrolState) Name() string { return "patrol" }
func (patrolState) Enter(a *Agent) {}
func (patrolState) Exit(a *Agent)  {}
func (patrolState) Update(a *Agent, dt float64) {
	n := a.deps.Nav
	n.SetStopped(false)

	points := a.cfg.PatrolPoints
	if len(points) == 0 {
		n.ResetPath()
		return
	}
	if !n.PathPending() && n.RemainingDistance() <= a.cfg.PatrolTolerance {
		a.patrolIndex = (a.patrolIndex + 1) % len(points)
		n.SetDestination(points[a.patrolIndex])
	}
	a.steer(dt)
}

func (chaseState) Name() string { return "chase" }
func (chaseState) Enter(a *Agent) {}
func (chaseState) Exit(a *Agent)  {}
func (chaseState) Update(a *Agent, dt float64) {
	a.deps.Nav.SetStopped(false)
	a.deps.Nav.SetDestination(a.target.Position())
	a.steer(dt)
}

func (attackState) Name() string { return "attack" }
func (attackState) Enter(a *Agent) {}
func (attackState) Exit(a *Agent)  { a.deps.Nav.SetStopped(false) }
func (attackState) Update(a *Agent, dt float64) {
	a.attack(dt)
}
