// Package enemy drives hostile agents: roaming or patrolling when the
// target is unseen, chasing it into range, and turning to shoot.
package enemy

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/milk9111/fireteam/anim"
	"github.com/milk9111/fireteam/common"
	"github.com/milk9111/fireteam/event"
	"github.com/milk9111/fireteam/nav"
	"github.com/milk9111/fireteam/physics"
)

const (
	roamRetryDelay  = 0.5
	arriveSlack     = 0.05
	minFaceSqr      = 0.01
	minFireRate     = 0.01
	minWalkSpeedSqr = 0.01
)

// Target is what an agent hunts.
type Target interface {
	Position() mgl64.Vec3
	BodyID() physics.ID
}

// Shot describes one enemy shot.
type Shot struct {
	Enemy    string
	Origin   mgl64.Vec3
	Target   mgl64.Vec3
	TargetID physics.ID
	Distance float64
	Time     float64
}

// ShotHook is called for every shot fired. Damage lives behind it.
type ShotHook func(Shot)

// StateChange is the payload of event.EnemyState.
type StateChange struct {
	Enemy string
	From  string
	To    string
}

// Deps are an agent's collaborators. Only Nav is required.
type Deps struct {
	Nav     nav.Agent
	Physics physics.Querier
	Anim    anim.Sink
	Events  event.Pusher
	Hook    ShotHook
	Rand    *rand.Rand
	Log     zerolog.Logger
	// Self is the agent's own body, ignored by its sight rays.
	Self physics.ID
}

type Agent struct {
	cfg  Config
	deps Deps
	rng  *rand.Rand

	target     Target
	difficulty Difficulty
	stats      Stats
	state      State
	rotation   mgl64.Quat

	now          float64
	roamCenter   mgl64.Vec3
	nextRoamPick float64
	nextShot     float64
	patrolIndex  int
}

func NewAgent(cfg Config, deps Deps) *Agent {
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	a := &Agent{
		cfg:      cfg,
		deps:     deps,
		rng:      rng,
		rotation: mgl64.QuatIdent(),
	}
	a.SetDifficulty(cfg.Difficulty)
	return a
}

func (a *Agent) Name() string { return a.cfg.Name }

func (a *Agent) Config() Config { return a.cfg }

func (a *Agent) Nav() nav.Agent { return a.deps.Nav }

func (a *Agent) Stats() Stats { return a.stats }

func (a *Agent) Difficulty() Difficulty { return a.difficulty }

// SetDifficulty rescales the agent from its base values.
func (a *Agent) SetDifficulty(d Difficulty) {
	a.difficulty = d
	a.stats = ApplyDifficulty(a.cfg.Base, d)
	a.deps.Nav.SetSpeed(a.stats.Speed)
}

func (a *Agent) SetTarget(t Target) { a.target = t }

func (a *Agent) Target() Target { return a.target }

func (a *Agent) SetHook(h ShotHook) { a.deps.Hook = h }

func (a *Agent) Rotation() mgl64.Quat { return a.rotation }

func (a *Agent) SetRotation(q mgl64.Quat) { a.rotation = q.Normalize() }

// Heading is the yaw in degrees.
func (a *Agent) Heading() float64 { return common.YawOf(a.rotation) }

// State names the active behaviour, or "" before the first Update.
func (a *Agent) State() string {
	if a.state == nil {
		return ""
	}
	return a.state.Name()
}

func (a *Agent) RoamCenter() mgl64.Vec3 { return a.roamCenter }

func (a *Agent) NextRoamPick() float64 { return a.nextRoamPick }

func (a *Agent) NextShotTime() float64 { return a.nextShot }

func (a *Agent) PatrolIndex() int { return a.patrolIndex }

// Start captures the roam centre and sends the agent on its first leg.
func (a *Agent) Start(now float64) {
	a.now = now
	a.roamCenter = a.deps.Nav.Position()
	switch {
	case len(a.cfg.PatrolPoints) > 0:
		a.deps.Nav.SetDestination(a.cfg.PatrolPoints[a.patrolIndex])
	case a.cfg.Roam:
		a.pickRoamPoint(true)
	}
}

// Update evaluates transitions, then runs the active state for one tick.
func (a *Agent) Update(now, dt float64) {
	a.now = now
	a.changeState(a.decide())
	a.state.Update(a, dt)
	a.updateAnimator()
}

func (a *Agent) decide() State {
	if a.target == nil {
		return a.unseenState()
	}
	dist := a.distanceToTarget()
	if dist > a.stats.DetectionRange || !a.canSeeTarget() {
		return a.unseenState()
	}
	if dist > a.stats.ShootingRange {
		return stateChase
	}
	return stateAttack
}

func (a *Agent) unseenState() State {
	switch {
	case len(a.cfg.PatrolPoints) > 0:
		return statePatrol
	case a.cfg.Roam:
		return stateRoam
	default:
		return stateIdle
	}
}

func (a *Agent) changeState(next State) {
	if a.state == next {
		return
	}
	from := ""
	if a.state != nil {
		from = a.state.Name()
		a.state.Exit(a)
	}
	a.state = next
	a.state.Enter(a)
	a.deps.Log.Debug().Str("enemy", a.cfg.Name).Str("from", from).Str("to", next.Name()).Msg("state change")
	event.Emit(a.deps.Events, event.EnemyState, StateChange{Enemy: a.cfg.Name, From: from, To: next.Name()})
}

func (a *Agent) distanceToTarget() float64 {
	return a.deps.Nav.Position().Sub(a.target.Position()).Len()
}

func (a *Agent) eye() mgl64.Vec3 {
	return a.deps.Nav.Position().Add(common.Up.Mul(a.cfg.EyeHeight))
}

func (a *Agent) ignore() []physics.ID {
	if a.deps.Self == 0 {
		return nil
	}
	return []physics.ID{a.deps.Self}
}

func (a *Agent) canSeeTarget() bool {
	return LineOfSight(a.deps.Physics, a.eye(), a.target.Position(), a.cfg.TargetAimHeight, a.target.BodyID(), a.ignore()...)
}

// canEngage is the same visibility test decide uses, limited to shooting
// range.
func (a *Agent) canEngage() bool {
	if a.target == nil {
		return false
	}
	dist := a.distanceToTarget()
	return dist <= a.stats.ShootingRange && dist <= a.stats.DetectionRange && a.canSeeTarget()
}

func (a *Agent) arrivedAtRoamPoint() bool {
	n := a.deps.Nav
	return !n.PathPending() && n.HasPath() &&
		n.RemainingDistance() <= math.Max(a.cfg.ArriveTolerance, n.StoppingDistance()+arriveSlack)
}

func (a *Agent) hasNoValidPath() bool {
	n := a.deps.Nav
	return !n.PathPending() && (!n.HasPath() || n.PathStatus() != nav.PathComplete)
}

// pickRoamPoint tries PickAttempts random points around the roam centre.
// Exhaustion is not an error; the next try is scheduled shortly.
func (a *Agent) pickRoamPoint(force bool) {
	if !force && a.now < a.nextRoamPick {
		return
	}
	center := a.roamCenter
	if a.cfg.RoamAroundCurrent {
		center = a.deps.Nav.Position()
	}
	for i := 0; i < a.cfg.PickAttempts; i++ {
		offset := a.insideUnitSphere().Mul(a.cfg.RoamRadius)
		offset[1] = 0
		p, ok := a.deps.Nav.SamplePosition(center.Add(offset), a.cfg.SampleDistance)
		if !ok {
			continue
		}
		a.deps.Nav.SetDestination(p)
		wait := a.cfg.WaitMin + a.rng.Float64()*(a.cfg.WaitMax-a.cfg.WaitMin)
		a.nextRoamPick = a.now + math.Max(0, wait)
		a.deps.Log.Debug().Str("enemy", a.cfg.Name).Floats64("point", p[:]).Float64("next", a.nextRoamPick).Msg("roam point")
		return
	}
	a.nextRoamPick = a.now + roamRetryDelay
	a.deps.Log.Debug().Str("enemy", a.cfg.Name).Int("attempts", a.cfg.PickAttempts).Msg("no roam point found")
}

func (a *Agent) insideUnitSphere() mgl64.Vec3 {
	for {
		v := mgl64.Vec3{a.rng.Float64()*2 - 1, a.rng.Float64()*2 - 1, a.rng.Float64()*2 - 1}
		if common.SqrLen(v) <= 1 {
			return v
		}
	}
}

// steer turns in place toward the next path corner when it lies too far
// off the current heading, and only lets the agent translate once it is
// roughly facing the corner.
func (a *Agent) steer(dt float64) {
	if !a.cfg.TurnThenMove {
		return
	}
	n := a.deps.Nav
	if n.PathPending() || !n.HasPath() {
		return
	}
	dir := common.Flatten(n.SteeringTarget().Sub(n.Position()))
	if common.SqrLen(dir) < 1e-6 {
		return
	}
	desired := common.LookRotation(dir)
	if common.QuatAngle(a.rotation, desired) > a.cfg.TurnInPlaceAngle {
		n.SetStopped(true)
		a.rotation = common.Slerp(a.rotation, desired, a.cfg.TurnSpeed*dt)
		return
	}
	n.SetStopped(false)
	if a.cfg.RotateWhileMoving {
		a.rotation = common.Slerp(a.rotation, desired, a.cfg.TurnSpeed*dt)
	}
}

// facingError is the angle between the current heading and the flattened
// direction to the target. A target directly overhead counts as faced.
func (a *Agent) facingError(look mgl64.Vec3) float64 {
	if common.SqrLen(look) <= minFaceSqr {
		return 0
	}
	return common.QuatAngle(a.rotation, common.LookRotation(look))
}

// attack stops the agent, turns it toward the target and fires when
// range, sight, facing and cooldown all allow. Facing is judged on the
// heading the agent had before this tick's turn.
func (a *Agent) attack(dt float64) {
	n := a.deps.Nav
	n.SetStopped(true)

	targetPos := a.target.Position()
	look := common.Flatten(targetPos.Sub(n.Position()))
	facing := a.facingError(look)
	if common.SqrLen(look) > minFaceSqr {
		a.rotation = common.Slerp(a.rotation, common.LookRotation(look), a.cfg.TurnSpeed*dt)
	}

	if a.now < a.nextShot {
		return
	}
	if facing > a.cfg.FireFacingAngle {
		return
	}
	if !a.canEngage() {
		return
	}

	a.nextShot = a.now + 1/math.Max(a.stats.FireRate, minFireRate)
	anim.SetTrigger(a.deps.Anim, a.cfg.ShootTrigger)

	shot := Shot{
		Enemy:    a.cfg.Name,
		Origin:   a.eye(),
		Target:   targetPos,
		TargetID: a.target.BodyID(),
		Distance: a.distanceToTarget(),
		Time:     a.now,
	}
	event.Emit(a.deps.Events, event.EnemyShot, shot)
	if a.deps.Hook != nil {
		a.deps.Hook(shot)
	}
}

func (a *Agent) updateAnimator() {
	if a.deps.Anim == nil {
		return
	}
	v := a.deps.Nav.Velocity()
	moving := common.SqrLen(v) > minWalkSpeedSqr && !a.deps.Nav.IsStopped()
	anim.SetBool(a.deps.Anim, a.cfg.WalkParam, moving)
	anim.SetFloat(a.deps.Anim, a.cfg.SpeedParam, v.Len())
}
