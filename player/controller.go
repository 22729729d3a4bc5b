// Package player is the first-person controller: walking, mouse look,
// speed adjustment, leaning around cover and head bob.
package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/milk9111/fireteam/common"
	"github.com/milk9111/fireteam/input"
	"github.com/milk9111/fireteam/physics"
	"github.com/milk9111/fireteam/prefabs"
)

const (
	ActionWalkForward  = "walkForward"
	ActionWalkBackward = "walkBackward"
	ActionWalkLeft     = "walkLeft"
	ActionWalkRight    = "walkRight"
	ActionLeanLeft     = "leanLeft"
	ActionLeanRight    = "leanRight"
)

const (
	maxPitch  = 89.0
	movingSqr = 1e-8
	bobCycle  = 2 * math.Pi
)

// skipped actions are handled by the scroll wheel instead.
var skipped = []string{"upWalkSpeed", "downWalkSpeed"}

// Mover applies a displacement and returns what was actually applied.
type Mover interface {
	Move(delta mgl64.Vec3) mgl64.Vec3
}

type MoverFunc func(delta mgl64.Vec3) mgl64.Vec3

func (f MoverFunc) Move(delta mgl64.Vec3) mgl64.Vec3 { return f(delta) }

// BodyMover moves a body in a physics space.
func BodyMover(space *physics.Space, id physics.ID) Mover {
	return MoverFunc(func(delta mgl64.Vec3) mgl64.Vec3 {
		return space.Move(id, delta)
	})
}

type Deps struct {
	// Mover is optional; without one the controller moves freely.
	Mover   Mover
	Physics physics.Querier
	// Self is the player's own body, ignored by lean probes.
	Self physics.ID
	Log  zerolog.Logger
}

type Controller struct {
	cfg  Config
	deps Deps

	bindings  *input.Bindings
	lookSpeed float64
	pressed   map[string][]func()

	pos       mgl64.Vec3
	yaw       float64
	pitch     float64
	moveSpeed float64
	velocity  mgl64.Vec3

	lean      float64
	leanLimit float64
	bobPhase  float64
	bob       float64
}

func New(cfg Config, controls prefabs.ControlSpec, deps Deps) *Controller {
	c := &Controller{
		cfg:       cfg,
		deps:      deps,
		moveSpeed: cfg.MoveSpeed,
		pressed:   make(map[string][]func()),
	}
	c.LoadBindings(controls)
	return c
}

// LoadBindings rebuilds the controller's actions. Bound keys are used as
// they are, with no default-key fallback.
func (c *Controller) LoadBindings(controls prefabs.ControlSpec) {
	c.lookSpeed = controls.Look()
	c.bindings = input.Rebuild(controls, input.RebuildOptions{
		Skip: skipped,
		Log:  c.deps.Log,
	})
}

func (c *Controller) Bindings() *input.Bindings { return c.bindings }

// OnPressed registers fn to run on the press edge of action.
func (c *Controller) OnPressed(action string, fn func()) {
	if fn == nil {
		return
	}
	c.pressed[action] = append(c.pressed[action], fn)
}

// Update runs one tick: press callbacks, scroll speed, look, walk, lean
// and head bob.
func (c *Controller) Update(in *input.State, dt float64) {
	c.firePressed(in)
	c.handleScroll(in)
	c.look(in, dt)
	c.walk(in, dt)
	c.handleLean(in, dt)
	c.headBob(dt)
}

func (c *Controller) firePressed(in *input.State) {
	for _, action := range c.bindings.Actions() {
		fns := c.pressed[action]
		if len(fns) == 0 || !c.bindings.PressedDown(in, action) {
			continue
		}
		for _, fn := range fns {
			fn()
		}
	}
}

func (c *Controller) handleScroll(in *input.State) {
	if in == nil {
		return
	}
	switch y := in.Scroll(); {
	case y > 0:
		c.IncreaseWalkSpeed()
	case y < 0:
		c.DecreaseWalkSpeed()
	}
}

func (c *Controller) IncreaseWalkSpeed() {
	c.moveSpeed = common.Clamp(c.moveSpeed+c.cfg.SpeedChangeStep, c.cfg.MinMoveSpeed, c.cfg.MaxMoveSpeed)
}

func (c *Controller) DecreaseWalkSpeed() {
	c.moveSpeed = common.Clamp(c.moveSpeed-c.cfg.SpeedChangeStep, c.cfg.MinMoveSpeed, c.cfg.MaxMoveSpeed)
}

func (c *Controller) look(in *input.State, dt float64) {
	if in == nil {
		return
	}
	dx, dy := in.LookDelta()
	c.yaw = common.NormalizeAngle(c.yaw + dx*c.lookSpeed*dt)
	c.pitch = common.Clamp(c.pitch-dy*c.lookSpeed*dt, -maxPitch, maxPitch)
}

func (c *Controller) axis(in *input.State, plus, minus string) float64 {
	v := 0.0
	if c.bindings.Pressed(in, plus) {
		v++
	}
	if c.bindings.Pressed(in, minus) {
		v--
	}
	return v
}

func (c *Controller) walk(in *input.State, dt float64) {
	forward := c.axis(in, ActionWalkForward, ActionWalkBackward)
	right := c.axis(in, ActionWalkRight, ActionWalkLeft)

	move := c.Forward().Mul(forward).Add(c.Right().Mul(right))
	if common.SqrLen(move) > 1 {
		move = move.Normalize()
	}
	speed := common.Clamp(c.moveSpeed, c.cfg.MinMoveSpeed, c.cfg.MaxMoveSpeed)
	delta := move.Mul(speed * dt)

	applied := delta
	if c.deps.Mover != nil {
		applied = c.deps.Mover.Move(delta)
	}
	c.pos = c.pos.Add(applied)
	if dt > 0 {
		c.velocity = applied.Mul(1 / dt)
	} else {
		c.velocity = mgl64.Vec3{}
	}
}

// handleLean rolls the head toward the held side. The roll is limited by
// how much room a probe finds on that side.
func (c *Controller) handleLean(in *input.State, dt float64) {
	left := c.bindings.Pressed(in, ActionLeanLeft)
	right := c.bindings.Pressed(in, ActionLeanRight)

	target := 0.0
	switch {
	case left && !right:
		c.leanLimit = c.leanRoom(c.Right().Mul(-1))
		target = c.leanLimit
	case right && !left:
		c.leanLimit = c.leanRoom(c.Right())
		target = -c.leanLimit
	default:
		c.leanLimit = c.cfg.LeanAngle
	}
	c.lean = common.MoveTowards(c.lean, target, c.cfg.LeanRotationSpeed*dt)
}

// leanRoom is the largest lean angle that keeps the head clear of
// geometry along side.
func (c *Controller) leanRoom(side mgl64.Vec3) float64 {
	if c.deps.Physics == nil || c.cfg.LeanProbeDistance <= 0 {
		return c.cfg.LeanAngle
	}
	hit, ok := c.deps.Physics.SphereCast(c.eye(0), c.cfg.LeanProbeRadius, side, c.cfg.LeanProbeDistance, c.ignore()...)
	if !ok {
		return c.cfg.LeanAngle
	}
	span := c.cfg.LeanProbeDistance - c.cfg.LeanClearance
	if span <= 0 {
		return 0
	}
	room := common.Clamp01((hit.Distance - c.cfg.LeanClearance) / span)
	c.deps.Log.Debug().Float64("distance", hit.Distance).Float64("room", room).Msg("lean obstructed")
	return c.cfg.LeanAngle * room
}

func (c *Controller) ignore() []physics.ID {
	if c.deps.Self == 0 {
		return nil
	}
	return []physics.ID{c.deps.Self}
}

func (c *Controller) headBob(dt float64) {
	if common.SqrLen(common.Flatten(c.velocity)) > movingSqr {
		speed := common.Flatten(c.velocity).Len()
		c.bobPhase = math.Mod(c.bobPhase+c.cfg.BobFrequency*speed*dt, bobCycle)
		c.bob = c.cfg.BobAmplitude * math.Sin(c.bobPhase)
		return
	}
	c.bob = common.MoveTowards(c.bob, 0, c.cfg.BobReturnSpeed*dt)
	if c.bob == 0 {
		c.bobPhase = 0
	}
}

func (c *Controller) eye(bob float64) mgl64.Vec3 {
	return c.pos.Add(common.Up.Mul(c.cfg.HeadHeight + bob))
}

// Position is the player's feet.
func (c *Controller) Position() mgl64.Vec3 { return c.pos }

// SetPosition teleports the controller. The body behind the mover is not
// moved.
func (c *Controller) SetPosition(p mgl64.Vec3) { c.pos = p }

func (c *Controller) BodyID() physics.ID { return c.deps.Self }

// Head is the camera position, including bob.
func (c *Controller) Head() mgl64.Vec3 { return c.eye(c.bob) }

func (c *Controller) Yaw() float64 { return c.yaw }

func (c *Controller) SetYaw(deg float64) { c.yaw = common.NormalizeAngle(deg) }

func (c *Controller) Pitch() float64 { return c.pitch }

// Lean is the head roll in degrees, positive to the left.
func (c *Controller) Lean() float64 { return c.lean }

// LeanLimit is the lean angle allowed on the side last probed.
func (c *Controller) LeanLimit() float64 { return c.leanLimit }

func (c *Controller) Bob() float64 { return c.bob }

func (c *Controller) Velocity() mgl64.Vec3 { return c.velocity }

func (c *Controller) MoveSpeed() float64 { return c.moveSpeed }

// SpeedBar is the move speed as a 0..1 fraction of its range.
func (c *Controller) SpeedBar() float64 {
	return common.InverseLerp(c.cfg.MinMoveSpeed, c.cfg.MaxMoveSpeed, c.moveSpeed)
}

func (c *Controller) Forward() mgl64.Vec3 {
	r := mgl64.DegToRad(c.yaw)
	return mgl64.Vec3{math.Sin(r), 0, math.Cos(r)}
}

func (c *Controller) Right() mgl64.Vec3 {
	r := mgl64.DegToRad(c.yaw)
	return mgl64.Vec3{math.Cos(r), 0, -math.Sin(r)}
}

// Aim is the view direction including pitch; positive pitch looks down.
func (c *Controller) Aim() mgl64.Vec3 {
	p := mgl64.DegToRad(c.pitch)
	f := c.Forward()
	return mgl64.Vec3{f[0] * math.Cos(p), -math.Sin(p), f[2] * math.Cos(p)}
}
