// Package weapon is the fire control of a player weapon: fire-mode
// selection, ammo and reload, aim and shoulder swap, and attachments that
// modify the weapon's stats.
package weapon

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/milk9111/fireteam/event"
	"github.com/milk9111/fireteam/input"
	"github.com/milk9111/fireteam/prefabs"
	"github.com/milk9111/fireteam/task"
	"github.com/milk9111/fireteam/tween"
)

// Actions read by the weapon.
const (
	ActionAim       = "aimWeapon"
	ActionShoot     = "shootWeapon"
	ActionReload    = "reloadWeapon"
	ActionCheckAmmo = "checkAmmo"
	ActionCycleMode = "cycleFireMode"
	ActionSwap      = "swapShoulder"
)

var Actions = []string{ActionAim, ActionShoot, ActionReload, ActionCheckAmmo, ActionCycleMode, ActionSwap}

const (
	selectorDuration = 0.1
	magazineDropY    = -0.25
)

type Hand int

const (
	RightHand Hand = iota
	LeftHand
)

func (h Hand) String() string {
	if h == LeftHand {
		return "left"
	}
	return "right"
}

// Ammo is the payload of MagDrop, MagInsert and AmmoCheck.
type Ammo struct {
	Current  int
	Reserve  int
	Capacity int
}

// ModeChange is the payload of FireModeChanged.
type ModeChange struct {
	From FireMode
	To   FireMode
}

// Shot is one round leaving the weapon.
type Shot struct {
	Weapon    string
	Mode      FireMode
	Damage    float64
	Spread    float32
	Recoil    mgl64.Vec3
	Aiming    bool
	Hand      Hand
	Remaining int
	Time      float64
	// Distance is filled in by hooks that resolve the hit.
	Distance float64
}

// ShotHook sees every shot before it is announced and may adjust it.
type ShotHook func(Shot) Shot

type Options struct {
	Controls prefabs.ControlSpec
	Log      zerolog.Logger
	Events   event.Pusher
	Hook     ShotHook
}

type Weapon struct {
	base         Stats
	stats        Stats
	loadout      *Loadout
	clearOnStart bool

	log      zerolog.Logger
	events   event.Pusher
	hook     ShotHook
	bindings *input.Bindings

	mode      FireMode
	lastMode  FireMode
	startMode FireMode
	current   int
	reserve   int
	reloading bool
	aiming    bool
	aimHeld   bool
	hand      Hand
	startHand Hand

	position     mgl64.Vec3
	selector     float64
	instances    []*Instance
	magazine     *Instance
	magazineRest mgl64.Vec3
	bolt         *tween.PointSet
	boltPose     *tween.Transform

	// pose is shared by aim and shoulder swap.
	pose       task.Slot
	reloadTask task.Slot
	switchTask task.Slot

	cooldown float64
	dryFired bool
	now      float64
}

// New builds a weapon from its asset and starts it.
func New(spec prefabs.WeaponSpec, opts Options) (*Weapon, error) {
	allowed := NewModeSet(Safe, Semi)
	if len(spec.AllowedModes) > 0 {
		set, err := ParseModeSet(spec.AllowedModes)
		if err != nil {
			return nil, fmt.Errorf("weapon %s: allowed modes: %w", spec.Name, err)
		}
		allowed = set
	}
	start := Safe
	if strings.TrimSpace(spec.StartMode) != "" {
		m, err := ParseFireMode(spec.StartMode)
		if err != nil {
			return nil, fmt.Errorf("weapon %s: start mode: %w", spec.Name, err)
		}
		start = m
	}

	base := Stats{
		Name:             spec.Name,
		MagazineSize:     spec.MagazineSize,
		MaxReserveAmmo:   spec.MaxReserveAmmo,
		RoundsPerMinute:  spec.RoundsPerMinute,
		Damage:           spec.Damage,
		Spread:           spec.Spread,
		Recoil:           spec.Recoil.Vec(),
		ReloadDuration:   spec.ReloadDuration,
		AimInDuration:    spec.AimInDuration,
		AimOutDuration:   spec.AimOutDuration,
		HandSwapDuration: spec.HandSwapDuration,
		RightHandOffset:  spec.RightHandOffset.Vec(),
		LeftHandOffset:   spec.LeftHandOffset.Vec(),
		AimOffset:        spec.AimOffset.Vec(),
		SafeAngle:        spec.SwitchAngles.Safe,
		SemiAngle:        spec.SwitchAngles.Semi,
		FullAngle:        spec.SwitchAngles.Full,
	}
	base.SetAllowed(allowed)

	w := &Weapon{
		base:         base,
		loadout:      NewLoadout(spec.Attachments),
		clearOnStart: spec.ClearOnStart == nil || *spec.ClearOnStart,
		log:          opts.Log,
		events:       opts.Events,
		hook:         opts.Hook,
		startMode:    start,
	}
	w.bolt, w.boltPose = newBolt(spec.BoltPoints)
	if spec.LeftHand {
		w.startHand = LeftHand
	}
	w.Start(opts.Controls)
	return w, nil
}

// Start fits the weapon: bindings, attachments and their modifiers, fire
// mode, selector angle and a full load. Calling it again refits from the
// base stats.
func (w *Weapon) Start(controls prefabs.ControlSpec) {
	w.stats = w.base
	w.mode = w.startMode
	w.hand = w.startHand
	w.aiming = false

	w.LoadBindings(controls)
	if w.clearOnStart {
		w.ClearSpawned()
	}
	w.Spawn()
	w.ApplyModifiers()
	w.EnforceFireMode()
	w.lastMode = w.mode
	w.ApplySwitchImmediate()
	w.Initialize()
	w.position = w.restOffset()
	*w.boltPose = tween.Transform{}
	w.bolt.SnapToPoint(0)
}

// LoadBindings rebuilds the weapon's actions from controls.
func (w *Weapon) LoadBindings(controls prefabs.ControlSpec) {
	w.bindings = input.Rebuild(controls, input.RebuildOptions{
		Allow:       Actions,
		KeyFallback: true,
		Log:         w.log,
	})
}

func (w *Weapon) Bindings() *input.Bindings { return w.bindings }

// Initialize fills the magazine and the reserve.
func (w *Weapon) Initialize() {
	w.current = max(w.stats.MagazineSize, 0)
	w.reserve = max(w.stats.MaxReserveAmmo, 0)
}

// Update runs one tick: mode validation, aim edge, trigger, reload,
// ammo check, mode cycle and shoulder swap, then running motions.
func (w *Weapon) Update(in *input.State, dt float64) {
	if w.mode != w.lastMode {
		w.EnforceFireMode()
		if w.mode != w.lastMode {
			w.modeChanged()
		}
	}

	held := w.bindings.Pressed(in, ActionAim)
	if held && !w.aimHeld {
		w.AimIn()
	} else if !held && w.aimHeld {
		w.AimOut()
	}
	w.aimHeld = held

	w.trigger(in, dt)

	if w.bindings.PressedDown(in, ActionReload) {
		w.StartReload()
	}
	if w.bindings.PressedDown(in, ActionCheckAmmo) {
		w.CheckAmmo()
	}
	if w.bindings.PressedDown(in, ActionCycleMode) {
		w.CycleFireMode()
	}
	if w.bindings.PressedDown(in, ActionSwap) {
		w.TrySwapShoulder()
	}

	w.Step(dt)
	w.now += dt
}

// Step advances the running motions.
func (w *Weapon) Step(dt float64) {
	w.switchTask.Step(dt)
	w.pose.Step(dt)
	w.reloadTask.Step(dt)
	w.stepBolt(dt)
}

func (w *Weapon) Name() string { return w.stats.Name }

func (w *Weapon) Stats() Stats { return w.stats }

func (w *Weapon) Base() Stats { return w.base }

func (w *Weapon) Loadout() *Loadout { return w.loadout }

func (w *Weapon) SetHook(h ShotHook) { w.hook = h }

func (w *Weapon) Ammo() Ammo {
	return Ammo{Current: w.current, Reserve: w.reserve, Capacity: w.stats.MagazineSize}
}

// SetAmmo overrides the counts, clamped to be non-negative.
func (w *Weapon) SetAmmo(current, reserve int) {
	w.current = max(current, 0)
	w.reserve = max(reserve, 0)
}

func (w *Weapon) Reloading() bool { return w.reloading }

func (w *Weapon) Aiming() bool { return w.aiming }

func (w *Weapon) Hand() Hand { return w.hand }

// Position is the weapon's local offset from the camera.
func (w *Weapon) Position() mgl64.Vec3 { return w.position }

// PoseBusy reports whether an aim or swap motion is running.
func (w *Weapon) PoseBusy() bool { return w.pose.Busy() }

// SelectorAngle is the fire-selector rotation in degrees.
func (w *Weapon) SelectorAngle() float64 { return w.selector }

func (w *Weapon) Instances() []Instance {
	out := make([]Instance, len(w.instances))
	for i, inst := range w.instances {
		out[i] = *inst
	}
	return out
}

// Magazine returns the spawned magazine.
func (w *Weapon) Magazine() (Instance, bool) {
	if w.magazine == nil {
		return Instance{}, false
	}
	return *w.magazine, true
}

// CheckAmmo announces the current counts.
func (w *Weapon) CheckAmmo() Ammo {
	a := w.Ammo()
	w.log.Debug().Int("current", a.Current).Int("reserve", a.Reserve).Msg("ammo check")
	event.Emit(w.events, event.AmmoCheck, a)
	return a
}
