// Package sim assembles a playable arena from a scenario asset and advances
// it one fixed tick at a time: input, then weapon, enemies and player, then
// navigation, then HUD timing and the event flush.
package sim

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/milk9111/fireteam/anim"
	"github.com/milk9111/fireteam/common"
	"github.com/milk9111/fireteam/enemy"
	"github.com/milk9111/fireteam/event"
	"github.com/milk9111/fireteam/input"
	"github.com/milk9111/fireteam/logging"
	"github.com/milk9111/fireteam/nav"
	"github.com/milk9111/fireteam/physics"
	"github.com/milk9111/fireteam/player"
	"github.com/milk9111/fireteam/prefabs"
	"github.com/milk9111/fireteam/script"
	"github.com/milk9111/fireteam/ui"
	"github.com/milk9111/fireteam/weapon"
)

const (
	maxShotRange   = 100.0
	fullHealth     = 100.0
	playerHeight   = 1.8
	defaultPrefab  = "enemy.yaml"
	defaultBanner  = "Contact"
	gridPad        = 0.35
	defaultSideLen = 20
)

type Options struct {
	// Source replaces the scenario's scripted input.
	Source input.Source
	// Difficulty and Seed override the scenario when set.
	Difficulty string
	Seed       int64
	// Assets is where specs and scripts are read from; edited files there
	// win over the embedded copies. Empty means prefabs.Default.
	Assets prefabs.Dir
	Log    zerolog.Logger
}

// Enemy is one hostile in the arena.
type Enemy struct {
	Agent  *enemy.Agent
	Nav    *nav.GridAgent
	Body   physics.ID
	Anim   *anim.Recorder
	Health float64
	Damage float64
	Dead   bool
}

func (e *Enemy) Name() string { return e.Agent.Name() }

type World struct {
	Scenario prefabs.ScenarioSpec
	Space    *physics.Space
	Grid     *nav.Grid
	Player   *player.Controller
	Weapon   *weapon.Weapon
	Enemies  []*Enemy

	// Banner fades the scenario title in and out at the start.
	Banner      *ui.Fader
	BannerText  ui.Opacity
	BannerImage ui.Opacity

	log       zerolog.Logger
	assets    prefabs.Dir
	source    input.Source
	in        input.State
	scheduler *Scheduler
	events    event.Queue
	frame     []event.Event
	reloader  *prefabs.Reloader
	scriptOff func()
	intro     ui.EventSequence

	controls   prefabs.ControlSpec
	weaponSpec prefabs.WeaponSpec
	shot       *script.ShotHook
	hit        *Enemy

	difficulty enemy.Difficulty
	seed       int64
	health     float64
	hot        bool
	now        float64
	dt         float64
	tick       int
	tally      tally
}

// New builds the arena, spawns everyone and starts the intro.
func New(sc prefabs.ScenarioSpec, opts Options) (*World, error) {
	w := &World{
		Scenario: sc,
		log:      logging.Component(opts.Log, "sim"),
		assets:   opts.Assets,
		seed:     sc.Seed,
		health:   fullHealth,
		tally:    newTally(),
	}
	if opts.Seed != 0 {
		w.seed = opts.Seed
	}
	if w.assets == "" {
		w.assets = prefabs.Default
	}
	name := sc.Difficulty
	if strings.TrimSpace(opts.Difficulty) != "" {
		name = opts.Difficulty
	}
	d, err := enemy.ParseDifficulty(name)
	if err != nil {
		return nil, fmt.Errorf("sim %s: %w", sc.Name, err)
	}
	w.difficulty = d

	if w.controls, err = load[prefabs.ControlSpec](w, "controls.yaml"); err != nil {
		return nil, fmt.Errorf("sim %s: controls: %w", sc.Name, err)
	}

	w.buildArena()
	if err := w.spawnPlayer(); err != nil {
		return nil, fmt.Errorf("sim %s: %w", sc.Name, err)
	}
	if err := w.spawnWeapon(); err != nil {
		return nil, fmt.Errorf("sim %s: %w", sc.Name, err)
	}
	for i, actor := range sc.Enemies {
		if err := w.spawnEnemy(i, actor); err != nil {
			return nil, fmt.Errorf("sim %s: %w", sc.Name, err)
		}
	}
	if err := w.buildBanner(); err != nil {
		return nil, fmt.Errorf("sim %s: %w", sc.Name, err)
	}

	w.source = opts.Source
	if w.source == nil {
		w.source = input.ScriptFromSpec(sc.Input)
	}
	w.scheduler = NewScheduler(
		SystemFunc(pollInput),
		SystemFunc(updateWeapon),
		SystemFunc(updateEnemies),
		SystemFunc(updatePlayer),
		SystemFunc(stepNav),
		SystemFunc(stepHUD),
		SystemFunc(flushEvents),
	)
	w.reloader = prefabs.NewReloader(w.log)
	w.registerReloads()

	w.start()
	return w, nil
}

func load[T any](w *World, name string) (T, error) {
	return prefabs.LoadSpecFrom[T](w.assets, name)
}

func (w *World) buildArena() {
	a := w.Scenario.Arena
	width, depth := a.Width, a.Depth
	if width <= 0 {
		width = defaultSideLen
	}
	if depth <= 0 {
		depth = defaultSideLen
	}
	w.Space = physics.NewSpace()
	w.Grid = nav.NewGrid(width, depth, a.CellSize, a.Origin.Vec())
	for _, box := range a.Obstacles {
		w.Space.AddBox(box.Min.Vec(), box.Max.Vec(), box.Height)
		w.Grid.BlockBox(box.Min.Vec(), box.Max.Vec(), gridPad)
	}
}

func (w *World) spawnPlayer() error {
	spec, err := load[prefabs.PlayerSpec](w, "player.yaml")
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}
	cfg := player.ConfigFromSpec(spec)
	pos := w.Scenario.Player.Position.Vec()
	body := w.Space.AddActor(pos, cfg.Radius, playerHeight)
	w.Player = player.New(cfg, w.controls, player.Deps{
		Mover:   player.BodyMover(w.Space, body),
		Physics: w.Space,
		Self:    body,
		Log:     logging.Component(w.log, "player"),
	})
	w.Player.SetPosition(pos)
	w.Player.SetYaw(w.Scenario.Player.Yaw)
	return nil
}

func (w *World) spawnWeapon() error {
	spec, err := load[prefabs.WeaponSpec](w, "weapon.yaml")
	if err != nil {
		return fmt.Errorf("weapon: %w", err)
	}
	w.weaponSpec = spec
	if w.shot, err = w.loadShot(spec.Script); err != nil {
		return err
	}
	w.Weapon, err = weapon.New(spec, weapon.Options{
		Controls: w.controls,
		Log:      logging.Component(w.log, "weapon"),
		Events:   &w.events,
		Hook:     w.weaponHook,
	})
	return err
}

func (w *World) spawnEnemy(i int, actor prefabs.ActorSpec) error {
	prefab := actor.Prefab
	if prefab == "" {
		prefab = defaultPrefab
	}
	spec, err := load[prefabs.EnemySpec](w, prefab)
	if err != nil {
		return fmt.Errorf("enemy %s: %w", actor.Name, err)
	}
	if actor.Name != "" {
		spec.Name = actor.Name
	}
	cfg, err := enemy.ConfigFromSpec(spec)
	if err != nil {
		return err
	}
	cfg.Difficulty = w.difficulty

	pos := actor.Position.Vec()
	radius, height := spec.Radius, spec.Height
	if radius <= 0 {
		radius = gridPad
	}
	if height <= 0 {
		height = playerHeight
	}
	body := w.Space.AddActor(pos, radius, height)
	agent := nav.NewGridAgent(w.Grid, pos, spec.StoppingDistance)
	agent.SetMover(func(delta mgl64.Vec3) mgl64.Vec3 { return w.Space.Move(body, delta) })

	e := &Enemy{
		Nav:    agent,
		Body:   body,
		Anim:   anim.NewRecorder(),
		Health: spec.Health,
		Damage: spec.Damage,
	}
	if e.Health <= 0 {
		e.Health = fullHealth
	}

	var hook enemy.ShotHook
	if spec.Script != "" {
		h, err := script.LoadFrom(w.assets, spec.Script, logging.Component(w.log, "script"))
		if err != nil {
			return fmt.Errorf("enemy %s: %w", spec.Name, err)
		}
		hook = h.Enemy(e.Damage, w.hurtPlayer)
	} else {
		hook = func(s enemy.Shot) { w.hurtPlayer(s, e.Damage) }
	}

	e.Agent = enemy.NewAgent(cfg, enemy.Deps{
		Nav:     agent,
		Physics: w.Space,
		Anim:    e.Anim,
		Events:  &w.events,
		Hook:    hook,
		Rand:    rand.New(rand.NewSource(w.seed + int64(i))),
		Log:     logging.Component(w.log, "enemy").With().Str("enemy", spec.Name).Logger(),
		Self:    body,
	})
	e.Agent.SetRotation(common.YawRotation(actor.Yaw))
	e.Agent.SetTarget(w.Player)
	w.Enemies = append(w.Enemies, e)
	return nil
}

func (w *World) buildBanner() error {
	spec, err := load[prefabs.FadeSpec](w, "fade.yaml")
	if err != nil {
		return fmt.Errorf("fade: %w", err)
	}
	name := w.Scenario.Banner
	if name == "" {
		name = defaultBanner
	}
	w.Banner = &ui.Fader{
		Name:   name,
		Config: ui.FadeConfigFromSpec(spec),
		Text:   ui.Group{&w.BannerText},
		Image:  ui.Group{&w.BannerImage},
		Events: &w.events,
	}
	return nil
}

// start shows the banner and lets the enemies loose once the grace period
// is over.
func (w *World) start() {
	w.intro.Points = []ui.Point{
		{Event: w.Banner.Start, Delay: w.Scenario.Grace},
		{Event: w.goHot},
	}
	w.intro.Start()
}

func (w *World) goHot() {
	if w.hot {
		return
	}
	w.hot = true
	for _, e := range w.Enemies {
		e.Agent.Start(w.now)
	}
	w.log.Info().Int("enemies", len(w.Enemies)).Float64("time", w.now).Msg("enemies active")
}

// Update advances one tick of dt seconds.
func (w *World) Update(dt float64) {
	w.dt = dt
	w.scheduler.Update(w)
	w.now += dt
	w.tick++
}

// Run advances n ticks.
func (w *World) Run(n int, dt float64) {
	for i := 0; i < n; i++ {
		w.Update(dt)
	}
}

func (w *World) Now() float64 { return w.now }

func (w *World) Tick() int { return w.tick }

// Hot reports whether the enemies have been released.
func (w *World) Hot() bool { return w.hot }

func (w *World) Health() float64 { return w.health }

func (w *World) Difficulty() enemy.Difficulty { return w.difficulty }

// SetDifficulty rescales every enemy.
func (w *World) SetDifficulty(d enemy.Difficulty) {
	w.difficulty = d
	for _, e := range w.Enemies {
		e.Agent.SetDifficulty(d)
	}
}

// Events are the signals raised during the last tick.
func (w *World) Events() []event.Event { return w.frame }

func (w *World) Input() *input.State { return &w.in }

// Alive counts enemies still standing.
func (w *World) Alive() int {
	n := 0
	for _, e := range w.Enemies {
		if !e.Dead {
			n++
		}
	}
	return n
}

func (w *World) enemyByBody(id physics.ID) *Enemy {
	for _, e := range w.Enemies {
		if !e.Dead && w.Space.IsChildOf(id, e.Body) {
			return e
		}
	}
	return nil
}

// resolveShot traces the player's aim and records what it struck.
func (w *World) resolveShot(s weapon.Shot) weapon.Shot {
	w.hit = nil
	hit, ok := w.Space.Raycast(w.Player.Head(), w.Player.Aim(), maxShotRange, w.Player.BodyID())
	if !ok {
		return s
	}
	s.Distance = hit.Distance
	w.hit = w.enemyByBody(hit.ID)
	return s
}

func (w *World) weaponHook(s weapon.Shot) weapon.Shot {
	if w.shot != nil {
		s = w.shot.Weapon(w.resolveShot)(s)
	} else {
		s = w.resolveShot(s)
	}
	if w.hit != nil {
		w.damageEnemy(w.hit, s.Damage)
		w.hit = nil
	}
	return s
}

func (w *World) damageEnemy(e *Enemy, dmg float64) {
	if e.Dead || dmg <= 0 {
		return
	}
	e.Health -= dmg
	w.tally.hits++
	w.tally.dealt += dmg
	if e.Health > 0 {
		return
	}
	e.Dead = true
	e.Nav.SetStopped(true)
	w.Space.Remove(e.Body)
	w.tally.kills++
	w.log.Info().Str("enemy", e.Name()).Float64("time", w.now).Msg("enemy down")
	event.Emit(&w.events, event.EnemyDown, e.Name())
}

func (w *World) hurtPlayer(s enemy.Shot, dmg float64) {
	if dmg <= 0 {
		return
	}
	w.health = max(w.health-dmg, 0)
	w.tally.taken += dmg
	event.Emit(&w.events, event.PlayerHit, dmg)
	w.log.Debug().Str("enemy", s.Enemy).Float64("damage", dmg).Float64("health", w.health).Msg("player hit")
}
