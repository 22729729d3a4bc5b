package player_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/fireteam/input"
	"github.com/milk9111/fireteam/physics"
	"github.com/milk9111/fireteam/player"
	"github.com/milk9111/fireteam/prefabs"
)

type pilot struct {
	c  *player.Controller
	in input.State
}

func controls(t *testing.T) prefabs.ControlSpec {
	t.Helper()
	spec, err := prefabs.LoadControlSpec()
	require.NoError(t, err)
	return spec
}

func newPilot(t *testing.T, deps player.Deps) *pilot {
	t.Helper()
	return &pilot{c: player.New(player.DefaultConfig(), controls(t), deps)}
}

func (p *pilot) tick(dt float64, keys ...string) {
	p.send(input.Snapshot{}, dt, keys...)
}

func (p *pilot) send(snap input.Snapshot, dt float64, keys ...string) {
	snap.Keys = map[string]bool{}
	for _, k := range keys {
		if k == "shoot" {
			snap.Mouse[0] = true
			continue
		}
		snap.Keys[k] = true
	}
	p.in.Advance(snap)
	p.c.Update(&p.in, dt)
}

func TestWalkForwardAndDiagonal(t *testing.T) {
	p := newPilot(t, player.Deps{})
	for i := 0; i < 10; i++ {
		p.tick(0.1, "w")
	}
	assert.InDelta(t, 5.0, p.c.Position()[2], 1e-9)
	assert.InDelta(t, 0.0, p.c.Position()[0], 1e-9)

	start := p.c.Position()
	p.tick(0.1, "w", "d")
	step := p.c.Position().Sub(start)
	assert.InDelta(t, 0.5, step.Len(), 1e-9, "diagonals are not faster")
	assert.Greater(t, step[0], 0.0)

	start = p.c.Position()
	p.tick(0.1, "w", "s")
	assert.Equal(t, start, p.c.Position(), "opposite keys cancel")
}

func TestWalkFollowsYaw(t *testing.T) {
	p := newPilot(t, player.Deps{})
	p.c.SetYaw(90)
	p.tick(0.2, "w")
	assert.InDelta(t, 1.0, p.c.Position()[0], 1e-9)
	assert.InDelta(t, 0.0, p.c.Position()[2], 1e-9)
}

func TestScrollAdjustsSpeed(t *testing.T) {
	p := newPilot(t, player.Deps{})
	for i := 0; i < 3; i++ {
		p.send(input.Snapshot{ScrollY: 1}, 0.016)
	}
	assert.Equal(t, 8.0, p.c.MoveSpeed())
	assert.InDelta(t, 0.75, p.c.SpeedBar(), 1e-9)

	for i := 0; i < 5; i++ {
		p.send(input.Snapshot{ScrollY: 1}, 0.016)
	}
	assert.Equal(t, 10.0, p.c.MoveSpeed(), "clamped at the top")
	assert.Equal(t, 1.0, p.c.SpeedBar())

	for i := 0; i < 20; i++ {
		p.c.DecreaseWalkSpeed()
	}
	assert.Equal(t, 2.0, p.c.MoveSpeed())
	assert.Zero(t, p.c.SpeedBar())
}

func TestUpDownWalkSpeedAreNotBound(t *testing.T) {
	p := newPilot(t, player.Deps{})
	_, ok := p.c.Bindings().Lookup("upWalkSpeed")
	assert.False(t, ok)
	p.tick(0.1, "equal")
	assert.Equal(t, 5.0, p.c.MoveSpeed())
}

func TestNoDefaultKeyFallback(t *testing.T) {
	c := player.New(player.DefaultConfig(), prefabs.ControlSpec{Controls: []prefabs.ControlValueSpec{
		{Action: player.ActionWalkForward, DefaultKey: "w"},
	}}, player.Deps{})
	var in input.State
	in.Advance(input.Snapshot{Keys: map[string]bool{"w": true}})
	c.Update(&in, 0.1)
	assert.Equal(t, mgl64.Vec3{}, c.Position())
}

func TestMouseLook(t *testing.T) {
	p := newPilot(t, player.Deps{})
	p.send(input.Snapshot{MouseDX: 10, MouseDY: -4}, 0.1)
	assert.InDelta(t, 5.0, p.c.Yaw(), 1e-9)
	assert.InDelta(t, 2.0, p.c.Pitch(), 1e-9)

	p.send(input.Snapshot{MouseDY: 1000}, 0.1)
	assert.Equal(t, -89.0, p.c.Pitch())
	assert.Greater(t, p.c.Aim()[1], 0.9, "negative pitch looks up")
}

func TestLeanMovesAtRotationSpeed(t *testing.T) {
	p := newPilot(t, player.Deps{})
	for i := 0; i < 5; i++ {
		p.tick(0.1, "q")
	}
	assert.InDelta(t, 20.0, p.c.Lean(), 1e-9)
	for i := 0; i < 10; i++ {
		p.tick(0.1, "q")
	}
	assert.Equal(t, 30.0, p.c.Lean())

	p.tick(0.1, "q", "e")
	assert.InDelta(t, 26.0, p.c.Lean(), 1e-9, "both sides held returns toward upright")

	for i := 0; i < 30; i++ {
		p.tick(0.1, "e")
	}
	assert.Equal(t, -30.0, p.c.Lean())
}

func TestLeanShortenedByObstruction(t *testing.T) {
	space := physics.NewSpace()
	self := space.AddActor(mgl64.Vec3{}, 0.35, 1.8)
	space.AddBox(mgl64.Vec3{-1, 0, -1}, mgl64.Vec3{-0.65, 0, 1}, 3)

	p := newPilot(t, player.Deps{Physics: space, Self: self})
	for i := 0; i < 20; i++ {
		p.tick(0.1, "q")
	}
	assert.InDelta(t, 15.0, p.c.LeanLimit(), 1e-3)
	assert.InDelta(t, 15.0, p.c.Lean(), 1e-3)

	for i := 0; i < 20; i++ {
		p.tick(0.1, "e")
	}
	assert.Equal(t, 30.0, p.c.LeanLimit(), "the right side is open")
	assert.Equal(t, -30.0, p.c.Lean())
}

func TestLeanAgainstWallIsBlocked(t *testing.T) {
	space := physics.NewSpace()
	space.AddBox(mgl64.Vec3{-1, 0, -1}, mgl64.Vec3{-0.4, 0, 1}, 3)

	p := newPilot(t, player.Deps{Physics: space})
	for i := 0; i < 10; i++ {
		p.tick(0.1, "q")
	}
	assert.Zero(t, p.c.Lean())
}

func TestBodyMoverStopsAtWalls(t *testing.T) {
	space := physics.NewSpace()
	self := space.AddActor(mgl64.Vec3{}, 0.35, 1.8)
	space.AddBox(mgl64.Vec3{-2, 0, 2}, mgl64.Vec3{2, 0, 3}, 3)

	p := newPilot(t, player.Deps{Mover: player.BodyMover(space, self), Physics: space, Self: self})
	for i := 0; i < 20; i++ {
		p.tick(0.1, "w")
	}
	z := p.c.Position()[2]
	assert.Less(t, z, 1.66)
	assert.Greater(t, z, 1.5)
	assert.InDelta(t, 0.0, p.c.Velocity()[2], 1e-6, "pressed against the wall")

	body, ok := space.Position(self)
	require.True(t, ok)
	assert.InDelta(t, z, body[2], 1e-9)
}

func TestHeadBob(t *testing.T) {
	p := newPilot(t, player.Deps{})
	moved := false
	for i := 0; i < 20; i++ {
		p.tick(0.05, "w")
		if p.c.Bob() != 0 {
			moved = true
		}
		assert.LessOrEqual(t, p.c.Bob(), 0.05+1e-12)
	}
	assert.True(t, moved)

	for i := 0; i < 40; i++ {
		p.tick(0.05)
	}
	assert.Zero(t, p.c.Bob())
	assert.InDelta(t, 1.7, p.c.Head()[1], 1e-12)
}

func TestOnPressedFiresOncePerPress(t *testing.T) {
	p := newPilot(t, player.Deps{})
	shots := 0
	p.c.OnPressed("shootWeapon", func() { shots++ })

	p.tick(0.1, "shoot")
	p.tick(0.1, "shoot")
	p.tick(0.1)
	p.tick(0.1, "shoot")
	assert.Equal(t, 2, shots)
}

func TestConfigFromSpec(t *testing.T) {
	spec, err := prefabs.LoadPlayerSpec()
	require.NoError(t, err)
	assert.Equal(t, player.DefaultConfig(), player.ConfigFromSpec(spec))

	spec.MoveSpeed = 7
	spec.LeanAngle = 0
	cfg := player.ConfigFromSpec(spec)
	assert.Equal(t, 7.0, cfg.MoveSpeed)
	assert.Equal(t, 30.0, cfg.LeanAngle, "zero keeps the default")
}
