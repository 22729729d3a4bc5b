package tween

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3ReachesTarget(t *testing.T) {
	pos := mgl64.Vec3{0, 0, 0}
	tw := &Vec3{
		Get:      func() mgl64.Vec3 { return pos },
		Set:      func(v mgl64.Vec3) { pos = v },
		To:       mgl64.Vec3{2, 0, 0},
		Duration: 1,
	}
	require.False(t, tw.Step(0.5))
	assert.InDelta(t, 1.0, pos[0], 1e-9)
	require.True(t, tw.Step(0.5))
	assert.Equal(t, mgl64.Vec3{2, 0, 0}, pos)
}

func TestZeroDurationSnaps(t *testing.T) {
	heading := 350.0
	a := &Angle{
		Get: func() float64 { return heading },
		Set: func(v float64) { heading = v },
		To:  20,
	}
	assert.True(t, a.Step(0))
	assert.Equal(t, 20.0, heading)

	alpha := 0.0
	s := &Scalar{Set: func(v float64) { alpha = v }, To: 0.5}
	assert.True(t, s.Step(0.016))
	assert.Equal(t, 0.5, alpha)
}

func TestAngleTakesShortArc(t *testing.T) {
	heading := 350.0
	a := &Angle{
		Get:      func() float64 { return heading },
		Set:      func(v float64) { heading = v },
		To:       10,
		Duration: 0.1,
	}
	a.Step(0.05)
	assert.InDelta(t, 360.0, heading, 1e-9)
}

func TestPoseAxesFinishIndependently(t *testing.T) {
	tr := &Transform{}
	p := NewPose(tr, Point{
		Position: mgl64.Vec3{1, 2, 3},
		PositionAxes: Axis3{
			Use:      [3]bool{true, true, false},
			Duration: [3]float64{1, 0.5, 0},
		},
		PositionLinear: true,
		RotationAxes:   Axis3{},
	})

	require.False(t, p.Step(0.5))
	assert.InDelta(t, 0.5, tr.Position[0], 1e-9)
	assert.Equal(t, 2.0, tr.Position[1])
	assert.Equal(t, 0.0, tr.Position[2], "unused axis keeps its value")

	require.True(t, p.Step(0.5))
	assert.Equal(t, mgl64.Vec3{1, 2, 0}, tr.Position)
}

func TestPoseWithoutDurationsSnaps(t *testing.T) {
	tr := &Transform{Euler: mgl64.Vec3{0, 90, 0}}
	p := NewPose(tr, Point{
		Position:     mgl64.Vec3{0, -0.25, 0},
		PositionAxes: AllAxes(),
		Euler:        mgl64.Vec3{10, 0, 0},
		RotationAxes: Axis3{Use: [3]bool{true, false, false}},
	})
	assert.True(t, p.Step(0))
	assert.Equal(t, mgl64.Vec3{0, -0.25, 0}, tr.Position)
	assert.Equal(t, mgl64.Vec3{10, 90, 0}, tr.Euler)
}

func TestPointSetCyclesAndCancels(t *testing.T) {
	tr := &Transform{}
	slow := Axis3{Use: [3]bool{true, true, true}, Duration: [3]float64{1, 1, 1}}
	set := NewPointSet(tr,
		Point{Position: mgl64.Vec3{1, 0, 0}, PositionAxes: slow, PositionLinear: true},
		Point{Position: mgl64.Vec3{0, 0, 5}, PositionAxes: AllAxes()},
	)
	assert.Equal(t, -1, set.Index())

	set.NextPoint()
	set.Step(0.5)
	assert.True(t, set.Moving())
	assert.InDelta(t, 0.5, tr.Position[0], 1e-9)

	set.NextPoint()
	set.Step(0.5)
	assert.Equal(t, 1, set.Index())
	assert.False(t, set.Moving())
	assert.Equal(t, mgl64.Vec3{0, 0, 5}, tr.Position)

	set.NextPoint()
	assert.Equal(t, 0, set.Index())
	set.SetToPoint(7)
	assert.Equal(t, 0, set.Index())
}

func TestSnapToPointSkipsMotion(t *testing.T) {
	tr := &Transform{Position: mgl64.Vec3{3, 3, 3}}
	timed := Axis3{Use: [3]bool{true, false, true}, Duration: [3]float64{1, 1, 1}}
	set := NewPointSet(tr,
		Point{Position: mgl64.Vec3{1, 2, 0.5}, PositionAxes: timed, Euler: mgl64.Vec3{0, 0, 15}, RotationAxes: timed},
	)
	set.SetToPoint(0)
	set.Step(0.1)
	require.True(t, set.Moving())

	set.SnapToPoint(0)
	assert.False(t, set.Moving())
	assert.Equal(t, 0, set.Index())
	assert.Equal(t, mgl64.Vec3{1, 3, 0.5}, tr.Position, "skipped axis holds")
	assert.Equal(t, 15.0, tr.Euler[2])
}
