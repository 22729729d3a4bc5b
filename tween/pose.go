package tween

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/fireteam/common"
	"github.com/milk9111/fireteam/task"
)

// Transform is a local pose: position plus euler angles in degrees.
type Transform struct {
	Position mgl64.Vec3
	Euler    mgl64.Vec3
}

// Axis3 selects and times one axis group of a Point.
type Axis3 struct {
	Use      [3]bool
	Duration [3]float64
}

// AllAxes uses every axis and snaps them.
func AllAxes() Axis3 {
	return Axis3{Use: [3]bool{true, true, true}}
}

// Point is a pose target whose axes can be moved independently, each over
// its own duration. Linear=false eases with smoothstep.
type Point struct {
	Position       mgl64.Vec3
	PositionAxes   Axis3
	PositionLinear bool

	Euler          mgl64.Vec3
	RotationAxes   Axis3
	RotationLinear bool
}

func (p Point) animated() bool {
	for i := 0; i < 3; i++ {
		if p.PositionAxes.Use[i] && p.PositionAxes.Duration[i] > 0 {
			return true
		}
		if p.RotationAxes.Use[i] && p.RotationAxes.Duration[i] > 0 {
			return true
		}
	}
	return false
}

// Pose moves a Transform toward a Point.
type Pose struct {
	Target *Transform
	Point  Point

	startPos, targetPos     mgl64.Vec3
	startEuler, targetEuler mgl64.Vec3
	elapsed                 float64
	started                 bool
}

func NewPose(target *Transform, p Point) *Pose {
	return &Pose{Target: target, Point: p}
}

func (p *Pose) begin() {
	p.started = true
	p.startPos = p.Target.Position
	p.startEuler = p.Target.Euler
	p.targetPos = p.startPos
	p.targetEuler = p.startEuler
	for i := 0; i < 3; i++ {
		if p.Point.PositionAxes.Use[i] {
			p.targetPos[i] = p.Point.Position[i]
		}
		if p.Point.RotationAxes.Use[i] {
			p.targetEuler[i] = p.Point.Euler[i]
		}
	}
}

func (p *Pose) Step(dt float64) bool {
	if p.Target == nil {
		return true
	}
	if !p.started {
		p.begin()
		if !p.Point.animated() {
			p.Target.Position = p.targetPos
			p.Target.Euler = p.targetEuler
			return true
		}
	}
	p.elapsed += dt

	done := true
	pos := p.Target.Position
	euler := p.Target.Euler
	for i := 0; i < 3; i++ {
		if p.Point.PositionAxes.Use[i] {
			t := progress(p.elapsed, p.Point.PositionAxes.Duration[i], !p.Point.PositionLinear)
			pos[i] = common.Lerp(p.startPos[i], p.targetPos[i], t)
			if t < 1 {
				done = false
			} else {
				pos[i] = p.targetPos[i]
			}
		}
		if p.Point.RotationAxes.Use[i] {
			t := progress(p.elapsed, p.Point.RotationAxes.Duration[i], !p.Point.RotationLinear)
			euler[i] = common.LerpAngle(p.startEuler[i], p.targetEuler[i], t)
			if t < 1 {
				done = false
			} else {
				euler[i] = p.targetEuler[i]
			}
		}
	}
	p.Target.Position = pos
	p.Target.Euler = euler
	return done
}

// PointSet cycles a transform through a list of points. Selecting a point
// cancels any motion still in flight.
type PointSet struct {
	Target *Transform
	Points []Point

	index int
	slot  task.Slot
}

func NewPointSet(target *Transform, points ...Point) *PointSet {
	return &PointSet{Target: target, Points: points, index: -1}
}

// Index is the last selected point, or -1.
func (s *PointSet) Index() int {
	return s.index
}

// SetToPoint starts moving toward points[i]. Out of range indexes are ignored.
func (s *PointSet) SetToPoint(i int) {
	if i < 0 || i >= len(s.Points) {
		return
	}
	s.index = i
	s.slot.Start(NewPose(s.Target, s.Points[i]))
}

// SnapToPoint places the transform on points[i] at once, cancelling any
// motion in flight.
func (s *PointSet) SnapToPoint(i int) {
	if i < 0 || i >= len(s.Points) {
		return
	}
	s.slot.Cancel()
	s.index = i
	p := s.Points[i]
	p.PositionAxes.Duration = [3]float64{}
	p.RotationAxes.Duration = [3]float64{}
	NewPose(s.Target, p).Step(0)
}

// NextPoint advances cyclically.
func (s *PointSet) NextPoint() {
	if len(s.Points) == 0 {
		return
	}
	s.SetToPoint((s.index + 1) % len(s.Points))
}

func (s *PointSet) Moving() bool {
	return s.slot.Busy()
}

func (s *PointSet) Step(dt float64) {
	s.slot.Step(dt)
}
