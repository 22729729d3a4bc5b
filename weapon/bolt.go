package weapon

import (
	"github.com/milk9111/fireteam/prefabs"
	"github.com/milk9111/fireteam/tween"
)

func axesFromSpec(s prefabs.AxesSpec) tween.Axis3 {
	d := s.Duration.Vec()
	return tween.Axis3{
		Use:      [3]bool{!s.Skip[0], !s.Skip[1], !s.Skip[2]},
		Duration: [3]float64{d[0], d[1], d[2]},
	}
}

func pointFromSpec(s prefabs.PosePointSpec) tween.Point {
	return tween.Point{
		Position:       s.Position.Vec(),
		PositionAxes:   axesFromSpec(s.PositionAxes),
		PositionLinear: s.PositionLinear,
		Euler:          s.Rotation.Vec(),
		RotationAxes:   axesFromSpec(s.RotationAxes),
		RotationLinear: s.RotationLinear,
	}
}

// newBolt builds the bolt rig. Point 0 is the rest pose; every shot walks
// the remaining points and returns to rest.
func newBolt(specs []prefabs.PosePointSpec) (*tween.PointSet, *tween.Transform) {
	pose := &tween.Transform{}
	points := make([]tween.Point, 0, len(specs))
	for _, s := range specs {
		points = append(points, pointFromSpec(s))
	}
	return tween.NewPointSet(pose, points...), pose
}

// cycleBolt kicks the bolt back for a shot.
func (w *Weapon) cycleBolt() {
	if len(w.bolt.Points) < 2 {
		return
	}
	w.bolt.SetToPoint(1)
}

// stepBolt runs the bolt and moves on to the next point whenever one
// settles, stopping at rest.
func (w *Weapon) stepBolt(dt float64) {
	w.bolt.Step(dt)
	if !w.bolt.Moving() && w.bolt.Index() > 0 {
		w.bolt.NextPoint()
		w.bolt.Step(0)
	}
}

// Bolt is the bolt's local pose.
func (w *Weapon) Bolt() tween.Transform { return *w.boltPose }

// BoltCycling reports whether the bolt is away from rest.
func (w *Weapon) BoltCycling() bool { return w.bolt.Index() > 0 || w.bolt.Moving() }
