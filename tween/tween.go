// Package tween holds timed interpolations that run as tasks.
//
// Every tween captures its start value on the first step and writes a
// complete value on every step after that, so dropping it mid-flight never
// leaves a half-written pose behind.
package tween

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/fireteam/common"
)

// progress returns the eased fraction for elapsed/duration. A non-positive
// duration is treated as already complete.
func progress(elapsed, duration float64, smooth bool) float64 {
	if duration <= 0 {
		return 1
	}
	t := common.Clamp01(elapsed / duration)
	if smooth {
		return common.Smoothstep(t)
	}
	return t
}

// Vec3 moves a vector from its value at the first step to To.
type Vec3 struct {
	Get      func() mgl64.Vec3
	Set      func(mgl64.Vec3)
	To       mgl64.Vec3
	Duration float64
	Smooth   bool

	from    mgl64.Vec3
	elapsed float64
	started bool
}

func (v *Vec3) Step(dt float64) bool {
	if !v.started {
		v.started = true
		if v.Get != nil {
			v.from = v.Get()
		}
	}
	v.elapsed += dt
	t := progress(v.elapsed, v.Duration, v.Smooth)
	if v.Set != nil {
		if t >= 1 {
			v.Set(v.To)
		} else {
			v.Set(common.LerpVec3(v.from, v.To, t))
		}
	}
	return t >= 1
}

// Angle turns a heading in degrees along the shortest arc.
type Angle struct {
	Get      func() float64
	Set      func(float64)
	To       float64
	Duration float64

	from    float64
	elapsed float64
	started bool
}

func (a *Angle) Step(dt float64) bool {
	if !a.started {
		a.started = true
		if a.Get != nil {
			a.from = a.Get()
		}
	}
	a.elapsed += dt
	t := progress(a.elapsed, a.Duration, false)
	if a.Set != nil {
		if t >= 1 {
			a.Set(a.To)
		} else {
			a.Set(common.LerpAngle(a.from, a.To, t))
		}
	}
	return t >= 1
}

// Scalar is a linear float tween.
type Scalar struct {
	Get      func() float64
	Set      func(float64)
	To       float64
	Duration float64

	from    float64
	elapsed float64
	started bool
}

func (s *Scalar) Step(dt float64) bool {
	if !s.started {
		s.started = true
		if s.Get != nil {
			s.from = s.Get()
		}
	}
	s.elapsed += dt
	t := progress(s.elapsed, s.Duration, false)
	if s.Set != nil {
		if t >= 1 {
			s.Set(s.To)
		} else {
			s.Set(common.Lerp(s.from, s.To, t))
		}
	}
	return t >= 1
}
