package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
	Right   = mgl64.Vec3{1, 0, 0}
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// InverseLerp returns where v sits between a and b, clamped to [0,1].
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return Clamp01((v - a) / (b - a))
}

// MoveTowards steps current toward target by at most maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// NormalizeAngle wraps degrees into (-180, 180].
func NormalizeAngle(deg float64) float64 {
	for deg > 180 {
		deg -= 360
	}
	for deg <= -180 {
		deg += 360
	}
	return deg
}

// DeltaAngle is the shortest signed difference from a to b in degrees.
func DeltaAngle(a, b float64) float64 {
	return NormalizeAngle(b - a)
}

// LerpAngle interpolates degrees along the shortest arc.
func LerpAngle(a, b, t float64) float64 {
	return a + DeltaAngle(a, b)*Clamp01(t)
}

// Smoothstep eases t in and out.
func Smoothstep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = Clamp01(t)
	return a.Add(b.Sub(a).Mul(t))
}

func SqrLen(v mgl64.Vec3) float64 {
	return v.Dot(v)
}

// Flatten drops the vertical component.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// YawRotation builds a rotation of deg degrees about the up axis.
func YawRotation(deg float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(deg), Up)
}

// LookRotation returns the yaw-only rotation whose forward axis points along
// dir projected onto the ground plane. A zero direction yields identity.
func LookRotation(dir mgl64.Vec3) mgl64.Quat {
	flat := Flatten(dir)
	if SqrLen(flat) == 0 {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatRotate(math.Atan2(flat[0], flat[2]), Up)
}

// ForwardOf rotates the +Z axis by q.
func ForwardOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Forward)
}

// QuatAngle is the angle in degrees between two rotations.
func QuatAngle(a, b mgl64.Quat) float64 {
	d := math.Abs(a.Dot(b))
	if d > 1 {
		d = 1
	}
	return mgl64.RadToDeg(2 * math.Acos(d))
}

// Slerp interpolates along the shortest arc with t clamped to [0,1].
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	t = Clamp01(t)
	if a.Dot(b) < 0 {
		b = mgl64.Quat{W: -b.W, V: b.V.Mul(-1)}
	}
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	return mgl64.QuatSlerp(a, b, t).Normalize()
}

// YawOf returns the heading of q in degrees, measured from +Z toward +X.
func YawOf(q mgl64.Quat) float64 {
	f := ForwardOf(q)
	return mgl64.RadToDeg(math.Atan2(f[0], f[2]))
}
