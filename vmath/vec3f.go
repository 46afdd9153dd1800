package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in world units
// Used for aim rays and lock offsets
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return V3FDot(v, v)
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// ClosestOnRay projects p onto the ray origin+t*dir, t >= 0
// dir must be normalized; returns the closest point and its parameter t
func ClosestOnRay(origin, dir, p Vec3F) (Vec3F, float64) {
	t := V3FDot(V3FSub(p, origin), dir)
	if t < 0 {
		t = 0
	}
	return V3FAdd(origin, V3FScale(dir, t)), t
}
