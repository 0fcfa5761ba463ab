package calc

import "math"

// Vec3 is a 3-component position. For geodetic positions the components are
// latitude (radians), longitude (radians), altitude (meters); for relative
// Cartesian positions they are x/y/z offsets in meters; for ECEF positions
// they are meters from the earth center.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Scale returns v with each component multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Scale(1 / length)
}

// defaultTolerance matches the comparison tolerance used throughout the
// shape tests; positions survive a degree/radian round trip within it.
const defaultTolerance = 1e-6

// AreEqual reports whether a and b are within the default tolerance.
func AreEqual(a, b float64) bool {
	return math.Abs(a-b) < defaultTolerance
}

// VecsAreEqual reports whether each component of a and b is within the
// default tolerance.
func VecsAreEqual(a, b Vec3) bool {
	return AreEqual(a.X, b.X) && AreEqual(a.Y, b.Y) && AreEqual(a.Z, b.Z)
}
