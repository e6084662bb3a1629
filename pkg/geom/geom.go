// Package geom provides the vector and fixed-point helpers shared by the
// camera checks.
package geom

import "math"

// Vec3 is a point or direction in scene coordinates.
type Vec3 struct {
	X, Y, Z float64
}

// Shift is the integer planar pan offset of the landscape. Both components
// live on a toroidal domain, so deltas must be unwrapped before comparison.
type Shift struct {
	X, Y int
}

const degToRad = math.Pi / 180

// Radians converts degrees to radians as deg * (pi/180), with pi/180 rounded
// once. Pan steps at multiples of 30° depend on the last bit.
func Radians(deg float64) float64 {
	return deg * degToRad
}

// DistXY returns the distance between a and b projected onto the XY plane.
func DistXY(a, b Vec3) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// RoundHalfAwayFromZero rounds x to the nearest integer, with halves rounded
// away from zero (0.5 -> 1, -0.5 -> -1).
//
// x+0.5 is evaluated in float64 before flooring, so values one ulp short of a
// half, such as sin(30°) = 0.49999999999999994, round up too. The camera
// computes its pan step in float32, where those values are exactly 0.5.
func RoundHalfAwayFromZero(x float64) int {
	if x >= 0 {
		return int(math.Floor(x + 0.5))
	}
	return int(math.Ceil(x - 0.5))
}

// UnwrapDelta maps a raw delta on a toroidal axis of the given period onto
// [-period/2, period/2]. Values exactly on the boundary are left unchanged.
func UnwrapDelta(d, period int) int {
	half := period / 2
	if d > half {
		d -= period
	}
	if d < -half {
		d += period
	}
	return d
}

// ShiftStep returns the expected shift delta for a unit step (dx, dy) in the
// camera's local right/forward basis when the camera yaw is angleZ degrees.
func ShiftStep(dx, dy int, angleZ float64) (int, int) {
	az := Radians(angleZ)
	fx, fy := float64(dx), float64(dy)
	gx := -fx*math.Cos(az) - fy*math.Sin(az)
	gy := fx*math.Sin(az) - fy*math.Cos(az)
	return RoundHalfAwayFromZero(gx), RoundHalfAwayFromZero(gy)
}

// Delta returns s-prev per axis, unwrapped on a domain of the given period.
func (s Shift) Delta(prev Shift, period int) Shift {
	return Shift{
		X: UnwrapDelta(s.X-prev.X, period),
		Y: UnwrapDelta(s.Y-prev.Y, period),
	}
}
