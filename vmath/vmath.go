// Package vmath holds the small float helpers shared by the camera, input and renderers
package vmath

import "math"

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp returns a + (b-a)*t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Distance returns the euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Midpoint returns the center of two points
func Midpoint(x1, y1, x2, y2 float64) (float64, float64) {
	return (x1 + x2) / 2, (y1 + y2) / 2
}

// SmoothStep is the cubic hermite ease on [0,1]
func SmoothStep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// NearlyEqual reports |a-b| <= eps
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// HeartPoint returns the parametric heart curve at t, y pointing down the screen
// Extent is roughly [-16,16] horizontally and [-17,12] vertically
func HeartPoint(t float64) (float64, float64) {
	s := math.Sin(t)
	x := 16 * s * s * s
	y := -(13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t))
	return x, y
}
