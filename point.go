package tween

import (
	"fmt"
	"math"
)

// Point is a control point or a position in a path. Two points are equal
// only if their coordinates are exactly equal.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns pt moved by o.
func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Add is an alias for [Point.Translate].
func (pt Point) Add(o Vec2) Point {
	return pt.Translate(o)
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Add and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Scale multiplies both coordinates by f, scaling about the origin.
func (pt Point) Scale(f float64) Point {
	return Point{X: pt.X * f, Y: pt.Y * f}
}

// Lerp linearly interpolates between two points. t is not clamped, so values
// outside [0, 1] extrapolate along the line through pt and o.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Slope returns Δy/Δx from pt to o. Vertical slopes are reported as 0
// rather than infinity.
func (pt Point) Slope(o Point) float64 {
	dx := o.X - pt.X
	if dx == 0 {
		return 0
	}
	return (o.Y - pt.Y) / dx
}

// Round returns a new point with x and y rounded to the nearest integers.
func (pt Point) Round() Point {
	return Point{
		X: math.Round(pt.X),
		Y: math.Round(pt.Y),
	}
}

// roundTo rounds both coordinates to the given number of decimal places.
func (pt Point) roundTo(places int) Point {
	return Point{
		X: roundTo(pt.X, places),
		Y: roundTo(pt.Y, places),
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

func roundTo(f float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(f*scale) / scale
}
