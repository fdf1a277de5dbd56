package tween

import (
	"iter"
	"math"
	"slices"
)

type Circle struct {
	Center Point
	Radius float64
}

// Path returns the circle as n cubic arcs. See [Circle.PathElements].
func (c Circle) Path(n int) BezPath { return slices.Collect(c.PathElements(n)) }

// PathElements approximates the circle with n cubic arcs, starting at the
// right-most point and running clockwise in a y-down space. n < 1 is
// treated as 4.
//
// Morphing between circles made of different numbers of arcs is a good way
// to exercise resampling, since both describe nearly the same shape.
func (c Circle) PathElements(n int) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if n < 1 {
			n = 4
		}
		var armLength float64
		if n == 4 {
			armLength = circleArm
		} else {
			armLength = (4.0 / 3.0) * math.Tan(math.Pi/2/float64(n))
		}

		x, y := c.Center.Splat()
		r := c.Radius
		if !yield(MoveTo(Pt(x+r, y))) {
			return
		}
		deltaTh := 2.0 * math.Pi / float64(n)
		for ix := 1; ix <= n; ix++ {
			a := armLength
			th1 := deltaTh * float64(ix)
			th0 := th1 - deltaTh
			s0, c0 := math.Sincos(th0)
			var s1, c1 float64
			if ix == n {
				s1 = 0.0
				c1 = 1.0
			} else {
				s1, c1 = math.Sincos(th1)
			}
			if !yield(CubicTo(
				Pt(x+r*(c0-a*s0), y+r*(s0+a*c0)),
				Pt(x+r*(c1+a*s1), y+r*(s1-a*c1)),
				Pt(x+r*c1, y+r*s1),
			)) {
				return
			}
		}
		if !yield(ClosePath()) {
			return
		}
	}
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}
