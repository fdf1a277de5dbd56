package tween

import (
	"fmt"
	"math"
)

// circleArm is the control arm length, relative to the radius, of a cubic
// that approximates a quarter circle with minimal radial error.
//
// See http://spencermortensen.com/articles/bezier-circle/
const circleArm = 0.551915024494

// CubicBez is a cubic Bézier curve. The array is the only storage for the
// control points; [CubicBez.P0] through [CubicBez.P3] read from it.
//
// As a timing curve, x is elapsed time and y is output progress, and the
// endpoints are conventionally (0, 0) and (1, 1).
type CubicBez [4]Point

// NewCubicBez returns a cubic from two, three or four control points.
//
// Two points are the inner control points of a timing curve running from
// (0, 0) to (1, 1). Three points describe a quadratic curve, which is raised
// to a cubic. Four points are used as is. Any other number of points results
// in [ErrInvalidGeometry].
func NewCubicBez(points ...Point) (CubicBez, error) {
	switch len(points) {
	case 2:
		return CubicBez{Pt(0, 0), points[0], points[1], Pt(1, 1)}, nil
	case 3:
		return QuadBez{points[0], points[1], points[2]}.Raise(), nil
	case 4:
		return CubicBez{points[0], points[1], points[2], points[3]}, nil
	default:
		return CubicBez{}, fmt.Errorf("cubic with %d control points: %w", len(points), ErrInvalidGeometry)
	}
}

func (c CubicBez) P0() Point { return c[0] }
func (c CubicBez) P1() Point { return c[1] }
func (c CubicBez) P2() Point { return c[2] }
func (c CubicBez) P3() Point { return c[3] }

func (c CubicBez) Start() Point { return c[0] }
func (c CubicBez) End() Point   { return c[3] }

// WithPoint returns a copy of c with control point i replaced by pt.
func (c CubicBez) WithPoint(i int, pt Point) (CubicBez, error) {
	if i < 0 || i >= len(c) {
		return c, fmt.Errorf("control point index %d: %w", i, ErrInvalidGeometry)
	}
	c[i] = pt
	return c, nil
}

func (c CubicBez) IsInf() bool {
	return c[0].IsInf() || c[1].IsInf() || c[2].IsInf() || c[3].IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c[0].IsNaN() || c[1].IsNaN() || c[2].IsNaN() || c[3].IsNaN()
}

func (c CubicBez) String() string {
	return fmt.Sprintf("CubicBez(%s, %s, %s, %s)", c[0], c[1], c[2], c[3])
}

// Eval evaluates the curve at t using the Bernstein form. Unlike
// [CubicBez.PointOnCurve], t is not clamped.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c[0]).Mul(mt * mt * mt)
	b := Vec2(c[1]).Mul(mt * mt * 3.0)
	cc := Vec2(c[2]).Mul(mt * 3.0)
	d := Vec2(c[3])
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// PointOnCurve evaluates the curve at parameter t, returning x as the
// relative time and y as the relative value.
//
// t is clamped: for t ≤ 0 the result is exactly the start point and for
// t ≥ 1 it is exactly the end point. Timing curves never leave the animated
// range this way, even when callers overshoot.
func (c CubicBez) PointOnCurve(t float64) Progress {
	if t <= 0 {
		return Progress{RelativeTime: c[0].X, RelativeValue: c[0].Y}
	}
	if t >= 1 {
		return Progress{RelativeTime: c[3].X, RelativeValue: c[3].Y}
	}
	x, y := c.polynomials()
	return Progress{RelativeTime: x.eval(t), RelativeValue: y.eval(t)}
}

// Coefficients returns the monomial coefficients of both axes, such that
// x(t) = x[0] + x[1] t + x[2] t² + x[3] t³, and likewise for y.
func (c CubicBez) Coefficients() (x, y [4]float64) {
	px, py := c.polynomials()
	return [4]float64{px.d, px.c, px.b, px.a}, [4]float64{py.d, py.c, py.b, py.a}
}

func (c CubicBez) polynomials() (x, y cubicPoly) {
	x = newCubicPoly(c[0].X, c[1].X, c[2].X, c[3].X)
	y = newCubicPoly(c[0].Y, c[1].Y, c[2].Y, c[3].Y)
	return x, y
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	return c.split(0.5)
}

// split divides the curve at t using de Casteljau's construction.
func (c CubicBez) split(t float64) (CubicBez, CubicBez) {
	p01 := c[0].Lerp(c[1], t)
	p12 := c[1].Lerp(c[2], t)
	p23 := c[2].Lerp(c[3], t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	pm := p012.Lerp(p123, t)
	return CubicBez{c[0], p01, p012, pm}, CubicBez{pm, p123, p23, c[3]}
}

// Segmented splits the curve into n consecutive cubics that trace the same
// shape. The k-th split happens at 1/(n−k) of the remaining curve, so the
// pieces are of equal parameter length. The first piece starts exactly at
// the start point and the last ends exactly at the end point.
//
// n < 1 results in [ErrInvalidGeometry].
func (c CubicBez) Segmented(n int) ([]CubicBez, error) {
	if n < 1 {
		return nil, fmt.Errorf("segmenting cubic into %d pieces: %w", n, ErrInvalidGeometry)
	}
	out := make([]CubicBez, 0, n)
	c.appendSegmented(n, func(piece CubicBez) { out = append(out, piece) })
	return out, nil
}

func (c CubicBez) appendSegmented(n int, emit func(CubicBez)) {
	rest := c
	for k := n; k > 1; k-- {
		var left CubicBez
		left, rest = rest.split(1 / float64(k))
		emit(left)
	}
	emit(rest)
}

// CircleApproximation returns a quarter ellipse from the start point to the
// end point, centered on (P0.X, P3.Y). For a square bounding box the result
// is the usual four-arc circle approximation.
func (c CubicBez) CircleApproximation() CubicBez {
	p0, p3 := c[0], c[3]
	return CubicBez{
		p0,
		Pt(p0.X+circleArm*(p3.X-p0.X), p0.Y),
		Pt(p3.X, p3.Y+circleArm*(p0.Y-p3.Y)),
		p3,
	}
}

// ControlBox returns the smallest rectangle enclosing all control points,
// which also encloses the curve.
func (c CubicBez) ControlBox() Rect {
	r := Rect{c[0].X, c[0].Y, c[0].X, c[0].Y}
	for _, pt := range c[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		c[0].Transform(aff),
		c[1].Transform(aff),
		c[2].Transform(aff),
		c[3].Transform(aff),
	}
}

// Lerp interpolates each control point independently.
func (c CubicBez) Lerp(o CubicBez, t float64) CubicBez {
	return CubicBez{
		c[0].Lerp(o[0], t),
		c[1].Lerp(o[1], t),
		c[2].Lerp(o[2], t),
		c[3].Lerp(o[3], t),
	}
}

// cubicPoly is a monomial a t³ + b t² + c t + d.
type cubicPoly struct {
	a, b, c, d float64
}

// newCubicPoly expands the Bernstein coefficients of one axis.
func newCubicPoly(x0, x1, x2, x3 float64) cubicPoly {
	return cubicPoly{
		a: x3 - 3.0*x2 + 3.0*x1 - x0,
		b: 3.0*x2 - 6.0*x1 + 3.0*x0,
		c: 3.0*x1 - 3.0*x0,
		d: x0,
	}
}

func (p cubicPoly) eval(t float64) float64 {
	return ((p.a*t+p.b)*t+p.c)*t + p.d
}

func (p cubicPoly) deriv(t float64) float64 {
	return (3.0*p.a*t+2.0*p.b)*t + p.c
}
