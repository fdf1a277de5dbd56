package tween

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Raise raises the order by 1, returning a cubic Bézier segment that exactly
// represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

// lowerQuad recovers the quadratic control point from a cubic produced by
// [QuadBez.Raise]. For cubics that aren't degree-raised quadratics, the
// result is the average of the two candidates.
func lowerQuad(c CubicBez) QuadBez {
	a := c[0].Translate(c[1].Sub(c[0]).Mul(1.5))
	b := c[3].Translate(c[2].Sub(c[3]).Mul(1.5))
	return QuadBez{c[0], a.Midpoint(b), c[3]}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		q.P0.Transform(aff),
		q.P1.Transform(aff),
		q.P2.Transform(aff),
	}
}
