package tween

// Line represents a line segment.
type Line struct {
	/// The line's start point.
	P0 Point
	/// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Raise returns the line as a cubic whose inner control points sit at one
// and two thirds of the way along it. The cubic is parametrized uniformly,
// like the line itself.
func (l Line) Raise() CubicBez {
	return CubicBez{
		l.P0,
		l.P0.Lerp(l.P1, 1.0/3.0),
		l.P0.Lerp(l.P1, 2.0/3.0),
		l.P1,
	}
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Transform(aff Affine) Line {
	return Line{
		l.P0.Transform(aff),
		l.P1.Transform(aff),
	}
}
