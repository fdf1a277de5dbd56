package tween

import (
	"iter"
	"math"
)

// Arc is a section of an ellipse, drawn from StartAngle over SweepAngle
// radians. A positive sweep runs clockwise in a y-down space.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// PathElements approximates the arc with one cubic per quarter turn or
// part thereof, preceded by a move to the start of the arc.
func (a Arc) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		p0 := sampleEllipse(a.Radii, a.XRotation, a.StartAngle)
		if !yield(MoveTo(a.Center.Translate(p0))) {
			return
		}
		for el := range a.cubics() {
			if !yield(el) {
				return
			}
		}
	}
}

// cubics is like PathElements without the initial move, for appending the
// arc to a path that already ends at its start.
func (a Arc) cubics() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		n := max(math.Ceil(math.Abs(a.SweepAngle)/(math.Pi/2)), 1)
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle
		p0 := sampleEllipse(a.Radii, a.XRotation, angle0)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(a.Radii, a.XRotation, angle1)
			p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, angle1+math.Pi/2).Mul(armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			)) {
				return
			}
		}
	}
}

// sampleEllipse returns the point at angle on an ellipse centered on the
// origin with the given radii, rotated by xRotation.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(Vec2{u, v}, xRotation)
}

func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

// svgArc converts the endpoint parameterization of an SVG arc command to
// an [Arc]. xRotation is in radians. It reports false if the arc
// degenerates to a straight line, which SVG draws in its place.
//
// See https://www.w3.org/TR/SVG11/implnote.html#ArcConversionEndpointToCenter
func svgArc(from, to Point, radii Vec2, xRotation float64, largeArc, sweep bool) (Arc, bool) {
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	if rx <= 1e-5 || ry <= 1e-5 || from == to {
		return Arc{}, false
	}
	xr := math.Mod(xRotation, 2*math.Pi)
	sinPhi, cosPhi := math.Sincos(xr)
	hd := from.Sub(to).Mul(0.5)
	hs := Vec2(from.Midpoint(to))
	p := Vec(cosPhi*hd.X+sinPhi*hd.Y, -sinPhi*hd.X+cosPhi*hd.Y)

	// Radii too small to span the endpoints are scaled up.
	if rf := p.X*p.X/(rx*rx) + p.Y*p.Y/(ry*ry); rf > 1 {
		rx *= math.Sqrt(rf)
		ry *= math.Sqrt(rf)
	}

	rxry := rx * ry
	rxpy := rx * p.Y
	rypx := ry * p.X
	sumOfSq := rxpy*rxpy + rypx*rypx

	sign := 1.0
	if largeArc == sweep {
		sign = -1
	}
	coe := sign * math.Sqrt(math.Abs((rxry*rxry-sumOfSq)/sumOfSq))
	tcx := coe * rxpy / ry
	tcy := -coe * rypx / rx

	center := Pt(cosPhi*tcx-sinPhi*tcy+hs.X, sinPhi*tcx+cosPhi*tcy+hs.Y)
	startV := Vec((p.X-tcx)/rx, (p.Y-tcy)/ry)
	endV := Vec((-p.X-tcx)/rx, (-p.Y-tcy)/ry)
	startAngle := math.Atan2(startV.Y, startV.X)
	sweepAngle := math.Mod(math.Atan2(endV.Y, endV.X)-startAngle, 2*math.Pi)
	if sweep && sweepAngle < 0 {
		sweepAngle += 2 * math.Pi
	} else if !sweep && sweepAngle > 0 {
		sweepAngle -= 2 * math.Pi
	}
	return Arc{
		Center:     center,
		Radii:      Vec(rx, ry),
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
		XRotation:  xRotation,
	}, true
}
