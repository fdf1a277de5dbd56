package tween

import (
	"iter"
	"math"
	"slices"
)

// Ellipse is an ellipse with the given radii along its axes, rotated by
// Rotation radians about its center. Rotation is clockwise in a y-down
// space.
type Ellipse struct {
	Center   Point
	Radii    Vec2
	Rotation float64
}

// NewEllipseFromRect returns the largest axis-aligned ellipse that fits in
// rect.
func NewEllipseFromRect(rect Rect) Ellipse {
	r := rect.Abs()
	return Ellipse{
		Center: r.Center(),
		Radii:  Vec(r.Width()/2, r.Height()/2),
	}
}

func (e Ellipse) Path() BezPath { return slices.Collect(e.PathElements()) }

// PathElements approximates the ellipse with four cubic arcs, starting at
// the end of the first axis, followed by a close.
func (e Ellipse) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		a := Arc{
			Center:     e.Center,
			Radii:      Vec(math.Abs(e.Radii.X), math.Abs(e.Radii.Y)),
			StartAngle: 0,
			SweepAngle: 2 * math.Pi,
			XRotation:  e.Rotation,
		}
		for el := range a.PathElements() {
			if !yield(el) {
				return
			}
		}
		yield(ClosePath())
	}
}

// BoundingBox returns the tight bounding box of the rotated ellipse.
//
// See https://www.iquilezles.org/www/articles/ellipses/ellipses.htm
func (e Ellipse) BoundingBox() Rect {
	sin, cos := math.Sincos(e.Rotation)
	rx, ry := e.Radii.X, e.Radii.Y
	rangeX := math.Hypot(rx*cos, ry*sin)
	rangeY := math.Hypot(rx*sin, ry*cos)
	return Rect{
		X0: e.Center.X - rangeX,
		Y0: e.Center.Y - rangeY,
		X1: e.Center.X + rangeX,
		Y1: e.Center.Y + rangeY,
	}
}

func (e Ellipse) Translate(v Vec2) Ellipse {
	e.Center = e.Center.Translate(v)
	return e
}

func (e Ellipse) IsInf() bool {
	return e.Center.IsInf() || e.Radii.IsInf() || math.IsInf(e.Rotation, 0)
}

func (e Ellipse) IsNaN() bool {
	return e.Center.IsNaN() || e.Radii.IsNaN() || math.IsNaN(e.Rotation)
}
