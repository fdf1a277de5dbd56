package tween

import (
	"iter"
	"math"
	"slices"
)

// Star is a regular star polygon whose tips lie on a circle of OuterRadius
// and whose inner corners lie on a circle of InnerRadius.
type Star struct {
	Center      Point
	Points      int
	OuterRadius float64
	InnerRadius float64
}

// NewStar returns a star with the given number of points whose inner radius
// is 0.382 times the outer one, the ratio of a regular pentagram.
func NewStar(center Point, points int, radius float64) Star {
	return Star{
		Center:      center,
		Points:      points,
		OuterRadius: radius,
		InnerRadius: radius * 0.382,
	}
}

func (s Star) Path() BezPath { return slices.Collect(s.PathElements()) }

// PathElements outlines the star with 2×Points lines, starting at the tip
// that points up in a y-down space. Stars with fewer than two points
// produce no elements.
func (s Star) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if s.Points < 2 {
			return
		}
		theta := math.Pi / float64(s.Points)
		for i := range 2 * s.Points {
			r := s.OuterRadius
			if i%2 == 1 {
				r = s.InnerRadius
			}
			pt := pointOnCircle(s.Center, r, float64(i)*theta-math.Pi/2)
			el := LineTo(pt)
			if i == 0 {
				el = MoveTo(pt)
			}
			if !yield(el) {
				return
			}
		}
		yield(ClosePath())
	}
}

func (s Star) BoundingBox() Rect {
	return Circle{s.Center, max(math.Abs(s.OuterRadius), math.Abs(s.InnerRadius))}.BoundingBox()
}
