package tween

import (
	"testing"
)

func TestQuadBezRaise(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	c := q.Raise()
	const epsilon = 1e-12
	const n = 10

	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, q.Eval(ts), c.Eval(ts), epsilon)
	}
}

func TestLowerQuadInvertsRaise(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	got := lowerQuad(q.Raise())
	const epsilon = 1e-12
	assertNear(t, got.P0, q.P0, epsilon)
	assertNear(t, got.P1, q.P1, epsilon)
	assertNear(t, got.P2, q.P2, epsilon)
}
