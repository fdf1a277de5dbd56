package tween

import (
	"slices"
	"testing"
)

func TestRectAbs(t *testing.T) {
	r := NewRectFromPoints(Pt(10, 0), Pt(0, 10))
	diff(t, Rect{0, 0, 10, 10}, r)
	diff(t, Pt(5, 5), r.Center())
	diff(t, Sz(10, 10), r.Size())

	r = NewRectFromOrigin(Pt(5, 5), Sz(-5, 5))
	diff(t, Rect{0, 5, 5, 10}, r)
}

func TestRectUnion(t *testing.T) {
	r := Rect{0, 0, 1, 1}
	diff(t, Rect{0, 0, 5, 3}, r.Union(Rect{2, 2, 5, 3}))
	diff(t, Rect{-1, 0, 1, 4}, r.UnionPoint(Pt(-1, 4)))

	if !r.Contains(Pt(0, 0)) {
		t.Error("rectangle doesn't contain its origin")
	}
	if r.Contains(Pt(1, 1)) {
		t.Error("rectangle contains its far corner")
	}
}

func TestRectPathElements(t *testing.T) {
	r := Rect{0, 0, 10, 5}
	got := slices.Collect(r.PathElements())
	want := []PathElement{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 0)),
		LineTo(Pt(10, 5)),
		LineTo(Pt(0, 5)),
		ClosePath(),
	}
	diff(t, want, got)
}

func TestRectLerp(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{10, 10, 30, 50}
	diff(t, Rect{5, 5, 20, 30}, a.Lerp(b, 0.5))
	diff(t, b, a.Lerp(b, 1))
}
