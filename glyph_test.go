package tween

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func loadGoRegular(t testing.TB) *sfnt.Font {
	t.Helper()
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestGlyphPath(t *testing.T) {
	pt := func(x, y fixed.Int26_6) [3]fixed.Point26_6 {
		return [3]fixed.Point26_6{{X: x, Y: y}}
	}
	segs := sfnt.Segments{
		{Op: sfnt.SegmentOpMoveTo, Args: pt(64, 128)},
		{Op: sfnt.SegmentOpLineTo, Args: pt(128, 128)},
		{Op: sfnt.SegmentOpQuadTo, Args: [3]fixed.Point26_6{{X: 160, Y: 64}, {X: 128, Y: 0}}},
		{Op: sfnt.SegmentOpMoveTo, Args: pt(-32, 0)},
		{Op: sfnt.SegmentOpCubeTo, Args: [3]fixed.Point26_6{{X: 0, Y: 32}, {X: 32, Y: 32}, {X: 64, Y: 0}}},
	}
	want := BezPath{
		MoveTo(Pt(1, 2)),
		LineTo(Pt(2, 2)),
		QuadTo(Pt(2.5, 1), Pt(2, 0)),
		ClosePath(),
		MoveTo(Pt(-0.5, 0)),
		CubicTo(Pt(0, 0.5), Pt(0.5, 0.5), Pt(1, 0)),
		ClosePath(),
	}
	diff(t, want, GlyphPath(segs))
	diff(t, BezPath{}, GlyphPath(nil))
}

func TestLoadGlyphPath(t *testing.T) {
	f := loadGoRegular(t)
	p, err := LoadGlyphPath(f, 'O', 64)
	if err != nil {
		t.Fatal(err)
	}
	var moves, closes int
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			moves++
		case ClosePathKind:
			closes++
		}
	}
	// The outer and the inner contour.
	if moves != 2 || closes != 2 {
		t.Errorf("got %d moves and %d closes, want 2 each", moves, closes)
	}
	// Glyphs sit above the baseline, at negative y.
	if box := p.ControlBox(); box.Y0 >= 0 || box.Height() > 64 {
		t.Errorf("got control box %v", box)
	}
}

func TestLoadGlyphPathInvalid(t *testing.T) {
	f := loadGoRegular(t)
	for _, r := range []rune{' ', '\U0001F600'} {
		if _, err := LoadGlyphPath(f, r, 64); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("%q: got error %v, want ErrInvalidGeometry", r, err)
		}
	}
}

func TestMorphGlyphs(t *testing.T) {
	f := loadGoRegular(t)
	var paths []*Path
	for _, r := range []rune{'c', 'O'} {
		p, err := LoadGlyphPath(f, r, 32)
		if err != nil {
			t.Fatal(err)
		}
		paths = append(paths, mustPath(t, p))
	}
	m, err := NewMorph(paths[0], paths[1])
	if err != nil {
		t.Fatal(err)
	}
	if bp := m.At(0.5).BezPath(); bp.IsNaN() || bp.IsInf() {
		t.Errorf("got %s", bp.SVG(SVGOptions{}))
	}
}
