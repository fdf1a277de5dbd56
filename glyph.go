package tween

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphPath converts a glyph outline to drawing commands. Every contour is
// closed, so that morphing between glyphs pairs up closing segments.
//
// Glyph coordinates are y-down with the origin on the baseline, so most
// points of a glyph have negative y.
func GlyphPath(segs sfnt.Segments) BezPath {
	out := make(BezPath, 0, len(segs)+len(segs)/8)
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				out.ClosePath()
			}
			out.MoveTo(fixedPoint(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			out.LineTo(fixedPoint(seg.Args[0]))
			open = true
		case sfnt.SegmentOpQuadTo:
			out.QuadTo(fixedPoint(seg.Args[0]), fixedPoint(seg.Args[1]))
			open = true
		case sfnt.SegmentOpCubeTo:
			out.CubicTo(fixedPoint(seg.Args[0]), fixedPoint(seg.Args[1]), fixedPoint(seg.Args[2]))
			open = true
		}
	}
	if open {
		out.ClosePath()
	}
	return out
}

// LoadGlyphPath loads the outline of r from f at ppem pixels per em.
// Runes that f has no glyph for, and glyphs without an outline such as a
// space, result in [ErrInvalidGeometry].
func LoadGlyphPath(f *sfnt.Font, r rune, ppem float64) (BezPath, error) {
	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, r)
	if err != nil {
		return nil, fmt.Errorf("glyph index of %q: %w", r, err)
	}
	if gid == 0 {
		return nil, fmt.Errorf("font has no glyph for %q: %w", r, ErrInvalidGeometry)
	}
	segs, err := f.LoadGlyph(&buf, gid, fixed.Int26_6(ppem*64), nil)
	if err != nil {
		return nil, fmt.Errorf("loading glyph %q: %w", r, err)
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("glyph %q has no outline: %w", r, ErrInvalidGeometry)
	}
	return GlyphPath(segs), nil
}

func fixedPoint(p fixed.Point26_6) Point {
	return Point{
		X: float64(p.X) / 64,
		Y: float64(p.Y) / 64,
	}
}
