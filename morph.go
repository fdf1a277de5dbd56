package tween

import (
	"fmt"
	"slices"
)

// Morph interpolates between two paths. The segment correspondence is
// computed once by [NewMorph], so evaluating many frames of the same
// animation only pays for the per-segment interpolation.
type Morph struct {
	from []PathSegment
	to   []PathSegment
}

// NewMorph prepares an interpolation from one path to another.
//
// If the paths have different numbers of segments, both are resampled to
// the larger count with [Path.Segmented], and each is rotated to start at
// the segment nearest to its [Path.Anchor]. Paths of equal length are
// paired index by index.
func NewMorph(from, to *Path) (*Morph, error) {
	if from == nil || to == nil || from.Len() == 0 || to.Len() == 0 {
		return nil, fmt.Errorf("morphing empty path: %w", ErrInvalidGeometry)
	}
	if from.Len() == to.Len() {
		return &Morph{from: from.segments, to: to.segments}, nil
	}

	n := max(from.Len(), to.Len())
	fromSegs, err := from.segmented(n)
	if err != nil {
		return nil, fmt.Errorf("resampling source path: %w", err)
	}
	toSegs, err := to.segmented(n)
	if err != nil {
		return nil, fmt.Errorf("resampling target path: %w", err)
	}
	fromSegs = slices.Clone(fromSegs)
	toSegs = slices.Clone(toSegs)
	reorder(fromSegs, from.Anchor())
	reorder(toSegs, to.Anchor())
	return &Morph{from: fromSegs, to: toSegs}, nil
}

// Len returns the number of segments of every frame.
func (m *Morph) Len() int { return len(m.from) }

// At returns the frame at progress t. t = 0 and t = 1 return the resampled
// and reordered source and target. t may lie outside [0, 1] for overshooting
// timing curves.
func (m *Morph) At(t float64) *Path {
	out := make([]PathSegment, len(m.from))
	for i := range m.from {
		out[i] = m.from[i].Lerp(m.to[i], t)
	}
	p, _ := NewPathFromSegments(out)
	return p
}

// Lerp interpolates between p and to. See [NewMorph].
func (p *Path) Lerp(to *Path, t float64) (*Path, error) {
	m, err := NewMorph(p, to)
	if err != nil {
		return nil, err
	}
	return m.At(t), nil
}

// InterpolatePath interpolates between two drawing command sequences at
// progress t.
func InterpolatePath(from, to BezPath, t float64) (*Path, error) {
	fp, err := from.Path()
	if err != nil {
		return nil, fmt.Errorf("source path: %w", err)
	}
	tp, err := to.Path()
	if err != nil {
		return nil, fmt.Errorf("target path: %w", err)
	}
	return fp.Lerp(tp, t)
}
