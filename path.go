package tween

import (
	"fmt"
	"iter"
	"log/slog"
	"math"
	"slices"
	"sync/atomic"
)

// Path is a flattened list of [PathSegment] values, grouped into subpaths
// that each begin with a move or an open subpath.
//
// A Path is immutable after construction. The only state it accumulates is
// a cache of [Path.Segmented] results, which is safe for concurrent use.
type Path struct {
	segments []PathSegment
	// subpaths holds the index of the first segment of every subpath.
	subpaths []int
	bbox     Rect

	segmentedCache atomic.Pointer[map[int][]PathSegment]
}

// NewPath builds a path from drawing commands.
//
// Drawing commands that aren't preceded by a move start a subpath at the
// origin. Drawing after a close starts a new subpath where the closed one
// began. A close with no subpath to close is ignored, unless it is the
// first element. Every close is kept as a segment, even when the subpath
// already ends at its start.
//
// An empty sequence, or one that begins with a close, results in
// [ErrInvalidGeometry].
func NewPath(seq iter.Seq[PathElement]) (*Path, error) {
	var (
		segs   []PathSegment
		start  Point
		last   Point
		open   bool
		closed bool
	)
	begin := func(pt Point) {
		segs = append(segs, MoveSegment(pt))
		start, last = pt, pt
		open, closed = true, false
	}
	for el := range seq {
		if el.Kind != MoveToKind && el.Kind != ClosePathKind && !open {
			// Either the very first element, or drawing after a close.
			begin(start)
		}
		switch el.Kind {
		case MoveToKind:
			begin(el.P0)
		case LineToKind:
			segs = append(segs, LineSegment(last, el.P0))
			last = el.P0
		case QuadToKind:
			segs = append(segs, QuadSegment(last, el.P0, el.P1))
			last = el.P1
		case CubicToKind:
			segs = append(segs, CubicSegment(last, el.P0, el.P1, el.P2))
			last = el.P2
		case ClosePathKind:
			if len(segs) == 0 {
				return nil, fmt.Errorf("path begins with ClosePath: %w", ErrInvalidGeometry)
			}
			if closed {
				continue
			}
			segs = append(segs, CloseSegment(last, start))
			last = start
			open, closed = false, true
		default:
			return nil, fmt.Errorf("path element %s: %w", el, ErrInvalidGeometry)
		}
	}
	return NewPathFromSegments(segs)
}

// NewPathFromSegments builds a path from segments that were already
// resolved, such as the output of [Path.Segmented]. The slice is retained.
//
// An empty slice results in [ErrInvalidGeometry].
func NewPathFromSegments(segs []PathSegment) (*Path, error) {
	if len(segs) == 0 {
		return nil, fmt.Errorf("empty path: %w", ErrInvalidGeometry)
	}
	p := &Path{segments: segs}
	for i, seg := range segs {
		if i == 0 || seg.Op == MoveOp || seg.Op == OpenSubpathOp {
			p.subpaths = append(p.subpaths, i)
		}
	}
	p.bbox = endpointBox(segs)
	return p, nil
}

// endpointBox returns the box enclosing the origins and destinations of
// all segments. Control points are not included.
func endpointBox(segs []PathSegment) Rect {
	r := NewRectFromPoints(segs[0].Origin, segs[0].Origin)
	for _, seg := range segs {
		r = r.UnionPoint(seg.Origin).UnionPoint(seg.Destination)
	}
	return r
}

// Len returns the number of segments.
func (p *Path) Len() int { return len(p.segments) }

// Segments returns an iterator over the path's segments.
func (p *Path) Segments() iter.Seq[PathSegment] { return slices.Values(p.segments) }

// Subpaths returns an iterator over the subpaths, each a slice of segments
// that begins with a move or an open subpath. The slices must not be
// modified.
func (p *Path) Subpaths() iter.Seq[[]PathSegment] {
	return func(yield func([]PathSegment) bool) {
		for i, start := range p.subpaths {
			end := len(p.segments)
			if i+1 < len(p.subpaths) {
				end = p.subpaths[i+1]
			}
			if !yield(p.segments[start:end:end]) {
				return
			}
		}
	}
}

// BoundingBox returns the rectangle enclosing the end points of all
// segments.
func (p *Path) BoundingBox() Rect { return p.bbox }

// Elements returns the drawing commands that reproduce the path.
func (p *Path) Elements() iter.Seq[PathElement] { return Elements(p.Segments()) }

// BezPath returns the drawing commands that reproduce the path.
func (p *Path) BezPath() BezPath { return slices.Collect(p.Elements()) }

// Transform returns a new path with every segment transformed.
func (p *Path) Transform(aff Affine) *Path {
	segs := make([]PathSegment, len(p.segments))
	for i, seg := range p.segments {
		segs[i] = seg.Transform(aff)
	}
	out, _ := NewPathFromSegments(segs)
	return out
}

func (p *Path) String() string {
	return SVG(p.Elements(), SVGOptions{})
}

// Segmented resamples the path to exactly n segments, splitting segments
// proportionally. The returned slice belongs to the caller.
//
// The first segment is kept as is. Of the remaining m−1 segments, each one
// that can be split receives an equal share of the n−1 segments still
// needed, and the remainder is handed out one at a time from the left.
// Moves can't be split and count as a single segment. Without interior
// moves this gives every segment (n−1)/(m−1) pieces, plus one for the
// first (n−1) mod (m−1) of them.
//
// If n is not larger than the current number of segments, the segments are
// returned unchanged. If n can't be reached because no segment can be
// split, the result is [ErrInvalidGeometry].
func (p *Path) Segmented(n int) ([]PathSegment, error) {
	segs, err := p.segmented(n)
	if err != nil {
		return nil, err
	}
	return slices.Clone(segs), nil
}

// segmented is like Segmented but returns the shared, cached slice.
func (p *Path) segmented(n int) ([]PathSegment, error) {
	if n <= len(p.segments) {
		return p.segments, nil
	}
	if m := p.segmentedCache.Load(); m != nil {
		if segs, ok := (*m)[n]; ok {
			return segs, nil
		}
	}

	segs, err := resample(p.segments, n)
	if err != nil {
		return nil, err
	}
	if debugEnabled() {
		Logger().Debug("caching resampled path",
			slog.Int("segments", len(p.segments)),
			slog.Int("target", n))
	}

	// Copy on write. Racing writers compute identical values, so whichever
	// wins is fine; the loop only ensures that no other entry is lost.
	for {
		old := p.segmentedCache.Load()
		next := make(map[int][]PathSegment, 1)
		if old != nil {
			if cached, ok := (*old)[n]; ok {
				return cached, nil
			}
			for k, v := range *old {
				next[k] = v
			}
		}
		next[n] = segs
		if p.segmentedCache.CompareAndSwap(old, &next) {
			return segs, nil
		}
	}
}

func resample(segs []PathSegment, n int) ([]PathSegment, error) {
	rest := segs[1:]
	divisible := 0
	for _, seg := range rest {
		if seg.divisible() {
			divisible++
		}
	}
	needed := n - 1 - (len(rest) - divisible)
	if divisible == 0 {
		return nil, fmt.Errorf("resampling %d segments to %d: nothing to split: %w", len(segs), n, ErrInvalidGeometry)
	}
	base := needed / divisible
	remainder := needed % divisible

	out := make([]PathSegment, 0, n)
	out = append(out, segs[0])
	for _, seg := range rest {
		if !seg.divisible() {
			out = append(out, seg)
			continue
		}
		k := base
		if remainder > 0 {
			k++
			remainder--
		}
		out = seg.appendSegmented(out, k)
	}
	return out, nil
}

// Anchor returns the segment whose origin is the highest and left-most,
// preferring segments horizontally close to the center of the bounding box
// among those. y grows downwards.
//
// Paths are rotated to start at the segment closest to their anchor before
// being interpolated, so that the two paths start at similar positions.
func (p *Path) Anchor() PathSegment {
	center := p.bbox.Center()
	before := func(a, b PathSegment) bool {
		closer := math.Abs(center.X-a.Origin.X) <= math.Abs(center.X-b.Origin.X)
		higher := a.Origin.Y < b.Origin.Y
		lefter := a.Origin.X < b.Origin.X
		switch {
		case closer && higher && lefter:
			return true
		case higher && lefter:
			return true
		case higher:
			return true
		default:
			return lefter
		}
	}
	best := p.segments[0]
	for _, seg := range p.segments[1:] {
		if before(seg, best) {
			best = seg
		}
	}
	return best
}

// reorder rotates segs in place so that the segment whose origin is
// nearest to anchor's origin comes first. That segment is turned into an
// open subpath of the same shape, since it now starts the path.
func reorder(segs []PathSegment, anchor PathSegment) {
	closest := 0
	best := math.Inf(1)
	for i, seg := range segs {
		if d := anchor.Origin.DistanceSquared(seg.Origin); d < best {
			best = d
			closest = i
		}
	}
	segs[closest] = openSegment(segs[closest].Cubic())
	slices.Reverse(segs[:closest])
	slices.Reverse(segs[closest:])
	slices.Reverse(segs)
}
