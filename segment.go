package tween

import (
	"fmt"
	"iter"
)

// Op is the drawing operation of a [PathSegment].
type Op int

const (
	// MoveOp starts a new subpath at the destination without drawing.
	MoveOp Op = iota + 1
	// LineOp draws a straight line.
	LineOp
	// QuadOp draws a quadratic Bézier with Control1 as its control point.
	QuadOp
	// CubicOp draws a cubic Bézier.
	CubicOp
	// CloseOp draws a straight line back to the start of the subpath and
	// closes it.
	CloseOp
	// OpenSubpathOp starts a new subpath at the origin and draws a cubic
	// from there. Interpolation produces it when a move is paired with a
	// drawing segment, and reordering marks the new first segment with it.
	OpenSubpathOp
)

func (op Op) String() string {
	switch op {
	case MoveOp:
		return "Move"
	case LineOp:
		return "Line"
	case QuadOp:
		return "Quad"
	case CubicOp:
		return "Cubic"
	case CloseOp:
		return "Close"
	case OpenSubpathOp:
		return "OpenSubpath"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// rank orders operations for interpolation. Close ranks below everything
// else, the rest follow declaration order.
func (op Op) rank() int {
	if op == CloseOp {
		return 0
	}
	return int(op)
}

// PathSegment is a single drawing operation of a [Path], carrying its own
// start point. Every segment has an equivalent cubic form, see
// [PathSegment.Cubic].
//
// Segments should be built with the constructor for their operation, which
// fill in Control1 and Control2 from the origin and destination when the
// operation doesn't use them.
type PathSegment struct {
	Op          Op
	Origin      Point
	Control1    Point
	Control2    Point
	Destination Point
}

// MoveSegment returns a move to dest. All of its points are dest.
func MoveSegment(dest Point) PathSegment {
	return PathSegment{Op: MoveOp, Origin: dest, Control1: dest, Control2: dest, Destination: dest}
}

func LineSegment(origin, dest Point) PathSegment {
	return PathSegment{Op: LineOp, Origin: origin, Control1: origin, Control2: dest, Destination: dest}
}

func QuadSegment(origin, ctrl, dest Point) PathSegment {
	return PathSegment{Op: QuadOp, Origin: origin, Control1: ctrl, Control2: dest, Destination: dest}
}

func CubicSegment(origin, ctrl1, ctrl2, dest Point) PathSegment {
	return PathSegment{Op: CubicOp, Origin: origin, Control1: ctrl1, Control2: ctrl2, Destination: dest}
}

// CloseSegment returns the closing line from origin back to the subpath
// start, dest.
func CloseSegment(origin, dest Point) PathSegment {
	return PathSegment{Op: CloseOp, Origin: origin, Control1: origin, Control2: dest, Destination: dest}
}

// openSegment starts a new subpath with the cubic c.
func openSegment(c CubicBez) PathSegment {
	return PathSegment{Op: OpenSubpathOp, Origin: c[0], Control1: c[1], Control2: c[2], Destination: c[3]}
}

func cubicSegment(c CubicBez) PathSegment {
	return CubicSegment(c[0], c[1], c[2], c[3])
}

func (seg PathSegment) String() string {
	return fmt.Sprintf("%s(%s, %s, %s, %s)", seg.Op, seg.Origin, seg.Control1, seg.Control2, seg.Destination)
}

// Cubic returns the cubic Bézier that traces the same shape as the segment.
// Lines and closes become cubics with control points at one and two thirds,
// quadratics are raised, and the remaining operations use their points
// unchanged.
func (seg PathSegment) Cubic() CubicBez {
	switch seg.Op {
	case LineOp, CloseOp:
		return Line{seg.Origin, seg.Destination}.Raise()
	case QuadOp:
		return QuadBez{seg.Origin, seg.Control1, seg.Destination}.Raise()
	default:
		return CubicBez{seg.Origin, seg.Control1, seg.Control2, seg.Destination}
	}
}

// fromCubic rebuilds a segment of the given operation from a cubic form.
func fromCubic(op Op, c CubicBez) PathSegment {
	switch op {
	case MoveOp:
		return MoveSegment(c[3])
	case LineOp:
		return LineSegment(c[0], c[3])
	case CloseOp:
		return CloseSegment(c[0], c[3])
	case QuadOp:
		q := lowerQuad(c)
		return QuadSegment(q.P0, q.P1, q.P2)
	case OpenSubpathOp:
		return openSegment(c)
	default:
		return cubicSegment(c)
	}
}

// Lerp interpolates between seg and to by interpolating the control points
// of their cubic forms.
//
// At t = 0 the result is seg and at t = 1 it is to, exactly. Otherwise the
// operation of the result is the higher ranked of the two, with close
// ranking lowest. Pairing a move with any other operation results in
// [OpenSubpathOp], so that the interpolated segment still starts its own
// subpath.
func (seg PathSegment) Lerp(to PathSegment, t float64) PathSegment {
	if t == 1 {
		return to
	}
	if t == 0 || seg == to {
		return seg
	}
	op := seg.Op
	if to.Op.rank() > op.rank() {
		op = to.Op
	}
	if seg.Op != to.Op && (seg.Op == MoveOp || to.Op == MoveOp) {
		op = OpenSubpathOp
	}
	return fromCubic(op, seg.Cubic().Lerp(to.Cubic(), t))
}

// Segmented splits the segment into n segments of the same shape.
//
// A move can't be split and is returned as the only segment. An open
// subpath becomes a move to its origin followed by n−1 cubics; with n = 1
// it is returned unchanged. Everything else is split with de Casteljau's
// algorithm on its cubic form, resulting in n cubic segments.
//
// n < 1 results in [ErrInvalidGeometry].
func (seg PathSegment) Segmented(n int) ([]PathSegment, error) {
	if n < 1 {
		return nil, fmt.Errorf("segmenting %s into %d pieces: %w", seg.Op, n, ErrInvalidGeometry)
	}
	return seg.appendSegmented(make([]PathSegment, 0, n), n), nil
}

func (seg PathSegment) appendSegmented(dst []PathSegment, n int) []PathSegment {
	switch {
	case seg.Op == MoveOp:
		return append(dst, seg)
	case seg.Op == OpenSubpathOp && n == 1:
		return append(dst, seg)
	case seg.Op == OpenSubpathOp:
		dst = append(dst, MoveSegment(seg.Origin))
		n--
	}
	seg.Cubic().appendSegmented(n, func(c CubicBez) {
		dst = append(dst, cubicSegment(c))
	})
	return dst
}

// divisible reports whether Segmented can produce more than one segment.
func (seg PathSegment) divisible() bool {
	return seg.Op != MoveOp
}

func (seg PathSegment) Transform(aff Affine) PathSegment {
	return PathSegment{
		Op:          seg.Op,
		Origin:      seg.Origin.Transform(aff),
		Control1:    seg.Control1.Transform(aff),
		Control2:    seg.Control2.Transform(aff),
		Destination: seg.Destination.Transform(aff),
	}
}

func (seg PathSegment) IsInf() bool {
	return seg.Origin.IsInf() || seg.Control1.IsInf() || seg.Control2.IsInf() || seg.Destination.IsInf()
}

func (seg PathSegment) IsNaN() bool {
	return seg.Origin.IsNaN() || seg.Control1.IsNaN() || seg.Control2.IsNaN() || seg.Destination.IsNaN()
}

// Elements returns the drawing commands for a sequence of segments.
//
// A move is emitted whenever a segment doesn't start where the previous one
// ended. Closing segments that return to the start of their subpath are
// emitted as [ClosePath].
func Elements(seq iter.Seq[PathSegment]) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		var current, start option[Point]
		moveTo := func(pt Point) bool {
			current.set(pt)
			start.set(pt)
			return yield(MoveTo(pt))
		}
		for seg := range seq {
			switch seg.Op {
			case MoveOp:
				if !moveTo(seg.Destination) {
					return
				}
				continue
			case OpenSubpathOp:
				if !moveTo(seg.Origin) {
					return
				}
			default:
				if !current.isSet || current.value != seg.Origin {
					if !moveTo(seg.Origin) {
						return
					}
				}
			}

			var el PathElement
			switch seg.Op {
			case LineOp:
				el = LineTo(seg.Destination)
			case QuadOp:
				el = QuadTo(seg.Control1, seg.Destination)
			case CloseOp:
				if start.value == seg.Destination {
					el = ClosePath()
				} else {
					el = LineTo(seg.Destination)
				}
			default:
				el = CubicTo(seg.Control1, seg.Control2, seg.Destination)
			}
			if !yield(el) {
				return
			}
			current.set(seg.Destination)
		}
	}
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}
