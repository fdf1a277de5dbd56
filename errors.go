package tween

import "errors"

var (
	// ErrInvalidGeometry is returned for curves and paths that cannot be
	// built or subdivided, such as a curve with too few control points, an
	// empty path, or a request for fewer than one segment. It indicates a
	// programming mistake and is not worth retrying.
	ErrInvalidGeometry = errors.New("tween: invalid geometry")

	// ErrUnsolvableRoot reports that the timing solver found no real root in
	// [0, 1]. [CubicBez.Progress] never returns it; it falls back to the
	// nearest boundary instead. [CubicBez.SolveRoot] exposes it.
	ErrUnsolvableRoot = errors.New("tween: no root in [0, 1]")

	// ErrMismatchedDimensionality is returned when interpolating between two
	// values of different kinds, such as a path and a point.
	ErrMismatchedDimensionality = errors.New("tween: mismatched value kinds")
)
