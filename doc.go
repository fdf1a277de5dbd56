// Package tween provides the math behind animations: timing curves that map
// elapsed time to progress, and interpolation between values, most notably
// between arbitrary 2D paths.
//
// # Timing curves
//
// A timing curve is a cubic Bézier ([CubicBez]) running from (0, 0) to
// (1, 1), where x is the fraction of elapsed time and y the fraction of the
// animated change. Evaluating a timing curve at a point in time requires
// finding the curve parameter whose x equals that time, which
// [CubicBez.Progress] does in closed form without allocating. Control points
// may leave the unit square on the y axis, which makes animations overshoot
// their target.
//
// [TimingCurve] wraps a cubic, a damped [Spring], or the platform default
// curve. The common curves are available as presets, such as [EaseInEaseOut].
// [Keyframe] places a timing curve within a longer animation, and [Samples]
// evaluates a curve once per frame.
//
// # Path morphing
//
// [Path] is a flattened list of [PathSegment] values, each carrying its own
// start point and an equivalent cubic form. Two paths are interpolated by
// pairing their segments: paths with different numbers of segments are first
// resampled to the same count with [Path.Segmented], then rotated so that both
// start near their top-center anchor, see [Path.Anchor]. Each pair of segments
// is then interpolated through its cubic form. [Morph] keeps the prepared
// pairs around so that every frame of an animation only pays for the
// interpolation.
//
// Paths are built from drawing commands ([PathElement], collected in a
// [BezPath]), which can be written by hand, parsed from SVG path data with
// [ParseSVG], produced by shapes such as [Circle] and [Star], or loaded from
// fonts with [GlyphPath].
//
// # Values
//
// [Value] holds any interpolatable property: numbers, points, sizes,
// rectangles, transforms, paths and colors. [Lerp] interpolates two values of
// the same kind and reports [ErrMismatchedDimensionality] otherwise.
//
// # Logging
//
// The package doesn't log by default. Use [SetLogger] to receive debug
// records about solver fallbacks and resampling.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//   - [Cubic function] on Wikipedia, for Cardano's method
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
// [Cubic function]: https://en.wikipedia.org/wiki/Cubic_equation#Cardano's_formula
package tween
