package tween

import (
	"fmt"
	"log/slog"
	"math"
	"math/cmplx"
)

const (
	// slopPlaces is the number of decimal places the rotated control
	// points are rounded to. It removes the residue of cos(π/2) before the
	// discriminant picks a branch.
	slopPlaces = 12

	// rootSlack is how far outside [0, 1] a root may lie and still be
	// accepted, after which it is clamped.
	rootSlack = 1e-9

	// imagSlack is the largest imaginary part a complex Cardano candidate may
	// have and still count as real.
	imagSlack = 1e-9
)

// cubeRootsOfUnity are 1, ω and ω².
var cubeRootsOfUnity = [3]complex128{
	1,
	complex(-0.5, math.Sqrt(3)/2),
	complex(-0.5, -math.Sqrt(3)/2),
}

// Progress solves the timing curve at elapsed time t. It finds the curve
// parameter u for which x(u) = t and returns y(u) as the relative value.
//
// For t ≤ 0 and t ≥ 1 the result is the clamped [CubicBez.PointOnCurve].
// If no parameter in [0, 1] reaches t, which can only happen for curves
// whose x range doesn't span [0, 1], the boundary whose x is nearest t is
// used instead. Progress does not allocate.
func (c CubicBez) Progress(t float64) Progress {
	if t <= 0 || t >= 1 {
		return c.PointOnCurve(t)
	}
	u, err := c.SolveRoot(t)
	if err != nil {
		u = c.nearestBoundary(t)
		if debugEnabled() {
			Logger().Debug("timing solve fell back to boundary",
				slog.Float64("time", t),
				slog.Float64("parameter", u),
				slog.String("curve", c.String()))
		}
	}
	return Progress{RelativeTime: t, RelativeValue: c.PointOnCurve(u).RelativeValue}
}

// SolveRoot returns the curve parameter u ∈ [0, 1] for which x(u) = t.
//
// The curve is translated by −t along x and rotated by 90°, which turns the
// vertical line x = t into the x axis. The rotated curve's y polynomial is
// then solved in closed form with Cardano's method. When several roots lie
// in [0, 1], the smallest one is used. If none do, the error is
// [ErrUnsolvableRoot].
func (c CubicBez) SolveRoot(t float64) (float64, error) {
	if t <= 0 {
		return 0, nil
	}
	if t >= 1 {
		return 1, nil
	}
	aff := Translate(Vec(-t, 0)).ThenRotate(math.Pi / 2)
	var rotated CubicBez
	for i, pt := range c {
		rotated[i] = pt.Transform(aff).roundTo(slopPlaces)
	}
	_, poly := rotated.polynomials()

	roots, n := solveCardano(poly)
	u, ok := smallestUnitRoot(roots[:n])
	if !ok {
		return 0, fmt.Errorf("solving for time %g: %w", t, ErrUnsolvableRoot)
	}
	// One Newton step cleans up the rounding in the radicals. It is
	// discarded if it would leave the unit interval.
	if d := poly.deriv(u); d != 0 {
		if v := u - poly.eval(u)/d; v >= 0 && v <= 1 && math.Abs(poly.eval(v)) <= math.Abs(poly.eval(u)) {
			u = v
		}
	}
	return u, nil
}

// nearestBoundary returns 0 or 1, whichever end of the curve has an x
// closer to t.
func (c CubicBez) nearestBoundary(t float64) float64 {
	if math.Abs(c[0].X-t) <= math.Abs(c[3].X-t) {
		return 0
	}
	return 1
}

func smallestUnitRoot(roots []float64) (float64, bool) {
	best := math.Inf(1)
	for _, r := range roots {
		if r >= -rootSlack && r <= 1+rootSlack && r < best {
			best = r
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	return min(max(best, 0), 1), true
}

// solveCardano finds the real roots of a t³ + b t² + c t + d.
//
// The cubic is reduced to the depressed form x³ + px + q via t = x − b/3a.
// The cases p = 0 and q = 0 are solved directly. Otherwise the sign of the
// discriminant Δ = (q/2)² + (p/3)³ selects the trigonometric form (Δ < 0,
// three real roots) or Cardano's radicals (Δ ≥ 0), which are evaluated in
// complex arithmetic so that negative radicands need no special handling.
func solveCardano(poly cubicPoly) ([3]float64, int) {
	var out [3]float64
	// A vanishing leading term would blow up the normalized coefficients.
	if math.Abs(poly.a) <= 1e-9*(math.Abs(poly.b)+math.Abs(poly.c)+math.Abs(poly.d)) {
		roots, n := SolveQuadratic(poly.d, poly.c, poly.b)
		copy(out[:], roots[:n])
		return out, n
	}

	a := poly.b / poly.a
	b := poly.c / poly.a
	c := poly.d / poly.a
	shift := -a / 3

	p := b - a*a/3
	q := 2*a*a*a/27 - a*b/3 + c

	switch {
	case p == 0 && q == 0:
		out[0] = shift
		return out, 1
	case p == 0:
		out[0] = math.Cbrt(-q) + shift
		return out, 1
	case q == 0:
		out[0] = shift
		if p > 0 {
			return out, 1
		}
		s := math.Sqrt(-p)
		out[1] = s + shift
		out[2] = -s + shift
		return out, 3
	}

	disc := q*q/4 + p*p*p/27
	if disc < 0 {
		// p < 0 here.
		r := 2 * math.Sqrt(-p/3)
		arg := 3 * q / (2 * p) * math.Sqrt(-3/p)
		phi := math.Acos(min(max(arg, -1), 1))
		for k := range 3 {
			out[k] = r*math.Cos(phi/3-2*math.Pi*float64(k)/3) + shift
		}
		return out, 3
	}

	// Take the radicand of larger magnitude so that u is never zero; q ≠ 0
	// at this point.
	w := -q/2 - math.Copysign(math.Sqrt(disc), q)
	u0 := cmplx.Pow(complex(w, 0), 1.0/3.0)
	n := 0
	for _, unity := range cubeRootsOfUnity {
		u := u0 * unity
		v := complex(-p/3, 0) / u
		x := u + v
		if math.Abs(imag(x)) < imagSlack {
			out[n] = real(x) + shift
			n++
		}
	}
	return out, n
}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// This function tries to be quite numerically robust. If the equation is nearly
// linear, it will return the root ignoring the quadratic term; the other root
// might be out of representable range. In the degenerate case where all
// coefficients are zero, so that all values of x satisfy the equation, a single
// 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) && !math.IsNaN(root2) {
		// Sort just to be friendly and make results deterministic.
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}

// Evaluate returns the value of c at parameter t. See [CubicBez.PointOnCurve].
func Evaluate(c CubicBez, t float64) Progress {
	return c.PointOnCurve(t)
}

// SolveProgress returns the timing progress of c at elapsed time t. See
// [CubicBez.Progress].
func SolveProgress(c CubicBez, t float64) Progress {
	return c.Progress(t)
}

// Subdivide splits c into n pieces. See [CubicBez.Segmented].
func Subdivide(c CubicBez, n int) ([]CubicBez, error) {
	return c.Segmented(n)
}
