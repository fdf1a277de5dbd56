package tween

import (
	"fmt"
	"log/slog"
	"math"
)

// Progress is one sample of a timing function: the fraction of elapsed
// time and the fraction of the animated change at that time.
// RelativeValue is not clamped; overshooting curves exceed 1.
type Progress struct {
	RelativeTime  float64
	RelativeValue float64
}

// ProgressStart returns the progress at the start of every animation.
func ProgressStart() Progress { return Progress{0, 0} }

// ProgressEnd returns the progress at the end of every animation.
func ProgressEnd() Progress { return Progress{1, 1} }

func (p Progress) String() string {
	return fmt.Sprintf("time: %g, value: %g", p.RelativeTime, p.RelativeValue)
}

// Presets of the standard timing curves.
var (
	Linear        = CubicBez{Pt(0, 0), Pt(0, 0), Pt(1, 1), Pt(1, 1)}
	EaseIn        = CubicBez{Pt(0, 0), Pt(0.42, 0), Pt(1, 1), Pt(1, 1)}
	EaseOut       = CubicBez{Pt(0, 0), Pt(0, 0), Pt(0.58, 1), Pt(1, 1)}
	EaseInEaseOut = CubicBez{Pt(0, 0), Pt(0.42, 0), Pt(0.58, 1), Pt(1, 1)}
	// DefaultCurve is the curve used when no timing is specified.
	DefaultCurve = CubicBez{Pt(0, 0), Pt(0.25, 0.1), Pt(0.25, 1), Pt(1, 1)}

	EaseOutExpo = CubicBez{Pt(0, 0), Pt(0.175, 0.885), Pt(0.32, 1.275), Pt(1, 1)}
	EaseOutBack = CubicBez{Pt(0, 0), Pt(0.23, 1), Pt(0.47, 1.75), Pt(1, 1)}
	// EaseOutBackDrastic settles like EaseOutBack, but with a much steeper
	// start.
	EaseOutBackDrastic = CubicBez{Pt(0, 0), Pt(0.19, 1), Pt(0.22, 1), Pt(1, 1)}
)

// Presets maps the names of the preset curves to the curves, for looking
// them up from configuration.
var Presets = map[string]CubicBez{
	"linear":             Linear,
	"easeIn":             EaseIn,
	"easeOut":            EaseOut,
	"easeInEaseOut":      EaseInEaseOut,
	"default":            DefaultCurve,
	"easeOutExpo":        EaseOutExpo,
	"easeOutBack":        EaseOutBack,
	"easeOutBackDrastic": EaseOutBackDrastic,
}

// TimingKind identifies the variant held by a [TimingCurve].
type TimingKind int

const (
	// SystemDefaultTiming uses [DefaultCurve].
	SystemDefaultTiming TimingKind = iota
	CubicTiming
	SpringTiming
)

// TimingCurve maps elapsed time to animation progress. The zero value is
// the system default curve.
type TimingCurve struct {
	kind   TimingKind
	cubic  CubicBez
	spring Spring
}

// SystemDefault returns the timing curve used when nothing else is
// specified.
func SystemDefault() TimingCurve { return TimingCurve{kind: SystemDefaultTiming} }

// Cubic returns a timing curve following c.
func Cubic(c CubicBez) TimingCurve { return TimingCurve{kind: CubicTiming, cubic: c} }

// SpringCurve returns a timing curve following the motion of s.
func SpringCurve(s Spring) TimingCurve { return TimingCurve{kind: SpringTiming, spring: s} }

func (tc TimingCurve) Kind() TimingKind { return tc.kind }

// Curve returns the Bézier curve of cubic and system default timing
// curves. It reports false for springs.
func (tc TimingCurve) Curve() (CubicBez, bool) {
	switch tc.kind {
	case SystemDefaultTiming:
		return DefaultCurve, true
	case CubicTiming:
		return tc.cubic, true
	default:
		return CubicBez{}, false
	}
}

// Spring returns the spring of spring timing curves.
func (tc TimingCurve) Spring() (Spring, bool) {
	return tc.spring, tc.kind == SpringTiming
}

// Progress evaluates the timing curve at elapsed time t ∈ [0, 1].
func (tc TimingCurve) Progress(t float64) Progress {
	switch tc.kind {
	case CubicTiming:
		return tc.cubic.Progress(t)
	case SpringTiming:
		return tc.spring.Progress(t)
	default:
		return DefaultCurve.Progress(t)
	}
}

func (tc TimingCurve) String() string {
	switch tc.kind {
	case CubicTiming:
		return tc.cubic.String()
	case SpringTiming:
		return tc.spring.String()
	default:
		return "SystemDefault"
	}
}

// Spring is a damped harmonic oscillator released from a displacement of
// −1, settling at 1.
type Spring struct {
	Mass      float64
	Damping   float64
	Stiffness float64
	// Velocity is the initial velocity.
	Velocity float64
}

// DefaultSpring is a slightly underdamped spring that settles within one
// unit of time.
var DefaultSpring = Spring{Mass: 1, Damping: 10, Stiffness: 100, Velocity: 0}

func (s Spring) String() string {
	return fmt.Sprintf("Spring(mass: %g, damping: %g, stiffness: %g, velocity: %g)",
		s.Mass, s.Damping, s.Stiffness, s.Velocity)
}

// Validate reports whether the spring can move. Mass, damping and
// stiffness must all be positive.
func (s Spring) Validate() error {
	if !(s.Mass > 0 && s.Damping > 0 && s.Stiffness > 0) {
		return fmt.Errorf("%s: %w", s, ErrInvalidGeometry)
	}
	return nil
}

// Progress returns the position of the spring at time t. Invalid springs
// are treated as already settled.
func (s Spring) Progress(t float64) Progress {
	if err := s.Validate(); err != nil {
		Logger().Warn("spring can't move, jumping to the end", slog.Any("err", err))
		return Progress{RelativeTime: t, RelativeValue: 1}
	}

	const x0 = -1.0
	beta := s.Damping / (2 * s.Mass)
	omega0 := math.Sqrt(s.Stiffness / s.Mass)
	envelope := math.Exp(-beta * t)

	var value float64
	switch {
	case beta < omega0:
		// Underdamped
		omega1 := math.Sqrt(omega0*omega0 - beta*beta)
		a := x0 * math.Cos(omega1*t)
		b := (beta*x0 + s.Velocity) / omega1 * math.Sin(omega1*t)
		value = -x0 + envelope*(a+b)
	case beta == omega0:
		// Critically damped
		value = -x0 + envelope*(x0+(beta*x0+s.Velocity)*t)
	default:
		// Overdamped
		omega2 := math.Sqrt(beta*beta - omega0*omega0)
		a := x0 * math.Cosh(omega2*t)
		b := (beta*x0 + s.Velocity) / omega2 * math.Sinh(omega2*t)
		value = -x0 + envelope*(a+b)
	}
	return Progress{RelativeTime: t, RelativeValue: value}
}
