package tween

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestTimingCurveDispatch(t *testing.T) {
	var zero TimingCurve
	if zero.Kind() != SystemDefaultTiming {
		t.Errorf("got kind %v for zero value, want SystemDefaultTiming", zero.Kind())
	}
	diff(t, DefaultCurve.Progress(0.3), zero.Progress(0.3))
	diff(t, DefaultCurve.Progress(0.3), SystemDefault().Progress(0.3))
	if c, ok := zero.Curve(); !ok || c != DefaultCurve {
		t.Errorf("got curve %v, %t, want the default curve", c, ok)
	}

	tc := Cubic(EaseIn)
	diff(t, EaseIn.Progress(0.3), tc.Progress(0.3))
	if c, ok := tc.Curve(); !ok || c != EaseIn {
		t.Errorf("got curve %v, %t, want EaseIn", c, ok)
	}
	if _, ok := tc.Spring(); ok {
		t.Error("cubic timing curve reports a spring")
	}

	tc = SpringCurve(DefaultSpring)
	diff(t, DefaultSpring.Progress(0.3), tc.Progress(0.3))
	if _, ok := tc.Curve(); ok {
		t.Error("spring timing curve reports a cubic")
	}
	if s, ok := tc.Spring(); !ok || s != DefaultSpring {
		t.Errorf("got spring %v, %t, want the default spring", s, ok)
	}
}

func TestPresetsEaseOut(t *testing.T) {
	// Ease-out curves are ahead of linear time, ease-in curves behind.
	for i := 1; i < 10; i++ {
		ts := float64(i) / 10
		if v := EaseOut.Progress(ts).RelativeValue; v <= ts {
			t.Errorf("EaseOut at %v: got %v, want more than %v", ts, v, ts)
		}
		if v := EaseIn.Progress(ts).RelativeValue; v >= ts {
			t.Errorf("EaseIn at %v: got %v, want less than %v", ts, v, ts)
		}
	}
}

func TestPresetsOvershoot(t *testing.T) {
	for _, c := range []CubicBez{EaseOutBack, EaseOutExpo} {
		peak := 0.0
		for i := range 101 {
			peak = max(peak, c.Progress(float64(i)/100).RelativeValue)
		}
		if peak <= 1 {
			t.Errorf("%s: got peak %v, want overshoot past 1", c, peak)
		}
	}
}

func TestSpringRegimes(t *testing.T) {
	tests := []struct {
		name   string
		spring Spring
	}{
		{"underdamped", DefaultSpring},
		{"critically damped", Spring{Mass: 1, Damping: 20, Stiffness: 100}},
		{"overdamped", Spring{Mass: 1, Damping: 40, Stiffness: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.spring.Validate(); err != nil {
				t.Fatal(err)
			}
			if v := tt.spring.Progress(0).RelativeValue; math.Abs(v) > 1e-12 {
				t.Errorf("got value %v at rest, want 0", v)
			}
			// All of them settle at 1 eventually.
			if v := tt.spring.Progress(10).RelativeValue; math.Abs(v-1) > 1e-3 {
				t.Errorf("got value %v after settling, want 1", v)
			}
			for i := range 100 {
				p := tt.spring.Progress(float64(i) / 100)
				if math.IsNaN(p.RelativeValue) || math.IsInf(p.RelativeValue, 0) {
					t.Fatalf("got value %v at %v", p.RelativeValue, p.RelativeTime)
				}
			}
		})
	}
}

func TestSpringUnderdampedOvershoots(t *testing.T) {
	peak := 0.0
	for i := range 101 {
		peak = max(peak, DefaultSpring.Progress(float64(i)/100).RelativeValue)
	}
	if peak <= 1 {
		t.Errorf("got peak %v, want overshoot past 1", peak)
	}
}

func TestSpringCriticallyDampedMonotonic(t *testing.T) {
	s := Spring{Mass: 1, Damping: 20, Stiffness: 100}
	prev := -1.0
	for i := range 101 {
		v := s.Progress(float64(i) / 100).RelativeValue
		if v < prev || v > 1 {
			t.Fatalf("got value %v after %v at step %d", v, prev, i)
		}
		prev = v
	}
}

func TestSpringInvalid(t *testing.T) {
	for _, s := range []Spring{
		{Mass: 0, Damping: 10, Stiffness: 100},
		{Mass: 1, Damping: -1, Stiffness: 100},
		{Mass: 1, Damping: 10, Stiffness: math.NaN()},
	} {
		if err := s.Validate(); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("%s: got error %v, want ErrInvalidGeometry", s, err)
		}
	}

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	s := Spring{Mass: 0, Damping: 10, Stiffness: 100}
	diff(t, Progress{0.4, 1}, s.Progress(0.4))
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("invalid spring wasn't logged, got %q", buf.String())
	}
}
