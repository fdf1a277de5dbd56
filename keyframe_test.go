package tween

import (
	"testing"
)

func TestKeyframeRange(t *testing.T) {
	k := Keyframe{Curve: Cubic(Linear), RelativeStart: 0.25, RelativeDuration: 0.5}
	if k.End() != 0.75 {
		t.Errorf("got end %v, want 0.75", k.End())
	}
	for ts, want := range map[float64]bool{
		0:    false,
		0.25: true,
		0.5:  true,
		0.75: false,
		1:    false,
	} {
		if got := k.Contains(ts); got != want {
			t.Errorf("Contains(%v) = %t, want %t", ts, got, want)
		}
	}
}

func TestKeyframeOverlaps(t *testing.T) {
	a := Keyframe{RelativeStart: 0, RelativeDuration: 0.5}
	b := Keyframe{RelativeStart: 0.25, RelativeDuration: 0.5}
	c := Keyframe{RelativeStart: 0.5, RelativeDuration: 0.5}
	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Error("overlapping keyframes don't overlap")
	}
	if a.Overlaps(c) || c.Overlaps(a) {
		t.Error("adjacent keyframes overlap")
	}
}

func TestKeyframeProgress(t *testing.T) {
	k := Keyframe{Curve: Cubic(EaseIn), RelativeStart: 0.5, RelativeDuration: 0.25}
	diff(t, ProgressStart(), k.Progress(0.25))
	diff(t, ProgressStart(), k.Progress(0.5))
	diff(t, ProgressEnd(), k.Progress(0.75))
	diff(t, ProgressEnd(), k.Progress(1))
	diff(t, EaseIn.Progress(0.5), k.Progress(0.625))

	instant := Keyframe{RelativeStart: 0.5}
	diff(t, ProgressStart(), instant.Progress(0.4))
	diff(t, ProgressEnd(), instant.Progress(0.5))
}

func TestSamples(t *testing.T) {
	samples := Samples(Cubic(EaseInEaseOut), 1, 60)
	if len(samples) != 61 {
		t.Fatalf("got %d samples, want 61", len(samples))
	}
	diff(t, ProgressStart(), samples[0])
	diff(t, ProgressEnd(), samples[60])
	for i := 1; i < len(samples); i++ {
		if samples[i].RelativeTime <= samples[i-1].RelativeTime {
			t.Errorf("sample %d at %v isn't after %v", i, samples[i].RelativeTime, samples[i-1].RelativeTime)
		}
	}

	for _, duration := range []float64{0, -1, 0.001} {
		diff(t, []Progress{ProgressStart(), ProgressEnd()}, Samples(Cubic(Linear), duration, 60))
	}

	if n := len(Samples(Cubic(Linear), 0.5, 0)); n != DefaultFPS/2+1 {
		t.Errorf("got %d samples at the default frame rate, want %d", n, DefaultFPS/2+1)
	}
}

func TestDelay(t *testing.T) {
	if d := Delay(Cubic(Linear), 0.5, 1, 10); d != 0.5 {
		t.Errorf("got delay %v, want 0.5", d)
	}
	if d := Delay(Cubic(Linear), 0, 1, 10); d != 0 {
		t.Errorf("got delay %v, want 0", d)
	}
	if d := Delay(Cubic(Linear), 2, 1, 10); d != 1 {
		t.Errorf("got delay %v for an unreachable value, want 1", d)
	}
	if d := Delay(Cubic(EaseOut), 0.5, 1, 100); d >= 0.5 {
		t.Errorf("got delay %v for an ease-out curve, want less than 0.5", d)
	}
}
