package tween

import (
	"fmt"
	"math"
)

// DefaultFPS is the frame rate used by [Samples] and [Delay] when given a
// non-positive one.
const DefaultFPS = 60

// Keyframe schedules a timing curve within a longer animation. Start and
// duration are fractions of the whole animation.
type Keyframe struct {
	Curve            TimingCurve
	RelativeStart    float64
	RelativeDuration float64
}

// End returns the fraction of the whole animation at which the keyframe
// ends.
func (k Keyframe) End() float64 { return k.RelativeStart + k.RelativeDuration }

// Contains reports whether the keyframe runs at time t of the whole
// animation. The start is included, the end is not.
func (k Keyframe) Contains(t float64) bool {
	return t >= k.RelativeStart && t < k.End()
}

// Overlaps reports whether the two keyframes run at the same time for a
// nonzero duration.
func (k Keyframe) Overlaps(o Keyframe) bool {
	return k.RelativeStart < o.End() && o.RelativeStart < k.End()
}

// Progress maps time t of the whole animation into the keyframe and
// evaluates its curve there. Before the keyframe the result is
// [ProgressStart], after it [ProgressEnd].
func (k Keyframe) Progress(t float64) Progress {
	if k.RelativeDuration <= 0 {
		if t < k.RelativeStart {
			return ProgressStart()
		}
		return ProgressEnd()
	}
	local := (t - k.RelativeStart) / k.RelativeDuration
	switch {
	case local <= 0:
		return ProgressStart()
	case local >= 1:
		return ProgressEnd()
	default:
		return k.Curve.Progress(local)
	}
}

func (k Keyframe) String() string {
	return fmt.Sprintf("Keyframe(%s, start: %g, duration: %g)", k.Curve, k.RelativeStart, k.RelativeDuration)
}

// Samples evaluates tc once per frame of an animation lasting duration
// seconds at fps frames per second. The first sample is at time 0 and the
// last is always [ProgressEnd], so there are at least two.
func Samples(tc TimingCurve, duration float64, fps int) []Progress {
	frames := frameCount(duration, fps)
	if frames == 0 {
		return []Progress{ProgressStart(), ProgressEnd()}
	}
	out := make([]Progress, 0, frames+1)
	step := 1 / float64(frames)
	for i := range frames {
		out = append(out, tc.Progress(float64(i)*step))
	}
	return append(out, ProgressEnd())
}

// Delay returns the relative time at which tc first reaches value, sampled
// at the frame rate of an animation lasting duration seconds. A value that
// is never reached results in 1.
func Delay(tc TimingCurve, value, duration float64, fps int) float64 {
	for _, p := range Samples(tc, duration, fps) {
		if value <= p.RelativeValue {
			return p.RelativeTime
		}
	}
	return 1
}

func frameCount(duration float64, fps int) int {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if !(duration > 0) || math.IsInf(duration, 0) {
		return 0
	}
	return int(math.Floor(float64(fps) * duration))
}
