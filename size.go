package tween

import (
	"fmt"
	"math"
)

type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) AsVec2() Vec2 {
	return Vec2{
		X: sz.Width,
		Y: sz.Height,
	}
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

// Lerp interpolates width and height independently. t is not clamped, so
// the result may be negative.
func (sz Size) Lerp(o Size, t float64) Size {
	return Size{
		Width:  sz.Width + (o.Width-sz.Width)*t,
		Height: sz.Height + (o.Height-sz.Height)*t,
	}
}

func (sz Size) IsInf() bool {
	return math.IsInf(sz.Width, 0) || math.IsInf(sz.Height, 0)
}

func (sz Size) IsNaN() bool {
	return math.IsNaN(sz.Width) || math.IsNaN(sz.Height)
}
