package tween

import (
	"fmt"
	"image/color"
)

// Kind identifies what a [Value] holds.
type Kind int

const (
	InvalidKind Kind = iota
	ScalarKind
	PointKind
	SizeKind
	RectKind
	AffineKind
	PathKind
	ColorKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "Scalar"
	case PointKind:
		return "Point"
	case SizeKind:
		return "Size"
	case RectKind:
		return "Rect"
	case AffineKind:
		return "Affine"
	case PathKind:
		return "Path"
	case ColorKind:
		return "Color"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is one animatable property: a number, a piece of geometry, a path
// or a color. Two values can be interpolated if they have the same kind.
// The zero value is invalid.
type Value struct {
	kind   Kind
	scalar float64
	point  Point
	size   Size
	rect   Rect
	affine Affine
	path   *Path
	color  Color
}

func ScalarValue(f float64) Value  { return Value{kind: ScalarKind, scalar: f} }
func PointValue(pt Point) Value    { return Value{kind: PointKind, point: pt} }
func SizeValue(sz Size) Value      { return Value{kind: SizeKind, size: sz} }
func RectValue(r Rect) Value       { return Value{kind: RectKind, rect: r} }
func AffineValue(aff Affine) Value { return Value{kind: AffineKind, affine: aff} }
func PathValue(p *Path) Value      { return Value{kind: PathKind, path: p} }
func ColorValue(c Color) Value     { return Value{kind: ColorKind, color: c} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) Scalar() (float64, bool) { return v.scalar, v.kind == ScalarKind }
func (v Value) Point() (Point, bool)    { return v.point, v.kind == PointKind }
func (v Value) Size() (Size, bool)      { return v.size, v.kind == SizeKind }
func (v Value) Rect() (Rect, bool)      { return v.rect, v.kind == RectKind }
func (v Value) Affine() (Affine, bool)  { return v.affine, v.kind == AffineKind }
func (v Value) Path() (*Path, bool)     { return v.path, v.kind == PathKind }
func (v Value) Color() (Color, bool)    { return v.color, v.kind == ColorKind }

func (v Value) String() string {
	switch v.kind {
	case ScalarKind:
		return fmt.Sprintf("%g", v.scalar)
	case PointKind:
		return v.point.String()
	case SizeKind:
		return v.size.String()
	case RectKind:
		return v.rect.String()
	case AffineKind:
		return fmt.Sprintf("Affine%v", v.affine.Coefficients())
	case PathKind:
		return v.path.String()
	case ColorKind:
		return v.color.String()
	default:
		return "InvalidValue"
	}
}

// Lerp interpolates between a and b at progress t. Both must have the same
// kind, otherwise the result is [ErrMismatchedDimensionality]. Paths are
// interpolated with [Path.Lerp] and can fail with [ErrInvalidGeometry].
func Lerp(a, b Value, t float64) (Value, error) {
	if a.kind != b.kind {
		return Value{}, fmt.Errorf("interpolating %s to %s: %w", a.kind, b.kind, ErrMismatchedDimensionality)
	}
	switch a.kind {
	case ScalarKind:
		return ScalarValue(a.scalar + (b.scalar-a.scalar)*t), nil
	case PointKind:
		return PointValue(a.point.Lerp(b.point, t)), nil
	case SizeKind:
		return SizeValue(a.size.Lerp(b.size, t)), nil
	case RectKind:
		return RectValue(a.rect.Lerp(b.rect, t)), nil
	case AffineKind:
		return AffineValue(a.affine.Lerp(b.affine, t)), nil
	case ColorKind:
		return ColorValue(a.color.Lerp(b.color, t)), nil
	case PathKind:
		p, err := a.path.Lerp(b.path, t)
		if err != nil {
			return Value{}, err
		}
		return PathValue(p), nil
	default:
		return Value{}, fmt.Errorf("interpolating %s: %w", a.kind, ErrMismatchedDimensionality)
	}
}

// Color is a non-premultiplied color with channels in [0, 1]. Channels
// may leave that range while interpolating with overshooting curves; they
// are clamped when converting to other color types.
type Color struct {
	R, G, B, A float64
}

// FromColor converts any color to a [Color].
func FromColor(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	const m = 0xffff
	return Color{
		R: float64(n.R) / m,
		G: float64(n.G) / m,
		B: float64(n.B) / m,
		A: float64(n.A) / m,
	}
}

// RGBA implements [color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA64().RGBA()
}

// NRGBA64 returns c with clamped channels.
func (c Color) NRGBA64() color.NRGBA64 {
	ch := func(f float64) uint16 {
		return uint16(min(max(f, 0), 1)*0xffff + 0.5)
	}
	return color.NRGBA64{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: ch(c.A)}
}

// Lerp interpolates each channel independently.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// Hex returns the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	n := c.NRGBA64()
	return fmt.Sprintf("#%02x%02x%02x", n.R>>8, n.G>>8, n.B>>8)
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}
