package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"github.com/delightgo/tween"
)

// Scene describes one morph animation.
type Scene struct {
	Timing TimingConfig `toml:"timing"`
	From   ShapeConfig  `toml:"from"`
	To     ShapeConfig  `toml:"to"`

	// Duration is the length of the animation in seconds.
	Duration float64 `toml:"duration"`
	FPS      int     `toml:"fps"`

	// Fill is a color name understood by colornames. ToFill, if set, is the
	// fill of the last frame.
	Fill   string `toml:"fill"`
	ToFill string `toml:"to_fill"`

	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// TimingConfig selects the timing curve. At most one of Spring, Points and
// Preset may be set; with none the system default curve is used.
type TimingConfig struct {
	Preset string `toml:"preset"`
	// Points are the inner control points x1, y1, x2, y2.
	Points []float64     `toml:"points"`
	Spring *SpringConfig `toml:"spring"`
}

type SpringConfig struct {
	Mass      float64 `toml:"mass"`
	Damping   float64 `toml:"damping"`
	Stiffness float64 `toml:"stiffness"`
	Velocity  float64 `toml:"velocity"`
}

// ShapeConfig is one end of the morph. Exactly one of SVG, Glyph, Circle,
// Star and Rect must be set.
type ShapeConfig struct {
	SVG    string        `toml:"svg"`
	Glyph  string        `toml:"glyph"`
	Circle *CircleConfig `toml:"circle"`
	Star   *StarConfig   `toml:"star"`
	Rect   []float64     `toml:"rect"`
	// Size is the size of glyphs in pixels per em.
	Size float64 `toml:"size"`
}

type CircleConfig struct {
	Center []float64 `toml:"center"`
	Radius float64   `toml:"radius"`
	Arcs   int       `toml:"arcs"`
}

type StarConfig struct {
	Center []float64 `toml:"center"`
	Radius float64   `toml:"radius"`
	Points int       `toml:"points"`
	// Inner is the inner radius relative to Radius. Zero selects the
	// pentagram ratio.
	Inner float64 `toml:"inner"`
}

var errScene = errors.New("invalid scene")

// DefaultScene morphs a circle into a star.
func DefaultScene() Scene {
	return Scene{
		Timing: TimingConfig{Preset: "easeInEaseOut"},
		From: ShapeConfig{
			Circle: &CircleConfig{Center: []float64{100, 100}, Radius: 80, Arcs: 4},
		},
		To: ShapeConfig{
			Star: &StarConfig{Center: []float64{100, 100}, Radius: 90, Points: 5},
		},
		Duration: 1,
		FPS:      tween.DefaultFPS,
		Fill:     "steelblue",
		ToFill:   "orange",
		Width:    200,
		Height:   200,
	}
}

// LoadScene reads a TOML scene. Missing settings keep the values of
// [DefaultScene]; unknown settings are an error. Shapes and timing are
// replaced as a whole, never merged with the defaults.
func LoadScene(r io.Reader) (Scene, error) {
	sc := DefaultScene()
	sc.From, sc.To, sc.Timing = ShapeConfig{}, ShapeConfig{}, TimingConfig{}

	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Scene{}, fmt.Errorf("scene:%d:%d: %s", row, col, derr.Error())
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return Scene{}, fmt.Errorf("scene: %s", strings.TrimSpace(serr.String()))
		}
		return Scene{}, fmt.Errorf("scene: %w", err)
	}

	def := DefaultScene()
	if sc.Timing.empty() {
		sc.Timing = def.Timing
	}
	if sc.From.empty() {
		sc.From = def.From
	}
	if sc.To.empty() {
		sc.To = def.To
	}
	return sc, nil
}

// LoadSceneFile is like LoadScene but reads from a file.
func LoadSceneFile(name string) (Scene, error) {
	f, err := os.Open(name)
	if err != nil {
		return Scene{}, err
	}
	defer f.Close()
	return LoadScene(f)
}

// Curve resolves the timing configuration.
func (tc TimingConfig) Curve() (tween.TimingCurve, error) {
	set := 0
	for _, ok := range []bool{tc.Spring != nil, tc.Points != nil, tc.Preset != ""} {
		if ok {
			set++
		}
	}
	if set > 1 {
		return tween.TimingCurve{}, fmt.Errorf("timing: only one of preset, points and spring may be set: %w", errScene)
	}

	switch {
	case tc.Spring != nil:
		s := tween.Spring{
			Mass:      tc.Spring.Mass,
			Damping:   tc.Spring.Damping,
			Stiffness: tc.Spring.Stiffness,
			Velocity:  tc.Spring.Velocity,
		}
		if err := s.Validate(); err != nil {
			return tween.TimingCurve{}, fmt.Errorf("timing: %w", err)
		}
		return tween.SpringCurve(s), nil
	case tc.Points != nil:
		if len(tc.Points) != 4 {
			return tween.TimingCurve{}, fmt.Errorf("timing: got %d control point coordinates, want 4: %w", len(tc.Points), errScene)
		}
		c, err := tween.NewCubicBez(tween.Pt(tc.Points[0], tc.Points[1]), tween.Pt(tc.Points[2], tc.Points[3]))
		if err != nil {
			return tween.TimingCurve{}, fmt.Errorf("timing: %w", err)
		}
		return tween.Cubic(c), nil
	case tc.Preset != "":
		c, ok := tween.Presets[tc.Preset]
		if !ok {
			return tween.TimingCurve{}, fmt.Errorf("timing: unknown preset %q: %w", tc.Preset, errScene)
		}
		return tween.Cubic(c), nil
	default:
		return tween.SystemDefault(), nil
	}
}

func (tc TimingConfig) empty() bool {
	return tc.Preset == "" && tc.Points == nil && tc.Spring == nil
}

func (sh ShapeConfig) empty() bool {
	return sh.SVG == "" && sh.Glyph == "" && sh.Circle == nil && sh.Star == nil && sh.Rect == nil
}

// Path builds the shape's path.
func (sh ShapeConfig) Path() (*tween.Path, error) {
	set := 0
	for _, ok := range []bool{sh.SVG != "", sh.Glyph != "", sh.Circle != nil, sh.Star != nil, sh.Rect != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("shape: exactly one of svg, glyph, circle, star and rect must be set: %w", errScene)
	}

	var bp tween.BezPath
	switch {
	case sh.SVG != "":
		var err error
		bp, err = tween.ParseSVG(sh.SVG)
		if err != nil {
			return nil, err
		}
	case sh.Glyph != "":
		var err error
		bp, err = glyph(sh.Glyph, sh.Size)
		if err != nil {
			return nil, err
		}
	case sh.Circle != nil:
		center, err := point(sh.Circle.Center)
		if err != nil {
			return nil, fmt.Errorf("circle center: %w", err)
		}
		bp = tween.Circle{Center: center, Radius: sh.Circle.Radius}.Path(sh.Circle.Arcs)
	case sh.Star != nil:
		center, err := point(sh.Star.Center)
		if err != nil {
			return nil, fmt.Errorf("star center: %w", err)
		}
		s := tween.NewStar(center, sh.Star.Points, sh.Star.Radius)
		if sh.Star.Inner != 0 {
			s.InnerRadius = sh.Star.Inner * sh.Star.Radius
		}
		bp = s.Path()
	case sh.Rect != nil:
		if len(sh.Rect) != 4 {
			return nil, fmt.Errorf("rect: got %d coordinates, want 4: %w", len(sh.Rect), errScene)
		}
		bp = tween.NewRectFromPoints(tween.Pt(sh.Rect[0], sh.Rect[1]), tween.Pt(sh.Rect[2], sh.Rect[3])).Path()
	}
	return bp.Path()
}

var goRegular = sync.OnceValues(func() (*sfnt.Font, error) {
	return sfnt.Parse(goregular.TTF)
})

// glyph outlines the first rune of s in Go Regular. The glyph is moved
// down by its size so that it sits below the top edge of the image.
func glyph(s string, size float64) (tween.BezPath, error) {
	if size <= 0 {
		size = 128
	}
	f, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	r := []rune(s)[0]
	bp, err := tween.LoadGlyphPath(f, r, size)
	if err != nil {
		return nil, err
	}
	return bp.Transform(tween.Translate(tween.Vec(0, size))), nil
}

func point(xy []float64) (tween.Point, error) {
	if len(xy) != 2 {
		return tween.Point{}, fmt.Errorf("got %d coordinates, want 2: %w", len(xy), errScene)
	}
	return tween.Pt(xy[0], xy[1]), nil
}

// Colors resolves the fill colors of the first and last frame.
func (sc Scene) Colors() (from, to tween.Color, err error) {
	from, err = namedColor(sc.Fill)
	if err != nil {
		return from, to, err
	}
	if sc.ToFill == "" {
		return from, from, nil
	}
	to, err = namedColor(sc.ToFill)
	return from, to, err
}

func namedColor(name string) (tween.Color, error) {
	if name == "" {
		name = "black"
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return tween.Color{}, fmt.Errorf("unknown color %q: %w", name, errScene)
	}
	return tween.FromColor(c), nil
}
