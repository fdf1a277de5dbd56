package main

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delightgo/tween"
)

func TestLoadSceneDefaults(t *testing.T) {
	sc, err := LoadScene(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultScene(), sc)
}

func TestLoadScene(t *testing.T) {
	const scene = `
duration = 0.5
fps = 30
fill = "Teal"
width = 320

[timing]
points = [0.1, 0.8, 0.3, 1.0]

[from]
svg = "M10,10 h100 v100 h-100 z"

[to.star]
center = [60, 60]
radius = 50
points = 6
inner = 0.5
`
	sc, err := LoadScene(strings.NewReader(scene))
	require.NoError(t, err)
	assert.Equal(t, 0.5, sc.Duration)
	assert.Equal(t, 30, sc.FPS)
	assert.Equal(t, "Teal", sc.Fill)
	assert.Equal(t, "orange", sc.ToFill, "unset values keep their defaults")
	assert.Equal(t, 320.0, sc.Width)
	assert.Equal(t, 200.0, sc.Height)
	assert.Equal(t, "M10,10 h100 v100 h-100 z", sc.From.SVG)
	assert.Nil(t, sc.From.Circle, "shapes replace the default shape")
	require.NotNil(t, sc.To.Star)
	assert.Equal(t, 6, sc.To.Star.Points)

	tc, err := sc.Timing.Curve()
	require.NoError(t, err)
	c, ok := tc.Curve()
	require.True(t, ok)
	assert.Equal(t, tween.CubicBez{tween.Pt(0, 0), tween.Pt(0.1, 0.8), tween.Pt(0.3, 1), tween.Pt(1, 1)}, c)

	star, err := sc.To.Path()
	require.NoError(t, err)
	assert.Equal(t, 13, star.Len())
	box := star.BoundingBox()
	assert.InDelta(t, 60-25*math.Sqrt(3), box.X0, 1e-9)
	assert.InDelta(t, 10, box.Y0, 1e-9)
	assert.InDelta(t, 60+25*math.Sqrt(3), box.X1, 1e-9)
	assert.InDelta(t, 110, box.Y1, 1e-9)

	fill, toFill, err := sc.Colors()
	require.NoError(t, err)
	assert.Equal(t, "#008080", fill.Hex())
	assert.Equal(t, "#ffa500", toFill.Hex())
}

func TestLoadSceneErrors(t *testing.T) {
	tests := []struct {
		name  string
		scene string
		msg   string
	}{
		{"syntax", "fps = ", "scene:1:"},
		{"unknown field", "speed = 3", "speed"},
		{"wrong type", `fps = "fast"`, "scene"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScene(strings.NewReader(tt.scene))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestTimingCurve(t *testing.T) {
	tc, err := TimingConfig{}.Curve()
	require.NoError(t, err)
	assert.Equal(t, tween.SystemDefaultTiming, tc.Kind())

	tc, err = TimingConfig{Preset: "easeOutBack"}.Curve()
	require.NoError(t, err)
	c, _ := tc.Curve()
	assert.Equal(t, tween.EaseOutBack, c)

	tc, err = TimingConfig{Spring: &SpringConfig{Mass: 1, Damping: 12, Stiffness: 150}}.Curve()
	require.NoError(t, err)
	s, ok := tc.Spring()
	require.True(t, ok)
	assert.Equal(t, 150.0, s.Stiffness)

	for _, bad := range []TimingConfig{
		{Preset: "bouncy"},
		{Points: []float64{0.1, 0.2}},
		{Preset: "linear", Points: []float64{0, 0, 1, 1}},
		{Spring: &SpringConfig{Mass: 0, Damping: 1, Stiffness: 1}},
	} {
		_, err := bad.Curve()
		assert.Error(t, err, "%+v", bad)
	}
}

func TestShapePath(t *testing.T) {
	p, err := ShapeConfig{Rect: []float64{10, 10, 0, 0}}.Path()
	require.NoError(t, err)
	assert.Equal(t, "M0,0 L10,0 L10,10 L0,10 Z", p.String())

	p, err = ShapeConfig{Circle: &CircleConfig{Center: []float64{0, 0}, Radius: 10, Arcs: 8}}.Path()
	require.NoError(t, err)
	assert.Equal(t, 10, p.Len())

	p, err = ShapeConfig{Glyph: "O", Size: 100}.Path()
	require.NoError(t, err)
	box := p.BoundingBox()
	assert.GreaterOrEqual(t, box.Y0, 0.0, "glyphs are moved below the top edge")
	assert.Less(t, box.Y1, 110.0)

	for _, bad := range []ShapeConfig{
		{},
		{SVG: "M0,0 L1,1", Glyph: "a"},
		{SVG: "M0,0 L"},
		{Glyph: " "},
		{Rect: []float64{1, 2, 3}},
		{Circle: &CircleConfig{Center: []float64{1}}},
		{Star: &StarConfig{Center: []float64{1, 2, 3}}},
	} {
		_, err := bad.Path()
		assert.Error(t, err, "%+v", bad)
	}
}

func TestColors(t *testing.T) {
	from, to, err := Scene{Fill: "red"}.Colors()
	require.NoError(t, err)
	assert.Equal(t, from, to)
	assert.Equal(t, "#ff0000", from.Hex())

	from, _, err = Scene{}.Colors()
	require.NoError(t, err)
	assert.Equal(t, "#000000", from.Hex())

	_, _, err = Scene{Fill: "red", ToFill: "ultraviolet"}.Colors()
	assert.ErrorIs(t, err, errScene)
}
