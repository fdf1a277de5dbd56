package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/delightgo/tween"
)

// Render writes one SVG document per frame of the scene to dir, named
// frame-000.svg onwards, and a plot of the timing curve to curve.svg.
func Render(sc Scene, dir string, logger *slog.Logger) error {
	tc, err := sc.Timing.Curve()
	if err != nil {
		return err
	}
	from, err := sc.From.Path()
	if err != nil {
		return fmt.Errorf("from: %w", err)
	}
	to, err := sc.To.Path()
	if err != nil {
		return fmt.Errorf("to: %w", err)
	}
	fromFill, toFill, err := sc.Colors()
	if err != nil {
		return err
	}
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("image size %gx%g: %w", sc.Width, sc.Height, errScene)
	}

	m, err := tween.NewMorph(from, to)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	samples := tween.Samples(tc, sc.Duration, sc.FPS)
	logger.Info("rendering scene",
		slog.String("timing", tc.String()),
		slog.Int("frames", len(samples)),
		slog.Int("segments", m.Len()))

	fills := tween.ColorValue(fromFill)
	toFills := tween.ColorValue(toFill)
	for i, p := range samples {
		fill, err := tween.Lerp(fills, toFills, p.RelativeValue)
		if err != nil {
			return err
		}
		c, _ := fill.Color()
		name := filepath.Join(dir, fmt.Sprintf("frame-%03d.svg", i))
		err = writeFile(name, func(w io.Writer) error {
			return writeFrame(w, sc.Width, sc.Height, m.At(p.RelativeValue), c)
		})
		if err != nil {
			return err
		}
		logger.Debug("wrote frame", slog.String("file", name), slog.String("progress", p.String()))
	}

	name := filepath.Join(dir, "curve.svg")
	if err := writeFile(name, func(w io.Writer) error {
		return writeCurve(w, sc.Width, sc.Height, tc, samples)
	}); err != nil {
		return err
	}
	logger.Debug("wrote timing curve", slog.String("file", name))
	return nil
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

const svgPrecision = 3

func writeFrame(w io.Writer, width, height float64, p *tween.Path, fill tween.Color) error {
	if _, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n"+`<path fill="%s" fill-opacity="%.3g" d="`,
		width, height, width, height, fill.Hex(), min(max(fill.A, 0), 1)); err != nil {
		return err
	}
	if err := tween.WriteSVG(w, p.Elements(), tween.SVGOptions{MaxPrecision: svgPrecision}); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\"/>\n</svg>\n")
	return err
}

// writeCurve plots the timing curve in a y-up unit square, inset from the
// edges so that overshoot remains visible. Cubic curves are drawn together
// with their control handles, and every timing curve with its samples.
func writeCurve(w io.Writer, width, height float64, tc tween.TimingCurve, samples []tween.Progress) error {
	inset := tween.Rect{X0: 0.1 * width, Y0: 0.2 * height, X1: 0.9 * width, Y1: 0.8 * height}
	aff := tween.MapUnitSquare(inset).Mul(tween.FlipY.ThenTranslate(tween.Vec(0, 1)))
	opts := tween.SVGOptions{MaxPrecision: svgPrecision}

	if _, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		width, height, width, height); err != nil {
		return err
	}
	frame := tween.Rect{X1: 1, Y1: 1}.Path().Transform(aff)
	if _, err := fmt.Fprintf(w, `<path fill="none" stroke="#ccc" d="%s"/>`+"\n", frame.SVG(opts)); err != nil {
		return err
	}

	if c, ok := tc.Curve(); ok {
		var handles tween.BezPath
		handles.MoveTo(c.P0())
		handles.LineTo(c.P1())
		handles.MoveTo(c.P3())
		handles.LineTo(c.P2())
		var curve tween.BezPath
		curve.MoveTo(c.P0())
		curve.CubicTo(c.P1(), c.P2(), c.P3())
		if _, err := fmt.Fprintf(w,
			`<path fill="none" stroke="#999" d="%s"/>`+"\n"+`<path fill="none" stroke="black" stroke-width="2" d="%s"/>`+"\n",
			handles.Transform(aff).SVG(opts), curve.Transform(aff).SVG(opts)); err != nil {
			return err
		}
	}

	var polyline tween.BezPath
	for i, p := range samples {
		pt := tween.Pt(p.RelativeTime, p.RelativeValue)
		if i == 0 {
			polyline.MoveTo(pt)
		} else {
			polyline.LineTo(pt)
		}
	}
	if _, err := fmt.Fprintf(w, `<path fill="none" stroke="crimson" d="%s"/>`+"\n</svg>\n", polyline.Transform(aff).SVG(opts)); err != nil {
		return err
	}
	return nil
}
