package tween

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseSVG(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want BezPath
	}{
		{
			"absolute",
			"M10,20 L30,40 H50 V60 Z",
			BezPath{MoveTo(Pt(10, 20)), LineTo(Pt(30, 40)), LineTo(Pt(50, 40)), LineTo(Pt(50, 60)), ClosePath()},
		},
		{
			"relative",
			"m10,20 l5,5 h5 v5 z l1,1",
			BezPath{MoveTo(Pt(10, 20)), LineTo(Pt(15, 25)), LineTo(Pt(20, 25)), LineTo(Pt(20, 30)), ClosePath(), LineTo(Pt(11, 21))},
		},
		{
			"implicit lines",
			"M0,0 10,0 10,10 m1,1 2,2",
			BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(10, 0)), LineTo(Pt(10, 10)), MoveTo(Pt(11, 11)), LineTo(Pt(13, 13))},
		},
		{
			"repeated commands",
			"M0,0 L1,1 2,2 H5 6",
			BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(1, 1)), LineTo(Pt(2, 2)), LineTo(Pt(5, 2)), LineTo(Pt(6, 2))},
		},
		{
			"compact numbers",
			"M0-1.5.5.5L1e1,2",
			BezPath{MoveTo(Pt(0, -1.5)), LineTo(Pt(0.5, 0.5)), LineTo(Pt(10, 2))},
		},
		{
			"whitespace",
			"\n\tM 1 2\r\n L 3 4 ",
			BezPath{MoveTo(Pt(1, 2)), LineTo(Pt(3, 4))},
		},
		{
			"smooth cubic",
			"M0,0 C0,10 10,10 10,0 S20,-10 20,0",
			BezPath{
				MoveTo(Pt(0, 0)),
				CubicTo(Pt(0, 10), Pt(10, 10), Pt(10, 0)),
				CubicTo(Pt(10, -10), Pt(20, -10), Pt(20, 0)),
			},
		},
		{
			"smooth cubic without cubic",
			"M0,0 L5,5 S10,10 20,0",
			BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(5, 5)), CubicTo(Pt(5, 5), Pt(10, 10), Pt(20, 0))},
		},
		{
			"smooth quadratic",
			"M0,0 Q5,10 10,0 T20,0 T30,0",
			BezPath{
				MoveTo(Pt(0, 0)),
				QuadTo(Pt(5, 10), Pt(10, 0)),
				QuadTo(Pt(15, -10), Pt(20, 0)),
				QuadTo(Pt(25, 10), Pt(30, 0)),
			},
		},
		{
			"relative smooth quadratic",
			"m0,0 q5,10 10,0 t10,0",
			BezPath{MoveTo(Pt(0, 0)), QuadTo(Pt(5, 10), Pt(10, 0)), QuadTo(Pt(15, -10), Pt(20, 0))},
		},
		{
			"relative cubic",
			"M10,10 c0,10 10,10 10,0 s10,-10 10,0",
			BezPath{
				MoveTo(Pt(10, 10)),
				CubicTo(Pt(10, 20), Pt(20, 20), Pt(20, 10)),
				CubicTo(Pt(20, 0), Pt(30, 0), Pt(30, 10)),
			},
		},
		{
			"degenerate arc",
			"M0,0 A0,10 0 0,1 20,0 A10,10 0 0,1 20,0",
			BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(20, 0)), LineTo(Pt(20, 0))},
		},
		{
			"empty",
			" \n ",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSVG(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want, got)
		})
	}
}

func TestParseSVGArc(t *testing.T) {
	// Half of a circle of radius 10 centered on (10, 0). The sweep flag
	// picks the half above or below the x axis.
	above := BezPath{
		MoveTo(Pt(0, 0)),
		CubicTo(Pt(0, -5.522847498307932), Pt(4.477152501692065, -10), Pt(10, -10)),
		CubicTo(Pt(15.522847498307932, -10), Pt(20, -5.522847498307936), Pt(20, 0)),
	}
	below := BezPath{
		MoveTo(Pt(0, 0)),
		CubicTo(Pt(0, 5.522847498307932), Pt(4.477152501692065, 10), Pt(10, 10)),
		CubicTo(Pt(15.522847498307932, 10), Pt(20, 5.522847498307936), Pt(20, 0)),
	}
	tests := []struct {
		in   string
		want BezPath
	}{
		{"M0,0 A10,10 0 0,1 20,0", above},
		{"M0,0 A10,10 0 0,0 20,0", below},
		{"M0,0 a10,10 0 0,1 20,0", above},
		// Flags without separators.
		{"M0,0 A10,10 0 0120,0", above},
		// Radii too small to reach are scaled up.
		{"M0,0 A1,1 0 0,1 20,0", above},
		// Three quarters of the circle centered on (10, 0).
		{"M0,0 A10,10 0 1,1 10,10", BezPath{
			MoveTo(Pt(0, 0)),
			CubicTo(Pt(0, -5.522847498307932), Pt(4.477152501692065, -10), Pt(10, -10)),
			CubicTo(Pt(15.522847498307932, -10), Pt(20, -5.522847498307936), Pt(20, 0)),
			CubicTo(Pt(20, 5.522847498307931), Pt(15.522847498307936, 10), Pt(10, 10)),
		}},
		// The short way round, a quarter of the circle centered on (0, 10).
		{"M0,0 A10,10 0 0,1 10,10", BezPath{
			MoveTo(Pt(0, 0)),
			CubicTo(Pt(5.522847498307934, 0), Pt(10, 4.477152501692067), Pt(10, 10)),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSVG(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want, got, cmpopts.EquateApprox(0, 1e-9))
			// The last cubic lands exactly on the end point.
			if end, _ := got[len(got)-1].EndPoint(); end != tt.want[len(tt.want)-1].P2 {
				t.Errorf("got end point %v, want %v", end, tt.want[len(tt.want)-1].P2)
			}
		})
	}
}

func TestParseSVGInvalid(t *testing.T) {
	tests := []struct {
		in      string
		message string
	}{
		{"10,10", "must start with a command"},
		{",M0,0", "must start with a command"},
		{"M0,0 X1,1", "unknown command 'X'"},
		{"M0", "2 numbers should follow command 'M'"},
		{"M1,1 L", "2 numbers should follow command 'L'"},
		{"M1,1 C1,1 2,2", "6 numbers should follow command 'C'"},
		{"M0,0 A1,1 0 2,0 1,1", "arc flags must be 0 or 1"},
		{"M0,0 A1,1 0 0", "arc flags must be 0 or 1"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseSVG(tt.in)
			if err == nil {
				t.Fatal("got no error")
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("got error %q, want it to mention %q", err, tt.message)
			}
		})
	}
}

func TestMustParseSVG(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseSVG didn't panic")
		}
	}()
	MustParseSVG("M0,0 L")
}

func TestSVGSingle(t *testing.T) {
	segments := []PathSegment{
		cubicSegment(CubicBez{
			Pt(10.0, 10.0),
			Pt(20.0, 20.0),
			Pt(30.0, 30.0),
			Pt(40.0, 40.0),
		}),
	}
	var path BezPath = slices.Collect(Elements(slices.Values(segments)))
	want := "M10,10 C20,20 30,30 40,40"
	got := path.SVG(SVGOptions{})
	diff(t, want, got)
}

func TestSVGTwoMove(t *testing.T) {
	segments := []PathSegment{
		cubicSegment(CubicBez{
			Pt(10.0, 10.0),
			Pt(20.0, 20.0),
			Pt(30.0, 30.0),
			Pt(40.0, 40.0),
		}),
		cubicSegment(CubicBez{
			Pt(50.0, 50.0),
			Pt(30.0, 30.0),
			Pt(20.0, 20.0),
			Pt(10.0, 10.0),
		}),
	}
	var path BezPath = slices.Collect(Elements(slices.Values(segments)))
	want := "M10,10 C20,20 30,30 40,40 M50,50 C30,30 20,20 10,10"
	got := path.SVG(SVGOptions{})
	diff(t, want, got)
}

func TestSVGPrecision(t *testing.T) {
	path := BezPath{MoveTo(Pt(1.23456, 0)), QuadTo(Pt(-0.00001, 2), Pt(1.5, 1.5)), ClosePath()}
	diff(t, "M1.235,0 Q0,2 1.5,1.5 Z", path.SVG(SVGOptions{MaxPrecision: 3}))
	diff(t, "M1.23456,0 Q-0.00001,2 1.5,1.5 Z", path.SVG(SVGOptions{}))
}

func TestWriteSVGInvalid(t *testing.T) {
	var sb strings.Builder
	err := BezPath{MoveTo(Pt(0, 0)), {}}.WriteSVG(&sb, SVGOptions{})
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got error %v, want ErrInvalidGeometry", err)
	}
}

func TestSVGRoundTrip(t *testing.T) {
	for _, in := range []BezPath{
		{MoveTo(Pt(0, 0)), LineTo(Pt(4, 0)), QuadTo(Pt(4, 4), Pt(0, 4)), CubicTo(Pt(-1, 3), Pt(-1, 1), Pt(0, 0)), ClosePath()},
		Circle{Pt(50, 50), 25}.Path(7),
		NewStar(Pt(0, 0), 5, 100).Path(),
		Ellipse{Pt(3, 4), Vec(10, 5), 0.3}.Path(),
	} {
		got, err := ParseSVG(in.SVG(SVGOptions{}))
		if err != nil {
			t.Fatal(err)
		}
		diff(t, in, got, cmpopts.EquateApprox(1e-12, 1e-12))
	}
}
