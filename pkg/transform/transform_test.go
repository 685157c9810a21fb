package transform

import (
	"math"
	"testing"
)

func TestApplyInvertRoundTrip(t *testing.T) {
	tr := Transform{Scale: 2.5, TX: -40, TY: 17}
	p := Point{X: 123.4, Y: -56.7}

	got := tr.Invert(tr.Apply(p))
	if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
		t.Errorf("round trip = %+v, want %+v", got, p)
	}
}

func TestZoomAtFocalInvariance(t *testing.T) {
	cases := []struct {
		name   string
		tr     Transform
		factor float64
		focal  Point
	}{
		{"identity zoom in", Identity(), 1.2, Point{100, 80}},
		{"panned zoom out", Transform{Scale: 1, TX: 33, TY: -12}, 1 / 1.2, Point{0, 0}},
		{"scaled zoom in", Transform{Scale: 1.5, TX: -200, TY: 90}, 1.4, Point{640, 360}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content := tc.tr.Invert(tc.focal)
			next := ZoomAt(tc.tr, tc.factor, tc.focal, 0.75, 3)
			back := next.Apply(content)
			if math.Abs(back.X-tc.focal.X) > 1e-9 || math.Abs(back.Y-tc.focal.Y) > 1e-9 {
				t.Errorf("focal point moved: %+v -> %+v", tc.focal, back)
			}
		})
	}
}

func TestZoomAtClampNoOp(t *testing.T) {
	tr := Transform{Scale: 3, TX: 10, TY: 20}

	// Already at max: zooming in further must return the input unchanged.
	got := ZoomAt(tr, 1.2, Point{50, 50}, 0.75, 3)
	if got != tr {
		t.Errorf("zoom at max scale = %+v, want unchanged %+v", got, tr)
	}
}

func TestRepeatedZoomOutConvergesToMin(t *testing.T) {
	tr := Identity()
	for i := 0; i < 50; i++ {
		tr = ZoomAt(tr, 1/1.2, Point{400, 300}, 0.75, 3)
	}
	if tr.Scale != 0.75 {
		t.Errorf("scale = %v, want exactly 0.75", tr.Scale)
	}
}

func TestScaleStaysInBounds(t *testing.T) {
	tr := Identity()
	factors := []float64{1.2, 1.2, 0.5, 4, 1 / 1.2, 0.1, 9, 1.2}
	for _, f := range factors {
		tr = ZoomAt(tr, f, Point{10, 10}, 0.75, 3)
		if tr.Scale < 0.75 || tr.Scale > 3 {
			t.Fatalf("scale %v escaped [0.75, 3] after factor %v", tr.Scale, f)
		}
	}
}

func TestPanRoundTripExact(t *testing.T) {
	tr := Identity()
	moved := tr.Translate(37, -91).Translate(-37, 91)
	if moved != tr {
		t.Errorf("pan by (dx,dy) then (-dx,-dy) = %+v, want %+v", moved, tr)
	}
}

func TestInvertZeroScale(t *testing.T) {
	tr := Transform{Scale: 0, TX: 5, TY: 5}
	got := tr.Invert(Point{10, 10})
	if math.IsNaN(got.X) || math.IsInf(got.X, 0) {
		t.Errorf("invert with zero scale produced %v", got.X)
	}
}
