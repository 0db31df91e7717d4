package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestCanvasToPDF(t *testing.T) {
	pageRect := Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}
	scale := Scale{X: 2, Y: 3}

	x, y := CanvasToPDF(10, 20, pageRect, scale)
	if x != 20 || y != 60 {
		t.Fatalf("CanvasToPDF(10, 20) = (%v, %v), want (20, 60)", x, y)
	}

	// A page rect with a nonzero origin shifts the result.
	x, y = CanvasToPDF(10, 20, Rect{X0: 5, Y0: 7, X1: 617, Y1: 799}, scale)
	if x != 25 || y != 67 {
		t.Fatalf("CanvasToPDF with offset origin = (%v, %v), want (25, 67)", x, y)
	}
}

func TestPDFRectToCanvasRoundTrip(t *testing.T) {
	cases := []struct {
		name     string
		pageRect Rect
		scale    Scale
	}{
		{"letter at 1:1", Rect{0, 0, 612, 792}, Scale{1, 1}},
		{"letter zoomed out", Rect{0, 0, 612, 792}, Scale{1.37, 1.37}},
		{"offset origin", Rect{-10, 12.5, 602, 804.5}, Scale{0.75, 0.75}},
		{"anisotropic scale", Rect{0, 0, 595, 842}, Scale{0.5, 2.25}},
	}
	rects := []Rect{
		{0, 0, 100, 50},
		{36, 36, 300, 300},
		{12.25, 700.5, 90.75, 780.25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, r := range rects {
				canvas := PDFRectToCanvas(r, tc.pageRect, tc.scale)
				x0, y0 := CanvasToPDF(canvas.X0, canvas.Y0, tc.pageRect, tc.scale)
				x1, y1 := CanvasToPDF(canvas.X1, canvas.Y1, tc.pageRect, tc.scale)
				got := Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
				if diff := cmp.Diff(r, got, approx); diff != "" {
					t.Errorf("round trip of %+v mismatch (-want +got):\n%s", r, diff)
				}
			}
		})
	}
}

func TestPDFRectToCanvasDegenerateScale(t *testing.T) {
	got := PDFRectToCanvas(Rect{10, 10, 20, 20}, Rect{0, 0, 612, 792}, Scale{0, 0})
	if got != (Rect{}) {
		t.Fatalf("expected zero rect for zero scale, got %+v", got)
	}
}

func TestClampRectKeepsSizeInsideBounds(t *testing.T) {
	bounds := Rect{0, 0, 200, 200}
	cases := []struct {
		name string
		in   Rect
	}{
		{"already inside", Rect{50, 50, 100, 100}},
		{"overflows right", Rect{180, 50, 230, 100}},
		{"overflows bottom", Rect{50, 180, 100, 230}},
		{"overflows bottom-right", Rect{190, 190, 240, 240}},
		{"overflows left", Rect{-30, 50, 20, 100}},
		{"overflows top-left", Rect{-30, -10, 20, 40}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClampRect(tc.in, bounds)
			if got.X0 < bounds.X0 || got.Y0 < bounds.Y0 || got.X1 > bounds.X1 || got.Y1 > bounds.Y1 {
				t.Errorf("ClampRect(%+v) = %+v escapes bounds", tc.in, got)
			}
			if math.Abs(got.Width()-tc.in.Width()) > 1e-9 || math.Abs(got.Height()-tc.in.Height()) > 1e-9 {
				t.Errorf("ClampRect(%+v) = %+v changed size", tc.in, got)
			}
		})
	}
}

// When bounds are smaller than the rectangle, the top-left correction
// wins and the bottom-right is allowed to stick out again.
func TestClampRectOversizedRect(t *testing.T) {
	bounds := Rect{0, 0, 50, 50}
	got := ClampRect(Rect{10, 10, 110, 110}, bounds)

	want := Rect{0, 0, 100, 100}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("ClampRect mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSignatureRectAspectLocked(t *testing.T) {
	pageRect := Rect{0, 0, 612, 792}
	scale := Scale{1, 1}

	// A 100x50 image with max width 80 always yields an 80x40 rect,
	// wherever the click lands.
	for _, click := range []Point{{0, 0}, {300, 400}, {611, 791}} {
		r := NewSignatureRect(click.X, click.Y, pageRect, scale, 100, 50, 80)
		if math.Abs(r.Width()-80) > 1e-9 || math.Abs(r.Height()-40) > 1e-9 {
			t.Errorf("click %+v: got %vx%v, want 80x40", click, r.Width(), r.Height())
		}
		if r.X0 < pageRect.X0 || r.Y0 < pageRect.Y0 || r.X1 > pageRect.X1 || r.Y1 > pageRect.Y1 {
			t.Errorf("click %+v: rect %+v escapes page", click, r)
		}
	}
}

func TestNewSignatureRectZeroWidthImage(t *testing.T) {
	r := NewSignatureRect(10, 10, Rect{0, 0, 612, 792}, Scale{1, 1}, 0, 120, 80)
	// Aspect defaults to 1.0 rather than dividing by zero.
	if math.Abs(r.Width()-r.Height()) > 1e-9 {
		t.Fatalf("expected square rect for zero-width image, got %vx%v", r.Width(), r.Height())
	}
}

func TestNewSignatureRectWidthBounds(t *testing.T) {
	// Width is capped to the page width...
	r := NewSignatureRect(0, 0, Rect{0, 0, 60, 792}, Scale{1, 1}, 100, 50, 200)
	if math.Abs(r.Width()-60) > 1e-9 {
		t.Fatalf("width = %v, want page width 60", r.Width())
	}
	// ...and floored at the minimum signature width.
	r = NewSignatureRect(0, 0, Rect{0, 0, 612, 792}, Scale{1, 1}, 100, 50, 4)
	if math.Abs(r.Width()-MinSignatureWidth) > 1e-9 {
		t.Fatalf("width = %v, want %v", r.Width(), MinSignatureWidth)
	}
}

func TestMatrixInverse(t *testing.T) {
	m := Scaling(2, 4).Multiply(Translation(10, 20))
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}
	p := Point{X: 3, Y: 5}
	back := inv.Transform(m.Transform(p))
	if diff := cmp.Diff(p, back, approx); diff != "" {
		t.Fatalf("inverse round trip mismatch (-want +got):\n%s", diff)
	}

	if _, err := Scaling(0, 1).Inverse(); err == nil {
		t.Fatal("expected error inverting singular matrix")
	}
}
