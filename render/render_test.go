package render

import (
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/wudi/pdfsig/pdf"
)

func TestFitScale(t *testing.T) {
	letter := pdf.Dim{Width: 612, Height: 792}
	cases := []struct {
		name           string
		dim            pdf.Dim
		canvasW, canvasH float64
		want           float64
	}{
		{"width limited", letter, 306, 10000, 0.5},
		{"height limited", letter, 10000, 396, 0.5},
		{"floored at minimum", letter, 10, 10, MinZoom},
		{"degenerate page", pdf.Dim{}, 500, 500, MinZoom},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FitScale(tc.dim, tc.canvasW, tc.canvasH)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("FitScale = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPageScale(t *testing.T) {
	dim := pdf.Dim{Width: 612, Height: 792}
	s := PageScale(dim, 1224, 1584)
	if math.Abs(s.X-0.5) > 1e-9 || math.Abs(s.Y-0.5) > 1e-9 {
		t.Fatalf("PageScale = %+v, want {0.5 0.5}", s)
	}

	s = PageScale(dim, 0, 0)
	if s.X != 1 || s.Y != 1 {
		t.Fatalf("PageScale with empty image = %+v, want {1 1}", s)
	}
}

func TestDebouncerCoalesces(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(30 * time.Millisecond)

	for i := 0; i < 5; i++ {
		d.Schedule(func() { calls.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Fatalf("callback ran %d times, want 1", got)
	}
}

func TestDebouncerCancel(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20 * time.Millisecond)

	d.Schedule(func() { calls.Add(1) })
	d.Cancel()

	time.Sleep(60 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Fatalf("cancelled callback still ran %d times", got)
	}

	// Cancelling with nothing pending is harmless.
	d.Cancel()

	// The debouncer remains usable after a cancel.
	d.Schedule(func() { calls.Add(1) })
	time.Sleep(60 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Fatalf("callback after cancel ran %d times, want 1", got)
	}
}
