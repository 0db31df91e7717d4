package interact

import (
	"errors"
	"strings"
	"testing"

	"github.com/wudi/pdfsig/document"
	"github.com/wudi/pdfsig/geom"
	"github.com/wudi/pdfsig/pdf"
	"github.com/wudi/pdfsig/signature"
)

var (
	letterPage = geom.Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}
	unitScale  = geom.Scale{X: 1, Y: 1}
)

type fakeDoc struct {
	pages int
}

func (d *fakeDoc) Path() string         { return "a.pdf" }
func (d *fakeDoc) PageCount() int       { return d.pages }
func (d *fakeDoc) FormFields() []string { return nil }
func (d *fakeDoc) Close() error         { return nil }

func (d *fakeDoc) PageDim(index int) (pdf.Dim, error) {
	if index < 0 || index >= d.pages {
		return pdf.Dim{}, &pdf.PageIndexError{Index: index, Count: d.pages}
	}
	return pdf.Dim{Width: 612, Height: 792}, nil
}

type fakeView struct {
	redraws  int
	statuses []string
}

func (v *fakeView) RedrawOverlay()       { v.redraws++ }
func (v *fakeView) SetStatus(msg string) { v.statuses = append(v.statuses, msg) }

type fixture struct {
	docs *document.Controller
	sig  *signature.Controller
	view *fakeView
	ctrl *Controller
}

func newFixture(t *testing.T, pages int) *fixture {
	t.Helper()
	docs := document.NewController(func(string) (pdf.Document, error) {
		return &fakeDoc{pages: pages}, nil
	}, nil)
	sig := signature.NewController(200, nil)
	view := &fakeView{}
	sizer := func(string) (int, int, error) { return 100, 50, nil }
	ctrl := NewController(docs, sig, view, sizer, 20, 20, nil)

	if _, err := docs.Open("a.pdf"); err != nil {
		t.Fatalf("open: %v", err)
	}
	ctrl.SetPageGeometry(letterPage, unitScale)
	return &fixture{docs: docs, sig: sig, view: view, ctrl: ctrl}
}

func TestClickPlacesLoadedImage(t *testing.T) {
	f := newFixture(t, 2)
	f.sig.SetImage("sig.png")

	f.ctrl.PointerDown(100, 100)

	r, ok := f.sig.Rect()
	if !ok {
		t.Fatal("click did not place the signature")
	}
	if r.X0 != 100 || r.Y0 != 100 {
		t.Errorf("anchor = (%v, %v), want (100, 100)", r.X0, r.Y0)
	}
	if f.view.redraws == 0 {
		t.Error("overlay was not redrawn")
	}
	if len(f.view.statuses) == 0 || !strings.Contains(f.view.statuses[0], "page 1") {
		t.Errorf("statuses = %v, want placement message for page 1", f.view.statuses)
	}
	// The click itself is not a gesture; nothing is in progress.
	if f.ctrl.Mode() != ModeIdle {
		t.Errorf("mode = %v, want idle", f.ctrl.Mode())
	}
}

func TestClickWithoutImageDoesNothing(t *testing.T) {
	f := newFixture(t, 2)
	f.ctrl.PointerDown(100, 100)
	if _, ok := f.sig.Rect(); ok {
		t.Fatal("placement created without an image")
	}
	if f.view.redraws != 0 {
		t.Error("overlay redrawn without a state change")
	}
}

func TestClickWithoutDocumentDoesNothing(t *testing.T) {
	docs := document.NewController(func(string) (pdf.Document, error) {
		return &fakeDoc{pages: 1}, nil
	}, nil)
	sig := signature.NewController(200, nil)
	view := &fakeView{}
	ctrl := NewController(docs, sig, view, func(string) (int, int, error) { return 100, 50, nil }, 20, 20, nil)

	sig.SetImage("sig.png")
	ctrl.PointerDown(100, 100)
	if _, ok := sig.Rect(); ok {
		t.Fatal("placement created without a document")
	}
}

func TestUnreadableImageReportsStatus(t *testing.T) {
	f := newFixture(t, 2)
	f.ctrl.imageSize = func(string) (int, int, error) { return 0, 0, errors.New("bad header") }
	f.sig.SetImage("broken.png")

	f.ctrl.PointerDown(100, 100)
	if _, ok := f.sig.Rect(); ok {
		t.Fatal("placement created from an unreadable image")
	}
	if len(f.view.statuses) == 0 || !strings.Contains(f.view.statuses[0], "Unable to read") {
		t.Errorf("statuses = %v, want unreadable-image message", f.view.statuses)
	}
}

func TestDragMovesPlacement(t *testing.T) {
	f := newFixture(t, 2)
	f.sig.SetImage("sig.png")
	f.ctrl.PointerDown(100, 100) // rect (100,100)-(300,200) at unit scale

	f.ctrl.PointerDown(110, 105)
	if f.ctrl.Mode() != ModeDragging {
		t.Fatalf("mode = %v, want dragging", f.ctrl.Mode())
	}

	f.ctrl.PointerMove(210, 205)
	r, _ := f.sig.Rect()
	if r.X0 != 200 || r.Y0 != 200 {
		t.Errorf("dragged origin = (%v, %v), want (200, 200)", r.X0, r.Y0)
	}
	if r.Width() != 200 || r.Height() != 100 {
		t.Errorf("drag changed size to %vx%v", r.Width(), r.Height())
	}

	f.ctrl.PointerUp()
	if f.ctrl.Mode() != ModeIdle {
		t.Fatalf("mode after release = %v, want idle", f.ctrl.Mode())
	}

	// Motion after release is inert.
	before, _ := f.sig.Rect()
	f.ctrl.PointerMove(400, 400)
	after, _ := f.sig.Rect()
	if before != after {
		t.Error("placement moved after pointer release")
	}
}

func TestHandlePressBeginsResize(t *testing.T) {
	f := newFixture(t, 2)
	f.sig.SetImage("sig.png")
	f.ctrl.PointerDown(100, 100) // rect (100,100)-(300,200)

	// The east grip is centered on (300, 150).
	f.ctrl.PointerDown(302, 152)
	if f.ctrl.Mode() != ModeResizing || f.ctrl.ActiveHandle() != signature.HandleEast {
		t.Fatalf("mode = %v handle = %q, want resizing east", f.ctrl.Mode(), f.ctrl.ActiveHandle())
	}

	// Only the east edge follows the pointer, wherever it goes.
	f.ctrl.PointerMove(350, 700)
	r, _ := f.sig.Rect()
	if r.X1 != 350 {
		t.Errorf("X1 = %v, want 350", r.X1)
	}
	if r.Y0 != 100 || r.Y1 != 200 || r.X0 != 100 {
		t.Errorf("resize moved other edges: %+v", r)
	}

	f.ctrl.PointerUp()
	if f.ctrl.Mode() != ModeIdle || f.ctrl.ActiveHandle() != "" {
		t.Error("resize state survived pointer release")
	}
}

func TestResizeRespectsMinimumDimensions(t *testing.T) {
	f := newFixture(t, 2)
	f.sig.SetImage("sig.png")
	f.ctrl.PointerDown(100, 100) // rect (100,100)-(300,200)

	// West grip at (100, 150); drag far past the east edge.
	f.ctrl.PointerDown(100, 150)
	if f.ctrl.ActiveHandle() != signature.HandleWest {
		t.Fatalf("handle = %q, want west", f.ctrl.ActiveHandle())
	}
	f.ctrl.PointerMove(500, 150)
	r, _ := f.sig.Rect()
	if r.Width() < 20 {
		t.Errorf("width = %v, want >= 20", r.Width())
	}
	if r.X1 != 300 {
		t.Errorf("west resize moved the east edge to %v", r.X1)
	}
}

func TestClickOutsidePlacementOverwrites(t *testing.T) {
	f := newFixture(t, 2)
	f.sig.SetImage("sig.png")
	f.ctrl.PointerDown(100, 100)
	f.ctrl.PointerUp()

	f.ctrl.PointerDown(400, 500)
	r, _ := f.sig.Rect()
	if r.X0 != 400 || r.Y0 != 500 {
		t.Errorf("second click anchored at (%v, %v), want (400, 500)", r.X0, r.Y0)
	}
}

func TestHandleRects(t *testing.T) {
	f := newFixture(t, 2)
	f.sig.SetImage("sig.png")
	f.ctrl.PointerDown(100, 100) // rect (100,100)-(300,200)

	rects := f.ctrl.HandleRects()
	if len(rects) != 4 {
		t.Fatalf("got %d handle rects, want 4", len(rects))
	}
	north := rects[signature.HandleNorth]
	if north.Width() != HandleSize || north.Height() != HandleSize {
		t.Errorf("north grip is %vx%v, want %vx%v", north.Width(), north.Height(), HandleSize, HandleSize)
	}
	if cx := (north.X0 + north.X1) / 2; cx != 200 {
		t.Errorf("north grip centered at x=%v, want 200", cx)
	}
	if cy := (north.Y0 + north.Y1) / 2; cy != 100 {
		t.Errorf("north grip centered at y=%v, want 100", cy)
	}
}

// Walking away from the placement's page and back leaves it untouched
// and still bound to its original page.
func TestNavigationPreservesPlacement(t *testing.T) {
	f := newFixture(t, 2)
	f.sig.SetImage("sig.png")
	f.ctrl.PointerDown(100, 100)
	before, _ := f.sig.Rect()

	f.docs.NextPage()
	if _, ok := f.ctrl.CanvasRect(); ok {
		t.Error("placement visible on a page it does not belong to")
	}
	f.docs.PrevPage()
	after, _ := f.sig.Rect()
	if before != after {
		t.Errorf("placement changed across navigation: %+v -> %+v", before, after)
	}
	if page, _ := f.sig.PageIndex(); page != 0 {
		t.Errorf("placement page = %d, want 0", page)
	}
	if _, ok := f.ctrl.CanvasRect(); !ok {
		t.Error("placement not visible after returning to its page")
	}
}

func TestResetClearsGesture(t *testing.T) {
	f := newFixture(t, 2)
	f.sig.SetImage("sig.png")
	f.ctrl.PointerDown(100, 100)
	f.ctrl.PointerDown(110, 110) // begin drag

	f.ctrl.Reset()
	if f.ctrl.Mode() != ModeIdle {
		t.Errorf("mode = %v, want idle", f.ctrl.Mode())
	}
	// Without page geometry, pointer input is ignored.
	f.ctrl.PointerDown(100, 100)
	if f.ctrl.Mode() != ModeIdle {
		t.Error("gesture started without page geometry")
	}
}
