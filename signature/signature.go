// Package signature owns the placement of the signature image: which
// image is loaded, the rectangle it occupies in PDF space, and the page
// it belongs to. One placement exists per session; loading a new image
// always starts a fresh placement.
package signature

import (
	"github.com/wudi/pdfsig/geom"
	"github.com/wudi/pdfsig/observability"
)

// Handle identifies one of the four edge resize grips.
type Handle string

const (
	HandleNorth Handle = "n"
	HandleSouth Handle = "s"
	HandleWest  Handle = "w"
	HandleEast  Handle = "e"
)

// State is the placement lifecycle: no image chosen, image chosen but
// not yet placed, or placed on a page.
type State int

const (
	Unset State = iota
	ImageLoaded
	Placed
)

func (s State) String() string {
	switch s {
	case ImageLoaded:
		return "image-loaded"
	case Placed:
		return "placed"
	default:
		return "unset"
	}
}

// Placement is an immutable snapshot of a committed placement.
type Placement struct {
	ImagePath string
	Rect      geom.Rect
	PageIndex int
}

// Controller holds the placement state machine. It performs no I/O;
// image dimensions are supplied by the caller.
type Controller struct {
	maxWidth  float64
	imagePath string
	rect      *geom.Rect
	pageIndex int
	log       observability.Logger
}

// NewController returns a Controller whose placed rectangles default to
// maxWidth PDF units wide. A nil logger disables logging.
func NewController(maxWidth float64, log observability.Logger) *Controller {
	if log == nil {
		log = observability.NopLogger{}
	}
	return &Controller{
		maxWidth: maxWidth,
		log:      log.With(observability.String("component", "signature")),
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	switch {
	case c.rect != nil:
		return Placed
	case c.imagePath != "":
		return ImageLoaded
	default:
		return Unset
	}
}

// ImagePath returns the loaded image path, or "".
func (c *Controller) ImagePath() string { return c.imagePath }

// Placement returns a snapshot of the committed placement; ok is false
// unless the state is Placed.
func (c *Controller) Placement() (Placement, bool) {
	if c.rect == nil {
		return Placement{}, false
	}
	return Placement{ImagePath: c.imagePath, Rect: *c.rect, PageIndex: c.pageIndex}, true
}

// Rect returns the placement rectangle in PDF space; ok is false unless
// the state is Placed.
func (c *Controller) Rect() (geom.Rect, bool) {
	if c.rect == nil {
		return geom.Rect{}, false
	}
	return *c.rect, true
}

// PageIndex returns the page the placement belongs to; ok is false
// unless the state is Placed.
func (c *Controller) PageIndex() (int, bool) {
	if c.rect == nil {
		return 0, false
	}
	return c.pageIndex, true
}

// Reset drops the image and any placement.
func (c *Controller) Reset() {
	c.imagePath = ""
	c.rect = nil
	c.pageIndex = 0
}

// SetImage loads a new signature image. Any existing rectangle and page
// association are cleared; the next click places the new image afresh.
func (c *Controller) SetImage(path string) {
	c.imagePath = path
	c.rect = nil
	c.pageIndex = 0
	c.log.Debug("image set", observability.String("path", path))
}

// PlaceOnPage computes the initial rectangle for a click at the given
// canvas point and commits it to pageIndex. (imgW, imgH) is the pixel
// size of the loaded image.
func (c *Controller) PlaceOnPage(canvasX, canvasY float64, pageIndex int, pageRect geom.Rect, scale geom.Scale, imgW, imgH int) geom.Rect {
	r := geom.NewSignatureRect(canvasX, canvasY, pageRect, scale, imgW, imgH, c.maxWidth)
	c.rect = &r
	c.pageIndex = pageIndex
	c.log.Debug("placed",
		observability.Int("page", pageIndex),
		observability.Float64("width", r.Width()),
		observability.Float64("height", r.Height()))
	return r
}

// MoveTo repositions the placement so its top-left sits at the given
// canvas point, preserving width and height and clamping into the page.
// ok is false (and nothing changes) unless the state is Placed.
func (c *Controller) MoveTo(canvasX, canvasY float64, pageRect geom.Rect, scale geom.Scale) (geom.Rect, bool) {
	if c.rect == nil {
		return geom.Rect{}, false
	}
	w, h := c.rect.Width(), c.rect.Height()
	x, y := geom.CanvasToPDF(canvasX, canvasY, pageRect, scale)
	r := geom.ClampRect(geom.Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}, pageRect)
	c.rect = &r
	return r, true
}

// Resize moves a single edge of the placement toward the PDF-space
// pointer position. The opposite edge never moves and the rectangle
// never shrinks below (minWidth, minHeight), regardless of pointer
// overshoot. ok is false unless the state is Placed.
func (c *Controller) Resize(handle Handle, pdfX, pdfY float64, pageRect geom.Rect, minWidth, minHeight float64) (geom.Rect, bool) {
	if c.rect == nil {
		return geom.Rect{}, false
	}
	r := *c.rect
	switch handle {
	case HandleNorth:
		r.Y0 = min(pdfY, r.Y1-minHeight)
	case HandleSouth:
		r.Y1 = max(pdfY, r.Y0+minHeight)
	case HandleWest:
		r.X0 = min(pdfX, r.X1-minWidth)
	case HandleEast:
		r.X1 = max(pdfX, r.X0+minWidth)
	}
	r = geom.ClampRect(r, pageRect)
	c.rect = &r
	return r, true
}

// PointInSignature reports whether a canvas point falls inside the
// placement rectangle. Always false unless the state is Placed.
func (c *Controller) PointInSignature(canvasX, canvasY float64, pageRect geom.Rect, scale geom.Scale) bool {
	if c.rect == nil {
		return false
	}
	return geom.PDFRectToCanvas(*c.rect, pageRect, scale).Contains(canvasX, canvasY)
}
