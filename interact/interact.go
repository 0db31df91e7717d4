// Package interact translates raw pointer events on the page canvas
// into placement state transitions: click-to-place, drag-to-move and
// edge-handle resizing. It knows nothing about the GUI toolkit; the UI
// feeds it canvas coordinates and implements the View interface.
package interact

import (
	"fmt"

	"github.com/wudi/pdfsig/document"
	"github.com/wudi/pdfsig/geom"
	"github.com/wudi/pdfsig/observability"
	"github.com/wudi/pdfsig/signature"
)

// View is the controller's outbound surface: redraw the signature
// overlay after a state change and report status text.
type View interface {
	RedrawOverlay()
	SetStatus(msg string)
}

// ImageSizer probes the pixel dimensions of an image file.
type ImageSizer func(path string) (width, height int, err error)

// Mode is the pointer interaction in progress. Modes are mutually
// exclusive.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
)

// HandleSize is the edge length, in canvas pixels, of the square resize
// grips drawn on the N/S/E/W midpoints of the placement rectangle.
const HandleSize = 12.0

// Controller binds pointer events to the document and signature state.
type Controller struct {
	docs      *document.Controller
	sig       *signature.Controller
	view      View
	imageSize ImageSizer
	minWidth  float64
	minHeight float64
	log       observability.Logger

	pageRect geom.Rect
	scale    geom.Scale
	havePage bool

	mode         Mode
	activeHandle signature.Handle
	dragOffset   geom.Point
}

// NewController wires the interaction controller. minWidth/minHeight
// are the smallest placement dimensions resizing may produce, in PDF
// points. A nil logger disables logging.
func NewController(docs *document.Controller, sig *signature.Controller, view View, imageSize ImageSizer, minWidth, minHeight float64, log observability.Logger) *Controller {
	if log == nil {
		log = observability.NopLogger{}
	}
	return &Controller{
		docs:      docs,
		sig:       sig,
		view:      view,
		imageSize: imageSize,
		minWidth:  minWidth,
		minHeight: minHeight,
		log:       log.With(observability.String("component", "interact")),
	}
}

// SetPageGeometry records the page rectangle and render scale of the
// page currently on the canvas. Called after every render.
func (c *Controller) SetPageGeometry(pageRect geom.Rect, scale geom.Scale) {
	c.pageRect = pageRect
	c.scale = scale
	c.havePage = true
}

// CancelGesture drops any in-progress drag or resize. Called when the
// overlay is removed while the document stays open.
func (c *Controller) CancelGesture() {
	c.mode = ModeIdle
	c.activeHandle = ""
}

// Reset additionally forgets the page geometry. Called when the
// document closes; pointer input is ignored until the next render.
func (c *Controller) Reset() {
	c.CancelGesture()
	c.havePage = false
}

// Mode returns the interaction in progress.
func (c *Controller) Mode() Mode { return c.mode }

// ActiveHandle returns the handle a resize is bound to, or "".
func (c *Controller) ActiveHandle() signature.Handle { return c.activeHandle }

// placementOnCurrentPage reports whether a committed placement exists
// on the page currently showing.
func (c *Controller) placementOnCurrentPage() bool {
	page, ok := c.sig.PageIndex()
	return ok && page == c.docs.PageIndex()
}

// CanvasRect returns the placement rectangle in canvas space; ok is
// false when there is no placement on the current page.
func (c *Controller) CanvasRect() (geom.Rect, bool) {
	if !c.havePage || !c.placementOnCurrentPage() {
		return geom.Rect{}, false
	}
	r, ok := c.sig.Rect()
	if !ok {
		return geom.Rect{}, false
	}
	return geom.PDFRectToCanvas(r, c.pageRect, c.scale), true
}

// HandleRects returns the canvas-space rectangles of the four resize
// grips for the current placement, keyed by handle.
func (c *Controller) HandleRects() map[signature.Handle]geom.Rect {
	cr, ok := c.CanvasRect()
	if !ok {
		return nil
	}
	half := HandleSize / 2
	centers := map[signature.Handle]geom.Point{
		signature.HandleNorth: {X: (cr.X0 + cr.X1) / 2, Y: cr.Y0},
		signature.HandleSouth: {X: (cr.X0 + cr.X1) / 2, Y: cr.Y1},
		signature.HandleWest:  {X: cr.X0, Y: (cr.Y0 + cr.Y1) / 2},
		signature.HandleEast:  {X: cr.X1, Y: (cr.Y0 + cr.Y1) / 2},
	}
	rects := make(map[signature.Handle]geom.Rect, len(centers))
	for h, p := range centers {
		rects[h] = geom.Rect{X0: p.X - half, Y0: p.Y - half, X1: p.X + half, Y1: p.Y + half}
	}
	return rects
}

// handleAt returns the handle whose grip contains the canvas point.
func (c *Controller) handleAt(x, y float64) (signature.Handle, bool) {
	for h, r := range c.HandleRects() {
		if r.Contains(x, y) {
			return h, true
		}
	}
	return "", false
}

// PointerDown starts a resize when the press lands on a grip, a drag
// when it lands inside the placement, and otherwise places the loaded
// image at the click point, overwriting any prior rectangle.
func (c *Controller) PointerDown(x, y float64) {
	if !c.havePage || c.docs.Document() == nil {
		return
	}

	if c.mode == ModeIdle {
		if h, ok := c.handleAt(x, y); ok {
			c.mode = ModeResizing
			c.activeHandle = h
			return
		}
	}

	if c.mode != ModeResizing && c.placementOnCurrentPage() &&
		c.sig.PointInSignature(x, y, c.pageRect, c.scale) {
		cr, _ := c.CanvasRect()
		c.dragOffset = geom.Point{X: x - cr.X0, Y: y - cr.Y0}
		c.mode = ModeDragging
		return
	}

	if c.sig.ImagePath() == "" || c.mode == ModeResizing {
		return
	}
	c.place(x, y)
}

func (c *Controller) place(x, y float64) {
	imgW, imgH, err := c.imageSize(c.sig.ImagePath())
	if err != nil {
		c.log.Warn("image unreadable", observability.Error("err", err))
		c.view.SetStatus("Unable to read the signature image.")
		return
	}
	c.sig.PlaceOnPage(x, y, c.docs.PageIndex(), c.pageRect, c.scale, imgW, imgH)
	c.view.SetStatus(statusPlaced(c.docs.PageIndex()))
	c.view.RedrawOverlay()
}

// PointerMove continues a drag or resize; in ModeIdle it does nothing.
func (c *Controller) PointerMove(x, y float64) {
	switch c.mode {
	case ModeDragging:
		if _, ok := c.sig.MoveTo(x-c.dragOffset.X, y-c.dragOffset.Y, c.pageRect, c.scale); ok {
			c.view.RedrawOverlay()
		}
	case ModeResizing:
		pdfX, pdfY := geom.CanvasToPDF(x, y, c.pageRect, c.scale)
		if _, ok := c.sig.Resize(c.activeHandle, pdfX, pdfY, c.pageRect, c.minWidth, c.minHeight); ok {
			c.view.RedrawOverlay()
		}
	}
}

// PointerUp commits the gesture and returns to ModeIdle; no interaction
// state survives the release.
func (c *Controller) PointerUp() {
	c.mode = ModeIdle
	c.activeHandle = ""
}

func statusPlaced(pageIndex int) string {
	return fmt.Sprintf("Signature ready on page %d. Drag or resize, then click Save PDF.", pageIndex+1)
}
