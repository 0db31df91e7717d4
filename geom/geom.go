// Package geom maps between the two coordinate spaces the application
// works in: canvas space (pixels of the rendered page image, origin
// top-left) and PDF space (points, as reported by the page's media box).
// It also owns the rectangle policies used when a signature is placed,
// moved or resized. Everything here is pure; state lives elsewhere.
package geom

// Rect is an axis-aligned rectangle in a single coordinate space.
// A well-formed Rect has X0 <= X1 and Y0 <= Y1.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Width returns x extent of r.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the y extent of r.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Contains reports whether the point (x, y) lies within r, borders
// included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Translated returns r shifted by (dx, dy).
func (r Rect) Translated(dx, dy float64) Rect {
	return Rect{r.X0 + dx, r.Y0 + dy, r.X1 + dx, r.Y1 + dy}
}

// Scale is the render scale of the current page: PDF units per canvas
// pixel, per axis. It is recomputed on every render.
type Scale struct {
	X, Y float64
}

// canvasMatrix is the affine map from canvas space into PDF space for
// the given page rectangle and render scale.
func canvasMatrix(pageRect Rect, scale Scale) Matrix {
	return Scaling(scale.X, scale.Y).Multiply(Translation(pageRect.X0, pageRect.Y0))
}

// CanvasToPDF converts a canvas-space point to PDF space.
func CanvasToPDF(x, y float64, pageRect Rect, scale Scale) (float64, float64) {
	p := canvasMatrix(pageRect, scale).Transform(Point{X: x, Y: y})
	return p.X, p.Y
}

// PDFRectToCanvas converts a PDF-space rectangle to canvas space. For a
// degenerate scale the map has no inverse and the zero Rect is returned.
func PDFRectToCanvas(r Rect, pageRect Rect, scale Scale) Rect {
	inv, err := canvasMatrix(pageRect, scale).Inverse()
	if err != nil {
		return Rect{}
	}
	tl := inv.Transform(Point{X: r.X0, Y: r.Y0})
	br := inv.Transform(Point{X: r.X1, Y: r.Y1})
	return Rect{X0: tl.X, Y0: tl.Y, X1: br.X, Y1: br.Y}
}

// ClampRect confines r to bounds by translation only; width and height
// are always preserved. The rectangle is first slid left/up if it
// overflows the bottom-right of bounds, then slid right/down if the
// top-left still falls outside. The top-left correction takes priority:
// when bounds are smaller than r the result keeps r's size and its
// bottom-right may extend past bounds again.
func ClampRect(r, bounds Rect) Rect {
	c := r
	if dx := c.X1 - bounds.X1; dx > 0 {
		c = c.Translated(-dx, 0)
	}
	if dy := c.Y1 - bounds.Y1; dy > 0 {
		c = c.Translated(0, -dy)
	}
	if c.X0 < bounds.X0 {
		c = c.Translated(bounds.X0-c.X0, 0)
	}
	if c.Y0 < bounds.Y0 {
		c = c.Translated(0, bounds.Y0-c.Y0)
	}
	return c
}

// MinSignatureWidth is the smallest width, in PDF units, a freshly
// placed signature rectangle may have.
const MinSignatureWidth = 10.0

// NewSignatureRect computes the initial rectangle for a signature image
// whose pixel size is (imgW, imgH), anchored with its top-left corner at
// the canvas click point. The width is maxWidth capped to the page width
// and floored at MinSignatureWidth; the height follows the image aspect
// ratio (1.0 when imgW is zero). The result is clamped into pageRect.
func NewSignatureRect(canvasX, canvasY float64, pageRect Rect, scale Scale, imgW, imgH int, maxWidth float64) Rect {
	width := maxWidth
	if pw := pageRect.Width(); width > pw {
		width = pw
	}
	if width < MinSignatureWidth {
		width = MinSignatureWidth
	}

	aspect := 1.0
	if imgW != 0 {
		aspect = float64(imgH) / float64(imgW)
	}
	height := width * aspect

	x, y := CanvasToPDF(canvasX, canvasY, pageRect, scale)
	return ClampRect(Rect{X0: x, Y0: y, X1: x + width, Y1: y + height}, pageRect)
}
