// Package render turns PDF pages into raster images for the canvas and
// schedules redraws. Rasterization itself is delegated to MuPDF behind
// the Rasterizer interface so the rest of the application can be tested
// with fakes.
package render

import (
	"image"

	"github.com/wudi/pdfsig/geom"
	"github.com/wudi/pdfsig/pdf"
)

// Rasterizer renders a single page of the document at path. zoom is
// pixels per PDF point; 1.0 renders at 72 DPI.
type Rasterizer interface {
	Render(path string, pageIndex int, zoom float64) (image.Image, error)
	Close() error
}

// MinZoom keeps very large pages from rendering into uselessly tiny
// rasters when the window is small.
const MinZoom = 0.25

// FitScale returns the zoom that fits a page of dim inside a canvas of
// canvasW x canvasH pixels while preserving aspect ratio, floored at
// MinZoom.
func FitScale(dim pdf.Dim, canvasW, canvasH float64) float64 {
	if dim.Width <= 0 || dim.Height <= 0 {
		return MinZoom
	}
	zoom := canvasW / dim.Width
	if z := canvasH / dim.Height; z < zoom {
		zoom = z
	}
	if zoom < MinZoom {
		zoom = MinZoom
	}
	return zoom
}

// PageScale returns PDF units per rendered pixel for a page of dim
// rendered into an image of imgW x imgH pixels.
func PageScale(dim pdf.Dim, imgW, imgH int) geom.Scale {
	if imgW == 0 || imgH == 0 {
		return geom.Scale{X: 1, Y: 1}
	}
	return geom.Scale{
		X: dim.Width / float64(imgW),
		Y: dim.Height / float64(imgH),
	}
}
