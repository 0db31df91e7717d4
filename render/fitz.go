package render

import (
	"image"

	"github.com/gen2brain/go-fitz"

	"github.com/wudi/pdfsig/observability"
	"github.com/wudi/pdfsig/pdf"
)

// FitzRasterizer renders pages with MuPDF via go-fitz. The document is
// opened per render; redraws are debounced so this stays cheap enough
// for interactive use.
type FitzRasterizer struct {
	log observability.Logger
}

// NewFitzRasterizer returns a MuPDF-backed rasterizer. A nil logger
// disables logging.
func NewFitzRasterizer(log observability.Logger) *FitzRasterizer {
	if log == nil {
		log = observability.NopLogger{}
	}
	return &FitzRasterizer{log: log.With(observability.String("component", "render"))}
}

func (r *FitzRasterizer) Render(path string, pageIndex int, zoom float64) (image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, &pdf.OpenError{Path: path, Err: err}
	}
	defer doc.Close()

	if pageIndex < 0 || pageIndex >= doc.NumPage() {
		return nil, &pdf.PageIndexError{Index: pageIndex, Count: doc.NumPage()}
	}

	// go-fitz renders at 72 DPI for zoom 1.0.
	img, err := doc.ImageDPI(pageIndex, 72*zoom)
	if err != nil {
		return nil, &pdf.OpenError{Path: path, Err: err}
	}

	r.log.Debug("page rendered",
		observability.Int("page", pageIndex),
		observability.Float64("zoom", zoom),
		observability.Int("width", img.Bounds().Dx()),
		observability.Int("height", img.Bounds().Dy()))
	return img, nil
}

func (r *FitzRasterizer) Close() error { return nil }
