// Package pdf is the application's boundary to the PDF engine. The rest
// of the code treats a document as an opaque page-count/page-size/stamp
// surface; everything behind these interfaces is delegated to pdfcpu.
package pdf

import "github.com/wudi/pdfsig/geom"

// Dim is the size of a single page in PDF points.
type Dim struct {
	Width, Height float64
}

// Rect returns the page rectangle with a top-left origin, the
// coordinate convention used throughout the application.
func (d Dim) Rect() geom.Rect {
	return geom.Rect{X0: 0, Y0: 0, X1: d.Width, Y1: d.Height}
}

// Document is a read-side handle for an open PDF.
type Document interface {
	// Path returns the file the document was opened from.
	Path() string
	// PageCount returns the number of pages.
	PageCount() int
	// PageDim returns the size of the page at index, or a
	// *PageIndexError when index is out of range.
	PageDim(index int) (Dim, error)
	// FormFields returns the fully qualified names of the document's
	// AcroForm fields, if any.
	FormFields() []string
	// Close releases the handle. Closing twice is harmless.
	Close() error
}

// Engine opens documents and writes stamped copies.
type Engine interface {
	// Open validates and opens the PDF at path. Failures are reported
	// as *OpenError.
	Open(path string) (Document, error)
	// StampImage writes a copy of srcPath to dstPath with the image at
	// imagePath embedded on the given page at rect (top-left origin,
	// PDF points). srcPath is never modified. Out-of-range pages are
	// reported as *PageIndexError, write failures as *SaveError.
	StampImage(srcPath, dstPath, imagePath string, pageIndex int, rect geom.Rect) error
	// SaveCopy writes an unmodified copy of srcPath to dstPath. Used
	// when the user saves without having placed a signature.
	SaveCopy(srcPath, dstPath string) error
}
