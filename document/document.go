// Package document owns the navigation state of the single open PDF:
// which file is open and which page is showing. It performs no
// rendering and no drawing; the PDF engine is injected so tests can run
// against fakes.
package document

import (
	"github.com/wudi/pdfsig/observability"
	"github.com/wudi/pdfsig/pdf"
)

// OpenFunc opens the PDF at path.
type OpenFunc func(path string) (pdf.Document, error)

// Controller tracks the open document and the current page index. The
// index invariant 0 <= index < PageCount is restored by ClampPageIndex
// whenever the page count may have changed.
type Controller struct {
	open      OpenFunc
	doc       pdf.Document
	current   string
	pageIndex int
	log       observability.Logger
}

// NewController returns a Controller that opens documents with open.
// A nil logger disables logging.
func NewController(open OpenFunc, log observability.Logger) *Controller {
	if log == nil {
		log = observability.NopLogger{}
	}
	return &Controller{
		open: open,
		log:  log.With(observability.String("component", "document")),
	}
}

// Document returns the open document, or nil.
func (c *Controller) Document() pdf.Document { return c.doc }

// CurrentFile returns the path of the open document, or "".
func (c *Controller) CurrentFile() string { return c.current }

// PageIndex returns the current page index.
func (c *Controller) PageIndex() int { return c.pageIndex }

// PageCount returns the page count of the open document, or 0.
func (c *Controller) PageCount() int {
	if c.doc == nil {
		return 0
	}
	return c.doc.PageCount()
}

// Open replaces the current document with the one at path and resets
// the page index to zero. The previous handle, if any, is not closed;
// callers that want the old document released call Close first.
func (c *Controller) Open(path string) (pdf.Document, error) {
	doc, err := c.open(path)
	if err != nil {
		return nil, err
	}
	c.doc = doc
	c.current = path
	c.pageIndex = 0
	c.log.Info("opened", observability.String("path", path), observability.Int("pages", doc.PageCount()))
	return doc, nil
}

// Reload re-opens path, swallowing failure into a nil result. Used
// after a save to refresh the view without tearing down the session.
func (c *Controller) Reload(path string) pdf.Document {
	doc, err := c.Open(path)
	if err != nil {
		c.log.Warn("reload failed", observability.String("path", path), observability.Error("err", err))
		return nil
	}
	return doc
}

// Close releases the document and resets path and page index.
func (c *Controller) Close() {
	if c.doc != nil {
		c.doc.Close()
	}
	c.doc = nil
	c.current = ""
	c.pageIndex = 0
}

// PageDim returns the dimensions of the current page. The second
// result is false when no document is open or the page is unreadable.
func (c *Controller) PageDim() (pdf.Dim, bool) {
	if c.doc == nil {
		return pdf.Dim{}, false
	}
	dim, err := c.doc.PageDim(c.pageIndex)
	if err != nil {
		return pdf.Dim{}, false
	}
	return dim, true
}

// NextPage advances to the next page; a no-op on the last page or with
// no document.
func (c *Controller) NextPage() {
	if c.doc != nil && c.pageIndex < c.PageCount()-1 {
		c.pageIndex++
	}
}

// PrevPage moves to the previous page; a no-op on page zero or with no
// document.
func (c *Controller) PrevPage() {
	if c.doc != nil && c.pageIndex > 0 {
		c.pageIndex--
	}
}

// ClampPageIndex forces the page index back into [0, PageCount-1], or
// to zero when no document is open. Required after a reload that may
// have changed the page count.
func (c *Controller) ClampPageIndex() {
	if c.doc == nil {
		c.pageIndex = 0
		return
	}
	if max := c.PageCount() - 1; c.pageIndex > max {
		c.pageIndex = max
	}
	if c.pageIndex < 0 {
		c.pageIndex = 0
	}
}
