package pdf

import (
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/cli"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/wudi/pdfsig/geom"
	"github.com/wudi/pdfsig/imaging"
	"github.com/wudi/pdfsig/observability"
)

// PDFCPUEngine implements Engine on top of pdfcpu. Documents are kept
// on disk and re-read per operation; pdfcpu owns all parsing, page-tree
// handling and writing.
type PDFCPUEngine struct {
	conf *model.Configuration
	log  observability.Logger
}

// NewEngine returns a pdfcpu-backed engine. A nil logger disables
// logging.
func NewEngine(log observability.Logger) *PDFCPUEngine {
	if log == nil {
		log = observability.NopLogger{}
	}
	return &PDFCPUEngine{
		conf: model.NewDefaultConfiguration(),
		log:  log.With(observability.String("component", "pdf")),
	}
}

func (e *PDFCPUEngine) Open(path string) (Document, error) {
	if err := api.ValidateFile(path, e.conf); err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	pageDims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	dims := make([]Dim, len(pageDims))
	for i, d := range pageDims {
		dims[i] = Dim{Width: d.Width, Height: d.Height}
	}

	// Form fields are informational only; a document without an
	// AcroForm is still perfectly signable.
	fields, err := cli.ListFormFieldsFile([]string{path}, e.conf)
	if err != nil {
		fields = nil
	}

	e.log.Info("document opened",
		observability.String("path", path),
		observability.Int("pages", len(dims)),
		observability.Int("form_fields", len(fields)))
	return &pdfcpuDocument{path: path, dims: dims, fields: fields}, nil
}

func (e *PDFCPUEngine) StampImage(srcPath, dstPath, imagePath string, pageIndex int, rect geom.Rect) error {
	pageDims, err := api.PageDimsFile(srcPath)
	if err != nil {
		return &OpenError{Path: srcPath, Err: err}
	}
	if pageIndex < 0 || pageIndex >= len(pageDims) {
		return &PageIndexError{Index: pageIndex, Count: len(pageDims)}
	}

	imgW, _, err := imaging.Size(imagePath)
	if err != nil {
		return err
	}

	if err := copyFile(srcPath, dstPath); err != nil {
		return &SaveError{Path: dstPath, Err: err}
	}

	// pdfcpu renders an image watermark at one point per pixel at scale
	// 1.0, so the absolute scale is the target width over the pixel width.
	scale := 1.0
	if imgW > 0 {
		scale = rect.Width() / float64(imgW)
	}
	desc := fmt.Sprintf("scale:%.4f, pos:full, rot:0, op:1", scale)
	wm, err := pdfcpu.ParseImageWatermarkDetails(imagePath, desc, true, types.POINTS)
	if err != nil {
		os.Remove(dstPath)
		return &SaveError{Path: dstPath, Err: err}
	}

	// Our rects use a top-left origin; pdfcpu offsets are measured from
	// the bottom-left page corner.
	wm.Dx = rect.X0
	wm.Dy = pageDims[pageIndex].Height - rect.Y1

	pages := []string{fmt.Sprintf("%d", pageIndex+1)}
	if err := api.AddWatermarksFile(dstPath, "", pages, wm, e.conf); err != nil {
		os.Remove(dstPath)
		return &SaveError{Path: dstPath, Err: err}
	}

	e.log.Info("signature stamped",
		observability.String("path", dstPath),
		observability.Int("page", pageIndex),
		observability.Float64("width", rect.Width()),
		observability.Float64("height", rect.Height()))
	return nil
}

func (e *PDFCPUEngine) SaveCopy(srcPath, dstPath string) error {
	if err := copyFile(srcPath, dstPath); err != nil {
		return &SaveError{Path: dstPath, Err: err}
	}
	return nil
}

type pdfcpuDocument struct {
	path   string
	dims   []Dim
	fields []string
	closed bool
}

func (d *pdfcpuDocument) Path() string { return d.path }

func (d *pdfcpuDocument) PageCount() int {
	if d.closed {
		return 0
	}
	return len(d.dims)
}

func (d *pdfcpuDocument) PageDim(index int) (Dim, error) {
	if index < 0 || index >= len(d.dims) {
		return Dim{}, &PageIndexError{Index: index, Count: len(d.dims)}
	}
	return d.dims[index], nil
}

func (d *pdfcpuDocument) FormFields() []string { return d.fields }

func (d *pdfcpuDocument) Close() error {
	d.closed = true
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
