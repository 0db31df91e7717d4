// Package imaging decodes and scales signature images. PNG, JPEG and
// BMP are supported; decode failures are reported as *DecodeError and
// never crash placement state.
package imaging

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // register decoders
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// DecodeError reports a signature image that could not be read or
// decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("imaging: cannot decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Size returns the pixel dimensions of the image at path without
// decoding the pixel data.
func Size(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, &DecodeError{Path: path, Err: err}
	}
	return cfg.Width, cfg.Height, nil
}

// Load decodes the image at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// Scale resamples src to width x height with a high-quality kernel,
// returning a non-premultiplied RGBA image suitable for the canvas
// overlay. Dimensions below one pixel are raised to one.
func Scale(src image.Image, width, height int) *image.NRGBA {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
