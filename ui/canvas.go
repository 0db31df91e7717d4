package ui

import (
	"errors"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/wudi/pdfsig/geom"
	"github.com/wudi/pdfsig/signature"
)

var (
	accentColor  = color.NRGBA{R: 0x1f, G: 0x6a, B: 0xa5, A: 0xff}
	handleStroke = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// pageView shows the rendered page with the signature overlay on top:
// the scaled preview image, the outline rectangle and the four edge
// grips. It forwards pointer events to the callbacks in widget-local
// coordinates, which coincide with canvas coordinates because the page
// raster is anchored at the view's origin.
type pageView struct {
	widget.BaseWidget

	background *fynecanvas.Rectangle
	hint       *fynecanvas.Text
	page       *fynecanvas.Image
	preview    *fynecanvas.Image
	outline    *fynecanvas.Rectangle
	grips      map[signature.Handle]*fynecanvas.Rectangle

	onMouseDown func(x, y float64)
	onMouseMove func(x, y float64)
	onMouseUp   func()
	onResize    func()

	lastSize fyne.Size
}

func newPageView(background color.Color) *pageView {
	v := &pageView{
		background: fynecanvas.NewRectangle(background),
		hint:       fynecanvas.NewText("Open a PDF to preview it here.", color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}),
		page:       fynecanvas.NewImageFromImage(nil),
		preview:    fynecanvas.NewImageFromImage(nil),
		outline:    fynecanvas.NewRectangle(color.Transparent),
		grips:      make(map[signature.Handle]*fynecanvas.Rectangle, 4),
	}
	v.page.FillMode = fynecanvas.ImageFillStretch
	v.page.Hide()
	v.preview.FillMode = fynecanvas.ImageFillStretch
	v.preview.Hide()
	v.outline.StrokeColor = accentColor
	v.outline.StrokeWidth = 2
	v.outline.Hide()
	for _, h := range []signature.Handle{
		signature.HandleNorth, signature.HandleSouth,
		signature.HandleWest, signature.HandleEast,
	} {
		grip := fynecanvas.NewRectangle(accentColor)
		grip.StrokeColor = handleStroke
		grip.StrokeWidth = 1
		grip.Hide()
		v.grips[h] = grip
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetPage swaps in a freshly rendered page raster, sized to its pixel
// dimensions at the view's origin.
func (v *pageView) SetPage(img image.Image) {
	b := img.Bounds()
	v.page.Image = img
	v.page.Move(fyne.NewPos(0, 0))
	v.page.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	v.page.Show()
	v.hint.Hide()
	v.page.Refresh()
}

// ClearPage removes the page raster and overlay and restores the hint.
func (v *pageView) ClearPage() {
	v.page.Image = nil
	v.page.Hide()
	v.hint.Show()
	v.HideOverlay()
	v.Refresh()
}

// ShowOverlay positions the outline and grips over rect and displays
// the preview image inside it. A nil preview leaves just the outline,
// which is what an unreadable image degrades to.
func (v *pageView) ShowOverlay(preview image.Image, rect geom.Rect, grips map[signature.Handle]geom.Rect) {
	if preview != nil {
		v.preview.Image = preview
		moveTo(v.preview, rect)
		v.preview.Show()
		v.preview.Refresh()
	} else {
		v.preview.Hide()
	}
	moveTo(v.outline, rect)
	v.outline.Show()
	v.outline.Refresh()
	for h, grip := range v.grips {
		r, ok := grips[h]
		if !ok {
			grip.Hide()
			continue
		}
		moveTo(grip, r)
		grip.Show()
		grip.Refresh()
	}
}

// HideOverlay removes the preview, outline and grips from view.
func (v *pageView) HideOverlay() {
	v.preview.Hide()
	v.outline.Hide()
	for _, grip := range v.grips {
		grip.Hide()
	}
}

func moveTo(obj fyne.CanvasObject, r geom.Rect) {
	obj.Move(fyne.NewPos(float32(r.X0), float32(r.Y0)))
	obj.Resize(fyne.NewSize(float32(r.Width()), float32(r.Height())))
}

func (v *pageView) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary || v.onMouseDown == nil {
		return
	}
	v.onMouseDown(float64(ev.Position.X), float64(ev.Position.Y))
}

func (v *pageView) MouseUp(*desktop.MouseEvent) {
	if v.onMouseUp != nil {
		v.onMouseUp()
	}
}

func (v *pageView) Dragged(ev *fyne.DragEvent) {
	if v.onMouseMove != nil {
		v.onMouseMove(float64(ev.Position.X), float64(ev.Position.Y))
	}
}

func (v *pageView) DragEnd() {
	if v.onMouseUp != nil {
		v.onMouseUp()
	}
}

func (v *pageView) CreateRenderer() fyne.WidgetRenderer {
	return &pageViewRenderer{view: v}
}

type pageViewRenderer struct {
	view *pageView
}

func (r *pageViewRenderer) Layout(size fyne.Size) {
	v := r.view
	v.background.Resize(size)
	hintSize := v.hint.MinSize()
	v.hint.Move(fyne.NewPos((size.Width-hintSize.Width)/2, (size.Height-hintSize.Height)/2))
	if size != v.lastSize {
		v.lastSize = size
		if v.onResize != nil {
			v.onResize()
		}
	}
}

func (r *pageViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *pageViewRenderer) Refresh() {
	r.view.background.Refresh()
	r.view.page.Refresh()
}

func (r *pageViewRenderer) Objects() []fyne.CanvasObject {
	v := r.view
	objs := []fyne.CanvasObject{v.background, v.hint, v.page, v.preview, v.outline}
	for _, h := range []signature.Handle{
		signature.HandleNorth, signature.HandleSouth,
		signature.HandleWest, signature.HandleEast,
	} {
		objs = append(objs, v.grips[h])
	}
	return objs
}

func (r *pageViewRenderer) Destroy() {}

// parseHexColor reads a #rrggbb string; anything unparseable falls back
// to near-black.
func parseHexColor(s string) color.Color {
	var r, g, b uint8
	if len(s) == 7 && s[0] == '#' {
		if n, err := hexByte(s[1], s[2]); err == nil {
			r = n
			if n, err = hexByte(s[3], s[4]); err == nil {
				g = n
				if n, err = hexByte(s[5], s[6]); err == nil {
					b = n
					return color.NRGBA{R: r, G: g, B: b, A: 0xff}
				}
			}
		}
	}
	return color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
}

func hexByte(hi, lo byte) (uint8, error) {
	h, err := hexNibble(hi)
	if err != nil {
		return 0, err
	}
	l, err := hexNibble(lo)
	if err != nil {
		return 0, err
	}
	return h<<4 | l, nil
}

func hexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, errBadHex
}

var errBadHex = errors.New("invalid color component")
