// Package ui is the Fyne application shell: the window, toolbar, page
// view, navigation and status bars, menus and dialogs. All placement
// and document logic lives in the controller packages; this package
// only adapts widget events onto them and draws what they decide.
package ui

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/wudi/pdfsig/config"
	"github.com/wudi/pdfsig/document"
	"github.com/wudi/pdfsig/geom"
	"github.com/wudi/pdfsig/imaging"
	"github.com/wudi/pdfsig/interact"
	"github.com/wudi/pdfsig/observability"
	"github.com/wudi/pdfsig/pdf"
	"github.com/wudi/pdfsig/render"
	"github.com/wudi/pdfsig/services"
	"github.com/wudi/pdfsig/signature"
)

// Deps are the collaborators the shell is built on. Engine and Raster
// are required; nil service fields default to the Fyne-backed
// implementations, and tests substitute fakes.
type Deps struct {
	Engine   pdf.Engine
	Raster   render.Rasterizer
	Dialogs  services.FileDialogs
	Messages services.Messages
	Browser  services.Browser
	Opener   services.FileOpener
	Logger   observability.Logger
}

// App owns the main window and wires widget events to the controllers.
type App struct {
	cfg config.Config
	log observability.Logger

	fyneApp fyne.App
	win     fyne.Window

	engine   pdf.Engine
	raster   render.Rasterizer
	dialogs  services.FileDialogs
	messages services.Messages
	browser  services.Browser
	opener   services.FileOpener

	docs     *document.Controller
	sig      *signature.Controller
	interact *interact.Controller
	debounce *render.Debouncer

	view      *pageView
	status    *widget.Label
	pageLabel *widget.Label
	openBtn   *widget.Button
	imageBtn  *widget.Button
	saveBtn   *widget.Button
	prevBtn   *widget.Button
	nextBtn   *widget.Button
	saveItem  *fyne.MenuItem

	// Decoded signature image, cached so overlay redraws during a drag
	// do not re-read the file.
	previewPath string
	previewSrc  image.Image
}

// New builds the application shell inside fyneApp.
func New(fyneApp fyne.App, cfg config.Config, deps Deps) *App {
	log := deps.Logger
	if log == nil {
		log = observability.NopLogger{}
	}

	a := &App{
		cfg:      cfg,
		log:      log.With(observability.String("component", "ui")),
		fyneApp:  fyneApp,
		win:      fyneApp.NewWindow(config.AppName),
		engine:   deps.Engine,
		raster:   deps.Raster,
		messages: deps.Messages,
		dialogs:  deps.Dialogs,
		browser:  deps.Browser,
		opener:   deps.Opener,
		debounce: render.NewDebouncer(cfg.RenderDebounce()),
	}
	if a.dialogs == nil {
		a.dialogs = services.NewFyneDialogs(a.win)
	}
	if a.messages == nil {
		a.messages = services.NewFyneDialogs(a.win)
	}
	if a.browser == nil {
		a.browser = services.NewFyneBrowser(fyneApp)
	}
	if a.opener == nil {
		a.opener = services.OSFileOpener{}
	}

	a.docs = document.NewController(deps.Engine.Open, log)
	a.sig = signature.NewController(cfg.MaxSignatureWidth, log)
	a.interact = interact.NewController(a.docs, a.sig, a, imaging.Size,
		cfg.MinResizeWidth, cfg.MinResizeHeight, log)

	a.buildUI()
	return a
}

func (a *App) buildUI() {
	a.view = newPageView(parseHexColor(a.cfg.CanvasBackground))
	a.view.onMouseDown = a.interact.PointerDown
	a.view.onMouseMove = a.interact.PointerMove
	a.view.onMouseUp = a.interact.PointerUp
	a.view.onResize = a.scheduleRender

	a.status = widget.NewLabel("Open a PDF to get started.")
	a.pageLabel = widget.NewLabel("No PDF loaded")

	a.openBtn = widget.NewButton("Open PDF", a.openPDF)
	a.imageBtn = widget.NewButton("Insert Image", a.loadSignatureImage)
	a.saveBtn = widget.NewButton("Save PDF", a.savePDF)
	a.prevBtn = widget.NewButton("< Prev", a.prevPage)
	a.nextBtn = widget.NewButton("Next >", a.nextPage)
	a.setDocumentButtons(false)

	toolbar := container.NewHBox(a.openBtn, a.imageBtn, a.saveBtn)
	nav := container.NewHBox(a.prevBtn, a.pageLabel, a.nextBtn)
	bottom := container.NewVBox(container.NewCenter(nav), a.status)

	a.win.SetContent(container.NewBorder(toolbar, bottom, nil, nil, a.view))
	a.win.SetMainMenu(a.buildMenu())
	a.win.Resize(fyne.NewSize(900, 760))

	a.win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyLeft:
			a.prevPage()
		case fyne.KeyRight:
			a.nextPage()
		}
	})
}

func (a *App) buildMenu() *fyne.MainMenu {
	openItem := fyne.NewMenuItem("Open…", a.openPDF)
	a.saveItem = fyne.NewMenuItem("Save As…", a.savePDF)
	a.saveItem.Disabled = true
	exitItem := fyne.NewMenuItem("Exit", a.win.Close)
	fileMenu := fyne.NewMenu("File", openItem, a.saveItem, fyne.NewMenuItemSeparator(), exitItem)

	aboutItem := fyne.NewMenuItem("About "+config.AppName, a.showAbout)
	helpMenu := fyne.NewMenu("Help", aboutItem)

	return fyne.NewMainMenu(fileMenu, helpMenu)
}

// Run shows the window and enters the event loop. A non-empty
// initialPath is opened before the loop starts, as if chosen from the
// open dialog.
func (a *App) Run(initialPath string) {
	if initialPath != "" {
		a.openPath(initialPath)
	}
	a.win.ShowAndRun()
	a.debounce.Cancel()
	if a.raster != nil {
		a.raster.Close()
	}
}

// Window exposes the main window, mostly for tests.
func (a *App) Window() fyne.Window { return a.win }

// SetStatus implements interact.View.
func (a *App) SetStatus(msg string) {
	a.status.SetText(msg)
}

// RedrawOverlay implements interact.View.
func (a *App) RedrawOverlay() {
	cr, ok := a.interact.CanvasRect()
	if !ok {
		a.view.HideOverlay()
		return
	}
	a.view.ShowOverlay(a.previewImage(cr), cr, a.interact.HandleRects())
}

// previewImage returns the signature image scaled to the overlay
// rectangle, or nil when it cannot be decoded; the outline still shows
// where the stamp will land.
func (a *App) previewImage(cr geom.Rect) image.Image {
	path := a.sig.ImagePath()
	if path == "" {
		return nil
	}
	if path != a.previewPath {
		src, err := imaging.Load(path)
		if err != nil {
			a.log.Warn("preview decode failed", observability.Error("err", err))
			a.previewPath, a.previewSrc = path, nil
		} else {
			a.previewPath, a.previewSrc = path, src
		}
	}
	if a.previewSrc == nil {
		return nil
	}
	return imaging.Scale(a.previewSrc, int(cr.Width()), int(cr.Height()))
}

func (a *App) setDocumentButtons(enabled bool) {
	buttons := []*widget.Button{a.imageBtn, a.saveBtn, a.prevBtn, a.nextBtn}
	for _, b := range buttons {
		if enabled {
			b.Enable()
		} else {
			b.Disable()
		}
	}
	if a.saveItem != nil && a.saveItem.Disabled == enabled {
		a.saveItem.Disabled = !enabled
		if menu := a.win.MainMenu(); menu != nil {
			menu.Refresh()
		}
	}
}

func (a *App) openPDF() {
	a.dialogs.AskOpenPDF(func(path string) {
		if path == "" {
			return
		}
		a.openPath(path)
	})
}

func (a *App) openPath(path string) {
	a.closeDocument()
	if _, err := a.docs.Open(path); err != nil {
		a.log.Warn("open failed", observability.String("path", path), observability.Error("err", err))
		a.messages.Error("Error", "Unable to open that PDF.")
		return
	}
	a.setDocumentButtons(true)
	a.SetStatus("PDF loaded. Use Insert Image to place a signature.")
	a.renderPage()
}

// closeDocument releases the current document and resets every piece of
// per-document state before another file takes its place.
func (a *App) closeDocument() {
	a.debounce.Cancel()
	a.docs.Close()
	a.sig.Reset()
	a.interact.Reset()
	a.previewPath, a.previewSrc = "", nil
	a.setDocumentButtons(false)
	a.view.ClearPage()
	a.pageLabel.SetText("No PDF loaded")
	a.SetStatus("Open a PDF to get started.")
}

func (a *App) loadSignatureImage() {
	if a.docs.Document() == nil {
		a.messages.Info("No PDF", "Open a PDF before inserting an image.")
		return
	}
	a.dialogs.AskImage(func(path string) {
		if path == "" {
			return
		}
		if _, _, err := imaging.Size(path); err != nil {
			a.log.Warn("image rejected", observability.String("path", path), observability.Error("err", err))
			a.messages.Error("Error", "Unable to open that image file.")
			return
		}
		a.sig.SetImage(path)
		a.previewPath, a.previewSrc = "", nil
		a.view.HideOverlay()
		a.interact.CancelGesture()
		a.SetStatus(fmt.Sprintf("Loaded %s. Click anywhere on the PDF to place it.", filepath.Base(path)))
	})
}

func (a *App) savePDF() {
	if a.docs.Document() == nil {
		a.messages.Info("Nothing to save", "Load a PDF first.")
		return
	}
	a.dialogs.AskSavePDF(func(path string) {
		if path == "" {
			return
		}
		src := a.docs.CurrentFile()
		var err error
		if p, ok := a.sig.Placement(); ok {
			err = a.engine.StampImage(src, path, p.ImagePath, p.PageIndex, p.Rect)
		} else {
			err = a.engine.SaveCopy(src, path)
		}
		if err != nil {
			a.log.Warn("save failed", observability.String("path", path), observability.Error("err", err))
			a.messages.Error("Error", "Could not save PDF:\n"+describeSaveError(err))
			return
		}
		a.showSaved(path)
		a.reopenSaved(path)
	})
}

// reopenSaved swaps the session over to the file just written, so what
// the user sees is exactly what was saved.
func (a *App) reopenSaved(path string) {
	a.closeDocument()
	if a.docs.Reload(path) == nil {
		return
	}
	a.docs.ClampPageIndex()
	a.setDocumentButtons(true)
	a.SetStatus("PDF saved and reloaded.")
	a.renderPage()
}

// showSaved offers to open the saved file in the system viewer.
func (a *App) showSaved(path string) {
	d := dialog.NewCustomConfirm("Saved", "Open", "Close",
		widget.NewLabel("Saved to "+path),
		func(open bool) {
			if !open {
				return
			}
			if err := a.opener.OpenPath(path); err != nil {
				a.log.Warn("viewer launch failed", observability.Error("err", err))
				a.messages.Error("Error", "Unable to open the saved file.")
			}
		}, a.win)
	d.Show()
}

func (a *App) nextPage() {
	if a.docs.Document() == nil {
		return
	}
	a.docs.NextPage()
	a.renderPage()
}

func (a *App) prevPage() {
	if a.docs.Document() == nil {
		return
	}
	a.docs.PrevPage()
	a.renderPage()
}

// scheduleRender coalesces the render storm a window resize produces.
func (a *App) scheduleRender() {
	if a.docs.Document() == nil {
		return
	}
	a.debounce.Schedule(func() {
		fyne.Do(a.renderPage)
	})
}

func (a *App) renderPage() {
	a.debounce.Cancel()
	doc := a.docs.Document()
	if doc == nil {
		return
	}
	dim, ok := a.docs.PageDim()
	if !ok {
		a.SetStatus("Unable to read this page.")
		return
	}

	size := a.view.Size()
	zoom := render.FitScale(dim, float64(size.Width), float64(size.Height))
	img, err := a.raster.Render(a.docs.CurrentFile(), a.docs.PageIndex(), zoom)
	if err != nil {
		a.log.Warn("render failed",
			observability.Int("page", a.docs.PageIndex()),
			observability.Error("err", err))
		a.SetStatus("Unable to render this page.")
		return
	}

	b := img.Bounds()
	a.interact.SetPageGeometry(dim.Rect(), render.PageScale(dim, b.Dx(), b.Dy()))
	a.view.SetPage(img)
	a.pageLabel.SetText(fmt.Sprintf("Page %d / %d", a.docs.PageIndex()+1, a.docs.PageCount()))
	a.RedrawOverlay()
}

// describeSaveError is kept close to savePDF so the two stay in sync;
// the typed engine errors carry the path, users only need the reason.
func describeSaveError(err error) string {
	var pageErr *pdf.PageIndexError
	if errors.As(err, &pageErr) {
		return "The signature page no longer exists."
	}
	var saveErr *pdf.SaveError
	if errors.As(err, &saveErr) {
		return "Could not write the output file."
	}
	return err.Error()
}
