package services

import (
	"errors"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// FyneDialogs implements FileDialogs and Messages with Fyne's native
// dialogs, parented to a window.
type FyneDialogs struct {
	win fyne.Window
}

func NewFyneDialogs(win fyne.Window) *FyneDialogs {
	return &FyneDialogs{win: win}
}

func (d *FyneDialogs) AskOpenPDF(cb func(string)) {
	fd := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			cb("")
			return
		}
		path := r.URI().Path()
		r.Close()
		cb(path)
	}, d.win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	fd.Show()
}

func (d *FyneDialogs) AskSavePDF(cb func(string)) {
	fd := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil || w == nil {
			cb("")
			return
		}
		path := w.URI().Path()
		w.Close()
		cb(path)
	}, d.win)
	fd.SetFileName("signed.pdf")
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	fd.Show()
}

func (d *FyneDialogs) AskImage(cb func(string)) {
	fd := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			cb("")
			return
		}
		path := r.URI().Path()
		r.Close()
		cb(path)
	}, d.win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".bmp"}))
	fd.Show()
}

func (d *FyneDialogs) Info(title, message string) {
	dialog.ShowInformation(title, message, d.win)
}

func (d *FyneDialogs) Error(title, message string) {
	dialog.ShowError(errors.New(message), d.win)
}

// FyneBrowser implements Browser through the Fyne application.
type FyneBrowser struct {
	app fyne.App
}

func NewFyneBrowser(app fyne.App) *FyneBrowser {
	return &FyneBrowser{app: app}
}

func (b *FyneBrowser) OpenURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	return b.app.OpenURL(u)
}
