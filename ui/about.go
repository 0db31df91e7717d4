package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/wudi/pdfsig/config"
	"github.com/wudi/pdfsig/observability"
)

func (a *App) showAbout() {
	name := widget.NewLabelWithStyle(config.AppName, fyne.TextAlignCenter,
		fyne.TextStyle{Bold: true})
	version := widget.NewLabelWithStyle("Version "+config.AppVersion,
		fyne.TextAlignCenter, fyne.TextStyle{})
	desc := widget.NewLabel(config.AppDescription)
	desc.Wrapping = fyne.TextWrapWord

	tip := widget.NewButton("Buy me a coffee", func() {
		if err := a.browser.OpenURL(config.TipURL); err != nil {
			a.log.Warn("browser launch failed", observability.Error("err", err))
			a.messages.Error("Error", "Unable to open the browser.")
		}
	})

	content := container.NewVBox(name, version, desc, container.NewCenter(tip))
	dialog.NewCustom("About "+config.AppName, "Close", content, a.win).Show()
}
