package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"mapdisp/pkg/debug"
	"mapdisp/pkg/mapdisplay"
	"mapdisp/pkg/widgets/mapview"
	"mapdisp/pkg/windows"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	a := app.NewWithID("com.mapdisp.viewer")
	defer debug.Close()

	props := mapdisplay.NewProperties()

	w := a.NewWindow("Map Display")
	mv := mapview.New(props)

	settingsBtn := widget.NewButtonWithIcon("Settings", theme.SettingsIcon(), func() {
		windows.NewDisplaySettings(a, props, mv).Show()
	})

	w.SetContent(container.NewBorder(
		container.NewHBox(layout.NewSpacer(), settingsBtn),
		nil,
		nil,
		nil,
		mv,
	))
	w.Resize(fyne.NewSize(800, 640))
	w.ShowAndRun()
}
