package windows

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"mapdisp/pkg/debug"
	"mapdisp/pkg/mapdisplay"
	"mapdisp/pkg/widgets/displaysettings"
)

// NewDisplaySettings creates the map display settings window. The
// bindings it holds are disconnected from props when the window closes.
func NewDisplaySettings(a fyne.App, props *mapdisplay.Properties, redrawer mapdisplay.Redrawer) fyne.Window {
	w := a.NewWindow("Map Display Settings")

	sw := displaysettings.New(props, redrawer)
	closeBtn := widget.NewButton("Close", w.Close)

	w.SetContent(container.NewBorder(
		nil,
		container.NewHBox(layout.NewSpacer(), closeBtn),
		nil,
		nil,
		sw,
	))
	w.SetOnClosed(func() {
		sw.Dispose()
		debug.Log("display settings closed")
	})
	w.Resize(fyne.NewSize(420, 260))
	return w
}
