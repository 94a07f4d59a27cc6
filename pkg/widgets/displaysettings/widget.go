package displaysettings

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"mapdisp/pkg/mapdisplay"
)

// Widget is the map display settings panel: four checkboxes bound to the
// shared display properties.
type Widget struct {
	widget.BaseWidget

	props    *mapdisplay.Properties
	redrawer mapdisplay.Redrawer

	render      *propertyBinding
	alignExtent *propertyBinding
	resolution  *propertyBinding
	showRegion  *propertyBinding

	container *container.AppTabs
}

// New builds the settings panel. props must outlive the widget; redrawer
// receives redraw requests when resolution or region visibility changes
// while auto-rendering is on.
func New(props *mapdisplay.Properties, redrawer mapdisplay.Redrawer) *Widget {
	sw := &Widget{
		props:    props,
		redrawer: redrawer,
	}
	sw.ExtendBaseWidget(sw)

	sw.render = sw.newRenderCheck()
	sw.alignExtent = sw.newAlignExtentCheck()
	sw.resolution = sw.newResolutionCheck()
	sw.showRegion = sw.newShowRegionCheck()

	tabs := container.NewAppTabs()
	tabs.Append(sw.generalTab())
	sw.container = tabs

	return sw
}

func (sw *Widget) generalTab() *container.TabItem {
	return container.NewTabItem("General", container.NewVBox(
		sw.render.Widget(),
		sw.alignExtent.Widget(),
		sw.resolution.Widget(),
		sw.showRegion.Widget(),
	))
}

func (sw *Widget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sw.container)
}

// Dispose disconnects every binding from the property store. Call when
// the enclosing window closes.
func (sw *Widget) Dispose() {
	sw.render.dispose()
	sw.alignExtent.dispose()
	sw.resolution.dispose()
	sw.showRegion.dispose()
}
