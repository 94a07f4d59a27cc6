package mapview

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"mapdisp/pkg/debug"
	"mapdisp/pkg/mapdisplay"
)

const (
	displaySize = 512
	// raster size when the display resolution is constrained to the
	// computational settings
	compSize = 128
)

var _ mapdisplay.Redrawer = (*Widget)(nil)

// Widget shows the rendered map raster with the computational region
// drawn as a box on top of it.
type Widget struct {
	widget.BaseWidget

	props *mapdisplay.Properties

	raster *image.RGBA
	img    *canvas.Image
	region *canvas.Rectangle

	renders   int
	refreshes int

	unsubs []func()

	container *fyne.Container
}

// New builds the map view and runs the initial render pass. props must
// outlive the widget.
func New(props *mapdisplay.Properties) *Widget {
	mv := &Widget{props: props}
	mv.ExtendBaseWidget(mv)

	mv.img = &canvas.Image{}
	mv.img.FillMode = canvas.ImageFillContain
	mv.img.ScaleMode = canvas.ImageScaleFastest
	mv.img.SetMinSize(fyne.NewSize(displaySize, displaySize))

	mv.region = canvas.NewRectangle(color.Transparent)
	mv.region.StrokeColor = color.NRGBA{R: 0xff, A: 0xff}
	mv.region.StrokeWidth = 2
	mv.region.Move(fyne.NewPos(displaySize/4, displaySize/4))
	mv.region.Resize(fyne.NewSize(displaySize/2, displaySize/2))
	mv.region.Hidden = !props.ShowRegion()

	mv.container = container.NewStack(mv.img, container.NewWithoutLayout(mv.region))

	mv.renderRaster()

	// region visibility written by others than the settings dialog still
	// has to land in the overlay
	mv.unsubs = append(mv.unsubs, props.ShowRegionChanged().Subscribe(func(v bool) {
		mv.region.Hidden = !v
	}))

	return mv
}

func (mv *Widget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(mv.container)
}

// RequestRedraw implements mapdisplay.Redrawer. A full rerender rebuilds
// the terrain raster first; the lightweight path re-applies the overlays
// over the cached raster.
func (mv *Widget) RequestRedraw(rerender bool) {
	if rerender {
		mv.renderRaster()
	}
	mv.applyOverlay()
}

func (mv *Widget) applyOverlay() {
	mv.region.Hidden = !mv.props.ShowRegion()
	mv.region.Refresh()
	mv.refreshes++
}

// RenderCount returns the number of completed render passes.
func (mv *Widget) RenderCount() int {
	return mv.renders
}

// RefreshCount returns the number of overlay refreshes.
func (mv *Widget) RefreshCount() int {
	return mv.refreshes
}

// Raster returns the cached map raster.
func (mv *Widget) Raster() image.Image {
	return mv.raster
}

// Dispose drops the property subscriptions.
func (mv *Widget) Dispose() {
	for _, unsub := range mv.unsubs {
		unsub()
	}
	mv.unsubs = nil
	debug.Log(fmt.Sprintf("map view disposed after %d renders", mv.renders))
}
