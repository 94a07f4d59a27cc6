package mapview

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"mapdisp/pkg/mapdisplay"
)

func newTestView(t *testing.T) (*Widget, *mapdisplay.Properties) {
	t.Helper()
	test.NewApp()
	props := mapdisplay.NewProperties()
	return New(props), props
}

func TestInitialRender(t *testing.T) {
	mv, _ := newTestView(t)
	assert.Equal(t, 1, mv.RenderCount())
	assert.NotNil(t, mv.Raster())
	assert.Equal(t, displaySize, mv.Raster().Bounds().Dx())
	assert.True(t, mv.region.Hidden)
}

func TestRequestRedrawFull(t *testing.T) {
	mv, _ := newTestView(t)
	before := mv.Raster()
	mv.RequestRedraw(true)
	assert.Equal(t, 2, mv.RenderCount())
	assert.Equal(t, 1, mv.RefreshCount())
	assert.NotSame(t, before, mv.Raster(), "full rerender replaces the raster")
}

func TestRequestRedrawLight(t *testing.T) {
	mv, props := newTestView(t)
	props.SetShowRegion(true)
	before := mv.Raster()
	mv.RequestRedraw(false)
	assert.Equal(t, 1, mv.RenderCount(), "lightweight redraw keeps the cached raster")
	assert.Equal(t, 1, mv.RefreshCount())
	assert.Same(t, before, mv.Raster())
	assert.False(t, mv.region.Hidden)
}

func TestConstrainedResolutionUpscales(t *testing.T) {
	mv, props := newTestView(t)
	props.SetResolution(true)
	mv.RequestRedraw(true)
	// rendered at computational resolution, upscaled to display size
	assert.Equal(t, displaySize, mv.Raster().Bounds().Dx())
	assert.Equal(t, displaySize, mv.Raster().Bounds().Dy())
}

func TestShowRegionSignalTogglesOverlay(t *testing.T) {
	mv, props := newTestView(t)
	props.SetShowRegion(true)
	assert.False(t, mv.region.Hidden)
	props.SetShowRegion(false)
	assert.True(t, mv.region.Hidden)

	mv.Dispose()
	props.SetShowRegion(true)
	assert.True(t, mv.region.Hidden, "disposed view no longer tracks the store")
}
