package displaysettings

import (
	"mapdisp/pkg/mapdisplay"
)

func (sw *Widget) newRenderCheck() *propertyBinding {
	return newPropertyBinding(
		mapdisplay.PropRender,
		"Enable auto-rendering",
		sw.props.AutoRender,
		sw.props.SetAutoRender,
		sw.props.AutoRenderChanged(),
	)
}

func (sw *Widget) newAlignExtentCheck() *propertyBinding {
	return newPropertyBinding(
		mapdisplay.PropAlignExtent,
		"Align region extent based on display size",
		sw.props.AlignExtent,
		sw.props.SetAlignExtent,
		sw.props.AlignExtentChanged(),
	)
}

func (sw *Widget) newResolutionCheck() *propertyBinding {
	b := newPropertyBinding(
		mapdisplay.PropResolution,
		"Constrain display resolution to computational settings",
		sw.props.Resolution,
		sw.props.SetResolution,
		sw.props.ResolutionChanged(),
	)
	b.afterToggle = func() {
		// a resolution change invalidates the rendered raster
		if sw.props.AutoRender() {
			sw.redrawer.RequestRedraw(true)
		}
	}
	return b
}

func (sw *Widget) newShowRegionCheck() *propertyBinding {
	b := newPropertyBinding(
		mapdisplay.PropShowRegion,
		"Show computational extent",
		sw.props.ShowRegion,
		sw.props.SetShowRegion,
		sw.props.ShowRegionChanged(),
	)
	b.afterToggle = func() {
		// overlay only, the cached raster stays valid
		if sw.props.AutoRender() {
			sw.redrawer.RequestRedraw(false)
		}
	}
	return b
}
