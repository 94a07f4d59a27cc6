package mapdisplay

import (
	"fmt"

	"mapdisp/pkg/signal"
)

// Property names for name-keyed access.
const (
	PropRender      = "render"
	PropAlignExtent = "alignExtent"
	PropResolution  = "resolution"
	PropShowRegion  = "region"
)

// Redrawer is anything able to redraw the map display. RequestRedraw with
// rerender=true runs a full render pass; with false the display refreshes
// from the cached raster and only the overlays are updated.
type Redrawer interface {
	RequestRedraw(rerender bool)
}

// Properties holds the shared map display flags. Each flag has a signal
// that fires with the new value on every write, regardless of the writer.
// The store is expected to outlive every widget bound to it.
type Properties struct {
	autoRender  bool
	alignExtent bool
	resolution  bool
	showRegion  bool

	autoRenderChanged  *signal.Signal[bool]
	alignExtentChanged *signal.Signal[bool]
	resolutionChanged  *signal.Signal[bool]
	showRegionChanged  *signal.Signal[bool]
}

func NewProperties() *Properties {
	return &Properties{
		autoRender:         true,
		autoRenderChanged:  signal.New[bool](),
		alignExtentChanged: signal.New[bool](),
		resolutionChanged:  signal.New[bool](),
		showRegionChanged:  signal.New[bool](),
	}
}

func (p *Properties) AutoRender() bool {
	return p.autoRender
}

func (p *Properties) SetAutoRender(v bool) {
	p.autoRender = v
	p.autoRenderChanged.Emit(v)
}

func (p *Properties) AutoRenderChanged() *signal.Signal[bool] {
	return p.autoRenderChanged
}

func (p *Properties) AlignExtent() bool {
	return p.alignExtent
}

func (p *Properties) SetAlignExtent(v bool) {
	p.alignExtent = v
	p.alignExtentChanged.Emit(v)
}

func (p *Properties) AlignExtentChanged() *signal.Signal[bool] {
	return p.alignExtentChanged
}

func (p *Properties) Resolution() bool {
	return p.resolution
}

func (p *Properties) SetResolution(v bool) {
	p.resolution = v
	p.resolutionChanged.Emit(v)
}

func (p *Properties) ResolutionChanged() *signal.Signal[bool] {
	return p.resolutionChanged
}

func (p *Properties) ShowRegion() bool {
	return p.showRegion
}

func (p *Properties) SetShowRegion(v bool) {
	p.showRegion = v
	p.showRegionChanged.Emit(v)
}

func (p *Properties) ShowRegionChanged() *signal.Signal[bool] {
	return p.showRegionChanged
}

// Get returns the named flag. Unknown names are wiring bugs and panic.
func (p *Properties) Get(name string) bool {
	switch name {
	case PropRender:
		return p.autoRender
	case PropAlignExtent:
		return p.alignExtent
	case PropResolution:
		return p.resolution
	case PropShowRegion:
		return p.showRegion
	default:
		panic(fmt.Sprintf("mapdisplay: unknown property %q", name))
	}
}

// Set writes the named flag and fires its signal.
func (p *Properties) Set(name string, v bool) {
	switch name {
	case PropRender:
		p.SetAutoRender(v)
	case PropAlignExtent:
		p.SetAlignExtent(v)
	case PropResolution:
		p.SetResolution(v)
	case PropShowRegion:
		p.SetShowRegion(v)
	default:
		panic(fmt.Sprintf("mapdisplay: unknown property %q", name))
	}
}

// SignalFor returns the change signal for the named flag.
func (p *Properties) SignalFor(name string) *signal.Signal[bool] {
	switch name {
	case PropRender:
		return p.autoRenderChanged
	case PropAlignExtent:
		return p.alignExtentChanged
	case PropResolution:
		return p.resolutionChanged
	case PropShowRegion:
		return p.showRegionChanged
	default:
		panic(fmt.Sprintf("mapdisplay: unknown property %q", name))
	}
}
