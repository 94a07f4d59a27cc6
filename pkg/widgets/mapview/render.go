package mapview

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"runtime"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"mapdisp/pkg/debug"
)

// renderRaster rebuilds the terrain raster. With the resolution flag set
// the raster is rendered at the computational resolution and upscaled to
// the display size, otherwise it is rendered at display resolution.
func (mv *Widget) renderRaster() {
	size := displaySize
	if mv.props.Resolution() {
		size = compSize
	}
	src := image.NewRGBA(image.Rect(0, 0, size, size))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	const band = 32
	for y0 := 0; y0 < size; y0 += band {
		y0 := y0
		g.Go(func() error {
			y1 := y0 + band
			if y1 > size {
				y1 = size
			}
			shadeBand(src, y0, y1)
			return nil
		})
	}
	g.Wait()

	if size != displaySize {
		dst := image.NewRGBA(image.Rect(0, 0, displaySize, displaySize))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		src = dst
	}

	mv.raster = src
	mv.img.Image = src
	mv.img.Refresh()
	mv.renders++
	debug.Log(fmt.Sprintf("rendered %dx%d raster", size, size))
}

// shadeBand fills rows [y0,y1) with shaded synthetic terrain.
func shadeBand(img *image.RGBA, y0, y1 int) {
	size := img.Bounds().Dx()
	for y := y0; y < y1; y++ {
		for x := 0; x < size; x++ {
			fx := float64(x) / float64(size)
			fy := float64(y) / float64(size)
			h := math.Sin(fx*7)*math.Cos(fy*5) + 0.4*math.Sin(fx*19+fy*13)
			v := uint8(128 + 64*h)
			img.SetRGBA(x, y, color.RGBA{R: v / 2, G: v, B: v / 3, A: 0xff})
		}
	}
}
