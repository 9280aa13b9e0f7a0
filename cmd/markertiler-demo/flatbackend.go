package main

import (
	"github.com/geomarker/markertiler/internal/cluster"
	"github.com/geomarker/markertiler/internal/geoindex"
)

// flatBackend is a demo-only cluster.MapBackend: a plain equirectangular
// projection onto a fixed-size pixel canvas. A real host would replace
// this with its rendering backend's actual screen projection (§6.3).
type flatBackend struct {
	width, height int
}

func newFlatBackend(width, height int) *flatBackend {
	return &flatBackend{width: width, height: height}
}

func (b *flatBackend) ScreenCoordinates(c geoindex.Coordinate) (cluster.Pixel, bool) {
	x := int((c.Lon + 180) / 360 * float64(b.width))
	y := int((90 - c.Lat) / 180 * float64(b.height))
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return cluster.Pixel{}, false
	}
	return cluster.Pixel{X: x, Y: y}, true
}

func (b *flatBackend) MapSize() (int, int) { return b.width, b.height }
