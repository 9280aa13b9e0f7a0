// Package cluster implements the per-frame greedy clustering pass that
// reduces visible tiles to a bounded set of on-screen markers (§4.5).
package cluster

import (
	"fmt"
	"math"

	"github.com/geomarker/markertiler/internal/geoindex"
	"github.com/geomarker/markertiler/internal/model"
)

// Pixel is a screen-space point, in widget-local pixel coordinates.
type Pixel struct {
	X, Y int
}

// Cluster is a transient, per-frame aggregate of nearby tiles (§3
// "Cluster"). Clusters are value objects recomputed from scratch every
// frame; none of their fields are retained across frames.
type Cluster struct {
	Coordinates  geoindex.Coordinate
	PixelPos     Pixel
	TileIndices  []geoindex.TileIndex
	ItemCount    int
	SelectedCount int
	GroupState   model.GroupState

	representatives map[model.SortKey]model.Handle
}

// Representative returns the cached best-representative handle for
// sortKey, computing and caching it via lookup the first time it is
// asked for a given sort key (§3 "representative_markers: lazy").
func (c *Cluster) Representative(sortKey model.SortKey, lookup func(model.SortKey) (model.Handle, bool)) (model.Handle, bool) {
	if c.representatives == nil {
		c.representatives = make(map[model.SortKey]model.Handle)
	}
	if h, ok := c.representatives[sortKey]; ok {
		return h, true
	}
	h, ok := lookup(sortKey)
	if ok {
		c.representatives[sortKey] = h
	}
	return h, ok
}

// Label renders the count-based display label (§4.5 "Appearance
// derivation"): plain integer under 1000, one-decimal/integer "k" form
// up to 19500, otherwise normalized scientific notation "dEe".
func Label(count int) string {
	switch {
	case count < 1000:
		return fmt.Sprintf("%d", count)
	case count <= 1950:
		return fmt.Sprintf("%.1fk", float64(count)/1000)
	case count <= 19500:
		return fmt.Sprintf("%.0fk", float64(count)/1000)
	default:
		exp := int(math.Floor(math.Log10(float64(count))))
		digit := math.Round(float64(count) / math.Pow(10, float64(exp)))
		if digit >= 10 {
			digit /= 10
			exp++
		}
		return fmt.Sprintf("%dE%d", int(digit), exp)
	}
}

// FillColor is the default appearance color keyed by count thresholds
// (§4.5): cyan <2, green <10, yellow <50, orange <100, red >=100. These
// are consumed by a renderer outside the core; they live here because
// test scenarios pin the exact thresholds.
type FillColor int

const (
	FillCyan FillColor = iota
	FillGreen
	FillYellow
	FillOrange
	FillRed
)

// ColorFor maps an item count to its appearance step.
func ColorFor(count int) FillColor {
	switch {
	case count < 2:
		return FillCyan
	case count < 10:
		return FillGreen
	case count < 50:
		return FillYellow
	case count < 100:
		return FillOrange
	default:
		return FillRed
	}
}
