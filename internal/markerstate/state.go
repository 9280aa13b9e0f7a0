// Package markerstate holds the small pieces of shared, host-visible map
// state that sit alongside the pyramid and clusterer but aren't owned by
// either: the current cluster list, the active sort key, thumbnail
// sizing, the active mouse mode, and the region-selection rectangle
// (§2 "Shared state", grounded on kgeomap_common.h/types.h).
package markerstate

import (
	"github.com/geomarker/markertiler/internal/cluster"
	"github.com/geomarker/markertiler/internal/geoindex"
	"github.com/geomarker/markertiler/internal/model"
)

// ThumbnailSize is the display size for a cluster's representative
// thumbnail, when the host shows thumbnails instead of plain markers.
type ThumbnailSize int

const (
	ThumbnailSmall ThumbnailSize = iota
	ThumbnailMedium
	ThumbnailLarge
)

// MinThumbnailGroupingRadius mirrors KGeoMapMinThumbnailGroupingRadius:
// the smallest radius, in pixels, a thumbnail-sized cluster may use.
const MinThumbnailGroupingRadius = 15

// MinThumbnailSize is the smallest pixel size a thumbnail may render at.
const MinThumbnailSize = MinThumbnailGroupingRadius * 2

// MinMarkerGroupingRadius mirrors KGeoMapMinMarkerGroupingRadius.
const MinMarkerGroupingRadius = 1

// MouseMode is a bitmask of interaction modes the host map widget may be
// in; the core never acts on it and only carries it in shared state.
type MouseMode uint

const (
	MouseModePan                     MouseMode = 1 << 0
	MouseModeRegionSelection         MouseMode = 1 << 1
	MouseModeRegionSelectionFromIcon MouseMode = 1 << 2
	MouseModeFilter                  MouseMode = 1 << 3
	MouseModeSelectThumbnail         MouseMode = 1 << 4
	MouseModeZoomIntoGroup           MouseMode = 1 << 5
)

// Has reports whether m includes mode.
func (m MouseMode) Has(mode MouseMode) bool { return m&mode != 0 }

// SelectionRegion is a user-drawn rectangle in geographic coordinates
// with a Contains membership test. The clusterer does not read it: a
// cluster's GroupState covers the selected attribute only. A zero value
// (both corners absent) means no region selection is active.
type SelectionRegion struct {
	haveRegion  bool
	SouthWest   geoindex.Coordinate
	NorthEast   geoindex.Coordinate
}

// SetRegion activates a region selection between the two corners.
func (r *SelectionRegion) SetRegion(sw, ne geoindex.Coordinate) {
	r.SouthWest, r.NorthEast = sw, ne
	r.haveRegion = true
}

// Clear deactivates the region selection.
func (r *SelectionRegion) Clear() { *r = SelectionRegion{} }

// Active reports whether a region selection is currently set.
func (r SelectionRegion) Active() bool { return r.haveRegion }

// Contains reports whether coord falls within the active region. It
// always returns false when no region is active.
func (r SelectionRegion) Contains(coord geoindex.Coordinate) bool {
	if !r.haveRegion {
		return false
	}
	return coord.Lat >= r.SouthWest.Lat && coord.Lat <= r.NorthEast.Lat &&
		coord.Lon >= r.SouthWest.Lon && coord.Lon <= r.NorthEast.Lon
}

// State is the map-level state shared between the pyramid, the
// clusterer, and the host UI, independent of any single frame's
// clustering pass (§2 "Shared state").
type State struct {
	Clusters []*cluster.Cluster

	SortKey       model.SortKey
	ThumbnailSize ThumbnailSize

	ShowThumbnails      bool
	PreviewSingleItems  bool
	PreviewGroupedItems bool
	ShowNumbersOnItems  bool

	CurrentMouseMode   MouseMode
	AvailableMouseModes MouseMode
	VisibleMouseModes  MouseMode

	Region SelectionRegion

	HaveMovingCluster bool
}

// NewState returns a State with the original widget's defaults: small
// thumbnails shown, previews on, numbers on, panning active.
func NewState() *State {
	return &State{
		ThumbnailSize:      ThumbnailSmall,
		ShowThumbnails:     true,
		PreviewSingleItems: true,
		PreviewGroupedItems: true,
		ShowNumbersOnItems: true,
		CurrentMouseMode:   MouseModePan,
	}
}
