// Package zoom converts a backend-prefixed zoom string ("googlemaps:8",
// "marble:5", "osm:8") into a marker pyramid level (§4.6). The conversion
// table is carried over unchanged from the values the original widget
// found experimentally; OSM shares the Google Maps table because its
// underlying tile provider uses the same zoom scale.
package zoom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/geomarker/markertiler/internal/geoindex"
)

// Backend names recognized in a "backend:value" zoom string.
const (
	BackendGoogleMaps = "googlemaps"
	BackendMarble     = "marble"
	BackendOSM        = "osm"
)

// googleMapsLevel maps a Google Maps (and OSM) integer zoom to a marker
// pyramid level.
var googleMapsLevel = []struct {
	maxZoom int
	level   int
}{
	{2, 1}, {4, 2}, {7, 3}, {13, 4}, {17, 5}, {20, 6}, {22, 7},
}

// ParseZoom splits a "backend:value" zoom string into its backend name and
// raw value. It returns false if the string has no single colon separator.
func ParseZoom(s string) (backend string, value string, ok bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Level returns the marker pyramid level a backend's zoom string
// corresponds to, clamped to [0, geoindex.MaxLevel-1] (§4.6). Marble's
// widget never ties its zoom to tile level in the original, so any
// "marble:*" string maps to the deepest usable level.
func Level(zoomString string) int {
	backend, value, ok := ParseZoom(zoomString)
	if !ok {
		return 0
	}
	switch backend {
	case BackendMarble:
		return geoindex.MaxLevel - 1
	case BackendGoogleMaps, BackendOSM:
		z, err := strconv.Atoi(value)
		if err != nil {
			return 0
		}
		return clampLevel(levelForGoogleMapsZoom(z))
	default:
		return 0
	}
}

func levelForGoogleMapsZoom(z int) int {
	for _, row := range googleMapsLevel {
		if z <= row.maxZoom {
			return row.level
		}
	}
	return geoindex.MaxLevel - 1
}

func clampLevel(level int) int {
	if level > geoindex.MaxLevel-1 {
		return geoindex.MaxLevel - 1
	}
	if level < 0 {
		return 0
	}
	return level
}

// googleMapsToMarble converts a Google Maps zoom integer to its nearest
// Marble zoom value (the widget's cross-backend zoom equivalence table),
// used when a caller switches the active backend and needs to carry
// the current zoom level across.
var googleMapsToMarble = []struct {
	maxZoom    int
	marbleZoom int
}{
	{0, 900}, {1, 970}, {2, 1108}, {3, 1250}, {4, 1384}, {5, 1520},
	{6, 1665}, {7, 1800}, {8, 1940}, {9, 2070}, {10, 2220}, {11, 2357},
	{12, 2510}, {13, 2635}, {14, 2775}, {15, 2900}, {16, 3051}, {17, 3180},
	{18, 3295}, {19, 3450},
}

// marbleToGoogleMapsBound lists the inclusive upper Marble-zoom bound for
// each successive Google Maps zoom level, mirroring the original's
// descending comparison chain.
var marbleToGoogleMapsBound = []struct {
	maxMarbleZoom int
	googleZoom    int
}{
	{900, 0}, {970, 1}, {1108, 2}, {1250, 3}, {1384, 4}, {1520, 5},
	{1665, 6}, {1800, 7}, {1940, 8}, {2070, 9}, {2220, 10}, {2357, 11},
	{2510, 12}, {2635, 13}, {2775, 14}, {2900, 15}, {3051, 16}, {3180, 17},
	{3295, 18}, {3450, 19},
}

// Convert rewrites a "backend:value" zoom string for a different target
// backend, using the original widget's experimentally-derived equivalence
// tables. If sourceBackend already equals targetBackend, zoomString is
// returned unchanged.
func Convert(zoomString, targetBackend string) (string, bool) {
	backend, value, ok := ParseZoom(zoomString)
	if !ok {
		return "", false
	}
	if backend == targetBackend {
		return zoomString, true
	}

	sourceZoom, err := strconv.Atoi(value)
	if err != nil {
		return "", false
	}

	var targetZoom int
	switch targetBackend {
	case BackendMarble:
		targetZoom = 3500
		for _, row := range googleMapsToMarble {
			if sourceZoom <= row.maxZoom {
				targetZoom = row.marbleZoom
				break
			}
		}
	case BackendGoogleMaps, BackendOSM:
		targetZoom = 20
		for _, row := range marbleToGoogleMapsBound {
			if sourceZoom <= row.maxMarbleZoom {
				targetZoom = row.googleZoom
				break
			}
		}
	default:
		return "", false
	}

	return fmt.Sprintf("%s:%d", targetBackend, targetZoom), true
}
