// Package model defines the narrow capability interfaces the marker tiler
// and clusterer consume from an external item collection, plus the small
// value types (Handle, GroupState, SortKey, flags) shared across the
// engine. None of these types render, persist, or perform I/O — they are
// the seams the host application implements (§6).
package model

import "github.com/geomarker/markertiler/internal/geoindex"

// Handle is an opaque, stable identifier for one item in the external
// model. The adapter promises a Handle stays valid across row moves until
// the item is explicitly removed (§6.1, §9 Design Notes).
type Handle interface{}

// Flag is a bit flag describing item or model capabilities (§6.1).
type Flag uint8

const (
	FlagVisible Flag = 1 << iota
	FlagMovable
	FlagSnaps
)

// Has reports whether f contains all bits of other.
func (f Flag) Has(other Flag) bool { return f&other == other }

// ItemModelAdapter is the capability set the tiler requires from any item
// collection (§6.1).
type ItemModelAdapter interface {
	RowCount() int
	Index(row, col int) Handle
	ItemCoordinates(h Handle) (geoindex.Coordinate, bool)
	ModelFlags() Flag
	ItemFlags(h Handle) Flag
}

// Representative is implemented optionally by an ItemModelAdapter to pick
// the best representative item of a tile for a given sort key, and to
// materialize a thumbnail for one. Default behavior (first handle, no
// thumbnail) is supplied by callers that don't implement it.
type Representative interface {
	BestRepresentative(handles []Handle, sortKey SortKey) Handle
}

// SelectionModelAdapter reports and signals selection state (§6.2).
type SelectionModelAdapter interface {
	IsSelected(h Handle) bool
}
