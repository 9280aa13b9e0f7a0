// Package engine wires the pyramid, the clusterer, and the shared map
// state into the single facade a host application drives (§2, §9
// Design Notes: "signals instead of inheritance-based observers"). It
// replaces the original's signal/slot chains with an explicit
// subscriber list per notification kind, grounded on the teacher pack's
// publish/subscribe dispatcher.
package engine

import (
	"github.com/geomarker/markertiler/internal/cluster"
	"github.com/geomarker/markertiler/internal/geoindex"
	"github.com/geomarker/markertiler/internal/markerstate"
	"github.com/geomarker/markertiler/internal/model"
	"github.com/geomarker/markertiler/internal/pyramid"
)

// Signal names the two fixed notification kinds the core emits (§9
// Design Notes).
type Signal int

const (
	// TilesOrSelectionChanged fires whenever a mutation or selection
	// change may have invalidated the last clustering pass.
	TilesOrSelectionChanged Signal = iota
	// ThumbnailAvailableForHandle fires when a representative
	// thumbnail becomes available for a specific handle.
	ThumbnailAvailableForHandle
)

// TilesOrSelectionChangedHandler is invoked with no arguments; subscribers
// re-cluster and redraw in response.
type TilesOrSelectionChangedHandler func()

// ThumbnailHandler is invoked with the handle a thumbnail became
// available for.
type ThumbnailHandler func(h model.Handle)

// Engine is the facade a host application drives: it owns the item
// pyramid, the clusterer, and the shared map state, and publishes
// synchronous change notifications (§5: single-threaded cooperative,
// no reentrant mutation from within a handler).
type Engine struct {
	Tiler   *pyramid.ItemTiler
	Cluster *cluster.Clusterer
	State   *markerstate.State

	level  int
	bounds []geoindex.BoundsPair

	tilesHandlers     []TilesOrSelectionChangedHandler
	thumbnailHandlers []ThumbnailHandler
}

// Config configures a new Engine.
type Config struct {
	Tiler   pyramid.TilerConfig
	Cluster cluster.Config
}

// New builds an Engine with a fresh tiler and clusterer.
func New(cfg Config) *Engine {
	return &Engine{
		Tiler:   pyramid.NewItemTiler(cfg.Tiler),
		Cluster: cluster.New(cfg.Cluster),
		State:   markerstate.NewState(),
	}
}

// SubscribeTilesOrSelectionChanged registers h to run whenever
// TilesOrSelectionChanged fires.
func (e *Engine) SubscribeTilesOrSelectionChanged(h TilesOrSelectionChangedHandler) {
	e.tilesHandlers = append(e.tilesHandlers, h)
}

// SubscribeThumbnailAvailable registers h to run whenever
// ThumbnailAvailableForHandle fires.
func (e *Engine) SubscribeThumbnailAvailable(h ThumbnailHandler) {
	e.thumbnailHandlers = append(e.thumbnailHandlers, h)
}

func (e *Engine) publishTilesOrSelectionChanged() {
	for _, h := range e.tilesHandlers {
		h()
	}
}

// PublishThumbnailAvailable notifies subscribers a representative
// thumbnail is ready for handle. The core never decodes or renders
// thumbnails itself (Non-goals); a host collaborator calls this once it
// has produced one out-of-band.
func (e *Engine) PublishThumbnailAvailable(h model.Handle) {
	for _, sub := range e.thumbnailHandlers {
		sub(h)
	}
}

// SetModelHelper binds the tiler to an external item-model and
// selection-model adapter (§4.2 set_model_helper), marks the pyramid
// dirty, and publishes TilesOrSelectionChanged.
func (e *Engine) SetModelHelper(m model.ItemModelAdapter, sel model.SelectionModelAdapter) {
	e.Tiler.SetModelHelper(m, sel)
	e.publishTilesOrSelectionChanged()
}

// AddItem inserts handle's current coordinates into the pyramid.
func (e *Engine) AddItem(h model.Handle) {
	e.Tiler.AddItem(h)
	e.publishTilesOrSelectionChanged()
}

// RemoveItem removes handle from the pyramid.
func (e *Engine) RemoveItem(h model.Handle, ignoreSelection bool) {
	e.Tiler.RemoveItem(h, ignoreSelection)
	e.publishTilesOrSelectionChanged()
}

// MoveItem relocates handle to newCoord, preserving its selection state.
func (e *Engine) MoveItem(h model.Handle, newCoord geoindex.Coordinate) {
	e.Tiler.MoveItem(h, newCoord)
	e.publishTilesOrSelectionChanged()
}

// SelectionChanged applies a batch of selection transitions (§6
// "selection_changed(selected_list, deselected_list)").
func (e *Engine) SelectionChanged(selected, deselected []model.Handle) {
	for _, h := range selected {
		e.Tiler.SelectionChanged(h, true)
	}
	for _, h := range deselected {
		e.Tiler.SelectionChanged(h, false)
	}
	e.publishTilesOrSelectionChanged()
}

// ModelReset marks the whole pyramid dirty, for a full external model
// reset.
func (e *Engine) ModelReset() {
	e.Tiler.ModelReset()
	e.publishTilesOrSelectionChanged()
}

// DataChanged marks the pyramid dirty in response to an external
// data-changed notification (coordinates of existing rows may have
// changed without a move/remove/insert).
func (e *Engine) DataChanged() {
	e.Tiler.DataChanged()
	e.publishTilesOrSelectionChanged()
}

// SetViewport records the current zoom level and visible bounds the next
// Recluster call uses. The host calls this once per frame, derived from
// zoom.Level(backendZoomString) and geoindex.NormalizeBounds.
func (e *Engine) SetViewport(level int, bounds []geoindex.BoundsPair) {
	e.level = level
	e.bounds = bounds
}

// Recluster runs one clustering pass over the current viewport and
// stores the result in State.Clusters (§4.5, §9 data-flow-per-frame).
func (e *Engine) Recluster(backend cluster.MapBackend) []*cluster.Cluster {
	clusters := e.Cluster.Compute(e.Tiler, backend, e.level, e.bounds)
	e.State.Clusters = clusters
	return clusters
}
