package pyramid

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/geomarker/markertiler/internal/geoindex"
	"github.com/geomarker/markertiler/internal/model"
)

// AbstractTiler is the capability set the clusterer requires from any
// tiler implementation (§4.4): counts, selection counts, representative,
// group-state, dirty query, and the non-empty bounded iterator.
type AbstractTiler interface {
	GetTileItemCount(idx geoindex.TileIndex) int
	GetTileSelectedCount(idx geoindex.TileIndex) int
	GetTileItemHandles(idx geoindex.TileIndex) []model.Handle
	GetTileGroupState(idx geoindex.TileIndex) model.GroupState
	GetTileRepresentative(idx geoindex.TileIndex, sortKey model.SortKey) (model.Handle, bool)
	IsDirty() bool
	NonEmptyTiles(level int, bounds []geoindex.BoundsPair) []geoindex.TileIndex
}

// TilerConfig controls the representative-marker cache size.
type TilerConfig struct {
	// RepresentativeCacheSize bounds the per-(tile,sort key) best-
	// representative LRU cache. Zero selects a small default.
	RepresentativeCacheSize int
}

func (c TilerConfig) withDefaults() TilerConfig {
	if c.RepresentativeCacheSize <= 0 {
		c.RepresentativeCacheSize = 4096
	}
	return c
}

// ItemTiler is a concrete AbstractTiler bound to an external item model
// (§4.3). It maintains the pyramid incrementally under item
// insert/remove/move and selection changes.
type ItemTiler struct {
	cfg    TilerConfig
	root   *Tile
	model  model.ItemModelAdapter
	sel    model.SelectionModelAdapter
	dirty  bool
	repLRU *lru.Cache[repCacheKey, model.Handle]

	// coords caches the full-depth TileIndex most recently computed for
	// a handle, so RemoveItem can locate it without re-querying the
	// (possibly already-invalidated) item model.
	coords map[model.Handle]geoindex.TileIndex
}

type repCacheKey struct {
	path    [geoindex.MaxIndexCount]int
	level   int
	sortKey model.SortKey
}

// NewItemTiler returns a tiler with an empty root tile. Call
// SetModelHelper before any query.
func NewItemTiler(cfg TilerConfig) *ItemTiler {
	cfg = cfg.withDefaults()
	cache, err := lru.New[repCacheKey, model.Handle](cfg.RepresentativeCacheSize)
	if err != nil {
		// Only fails for a non-positive size, which withDefaults prevents.
		panic(fmt.Sprintf("pyramid: representative cache: %v", err))
	}
	return &ItemTiler{
		cfg:    cfg,
		root:   newRootTile(),
		dirty:  true,
		repLRU: cache,
		coords: make(map[model.Handle]geoindex.TileIndex),
	}
}

// SetModelHelper binds the tiler to an external item-model adapter and an
// optional selection adapter and marks the pyramid dirty, so the next
// query triggers a full regeneration.
func (it *ItemTiler) SetModelHelper(m model.ItemModelAdapter, sel model.SelectionModelAdapter) {
	it.model = m
	it.sel = sel
	it.setDirty()
}

// IsDirty reports whether the pyramid disagrees with the model and will
// be rebuilt on the next query.
func (it *ItemTiler) IsDirty() bool { return it.dirty }

// setDirty marks the pyramid stale; the next query triggers a full
// rebuild (§4.3 "Dirty flag and regeneration").
func (it *ItemTiler) setDirty() { it.dirty = true }

// ModelReset handles a full model reset notification: always dirty.
func (it *ItemTiler) ModelReset() { it.setDirty() }

// DataChanged handles a data-changed notification: treated as dirty per
// §6.1 (the tiler re-scans on next query).
func (it *ItemTiler) DataChanged() { it.setDirty() }

// regenerateIfDirty destroys the pyramid and reinserts every model row
// from scratch, then clears the dirty flag.
func (it *ItemTiler) regenerateIfDirty() {
	if !it.dirty || it.model == nil {
		return
	}
	it.root = newRootTile()
	it.coords = make(map[model.Handle]geoindex.TileIndex)
	it.repLRU.Purge()
	for row := 0; row < it.model.RowCount(); row++ {
		h := it.model.Index(row, 0)
		coord, ok := it.model.ItemCoordinates(h)
		if !ok {
			continue
		}
		it.insertAt(h, coord)
	}
	it.dirty = false
}

// AddItem inserts handle, computing its tile path from the model's
// current coordinates. A handle with no coordinate is ignored, and so is
// a handle already in the pyramid (for instance one the regeneration
// triggered by this call has just inserted from the model).
func (it *ItemTiler) AddItem(h model.Handle) {
	it.regenerateIfDirty()
	if it.model == nil {
		return
	}
	if _, known := it.coords[h]; known {
		return
	}
	coord, ok := it.model.ItemCoordinates(h)
	if !ok {
		return
	}
	it.insertAt(h, coord)
}

// insertAt implements the insertion algorithm of §4.3: walk the pyramid
// from the root, appending the handle at each existing node, descending
// only as far as the current frontier already reaches.
func (it *ItemTiler) insertAt(h model.Handle, coord geoindex.Coordinate) {
	full := geoindex.FromCoordinates(coord, geoindex.MaxLevel)
	it.coords[h] = full
	it.repLRU.Purge()

	selected := it.sel != nil && it.sel.IsSelected(h)
	node := it.root
	node.addItem(h, selected)
	for level := 0; level <= geoindex.MaxLevel; level++ {
		// The node already has children (the root always does, and any
		// other node only reaches this point because a prior descent
		// subdivided it) — ensure the indicated child exists, add the
		// item, and descend. A node with no children yet marks the
		// current frontier: stop without forcing subdivision deeper.
		if !node.IsSubdivided() {
			return
		}
		idx := full.At(level)
		child := node.Child(idx)
		if child == nil {
			child = newTile()
			node.addChild(idx, child)
		}
		child.addItem(h, selected)
		node = child
	}
}

// RemoveItem removes handle from every tile along its recorded path and
// prunes emptied non-root nodes. ignoreSelection suppresses the
// selected-count decrement (used when the selection model independently
// announces deselection for the same row, per §4.3).
func (it *ItemTiler) RemoveItem(h model.Handle, ignoreSelection bool) {
	it.regenerateIfDirty()
	full, ok := it.coords[h]
	if !ok {
		return
	}
	delete(it.coords, h)
	it.repLRU.Purge()

	isStale := func(other model.Handle) bool {
		_, known := it.coords[other]
		return other != h && !known
	}

	// Gather the path root..full via GetTile at every prefix length, the
	// same way the original walks with stopIfEmpty=true: this still
	// redistributes any node reached for the first time, so removal can
	// deepen the pyramid just like any other query.
	var path []*Tile
	for l := 0; l <= full.IndexCount(); l++ {
		t, ok := it.GetTile(full.Mid(0, l), true)
		if !ok {
			break
		}
		path = append(path, t)
	}

	for _, n := range path {
		found := n.removeItemOrStale(h, isStale)
		if found && !ignoreSelection {
			n.decrementSelected()
		}
	}

	// Walk back upward, pruning any emptied non-root node.
	for i := len(path) - 1; i > 0; i-- {
		n := path[i]
		if n.ItemCount() > 0 {
			continue
		}
		parent := path[i-1]
		parent.clearChild(full.At(i - 1))
	}
}

// MoveItem relocates handle to a new coordinate: remove (preserving
// selection count) then reinsert (§4.3 "Move algorithm").
func (it *ItemTiler) MoveItem(h model.Handle, newCoord geoindex.Coordinate) {
	it.RemoveItem(h, true)
	it.insertAt(h, newCoord)
}

// SelectionChanged adjusts selectedCount at every existing ancestor of
// handle's tile path, without subdividing further (§6.2).
func (it *ItemTiler) SelectionChanged(h model.Handle, selected bool) {
	it.regenerateIfDirty()
	full, ok := it.coords[h]
	if !ok {
		return
	}
	it.repLRU.Purge()

	apply := func(n *Tile) {
		if selected {
			n.incrementSelected()
		} else {
			n.decrementSelected()
		}
	}

	// One GetTile per prefix length, stopping after the first node that
	// has no children: every node walked through is already subdivided,
	// so this never subdivides further. Items still held by an
	// unsubdivided node pick up their current selection state when that
	// node is later redistributed.
	for l := 0; l <= full.IndexCount(); l++ {
		t, ok := it.GetTile(full.Mid(0, l), true)
		if !ok {
			break
		}
		apply(t)
		if !t.IsSubdivided() {
			break
		}
	}
}

// GetTile walks the path, subdividing and redistributing items as it
// descends — this happens regardless of stopIfEmpty, since it only
// reclassifies items already present at the node being traversed.
// stopIfEmpty gates a different decision: whether to fabricate a new,
// genuinely empty child tile when the desired slot has none (§4.3
// get_tile).
func (it *ItemTiler) GetTile(idx geoindex.TileIndex, stopIfEmpty bool) (*Tile, bool) {
	it.regenerateIfDirty()
	node := it.root
	for level := 0; level <= idx.Level(); level++ {
		if !node.IsSubdivided() {
			it.redistribute(node, level)
		}
		child := node.Child(idx.At(level))
		if child == nil {
			if stopIfEmpty {
				return nil, false
			}
			child = newTile()
			node.addChild(idx.At(level), child)
		}
		node = child
	}
	return node, true
}

// redistribute subdivides node (which sits at depth level, about to gain
// children at depth level) and classifies each of its items into the
// child selected by the full-depth index the tiler recorded for it at
// insertion (equal to from_coordinates(coord, level).at(level) for the
// coordinate it was inserted with), preserving selection counts (§4.3
// get_tile redistribution). Items with no recorded index are not
// copied into any child.
func (it *ItemTiler) redistribute(node *Tile, level int) {
	node.subdivide()
	if it.model == nil {
		return
	}
	for _, h := range node.items {
		full, ok := it.coords[h]
		if !ok {
			continue
		}
		childIdx := full.At(level)
		child := node.Child(childIdx)
		if child == nil {
			child = newTile()
			node.addChild(childIdx, child)
		}
		selected := it.sel != nil && it.sel.IsSelected(h)
		child.addItem(h, selected)
	}
}

// GetTileItemCount returns 0 for a missing tile.
func (it *ItemTiler) GetTileItemCount(idx geoindex.TileIndex) int {
	t, ok := it.GetTile(idx, true)
	if !ok {
		return 0
	}
	return t.ItemCount()
}

// GetTileSelectedCount returns 0 for a missing tile.
func (it *ItemTiler) GetTileSelectedCount(idx geoindex.TileIndex) int {
	t, ok := it.GetTile(idx, true)
	if !ok {
		return 0
	}
	return t.SelectedCount()
}

// GetTileItemHandles returns nil for a missing tile.
func (it *ItemTiler) GetTileItemHandles(idx geoindex.TileIndex) []model.Handle {
	t, ok := it.GetTile(idx, true)
	if !ok {
		return nil
	}
	return t.Handles()
}

// GetTileGroupState returns the selected-attribute GroupState for a tile
// (§7): None/Some/All by selected vs. total count. A missing tile is
// None.
func (it *ItemTiler) GetTileGroupState(idx geoindex.TileIndex) model.GroupState {
	t, ok := it.GetTile(idx, true)
	if !ok {
		return model.GroupStateNone
	}
	return model.ComposeSelectedState(t.SelectedCount(), t.ItemCount())
}

// GetTileRepresentative delegates to the model's Representative
// implementation, caching per (tile index, sort key). The cache is
// purged wholesale on any mutation touching the pyramid (§9 "Open
// question: representative marker cache" — conservative invalidation).
func (it *ItemTiler) GetTileRepresentative(idx geoindex.TileIndex, sortKey model.SortKey) (model.Handle, bool) {
	key := repCacheKeyFor(idx, sortKey)
	if h, ok := it.repLRU.Get(key); ok {
		return h, true
	}
	t, ok := it.GetTile(idx, true)
	if !ok || t.ItemCount() == 0 {
		return nil, false
	}
	rep, ok := it.model.(model.Representative)
	var h model.Handle
	if ok {
		h = rep.BestRepresentative(t.Handles(), sortKey)
	} else {
		h = t.Handles()[0]
	}
	it.repLRU.Add(key, h)
	return h, true
}

func repCacheKeyFor(idx geoindex.TileIndex, sortKey model.SortKey) repCacheKey {
	var k repCacheKey
	k.level = idx.Level()
	k.sortKey = sortKey
	for l := 0; l <= idx.Level(); l++ {
		k.path[l] = idx.At(l)
	}
	return k
}
