// Package pyramid implements the hierarchical tile pyramid: the Tile node
// type and the ItemTiler that keeps a pyramid incrementally in sync with
// an external item model (§4.2, §4.3).
package pyramid

import "github.com/geomarker/markertiler/internal/model"

// cellCount is the number of slots in a subdivided Tile's child vector
// (Tiling*Tiling).
const cellCount = 100

// Tile is one node of the pyramid. A freshly created Tile has no
// children; it gains a fixed-size child vector only via subdivide.
type Tile struct {
	children      []*Tile // nil until subdivide(); len == cellCount once allocated
	items         []model.Handle
	selectedCount int
}

// newTile returns an empty, unsubdivided tile.
func newTile() *Tile {
	return &Tile{}
}

// newRootTile returns an empty tile pre-subdivided into its Tiling*Tiling
// children, matching the pyramid root's lifetime invariant: the root is
// always ready to receive level-0 items without a lazy-subdivision step.
func newRootTile() *Tile {
	t := newTile()
	t.subdivide()
	return t
}

// IsSubdivided reports whether the tile owns a child vector.
func (t *Tile) IsSubdivided() bool { return t.children != nil }

// ItemCount returns the number of items recorded at this node.
func (t *Tile) ItemCount() int { return len(t.items) }

// decrementSelected lowers selectedCount by one, clamping at zero (§7
// selection/row-count drift handling).
func (t *Tile) decrementSelected() {
	if t.selectedCount > 0 {
		t.selectedCount--
	}
}

// incrementSelected raises selectedCount by one, clamping at item count
// (§7 selection/row-count drift handling).
func (t *Tile) incrementSelected() {
	if t.selectedCount < len(t.items) {
		t.selectedCount++
	}
}

// SelectedCount returns the node's selection count.
func (t *Tile) SelectedCount() int { return t.selectedCount }

// Handles returns the item handles recorded at this node. The returned
// slice must not be retained past the next mutation.
func (t *Tile) Handles() []model.Handle { return t.items }

// Child returns the child at linear index idx, or nil if unsubdivided or
// the slot is empty.
func (t *Tile) Child(idx int) *Tile {
	if !t.IsSubdivided() {
		return nil
	}
	return t.children[idx]
}

// subdivide allocates the fixed child vector. It does not populate it
// (§4.2 subdivide()).
func (t *Tile) subdivide() {
	if t.children != nil {
		return
	}
	t.children = make([]*Tile, cellCount)
}

// addChild replaces the slot at idx, taking ownership of newTile (§4.2
// add_child).
func (t *Tile) addChild(idx int, child *Tile) {
	t.subdivide()
	t.children[idx] = child
}

// clearChild nulls the slot at idx without destroying the node (§4.2
// clear_child, used when RemoveItem prunes an emptied child).
func (t *Tile) clearChild(idx int) {
	if t.children != nil {
		t.children[idx] = nil
	}
}

// takeChildren yields ownership of all children for bulk destruction and
// clears this node's child vector (§4.2 take_children).
func (t *Tile) takeChildren() []*Tile {
	taken := t.children
	t.children = nil
	return taken
}

// hasAnyChild reports whether at least one child slot is populated.
func (t *Tile) hasAnyChild() bool {
	for _, c := range t.children {
		if c != nil {
			return true
		}
	}
	return false
}

// addItem appends handle to this node's item list.
func (t *Tile) addItem(h model.Handle, selected bool) {
	t.items = append(t.items, h)
	if selected {
		t.selectedCount++
	}
}

// removeItemOrStale walks the whole item list from the front, dropping
// every stale handle (those for which isStale reports true, when isStale
// is non-nil) and the first match for handle. Returns whether handle
// itself was found and removed (§4.2 remove_item_or_stale).
func (t *Tile) removeItemOrStale(handle model.Handle, isStale func(model.Handle) bool) bool {
	found := false
	kept := t.items[:0]
	for _, h := range t.items {
		switch {
		case !found && h == handle:
			found = true
		case isStale != nil && isStale(h):
			// drop silently
		default:
			kept = append(kept, h)
		}
	}
	t.items = kept
	return found
}
