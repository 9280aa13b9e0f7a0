package pyramid

import (
	"testing"

	"github.com/geomarker/markertiler/internal/model"
)

func TestTileSubdivideIsIdempotent(t *testing.T) {
	tile := newTile()
	tile.subdivide()
	tile.addChild(5, newTile())
	tile.subdivide() // must not wipe existing children
	if tile.Child(5) == nil {
		t.Fatal("subdivide() a second time destroyed an existing child")
	}
}

func TestTileRemoveItemOrStaleDropsStaleAndMatch(t *testing.T) {
	tile := newTile()
	tile.addItem("stale1", false)
	tile.addItem("target", false)
	tile.addItem("stale2", false)
	tile.addItem("keep", false)

	isStale := func(h model.Handle) bool {
		s, _ := h.(string)
		return s == "stale1" || s == "stale2"
	}
	found := tile.removeItemOrStale("target", isStale)
	if !found {
		t.Fatal("expected target to be found")
	}
	if len(tile.items) != 1 || tile.items[0] != "keep" {
		t.Fatalf("unexpected items after removal: %v", tile.items)
	}
}

func TestTileRemoveItemOrStaleNoMatch(t *testing.T) {
	tile := newTile()
	tile.addItem("a", false)
	found := tile.removeItemOrStale("nonexistent", nil)
	if found {
		t.Fatal("expected no match")
	}
	if len(tile.items) != 1 {
		t.Fatalf("items should be untouched: %v", tile.items)
	}
}

func TestTileTakeChildrenClears(t *testing.T) {
	tile := newTile()
	tile.subdivide()
	tile.addChild(3, newTile())
	taken := tile.takeChildren()
	if taken[3] == nil {
		t.Fatal("expected taken children to include slot 3")
	}
	if tile.IsSubdivided() {
		t.Fatal("takeChildren should clear the node's own child vector")
	}
}

func TestTileSelectedCountClamping(t *testing.T) {
	tile := newTile()
	tile.addItem("a", false)
	tile.decrementSelected()
	if tile.SelectedCount() != 0 {
		t.Errorf("decrementSelected below zero should clamp at 0, got %d", tile.SelectedCount())
	}
	tile.incrementSelected()
	tile.incrementSelected()
	if tile.SelectedCount() != 1 {
		t.Errorf("incrementSelected beyond item count should clamp at 1, got %d", tile.SelectedCount())
	}
}
