package engine

import (
	"testing"

	"github.com/geomarker/markertiler/internal/geoindex"
	"github.com/geomarker/markertiler/internal/model"
)

type fakeItem struct {
	handle model.Handle
	coord  geoindex.Coordinate
}

type fakeModel struct {
	items []fakeItem
}

func (m *fakeModel) RowCount() int { return len(m.items) }
func (m *fakeModel) Index(row, col int) model.Handle {
	if row < 0 || row >= len(m.items) {
		return nil
	}
	return m.items[row].handle
}
func (m *fakeModel) ItemCoordinates(h model.Handle) (geoindex.Coordinate, bool) {
	for _, it := range m.items {
		if it.handle == h {
			return it.coord, true
		}
	}
	return geoindex.Coordinate{}, false
}
func (m *fakeModel) ModelFlags() model.Flag             { return model.FlagVisible }
func (m *fakeModel) ItemFlags(h model.Handle) model.Flag { return model.FlagVisible }

type fakeSelection struct{ selected map[model.Handle]bool }

func (s *fakeSelection) IsSelected(h model.Handle) bool { return s.selected[h] }

func TestEngineAddItemPublishesTilesOrSelectionChanged(t *testing.T) {
	e := New(Config{})
	m := &fakeModel{items: []fakeItem{{handle: "a", coord: geoindex.NewCoordinate(10, 10)}}}
	sel := &fakeSelection{selected: map[model.Handle]bool{}}

	fired := 0
	e.SubscribeTilesOrSelectionChanged(func() { fired++ })

	e.SetModelHelper(m, sel)
	if fired != 1 {
		t.Fatalf("expected 1 notification after SetModelHelper, got %d", fired)
	}

	e.AddItem("a")
	if fired != 2 {
		t.Fatalf("expected 2 notifications after AddItem, got %d", fired)
	}
	if e.Tiler.GetTileItemCount(geoindex.TileIndex{}) != 1 {
		t.Error("expected root tile to report 1 item after insertion")
	}
}

func TestEngineThumbnailSubscription(t *testing.T) {
	e := New(Config{})
	var got model.Handle
	e.SubscribeThumbnailAvailable(func(h model.Handle) { got = h })
	e.PublishThumbnailAvailable("thumb-handle")
	if got != model.Handle("thumb-handle") {
		t.Errorf("expected thumbnail handler to receive the handle, got %v", got)
	}
}

func TestEngineSelectionChangedBatch(t *testing.T) {
	e := New(Config{})
	m := &fakeModel{items: []fakeItem{
		{handle: "a", coord: geoindex.NewCoordinate(10, 10)},
		{handle: "b", coord: geoindex.NewCoordinate(20, 20)},
	}}
	sel := &fakeSelection{selected: map[model.Handle]bool{}}
	e.SetModelHelper(m, sel)
	e.AddItem("a")
	e.AddItem("b")

	e.SelectionChanged([]model.Handle{"a"}, nil)
	if e.Tiler.GetTileSelectedCount(geoindex.TileIndex{}) != 1 {
		t.Error("expected root selected count 1 after selecting one item")
	}
	e.SelectionChanged(nil, []model.Handle{"a"})
	if e.Tiler.GetTileSelectedCount(geoindex.TileIndex{}) != 0 {
		t.Error("expected root selected count 0 after deselecting the item")
	}
}
