package modeltest

import (
	"testing"

	"github.com/geomarker/markertiler/internal/geoindex"
)

func TestMockModelAddAndLookup(t *testing.T) {
	m := NewMockModel()
	h := m.Add(geoindex.NewCoordinate(10, 20))
	if m.RowCount() != 1 {
		t.Fatalf("expected 1 row, got %d", m.RowCount())
	}
	coord, ok := m.ItemCoordinates(h)
	if !ok || coord.Lat != 10 || coord.Lon != 20 {
		t.Fatalf("got %v %v", coord, ok)
	}
}

func TestMockModelHandlesAreDistinct(t *testing.T) {
	m := NewMockModel()
	a := m.Add(geoindex.NewCoordinate(1, 1))
	b := m.Add(geoindex.NewCoordinate(2, 2))
	if a == b {
		t.Fatal("expected distinct handles from two Add calls")
	}
}

func TestMockModelRemoveKeepsHandlesStable(t *testing.T) {
	m := NewMockModel()
	a := m.Add(geoindex.NewCoordinate(1, 1))
	b := m.Add(geoindex.NewCoordinate(2, 2))
	c := m.Add(geoindex.NewCoordinate(3, 3))

	if !m.Remove(a) {
		t.Fatal("expected Remove(a) to succeed")
	}
	if m.RowCount() != 2 {
		t.Fatalf("expected 2 rows remaining, got %d", m.RowCount())
	}
	if _, ok := m.ItemCoordinates(b); !ok {
		t.Error("expected b to remain reachable after removing a")
	}
	if _, ok := m.ItemCoordinates(c); !ok {
		t.Error("expected c to remain reachable after removing a")
	}
	if _, ok := m.ItemCoordinates(a); ok {
		t.Error("expected a to no longer be reachable")
	}
}

func TestMockSelectionModel(t *testing.T) {
	s := NewMockSelectionModel()
	if s.IsSelected("x") {
		t.Fatal("expected unknown handle to be unselected")
	}
	s.SetSelected("x", true)
	if !s.IsSelected("x") {
		t.Fatal("expected x to be selected after SetSelected")
	}
}
