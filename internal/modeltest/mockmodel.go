// Package modeltest provides a mock item-model and selection-model
// adapter implementing model.ItemModelAdapter and
// model.SelectionModelAdapter, for reuse across package tests and the
// demo CLI's file-backed data loader.
package modeltest

import (
	"github.com/google/uuid"

	"github.com/geomarker/markertiler/internal/geoindex"
	"github.com/geomarker/markertiler/internal/model"
)

type row struct {
	handle model.Handle
	coord  geoindex.Coordinate
}

// MockModel is an in-memory model.ItemModelAdapter backed by a plain
// slice. Handles are minted as uuid.New() strings so rows stay stably
// identified across Move/Remove the way a real host model promises
// (§6.1, §9 Design Notes: "stable handles").
type MockModel struct {
	rows []row
	byID map[model.Handle]int
}

// NewMockModel returns an empty MockModel.
func NewMockModel() *MockModel {
	return &MockModel{byID: make(map[model.Handle]int)}
}

// Add appends a new item at coord and returns its freshly minted handle.
func (m *MockModel) Add(coord geoindex.Coordinate) model.Handle {
	h := uuid.New().String()
	m.byID[h] = len(m.rows)
	m.rows = append(m.rows, row{handle: h, coord: coord})
	return h
}

// SetCoordinates updates the coordinates stored for an existing handle;
// it does not itself notify any tiler, matching the item-model adapter's
// role as a passive data source (§6.1).
func (m *MockModel) SetCoordinates(h model.Handle, coord geoindex.Coordinate) bool {
	i, ok := m.byID[h]
	if !ok {
		return false
	}
	m.rows[i].coord = coord
	return true
}

// Remove deletes the row for handle, if present.
func (m *MockModel) Remove(h model.Handle) bool {
	i, ok := m.byID[h]
	if !ok {
		return false
	}
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	delete(m.byID, h)
	for j := i; j < len(m.rows); j++ {
		m.byID[m.rows[j].handle] = j
	}
	return true
}

// RowCount implements model.ItemModelAdapter.
func (m *MockModel) RowCount() int { return len(m.rows) }

// Index implements model.ItemModelAdapter. col is ignored; MockModel is
// single-column.
func (m *MockModel) Index(rowIdx, col int) model.Handle {
	if rowIdx < 0 || rowIdx >= len(m.rows) {
		return nil
	}
	return m.rows[rowIdx].handle
}

// ItemCoordinates implements model.ItemModelAdapter.
func (m *MockModel) ItemCoordinates(h model.Handle) (geoindex.Coordinate, bool) {
	i, ok := m.byID[h]
	if !ok {
		return geoindex.Coordinate{}, false
	}
	return m.rows[i].coord, true
}

// ModelFlags implements model.ItemModelAdapter: everything is visible
// and movable.
func (m *MockModel) ModelFlags() model.Flag { return model.FlagVisible | model.FlagMovable }

// ItemFlags implements model.ItemModelAdapter.
func (m *MockModel) ItemFlags(h model.Handle) model.Flag {
	return model.FlagVisible | model.FlagMovable
}

// MockSelectionModel is an in-memory model.SelectionModelAdapter.
type MockSelectionModel struct {
	selected map[model.Handle]bool
}

// NewMockSelectionModel returns an empty MockSelectionModel.
func NewMockSelectionModel() *MockSelectionModel {
	return &MockSelectionModel{selected: make(map[model.Handle]bool)}
}

// IsSelected implements model.SelectionModelAdapter.
func (s *MockSelectionModel) IsSelected(h model.Handle) bool { return s.selected[h] }

// SetSelected marks handle's selection state directly; callers still need
// to notify the tiler via Engine.SelectionChanged for the pyramid to
// reflect the change.
func (s *MockSelectionModel) SetSelected(h model.Handle, selected bool) {
	s.selected[h] = selected
}
