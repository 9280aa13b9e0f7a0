package geoindex

// Tiling is the number of cells a tile is subdivided into along each axis.
const Tiling = 10

// MaxLevel is the deepest level a TileIndex can reach (10 levels, 0..9).
const MaxLevel = 9

// MaxIndexCount is the maximum number of linear indices a TileIndex holds.
const MaxIndexCount = MaxLevel + 1

// CornerPosition selects one of the four corners of a tile's cell.
type CornerPosition int

const (
	CornerSW CornerPosition = iota
	CornerNW
	CornerSE
	CornerNE
)

// TileIndex is an ordered sequence of up to MaxIndexCount linear indices,
// each in [0, Tiling*Tiling), identifying one tile of the pyramid by its
// path from the root. Its Level is len(indices)-1.
type TileIndex struct {
	indices [MaxIndexCount]int
	count   int
}

// Level returns the depth of the index (length-1), or -1 for the empty
// (globe) index.
func (t TileIndex) Level() int { return t.count - 1 }

// IndexCount returns the number of linear indices stored (Level()+1).
func (t TileIndex) IndexCount() int { return t.count }

// AppendLinearIndex appends one linear index (lat_i*Tiling + lon_i).
func (t *TileIndex) AppendLinearIndex(linear int) {
	if t.count >= MaxIndexCount {
		return
	}
	t.indices[t.count] = linear
	t.count++
}

// AppendLatLonIndex appends the linear index formed from a lat/lon cell
// pair at the next level.
func (t *TileIndex) AppendLatLonIndex(latIndex, lonIndex int) {
	t.AppendLinearIndex(latIndex*Tiling + lonIndex)
}

// At returns the linear index stored at the given level (0-based). Returns
// -1 if level is out of range.
func (t TileIndex) At(level int) int {
	if level < 0 || level >= t.count {
		return -1
	}
	return t.indices[level]
}

// LatIndex returns the latitude cell component at the given level.
func (t TileIndex) LatIndex(level int) int {
	v := t.At(level)
	if v < 0 {
		return -1
	}
	return v / Tiling
}

// LonIndex returns the longitude cell component at the given level.
func (t TileIndex) LonIndex(level int) int {
	v := t.At(level)
	if v < 0 {
		return -1
	}
	return v % Tiling
}

// Mid returns the sub-path [first, first+len).
func (t TileIndex) Mid(first, length int) TileIndex {
	var out TileIndex
	for i := first; i < first+length && i < t.count; i++ {
		out.AppendLinearIndex(t.indices[i])
	}
	return out
}

// OneUp pops the last index, moving one level toward the root.
func (t *TileIndex) OneUp() {
	if t.count > 0 {
		t.count--
	}
}

// IndicesEqual reports whether a and b agree on every level up to and
// including upToLevel (prefix equality).
func IndicesEqual(a, b TileIndex, upToLevel int) bool {
	for l := 0; l <= upToLevel; l++ {
		if a.At(l) != b.At(l) {
			return false
		}
	}
	return true
}

// globeRect tracks the geographic rectangle owned by the current tile
// while walking levels, mirroring the BL-corner/height/width state used by
// both FromCoordinates and ToCoordinates.
type globeRect struct {
	blLat, blLon  float64
	height, width float64
}

func newGlobeRect() globeRect {
	return globeRect{blLat: -90, blLon: -180, height: 180, width: 360}
}

// FromCoordinates computes the TileIndex of the tile containing coordinate
// at the given level, clamping cell selection silently at the poles and
// antimeridian so floating-point rounding at exact boundaries never
// escapes to a wrong cell at deeper levels (§4.1).
func FromCoordinates(coordinate Coordinate, level int) TileIndex {
	if level > MaxLevel {
		level = MaxLevel
	}

	var result TileIndex
	rect := newGlobeRect()

	for l := 0; l <= level; l++ {
		dLat := rect.height / Tiling
		dLon := rect.width / Tiling

		latIndex := int((coordinate.Lat - rect.blLat) / dLat)
		lonIndex := int((coordinate.Lon - rect.blLon) / dLon)

		if latIndex < 0 {
			latIndex = 0
		}
		if lonIndex < 0 {
			lonIndex = 0
		}
		if latIndex >= Tiling {
			latIndex = Tiling - 1
		}
		if lonIndex >= Tiling {
			lonIndex = Tiling - 1
		}

		result.AppendLatLonIndex(latIndex, lonIndex)

		rect.blLat += float64(latIndex) * dLat
		rect.blLon += float64(lonIndex) * dLon
		rect.height = dLat
		rect.width = dLon
	}

	return result
}

// ToCoordinates returns the south-west corner of the cell this index
// identifies.
func (t TileIndex) ToCoordinates() Coordinate {
	return t.ToCoordinatesAt(CornerSW)
}

// ToCoordinatesAt returns one of the four corners of the cell this index
// identifies.
func (t TileIndex) ToCoordinatesAt(corner CornerPosition) Coordinate {
	rect := newGlobeRect()

	for l := 0; l < t.count; l++ {
		dLat := rect.height / Tiling
		dLon := rect.width / Tiling

		latIndex := t.LatIndex(l)
		lonIndex := t.LonIndex(l)

		rect.blLat += float64(latIndex) * dLat
		rect.blLon += float64(lonIndex) * dLon
		rect.height = dLat
		rect.width = dLon
	}

	lat, lon := rect.blLat, rect.blLon
	switch corner {
	case CornerNW:
		lat += rect.height
	case CornerSE:
		lon += rect.width
	case CornerNE:
		lat += rect.height
		lon += rect.width
	}
	return NewCoordinate(lat, lon)
}
