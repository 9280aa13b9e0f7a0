package geoindex

import "testing"

func TestFromCoordinatesRoundTripLiesInCell(t *testing.T) {
	grid := []Coordinate{
		NewCoordinate(0, 0),
		NewCoordinate(1, 2),
		NewCoordinate(50, 60),
		NewCoordinate(-89.9, -179.9),
		NewCoordinate(89.9, 179.9),
		NewCoordinate(45, -90),
		NewCoordinate(-45, 90),
	}

	for level := 0; level <= MaxLevel; level++ {
		for _, c := range grid {
			idx := FromCoordinates(c, level)
			if idx.Level() != level {
				t.Fatalf("level %d: FromCoordinates(%v).Level() = %d", level, c, idx.Level())
			}

			sw := idx.ToCoordinatesAt(CornerSW)
			ne := idx.ToCoordinatesAt(CornerNE)
			if c.Lat < sw.Lat-1e-9 || c.Lat > ne.Lat+1e-9 {
				t.Errorf("level %d: lat %v outside cell [%v, %v]", level, c.Lat, sw.Lat, ne.Lat)
			}
			if c.Lon < sw.Lon-1e-9 || c.Lon > ne.Lon+1e-9 {
				t.Errorf("level %d: lon %v outside cell [%v, %v]", level, c.Lon, sw.Lon, ne.Lon)
			}

			if !IndicesEqual(idx, FromCoordinates(c, level), level) {
				t.Errorf("level %d: indicesEqual should hold against itself", level)
			}
		}
	}
}

func TestFromCoordinatesClampsAtBoundary(t *testing.T) {
	// Exactly on the north pole / antimeridian: must clamp to a valid cell,
	// not panic or produce an out-of-range index.
	tests := []Coordinate{
		NewCoordinate(90, 180),
		NewCoordinate(-90, -180),
		NewCoordinate(90, -180),
	}
	for _, c := range tests {
		idx := FromCoordinates(c, MaxLevel)
		for l := 0; l <= MaxLevel; l++ {
			v := idx.At(l)
			if v < 0 || v >= Tiling*Tiling {
				t.Errorf("coordinate %v level %d produced out-of-range linear index %d", c, l, v)
			}
		}
	}
}

func TestCornerOrdering(t *testing.T) {
	idx := FromCoordinates(NewCoordinate(10, 20), 2)
	sw := idx.ToCoordinatesAt(CornerSW)
	nw := idx.ToCoordinatesAt(CornerNW)
	se := idx.ToCoordinatesAt(CornerSE)
	ne := idx.ToCoordinatesAt(CornerNE)

	if nw.Lat <= sw.Lat || ne.Lat <= se.Lat {
		t.Errorf("north corners should have greater latitude than south: sw=%v nw=%v se=%v ne=%v", sw, nw, se, ne)
	}
	if se.Lon <= sw.Lon || ne.Lon <= nw.Lon {
		t.Errorf("east corners should have greater longitude than west: sw=%v nw=%v se=%v ne=%v", sw, nw, se, ne)
	}
}

func TestMidAndOneUp(t *testing.T) {
	idx := FromCoordinates(NewCoordinate(50, 60), 5)
	prefix := idx.Mid(0, 3)
	if prefix.Level() != 2 {
		t.Fatalf("Mid(0,3).Level() = %d, want 2", prefix.Level())
	}
	if !IndicesEqual(idx, prefix, 2) {
		t.Error("prefix should agree with the original up to level 2")
	}

	up := idx
	up.OneUp()
	if up.Level() != idx.Level()-1 {
		t.Fatalf("OneUp: level = %d, want %d", up.Level(), idx.Level()-1)
	}
}

func TestDistinctLatitudesYieldDistinctIndicesAtEveryLevel(t *testing.T) {
	a := NewCoordinate(1, 2)
	b := NewCoordinate(50, 60)
	for level := 0; level <= MaxLevel; level++ {
		ia := FromCoordinates(a, level)
		ib := FromCoordinates(b, level)
		if IndicesEqual(ia, ib, level) {
			t.Errorf("level %d: expected distinct tiles for %v and %v", level, a, b)
		}
	}
}
