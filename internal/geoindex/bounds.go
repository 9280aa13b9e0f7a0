package geoindex

// BoundsPair is a geographic rectangle expressed as its south-west and
// north-east corners, with SW.Lat <= NE.Lat and SW.Lon <= NE.Lon (§6.4). A
// viewport that crosses the antimeridian is split into two such pairs
// before being handed to the tile iterator; see NormalizeBounds.
type BoundsPair struct {
	SW, NE Coordinate
}

// NormalizeBounds converts a single (sw, ne) viewport rectangle reported by
// a map backend into one or two BoundsPair values satisfying the iterator's
// precondition. A rectangle crosses the antimeridian when ne.Lon < sw.Lon;
// in that case it is split into [sw.Lon, 180] and [-180, ne.Lon] at the
// same latitudes (§6.4).
func NormalizeBounds(sw, ne Coordinate) []BoundsPair {
	if ne.Lon >= sw.Lon {
		return []BoundsPair{{SW: sw, NE: ne}}
	}

	east := BoundsPair{
		SW: NewCoordinate(sw.Lat, sw.Lon),
		NE: NewCoordinate(ne.Lat, 180),
	}
	west := BoundsPair{
		SW: NewCoordinate(sw.Lat, -180),
		NE: NewCoordinate(ne.Lat, ne.Lon),
	}
	return []BoundsPair{east, west}
}
