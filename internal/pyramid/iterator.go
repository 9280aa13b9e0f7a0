package pyramid

import "github.com/geomarker/markertiler/internal/geoindex"

// NonEmptyTiles enumerates every non-empty tile at level within bounds,
// in deterministic lat-then-lon order within each bounds pair and bounds
// pairs in list order (§4.3, §5 ordering guarantees). Empty subtrees are
// pruned without being visited: the walk never descends into a child
// whose item count is zero.
func (it *ItemTiler) NonEmptyTiles(level int, bounds []geoindex.BoundsPair) []geoindex.TileIndex {
	it.regenerateIfDirty()

	var out []geoindex.TileIndex
	for _, b := range bounds {
		start := geoindex.FromCoordinates(b.SW, level)
		end := geoindex.FromCoordinates(b.NE, level)
		it.walkBounds(it.root, 0, level, start, end, geoindex.TileIndex{}, &out)
	}
	return out
}

// walkBounds descends from node (which represents the tile at prefix)
// toward level, visiting only the lat/lon cell range permitted at each
// depth by the per-axis start/end clamp (mirroring the original
// iterator's independent latitude and longitude limit tracking), and
// pruning any child with zero items before recursing into it.
func (it *ItemTiler) walkBounds(node *Tile, depth, level int, start, end, prefix geoindex.TileIndex, out *[]geoindex.TileIndex) {
	if node == nil || node.ItemCount() == 0 {
		return
	}
	// depth is the prefix length, i.e. node sits at level depth-1; once
	// that equals the target level, node itself is the tile to emit.
	if depth == level+1 {
		*out = append(*out, prefix)
		return
	}
	if !node.IsSubdivided() {
		it.redistribute(node, depth)
	}

	latLo, lonLo, latHi, lonHi := axisLimits(depth, start, end, prefix)

	for latI := latLo; latI <= latHi; latI++ {
		for lonI := lonLo; lonI <= lonHi; lonI++ {
			child := node.Child(latI*geoindex.Tiling + lonI)
			if child == nil || child.ItemCount() == 0 {
				continue
			}
			childPrefix := prefix
			childPrefix.AppendLatLonIndex(latI, lonI)
			it.walkBounds(child, depth+1, level, start, end, childPrefix, out)
		}
	}
}

// axisLimits computes the permitted [lo, hi] cell range at depth along
// each axis independently: the lower bound is clamped to start's cell at
// this depth only while every ancestor on that axis matched start
// exactly so far, and symmetrically for the upper bound against end.
func axisLimits(depth int, start, end, prefix geoindex.TileIndex) (latLo, lonLo, latHi, lonHi int) {
	latLo, lonLo = 0, 0
	latHi, lonHi = geoindex.Tiling-1, geoindex.Tiling-1

	matchesStartLat, matchesStartLon := true, true
	matchesEndLat, matchesEndLon := true, true
	for i := 0; i < depth; i++ {
		if prefix.LatIndex(i) != start.LatIndex(i) {
			matchesStartLat = false
		}
		if prefix.LonIndex(i) != start.LonIndex(i) {
			matchesStartLon = false
		}
		if prefix.LatIndex(i) != end.LatIndex(i) {
			matchesEndLat = false
		}
		if prefix.LonIndex(i) != end.LonIndex(i) {
			matchesEndLon = false
		}
	}
	if matchesStartLat {
		latLo = start.LatIndex(depth)
	}
	if matchesStartLon {
		lonLo = start.LonIndex(depth)
	}
	if matchesEndLat {
		latHi = end.LatIndex(depth)
	}
	if matchesEndLon {
		lonHi = end.LonIndex(depth)
	}
	return
}
