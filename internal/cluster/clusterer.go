package cluster

import (
	"github.com/geomarker/markertiler/internal/geoindex"
	"github.com/geomarker/markertiler/internal/model"
	"github.com/geomarker/markertiler/internal/pyramid"
)

// MapBackend is the capability set the clusterer requires from a render
// backend (§6.3): projecting geographic coordinates to screen pixels and
// reporting the widget's pixel size.
type MapBackend interface {
	ScreenCoordinates(c geoindex.Coordinate) (Pixel, bool)
	MapSize() (width, height int)
}

// Config holds the clusterer's tunable parameters (§4.5).
type Config struct {
	// GridSize is the effective screen grid in pixels used to bucket
	// candidate tiles and to enforce minimum cluster separation.
	// Typical value 60.
	GridSize int
	// Radius is the rendered circle radius in pixels. Typical value 15.
	Radius int
}

func (c Config) withDefaults() Config {
	if c.GridSize <= 0 {
		c.GridSize = 60
	}
	if c.Radius <= 0 {
		c.Radius = 15
	}
	return c
}

func (c Config) eatRadius() int { return c.GridSize / 4 }

// Clusterer reduces the tiles visible at a frame into a bounded set of
// on-screen clusters (§4.5).
type Clusterer struct {
	cfg Config
}

// New returns a Clusterer with the given configuration (zero value
// selects the spec's typical defaults).
func New(cfg Config) *Clusterer {
	return &Clusterer{cfg: cfg.withDefaults()}
}

type pixelBucket struct {
	count int
	tiles []geoindex.TileIndex
}

// Compute runs one clustering pass over tiler at level within bounds,
// projected through backend (§4.5 steps 1-5).
func (cl *Clusterer) Compute(tiler pyramid.AbstractTiler, backend MapBackend, level int, bounds []geoindex.BoundsPair) []*Cluster {
	width, height := backend.MapSize()
	if width <= 0 || height <= 0 {
		return nil
	}

	buckets := make(map[Pixel]*pixelBucket)
	var nonEmptyPixels []Pixel

	for _, idx := range tiler.NonEmptyTiles(level, bounds) {
		count := tiler.GetTileItemCount(idx)
		if count == 0 {
			continue
		}
		coord := idx.ToCoordinates()
		px, ok := backend.ScreenCoordinates(coord)
		if !ok {
			continue
		}
		if px.X < 0 || px.X >= width || px.Y < 0 || px.Y >= height {
			continue
		}
		b, ok := buckets[px]
		if !ok {
			b = &pixelBucket{}
			buckets[px] = b
			nonEmptyPixels = append(nonEmptyPixels, px)
		}
		b.count += count
		b.tiles = append(b.tiles, idx)
	}

	var clusters []*Cluster
	separation := cl.cfg.GridSize / 2
	eat := cl.cfg.eatRadius()

	var leftoverTiles []geoindex.TileIndex

	for {
		winner, winnerCount := Pixel{}, 0
		found := false
		for _, px := range nonEmptyPixels {
			b := buckets[px]
			if b == nil || b.count == 0 {
				continue
			}
			if !farEnough(px, clusters, separation) {
				// Fails the separation rule against the cluster set found
				// so far: evict straight to the leftover queue so a later
				// winner's eat-radius sweep can never silently absorb it.
				// It can still reach a cluster via nearest-cluster
				// assignment below.
				leftoverTiles = append(leftoverTiles, b.tiles...)
				b.count = 0
				b.tiles = nil
				continue
			}
			if b.count > winnerCount {
				winner, winnerCount = px, b.count
				found = true
			}
		}
		if !found {
			break
		}

		b := buckets[winner]
		c := &Cluster{
			PixelPos: winner,
		}
		if len(b.tiles) > 0 {
			c.Coordinates = b.tiles[0].ToCoordinates()
		}
		c.TileIndices = append(c.TileIndices, b.tiles...)
		c.ItemCount += b.count
		b.count = 0
		b.tiles = nil

		for dx := -eat; dx <= eat; dx++ {
			for dy := -eat; dy <= eat; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				np := Pixel{X: winner.X + dx, Y: winner.Y + dy}
				nb, ok := buckets[np]
				if !ok || nb.count == 0 {
					continue
				}
				c.TileIndices = append(c.TileIndices, nb.tiles...)
				c.ItemCount += nb.count
				nb.count = 0
				nb.tiles = nil
			}
		}

		clusters = append(clusters, c)
	}

	if len(clusters) == 0 {
		return nil
	}

	for _, t := range leftoverTiles {
		px, ok := backend.ScreenCoordinates(t.ToCoordinates())
		if !ok {
			continue
		}
		nearest := nearestCluster(px, clusters)
		nearest.TileIndices = append(nearest.TileIndices, t)
		nearest.ItemCount += tiler.GetTileItemCount(t)
	}

	for _, c := range clusters {
		allTotal, allSelected := 0, 0
		for _, t := range c.TileIndices {
			allSelected += tiler.GetTileSelectedCount(t)
			allTotal += tiler.GetTileItemCount(t)
		}
		c.SelectedCount = allSelected
		c.GroupState = model.ComposeSelectedState(allSelected, allTotal)
	}

	return clusters
}

func farEnough(px Pixel, clusters []*Cluster, minDist int) bool {
	minDistSq := minDist * minDist
	for _, c := range clusters {
		if pixelDistSq(px, c.PixelPos) < minDistSq {
			return false
		}
	}
	return true
}

func pixelDistSq(a, b Pixel) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

func nearestCluster(px Pixel, clusters []*Cluster) *Cluster {
	best := clusters[0]
	bestDist := pixelDistSq(px, best.PixelPos)
	for _, c := range clusters[1:] {
		d := pixelDistSq(px, c.PixelPos)
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
