// Package altitude implements the batch merger that bundles per-item
// altitude lookups into bounded-size remote queries (§4.7). The core
// never performs the remote call itself; it only dedups, batches, and
// re-fans-out replies a collaborator delivers back synchronously.
package altitude

import (
	"strconv"
	"strings"

	"github.com/geomarker/markertiler/internal/geoindex"
)

// MaxBatchSize is the largest number of distinct coordinates a single
// batch may carry, mirroring geonames.org's per-request lookup limit.
const MaxBatchSize = 20

// NoDataSentinel is the reply value meaning "no altitude data here".
const NoDataSentinel = -32768

// lonLatKey dedups purely by lat/lon, ignoring altitude, as §4.7 requires.
type lonLatKey struct {
	lat, lon float64
}

func keyOf(c geoindex.Coordinate) lonLatKey { return lonLatKey{lat: c.Lat, lon: c.Lon} }

// Request is one item's altitude lookup, identified by an opaque handle
// the caller assigns and gets back attached to the resolved altitude.
type Request struct {
	Handle      interface{}
	Coordinates geoindex.Coordinate
}

// Result pairs a request's handle with its resolved coordinates. If the
// backend reported the no-data sentinel (or no reply arrived for the
// batch this handle belonged to), Coordinates carries no altitude.
type Result struct {
	Handle      interface{}
	Coordinates geoindex.Coordinate
}

// Batch is one bounded-size remote query: the coordinates to send, in
// request order, and every originating request that shares one of them.
type Batch struct {
	Coordinates []geoindex.Coordinate
	members     [][]Request
}

// Merger deduplicates altitude requests by coordinate and groups them
// into batches of at most MaxBatchSize distinct coordinates (§4.7).
type Merger struct{}

// NewMerger returns a ready-to-use Merger.
func NewMerger() *Merger { return &Merger{} }

// Plan deduplicates requests by (lat, lon) and splits the distinct
// coordinates into batches of at most MaxBatchSize, in first-seen order.
func (m *Merger) Plan(requests []Request) []Batch {
	if len(requests) == 0 {
		return nil
	}

	order := make([]lonLatKey, 0, len(requests))
	groups := make(map[lonLatKey][]Request, len(requests))
	for _, r := range requests {
		k := keyOf(r.Coordinates)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	var batches []Batch
	for len(order) > 0 {
		n := MaxBatchSize
		if n > len(order) {
			n = len(order)
		}
		chunk := order[:n]
		order = order[n:]

		b := Batch{}
		for _, k := range chunk {
			members := groups[k]
			b.Coordinates = append(b.Coordinates, members[0].Coordinates)
			b.members = append(b.members, members)
		}
		batches = append(batches, b)
	}
	return batches
}

// ApplyReply parses a whitespace-separated list of altitudes, one per
// coordinate in batch.Coordinates order, and fans each value out to
// every request sharing that coordinate. An unparseable or sentinel
// value leaves the corresponding requests' altitude unset rather than
// storing it (§4.7).
func (b Batch) ApplyReply(reply string) []Result {
	fields := strings.Fields(reply)
	var out []Result
	for i, members := range b.members {
		var alt float64
		haveAlt := false
		if i < len(fields) {
			if v, err := strconv.ParseFloat(fields[i], 64); err == nil && v != NoDataSentinel {
				alt, haveAlt = v, true
			}
		}
		for _, req := range members {
			coord := req.Coordinates
			if haveAlt {
				coord.SetAltitude(alt)
			} else {
				coord.ClearAltitude()
			}
			out = append(out, Result{Handle: req.Handle, Coordinates: coord})
		}
	}
	return out
}
