package gridindex

import (
	"fmt"
	"math"

	"github.com/katalvlaran/thalweg/geodesic"
)

// Index is an immutable grid-bucketed set of coordinates.
type Index struct {
	width   float64
	order   []Key // bucket creation order, used by the full-scan fallback
	buckets map[Key]*bucket
	size    int
	poleLat float64 // largest |latitude| indexed
}

// New builds an Index over coords. Duplicate coordinates are stored once.
// Returns ErrBadCellWidth for an invalid opts.CellWidth.
func New(coords []geodesic.Coordinate, opts Options) (*Index, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", err, opts.CellWidth)
	}
	idx := &Index{
		width:   opts.CellWidth,
		buckets: make(map[Key]*bucket),
	}
	for _, c := range coords {
		idx.insert(c)
	}

	return idx, nil
}

func (idx *Index) insert(c geodesic.Coordinate) {
	k := idx.KeyOf(c)
	b, ok := idx.buckets[k]
	if !ok {
		b = &bucket{seen: make(map[geodesic.Coordinate]struct{})}
		idx.buckets[k] = b
		idx.order = append(idx.order, k)
	}
	if lat := math.Abs(c.Latitude); lat > idx.poleLat {
		idx.poleLat = lat
	}
	before := len(b.coords)
	b.add(c)
	idx.size += len(b.coords) - before
}

// KeyOf returns the cell containing c.
func (idx *Index) KeyOf(c geodesic.Coordinate) Key {
	return Key{
		Lat: int(math.Floor(c.Latitude / idx.width)),
		Lon: int(math.Floor(c.Longitude / idx.width)),
	}
}

// CellWidth returns the cell side in degrees.
func (idx *Index) CellWidth() float64 { return idx.width }

// Span returns the smaller extent of one cell in meters: the north-south side, or
// the east-west side at the poleward-most indexed latitude, which shrinks by
// cos(latitude). A distance threshold no larger than Span is covered by Neighbors
// for every indexed coordinate.
func (idx *Index) Span() float64 {
	return SpanAt(idx.width, idx.poleLat)
}

// SpanAt returns the smaller extent, in meters, of a cell of the given width in
// degrees whose poleward edge lies at latitude lat.
func SpanAt(width, lat float64) float64 {
	ns := geodesic.Distance(geodesic.Coordinate{}, geodesic.Coordinate{Latitude: width})
	cos := math.Cos(math.Min(math.Abs(lat), 90) * math.Pi / 180)
	if cos < 0 {
		cos = 0
	}

	return math.Min(ns, ns*cos)
}

// MaxAbsLatitude returns the largest |latitude| among indexed coordinates, 0 when empty.
func (idx *Index) MaxAbsLatitude() float64 { return idx.poleLat }

// Len returns the number of distinct coordinates indexed.
func (idx *Index) Len() int { return idx.size }

// Buckets returns the number of non-empty cells.
func (idx *Index) Buckets() int { return len(idx.order) }

// Bucket returns the coordinates stored in cell k in insertion order.
func (idx *Index) Bucket(k Key) []geodesic.Coordinate {
	b, ok := idx.buckets[k]
	if !ok {
		return nil
	}
	out := make([]geodesic.Coordinate, len(b.coords))
	copy(out, b.coords)

	return out
}

// Neighbors returns the coordinates in p's cell and its eight surrounding cells.
// p need not be indexed itself. The result is freshly allocated.
func (idx *Index) Neighbors(p geodesic.Coordinate) []geodesic.Coordinate {
	k := idx.KeyOf(p)
	var out []geodesic.Coordinate
	for _, d := range neighborOffsets {
		b, ok := idx.buckets[Key{Lat: k.Lat + d[0], Lon: k.Lon + d[1]}]
		if !ok {
			continue
		}
		out = append(out, b.coords...)
	}

	return out
}

// All returns every indexed coordinate, bucket by bucket in creation order.
func (idx *Index) All() []geodesic.Coordinate {
	out := make([]geodesic.Coordinate, 0, idx.size)
	for _, k := range idx.order {
		out = append(out, idx.buckets[k].coords...)
	}

	return out
}

// ClosestPoint returns the indexed coordinate nearest to p among Neighbors(p),
// scanning the whole index when the neighbourhood is empty.
// Returns geodesic.ErrEmptyCollection when the index holds nothing.
func (idx *Index) ClosestPoint(p geodesic.Coordinate) (geodesic.Coordinate, error) {
	candidates := idx.Neighbors(p)
	if len(candidates) == 0 {
		candidates = idx.All()
	}

	return geodesic.ClosestPoint(p, candidates)
}
