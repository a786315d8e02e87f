package pathfinder

import (
	"fmt"

	"github.com/katalvlaran/thalweg/geodesic"
	"github.com/katalvlaran/thalweg/gridindex"
)

// Graph is the implicit adjacency graph over a fixed set of soundings.
type Graph struct {
	data       []geodesic.Location
	first      map[geodesic.Coordinate]int // coordinate → index of its first occurrence in data
	index      *gridindex.Index
	resolution uint
	maxDepth   float64
}

// New builds a Graph over data with the given adjacency resolution in meters.
// The data slice is copied. Construction builds the spatial index once.
func New(data []geodesic.Location, resolution uint, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	idx, err := gridindex.New(geodesic.Coordinates(data), gridindex.Options{CellWidth: cfg.CellWidth})
	if err != nil {
		return nil, fmt.Errorf("pathfinder: building index: %w", err)
	}

	if span := idx.Span(); float64(resolution) > span {
		if cfg.Strict {
			return nil, fmt.Errorf("%w: resolution %dm, cell %.6g° spans %.0fm at latitude %.4g°",
				ErrResolutionExceedsCell, resolution, cfg.CellWidth, span, idx.MaxAbsLatitude())
		}
		cfg.Logger.Printf("resolution %dm exceeds cell span %.0fm; neighbours more than one cell away are ignored",
			resolution, span)
	}

	g := &Graph{
		data:       append([]geodesic.Location(nil), data...),
		first:      make(map[geodesic.Coordinate]int, len(data)),
		index:      idx,
		resolution: resolution,
		maxDepth:   geodesic.MaxDepth(data),
	}
	for i, l := range g.data {
		if _, ok := g.first[l.Coord]; !ok {
			g.first[l.Coord] = i
		}
	}

	return g, nil
}

// Resolution returns the adjacency threshold in meters.
func (g *Graph) Resolution() uint { return g.resolution }

// MaxDepth returns the deepest sounding in the dataset (0 when empty).
func (g *Graph) MaxDepth() float64 { return g.maxDepth }

// Len returns the number of distinct coordinates (nodes).
func (g *Graph) Len() int { return len(g.first) }

// Index exposes the spatial index backing the graph.
func (g *Graph) Index() *gridindex.Index { return g.index }

// Locations returns a copy of the dataset in construction order.
func (g *Graph) Locations() []geodesic.Location {
	return append([]geodesic.Location(nil), g.data...)
}

// Contains reports whether c exactly equals some dataset coordinate.
func (g *Graph) Contains(c geodesic.Coordinate) bool {
	_, ok := g.first[c]

	return ok
}

// Location returns the first dataset location at c.
func (g *Graph) Location(c geodesic.Coordinate) (geodesic.Location, bool) {
	i, ok := g.first[c]
	if !ok {
		return geodesic.Location{}, false
	}

	return g.data[i], true
}

// Adjacent reports whether a and b are both in the dataset and strictly closer
// than the resolution.
func (g *Graph) Adjacent(a, b geodesic.Coordinate) bool {
	return g.Contains(a) && g.Contains(b) && geodesic.Distance(a, b) < float64(g.resolution)
}

// Weight returns the cost of entering c: maxDepth - depth(c) + 1.
// Returns ErrAbsentCoordinate when c is not in the dataset.
func (g *Graph) Weight(c geodesic.Coordinate) (float64, error) {
	l, ok := g.Location(c)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrAbsentCoordinate, c)
	}

	return g.maxDepth - l.Depth + 1, nil
}
