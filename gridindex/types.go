package gridindex

import (
	"errors"
	"math"

	"github.com/katalvlaran/thalweg/geodesic"
)

// Sentinel errors for gridindex operations.
var (
	// ErrBadCellWidth indicates a cell width that is not a positive finite number.
	ErrBadCellWidth = errors.New("gridindex: cell width must be positive and finite")
)

// DefaultCellWidth is the cell width in degrees used by DefaultOptions.
const DefaultCellWidth = 1.0

// Key identifies one cell of the grid.
type Key struct {
	Lat, Lon int
}

// Options configures index construction.
type Options struct {
	// CellWidth is the side of a cell in degrees, applied to both axes.
	CellWidth float64
}

// DefaultOptions returns Options with CellWidth = DefaultCellWidth.
func DefaultOptions() Options {
	return Options{CellWidth: DefaultCellWidth}
}

func (o Options) validate() error {
	if !(o.CellWidth > 0) || math.IsInf(o.CellWidth, 0) {
		return ErrBadCellWidth
	}

	return nil
}

// neighborOffsets lists the 3×3 neighbourhood in scan order, self included.
var neighborOffsets = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// bucket is an insertion-ordered set of coordinates.
type bucket struct {
	coords []geodesic.Coordinate
	seen   map[geodesic.Coordinate]struct{}
}

func (b *bucket) add(c geodesic.Coordinate) {
	if _, ok := b.seen[c]; ok {
		return
	}
	b.seen[c] = struct{}{}
	b.coords = append(b.coords, c)
}
