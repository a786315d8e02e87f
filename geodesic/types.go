package geodesic

import (
	"errors"
	"fmt"
)

// Sentinel errors for geodesic operations.
var (
	// ErrEmptyCollection indicates a nearest-point query had no candidates at all.
	ErrEmptyCollection = errors.New("geodesic: empty collection")

	// ErrAngleKind indicates a latitude where a longitude was expected, or the reverse.
	ErrAngleKind = errors.New("geodesic: unexpected angle kind")
)

// Coordinate is a point on the sphere in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// String renders the coordinate in decimal degrees.
func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate{latitude:%g, longitude:%g}", c.Latitude, c.Longitude)
}

// Location is a depth sounding at a Coordinate.
//
// Depth is in meters; a larger value means deeper water.
type Location struct {
	Coord Coordinate
	Depth float64
}

// String renders the location with its depth.
func (l Location) String() string {
	return fmt.Sprintf("Location{coord:%s, depth:%g}", l.Coord, l.Depth)
}

// Coordinates projects a slice of locations onto their coordinates, preserving order.
func Coordinates(locs []Location) []Coordinate {
	out := make([]Coordinate, len(locs))
	for i, l := range locs {
		out[i] = l.Coord
	}

	return out
}

// MaxDepth returns the largest depth in locs, or 0 when locs is empty.
func MaxDepth(locs []Location) float64 {
	if len(locs) == 0 {
		return 0
	}
	deepest := locs[0].Depth
	for _, l := range locs[1:] {
		if l.Depth > deepest {
			deepest = l.Depth
		}
	}

	return deepest
}
