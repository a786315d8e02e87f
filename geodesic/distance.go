package geodesic

import (
	"math"

	"github.com/umahmood/haversine"
)

// EarthRadius is the mean radius of the Earth in meters used by Distance.
const EarthRadius = 6371e3

// Distance returns the great-circle distance between a and b in meters.
//
// Field-equal coordinates return exactly 0.
func Distance(a, b Coordinate) float64 {
	if a == b {
		return 0
	}
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Latitude, Lon: a.Longitude},
		haversine.Coord{Lat: b.Latitude, Lon: b.Longitude},
	)
	// sqrt(1-a) goes NaN only when rounding pushes a past 1, i.e. antipodal points.
	if math.IsNaN(km) {
		return math.Pi * EarthRadius
	}

	return km * 1000
}

// ClosestPoint returns the candidate nearest to p.
//
// Ties are resolved in favour of the first candidate encountered.
// Returns ErrEmptyCollection when candidates is empty.
func ClosestPoint(p Coordinate, candidates []Coordinate) (Coordinate, error) {
	if len(candidates) == 0 {
		return Coordinate{}, ErrEmptyCollection
	}
	best := candidates[0]
	bestDist := Distance(p, best)
	for _, c := range candidates[1:] {
		if d := Distance(p, c); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, nil
}
