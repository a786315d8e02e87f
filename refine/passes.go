package refine

import (
	"math"

	"github.com/katalvlaran/thalweg/geodesic"
)

// Sink replaces every interior point of path by the deepest sounding within
// min(half the distance to either neighbour, resolution). The endpoints are
// kept and the result has the same length as path. Ties keep the current point.
func (r *Refiner) Sink(path []geodesic.Location) []geodesic.Location {
	if len(path) < 3 {
		return append([]geodesic.Location(nil), path...)
	}

	out := make([]geodesic.Location, 0, len(path))
	out = append(out, path[0])
	for i := 1; i < len(path)-1; i++ {
		prev, cur, next := path[i-1], path[i], path[i+1]
		reach := math.Min(geodesic.Distance(prev.Coord, cur.Coord), geodesic.Distance(cur.Coord, next.Coord)) / 2
		reach = math.Min(reach, float64(r.resolution))

		best := cur
		for _, s := range r.within(cur.Coord, reach) {
			if s.Depth > best.Depth {
				best = s.Location
			}
		}
		out = append(out, best)
	}

	return append(out, path[len(path)-1])
}

// Shrink drops every point that lies closer than resolution/2 (whole meters) to
// its predecessor in path while being shallower than it. The first point is
// always kept.
func (r *Refiner) Shrink(path []geodesic.Location) []geodesic.Location {
	if len(path) == 0 {
		return nil
	}

	factor := float64(r.resolution / 2)
	out := make([]geodesic.Location, 0, len(path))
	out = append(out, path[0])
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		if geodesic.Distance(prev.Coord, cur.Coord) < factor && prev.Depth > cur.Depth {
			continue
		}
		out = append(out, cur)
	}

	return out
}

// Settle alternates Sink and Shrink until Sink no longer moves any point, and
// returns the settled path with the number of rounds taken.
func (r *Refiner) Settle(path []geodesic.Location) ([]geodesic.Location, int) {
	cur := append([]geodesic.Location(nil), path...)
	for round := 1; round <= maxSettleRounds; round++ {
		next := r.Sink(cur)
		if equal(next, cur) {
			return cur, round
		}
		cur = r.Shrink(next)
	}

	return cur, maxSettleRounds
}

// Decimate thins the dataset. Soundings are visited in input order; each one not
// yet covered claims every uncovered sounding within resolution meters, and the
// deepest of that group is kept. The result is in input order.
func (r *Refiner) Decimate() []geodesic.Location {
	if len(r.soundings) == 0 {
		return nil
	}

	covered := make([]bool, len(r.soundings))
	keep := make([]bool, len(r.soundings))
	for _, s := range r.soundings {
		if covered[s.order] {
			continue
		}
		best := s
		for _, n := range r.within(s.Coord, float64(r.resolution)) {
			if covered[n.order] {
				continue
			}
			covered[n.order] = true
			if n.Depth > best.Depth {
				best = n
			}
		}
		covered[s.order] = true
		keep[best.order] = true
	}

	var out []geodesic.Location
	for _, s := range r.soundings {
		if keep[s.order] {
			out = append(out, s.Location)
		}
	}

	return out
}

func equal(a, b []geodesic.Location) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
