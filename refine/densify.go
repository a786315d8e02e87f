package refine

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"

	"github.com/katalvlaran/thalweg/geodesic"
)

// DefaultSimplifyThreshold is the Visvalingam-Whyatt area threshold, in square
// degrees, used by the command-line tool.
const DefaultSimplifyThreshold = 1.0 / 3600 / 5

// Nearest returns the sounding closest to c by great-circle distance. Ties keep
// the sounding given first to New. ok is false when the Refiner is empty.
func (r *Refiner) Nearest(c geodesic.Coordinate) (geodesic.Location, bool) {
	if len(r.soundings) == 0 {
		return geodesic.Location{}, false
	}
	// the planar nearest neighbour bounds the great-circle one
	guess := r.tree.NearestNeighbor(rtreego.Point{c.Longitude, c.Latitude}).(*sounding)
	best := guess
	bestDist := geodesic.Distance(c, guess.Coord)
	for _, s := range r.within(c, bestDist) {
		d := geodesic.Distance(c, s.Coord)
		if d < bestDist || (d == bestDist && s.order < best.order) {
			best, bestDist = s, d
		}
	}

	return best.Location, true
}

// Populate densifies path: walking the polyline, a point is sampled every
// resolution meters and replaced by its nearest sounding. Consecutive repeats
// are dropped and both endpoints are kept.
func (r *Refiner) Populate(path []geodesic.Location) []geodesic.Location {
	if len(path) < 2 || r.resolution == 0 || len(r.soundings) == 0 {
		return append([]geodesic.Location(nil), path...)
	}

	step := float64(r.resolution)
	out := []geodesic.Location{path[0]}
	push := func(l geodesic.Location) {
		if out[len(out)-1] != l {
			out = append(out, l)
		}
	}

	// next is the distance from the start of the current leg to the next sample.
	next := step
	for i := 1; i < len(path); i++ {
		a, b := path[i-1].Coord, path[i].Coord
		leg := geodesic.Distance(a, b)
		for ; next < leg; next += step {
			if l, ok := r.Nearest(interpolate(a, b, next/leg)); ok {
				push(l)
			}
		}
		next -= leg
		push(path[i])
	}

	return out
}

// AddMidpoints inserts, between every consecutive pair of path, the sounding
// nearest to their midpoint. Consecutive repeats are dropped.
func (r *Refiner) AddMidpoints(path []geodesic.Location) []geodesic.Location {
	if len(path) < 2 || len(r.soundings) == 0 {
		return append([]geodesic.Location(nil), path...)
	}

	out := []geodesic.Location{path[0]}
	push := func(l geodesic.Location) {
		if out[len(out)-1] != l {
			out = append(out, l)
		}
	}
	for i := 1; i < len(path); i++ {
		if mid, ok := r.Nearest(interpolate(path[i-1].Coord, path[i].Coord, 0.5)); ok {
			push(mid)
		}
		push(path[i])
	}

	return out
}

// Simplify removes points of path with the Visvalingam-Whyatt algorithm
// (github.com/paulmach/orb/simplify) on the (longitude, latitude) polyline;
// threshold is a triangle area in square degrees. The surviving points keep their
// original depths and order.
func Simplify(path []geodesic.Location, threshold float64) []geodesic.Location {
	if len(path) < 3 {
		return append([]geodesic.Location(nil), path...)
	}

	line := make(orb.LineString, len(path))
	for i, l := range path {
		line[i] = orb.Point{l.Coord.Longitude, l.Coord.Latitude}
	}
	kept := simplify.VisvalingamThreshold(threshold).LineString(line)

	// kept is a subsequence of line
	out := make([]geodesic.Location, 0, len(kept))
	j := 0
	for _, p := range kept {
		for j < len(path) && (orb.Point{path[j].Coord.Longitude, path[j].Coord.Latitude}) != p {
			j++
		}
		if j == len(path) {
			break
		}
		out = append(out, path[j])
		j++
	}

	return out
}

// interpolate returns the point at fraction f of the way from a to b, linear in
// degrees.
func interpolate(a, b geodesic.Coordinate, f float64) geodesic.Coordinate {
	return geodesic.Coordinate{
		Latitude:  a.Latitude + (b.Latitude-a.Latitude)*f,
		Longitude: a.Longitude + (b.Longitude-a.Longitude)*f,
	}
}
