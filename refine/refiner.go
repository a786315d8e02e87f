package refine

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/thalweg/geodesic"
)

const (
	// R-tree fan-out.
	minChildren = 25
	maxChildren = 50

	// pointTolerance is the half-size, in degrees, of the box stored per sounding.
	pointTolerance = 1e-9

	// maxSettleRounds bounds Settle when Sink and Shrink keep trading points.
	maxSettleRounds = 64
)

// sounding is the rtreego.Spatial stored in the tree.
type sounding struct {
	geodesic.Location
	order int
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (s *sounding) Bounds() rtreego.Rect {
	return s.rect
}

// Refiner answers radius queries over a fixed sounding set.
// It is read-only after New and safe for concurrent use.
type Refiner struct {
	tree       *rtreego.Rtree
	soundings  []*sounding
	resolution uint
}

// New indexes data. resolution (meters) caps the Sink search radius and sets
// the Shrink and Decimate distances.
func New(data []geodesic.Location, resolution uint) *Refiner {
	soundings := make([]*sounding, len(data))
	objs := make([]rtreego.Spatial, len(data))
	for i, loc := range data {
		p := rtreego.Point{loc.Coord.Longitude, loc.Coord.Latitude}
		soundings[i] = &sounding{Location: loc, order: i, rect: p.ToRect(pointTolerance)}
		objs[i] = soundings[i]
	}

	return &Refiner{
		tree:       rtreego.NewTree(2, minChildren, maxChildren, objs...),
		soundings:  soundings,
		resolution: resolution,
	}
}

// Len returns the number of indexed soundings.
func (r *Refiner) Len() int {
	return len(r.soundings)
}

// Resolution returns the configured resolution in meters.
func (r *Refiner) Resolution() uint {
	return r.resolution
}

// Within returns every sounding whose great-circle distance to c is at most
// radius meters, in the order they were given to New.
func (r *Refiner) Within(c geodesic.Coordinate, radius float64) []geodesic.Location {
	hits := r.within(c, radius)
	out := make([]geodesic.Location, len(hits))
	for i, h := range hits {
		out[i] = h.Location
	}

	return out
}

func (r *Refiner) within(c geodesic.Coordinate, radius float64) []*sounding {
	if len(r.soundings) == 0 || radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil
	}
	box, err := searchBox(c, radius)
	if err != nil {
		return nil
	}

	var out []*sounding
	for _, obj := range r.tree.SearchIntersect(box) {
		s := obj.(*sounding)
		if geodesic.Distance(c, s.Coord) <= radius {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].order < out[j].order })

	return out
}

// searchBox returns a (longitude, latitude) rectangle covering every point within
// radius meters of c.
func searchBox(c geodesic.Coordinate, radius float64) (rtreego.Rect, error) {
	delta := radius / geodesic.EarthRadius
	dLat := delta*180/math.Pi + pointTolerance

	dLon := 180.0
	cos := math.Cos(c.Latitude * math.Pi / 180)
	if s := math.Sin(math.Min(delta, math.Pi/2)) / cos; cos > 0 && s < 1 {
		dLon = math.Asin(s)*180/math.Pi + pointTolerance
	}

	corner := rtreego.Point{c.Longitude - dLon, c.Latitude - dLat}

	return rtreego.NewRect(corner, []float64{2 * dLon, 2 * dLat})
}
