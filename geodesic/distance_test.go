package geodesic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thalweg/geodesic"
)

// TestDistance_SamePointIsZero verifies that field-equal inputs bypass the formula.
func TestDistance_SamePointIsZero(t *testing.T) {
	points := []geodesic.Coordinate{
		{},
		{Latitude: 49.2, Longitude: -122.9401},
		{Latitude: -89.9999, Longitude: 179.9999},
		{Latitude: 1e-12, Longitude: -1e-12},
	}
	for _, p := range points {
		require.Equal(t, 0.0, geodesic.Distance(p, p), "distance(%v, %v)", p, p)
	}
}

// TestDistance_SymmetricAndNonNegative checks symmetry on a handful of pairs.
func TestDistance_SymmetricAndNonNegative(t *testing.T) {
	pairs := [][2]geodesic.Coordinate{
		{{0, 0}, {1, 1}},
		{{49.24, -122.59}, {49.24, -122.53}},
		{{-33.9, 18.4}, {51.5, -0.12}},
		{{0, 0}, {0, 1e-9}},
		{{90, 0}, {-90, 0}},
	}
	for _, p := range pairs {
		ab := geodesic.Distance(p[0], p[1])
		ba := geodesic.Distance(p[1], p[0])
		assert.Equal(t, ab, ba, "asymmetric for %v", p)
		assert.GreaterOrEqual(t, ab, 0.0)
	}
}

// TestDistance_KnownValues compares against reference haversine values.
func TestDistance_KnownValues(t *testing.T) {
	// one degree along the equator on a 6371 km sphere
	require.InDelta(t, 111194.93, geodesic.Distance(geodesic.Coordinate{}, geodesic.Coordinate{Longitude: 1}), 0.01)
	// (0,0) -> (1,1) is roughly 157 km
	require.InDelta(t, 157249.38, geodesic.Distance(geodesic.Coordinate{}, geodesic.Coordinate{Latitude: 1, Longitude: 1}), 0.01)
	// pole to pole is half the circumference
	require.InDelta(t, geodesic.EarthRadius*3.141592653589793, geodesic.Distance(
		geodesic.Coordinate{Latitude: 90},
		geodesic.Coordinate{Latitude: -90},
	), 1e-3)
}

// TestClosestPoint_Empty verifies that no candidates is a typed failure.
func TestClosestPoint_Empty(t *testing.T) {
	_, err := geodesic.ClosestPoint(geodesic.Coordinate{}, nil)
	require.ErrorIs(t, err, geodesic.ErrEmptyCollection)
}

// TestClosestPoint_PicksNearest checks membership and minimality.
func TestClosestPoint_PicksNearest(t *testing.T) {
	candidates := []geodesic.Coordinate{
		{Latitude: 10, Longitude: 10},
		{Latitude: 0.5, Longitude: 0.5},
		{Latitude: -3, Longitude: 2},
	}
	got, err := geodesic.ClosestPoint(geodesic.Coordinate{Latitude: 0.4, Longitude: 0.6}, candidates)
	require.NoError(t, err)
	require.Equal(t, candidates[1], got)
}

// TestClosestPoint_TieGoesToFirst checks that equidistant candidates resolve to the first one.
func TestClosestPoint_TieGoesToFirst(t *testing.T) {
	candidates := []geodesic.Coordinate{
		{Latitude: 0, Longitude: 1},
		{Latitude: 0, Longitude: -1},
	}
	got, err := geodesic.ClosestPoint(geodesic.Coordinate{}, candidates)
	require.NoError(t, err)
	require.Equal(t, candidates[0], got)

	got, err = geodesic.ClosestPoint(geodesic.Coordinate{}, []geodesic.Coordinate{candidates[1], candidates[0]})
	require.NoError(t, err)
	require.Equal(t, candidates[1], got)
}

// TestMaxDepth covers the empty and populated cases.
func TestMaxDepth(t *testing.T) {
	require.Equal(t, 0.0, geodesic.MaxDepth(nil))
	locs := []geodesic.Location{
		{Coord: geodesic.Coordinate{}, Depth: -4},
		{Coord: geodesic.Coordinate{Latitude: 1}, Depth: -2},
	}
	require.Equal(t, -2.0, geodesic.MaxDepth(locs))
	require.Equal(t, []geodesic.Coordinate{{}, {Latitude: 1}}, geodesic.Coordinates(locs))
}
