package refine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thalweg/geodesic"
	"github.com/katalvlaran/thalweg/refine"
)

func TestNearest(t *testing.T) {
	_, ok := refine.New(nil, 10).Nearest(geodesic.Coordinate{})
	require.False(t, ok)

	data := grid3()
	r := refine.New(data, 10)
	got, ok := r.Nearest(geodesic.Coordinate{Latitude: 0.9 * second, Longitude: 0.2 * second})
	require.True(t, ok)
	require.Equal(t, data[7], got)

	// equal coordinates resolve to the earlier sounding
	twins := []geodesic.Location{at(0, 0, 1), at(0, 0, 2)}
	got, ok = refine.New(twins, 10).Nearest(geodesic.Coordinate{Latitude: 0.001})
	require.True(t, ok)
	require.Equal(t, twins[0], got)
}

func TestNearest_GreatCircle(t *testing.T) {
	// At 80N, 0.004 degrees of longitude (~77 m) is nearer than 0.0009 degrees of
	// latitude (~100 m) even though it is farther in plain degrees.
	data := []geodesic.Location{at(80.0009, 0, 1), at(80, 0.004, 2)}
	got, ok := refine.New(data, 10).Nearest(geodesic.Coordinate{Latitude: 80})
	require.True(t, ok)
	require.Equal(t, data[1], got)
}

func TestPopulate(t *testing.T) {
	data := grid5()
	r := refine.New(data, 50)
	diagonal := []geodesic.Location{data[0], data[6], data[12], data[18], data[24]}

	require.Equal(t, diagonal, r.Populate([]geodesic.Location{data[0], data[24]}))
	require.Equal(t, diagonal, r.Populate(diagonal))
}

func TestPopulate_Degenerate(t *testing.T) {
	data := grid5()
	path := []geodesic.Location{data[0], data[24]}

	require.Empty(t, refine.New(data, 50).Populate(nil))
	require.Equal(t, data[:1], refine.New(data, 50).Populate(data[:1]))
	require.Equal(t, path, refine.New(data, 0).Populate(path))
	require.Equal(t, path, refine.New(nil, 50).Populate(path))

	got := refine.New(data, 0).Populate(path)
	got[0] = data[1]
	assert.Equal(t, data[0], path[0], "result must not alias the input")
}

func TestAddMidpoints(t *testing.T) {
	data := grid3()
	r := refine.New(data, 50)

	require.Equal(t, []geodesic.Location{data[0], data[4], data[8]},
		r.AddMidpoints([]geodesic.Location{data[0], data[8]}))

	// neighbours have no sounding between them
	require.Equal(t, []geodesic.Location{data[0], data[1]},
		r.AddMidpoints([]geodesic.Location{data[0], data[1]}))

	require.Equal(t, data[:1], r.AddMidpoints(data[:1]))
}

func TestSimplify(t *testing.T) {
	path := []geodesic.Location{
		at(0, 0, 1),
		at(0, 0.001, 2),
		at(0, 0.002, 3),
		at(0.5, 0.003, 4),
		at(0, 0.004, 5),
	}

	got := refine.Simplify(path, refine.DefaultSimplifyThreshold)
	require.Equal(t, []geodesic.Location{path[0], path[2], path[3], path[4]}, got)

	require.Equal(t, path[:2], refine.Simplify(path[:2], refine.DefaultSimplifyThreshold))
}
