package refine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thalweg/geodesic"
	"github.com/katalvlaran/thalweg/refine"
)

func TestSink_KeepsLength(t *testing.T) {
	data := grid3()
	r := refine.New(data, 50)

	input := []geodesic.Location{data[0], data[4], data[8]}
	require.Len(t, r.Sink(input), len(input))
}

func TestSink_FindsDeeperPoint(t *testing.T) {
	data := grid5()
	r := refine.New(data, 50)

	got := r.Sink([]geodesic.Location{data[0], data[12], data[24]})
	require.Equal(t, []geodesic.Location{data[0], data[7], data[24]}, got)
}

func TestSink_ResolutionCapsReach(t *testing.T) {
	data := grid5()
	r := refine.New(data, 10)

	input := []geodesic.Location{data[0], data[12], data[24]}
	require.Equal(t, input, r.Sink(input))
}

func TestSink_ShortPaths(t *testing.T) {
	data := grid3()
	r := refine.New(data, 50)

	require.Empty(t, r.Sink(nil))
	require.Equal(t, []geodesic.Location{data[4]}, r.Sink([]geodesic.Location{data[4]}))
	require.Equal(t, []geodesic.Location{data[4], data[8]}, r.Sink([]geodesic.Location{data[4], data[8]}))
}

func TestShrink(t *testing.T) {
	input := []geodesic.Location{
		at(-second, -second, 140*km),
		at(0, 0, 9*km),
		at(second, second, 100*km),
	}

	// Half of 40 m is shorter than the ~43.7 m steps.
	kept := refine.New(nil, 40).Shrink(input)
	require.Equal(t, input, kept)

	shrunk := refine.New(nil, 100).Shrink(input)
	require.Equal(t, []geodesic.Location{input[0], input[2]}, shrunk)

	require.Empty(t, refine.New(nil, 100).Shrink(nil))
}

func TestShrink_DeeperSuccessorSurvives(t *testing.T) {
	input := []geodesic.Location{at(0, 0, 1), at(0, second, 2)}
	require.Equal(t, input, refine.New(nil, 100).Shrink(input))
}

func TestSettle(t *testing.T) {
	data := grid5()
	r := refine.New(data, 50)

	got, rounds := r.Settle([]geodesic.Location{data[0], data[12], data[24]})
	require.Equal(t, []geodesic.Location{data[0], data[7], data[24]}, got)
	require.Equal(t, 2, rounds)
}

func TestDecimate(t *testing.T) {
	data := grid3()

	got := refine.New(data, 50).Decimate()
	require.Equal(t, []geodesic.Location{data[1], data[5], data[7], data[8]}, got)

	// Nothing lies within a metre of anything else.
	require.Equal(t, data, refine.New(data, 1).Decimate())

	require.Empty(t, refine.New(nil, 50).Decimate())
}
