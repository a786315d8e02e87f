package survey_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thalweg/geodesic"
	"github.com/katalvlaran/thalweg/survey"
)

func TestReadDataCSV(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"Depth", "longitude,latitude,depth\n-123.456,49.58,100.0\n"},
		{"Elevation", "longitude,latitude,elevation\n-123.456,49.58,-100.0\n"},
		{"DepthBeatsElevation", "elevation,lat,lon,depth\n-3,49.58,-123.456,100\n"},
		{"QuotedHeader", "\"Latitude (deg)\", \"Longitude (deg)\", \"Depth (m)\"\n49.58, -123.456, 100\n"},
	}
	want := []geodesic.Location{{Coord: geodesic.Coordinate{Latitude: 49.58, Longitude: -123.456}, Depth: 100}}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := survey.ReadDataCSV(strings.NewReader(tc.input))
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestReadDataCSV_Errors(t *testing.T) {
	_, err := survey.ReadDataCSV(strings.NewReader("longitude,latitude\n1,2\n"))
	require.ErrorIs(t, err, survey.ErrMissingColumn)

	_, err = survey.ReadDataCSV(strings.NewReader("x,latitude,depth\n1,2,3\n"))
	require.ErrorIs(t, err, survey.ErrMissingColumn)

	_, err = survey.ReadDataCSV(strings.NewReader("longitude,latitude,depth\n1,2,3\n1,two,3\n"))
	require.ErrorIs(t, err, survey.ErrBadNumber)
	require.Contains(t, err.Error(), "line 3")

	_, err = survey.ReadDataCSV(strings.NewReader("longitude,latitude,depth\n1,2\n"))
	require.ErrorIs(t, err, survey.ErrFieldCount)

	_, err = survey.ReadDataCSV(strings.NewReader("longitude,latitude,depth\n1,95,3\n"))
	require.ErrorIs(t, err, survey.ErrOutOfRange)

	locs, err := survey.ReadDataCSV(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, locs)
}

func TestReadCornersCSV(t *testing.T) {
	cases := map[string]string{
		"LongitudeFirst": "longitude,latitude\n-123.456,49.58\n",
		"LatitudeFirst":  "latitude,longitude\n49.58,-123.456\n",
		"ShortNames":     "lon,lat\n-123.456,49.58\n",
		"Capitalised":    "Longitude,Latitiude\n-123.456,49.58\n",
		"Formatted":      "\"longitude (float)\", \"latitiude (float)\"\n-123.456,49.58\n",
		"OtherColumns":   "elevation,longitude,depth,latitiude,noise\n0.0,-123.456,0.0,49.58,0.0\n",
	}
	want := []geodesic.Coordinate{{Latitude: 49.58, Longitude: -123.456}}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := survey.ReadCornersCSV(strings.NewReader(input))
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestReadCornerFile_ByExtension(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "corners.CSV", "lat,lon\n1.5,-2.5\n")
	txtPath := writeFile(t, dir, "corners.txt", "01-30-00.000N 002-30-00.000W\n")

	fromCSV, err := survey.ReadCornerFile(csvPath)
	require.NoError(t, err)
	fromTxt, err := survey.ReadCornerFile(txtPath)
	require.NoError(t, err)
	require.Equal(t, []geodesic.Coordinate{{Latitude: 1.5, Longitude: -2.5}}, fromCSV)
	require.Equal(t, fromCSV, fromTxt)
}

func TestReadDir_MixesTextAndCSV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "00-00-01.000N 000-00-01.000E 1\n")
	writeFile(t, dir, "b.csv", "longitude,latitude,elevation\n0.5,0.5,-2\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.json"), []byte("{}"), 0o644))

	locs, err := survey.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, locs, 2)
	require.Equal(t, 1.0, locs[0].Depth)
	require.Equal(t, geodesic.Location{Coord: geodesic.Coordinate{Latitude: 0.5, Longitude: 0.5}, Depth: 2}, locs[1])
}
