package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/thalweg/geodesic"
	"github.com/katalvlaran/thalweg/survey"
)

// Errors returned when reading a path back.
var (
	// ErrNotLineString indicates GeoJSON whose first feature is not a LineString.
	ErrNotLineString = errors.New("export: path must be a LineString")
	// ErrMissingDepths indicates a LineString feature without one depth per point.
	ErrMissingDepths = errors.New("export: missing depths property")
)

// ReadGeoJSON reads a path written by Write in the GeoJSON format: the first
// feature of a FeatureCollection, or a lone Feature, holding a LineString and a
// DepthsProperty of the same length.
func ReadGeoJSON(r io.Reader) ([]geodesic.Location, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var f *geojson.Feature
	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil && len(fc.Features) > 0 {
		f = fc.Features[0]
	} else if f, err = geojson.UnmarshalFeature(data); err != nil {
		return nil, err
	}

	line, ok := f.Geometry.(orb.LineString)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotLineString, f.Geometry)
	}
	raw, ok := f.Properties[DepthsProperty].([]interface{})
	if !ok || len(raw) != len(line) {
		return nil, fmt.Errorf("%w: want %d values", ErrMissingDepths, len(line))
	}

	out := make([]geodesic.Location, len(line))
	for i, p := range line {
		d, ok := raw[i].(float64)
		if !ok {
			return nil, fmt.Errorf("%w: value %d is %T", ErrMissingDepths, i, raw[i])
		}
		out[i] = geodesic.Location{Coord: geodesic.Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}, Depth: d}
	}

	return out, nil
}

// ReadPath reads a path file written in any Format, chosen by extension:
// GeoJSON for ".geojson", otherwise survey.ReadFile (CSV or DMS text).
func ReadPath(name string) ([]geodesic.Location, error) {
	if !strings.EqualFold(filepath.Ext(name), GeoJSON.Extension()) {
		return survey.ReadFile(name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	path, err := ReadGeoJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return path, nil
}
