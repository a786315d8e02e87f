package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/thalweg/geodesic"
)

// DMSHeader is the first line of a DMS file.
const DMSHeader = `"Lat (DMS)" "Long (DMS)" "Depth (m)"`

// DepthsProperty is the GeoJSON feature property carrying per-point depths.
const DepthsProperty = "depths"

// Write encodes path to w in the given format.
func Write(w io.Writer, format Format, path []geodesic.Location) error {
	switch format {
	case DMS:
		return writeDMS(w, path)
	case CSV:
		return writeCSV(w, path)
	case GeoJSON:
		return writeGeoJSON(w, path)
	}

	return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

func writeDMS(w io.Writer, path []geodesic.Location) error {
	if _, err := fmt.Fprintln(w, DMSHeader); err != nil {
		return err
	}
	for _, loc := range path {
		_, err := fmt.Fprintf(w, "%s %s %.3f\n", loc.Coord.LatitudeAngle(), loc.Coord.LongitudeAngle(), loc.Depth)
		if err != nil {
			return err
		}
	}

	return nil
}

func writeCSV(w io.Writer, path []geodesic.Location) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"longitude", "latitude", "depth"}); err != nil {
		return err
	}
	for _, loc := range path {
		err := cw.Write([]string{
			formatFloat(loc.Coord.Longitude),
			formatFloat(loc.Coord.Latitude),
			formatFloat(loc.Depth),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// Feature converts path to a GeoJSON LineString feature.
func Feature(path []geodesic.Location) *geojson.Feature {
	line := make(orb.LineString, len(path))
	depths := make([]float64, len(path))
	for i, loc := range path {
		line[i] = orb.Point{loc.Coord.Longitude, loc.Coord.Latitude}
		depths[i] = loc.Depth
	}
	f := geojson.NewFeature(line)
	f.Properties[DepthsProperty] = depths

	return f
}

func writeGeoJSON(w io.Writer, path []geodesic.Location) error {
	fc := geojson.NewFeatureCollection()
	fc.Append(Feature(path))

	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))

	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
