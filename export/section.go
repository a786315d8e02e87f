package export

import (
	"encoding/csv"
	"io"

	"github.com/katalvlaran/thalweg/geodesic"
)

// Station is one point of a longitudinal section.
type Station struct {
	Distance int // meters from the start of the path
	Depth    float64
}

// Section walks path and returns one Station per point. Each leg is truncated
// to whole meters before being added to the running distance.
func Section(path []geodesic.Location) []Station {
	if len(path) == 0 {
		return nil
	}

	out := make([]Station, 0, len(path))
	out = append(out, Station{Distance: 0, Depth: path[0].Depth})
	total := 0
	for i := 1; i < len(path); i++ {
		total += int(geodesic.Distance(path[i-1].Coord, path[i].Coord))
		out = append(out, Station{Distance: total, Depth: path[i].Depth})
	}

	return out
}

// WriteSectionCSV writes stations as "distance,depth" rows with distance in km.
func WriteSectionCSV(w io.Writer, stations []Station) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"distance", "depth"}); err != nil {
		return err
	}
	for _, s := range stations {
		if err := cw.Write([]string{formatFloat(float64(s.Distance) / 1000), formatFloat(s.Depth)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// CornerSections returns the great-circle length in meters of each leg between
// consecutive corners.
func CornerSections(corners []geodesic.Coordinate) []float64 {
	if len(corners) < 2 {
		return nil
	}

	out := make([]float64, len(corners)-1)
	for i := 1; i < len(corners); i++ {
		out[i-1] = geodesic.Distance(corners[i-1], corners[i])
	}

	return out
}
