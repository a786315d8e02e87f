package survey

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/thalweg/geodesic"
)

// column is a CSV header position, -1 when absent.
type column int

const absent column = -1

// header maps the columns of a CSV file. Names are matched case-insensitively by
// prefix after trimming spaces and quotes: "la" latitude, "lo" longitude, "depth"
// and "elevation" (negated depth). The first matching column wins.
type header struct {
	lat, lon, depth, elevation column
	width                      int
}

func parseHeader(names []string) header {
	h := header{lat: absent, lon: absent, depth: absent, elevation: absent, width: len(names)}
	for i, name := range names {
		n := strings.ToLower(strings.Trim(name, " \t\""))
		switch {
		case strings.HasPrefix(n, "la") && h.lat == absent:
			h.lat = column(i)
		case strings.HasPrefix(n, "lo") && h.lon == absent:
			h.lon = column(i)
		case strings.HasPrefix(n, "depth") && h.depth == absent:
			h.depth = column(i)
		case strings.HasPrefix(n, "elevation") && h.elevation == absent:
			h.elevation = column(i)
		}
	}

	return h
}

func (h header) require(depth bool) error {
	switch {
	case h.lat == absent:
		return fmt.Errorf("%w: latitude", ErrMissingColumn)
	case h.lon == absent:
		return fmt.Errorf("%w: longitude", ErrMissingColumn)
	case depth && h.depth == absent && h.elevation == absent:
		return fmt.Errorf("%w: depth or elevation", ErrMissingColumn)
	}

	return nil
}

func (h header) float(row []string, c column) (float64, error) {
	if int(c) >= len(row) {
		return 0, fmt.Errorf("%w: got %d, want at least %d", ErrFieldCount, len(row), int(c)+1)
	}
	s := strings.TrimSpace(row[c])
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}

	return v, nil
}

func (h header) coordinate(row []string) (geodesic.Coordinate, error) {
	lat, err := h.float(row, h.lat)
	if err != nil {
		return geodesic.Coordinate{}, err
	}
	lon, err := h.float(row, h.lon)
	if err != nil {
		return geodesic.Coordinate{}, err
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return geodesic.Coordinate{}, fmt.Errorf("%w: (%g, %g)", ErrOutOfRange, lat, lon)
	}

	return geodesic.Coordinate{Latitude: lat, Longitude: lon}, nil
}

func (h header) location(row []string) (geodesic.Location, error) {
	c, err := h.coordinate(row)
	if err != nil {
		return geodesic.Location{}, err
	}
	if h.depth != absent {
		d, err := h.float(row, h.depth)
		return geodesic.Location{Coord: c, Depth: d}, err
	}
	e, err := h.float(row, h.elevation)

	return geodesic.Location{Coord: c, Depth: -e}, err
}

// eachCSVRow reads the header of r and hands every following row to fn. An empty
// input yields no rows and no error.
func eachCSVRow(r io.Reader, depth bool, fn func(header, []string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	names, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	h := parseHeader(names)
	if err := h.require(depth); err != nil {
		return err
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		if err := fn(h, row); err != nil {
			line, _ := cr.FieldPos(0)
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
}

// ReadDataCSV reads soundings from a CSV file with a header row naming latitude,
// longitude and either depth or elevation columns, in any order. Elevations are
// negated into depths; depth wins when both are present.
func ReadDataCSV(r io.Reader) ([]geodesic.Location, error) {
	var out []geodesic.Location
	err := eachCSVRow(r, true, func(h header, row []string) error {
		l, err := h.location(row)
		if err != nil {
			return err
		}
		out = append(out, l)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ReadCornersCSV reads inlet corners from a CSV file with latitude and longitude
// columns; other columns are ignored.
func ReadCornersCSV(r io.Reader) ([]geodesic.Coordinate, error) {
	var out []geodesic.Coordinate
	err := eachCSVRow(r, false, func(h header, row []string) error {
		c, err := h.coordinate(row)
		if err != nil {
			return err
		}
		out = append(out, c)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
