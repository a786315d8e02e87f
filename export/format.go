package export

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned by ParseFormat for an unrecognised name.
var ErrUnknownFormat = errors.New("export: unrecognized output format")

// Format selects the encoding used by Write.
type Format int

const (
	// DMS is the default format.
	DMS Format = iota
	CSV
	GeoJSON
)

// ParseFormat maps "dms", "csv" or "geojson" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dms":
		return DMS, nil
	case "csv":
		return CSV, nil
	case "geojson":
		return GeoJSON, nil
	}

	return DMS, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) String() string {
	switch f {
	case DMS:
		return "dms"
	case CSV:
		return "csv"
	case GeoJSON:
		return "geojson"
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// Extension returns the file extension, dot included, for files written in f.
func (f Format) Extension() string {
	switch f {
	case CSV:
		return ".csv"
	case GeoJSON:
		return ".geojson"
	}

	return ".txt"
}

// Set implements flag.Value.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v

	return nil
}
