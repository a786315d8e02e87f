package geodesic

import (
	"fmt"
	"math"
)

// AngleKind tells a latitude from a longitude.
type AngleKind int

const (
	// Latitude angles are positive to the north and bounded by 90 degrees.
	Latitude AngleKind = iota
	// Longitude angles are positive to the east and bounded by 180 degrees.
	Longitude
)

// Bound returns the largest legal whole-degree value for the kind.
func (k AngleKind) Bound() uint {
	if k == Latitude {
		return 90
	}

	return 180
}

// Hemisphere returns the direction marker for the kind and sign.
func (k AngleKind) Hemisphere(positive bool) byte {
	switch {
	case k == Latitude && positive:
		return 'N'
	case k == Latitude:
		return 'S'
	case positive:
		return 'E'
	default:
		return 'W'
	}
}

func (k AngleKind) String() string {
	if k == Latitude {
		return "latitude"
	}

	return "longitude"
}

// Angle is a latitude or longitude in degrees, minutes and seconds.
// Positive selects north for latitudes and east for longitudes.
type Angle struct {
	Kind     AngleKind
	Degrees  uint
	Minutes  uint
	Seconds  float64
	Positive bool
}

// Decimal converts the angle to signed decimal degrees.
func (a Angle) Decimal() float64 {
	v := float64(a.Degrees) + float64(a.Minutes)/60 + a.Seconds/3600
	if !a.Positive {
		return -v
	}

	return v
}

// AngleFromDecimal splits signed decimal degrees into degrees, minutes and seconds.
func AngleFromDecimal(kind AngleKind, v float64) Angle {
	positive := v >= 0
	abs := math.Abs(v)
	deg := math.Trunc(abs)
	totalMinutes := (abs - deg) * 60
	mins := math.Trunc(totalMinutes)
	// millisecond precision, matching String
	sec := math.Round((totalMinutes-mins)*60*1000) / 1000
	if sec >= 60 {
		sec = 0
		mins++
	}
	if mins >= 60 {
		mins = 0
		deg++
	}

	return Angle{
		Kind:     kind,
		Degrees:  uint(deg),
		Minutes:  uint(mins),
		Seconds:  sec,
		Positive: positive,
	}
}

// String renders the angle as D-MM-SS.sss followed by its hemisphere marker,
// the layout read back by the survey package.
func (a Angle) String() string {
	width := 2
	if a.Kind == Longitude {
		width = 3
	}

	return fmt.Sprintf("%0*d-%02d-%06.3f%c", width, a.Degrees, a.Minutes, a.Seconds, a.Kind.Hemisphere(a.Positive))
}

// LatitudeAngle returns the latitude of c as an Angle.
func (c Coordinate) LatitudeAngle() Angle { return AngleFromDecimal(Latitude, c.Latitude) }

// LongitudeAngle returns the longitude of c as an Angle.
func (c Coordinate) LongitudeAngle() Angle { return AngleFromDecimal(Longitude, c.Longitude) }

// NewCoordinate builds a Coordinate from a latitude and a longitude angle.
// Returns ErrAngleKind when either angle carries the other kind.
func NewCoordinate(lat, lon Angle) (Coordinate, error) {
	if lat.Kind != Latitude {
		return Coordinate{}, fmt.Errorf("%w: first angle is a %s", ErrAngleKind, lat.Kind)
	}
	if lon.Kind != Longitude {
		return Coordinate{}, fmt.Errorf("%w: second angle is a %s", ErrAngleKind, lon.Kind)
	}

	return Coordinate{Latitude: lat.Decimal(), Longitude: lon.Decimal()}, nil
}
