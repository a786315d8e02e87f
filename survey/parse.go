package survey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/thalweg/geodesic"
)

// ParseLatitude parses "D-M-S[NS]" into a latitude Angle.
func ParseLatitude(s string) (geodesic.Angle, error) {
	return parseAngle(s, geodesic.Latitude)
}

// ParseLongitude parses "D-M-S[EW]" into a longitude Angle.
func ParseLongitude(s string) (geodesic.Angle, error) {
	return parseAngle(s, geodesic.Longitude)
}

func parseAngle(s string, kind geodesic.AngleKind) (geodesic.Angle, error) {
	if s == "" {
		return geodesic.Angle{}, fmt.Errorf("%w: empty %s", ErrDirection, kind)
	}
	marker := s[len(s)-1]
	if marker >= 'a' && marker <= 'z' {
		marker -= 'a' - 'A'
	}
	var positive bool
	switch marker {
	case kind.Hemisphere(true):
		positive = true
	case kind.Hemisphere(false):
		positive = false
	default:
		return geodesic.Angle{}, fmt.Errorf("%w: %q is not a %s", ErrDirection, s, kind)
	}

	sections := strings.Split(s[:len(s)-1], "-")
	if len(sections) != 3 {
		return geodesic.Angle{}, fmt.Errorf("%w: %q", ErrSections, s)
	}

	deg, err := strconv.ParseUint(sections[0], 10, 32)
	if err != nil {
		return geodesic.Angle{}, fmt.Errorf("%w: degrees of %q", ErrBadNumber, s)
	}
	if uint(deg) > kind.Bound() {
		return geodesic.Angle{}, fmt.Errorf("%w: degrees of %q", ErrOutOfRange, s)
	}

	mins, err := strconv.ParseUint(sections[1], 10, 32)
	if err != nil {
		return geodesic.Angle{}, fmt.Errorf("%w: minutes of %q", ErrBadNumber, s)
	}
	if mins > 59 {
		return geodesic.Angle{}, fmt.Errorf("%w: minutes of %q", ErrOutOfRange, s)
	}

	if !isPlainDecimal(sections[2]) {
		return geodesic.Angle{}, fmt.Errorf("%w: seconds of %q", ErrBadNumber, s)
	}
	secs, err := strconv.ParseFloat(sections[2], 64)
	if err != nil {
		return geodesic.Angle{}, fmt.Errorf("%w: seconds of %q", ErrBadNumber, s)
	}
	if secs < 0 || secs >= 60 {
		return geodesic.Angle{}, fmt.Errorf("%w: seconds of %q", ErrOutOfRange, s)
	}

	a := geodesic.Angle{
		Kind:     kind,
		Degrees:  uint(deg),
		Minutes:  uint(mins),
		Seconds:  secs,
		Positive: positive,
	}
	if a.Decimal() > float64(kind.Bound()) || a.Decimal() < -float64(kind.Bound()) {
		return geodesic.Angle{}, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}

	return a, nil
}

// ParseDepth parses a plain decimal depth: digits, at most one '.', and an
// optional leading '-'. Exponents, signs elsewhere and other characters are rejected.
func ParseDepth(s string) (float64, error) {
	body := strings.TrimPrefix(s, "-")
	if !isPlainDecimal(body) {
		return 0, fmt.Errorf("%w: depth %q", ErrBadNumber, s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: depth %q", ErrBadNumber, s)
	}

	return v, nil
}

// isPlainDecimal reports whether s is digits with at most one '.', and at least one digit.
func isPlainDecimal(s string) bool {
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return false
		}
	}

	return digits > 0 && dots <= 1
}

// ParseCoordinate parses a latitude field and a longitude field.
func ParseCoordinate(lat, lon string) (geodesic.Coordinate, error) {
	la, err := ParseLatitude(lat)
	if err != nil {
		return geodesic.Coordinate{}, err
	}
	lo, err := ParseLongitude(lon)
	if err != nil {
		return geodesic.Coordinate{}, err
	}

	return geodesic.NewCoordinate(la, lo)
}
