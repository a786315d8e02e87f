package survey

import "errors"

// Sentinel errors for survey parsing and reading.
var (
	// ErrFieldCount indicates a line with an unexpected number of fields.
	ErrFieldCount = errors.New("survey: unexpected number of fields")
	// ErrDirection indicates a missing or unexpected hemisphere marker.
	ErrDirection = errors.New("survey: unexpected direction marker")
	// ErrSections indicates a DMS value without exactly three sections.
	ErrSections = errors.New("survey: unexpected number of DMS sections")
	// ErrOutOfRange indicates a DMS component outside its legal bounds.
	ErrOutOfRange = errors.New("survey: value outside the expected bounds")
	// ErrBadNumber indicates a value that is not a legal number.
	ErrBadNumber = errors.New("survey: not a legal number")
	// ErrMissingColumn indicates a CSV header without a required column.
	ErrMissingColumn = errors.New("survey: required column not found")
	// ErrNotDirectory indicates ReadDir was pointed at something other than a directory.
	ErrNotDirectory = errors.New("survey: not a directory")
)
