// Package survey reads bathymetric survey files into geodesic.Location records.
//
// Data files are line oriented. Any line containing a double quote is a header and
// is skipped, as are blank lines. Every other line holds whitespace-separated fields:
//
//	49-17-28.150N 123-07-11.020W 32.45
//
// Corner files use the same layout without the depth column and list, in order, the
// coordinates that bound an inlet.
//
// Coordinates are degree-minute-second strings "D-M-S" followed by a hemisphere
// letter (N/S for latitudes, E/W for longitudes, either case). Degrees are bounded
// by 90 or 180, minutes by 59, and seconds lie in [0, 60). Depths are plain decimal
// numbers with an optional leading minus sign.
//
// Nothing is silently coerced: every malformed line is reported with its line
// number and the sentinel describing the failure.
//
// Errors:
//
//	ErrFieldCount   - a line has the wrong number of fields.
//	ErrDirection    - missing or wrong hemisphere letter.
//	ErrSections     - a DMS value does not have exactly three '-' separated parts.
//	ErrOutOfRange   - degree, minute or second component outside its bounds.
//	ErrBadNumber    - a component or depth is not a number.
//	ErrNotDirectory - ReadDir was given something other than a directory.
package survey
