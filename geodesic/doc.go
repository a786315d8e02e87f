// Package geodesic provides the coordinate model shared by every thalweg package
// and the great-circle distance primitive the search depends on.
//
// What:
//
//   - Coordinate: a (latitude, longitude) pair in decimal degrees. Equality is exact
//     field equality, so Coordinate is usable as a map key.
//   - Location: a Coordinate plus a depth sounding in meters (larger = deeper).
//   - Angle: a latitude or longitude expressed as degrees-minutes-seconds with a
//     hemisphere flag, convertible to and from decimal degrees.
//   - Distance: haversine distance in meters on a sphere of mean radius 6371 km.
//   - ClosestPoint: linear nearest-coordinate scan.
//
// Distance contract:
//
//   - Distance(p, p) == 0 exactly; the formula is bypassed for field-equal inputs.
//   - Distance(a, b) == Distance(b, a) and the result is never negative or NaN.
//
// Errors:
//
//	ErrEmptyCollection - ClosestPoint was asked to choose among zero candidates.
//
// Complexity:
//
//   - Distance: O(1).
//   - ClosestPoint: O(n) distance evaluations.
package geodesic
