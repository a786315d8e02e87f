// Package refine post-processes thalweg paths against the full sounding set.
//
// A Refiner keeps every sounding in an R-tree (github.com/dhconnelly/rtreego)
// keyed on (longitude, latitude). Radius queries are answered in two steps:
//
//  1. a bounding-box SearchIntersect that is guaranteed to cover the circle,
//  2. an exact great-circle filter through geodesic.Distance.
//
// On top of that query the package offers path passes:
//
//   - Sink pulls each interior point onto the deepest sounding close to it
//     without crossing halfway to its neighbours.
//   - Shrink drops a point that sits within half the resolution of a deeper
//     predecessor.
//   - Settle alternates Sink and Shrink until the path stops changing.
//   - Decimate thins the dataset to the deepest sounding per neighbourhood.
//
// Bounding boxes do not wrap across the antimeridian.
package refine
