// Package gridindex buckets coordinates into fixed-size latitude/longitude cells so
// that neighbour and nearest-point queries touch a handful of cells instead of the
// whole dataset.
//
// What:
//
//   - A cell (bucket) is identified by Key{floor(lat/w), floor(lon/w)} for a cell
//     width w in degrees. The mapping is a pure function of the coordinate.
//   - Neighbors(p) returns every coordinate in p's cell and its eight surrounding
//     cells (the Conn8 neighbourhood plus the cell itself).
//   - ClosestPoint(p) scans Neighbors(p); when that neighbourhood is empty it falls
//     back to scanning every cell.
//
// Guarantees and non-guarantees:
//
//   - Any indexed coordinate within one cell width of p along both axes is returned
//     by Neighbors(p).
//   - Coordinates farther than that are never returned, even when they are
//     geodesically close. Callers that derive adjacency from a distance threshold
//     must pick a cell width whose Span is at least that threshold, otherwise edges
//     that cross more than one cell become invisible. Span accounts for the
//     east-west side narrowing with latitude, so it is measured at the
//     poleward-most indexed coordinate.
//
// The index is built once by New and is immutable afterwards, so concurrent
// readers need no locking.
//
// Errors:
//
//	ErrBadCellWidth           - cell width is zero, negative, NaN or infinite.
//	geodesic.ErrEmptyCollection - ClosestPoint on an index with no coordinates.
//
// Complexity:
//
//   - New: O(n) time and memory.
//   - Neighbors: O(k) for k coordinates in the 3×3 neighbourhood.
//   - ClosestPoint: O(k), or O(n) on the fallback path.
package gridindex
