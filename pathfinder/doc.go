// Package pathfinder finds a thalweg: the path through depth soundings that follows
// the deepest connected water between two points.
//
// The graph is implicit. Nodes are the distinct coordinates of the dataset; two nodes
// are adjacent when their great-circle distance is strictly below the configured
// resolution (meters). Edges are never stored: candidate neighbours come from a
// gridindex.Index built once at construction and are filtered by distance on demand.
//
// Cost model:
//
//	weight(n) = maxDepth - depth(n) + 1
//
// The deepest sounding costs 1, the shallowest costs maxDepth - minDepth + 1. The +1
// keeps every weight strictly positive so accumulated cost never decreases along a path.
//
// Search (ShortestPath):
//
//  1. Snap source and sink to the nearest indexed coordinate.
//  2. Best-first search ordered by round(g(n) + Distance(n, sink)), where g is the
//     accumulated weight. Each node is queued once and improved in place with
//     decrease-key; a node is final once popped.
//  3. Stop when the sink is popped (success) or the queue runs dry (ErrNoPath).
//  4. Walk predecessors back from the sink and reverse.
//
// Resolution vs. cell width:
//
// Candidates are limited to the 3×3 cell neighbourhood of the current node. If the
// resolution exceeds the cell Span (the narrower of the north-south side and the
// east-west side at the dataset's highest latitude), pairs that are within resolution but more than
// one cell apart are silently not adjacent. New logs a warning in that case, and
// WithStrictCellWidth turns it into ErrResolutionExceedsCell.
//
// Concurrency:
//
// A Graph is immutable after New. Concurrent ShortestPath calls are safe; each call
// owns its search state.
//
// Errors:
//
//	ErrAbsentCoordinate      - Weight on a coordinate that is not in the dataset.
//	ErrNoPath                - source and sink are in different components.
//	ErrResolutionExceedsCell - strict mode and resolution > cell span.
//	geodesic.ErrEmptyCollection (wrapped) - ShortestPath on an empty dataset.
//	gridindex.ErrBadCellWidth (wrapped)   - invalid WithCellWidth.
package pathfinder
