// Package thalweg traces the deepest navigable line through an inlet from a
// cloud of depth soundings.
//
// What is a thalweg?
//
//	The line of lowest elevation along a watercourse. Given surveyed points
//	(latitude, longitude, depth) and a list of inlet corners, thalweg finds a
//	path between each pair of consecutive corners that prefers deep water over
//	geometric shortness.
//
// How it works:
//
//   - Two soundings are adjacent when their great-circle distance is within
//     the chosen resolution (metres).
//   - Entering a sounding costs maxDepth - depth + 1, so deeper water is cheaper.
//   - A best-first search ordered by cost plus straight-line distance to the
//     sink walks that implicit graph.
//
// Packages:
//
//	geodesic/   coordinates, soundings, haversine distance, DMS angles
//	pq/         generic binary heap and a decrease-key priority queue
//	gridindex/  fixed-width lat/lon buckets for neighbourhood lookups
//	pathfinder/ the adjacency graph and the shortest-path search
//	survey/     readers for DMS survey data and corner files
//	refine/     R-tree backed post-processing (sink, shrink, decimate)
//	export/     DMS, CSV and GeoJSON writers plus longitudinal sections
//	cmd/thalweg the command-line front end
//
// Quick example:
//
//	data, _ := survey.ReadDir("nonna")
//	g, _ := pathfinder.New(data, 50, pathfinder.WithCellWidth(0.01))
//	path, err := g.ShortestPath(mouth, head)
//	if errors.Is(err, pathfinder.ErrNoPath) {
//		// corners are not connected at 50 m
//	}
//	_ = export.Write(os.Stdout, export.GeoJSON, path)
//
//	go install github.com/katalvlaran/thalweg/cmd/thalweg@latest
package thalweg
