package pathfinder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/thalweg/geodesic"
	"github.com/katalvlaran/thalweg/pq"
)

// ShortestPath returns the minimum-cost path from the indexed coordinate nearest
// source to the indexed coordinate nearest sink, inclusive, in source-to-sink order.
//
// Cost is the sum of node weights along the path, so the result prefers deep water
// over geometric shortness. Returns ErrNoPath when the two snapped endpoints are
// not connected at the graph's resolution, and a wrapped geodesic.ErrEmptyCollection
// when the dataset is empty.
func (g *Graph) ShortestPath(source, sink geodesic.Coordinate) ([]geodesic.Location, error) {
	from, err := g.index.ClosestPoint(source)
	if err != nil {
		return nil, fmt.Errorf("pathfinder: snapping source %s: %w", source, err)
	}
	to, err := g.index.ClosestPoint(sink)
	if err != nil {
		return nil, fmt.Errorf("pathfinder: snapping sink %s: %w", sink, err)
	}

	r := newRunner(g, from, to)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.path(), nil
}

// tentative is the per-node search record.
type tentative struct {
	cost float64
	prev geodesic.Coordinate
}

// runner holds the mutable state for a single ShortestPath execution.
type runner struct {
	g       *Graph
	source  geodesic.Coordinate
	sink    geodesic.Coordinate
	state   map[geodesic.Coordinate]tentative
	visited map[geodesic.Coordinate]struct{}
	queue   *pq.PriorityQueue[geodesic.Coordinate]
}

// newRunner seeds the search with the source at cost 0, its own predecessor.
func newRunner(g *Graph, source, sink geodesic.Coordinate) *runner {
	r := &runner{
		g:       g,
		source:  source,
		sink:    sink,
		state:   make(map[geodesic.Coordinate]tentative),
		visited: make(map[geodesic.Coordinate]struct{}),
		queue:   pq.New[geodesic.Coordinate](0),
	}
	r.state[source] = tentative{cost: 0, prev: source}
	r.queue.Push(source, 0)

	return r
}

// priority is accumulated cost plus straight-line distance to the sink, rounded.
func (r *runner) priority(c geodesic.Coordinate, cost float64) int64 {
	return int64(math.Round(cost + geodesic.Distance(c, r.sink)))
}

func (r *runner) isVisited(c geodesic.Coordinate) bool {
	_, ok := r.visited[c]

	return ok
}

// process pops nodes until the sink is final or the frontier is empty.
func (r *runner) process() error {
	for !r.isVisited(r.sink) {
		current, ok := r.queue.Pop()
		if !ok {
			return fmt.Errorf("%w: %s → %s", ErrNoPath, r.source, r.sink)
		}
		if err := r.relax(current); err != nil {
			return err
		}
		r.visited[current] = struct{}{}
	}

	return nil
}

// relax offers current as predecessor to every unvisited adjacent candidate.
func (r *runner) relax(current geodesic.Coordinate) error {
	base := r.state[current].cost
	for _, n := range r.g.index.Neighbors(current) {
		if n == current || r.isVisited(n) || !r.g.Adjacent(current, n) {
			continue
		}
		w, err := r.g.Weight(n)
		if err != nil {
			// index and dataset are built from the same coordinates
			return fmt.Errorf("pathfinder: relaxing %s: %w", n, err)
		}
		cost := base + w
		old, seen := r.state[n]
		if seen && cost >= old.cost {
			continue
		}
		r.state[n] = tentative{cost: cost, prev: current}
		if seen {
			r.queue.DecreasePriority(n, r.priority(n, cost))
		} else {
			r.queue.Push(n, r.priority(n, cost))
		}
	}

	return nil
}

// path walks predecessors from the sink and returns source-to-sink locations.
func (r *runner) path() []geodesic.Location {
	var out []geodesic.Location
	for c := r.sink; ; c = r.state[c].prev {
		l, _ := r.g.Location(c)
		out = append(out, l)
		if c == r.source {
			break
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// Cost returns the accumulated weight of path excluding its first node, the
// quantity ShortestPath minimises. Nodes absent from the dataset fail with
// ErrAbsentCoordinate.
func (g *Graph) Cost(path []geodesic.Location) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		w, err := g.Weight(path[i].Coord)
		if err != nil {
			return 0, err
		}
		total += w
	}

	return total, nil
}
