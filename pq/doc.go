// Package pq implements a generic binary-heap priority queue with decrease-key.
//
// Two layers:
//
//   - Heap[T]: a binary heap over arbitrary values. Ordering comes from a comparison
//     strategy (less func) held by composition; a max-heap is simply a Heap built with
//     a reversed less, there is no min/max type hierarchy.
//   - PriorityQueue[V]: a thin adapter that stores (value, priority) entries in a
//     Heap ordered by ascending priority and adds value-level operations.
//
// PriorityQueue invariants:
//
//   - A value appears at most once. Push of a value already queued is a no-op;
//     priority changes go through DecreasePriority.
//   - Pop returns the value with the smallest priority. Ties are broken arbitrarily.
//
// Scalability:
//
// The duplicate check in Push and the lookup in DecreasePriority are linear scans
// over the backing slice, so both are O(n). This is fine for survey grids of a few
// thousand nodes. A value→position map maintained by Swap is the upgrade path when
// datasets grow beyond that.
//
// Complexity:
//
//   - Heap Push/Pop/Fix: O(log n).
//   - PriorityQueue Push/DecreasePriority: O(n) lookup + O(log n) sift.
//   - PriorityQueue Pop: O(log n).
package pq
