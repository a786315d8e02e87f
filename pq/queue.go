package pq

// Entry is a value paired with its priority.
type Entry[V comparable] struct {
	Value    V
	Priority int64
}

// PriorityQueue pops values in ascending priority order and supports decrease-key.
type PriorityQueue[V comparable] struct {
	h *Heap[Entry[V]]
}

// New returns an empty PriorityQueue. capacity may be zero.
func New[V comparable](capacity int) *PriorityQueue[V] {
	return &PriorityQueue[V]{
		h: NewHeap[Entry[V]](func(a, b Entry[V]) bool { return a.Priority < b.Priority }, capacity),
	}
}

// Len returns the number of queued values.
func (q *PriorityQueue[V]) Len() int { return q.h.Len() }

// Empty reports whether no values are queued.
func (q *PriorityQueue[V]) Empty() bool { return q.h.Empty() }

// Contains reports whether v is queued. O(n).
func (q *PriorityQueue[V]) Contains(v V) bool { return q.find(v) >= 0 }

// Push queues v with priority p. If v is already queued the call does nothing;
// use DecreasePriority to change the priority of a queued value.
func (q *PriorityQueue[V]) Push(v V, p int64) {
	if q.find(v) >= 0 {
		return
	}
	q.h.Push(Entry[V]{Value: v, Priority: p})
}

// Pop removes and returns the value with the smallest priority.
// ok is false when the queue is empty.
func (q *PriorityQueue[V]) Pop() (V, bool) {
	e, ok := q.h.Pop()

	return e.Value, ok
}

// PopEntry is Pop that also returns the priority the value was queued with.
func (q *PriorityQueue[V]) PopEntry() (Entry[V], bool) { return q.h.Pop() }

// Priority returns the current priority of v, if queued.
func (q *PriorityQueue[V]) Priority(v V) (int64, bool) {
	i := q.find(v)
	if i < 0 {
		return 0, false
	}

	return q.h.At(i).Priority, true
}

// DecreasePriority lowers the priority of the queued value v to p.
// Absent values and non-decreasing priorities are ignored.
func (q *PriorityQueue[V]) DecreasePriority(v V, p int64) {
	i := q.find(v)
	if i < 0 {
		return
	}
	e := q.h.At(i)
	if p >= e.Priority {
		return
	}
	e.Priority = p
	q.h.Update(i, e)
}

// find locates v by equality with a linear scan.
func (q *PriorityQueue[V]) find(v V) int {
	return q.h.Index(func(e Entry[V]) bool { return e.Value == v })
}
