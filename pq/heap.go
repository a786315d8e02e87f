package pq

import "container/heap"

// Less reports whether a must be popped before b.
type Less[T any] func(a, b T) bool

// Heap is a binary heap of T ordered by a Less strategy.
// The zero value is not usable; construct with NewHeap.
type Heap[T any] struct {
	s store[T]
}

// NewHeap returns an empty heap ordered by less.
// capacity pre-sizes the backing slice and may be zero.
func NewHeap[T any](less Less[T], capacity int) *Heap[T] {
	if less == nil {
		panic("pq: nil comparison strategy")
	}

	return &Heap[T]{s: store[T]{items: make([]T, 0, capacity), less: less}}
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int { return len(h.s.items) }

// Empty reports whether the heap holds no items.
func (h *Heap[T]) Empty() bool { return len(h.s.items) == 0 }

// Push inserts v. O(log n).
func (h *Heap[T]) Push(v T) { heap.Push(&h.s, v) }

// Pop removes and returns the first item by the heap ordering.
// ok is false when the heap is empty.
func (h *Heap[T]) Pop() (v T, ok bool) {
	if h.Empty() {
		return v, false
	}

	return heap.Pop(&h.s).(T), true
}

// Peek returns the first item without removing it.
func (h *Heap[T]) Peek() (v T, ok bool) {
	if h.Empty() {
		return v, false
	}

	return h.s.items[0], true
}

// Index returns the position of the first stored item satisfying match, or -1.
// Positions are only stable until the next mutating call. O(n).
func (h *Heap[T]) Index(match func(T) bool) int {
	for i, v := range h.s.items {
		if match(v) {
			return i
		}
	}

	return -1
}

// At returns the item stored at position i.
func (h *Heap[T]) At(i int) T { return h.s.items[i] }

// Update replaces the item at position i and restores heap order. O(log n).
func (h *Heap[T]) Update(i int, v T) {
	h.s.items[i] = v
	heap.Fix(&h.s, i)
}

// store adapts a slice plus strategy to container/heap.
type store[T any] struct {
	items []T
	less  Less[T]
}

func (s store[T]) Len() int           { return len(s.items) }
func (s store[T]) Less(i, j int) bool { return s.less(s.items[i], s.items[j]) }
func (s store[T]) Swap(i, j int)      { s.items[i], s.items[j] = s.items[j], s.items[i] }

// Push is called by heap.Push; x must be a T.
func (s *store[T]) Push(x any) { s.items = append(s.items, x.(T)) }

// Pop is called by heap.Pop.
func (s *store[T]) Pop() any {
	old := s.items
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero
	s.items = old[:n-1]

	return item
}
