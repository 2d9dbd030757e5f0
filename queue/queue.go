// Package queue provides a generic FIFO sequence.
//
// Tree traversals use it as an output buffer and as a breadth-first
// worklist. The zero value is an empty queue ready for use.
package queue

import "iter"

// Queue is a slice-backed FIFO sequence of items.
//
// Items are appended at the back and taken from the front. The backing
// slice is compacted when the consumed prefix grows large, keeping
// amortized costs constant.
type Queue[T any] struct {
	items []T
	head  int
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends an item at the back of the queue.
func (q *Queue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the item at the front of the queue.
// The second return value is false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var none T
	if q.head >= len(q.items) {
		return none, false
	}
	item := q.items[q.head]
	q.items[q.head] = none // release the slot for the collector
	q.head++
	if q.head > len(q.items)/2 && q.head > 32 {
		q.compact()
	}
	return item, true
}

// Peek returns the item at the front of the queue without removing it.
// The second return value is false if the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	if q.head >= len(q.items) {
		var none T
		return none, false
	}
	return q.items[q.head], true
}

// Len returns the number of items currently held by the queue.
func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}

// IsEmpty is true if the queue holds no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Drain removes all items from the queue and returns them in FIFO order.
func (q *Queue[T]) Drain() []T {
	items := make([]T, 0, q.Len())
	for {
		item, ok := q.Dequeue()
		if !ok {
			return items
		}
		items = append(items, item)
	}
}

// RangeItems returns an iterator over the queued items in FIFO order.
// Iterating does not consume the queue.
func (q *Queue[T]) RangeItems() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range q.items[q.head:] {
			if !yield(item) {
				return
			}
		}
	}
}

func (q *Queue[T]) compact() {
	n := copy(q.items, q.items[q.head:])
	clear(q.items[n:])
	q.items = q.items[:n]
	q.head = 0
}
