package queue

import "container/heap"

// PriorityQueue orders items by a caller-supplied comparison.
//
// less must be a strict weak ordering; callers that need FIFO behaviour for
// equal priorities encode an insertion sequence into the comparison.
type PriorityQueue[T any] struct {
	h *priorityHeap[T]
}

// NewPriority creates an empty priority queue.
//
// Parameters:
//   - less: Reports whether a must be dequeued before b
//
// Returns:
//   - *PriorityQueue[T]: Empty queue
func NewPriority[T any](less func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{h: &priorityHeap[T]{less: less}}
}

// Enqueue inserts an item.
func (pq *PriorityQueue[T]) Enqueue(item T) {
	heap.Push(pq.h, item)
}

// Peek returns the highest-priority item without removing it.
func (pq *PriorityQueue[T]) Peek() (item T, ok bool) {
	if len(pq.h.items) == 0 {
		return item, false
	}

	return pq.h.items[0], true
}

// Dequeue removes and returns the highest-priority item.
func (pq *PriorityQueue[T]) Dequeue() (item T, ok bool) {
	if len(pq.h.items) == 0 {
		return item, false
	}

	return heap.Pop(pq.h).(T), true
}

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int {
	return len(pq.h.items)
}

type priorityHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *priorityHeap[T]) Len() int           { return len(h.items) }
func (h *priorityHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *priorityHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *priorityHeap[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *priorityHeap[T]) Pop() any {
	n := len(h.items)
	item := h.items[n-1]

	var zero T
	h.items[n-1] = zero
	h.items = h.items[:n-1]

	return item
}
