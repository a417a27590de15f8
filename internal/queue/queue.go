// Package queue provides the FIFO and priority queues used by schedulers and operators.
//
// The queues are NOT safe for concurrent use; owners guard them with their own lock.
package queue

import (
	list "github.com/bahlo/generic-list-go"
)

// Queue is an unbounded FIFO queue.
type Queue[T any] struct {
	items *list.List[T]
}

// New creates an empty FIFO queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{items: list.New[T]()}
}

// Enqueue appends an item at the tail.
func (q *Queue[T]) Enqueue(item T) {
	q.items.PushBack(item)
}

// Dequeue removes the head item. ok is false when the queue is empty.
func (q *Queue[T]) Dequeue() (item T, ok bool) {
	front := q.items.Front()
	if front == nil {
		return item, false
	}

	return q.items.Remove(front), true
}

// Peek returns the head item without removing it.
func (q *Queue[T]) Peek() (item T, ok bool) {
	front := q.items.Front()
	if front == nil {
		return item, false
	}

	return front.Value, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	return q.items.Len()
}

// Clear drops every queued item.
func (q *Queue[T]) Clear() {
	q.items.Init()
}
