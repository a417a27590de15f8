package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueue_FIFO(t *testing.T) {
	q := New[int]()

	_, ok := q.Dequeue()
	require.False(t, ok)

	for i := 1; i <= 3; i++ {
		q.Enqueue(i)
	}
	require.Equal(t, 3, q.Len())

	head, ok := q.Peek()
	require.True(t, ok)
	require.Equal(t, 1, head)

	for want := 1; want <= 3; want++ {
		got, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	require.Equal(t, 0, q.Len())
}

func TestQueue_Clear(t *testing.T) {
	q := New[string]()
	q.Enqueue("a")
	q.Enqueue("b")
	q.Clear()

	require.Equal(t, 0, q.Len())
	_, ok := q.Peek()
	require.False(t, ok)
}

type timedItem struct {
	time int64
	seq  int
}

func TestPriorityQueue_OrdersByTimeThenSequence(t *testing.T) {
	pq := NewPriority(func(a, b timedItem) bool {
		if a.time != b.time {
			return a.time < b.time
		}

		return a.seq < b.seq
	})

	pq.Enqueue(timedItem{time: 20, seq: 0})
	pq.Enqueue(timedItem{time: 10, seq: 1})
	pq.Enqueue(timedItem{time: 10, seq: 2})
	pq.Enqueue(timedItem{time: 5, seq: 3})
	pq.Enqueue(timedItem{time: 10, seq: 4})

	want := []timedItem{{5, 3}, {10, 1}, {10, 2}, {10, 4}, {20, 0}}
	for _, w := range want {
		got, ok := pq.Dequeue()
		require.True(t, ok)
		require.Equal(t, w, got)
	}

	_, ok := pq.Dequeue()
	require.False(t, ok)
}
