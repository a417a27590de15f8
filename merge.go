package rx

import (
	"fmt"
	"sync"

	"github.com/arloliu/rx/disposable"
	"github.com/arloliu/rx/internal/queue"
)

// Merge interleaves the elements of every inner sequence emitted by sources.
//
// The result completes once sources and every inner sequence have completed,
// and fails as soon as any of them fails.
func Merge[T any](sources Observable[Observable[T]]) Observable[T] {
	return MergeLimited(sources, 0)
}

// MergeAll merges a fixed list of sequences.
func MergeAll[T any](sources ...Observable[T]) Observable[T] {
	return Merge(FromSlice(sources))
}

// MergeLimited is Merge with at most maxConcurrent inner subscriptions
// active at once. Further inner sequences wait in a FIFO queue and are
// subscribed as active ones complete. maxConcurrent <= 0 means unbounded.
//
// When Config.MaxPendingInner is positive and the queue is full, the merged
// sequence fails with ErrPendingQueueFull.
//
// Parameters:
//   - sources: Sequence of inner sequences
//   - maxConcurrent: Maximum number of active inner subscriptions
//
// Returns:
//   - Observable[T]: Merged sequence
func MergeLimited[T any](sources Observable[Observable[T]], maxConcurrent int) Observable[T] {
	name := "merge"
	if maxConcurrent > 0 {
		name = "merge_limited"
	}

	return newProducer(name, func(observer Observer[T], cancel Cancelable) (Disposable, Disposable) {
		rt := currentRuntime()
		s := &mergeSink[T]{
			name:          name,
			rt:            rt,
			maxConcurrent: maxConcurrent,
			maxPending:    rt.cfg.MaxPendingInner,
			pending:       queue.New[Observable[T]](),
			group:         disposable.NewComposite(),
			sourceSub:     disposable.NewSingleAssignment(),
		}
		s.init(observer, cancel)

		s.group.Insert(s.sourceSub)
		s.sourceSub.Set(sources.Subscribe(ObserverFunc[Observable[T]](s.onOuter)))

		return s, s.group
	})
}

// FlatMap maps every element to an inner sequence and merges them.
func FlatMap[T, R any](source Observable[T], selector func(T) (Observable[R], error)) Observable[R] {
	return Merge(Map(source, selector))
}

// FlatMapLimited is FlatMap with at most maxConcurrent active inner sequences.
func FlatMapLimited[T, R any](source Observable[T], maxConcurrent int, selector func(T) (Observable[R], error)) Observable[R] {
	return MergeLimited(Map(source, selector), maxConcurrent)
}

type mergeSink[T any] struct {
	sink[T]
	name          string
	rt            *runtime
	maxConcurrent int
	maxPending    int

	mu          sync.Mutex
	stopped     bool
	activeCount int
	pending     *queue.Queue[Observable[T]]

	group     *disposable.CompositeDisposable
	sourceSub *disposable.SingleAssignmentDisposable
}

func (s *mergeSink[T]) onOuter(e Event[Observable[T]]) {
	switch e.Kind {
	case KindNext:
		s.mu.Lock()
		if s.maxConcurrent <= 0 || s.activeCount < s.maxConcurrent {
			s.activeCount++
			s.mu.Unlock()
			s.subscribeInner(e.Value)

			return
		}

		if s.maxPending > 0 && s.pending.Len() >= s.maxPending {
			s.forwardOn(Error[T](fmt.Errorf("%w: limit %d", ErrPendingQueueFull, s.maxPending)))
			s.mu.Unlock()
			s.dispose()

			return
		}
		s.pending.Enqueue(e.Value)
		s.rt.metrics.SetPendingInner(s.name, s.pending.Len())
		s.mu.Unlock()

	case KindError:
		s.mu.Lock()
		s.forwardOn(Error[T](e.Err))
		s.mu.Unlock()
		s.dispose()

	case KindCompleted:
		s.mu.Lock()
		s.stopped = true
		if s.activeCount == 0 {
			s.forwardOn(Completed[T]())
			s.mu.Unlock()
			s.dispose()

			return
		}
		s.mu.Unlock()
		s.sourceSub.Dispose()
	}
}

// subscribeInner must be called without holding mu: the inner sequence may
// emit synchronously.
func (s *mergeSink[T]) subscribeInner(inner Observable[T]) {
	innerSub := disposable.NewSingleAssignment()
	key, ok := s.group.Insert(innerSub)
	if !ok {
		return
	}

	innerSub.Set(inner.Subscribe(&mergeInner[T]{parent: s, key: key}))
}

func (s *mergeSink[T]) onInnerCompleted(key disposable.Key) {
	s.group.Remove(key)

	s.mu.Lock()
	if next, ok := s.pending.Dequeue(); ok {
		s.rt.metrics.SetPendingInner(s.name, s.pending.Len())
		s.mu.Unlock()
		s.subscribeInner(next)

		return
	}

	s.activeCount--
	if s.stopped && s.activeCount == 0 {
		s.forwardOn(Completed[T]())
		s.mu.Unlock()
		s.dispose()

		return
	}
	s.mu.Unlock()
}

type mergeInner[T any] struct {
	parent *mergeSink[T]
	key    disposable.Key
}

func (o *mergeInner[T]) On(e Event[T]) {
	p := o.parent

	switch e.Kind {
	case KindNext:
		p.mu.Lock()
		p.forwardOn(e)
		p.mu.Unlock()
	case KindError:
		p.mu.Lock()
		p.forwardOn(e)
		p.mu.Unlock()
		p.dispose()
	case KindCompleted:
		p.onInnerCompleted(o.key)
	}
}
