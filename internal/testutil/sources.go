package testutil

import (
	"sync"

	"github.com/arloliu/rx/disposable"
	"github.com/arloliu/rx/scheduler"
	"github.com/arloliu/rx/types"
)

// Subscription records when a source was subscribed and unsubscribed.
// Unsubscribed is -1 while the subscription is alive.
type Subscription struct {
	Subscribed   int64
	Unsubscribed int64
}

type subscriptionLog struct {
	mu   sync.Mutex
	subs []Subscription
}

func (l *subscriptionLog) open(at int64) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.subs = append(l.subs, Subscription{Subscribed: at, Unsubscribed: -1})

	return len(l.subs) - 1
}

func (l *subscriptionLog) close(idx int, at int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.subs[idx].Unsubscribed < 0 {
		l.subs[idx].Unsubscribed = at
	}
}

func (l *subscriptionLog) snapshot() []Subscription {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]Subscription(nil), l.subs...)
}

// ColdObservable replays its records relative to each subscription time.
//
// It delivers events straight to the observer and does not enforce the
// event grammar, so it can also model misbehaving sources.
type ColdObservable[T any] struct {
	scheduler *scheduler.VirtualTimeScheduler
	records   []Recorded[T]
	log       subscriptionLog
}

// NewCold creates a cold source on s.
func NewCold[T any](s *scheduler.VirtualTimeScheduler, records ...Recorded[T]) *ColdObservable[T] {
	return &ColdObservable[T]{scheduler: s, records: records}
}

// Subscribe schedules every record at subscribe tick + record.Time.
func (c *ColdObservable[T]) Subscribe(observer types.Observer[T]) types.Disposable {
	start := c.scheduler.Clock()
	idx := c.log.open(start)
	group := disposable.NewComposite()

	for _, rec := range c.records {
		group.Insert(c.scheduler.ScheduleAbsolute(start+rec.Time, func() types.Disposable {
			observer.On(rec.Event)
			return nil
		}))
	}

	return disposable.Create(func() {
		c.log.close(idx, c.scheduler.Clock())
		group.Dispose()
	})
}

// Subscriptions returns the subscription log.
func (c *ColdObservable[T]) Subscriptions() []Subscription {
	return c.log.snapshot()
}

// HotObservable emits its records at absolute ticks regardless of
// subscribers; observers see only what is emitted while they are subscribed.
type HotObservable[T any] struct {
	scheduler *scheduler.VirtualTimeScheduler

	mu        sync.Mutex
	observers map[uint64]types.Observer[T]
	nextID    uint64
	log       subscriptionLog
}

// NewHot creates a hot source and schedules all its records on s.
func NewHot[T any](s *scheduler.VirtualTimeScheduler, records ...Recorded[T]) *HotObservable[T] {
	h := &HotObservable[T]{scheduler: s, observers: make(map[uint64]types.Observer[T])}

	for _, rec := range records {
		s.ScheduleAbsolute(rec.Time, func() types.Disposable {
			h.emit(rec.Event)
			return nil
		})
	}

	return h
}

func (h *HotObservable[T]) emit(e types.Event[T]) {
	h.mu.Lock()
	observers := make([]types.Observer[T], 0, len(h.observers))
	for _, o := range h.observers {
		observers = append(observers, o)
	}
	h.mu.Unlock()

	for _, o := range observers {
		o.On(e)
	}
}

// Subscribe registers observer until the returned disposable is disposed.
func (h *HotObservable[T]) Subscribe(observer types.Observer[T]) types.Disposable {
	idx := h.log.open(h.scheduler.Clock())

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.observers[id] = observer
	h.mu.Unlock()

	return disposable.Create(func() {
		h.log.close(idx, h.scheduler.Clock())

		h.mu.Lock()
		delete(h.observers, id)
		h.mu.Unlock()
	})
}

// Subscriptions returns the subscription log.
func (h *HotObservable[T]) Subscriptions() []Subscription {
	return h.log.snapshot()
}
