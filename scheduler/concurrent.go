package scheduler

import (
	"runtime"
	"sync"
	"time"

	"github.com/arloliu/rx/disposable"
	"github.com/arloliu/rx/types"
)

const concurrentName = "concurrent"

// ConcurrentScheduler runs actions on goroutines, at most a fixed number at
// a time. Actions may run in parallel and in any order.
type ConcurrentScheduler struct {
	tokens chan struct{}
	wg     sync.WaitGroup
	opts   options
}

var _ Scheduler = (*ConcurrentScheduler)(nil)

// NewConcurrent creates a concurrent scheduler.
//
// Parameters:
//   - opts: WithWorkers (defaults to GOMAXPROCS), WithLogger, WithMetrics
//
// Returns:
//   - *ConcurrentScheduler: Ready scheduler
func NewConcurrent(opts ...Option) *ConcurrentScheduler {
	o := newOptions(opts)
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	tokens := make(chan struct{}, o.workers)
	for i := 0; i < o.workers; i++ {
		tokens <- struct{}{}
	}

	return &ConcurrentScheduler{tokens: tokens, opts: o}
}

// Workers returns the maximum number of actions run at once.
func (s *ConcurrentScheduler) Workers() int {
	return cap(s.tokens)
}

// Now returns the wall clock time.
func (s *ConcurrentScheduler) Now() time.Time {
	return time.Now()
}

// Schedule runs action on a goroutine once a worker slot is free.
func (s *ConcurrentScheduler) Schedule(action Action) types.Disposable {
	item := newScheduledItem(action)
	s.opts.metrics.RecordScheduled(concurrentName)

	s.wg.Go(func() {
		<-s.tokens
		defer func() {
			s.tokens <- struct{}{}
		}()

		runGuarded(concurrentName, item, s.opts)
	})

	return item
}

// ScheduleRelative runs action once due has elapsed.
func (s *ConcurrentScheduler) ScheduleRelative(due time.Duration, action Action) types.Disposable {
	if due <= 0 {
		return s.Schedule(action)
	}

	slot := disposable.NewSerial()
	timer := time.AfterFunc(due, func() {
		slot.Set(s.Schedule(action))
	})
	slot.Set(disposable.Create(func() { timer.Stop() }))

	return slot
}

// Wait blocks until every action scheduled so far has finished.
//
// Actions scheduled while Wait is blocked may or may not be waited for.
func (s *ConcurrentScheduler) Wait() {
	s.wg.Wait()
}
