package rx

import (
	goruntime "runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rx/disposable"
	"github.com/arloliu/rx/internal/testutil"
)

// configureForTest installs cfg for the duration of the test and restores
// the default runtime afterwards.
func configureForTest(t *testing.T, cfg Config, opts ...Option) {
	t.Helper()

	require.NoError(t, Configure(cfg, opts...))
	t.Cleanup(func() {
		require.NoError(t, Configure(DefaultConfig()))
	})
}

// dropCounter counts OnDroppedEvent hook calls by reason.
type dropCounter struct {
	mu      sync.Mutex
	reasons map[string]int
}

func newDropCounter() *dropCounter {
	return &dropCounter{reasons: make(map[string]int)}
}

func (d *dropCounter) hook(_ string, reason string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.reasons[reason]++
}

func (d *dropCounter) count(reason string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.reasons[reason]
}

// stackDepth returns the number of frames on the calling goroutine's stack.
func stackDepth() int {
	pcs := make([]uintptr, 4096)
	return goruntime.Callers(0, pcs)
}

// leakySource hands its raw observer to the test and ignores disposal,
// modelling a source that keeps emitting after it was released.
type leakySource[T any] struct {
	mu       sync.Mutex
	observer Observer[T]
}

func (l *leakySource[T]) Subscribe(observer Observer[T]) Disposable {
	l.mu.Lock()
	l.observer = observer
	l.mu.Unlock()

	return disposable.Nop()
}

func (l *leakySource[T]) emit(e Event[T]) {
	l.mu.Lock()
	o := l.observer
	l.mu.Unlock()

	o.On(e)
}

// overlapObserver records events and counts calls that arrived while
// another call was still in progress. The Recorder alone serializes
// through its mutex and would hide such overlaps.
type overlapObserver[T any] struct {
	*testutil.Recorder[T]
	inFlight atomic.Int32
	overlaps atomic.Int32
}

func newOverlapObserver[T any]() *overlapObserver[T] {
	return &overlapObserver[T]{Recorder: testutil.NewRecorder[T]()}
}

func (o *overlapObserver[T]) On(e Event[T]) {
	if o.inFlight.Add(1) > 1 {
		o.overlaps.Add(1)
	}
	time.Sleep(50 * time.Microsecond)
	o.Recorder.On(e)
	o.inFlight.Add(-1)
}

// goroutineSource emits 0..n-1 and completes from its own goroutine.
func goroutineSource(n int) Observable[int] {
	return Create(func(o Observer[int]) Disposable {
		go func() {
			for j := range n {
				o.On(Next(j))
			}
			o.On(Completed[int]())
		}()

		return nil
	})
}
