package rx

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rx/disposable"
	"github.com/arloliu/rx/internal/logger"
	"github.com/arloliu/rx/internal/testutil"
	"github.com/arloliu/rx/scheduler"
)

func TestCreate_EnforcesGrammar(t *testing.T) {
	rec := testutil.NewRecorder[int]()

	released := disposable.NewBoolean()
	Create(func(o Observer[int]) Disposable {
		o.On(Next(1))
		o.On(Completed[int]())
		o.On(Next(2))
		o.On(Error[int](errors.New("late")))

		return released
	}).Subscribe(rec)

	require.Equal(t, []int{1}, rec.Values())
	require.True(t, rec.Completed())
	require.Zero(t, rec.Violations())
	require.True(t, released.IsDisposed(), "terminal event must release the subscription")
}

func TestCreate_NilDisposable(t *testing.T) {
	rec := testutil.NewRecorder[string]()

	sub := Create(func(o Observer[string]) Disposable {
		o.On(Next("a"))
		return nil
	}).Subscribe(rec)

	require.Equal(t, []string{"a"}, rec.Values())
	require.False(t, rec.Terminated())
	require.NotPanics(t, sub.Dispose)
}

func TestCreate_SubscribePanic(t *testing.T) {
	rec := testutil.NewRecorder[int]()

	Create(func(_ Observer[int]) Disposable {
		panic("subscribe failed")
	}).Subscribe(rec)

	require.ErrorIs(t, rec.Err(), ErrPanic)
	require.Contains(t, rec.Err().Error(), "subscribe failed")
}

func TestCreationOperators(t *testing.T) {
	t.Run("Just", func(t *testing.T) {
		rec := testutil.NewRecorder[int]()
		Just(42).Subscribe(rec)

		require.Equal(t, []int{42}, rec.Values())
		require.True(t, rec.Completed())
	})

	t.Run("Empty", func(t *testing.T) {
		rec := testutil.NewRecorder[int]()
		Empty[int]().Subscribe(rec)

		require.Empty(t, rec.Values())
		require.True(t, rec.Completed())
	})

	t.Run("Never", func(t *testing.T) {
		rec := testutil.NewRecorder[int]()
		sub := Never[int]().Subscribe(rec)

		require.Empty(t, rec.Events())
		sub.Dispose()
		require.Empty(t, rec.Events())
	})

	t.Run("Throw", func(t *testing.T) {
		boom := errors.New("boom")
		rec := testutil.NewRecorder[int]()
		Throw[int](boom).Subscribe(rec)

		require.ErrorIs(t, rec.Err(), boom)
		require.Len(t, rec.Events(), 1)
	})

	t.Run("Of", func(t *testing.T) {
		rec := testutil.NewRecorder[int]()
		Of(1, 2, 3).Subscribe(rec)

		require.Equal(t, []int{1, 2, 3}, rec.Values())
		require.True(t, rec.Completed())
	})

	t.Run("FromSliceOn immediate", func(t *testing.T) {
		rec := testutil.NewRecorder[string]()
		FromSliceOn([]string{"x", "y"}, scheduler.ImmediateScheduler{}).Subscribe(rec)

		require.Equal(t, []string{"x", "y"}, rec.Values())
		require.True(t, rec.Completed())
	})

	t.Run("Defer calls factory per subscriber", func(t *testing.T) {
		calls := 0
		deferred := Defer(func() (Observable[int], error) {
			calls++
			return Just(calls), nil
		})

		first := testutil.NewRecorder[int]()
		second := testutil.NewRecorder[int]()
		deferred.Subscribe(first)
		deferred.Subscribe(second)

		require.Equal(t, []int{1}, first.Values())
		require.Equal(t, []int{2}, second.Values())
	})

	t.Run("Defer factory error", func(t *testing.T) {
		boom := errors.New("no source")
		rec := testutil.NewRecorder[int]()
		Defer(func() (Observable[int], error) {
			return nil, boom
		}).Subscribe(rec)

		require.ErrorIs(t, rec.Err(), boom)
	})

	t.Run("Defer factory panic", func(t *testing.T) {
		rec := testutil.NewRecorder[int]()
		Defer(func() (Observable[int], error) {
			panic("factory")
		}).Subscribe(rec)

		require.ErrorIs(t, rec.Err(), ErrPanic)
	})
}

func TestObserverPanic_BecomesError(t *testing.T) {
	var values []int
	var errs []error

	Of(1, 2, 3).Subscribe(ObserverFunc[int](func(e Event[int]) {
		switch e.Kind {
		case KindNext:
			if e.Value == 2 {
				panic("observer failed")
			}
			values = append(values, e.Value)
		case KindError:
			errs = append(errs, e.Err)
		case KindCompleted:
			t.Fatal("unexpected completion")
		}
	}))

	require.Equal(t, []int{1}, values)
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], ErrPanic)
}

func TestSubscribeFunc_UnhandledError(t *testing.T) {
	log := logger.NewTest(t)
	var unhandled []error
	configureForTest(t, DefaultConfig(),
		WithLogger(log),
		WithHooks(&Hooks{OnUnhandledError: func(err error) { unhandled = append(unhandled, err) }}),
	)

	boom := errors.New("boom")
	SubscribeFunc(Throw[int](boom), nil, nil, nil)

	entries := log.Entries("ERROR")
	require.Len(t, entries, 1)
	require.Equal(t, "unhandled stream error", entries[0].Message)
	require.Len(t, unhandled, 1)
	require.ErrorIs(t, unhandled[0], boom)
}

func TestSubscribeFunc_Callbacks(t *testing.T) {
	var values []int
	completed := false

	SubscribeFunc(Of(1, 2), func(v int) { values = append(values, v) }, func(err error) {
		t.Fatalf("unexpected error: %v", err)
	}, func() { completed = true })

	require.Equal(t, []int{1, 2}, values)
	require.True(t, completed)

	var next []int
	SubscribeNext(Of(3), func(v int) { next = append(next, v) })
	require.Equal(t, []int{3}, next)
}

func TestAutoDetach_DropsAfterTerminal(t *testing.T) {
	drops := newDropCounter()
	configureForTest(t, DefaultConfig(), WithHooks(&Hooks{OnDroppedEvent: drops.hook}))

	rec := testutil.NewRecorder[int]()
	upstream := disposable.NewBoolean()
	a := newAutoDetach[int]("test", rec, upstream, currentRuntime())

	a.On(Next(1))
	a.On(Completed[int]())
	a.On(Next(2))
	a.On(Error[int](errors.New("late")))

	require.Equal(t, []int{1}, rec.Values())
	require.True(t, rec.Completed())
	require.Zero(t, rec.Violations())
	require.True(t, upstream.IsDisposed())
	require.Equal(t, 2, drops.count("after_terminal"))
}

func TestSinkDisposer(t *testing.T) {
	rt := currentRuntime()

	t.Run("set then dispose", func(t *testing.T) {
		d := newSinkDisposer("test", rt)
		s, sub := disposable.NewBoolean(), disposable.NewBoolean()

		d.set(s, sub)
		require.False(t, s.IsDisposed())
		require.False(t, d.IsDisposed())

		d.Dispose()
		require.True(t, d.IsDisposed())
		require.True(t, s.IsDisposed())
		require.True(t, sub.IsDisposed())
	})

	t.Run("dispose then set", func(t *testing.T) {
		d := newSinkDisposer("test", rt)
		d.Dispose()

		s, sub := disposable.NewBoolean(), disposable.NewBoolean()
		d.set(s, sub)
		require.True(t, s.IsDisposed())
		require.True(t, sub.IsDisposed())
	})

	t.Run("second set panics", func(t *testing.T) {
		d := newSinkDisposer("test", rt)
		d.set(disposable.Nop(), disposable.Nop())

		require.Panics(t, func() {
			d.set(disposable.Nop(), disposable.Nop())
		})
	})
}

func TestResourceCount_ReturnsToBaseline(t *testing.T) {
	configureForTest(t, TestConfig())
	base := ResourceCount()

	vts := scheduler.NewVirtualTime(0)
	rec := testutil.NewRecorderWithClock[int64](vts.Clock)
	sub := Interval(10*time.Nanosecond, vts).Subscribe(rec)
	require.Greater(t, ResourceCount(), base)

	vts.AdvanceTo(35)
	require.Equal(t, []int64{0, 1, 2}, rec.Values())

	sub.Dispose()
	sub.Dispose()
	require.Equal(t, base, ResourceCount())

	vts.AdvanceTo(100)
	require.Equal(t, []int64{0, 1, 2}, rec.Values())

	Merge(Of(Of(1, 2), Just(3))).Subscribe(testutil.NewRecorder[int]())
	require.Equal(t, base, ResourceCount())
}

func TestTimer_VirtualTime(t *testing.T) {
	vts := scheduler.NewVirtualTime(0)
	rec := testutil.NewRecorderWithClock[int64](vts.Clock)
	Timer(50*time.Nanosecond, vts).Subscribe(rec)

	vts.Start()

	records := rec.Records()
	require.Len(t, records, 2)
	require.Equal(t, testutil.OnNext[int64](50, 0), records[0])
	require.Equal(t, testutil.OnCompleted[int64](50), records[1])
}

func TestTimer_Dispose(t *testing.T) {
	vts := scheduler.NewVirtualTime(0)
	rec := testutil.NewRecorder[int64]()
	sub := Timer(50*time.Nanosecond, vts).Subscribe(rec)

	vts.AdvanceTo(20)
	sub.Dispose()
	vts.Start()

	require.Empty(t, rec.Events())
}

func TestGrammar_ConcurrentInterleavings(t *testing.T) {
	boom := errors.New("boom")

	randomSource := func() Observable[int] {
		return Create(func(o Observer[int]) Disposable {
			n := rand.IntN(50)
			fail := rand.IntN(2) == 0

			go func() {
				for i := range n {
					o.On(Next(i))
				}
				if fail {
					o.On(Error[int](boom))
				} else {
					o.On(Completed[int]())
				}
				o.On(Next(-1))
			}()

			return nil
		})
	}

	for range 50 {
		sources := make([]Observable[int], 4)
		for i := range sources {
			sources[i] = randomSource()
		}

		rec := testutil.NewRecorder[int]()
		MergeAll(sources...).Subscribe(rec)

		require.True(t, rec.WaitTerminated(5*time.Second))
		require.Zero(t, rec.Violations())
		require.NotContains(t, rec.Values(), -1)
	}
}

func TestSubscribe_IndependentOfBusyGoroutine(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		scheduler.CurrentThread().Schedule(func() Disposable {
			close(entered)
			<-release

			return nil
		})
	}()
	<-entered

	rec := testutil.NewRecorder[int]()
	Of(1, 2, 3).Subscribe(rec)

	require.Equal(t, []int{1, 2, 3}, rec.Values())
	require.True(t, rec.Completed())

	close(release)
	<-done
}
