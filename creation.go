package rx

import (
	"time"

	"github.com/arloliu/rx/disposable"
	"github.com/arloliu/rx/scheduler"
	"github.com/arloliu/rx/types"
)

// Just emits value and completes, synchronously on subscribe.
func Just[T any](value T) Observable[T] {
	return newProducer("just", func(observer Observer[T], cancel Cancelable) (Disposable, Disposable) {
		s := &anonymousSink[T]{}
		s.init(observer, cancel)
		s.On(Next(value))
		s.On(Completed[T]())

		return s, disposable.Nop()
	})
}

// Empty completes immediately without emitting.
func Empty[T any]() Observable[T] {
	return newProducer("empty", func(observer Observer[T], cancel Cancelable) (Disposable, Disposable) {
		s := &anonymousSink[T]{}
		s.init(observer, cancel)
		s.On(Completed[T]())

		return s, disposable.Nop()
	})
}

// Never emits nothing and never terminates.
func Never[T any]() Observable[T] {
	return newProducer("never", func(observer Observer[T], cancel Cancelable) (Disposable, Disposable) {
		s := &anonymousSink[T]{}
		s.init(observer, cancel)

		return s, disposable.Nop()
	})
}

// Throw terminates immediately with err.
func Throw[T any](err error) Observable[T] {
	return newProducer("throw", func(observer Observer[T], cancel Cancelable) (Disposable, Disposable) {
		s := &anonymousSink[T]{}
		s.init(observer, cancel)
		s.On(Error[T](err))

		return s, disposable.Nop()
	})
}

// Of emits the given values in order, then completes.
//
// Elements are produced by recursive scheduling on the current-thread
// trampoline, one element per step.
func Of[T any](values ...T) Observable[T] {
	return FromSliceOn(values, scheduler.CurrentThread())
}

// FromSlice emits the elements of items in order, then completes.
func FromSlice[T any](items []T) Observable[T] {
	return FromSliceOn(items, scheduler.CurrentThread())
}

// FromSliceOn emits the elements of items on s, one element per scheduled step.
//
// Parameters:
//   - items: Elements to emit; the slice is not copied
//   - s: Scheduler driving the emission
//
// Returns:
//   - Observable[T]: Cold observable
func FromSliceOn[T any](items []T, s scheduler.Immediate) Observable[T] {
	return newProducer("of", func(observer Observer[T], cancel Cancelable) (Disposable, Disposable) {
		sk := &anonymousSink[T]{}
		sk.init(observer, cancel)

		subscription := scheduler.ScheduleRecursive(s, 0, func(i int, recurse func(int)) {
			if sk.isDisposed() {
				return
			}
			if i < len(items) {
				sk.forwardOn(Next(items[i]))
				recurse(i + 1)

				return
			}
			sk.On(Completed[T]())
		})

		return sk, subscription
	})
}

// Defer calls factory for every subscriber and subscribes to the result.
// An error or panic from factory terminates the subscriber with that error.
func Defer[T any](factory func() (Observable[T], error)) Observable[T] {
	return newProducer("defer", func(observer Observer[T], cancel Cancelable) (Disposable, Disposable) {
		s := &anonymousSink[T]{}
		s.init(observer, cancel)

		source, err := callFactory(factory)
		if err != nil {
			s.On(Error[T](err))
			return s, disposable.Nop()
		}

		return s, source.Subscribe(s)
	})
}

func callFactory[T any](factory func() (Observable[T], error)) (source Observable[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = types.PanicError(r)
		}
	}()

	return factory()
}

// Timer emits 0 after due and completes. A nil s uses DefaultScheduler.
func Timer(due time.Duration, s scheduler.Scheduler) Observable[int64] {
	return newProducer("timer", func(observer Observer[int64], cancel Cancelable) (Disposable, Disposable) {
		sk := &anonymousSink[int64]{}
		sk.init(observer, cancel)

		subscription := schedulerOrDefault(s).ScheduleRelative(due, func() Disposable {
			sk.On(Next[int64](0))
			sk.On(Completed[int64]())

			return nil
		})

		return sk, subscription
	})
}

// Interval emits 0, 1, 2, ... every period until disposed. A nil s uses
// DefaultScheduler.
func Interval(period time.Duration, s scheduler.Scheduler) Observable[int64] {
	return newProducer("interval", func(observer Observer[int64], cancel Cancelable) (Disposable, Disposable) {
		sk := &anonymousSink[int64]{}
		sk.init(observer, cancel)

		subscription := scheduler.ScheduleRecursiveRelative(schedulerOrDefault(s), int64(0), period,
			func(tick int64, recurse func(int64, time.Duration)) {
				if sk.isDisposed() {
					return
				}
				sk.forwardOn(Next(tick))
				recurse(tick+1, period)
			})

		return sk, subscription
	})
}

func schedulerOrDefault(s scheduler.Scheduler) scheduler.Scheduler {
	if s == nil {
		return DefaultScheduler()
	}

	return s
}
