package rx

import (
	"fmt"
	"sync/atomic"

	"github.com/arloliu/rx/scheduler"
	"github.com/arloliu/rx/types"
)

// runFunc starts an operator for one subscriber. It returns the operator's
// sink and the disposable of everything the sink subscribed to.
type runFunc[T any] func(observer Observer[T], cancel Cancelable) (sink Disposable, subscription Disposable)

// producer is the Observable behind every operator in this package.
type producer[T any] struct {
	name string
	run  runFunc[T]
}

func newProducer[T any](name string, run runFunc[T]) Observable[T] {
	return &producer[T]{name: name, run: run}
}

// Subscribe wires observer to a fresh run of the operator.
//
// The run executes on the current-thread trampoline, so subscriptions made
// from inside another subscription's callbacks are queued instead of
// deepening the stack.
func (p *producer[T]) Subscribe(observer Observer[T]) Disposable {
	rt := currentRuntime()
	disposer := newSinkDisposer(p.name, rt)
	detach := newAutoDetach(p.name, observer, disposer, rt)

	if !scheduler.IsScheduleRequired() {
		p.start(detach, disposer)
		return disposer
	}

	scheduler.CurrentThread().Schedule(func() Disposable {
		p.start(detach, disposer)
		return nil
	})

	return disposer
}

func (p *producer[T]) start(observer Observer[T], disposer *sinkDisposer) {
	defer func() {
		if r := recover(); r != nil {
			observer.On(Error[T](types.PanicError(r)))
			disposer.Dispose()
		}
	}()

	sink, subscription := p.run(observer, disposer)
	disposer.set(sink, subscription)
}

const (
	disposerDisposed uint32 = 1 << iota
	disposerSet
)

// sinkDisposer binds a sink and its upstream subscription to a single
// cancellation handle. Dispose may run before, during or after the binding;
// whichever comes second releases both.
type sinkDisposer struct {
	state        atomic.Uint32
	sink         Disposable
	subscription Disposable
	name         string
	rt           *runtime
	counted      bool
}

var _ Cancelable = (*sinkDisposer)(nil)

func newSinkDisposer(name string, rt *runtime) *sinkDisposer {
	rt.metrics.RecordSubscribe(name)

	return &sinkDisposer{name: name, rt: rt, counted: tracker.Acquire()}
}

func (d *sinkDisposer) set(sink, subscription Disposable) {
	d.sink = sink
	d.subscription = subscription

	prev := d.state.Or(disposerSet)
	if prev&disposerSet != 0 {
		panic(fmt.Errorf("%w: %s", types.ErrSinkAlreadyBound, d.name))
	}

	if prev&disposerDisposed != 0 {
		sink.Dispose()
		subscription.Dispose()
	}
}

func (d *sinkDisposer) IsDisposed() bool {
	return d.state.Load()&disposerDisposed != 0
}

func (d *sinkDisposer) Dispose() {
	prev := d.state.Or(disposerDisposed)
	if prev&disposerDisposed != 0 {
		return
	}

	tracker.Release(d.counted)
	d.rt.metrics.RecordDispose(d.name)

	if prev&disposerSet != 0 {
		d.sink.Dispose()
		d.subscription.Dispose()
	}
}

// autoDetach sits between an operator and its subscriber. It lets through at
// most one terminal event, releases the subscription when that event has been
// delivered, and converts a panic raised by the subscriber into an Error event.
type autoDetach[T any] struct {
	name     string
	observer Observer[T]
	upstream Disposable
	stopped  atomic.Bool
	rt       *runtime
}

func newAutoDetach[T any](name string, observer Observer[T], upstream Disposable, rt *runtime) *autoDetach[T] {
	return &autoDetach[T]{name: name, observer: observer, upstream: upstream, rt: rt}
}

func (a *autoDetach[T]) On(e Event[T]) {
	if e.IsStopEvent() {
		if !a.stopped.CompareAndSwap(false, true) {
			a.rt.reportDropped(a.name, "after_terminal")
			return
		}
		a.deliver(e)
		a.upstream.Dispose()

		return
	}

	if a.stopped.Load() {
		a.rt.reportDropped(a.name, "after_terminal")
		return
	}
	a.deliver(e)
}

func (a *autoDetach[T]) deliver(e Event[T]) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		err := types.PanicError(r)
		if e.Kind == KindNext && a.stopped.CompareAndSwap(false, true) {
			a.deliverPanicError(err)
		} else {
			a.rt.logger.Error("observer panicked on terminal event", "operator", a.name, "error", err)
		}
		a.upstream.Dispose()
	}()

	a.observer.On(e)
}

func (a *autoDetach[T]) deliverPanicError(err error) {
	defer func() {
		if r := recover(); r != nil {
			a.rt.logger.Error("observer panicked while handling a panic error",
				"operator", a.name,
				"error", err,
				"panic", types.PanicError(r))
		}
	}()

	a.observer.On(Error[T](err))
}
