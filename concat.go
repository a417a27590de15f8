package rx

import (
	"iter"

	"github.com/arloliu/rx/disposable"
	"github.com/arloliu/rx/internal/lock"
	"github.com/arloliu/rx/scheduler"
	"github.com/arloliu/rx/types"
)

// Concat subscribes to each source in turn, starting the next one when the
// previous one completes.
//
// Nested Concat sequences are flattened into the running subscription
// instead of being subscribed, so arbitrarily deep right-nested
// concatenations run with constant stack depth.
//
// Example:
//
//	rx.Concat(rx.Of(1, 2), rx.Concat(rx.Just(3), rx.Of(4, 5))) // 1, 2, 3, 4, 5
func Concat[T any](sources ...Observable[T]) Observable[T] {
	return &concatObservable[T]{sources: sources}
}

// ConcatSeq is Concat over a lazily produced, possibly infinite, sequence
// of sources. seq is pulled one source at a time, only after the previous
// source completed, and is stopped when the subscription ends.
func ConcatSeq[T any](seq iter.Seq[Observable[T]]) Observable[T] {
	return &concatObservable[T]{seq: seq}
}

// concatObservable is recognized by running concatenations and expanded in
// place as a new frame.
type concatObservable[T any] struct {
	sources []Observable[T]
	seq     iter.Seq[Observable[T]]
}

func (c *concatObservable[T]) Subscribe(observer Observer[T]) Disposable {
	return newProducer("concat", c.run).Subscribe(observer)
}

func (c *concatObservable[T]) frame() *concatFrame[T] {
	if c.seq != nil {
		next, stop := iter.Pull(c.seq)
		return &concatFrame[T]{next: next, stop: stop, remaining: -1}
	}

	sources := c.sources
	i := 0

	return &concatFrame[T]{
		next: func() (Observable[T], bool) {
			if i >= len(sources) {
				return nil, false
			}
			src := sources[i]
			i++

			return src, true
		},
		stop:      func() {},
		remaining: len(sources),
	}
}

func (c *concatObservable[T]) run(observer Observer[T], cancel Cancelable) (Disposable, Disposable) {
	s := &concatSink[T]{
		gate:    lock.NewAsyncLock(),
		current: disposable.NewSerial(),
		stack:   []*concatFrame[T]{c.frame()},
	}
	s.init(observer, cancel)

	// The first step runs once run has returned and the subscription is
	// bound, so a downstream that terminates during it can dispose us.
	first := scheduler.CurrentThread().Schedule(func() Disposable {
		s.gate.Wait(s.moveNext)
		return nil
	})

	return s, disposable.Create(func() {
		first.Dispose()
		s.current.Dispose()
		s.gate.Wait(s.releaseFrames)
	})
}

// concatFrame is one level of the explicit recursion stack: a source
// generator and the number of sources it has left (-1 if unknown).
type concatFrame[T any] struct {
	next      func() (Observable[T], bool)
	stop      func()
	remaining int
}

func (f *concatFrame[T]) take() (Observable[T], bool) {
	src, ok := f.next()
	if ok && f.remaining > 0 {
		f.remaining--
	}

	return src, ok
}

// concatSink drives the stack. Every step runs inside gate, so the stack is
// only ever touched by one goroutine at a time and a source that completes
// synchronously queues the next step instead of recursing.
type concatSink[T any] struct {
	sink[T]
	gate    *lock.AsyncLock
	current *disposable.SerialDisposable
	stack   []*concatFrame[T]
}

func (s *concatSink[T]) moveNext() {
	for {
		if s.isDisposed() {
			s.releaseFrames()
			return
		}

		if len(s.stack) == 0 {
			s.forwardOn(Completed[T]())
			s.dispose()

			return
		}

		top := s.stack[len(s.stack)-1]
		src, ok, err := s.pull(top)
		if err != nil {
			s.forwardOn(Error[T](err))
			s.dispose()

			return
		}
		if !ok || top.remaining == 0 {
			// Tail position: drop the exhausted frame before descending.
			s.pop()
		}
		if !ok {
			continue
		}

		if nested, isConcat := src.(*concatObservable[T]); isConcat {
			s.stack = append(s.stack, nested.frame())
			continue
		}

		s.subscribe(src)

		return
	}
}

func (s *concatSink[T]) pull(f *concatFrame[T]) (src Observable[T], ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = types.PanicError(r)
		}
	}()

	src, ok = f.take()

	return src, ok, nil
}

func (s *concatSink[T]) pop() {
	n := len(s.stack) - 1
	s.stack[n].stop()
	s.stack[n] = nil
	s.stack = s.stack[:n]
}

func (s *concatSink[T]) releaseFrames() {
	for len(s.stack) > 0 {
		s.pop()
	}
}

func (s *concatSink[T]) subscribe(src Observable[T]) {
	innerSub := disposable.NewSingleAssignment()
	s.current.Set(innerSub)
	innerSub.Set(src.Subscribe(ObserverFunc[T](s.onInner)))
}

func (s *concatSink[T]) onInner(e Event[T]) {
	switch e.Kind {
	case KindNext:
		s.forwardOn(e)
	case KindError:
		s.forwardOn(e)
		s.dispose()
	case KindCompleted:
		s.gate.Wait(s.moveNext)
	}
}
