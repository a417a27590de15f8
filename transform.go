package rx

// Map applies selector to every element. A selector error terminates the
// sequence with that error.
func Map[T, R any](source Observable[T], selector func(T) (R, error)) Observable[R] {
	return newProducer("map", func(observer Observer[R], cancel Cancelable) (Disposable, Disposable) {
		s := &mapSink[T, R]{selector: selector}
		s.init(observer, cancel)

		return s, source.Subscribe(s)
	})
}

type mapSink[T, R any] struct {
	sink[R]
	selector func(T) (R, error)
}

func (s *mapSink[T, R]) On(e Event[T]) {
	switch e.Kind {
	case KindNext:
		v, err := s.selector(e.Value)
		if err != nil {
			s.forwardOn(Error[R](err))
			s.dispose()

			return
		}
		s.forwardOn(Next(v))
	case KindError:
		s.forwardOn(Error[R](e.Err))
		s.dispose()
	case KindCompleted:
		s.forwardOn(Completed[R]())
		s.dispose()
	}
}

// Filter forwards the elements for which predicate returns true. A predicate
// error terminates the sequence with that error.
func Filter[T any](source Observable[T], predicate func(T) (bool, error)) Observable[T] {
	return newProducer("filter", func(observer Observer[T], cancel Cancelable) (Disposable, Disposable) {
		s := &filterSink[T]{predicate: predicate}
		s.init(observer, cancel)

		return s, source.Subscribe(s)
	})
}

type filterSink[T any] struct {
	sink[T]
	predicate func(T) (bool, error)
}

func (s *filterSink[T]) On(e Event[T]) {
	if e.Kind != KindNext {
		s.forwardOn(e)
		s.dispose()

		return
	}

	ok, err := s.predicate(e.Value)
	if err != nil {
		s.forwardOn(Error[T](err))
		s.dispose()

		return
	}
	if ok {
		s.forwardOn(e)
	}
}

// Take forwards the first count elements, then completes and releases the
// source. A non-positive count completes without subscribing to source.
func Take[T any](source Observable[T], count int) Observable[T] {
	if count <= 0 {
		return Empty[T]()
	}

	return newProducer("take", func(observer Observer[T], cancel Cancelable) (Disposable, Disposable) {
		s := &takeSink[T]{remaining: count}
		s.init(observer, cancel)

		return s, source.Subscribe(s)
	})
}

type takeSink[T any] struct {
	sink[T]
	remaining int
}

func (s *takeSink[T]) On(e Event[T]) {
	if e.Kind != KindNext {
		s.forwardOn(e)
		s.dispose()

		return
	}

	if s.remaining <= 0 {
		return
	}
	s.remaining--
	s.forwardOn(e)

	if s.remaining == 0 {
		s.forwardOn(Completed[T]())
		s.dispose()
	}
}
