package rx

import "github.com/zeebo/xxh3"

// DistinctUntilChanged drops every element equal to the element forwarded
// just before it.
//
// Example:
//
//	rx.DistinctUntilChanged(rx.Of(1, 1, 2, 2, 2, 3, 1)) // 1, 2, 3, 1
func DistinctUntilChanged[T comparable](source Observable[T]) Observable[T] {
	return DistinctUntilChangedBy(source, identityKey[T], equalKeys[T])
}

// DistinctUntilChangedBy drops every element whose key compares equal to the
// key of the element forwarded just before it.
//
// An error from keySelector or comparer terminates the sequence with that
// error.
//
// Parameters:
//   - source: Input sequence
//   - keySelector: Derives the comparison key of an element
//   - comparer: Reports whether two keys are equal
//
// Returns:
//   - Observable[T]: Sequence without consecutive duplicates
func DistinctUntilChangedBy[T, K any](source Observable[T], keySelector func(T) (K, error), comparer func(a, b K) (bool, error)) Observable[T] {
	return newProducer("distinct_until_changed", func(observer Observer[T], cancel Cancelable) (Disposable, Disposable) {
		s := &distinctSink[T, K]{keySelector: keySelector, comparer: comparer}
		s.init(observer, cancel)

		return s, source.Subscribe(s)
	})
}

// DistinctUntilChangedHash is DistinctUntilChangedBy for keys that are
// expensive to retain: only the 64-bit xxh3 digest of the encoded key is
// kept between elements.
//
// Two different keys with the same digest are treated as equal.
//
// Parameters:
//   - source: Input sequence
//   - encode: Serializes the comparison key of an element
//
// Returns:
//   - Observable[T]: Sequence without consecutive duplicates
func DistinctUntilChangedHash[T any](source Observable[T], encode func(T) ([]byte, error)) Observable[T] {
	digest := func(v T) (uint64, error) {
		b, err := encode(v)
		if err != nil {
			return 0, err
		}

		return xxh3.Hash(b), nil
	}

	return DistinctUntilChangedBy(source, digest, equalKeys[uint64])
}

func identityKey[T any](v T) (T, error) {
	return v, nil
}

func equalKeys[K comparable](a, b K) (bool, error) {
	return a == b, nil
}

type distinctSink[T, K any] struct {
	sink[T]
	keySelector func(T) (K, error)
	comparer    func(a, b K) (bool, error)
	current     K
	hasCurrent  bool
}

func (s *distinctSink[T, K]) On(e Event[T]) {
	if e.Kind != KindNext {
		s.forwardOn(e)
		s.dispose()

		return
	}

	key, err := s.keySelector(e.Value)
	if err != nil {
		s.fail(err)
		return
	}

	if s.hasCurrent {
		equal, err := s.comparer(s.current, key)
		if err != nil {
			s.fail(err)
			return
		}
		if equal {
			return
		}
	}

	s.current = key
	s.hasCurrent = true
	s.forwardOn(e)
}

func (s *distinctSink[T, K]) fail(err error) {
	s.forwardOn(Error[T](err))
	s.dispose()
}
