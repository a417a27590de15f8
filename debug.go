package rx

import (
	"github.com/google/uuid"

	"github.com/arloliu/rx/disposable"
)

// Debug logs the lifecycle of every subscription to source through the
// runtime logger at debug level: subscribe, each event, and dispose.
// Each subscription is tagged with a random id so interleaved subscriptions
// can be told apart.
//
// Parameters:
//   - source: Sequence to trace
//   - name: Label included in every log entry
//
// Returns:
//   - Observable[T]: source, unchanged
func Debug[T any](source Observable[T], name string) Observable[T] {
	return newProducer("debug", func(observer Observer[T], cancel Cancelable) (Disposable, Disposable) {
		rt := currentRuntime()
		s := &debugSink[T]{rt: rt, name: name, id: uuid.NewString()}
		s.init(observer, cancel)

		rt.logger.Debug("subscribed", "name", name, "subscription", s.id)
		subscription := source.Subscribe(s)

		return s, disposable.NewBinary(subscription, disposable.Create(func() {
			rt.logger.Debug("disposed", "name", name, "subscription", s.id)
		}))
	})
}

type debugSink[T any] struct {
	sink[T]
	rt   *runtime
	name string
	id   string
}

func (s *debugSink[T]) On(e Event[T]) {
	s.rt.logger.Debug("event", "name", s.name, "subscription", s.id, "event", e.String())

	s.forwardOn(e)
	if e.IsStopEvent() {
		s.dispose()
	}
}
