package rx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rx/internal/testutil"
)

func TestPublishSubject_Multicast(t *testing.T) {
	subject := NewPublishSubject[int]()
	require.False(t, subject.HasObservers())

	first := testutil.NewRecorder[int]()
	second := testutil.NewRecorder[int]()
	subject.Subscribe(first)
	subject.On(Next(1))

	sub := subject.Subscribe(second)
	require.True(t, subject.HasObservers())
	subject.On(Next(2))

	sub.Dispose()
	subject.On(Next(3))
	subject.On(Completed[int]())

	require.Equal(t, []int{1, 2, 3}, first.Values())
	require.True(t, first.Completed())
	require.Equal(t, []int{2}, second.Values())
	require.False(t, second.Terminated())
	require.False(t, subject.HasObservers())
}

func TestPublishSubject_LateSubscriberGetsTerminal(t *testing.T) {
	boom := errors.New("boom")
	subject := NewPublishSubject[string]()
	subject.On(Next("lost"))
	subject.On(Error[string](boom))
	subject.On(Next("ignored"))

	rec := testutil.NewRecorder[string]()
	subject.Subscribe(rec)

	require.Empty(t, rec.Values())
	require.ErrorIs(t, rec.Err(), boom)
}

func TestPublishSubject_Disposed(t *testing.T) {
	subject := NewPublishSubject[int]()
	rec := testutil.NewRecorder[int]()
	subject.Subscribe(rec)

	subject.Dispose()
	subject.On(Next(1))
	require.Empty(t, rec.Events())

	late := testutil.NewRecorder[int]()
	subject.Subscribe(late)
	require.ErrorIs(t, late.Err(), ErrDisposed)
}

func TestPublishSubject_ThroughOperators(t *testing.T) {
	subject := NewPublishSubject[int]()
	rec := testutil.NewRecorder[int]()
	DistinctUntilChanged[int](subject).Subscribe(rec)

	for _, v := range []int{1, 1, 2, 2, 1} {
		subject.On(Next(v))
	}
	subject.On(Completed[int]())

	require.Equal(t, []int{1, 2, 1}, rec.Values())
	require.True(t, rec.Completed())
	require.False(t, subject.HasObservers())
}
