package rx

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rx/internal/testutil"
)

func TestMap(t *testing.T) {
	rec := testutil.NewRecorder[string]()
	Map(Of(1, 2, 3), func(v int) (string, error) {
		return strconv.Itoa(v * 2), nil
	}).Subscribe(rec)

	require.Equal(t, []string{"2", "4", "6"}, rec.Values())
	require.True(t, rec.Completed())
}

func TestMap_SelectorError(t *testing.T) {
	boom := errors.New("selector")
	rec := testutil.NewRecorder[int]()
	Map(Of(1, 2, 3), func(v int) (int, error) {
		if v == 2 {
			return 0, boom
		}

		return v, nil
	}).Subscribe(rec)

	require.Equal(t, []int{1}, rec.Values())
	require.ErrorIs(t, rec.Err(), boom)
	require.Zero(t, rec.Violations())
}

func TestMap_SelectorPanic(t *testing.T) {
	rec := testutil.NewRecorder[int]()
	Map(Of(1, 2, 3), func(v int) (int, error) {
		if v == 2 {
			panic("selector panicked")
		}

		return v, nil
	}).Subscribe(rec)

	require.Equal(t, []int{1}, rec.Values())
	require.ErrorIs(t, rec.Err(), ErrPanic)
	require.Zero(t, rec.Violations())
}

func TestFilter(t *testing.T) {
	rec := testutil.NewRecorder[int]()
	Filter(Of(1, 2, 3, 4, 5), func(v int) (bool, error) {
		return v%2 == 1, nil
	}).Subscribe(rec)

	require.Equal(t, []int{1, 3, 5}, rec.Values())
	require.True(t, rec.Completed())

	boom := errors.New("predicate")
	failing := testutil.NewRecorder[int]()
	Filter(Of(1, 2), func(int) (bool, error) { return false, boom }).Subscribe(failing)
	require.ErrorIs(t, failing.Err(), boom)
}

func TestTake(t *testing.T) {
	t.Run("fewer than available", func(t *testing.T) {
		rec := testutil.NewRecorder[int]()
		Take(Of(1, 2, 3, 4), 2).Subscribe(rec)

		require.Equal(t, []int{1, 2}, rec.Values())
		require.True(t, rec.Completed())
	})

	t.Run("more than available", func(t *testing.T) {
		rec := testutil.NewRecorder[int]()
		Take(Of(1), 3).Subscribe(rec)

		require.Equal(t, []int{1}, rec.Values())
		require.True(t, rec.Completed())
	})

	t.Run("zero does not subscribe", func(t *testing.T) {
		subscribed := false
		source := Defer(func() (Observable[int], error) {
			subscribed = true
			return Never[int](), nil
		})

		rec := testutil.NewRecorder[int]()
		Take(source, 0).Subscribe(rec)

		require.True(t, rec.Completed())
		require.False(t, subscribed)
	})

	t.Run("releases infinite source", func(t *testing.T) {
		configureForTest(t, TestConfig())
		base := ResourceCount()

		subject := NewPublishSubject[int]()
		rec := testutil.NewRecorder[int]()
		Take[int](subject, 2).Subscribe(rec)

		subject.On(Next(1))
		subject.On(Next(2))
		subject.On(Next(3))

		require.Equal(t, []int{1, 2}, rec.Values())
		require.False(t, subject.HasObservers())
		require.Equal(t, base, ResourceCount())
	})
}
