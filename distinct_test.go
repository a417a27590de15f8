package rx

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rx/internal/testutil"
)

func TestDistinctUntilChanged(t *testing.T) {
	rec := testutil.NewRecorder[int]()
	DistinctUntilChanged(Of(1, 1, 2, 2, 2, 3, 1)).Subscribe(rec)

	require.Equal(t, []int{1, 2, 3, 1}, rec.Values())
	require.True(t, rec.Completed())
}

func TestDistinctUntilChanged_Idempotent(t *testing.T) {
	source := Of(5, 5, 6, 5, 5, 7, 7)

	once := testutil.NewRecorder[int]()
	DistinctUntilChanged(source).Subscribe(once)

	twice := testutil.NewRecorder[int]()
	DistinctUntilChanged(DistinctUntilChanged(source)).Subscribe(twice)

	require.Equal(t, once.Values(), twice.Values())
	require.Equal(t, []int{5, 6, 5, 7}, once.Values())
}

func TestDistinctUntilChangedBy(t *testing.T) {
	t.Run("custom key and comparer", func(t *testing.T) {
		rec := testutil.NewRecorder[string]()
		DistinctUntilChangedBy(Of("a", "A", "b", "B", "a"),
			func(s string) (string, error) { return strings.ToLower(s), nil },
			func(a, b string) (bool, error) { return a == b, nil },
		).Subscribe(rec)

		require.Equal(t, []string{"a", "b", "a"}, rec.Values())
	})

	t.Run("key selector error", func(t *testing.T) {
		boom := errors.New("key")
		rec := testutil.NewRecorder[int]()
		DistinctUntilChangedBy(Of(1, 2, 3),
			func(v int) (int, error) {
				if v == 2 {
					return 0, boom
				}

				return v, nil
			},
			func(a, b int) (bool, error) { return a == b, nil },
		).Subscribe(rec)

		require.Equal(t, []int{1}, rec.Values())
		require.ErrorIs(t, rec.Err(), boom)
		require.Zero(t, rec.Violations())
	})

	t.Run("comparer error", func(t *testing.T) {
		boom := errors.New("compare")
		rec := testutil.NewRecorder[int]()
		DistinctUntilChangedBy(Of(1, 2),
			func(v int) (int, error) { return v, nil },
			func(a, b int) (bool, error) { return false, boom },
		).Subscribe(rec)

		require.Equal(t, []int{1}, rec.Values())
		require.ErrorIs(t, rec.Err(), boom)
	})

	t.Run("source error passes through", func(t *testing.T) {
		boom := errors.New("source")
		rec := testutil.NewRecorder[int]()
		DistinctUntilChanged(Concat(Of(1, 1), Throw[int](boom))).Subscribe(rec)

		require.Equal(t, []int{1}, rec.Values())
		require.ErrorIs(t, rec.Err(), boom)
	})
}

func TestDistinctUntilChangedHash(t *testing.T) {
	type point struct{ x, y int }

	encode := func(p point) ([]byte, error) {
		return []byte{byte(p.x), byte(p.y)}, nil
	}

	rec := testutil.NewRecorder[point]()
	DistinctUntilChangedHash(Of(point{1, 1}, point{1, 1}, point{2, 1}, point{2, 1}, point{1, 1}), encode).Subscribe(rec)

	require.Equal(t, []point{{1, 1}, {2, 1}, {1, 1}}, rec.Values())

	boom := errors.New("encode")
	failing := testutil.NewRecorder[string]()
	DistinctUntilChangedHash(Of("a"), func(string) ([]byte, error) { return nil, boom }).Subscribe(failing)
	require.ErrorIs(t, failing.Err(), boom)
}
