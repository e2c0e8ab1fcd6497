package diffsets

import (
	"testing"

	"github.com/dacapoday/diffset/iterator"
	"github.com/stretchr/testify/require"
)

func TestDiffSetsAddRemove(t *testing.T) {
	var ds DiffSets
	require.True(t, ds.Empty())

	require.True(t, ds.Add(1))
	require.False(t, ds.Add(1))
	require.True(t, ds.Remove(2))
	require.False(t, ds.Remove(2))

	require.True(t, ds.IsAdded(1))
	require.True(t, ds.IsRemoved(2))
	require.False(t, ds.IsAdded(2))
	require.Equal(t, 0, ds.Delta())
	require.Equal(t, 1, ds.Added().Len())
	require.Equal(t, 1, ds.Removed().Len())
}

func TestDiffSetsCancel(t *testing.T) {
	var ds DiffSets

	ds.Add(1)
	require.True(t, ds.Remove(1), "remove cancels add")
	require.False(t, ds.IsAdded(1))
	require.False(t, ds.IsRemoved(1))
	require.True(t, ds.Empty())

	ds.Remove(2)
	require.True(t, ds.Add(2), "add cancels remove")
	require.True(t, ds.Empty())

	// a cancelled id can be changed again
	require.True(t, ds.Add(2))
	require.True(t, ds.IsAdded(2))
	require.Equal(t, 1, ds.Delta())
}

func TestDiffSetsChanges(t *testing.T) {
	var ds DiffSets
	ds.Add(30)
	ds.Remove(10)
	ds.Add(20)
	ds.Add(40)
	ds.Remove(40)

	type pair struct {
		id  int64
		add bool
	}
	var got []pair
	for id, add := range ds.Changes {
		got = append(got, pair{id, add})
	}
	require.Equal(t, []pair{{10, false}, {20, true}, {30, true}}, got)
}

func TestDiffSetsViews(t *testing.T) {
	var ds DiffSets
	for i := range 100 {
		if i%3 == 0 {
			ds.Remove(int64(i))
		} else {
			ds.Add(int64(i))
		}
	}

	added, err := iterator.Collect(ds.Added().Iter())
	require.NoError(t, err)
	removed, err := iterator.Collect(ds.Removed().Iter())
	require.NoError(t, err)

	require.Len(t, added, ds.Added().Len())
	require.Len(t, removed, ds.Removed().Len())
	for _, id := range added {
		require.NotZero(t, id%3)
		require.True(t, ds.Added().Contains(id))
		require.False(t, ds.Removed().Contains(id))
	}
	for _, id := range removed {
		require.Zero(t, id%3)
	}
}

func TestDiffSetsAugment(t *testing.T) {
	var ds DiffSets
	ds.Remove(2)
	ds.Add(5)
	ds.Add(3)

	got, err := iterator.Collect(ds.Augment(iterator.FromSlice(1, 2, 3, 4)))
	require.NoError(t, err)
	require.Equal(t, []int64{1, 4, 3, 5}, got)
}

func TestDiffSetsReset(t *testing.T) {
	var ds DiffSets
	ds.Add(1)
	ds.Remove(2)
	ds.Reset()

	require.True(t, ds.Empty())
	require.False(t, ds.IsAdded(1))

	got, err := iterator.Collect(ds.Augment(iterator.FromSlice(1, 2)))
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, got)
}
