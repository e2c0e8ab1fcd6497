package btree

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/dacapoday/diffset/iterator"
	"github.com/stretchr/testify/require"
)

func TestBTreeSetGet(t *testing.T) {
	var btree BTree[int]

	ids := rand.Perm(1000)
	for _, id := range ids {
		btree.Set(int64(id), id*2)
	}
	require.Equal(t, 1000, btree.Len())

	for _, id := range ids {
		val, found := btree.Get(int64(id))
		require.True(t, found, "Get(%d)", id)
		require.Equal(t, id*2, val)
	}

	_, found := btree.Get(-1)
	require.False(t, found)
	_, found = btree.Get(1000)
	require.False(t, found)
}

func TestBTreeUpdateKeepsLen(t *testing.T) {
	var btree BTree[string]

	for i := range 100 {
		btree.Set(int64(i), "a")
	}
	for i := range 100 {
		btree.Set(int64(i), "b")
	}
	require.Equal(t, 100, btree.Len())

	for id, val := range btree.Items {
		require.Equal(t, "b", val, "id %d", id)
	}
}

func TestBTreeItemsAscending(t *testing.T) {
	var btree BTree[struct{}]

	want := make([]int64, 0, 500)
	for _, id := range rand.Perm(500) {
		btree.Set(int64(id)-250, struct{}{})
	}
	for i := range 500 {
		want = append(want, int64(i)-250)
	}

	var got []int64
	for id := range btree.Items {
		got = append(got, id)
	}
	require.Equal(t, want, got)
}

func TestIterForward(t *testing.T) {
	var btree BTree[int64]

	for _, id := range rand.Perm(300) {
		btree.Set(int64(id)*10, int64(id))
	}

	iter := btree.Iter()
	require.False(t, iter.Valid(), "unpositioned")

	var n int64
	for iter.SeekFirst(); iter.Valid(); iter.Next() {
		require.Equal(t, n*10, iter.Key())
		require.Equal(t, n, iter.Val())
		n++
	}
	require.EqualValues(t, 300, n)
	require.False(t, iter.Next(), "Next after end")
}

func TestIterSeek(t *testing.T) {
	var btree BTree[struct{}]

	for i := range 200 {
		btree.Set(int64(i)*2, struct{}{})
	}

	iter := btree.Iter()
	for i := range 399 {
		ok := iter.Seek(int64(i))
		require.True(t, ok, "Seek(%d)", i)
		require.Equal(t, int64((i+1)/2*2), iter.Key(), "Seek(%d)", i)
	}

	require.False(t, iter.Seek(399))
	require.False(t, iter.Valid())
}

func TestIterSyncAfterMutation(t *testing.T) {
	var btree BTree[struct{}]
	for i := range 50 {
		btree.Set(int64(i)*10, struct{}{})
	}

	iter := btree.Iter()
	require.True(t, iter.Seek(100))

	// inserts on both sides force node splits under the cursor
	for i := range 50 {
		btree.Set(int64(i)*10+5, struct{}{})
	}

	require.True(t, iter.Valid())
	require.Equal(t, int64(100), iter.Key())
	require.True(t, iter.Next())
	require.Equal(t, int64(105), iter.Key())

	btree.Reset()
	require.False(t, iter.Valid())
}

func TestIterClone(t *testing.T) {
	var btree BTree[struct{}]
	for i := range 40 {
		btree.Set(int64(i), struct{}{})
	}

	iter := btree.Iter()
	require.True(t, iter.Seek(20))

	clone := iter.Clone()
	require.True(t, iter.Next())
	require.Equal(t, int64(21), iter.Key())
	require.Equal(t, int64(20), clone.Key())
}

func TestIDSet(t *testing.T) {
	var set IDSet
	require.True(t, set.Empty())

	require.True(t, set.Add(5))
	require.True(t, set.Add(3))
	require.False(t, set.Add(5))
	require.Equal(t, 2, set.Len())
	require.True(t, set.Contains(3))
	require.False(t, set.Contains(4))

	ids, err := iterator.Collect(set.Iter())
	require.NoError(t, err)
	require.Equal(t, []int64{3, 5}, ids)

	set.Reset()
	ids, err = iterator.Collect(set.Iter())
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestKeysLarge(t *testing.T) {
	ids := make([]int64, 0, 2000)
	for _, id := range rand.Perm(2000) {
		ids = append(ids, int64(id))
	}
	set := NewIDSet(ids...)

	got, err := iterator.Collect(set.Iter())
	require.NoError(t, err)
	slices.Sort(ids)
	require.Equal(t, ids, got)
}
