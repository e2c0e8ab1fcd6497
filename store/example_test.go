package store_test

import (
	"fmt"
	"slices"

	"github.com/dacapoday/diffset/store"
)

func Example() {
	var s store.Store
	defer s.Close()

	s.Load(slices.Values([]int64{1, 2, 3, 4}))

	tx := s.Begin()
	tx.Remove(2)
	tx.Add(5)

	iter := tx.Iter()
	for iter.Next() {
		fmt.Println(iter.Value())
	}
	if err := iter.Close(); err != nil {
		fmt.Println("close:", err)
	}

	if err := tx.Commit(); err != nil {
		fmt.Println("commit:", err)
	}
	fmt.Println("len:", s.Len())

	// Output:
	// 1
	// 3
	// 4
	// 5
	// len: 4
}
