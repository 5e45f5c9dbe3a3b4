// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package inttrie_test

import (
	"context"
	"fmt"
	"os"

	"github.com/gaissmai/inttrie"
)

var input = []struct {
	idx  int32
	name string
}{
	{500, "five hundred"},
	{-10, "minus ten"},
	{1, "one"},
	{0, "zero"},
	{-500, "minus five hundred"},
	{10, "ten"},
	{-1, "minus one"},
}

func ExampleTrie_All() {
	var trie *inttrie.Trie[string]
	for _, item := range input {
		trie = trie.Assign(item.idx, item.name)
	}

	for idx, name := range trie.All() {
		fmt.Printf("%4d\t%s\n", idx, name)
	}

	// Output:
	// -500	minus five hundred
	//  -10	minus ten
	//   -1	minus one
	//    0	zero
	//    1	one
	//   10	ten
	//  500	five hundred
}

func ExampleTrie_Assign_persistence() {
	v1 := new(inttrie.Trie[int]).Assign(1, 1).Assign(2, 2)
	v2 := v1.Assign(3, 3).Delete(1)

	fmt.Println(v1)
	fmt.Println(v2)

	// Output:
	// [1=1, 2=2]
	// [2=2, 3=3]
}

func ExampleBuilder() {
	var b inttrie.Builder[string]

	b.Add("a")
	b.Add("b")
	snap := b.Build()

	b.Add("c")

	fmt.Println(snap)
	fmt.Println(b.Build())

	// Output:
	// [0=a, 1=b]
	// [0=a, 1=b, 2=c]
}

func ExampleTrie_Dump() {
	var trie *inttrie.Trie[int]
	for _, idx := range []int32{0, 1024, 1025} {
		trie = trie.Assign(idx, int(idx))
	}

	if err := trie.Dump(os.Stdout); err != nil {
		panic(err)
	}

	// Output:
	// ### size(3), nodes(6)
	// [MULTI] shift(10) slots(#2): [0 1]
	// .[LEAF] 0=0
	// .[SINGLE] shift(5) slot(0)
	// ..[MULTI] shift(0) slots(#2): [0 1]
	// ...[LEAF] 1024=1024
	// ...[LEAF] 1025=1025
}

func ExampleParallelReduce() {
	var b inttrie.Builder[int]
	for i := range 1_000 {
		b.Add(i)
	}

	sum, err := inttrie.ParallelReduce(context.Background(), b.Build(), 4, 0,
		func(acc int, _ int32, val int) int { return acc + val },
		func(left, right int) int { return left + right },
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(sum)

	// Output:
	// 499500
}
