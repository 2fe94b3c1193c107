package collections_test

import (
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-pairwise"
	"github.com/hasbyte1/go-pairwise/collections"
)

func ExampleMerge() {
	numbers := collections.New(1, 2, 3)
	words := collections.New("one", "two", "three")

	labels, err := collections.Merge(numbers, words, func(n int, w string) string {
		return fmt.Sprintf("%d = %s", n, w)
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	labels.Each(func(label string, _ int) { fmt.Println(label) })
	// Output:
	// 1 = one
	// 2 = two
	// 3 = three
}

func ExampleZip() {
	letters := collections.New("A", "B", "C", "D", "E")
	positions := collections.New(1, 2, 3)

	labelled := collections.Zip(letters, positions, func(letter string, pos int) string {
		return fmt.Sprintf("%d. %s", pos, letter)
	})
	fmt.Println(labelled.Implode(", ", func(s string) string { return s }))
	// Output:
	// 1. A, 2. B, 3. C
}

func ExamplePairs() {
	pairs := collections.Pairs(
		collections.New("x", "y"),
		collections.New(10, 20),
	)
	pairs.Each(func(p pairwise.Pair[string, int], _ int) { fmt.Println(p) })
	// Output:
	// (x, 10)
	// (y, 20)
}

func ExampleTimes() {
	letters := collections.New("A", "B", "C", "D")
	positions := collections.Times(letters.Count(), func(i int) int { return i })

	labelled, err := collections.Merge(positions, letters, func(pos int, letter string) string {
		return fmt.Sprintf("%d. %s", pos, letter)
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(labelled.Implode(", ", func(s string) string { return s }))
	// Output:
	// 1. A, 2. B, 3. C, 4. D
}

func ExampleCollection_Pad() {
	names := collections.New("Ann", "Ben", "Cleo")
	scores := collections.New(7, 9)

	// Merge rejects unequal lengths, so stretch the scores first.
	report, err := collections.Merge(names, scores.Pad(names.Count(), 0), func(name string, score int) string {
		return fmt.Sprintf("%s: %d", name, score)
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	report.Each(func(line string, _ int) { fmt.Println(line) })
	// Output:
	// Ann: 7
	// Ben: 9
	// Cleo: 0
}

func ExampleCollection_Implode() {
	c := collections.New(1, 2, 3)
	fmt.Println(c.Implode(" + ", strconv.Itoa))
	// Output:
	// 1 + 2 + 3
}

func ExampleCollection_String() {
	fmt.Println(collections.New(1, 2, 3))
	// Output:
	// [1,2,3]
}
