package pairwise

import "fmt"

// Pair groups one element from each of two zipped sequences.
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation of the pair in the form
// "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// MakePair constructs a Pair from its two elements. Its signature matches
// Combiner[A, B, Pair[A, B]], so it can be passed directly to [Merge], [Zip],
// or any other helper expecting a combiner:
//
//	keyed, err := pairwise.Merge(keys, values, pairwise.MakePair[string, int])
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Pairs zips two slices into a slice of Pairs, stopping at the end of the
// shorter slice. It is shorthand for Zip(a, b, MakePair[A, B]).
func Pairs[A, B any](a []A, b []B) []Pair[A, B] {
	return Zip(a, b, MakePair[A, B])
}

// Unzip splits a slice of Pairs back into its two element slices, reversing
// [Pairs]. Both returned slices are newly allocated and have the same length
// as the input.
func Unzip[A, B any](pairs []Pair[A, B]) ([]A, []B) {
	as := make([]A, len(pairs))
	bs := make([]B, len(pairs))
	for i, p := range pairs {
		as[i] = p.First
		bs[i] = p.Second
	}
	return as, bs
}
