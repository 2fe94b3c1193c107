package collections

// This file contains the package-level functions that combine two collections
// element by element.
//
// Go generics do not allow methods to introduce their own type parameters, so
// operations pairing a Collection[T] with a Collection[S] into a Collection[R]
// must be stand-alone functions. The element-wise semantics (strict Merge,
// truncating Zip, all-or-nothing error handling) live in the root pairwise
// package; the functions here adapt them to Collection values.

import (
	"github.com/hasbyte1/go-pairwise"
)

// Merge combines two equal-length collections element by element using fn and
// returns the results as a new collection.
//
// When the collections differ in length, Merge returns an error wrapping
// pairwise.ErrLengthMismatch that reports both lengths, and fn is never
// invoked. Use [Zip] when truncating to the shorter collection is acceptable,
// or [Collection.Pad] to stretch the shorter collection first.
//
//	labels, err := collections.Merge(
//	    collections.New(1, 2, 3),
//	    collections.New("one", "two", "three"),
//	    func(n int, w string) string { return fmt.Sprintf("%d = %s", n, w) },
//	)
func Merge[T, S, R any](a *Collection[T], b *Collection[S], fn pairwise.Combiner[T, S, R]) (*Collection[R], error) {
	elems, err := pairwise.Merge(a.elems, b.elems, fn)
	if err != nil {
		return nil, err
	}
	return &Collection[R]{elems: elems}, nil
}

// Zip combines two collections element by element using fn, stopping at the
// end of the shorter collection. Excess elements of the longer collection are
// ignored, so Zip never fails on a length mismatch.
//
//	products := collections.Zip(
//	    collections.New(1, 2, 3, 4, 5),
//	    collections.New(10, 20, 30),
//	    func(a, b int) int { return a * b },
//	) // → [10, 40, 90]
func Zip[T, S, R any](a *Collection[T], b *Collection[S], fn pairwise.Combiner[T, S, R]) *Collection[R] {
	return &Collection[R]{elems: pairwise.Zip(a.elems, b.elems, fn)}
}

// TryMerge is [Merge] for combiners that can fail. The first non-nil error
// returned by fn aborts the merge, reaches the caller unchanged, and leaves
// no partial result.
func TryMerge[T, S, R any](a *Collection[T], b *Collection[S], fn pairwise.TryCombiner[T, S, R]) (*Collection[R], error) {
	elems, err := pairwise.TryMerge(a.elems, b.elems, fn)
	if err != nil {
		return nil, err
	}
	return &Collection[R]{elems: elems}, nil
}

// TryZip is [Zip] for combiners that can fail, with [TryMerge]'s error
// behavior.
func TryZip[T, S, R any](a *Collection[T], b *Collection[S], fn pairwise.TryCombiner[T, S, R]) (*Collection[R], error) {
	elems, err := pairwise.TryZip(a.elems, b.elems, fn)
	if err != nil {
		return nil, err
	}
	return &Collection[R]{elems: elems}, nil
}

// Pairs zips two collections element by element into pairwise.Pair values,
// stopping at the end of the shorter collection.
//
//	pairs := collections.Pairs(
//	    collections.New("a", "b", "c"),
//	    collections.New(1, 2, 3),
//	) // → [(a, 1), (b, 2), (c, 3)]
func Pairs[A, B any](a *Collection[A], b *Collection[B]) *Collection[pairwise.Pair[A, B]] {
	return &Collection[pairwise.Pair[A, B]]{elems: pairwise.Pairs(a.elems, b.elems)}
}
