// Package collections provides a generic, immutable Collection type and
// package-level functions for combining two collections element by element.
//
// # Overview
//
// The central type is [Collection][T], a generic wrapper around a slice of T.
// Two collections are combined with the package-level functions, which pair
// elements by index and apply a caller-supplied combiner:
//
//	numbers := collections.New(1, 2, 3)
//	words := collections.New("one", "two", "three")
//
//	labels, err := collections.Merge(numbers, words, func(n int, w string) string {
//	    return fmt.Sprintf("%d = %s", n, w)
//	}) // → ["1 = one", "2 = two", "3 = three"]
//
// [Merge] requires both collections to have the same length and fails with an
// error wrapping pairwise.ErrLengthMismatch otherwise. [Zip] truncates to the
// shorter collection instead and cannot fail. [TryMerge] and [TryZip] accept
// combiners that can themselves fail: the first combiner error aborts the
// operation and is returned unchanged, with no partial result. [Pairs] zips
// two collections without a combiner, producing pairwise.Pair values.
//
// # Aligning lengths
//
// When two collections of different lengths should be merged rather than
// truncated, [Collection.Pad] stretches the shorter one to a given size, and
// [Times] generates a synthetic sequence (such as positions 1…n) sized to
// match an existing collection.
//
// # Immutability
//
// A Collection never exposes or modifies its underlying slice: constructors
// copy their input, accessors return copies, and the combination functions
// build new collections. Collection values are therefore safe to share across
// goroutines without locking and safe to reuse after a combination.
//
// # Portability
//
// The Collection surface mirrors common sequence APIs and translates directly
// to other languages: a List combined through a BiFunction in Java, list plus
// zip in Python, Array plus index-wise map in JavaScript.
package collections
