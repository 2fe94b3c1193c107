// Package pairwise provides generic, framework-agnostic helpers for combining
// two sequences element by element, in the tradition of Python's zip builtin
// and Java's BiFunction-driven collection merging.
//
// # Merge vs Zip
//
// The package is built around one deliberate contrast:
//
//   - [Merge] is strict: both inputs must have the same length, otherwise it
//     returns [ErrLengthMismatch] reporting both lengths.
//   - [Zip] is lenient: it silently truncates to the shorter input and never
//     fails on a length mismatch.
//
// Both apply a caller-supplied [Combiner] to the elements at each index, in
// ascending index order, and return a freshly allocated result slice:
//
//	labels, err := pairwise.Merge(
//	    []int{1, 2, 3},
//	    []string{"one", "two", "three"},
//	    func(n int, w string) string { return fmt.Sprintf("%d = %s", n, w) },
//	) // → ["1 = one", "2 = two", "3 = three"]
//
//	products := pairwise.Zip(
//	    []int{1, 2, 3, 4, 5},
//	    []int{10, 20, 30},
//	    func(a, b int) int { return a * b },
//	) // → [10, 40, 90]
//
// # Failing combiners
//
// [TryMerge] and [TryZip] accept a [TryCombiner] that may return an error.
// Combination is all-or-nothing: the first error aborts the operation, the
// error reaches the caller unchanged, and no partial result is returned.
//
// # Pairs and maps
//
// When no combiner is needed, [Pairs] zips two slices into [Pair] values and
// [Unzip] reverses it. [Combine] and [ZipToMap] build maps from parallel
// key/value slices — Combine strictly (equal lengths required), ZipToMap
// leniently (truncate to the shorter input).
//
// # Purity
//
// Every function here is a pure computation: inputs are never modified,
// outputs are newly allocated, nothing is logged, and no goroutines are
// involved. Calls are safe from concurrent goroutines as long as the
// combiner itself does not share mutable state.
//
// # Portability
//
// All helpers follow the binary map/zip pattern and translate directly to
// other languages: Python's zip + comprehensions, Java streams with a
// BiFunction, JavaScript's Array.prototype.map over index pairs. The strict
// Merge has no direct builtin equivalent in those languages — port it as a
// length guard followed by the lenient zip.
package pairwise
