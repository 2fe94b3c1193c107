package pairwise

import "fmt"

// Merge combines two equal-length slices element by element using fn and
// returns the results as a new slice: result[i] is fn(a[i], b[i]).
//
// Merge is strict about lengths. When len(a) != len(b) it returns an error
// wrapping [ErrLengthMismatch] that reports both lengths, and fn is never
// invoked. Use [Zip] when truncating to the shorter input is acceptable.
//
// Neither input is modified. Nil slices are treated as empty, and merging
// two empty slices yields an empty (non-nil) slice.
func Merge[T, S, R any](a []T, b []S, fn Combiner[T, S, R]) ([]R, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: first sequence has %d elements, second has %d",
			ErrLengthMismatch, len(a), len(b))
	}

	out := make([]R, len(a))
	for i := range a {
		out[i] = fn(a[i], b[i])
	}
	return out, nil
}

// TryMerge is [Merge] for combiners that can fail. Combination is
// all-or-nothing: the first non-nil error returned by fn stops the merge
// immediately, the error is returned to the caller unchanged, and no partial
// result is produced.
//
// Like Merge, TryMerge rejects unequal-length inputs with an error wrapping
// [ErrLengthMismatch] before invoking fn at all.
func TryMerge[T, S, R any](a []T, b []S, fn TryCombiner[T, S, R]) ([]R, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: first sequence has %d elements, second has %d",
			ErrLengthMismatch, len(a), len(b))
	}

	out := make([]R, len(a))
	for i := range a {
		r, err := fn(a[i], b[i])
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
