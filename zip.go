package pairwise

// Zip combines two slices element by element using fn, stopping at the end
// of the shorter slice: result[i] is fn(a[i], b[i]) for every index both
// slices share. Excess elements of the longer slice are ignored, so Zip
// never fails on a length mismatch. Use [Merge] when unequal lengths should
// be an error instead.
//
// Neither input is modified. If either slice is empty or nil the result is
// an empty (non-nil) slice and fn is never invoked.
func Zip[T, S, R any](a []T, b []S, fn Combiner[T, S, R]) []R {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	out := make([]R, n)
	for i := 0; i < n; i++ {
		out[i] = fn(a[i], b[i])
	}
	return out
}

// TryZip is [Zip] for combiners that can fail. It shares Zip's truncation
// behavior and [TryMerge]'s error behavior: the first non-nil error returned
// by fn stops the zip, the error is returned unchanged, and no partial
// result is produced.
func TryZip[T, S, R any](a []T, b []S, fn TryCombiner[T, S, R]) ([]R, error) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	out := make([]R, n)
	for i := 0; i < n; i++ {
		r, err := fn(a[i], b[i])
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
