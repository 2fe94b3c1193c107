package pairwise

import "fmt"

// Combine builds a map from a slice of keys and a slice of values, pairing
// them up by index. Like [Merge] it is strict about lengths: when the slices
// differ in length it returns an error wrapping [ErrLengthMismatch].
//
// If keys contains duplicates, the value paired with the last occurrence
// wins.
func Combine[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys paired with %d values",
			ErrLengthMismatch, len(keys), len(values))
	}

	out := make(map[K]V, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}

// ZipToMap is the lenient counterpart of [Combine]: it pairs keys with
// values by index, stopping at the end of the shorter slice, and never fails
// on a length mismatch. Duplicate keys follow the same last-wins rule.
func ZipToMap[K comparable, V any](keys []K, values []V) map[K]V {
	n := len(keys)
	if len(values) < n {
		n = len(values)
	}

	out := make(map[K]V, n)
	for i := 0; i < n; i++ {
		out[keys[i]] = values[i]
	}
	return out
}
