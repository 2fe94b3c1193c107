// Package combiners provides ready-made combiner functions for the common
// cases: arithmetic (Sum, Product), ordering (Min, Max, Compare), and string
// concatenation (Concat).
//
// Each function matches the pairwise.Combiner shape, so instantiate and pass
// it directly:
//
//	sums := pairwise.Zip(xs, ys, combiners.Sum[float64])
package combiners

import "golang.org/x/exp/constraints"

// Number is the constraint satisfied by all built-in integer and
// floating-point types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns a + b.
func Sum[T Number](a, b T) T {
	return a + b
}

// Product returns a * b.
func Product[T Number](a, b T) T {
	return a * b
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Compare orders a against b: -1 when a is smaller, +1 when a is larger, and
// 0 when the two are equal. Floating-point NaN values compare as equal to
// everything.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Concat returns the concatenation a + b. It accepts any string-like type.
func Concat[T ~string](a, b T) T {
	return a + b
}
