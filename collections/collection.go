package collections

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Collection is a generic, immutable sequence of elements of type T.
//
// It is the sequence type consumed by the package-level combination functions
// ([Merge], [Zip], [TryMerge], [TryZip], [Pairs]): two collections are paired
// up index by index and folded into a new collection through a caller-supplied
// combiner. No method writes to the underlying slice, so a Collection can be
// read from any number of goroutines at once and reused freely across
// combinations.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Times(3, func(i int) int { return i * 10 })
//	c := collections.Empty[int]()
//
// # Combining two collections
//
// Go generics do not allow methods to introduce new type parameters, so
// operations pairing a Collection[T] with a Collection[S] are exposed as
// package-level functions:
//
//	labels, err := collections.Merge(numbers, words, func(n int, w string) string {
//	    return fmt.Sprintf("%d = %s", n, w)
//	})
type Collection[T any] struct {
	elems []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New builds a collection from a variadic list of elements (copied).
func New[T any](elems ...T) *Collection[T] {
	return From(elems)
}

// From builds a collection from a slice. The slice is copied, so later writes
// to it do not show through.
func From[T any](elems []T) *Collection[T] {
	dst := make([]T, len(elems))
	copy(dst, elems)
	return &Collection[T]{elems: dst}
}

// Times builds a collection of n elements by calling fn with each ordinal
// from 1 to n. A non-positive n yields an empty collection.
//
// Times is handy for generating a position sequence to combine against:
//
//	positions := collections.Times(3, func(i int) int { return i })
//	// → [1, 2, 3]
func Times[T any](n int, fn func(int) T) *Collection[T] {
	if n <= 0 {
		return Empty[T]()
	}
	elems := make([]T, n)
	for i := range elems {
		elems[i] = fn(i + 1)
	}
	return &Collection[T]{elems: elems}
}

// Empty builds a collection of type T with no elements.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{elems: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Inspection
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements in the collection.
func (c *Collection[T]) Count() int { return len(c.elems) }

// IsEmpty reports whether the collection contains no elements.
func (c *Collection[T]) IsEmpty() bool { return len(c.elems) == 0 }

// IsNotEmpty reports whether the collection has at least one element.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.elems) > 0 }

// Has reports whether index is a valid position in the collection.
func (c *Collection[T]) Has(index int) bool {
	return index >= 0 && index < len(c.elems)
}

// ─────────────────────────────────────────────────────────────────────────────
// Element access
// ─────────────────────────────────────────────────────────────────────────────

// All returns the elements as a plain slice. The slice is a copy; modifying
// it does not affect the collection.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.elems))
	copy(out, c.elems)
	return out
}

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if !c.Has(index) {
		return zero, false
	}
	return c.elems[index], true
}

// First returns the first element, or the first element matching fns[0] when
// a predicate is given. Returns the zero value and false when the collection
// is empty or nothing matches.
func (c *Collection[T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, elem := range c.elems {
			if fns[0](elem) {
				return elem, true
			}
		}
		return zero, false
	}
	if len(c.elems) == 0 {
		return zero, false
	}
	return c.elems[0], true
}

// Last returns the last element, or the last element matching fns[0] when a
// predicate is given. Returns the zero value and false when the collection is
// empty or nothing matches.
func (c *Collection[T]) Last(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		found, matched := zero, false
		for _, elem := range c.elems {
			if fns[0](elem) {
				found, matched = elem, true
			}
		}
		return found, matched
	}
	if len(c.elems) == 0 {
		return zero, false
	}
	return c.elems[len(c.elems)-1], true
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(element, index) for every element, in index order.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, elem := range c.elems {
		fn(elem, i)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Alignment
// ─────────────────────────────────────────────────────────────────────────────

// Pad grows the collection to size elements by appending value, returning a
// new collection. A negative size pads at the front instead. When the
// collection already has at least |size| elements, an unchanged copy is
// returned.
//
// Pad bridges the gap between lenient and strict combination: pad the
// shorter of two collections to the longer one's Count and [Merge] accepts
// them.
//
//	collections.New(1, 2, 3).Pad(5, 0)  // → [1, 2, 3, 0, 0]
//	collections.New(1, 2, 3).Pad(-5, 0) // → [0, 0, 1, 2, 3]
func (c *Collection[T]) Pad(size int, value T) *Collection[T] {
	n := size
	if n < 0 {
		n = -n
	}
	if n <= len(c.elems) {
		return From(c.elems)
	}
	fill := make([]T, n-len(c.elems))
	for i := range fill {
		fill[i] = value
	}
	out := make([]T, 0, n)
	if size < 0 {
		out = append(append(out, fill...), c.elems...)
	} else {
		out = append(append(out, c.elems...), fill...)
	}
	return &Collection[T]{elems: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Rendering
// ─────────────────────────────────────────────────────────────────────────────

// Implode joins all elements into a string using sep, converting each element
// with fn.
func (c *Collection[T]) Implode(sep string, fn func(T) string) string {
	parts := make([]string, len(c.elems))
	for i, elem := range c.elems {
		parts[i] = fn(elem)
	}
	return strings.Join(parts, sep)
}

// ToJSON serialises the elements to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.elems)
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.elems)
	}
	return string(b)
}
