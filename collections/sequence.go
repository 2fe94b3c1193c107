package collections

// Sequence is the interface satisfied by [Collection][T]: an ordered, finite,
// index-addressable series of elements.
//
// Accept Sequence in your own functions and interfaces so that consumers can
// substitute alternative implementations without depending on the concrete
// *Collection type.
//
// Portability note: this maps to an Iterable plus positional access in
// Java/TypeScript, or a Sequence protocol (__len__/__getitem__) in Python.
type Sequence[T any] interface {
	// All returns a copy of every element as a plain Go slice.
	All() []T

	// Count returns the number of elements.
	Count() int

	// Each calls fn(element, index) for every element, in index order.
	Each(fn func(T, int))

	// Get returns the element at index together with a presence flag.
	// Returns the zero value and false when index is out of range.
	Get(index int) (T, bool)

	// IsEmpty reports whether the sequence contains no elements.
	IsEmpty() bool

	// IsNotEmpty reports whether the sequence contains at least one element.
	IsNotEmpty() bool

	// ToSlice is an alias for All.
	ToSlice() []T
}
