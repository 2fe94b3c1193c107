package pairwise

type (
	// Combiner merges one element from each of two sequences into a single
	// result element. It must be a pure function of its arguments: the
	// combination helpers invoke it exactly once per index, in ascending
	// index order, and make no other guarantees about the call site.
	Combiner[T, S, R any] func(T, S) R

	// TryCombiner is a [Combiner] that may fail. Returning a non-nil error
	// aborts the surrounding combination; see [TryMerge] and [TryZip].
	TryCombiner[T, S, R any] func(T, S) (R, error)
)
