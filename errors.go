package pairwise

import "errors"

// Sentinel errors returned by the strict combination helpers. Errors are
// wrapped with fmt.Errorf and %w before being returned, so compare with
// errors.Is rather than ==:
//
//	if errors.Is(err, pairwise.ErrLengthMismatch) { ... }
var (
	// ErrLengthMismatch is returned by Merge, TryMerge, and Combine when the
	// two inputs differ in length. The wrapping error reports both observed
	// lengths.
	ErrLengthMismatch = errors.New("pairwise: sequences must have the same length")
)
