package pairwise_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-pairwise"
)

// FuzzZip checks that Zip yields exactly one element per shared index and
// agrees with the combiner at every position, whatever the two lengths.
//
// Run with: go test -fuzz=FuzzZip .
func FuzzZip(f *testing.F) {
	f.Add([]byte("abc"), []byte("xy"))
	f.Add([]byte{}, []byte{1, 2, 3})
	f.Add([]byte{0xff, 0x00}, []byte{})
	f.Add([]byte("same"), []byte("size"))

	f.Fuzz(func(t *testing.T, a, b []byte) {
		got := pairwise.Zip(a, b, func(x, y byte) int { return int(x) + int(y) })

		n := len(a)
		if len(b) < n {
			n = len(b)
		}
		if len(got) != n {
			t.Fatalf("Zip returned %d elements, want %d", len(got), n)
		}
		for i := range got {
			if want := int(a[i]) + int(b[i]); got[i] != want {
				t.Fatalf("Zip element %d = %d, want %d", i, got[i], want)
			}
		}
	})
}

// FuzzMerge checks the strictness contract: equal lengths always combine
// fully, unequal lengths always fail with ErrLengthMismatch and no result.
func FuzzMerge(f *testing.F) {
	f.Add([]byte("abc"), []byte("xyz"))
	f.Add([]byte("abc"), []byte("x"))
	f.Add([]byte{}, []byte{})
	f.Add([]byte{}, []byte{9})

	f.Fuzz(func(t *testing.T, a, b []byte) {
		got, err := pairwise.Merge(a, b, func(x, y byte) int { return int(x) * int(y) })

		if len(a) != len(b) {
			if !errors.Is(err, pairwise.ErrLengthMismatch) {
				t.Fatalf("Merge error = %v, want ErrLengthMismatch", err)
			}
			if got != nil {
				t.Fatalf("Merge returned a result alongside an error: %v", got)
			}
			return
		}

		if err != nil {
			t.Fatalf("Merge failed on equal lengths: %v", err)
		}
		if len(got) != len(a) {
			t.Fatalf("Merge returned %d elements, want %d", len(got), len(a))
		}
		for i := range got {
			if want := int(a[i]) * int(b[i]); got[i] != want {
				t.Fatalf("Merge element %d = %d, want %d", i, got[i], want)
			}
		}
	})
}

// FuzzPairsUnzip checks that Unzip(Pairs(a, b)) restores both inputs after
// trimming them to their shared length.
func FuzzPairsUnzip(f *testing.F) {
	f.Add([]byte("hello"), []byte("world"))
	f.Add([]byte("longer input"), []byte("short"))
	f.Add([]byte{}, []byte("x"))

	f.Fuzz(func(t *testing.T, a, b []byte) {
		as, bs := pairwise.Unzip(pairwise.Pairs(a, b))

		n := len(a)
		if len(b) < n {
			n = len(b)
		}
		if len(as) != n || len(bs) != n {
			t.Fatalf("Unzip returned lengths %d and %d, want %d", len(as), len(bs), n)
		}
		for i := 0; i < n; i++ {
			if as[i] != a[i] || bs[i] != b[i] {
				t.Fatalf("round trip diverged at index %d: (%v, %v) vs (%v, %v)",
					i, as[i], bs[i], a[i], b[i])
			}
		}
	})
}
