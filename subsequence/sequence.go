package subsequence

import (
	"fmt"
	"math/rand"
)

// defaultSeed replaces a zero seed so that the "zero" call is still reproducible.
const defaultSeed int64 = 1

// RandomSequence returns size pseudo-random integers drawn uniformly from
// [0, maxElement]. The same (size, seed, maxElement) always yields the same
// sequence; seed 0 is mapped to a fixed default.
// Complexity: O(size).
func RandomSequence(size int, seed int64, maxElement int) (Sequence, error) {
	if maxElement < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeMaxElement, maxElement)
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeSize, size)
	}
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	out := make(Sequence, size)
	for i := range out {
		out[i] = rng.Intn(maxElement + 1)
	}

	return out, nil
}

// IsDecreasing reports whether every element is ≤ its predecessor.
// Equal neighbours are allowed; see IsStrictlyDecreasing for the strict form.
func IsDecreasing(seq Sequence) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i-1] < seq[i] {
			return false
		}
	}

	return true
}

// IsStrictlyDecreasing reports whether every element is < its predecessor.
// This is the order the subsequence algorithms optimise for.
func IsStrictlyDecreasing(seq Sequence) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i-1] <= seq[i] {
			return false
		}
	}

	return true
}

// IsSubsequence reports whether sub can be obtained from of by deleting
// elements without reordering the rest.
// Complexity: O(len(of)).
func IsSubsequence(sub, of Sequence) bool {
	j := 0
	for i := 0; i < len(of) && j < len(sub); i++ {
		if of[i] == sub[j] {
			j++
		}
	}

	return j == len(sub)
}
