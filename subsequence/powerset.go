package subsequence

import (
	"fmt"
	"math/bits"
)

// LongestDecreasingBruteForce returns a longest strictly decreasing
// subsequence of a by trying every non-empty selection of indices.
//
// Selections are enumerated as masks 1, 2, …, 2ⁿ−1 where bit i picks a[i];
// the first decreasing candidate that is strictly longer than the current
// best replaces it, so ties resolve to the lowest mask.
//
// Returns ErrSequenceTooLong when len(a) > MaxBruteForceLength.
// Complexity: O(2ⁿ·n) time, O(n) memory. Intended for small n only.
func LongestDecreasingBruteForce(a Sequence) (Sequence, error) {
	n := len(a)
	if n > MaxBruteForceLength {
		return nil, fmt.Errorf("%w: n=%d, max=%d", ErrSequenceTooLong, n, MaxBruteForceLength)
	}
	if n == 0 {
		return Sequence{}, nil
	}

	var (
		last     = uint64(1)<<uint(n) - 1
		bestMask uint64
		bestLen  int
	)
	for mask := uint64(1); mask <= last; mask++ {
		size := bits.OnesCount64(mask)
		if size <= bestLen {
			continue
		}
		if selectionDecreasing(a, mask) {
			bestMask, bestLen = mask, size
		}
	}

	return selection(a, bestMask, bestLen), nil
}

// selectionDecreasing reports whether the elements picked by mask form a
// strictly decreasing sequence.
func selectionDecreasing(a Sequence, mask uint64) bool {
	first := true
	prev := 0
	for mask != 0 {
		i := bits.TrailingZeros64(mask)
		mask &= mask - 1
		if !first && a[i] >= prev {
			return false
		}
		prev, first = a[i], false
	}

	return true
}

// selection materialises the elements picked by mask, in index order.
func selection(a Sequence, mask uint64, size int) Sequence {
	out := make(Sequence, 0, size)
	for mask != 0 {
		i := bits.TrailingZeros64(mask)
		mask &= mask - 1
		out = append(out, a[i])
	}

	return out
}

// LongestDecreasing dispatches to the algorithm selected by opts.Method.
func LongestDecreasing(a Sequence, opts Options) (Sequence, error) {
	switch opts.Method {
	case MethodDP:
		return LongestDecreasingDP(a), nil
	case MethodBruteForce:
		return LongestDecreasingBruteForce(a)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, opts.Method)
	}
}
