package subsequence

// Longest decreasing subsequence: dynamic programming
//
// Description:
//
//	H[i] counts how many strictly smaller elements can follow A[i] in a
//	decreasing chain that starts at i. The answer length is max(H)+1 and the
//	subsequence itself is read off H in a single left-to-right pass.
//
// Algorithm Outline:
//  1. H[n-1] = 0.
//  2. For i = n-2 down to 0:
//     H[i] = max{ H[j]+1 : j > i, A[i] > A[j] }, or 0 when no such j exists.
//  3. want = max(H).
//  4. For i = 0..n-1: if H[i] == want, emit A[i] and decrement want.
//
// The first index with H[i] == want always continues the chain: any earlier
// candidate with A[j] ≥ A[i] would itself have H[j] ≥ want+1.
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n)

// ChainLengths returns the H-table of a: H[i] is the length of the longest
// strictly decreasing subsequence starting at i, minus one.
// An empty input yields an empty, non-nil table.
func ChainLengths(a Sequence) []int {
	n := len(a)
	h := make([]int, n)
	for i := n - 2; i >= 0; i-- {
		for j := i + 1; j < n; j++ {
			if a[i] > a[j] && h[j]+1 > h[i] {
				h[i] = h[j] + 1
			}
		}
	}

	return h
}

// LongestDecreasingDP returns a longest strictly decreasing subsequence of a.
// Among several optimal answers it returns the one that always takes the
// earliest index able to continue the chain. It never fails; an empty input
// yields an empty, non-nil Sequence.
func LongestDecreasingDP(a Sequence) Sequence {
	if len(a) == 0 {
		return Sequence{}
	}
	h := ChainLengths(a)

	want := 0
	for _, v := range h {
		if v > want {
			want = v
		}
	}

	out := make(Sequence, 0, want+1)
	for i := 0; i < len(a) && want >= 0; i++ {
		if h[i] == want {
			out = append(out, a[i])
			want--
		}
	}

	return out
}
