// Package subsequence finds the longest strictly decreasing subsequence of an
// integer sequence, exactly and exhaustively.
//
// 🚀 What is it?
//
//	Given A = [9, 5, 7, 3, 8, 2], pick elements in their original order so
//	that every picked element is strictly smaller than the one before it.
//	The longest such pick has length 4, e.g. [9, 7, 3, 2].
//
// ✨ Key features:
//   - LongestDecreasingDP: O(n²) dynamic programme over the chain-length
//     table H, reconstructed greedily left to right (earliest index wins).
//   - LongestDecreasingBruteForce: power-set enumeration in increasing
//     bitmask order, first longest candidate wins. Reference implementation
//     for small n only.
//   - Helpers: RandomSequence (seeded), IsDecreasing (non-strict),
//     IsStrictlyDecreasing, IsSubsequence, Sequence.String.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dpkit/subsequence"
//
//	seq, _ := subsequence.RandomSequence(20, 42, 100)
//	best := subsequence.LongestDecreasingDP(seq)
//	fmt.Println(best, len(best))
//
// Predicates:
//
//	IsDecreasing treats equal neighbours as decreasing ([4, 2, 2, 1] passes).
//	The subsequence algorithms use the strict definition, see
//	IsStrictlyDecreasing. The two are deliberately kept apart.
//
// Complexity:
//
//   - LongestDecreasingDP:         Time O(n²),      Memory O(n)
//   - LongestDecreasingBruteForce: Time O(2ⁿ·n),    Memory O(n)
//
// Errors:
//
//   - ErrNegativeMaxElement: RandomSequence called with maxElement < 0.
//   - ErrNegativeSize:       RandomSequence called with size < 0.
//   - ErrSequenceTooLong:    brute force on more than MaxBruteForceLength elements.
//   - ErrUnknownMethod:      Options.Method is not a known Method.
package subsequence
