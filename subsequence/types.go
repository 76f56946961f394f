// Package subsequence defines the Sequence type, method selection and
// sentinel errors for decreasing-subsequence search.
package subsequence

import (
	"errors"
	"strconv"
	"strings"
)

// MaxBruteForceLength is the largest input the power-set enumerator accepts:
// every selection must fit in a 64-bit mask with the top bit spare.
const MaxBruteForceLength = 63

// Sentinel errors for subsequence operations.
var (
	// ErrNegativeMaxElement indicates RandomSequence was given maxElement < 0.
	ErrNegativeMaxElement = errors.New("subsequence: max element must be non-negative")
	// ErrNegativeSize indicates RandomSequence was given a negative size.
	ErrNegativeSize = errors.New("subsequence: size must be non-negative")
	// ErrSequenceTooLong indicates the input exceeds MaxBruteForceLength.
	ErrSequenceTooLong = errors.New("subsequence: sequence too long for power-set enumeration")
	// ErrUnknownMethod indicates an unsupported Method value.
	ErrUnknownMethod = errors.New("subsequence: unknown method")
)

// Sequence is an ordered, finite list of integers. Algorithms never modify
// their input; results are freshly allocated.
type Sequence []int

// String renders the sequence as "[4, 2, 2, 1]". An empty sequence is "[]".
func (s Sequence) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(x))
	}
	sb.WriteByte(']')

	return sb.String()
}

// Method selects the algorithm used by LongestDecreasing.
type Method int

const (
	// MethodDP runs the O(n²) dynamic programme.
	MethodDP Method = iota
	// MethodBruteForce runs the exhaustive power-set enumeration.
	MethodBruteForce
)

// String returns the lower-case method name.
func (m Method) String() string {
	switch m {
	case MethodDP:
		return "dp"
	case MethodBruteForce:
		return "bruteforce"
	default:
		return "method(" + strconv.Itoa(int(m)) + ")"
	}
}

// Options configures LongestDecreasing.
//
// Fields:
//   - Method: which algorithm to run (default MethodDP).
type Options struct {
	Method Method
}

// DefaultOptions returns Options{Method: MethodDP}.
func DefaultOptions() Options {
	return Options{Method: MethodDP}
}
