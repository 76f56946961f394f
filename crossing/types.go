// Package crossing defines cells, step directions, options, and sentinel
// errors for the crossing subpackage of github.com/katalvlaran/dpkit.
package crossing

import (
	"errors"
	"strconv"
)

// MaxBruteForceSteps is the longest path the brute-force enumerator accepts:
// every step pattern must fit in a 64-bit mask.
const MaxBruteForceSteps = 63

// Sentinel errors for crossing operations.
var (
	// ErrNilGrid indicates a nil *Grid was passed.
	ErrNilGrid = errors.New("crossing: grid is nil")
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("crossing: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("crossing: all rows must have the same length")
	// ErrDimensionMismatch indicates a flat cell slice of the wrong length.
	ErrDimensionMismatch = errors.New("crossing: cell count does not match rows×columns")
	// ErrUnknownCell indicates a cell value or grid character that is neither open nor thicket.
	ErrUnknownCell = errors.New("crossing: unknown cell state")
	// ErrOutOfRange indicates a cell access outside the grid.
	ErrOutOfRange = errors.New("crossing: cell index out of range")
	// ErrInvalidStep indicates a step that leaves the grid or lands on a thicket.
	ErrInvalidStep = errors.New("crossing: invalid step")
	// ErrTooManySteps indicates rows+columns-2 exceeds MaxBruteForceSteps.
	ErrTooManySteps = errors.New("crossing: too many steps for exhaustive enumeration")
	// ErrCountOverflow indicates a path count exceeded the uint64 range.
	ErrCountOverflow = errors.New("crossing: path count overflows uint64")
	// ErrInvalidPercent indicates a thicket percentage outside [0,100].
	ErrInvalidPercent = errors.New("crossing: thicket percent must be within [0,100]")
	// ErrUnknownMethod indicates an unsupported Method value.
	ErrUnknownMethod = errors.New("crossing: unknown method")
)

// Cell is the state of one grid cell.
type Cell uint8

const (
	// CellOpen can be walked on.
	CellOpen Cell = iota
	// CellThicket blocks every path.
	CellThicket
)

// String returns "." for CellOpen and "X" for CellThicket.
func (c Cell) String() string {
	switch c {
	case CellOpen:
		return "."
	case CellThicket:
		return "X"
	default:
		return "cell(" + strconv.Itoa(int(c)) + ")"
	}
}

// Direction is one of the two monotone moves.
type Direction uint8

const (
	// StepDown moves to row+1. It is bit 0 in a step pattern.
	StepDown Direction = iota
	// StepRight moves to column+1. It is bit 1 in a step pattern.
	StepRight
)

// String returns "D" or "R".
func (d Direction) String() string {
	switch d {
	case StepDown:
		return "D"
	case StepRight:
		return "R"
	default:
		return "direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// Method selects the algorithm used by CountPaths.
type Method int

const (
	// MethodDP fills the O(R·C) count table.
	MethodDP Method = iota
	// MethodBruteForce replays every step pattern.
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

// Options configures CountPaths.
type Options struct {
	// Method chooses the counting algorithm.
	Method Method
}

// DefaultOptions returns Options{Method: MethodDP}.
func DefaultOptions() Options {
	return Options{Method: MethodDP}
}
