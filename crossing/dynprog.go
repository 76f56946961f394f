package crossing

import (
	"fmt"
	"math/bits"
)

// Marsh crossing: dynamic programming
//
// Description:
//
//	Count[i][j] is the number of open monotone paths from (0,0) to (i,j).
//	A path reaches (i,j) either from above or from the left, so the table
//	fills row-major in one pass.
//
// Algorithm Outline:
//  1. Allocate an R×C table of zeros.
//  2. Count[0][0] = 1 if (0,0) is open, else 0.
//  3. For every other (i,j) in row-major order:
//     Count[i][j] = 0                                   if (i,j) is a thicket
//     Count[i][j] = Count[i-1][j] + Count[i][j-1]       otherwise
//     (terms outside the grid are 0).
//  4. Answer = Count[R-1][C-1].
//
// Complexity:
//
//	Time   = O(R·C)
//	Memory = O(R·C)

// PathCountTable returns the full R×C count table described above.
// An obstructed start yields an all-zero table.
//
// Returns ErrNilGrid, or ErrCountOverflow when any entry of the table is
// unrepresentable in uint64, including entries that never reach the goal.
// Use CountPathsDP when only the goal count matters.
func PathCountTable(g *Grid) ([][]uint64, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	table, overflow := fillCounts(g)
	for idx, over := range overflow {
		if over {
			r, c := idx/g.columns, idx%g.columns
			return nil, fmt.Errorf("%w: at (%d,%d)", ErrCountOverflow, r, c)
		}
	}

	return table, nil
}

// fillCounts builds the count table together with a row-major overflow mark
// per cell. A cell is marked when its true count exceeds uint64, either by
// its own sum carrying or by inheriting a marked neighbour; its table value
// is then meaningless. Unreachable cells are 0 and never marked.
func fillCounts(g *Grid) ([][]uint64, []bool) {
	backing := make([]uint64, g.rows*g.columns)
	overflow := make([]bool, g.rows*g.columns)
	table := make([][]uint64, g.rows)
	for i := range table {
		table[i] = backing[i*g.columns : (i+1)*g.columns]
	}
	if !g.IsOpen(0, 0) {
		return table, overflow
	}
	table[0][0] = 1

	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.columns; j++ {
			if i == 0 && j == 0 {
				continue
			}
			idx := g.index(i, j)
			if g.cells[idx] == CellThicket {
				continue
			}
			var (
				fromAbove, fromLeft uint64
				over                bool
			)
			if i > 0 {
				fromAbove = table[i-1][j]
				over = overflow[idx-g.columns]
			}
			if j > 0 {
				fromLeft = table[i][j-1]
				over = over || overflow[idx-1]
			}
			sum, carry := bits.Add64(fromAbove, fromLeft, 0)
			table[i][j] = sum
			overflow[idx] = over || carry != 0
		}
	}

	return table, overflow
}

// CountPathsDP counts open monotone paths from (0,0) to (Rows-1, Columns-1)
// in O(R·C). It agrees with CountPathsBruteForce on every grid both accept.
// Intermediate counts may exceed uint64; ErrCountOverflow is returned only
// when the goal count itself does.
func CountPathsDP(g *Grid) (uint64, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	table, overflow := fillCounts(g)
	goal := g.index(g.rows-1, g.columns-1)
	if overflow[goal] {
		return 0, fmt.Errorf("%w: at goal (%d,%d)", ErrCountOverflow, g.rows-1, g.columns-1)
	}

	return table[g.rows-1][g.columns-1], nil
}

// CountPaths dispatches to the algorithm selected by opts.Method.
func CountPaths(g *Grid, opts Options) (uint64, error) {
	switch opts.Method {
	case MethodDP:
		return CountPathsDP(g)
	case MethodBruteForce:
		return CountPathsBruteForce(g)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownMethod, opts.Method)
	}
}
