// Package crossing counts monotone paths across a grid of open cells and
// thickets ("the marsh crossing problem").
//
// What:
//
//   - Grid is an immutable rows×columns board of CellOpen / CellThicket cells.
//   - Path is an immutable walker that starts at (0,0) and only moves
//     StepDown or StepRight, never onto a thicket and never out of bounds.
//   - CountPathsBruteForce replays every down/right step pattern.
//   - CountPathsDP fills a rows×columns count table row by row.
//
// Why:
//
//   - Classic lattice-path counting with obstacles; the brute force is the
//     reference, the dynamic programme is the tool.
//
// Complexity:
//
//   - CountPathsBruteForce: O(2^(R+C-2)·(R+C)), Memory: O(1).
//   - CountPathsDP:         O(R·C),             Memory: O(R·C).
//
// Grid text format (ParseGrid, Grid.String):
//
//	..X      "." is open, "X" is a thicket; blanks inside a line are ignored.
//	.X.
//	...
//
// Errors:
//
//   - ErrNilGrid: a nil *Grid was passed.
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDimensionMismatch: flat cell slice does not match rows×columns.
//   - ErrUnknownCell: unrecognised cell value or grid character.
//   - ErrOutOfRange: cell access outside the grid.
//   - ErrInvalidStep: Path.Step in a direction that is not valid.
//   - ErrTooManySteps: brute force on a grid with more than MaxBruteForceSteps steps.
//   - ErrCountOverflow: a path count does not fit in uint64.
//   - ErrInvalidPercent: RandomGrid thicket percentage outside [0,100].
package crossing
