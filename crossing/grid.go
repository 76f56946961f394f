package crossing

import (
	"fmt"
	"math/rand"
	"strings"
)

// defaultSeed replaces a zero seed so that RandomGrid stays reproducible.
const defaultSeed int64 = 1

// Grid is a rows×columns board of cells. It is immutable once built.
// Cells are stored row-major: cells[row*columns+column].
type Grid struct {
	rows, columns int
	cells         []Cell
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice,
// addressed as cells[row][column]. The input is copied.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrUnknownCell on bad input.
// Complexity: O(R×C) time and memory.
func NewGrid(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, columns := len(cells), len(cells[0])
	flat := make([]Cell, 0, rows*columns)
	for r, row := range cells {
		if len(row) != columns {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), columns)
		}
		flat = append(flat, row...)
	}

	return newGrid(rows, columns, flat)
}

// NewGridFromFlat constructs a Grid from a row-major slice of rows*columns
// cells. The input is copied.
// Complexity: O(R×C) time and memory.
func NewGridFromFlat(rows, columns int, cells []Cell) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != rows*columns {
		return nil, fmt.Errorf("%w: got %d cells for %d×%d", ErrDimensionMismatch, len(cells), rows, columns)
	}

	return newGrid(rows, columns, append([]Cell(nil), cells...))
}

// newGrid validates cell states and takes ownership of flat.
func newGrid(rows, columns int, flat []Cell) (*Grid, error) {
	for i, c := range flat {
		if c != CellOpen && c != CellThicket {
			return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownCell, c, i/columns, i%columns)
		}
	}

	return &Grid{rows: rows, columns: columns, cells: flat}, nil
}

// ParseGrid builds a Grid from text lines where '.' is open and 'X' (or 'x')
// is a thicket. Blanks inside a line are ignored, empty lines are skipped.
func ParseGrid(lines []string) (*Grid, error) {
	cells := make([][]Cell, 0, len(lines))
	for n, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]Cell, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '.':
				row = append(row, CellOpen)
			case 'X', 'x':
				row = append(row, CellThicket)
			case ' ', '\t':
			default:
				return nil, fmt.Errorf("%w: %q on line %d", ErrUnknownCell, ch, n+1)
			}
		}
		cells = append(cells, row)
	}

	return NewGrid(cells)
}

// RandomGrid builds a rows×columns grid where each cell is a thicket with
// probability thicketPercent/100. The start (0,0) and the goal
// (rows-1, columns-1) are always open. Seed 0 maps to a fixed default.
func RandomGrid(rows, columns, thicketPercent int, seed int64) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, ErrEmptyGrid
	}
	if thicketPercent < 0 || thicketPercent > 100 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPercent, thicketPercent)
	}
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	flat := make([]Cell, rows*columns)
	for i := range flat {
		if rng.Intn(100) < thicketPercent {
			flat[i] = CellThicket
		}
	}
	flat[0] = CellOpen
	flat[len(flat)-1] = CellOpen

	return &Grid{rows: rows, columns: columns, cells: flat}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// InBounds reports whether (row, column) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, column int) bool {
	return row >= 0 && row < g.rows && column >= 0 && column < g.columns
}

// Get returns the cell at (row, column), or ErrOutOfRange.
// Complexity: O(1).
func (g *Grid) Get(row, column int) (Cell, error) {
	if !g.InBounds(row, column) {
		return 0, fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfRange, row, column, g.rows, g.columns)
	}

	return g.cells[g.index(row, column)], nil
}

// IsOpen reports whether (row, column) is inside the grid and open.
func (g *Grid) IsOpen(row, column int) bool {
	return g.InBounds(row, column) && g.cells[g.index(row, column)] == CellOpen
}

// Steps returns the length of every monotone path from start to goal.
func (g *Grid) Steps() int {
	return g.rows + g.columns - 2
}

// String renders one line per row using Cell.String, newline separated.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.columns + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.columns; c++ {
			sb.WriteString(g.cells[g.index(r, c)].String())
		}
	}

	return sb.String()
}

// index maps (row, column) to a row-major index.
func (g *Grid) index(row, column int) int {
	return row*g.columns + column
}
