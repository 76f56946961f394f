package crossing_test

import (
	"testing"

	"github.com/katalvlaran/dpkit/crossing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	o = crossing.CellOpen
	x = crossing.CellThicket
)

// mustParse builds a grid from text or fails the test.
func mustParse(t *testing.T, lines ...string) *crossing.Grid {
	t.Helper()
	g, err := crossing.ParseGrid(lines)
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged or unknown inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]crossing.Cell
		err   error
	}{
		{"NilRows", nil, crossing.ErrEmptyGrid},
		{"EmptyRows", [][]crossing.Cell{}, crossing.ErrEmptyGrid},
		{"EmptyCols", [][]crossing.Cell{{}}, crossing.ErrEmptyGrid},
		{"NonRectangular", [][]crossing.Cell{{o, o}, {o}}, crossing.ErrNonRectangular},
		{"UnknownCell", [][]crossing.Cell{{o, crossing.Cell(7)}}, crossing.ErrUnknownCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := crossing.NewGrid(tc.cells)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewGrid_CopiesInput ensures later edits to the source slice are not observed.
func TestNewGrid_CopiesInput(t *testing.T) {
	src := [][]crossing.Cell{{o, o}, {o, o}}
	g, err := crossing.NewGrid(src)
	require.NoError(t, err)

	src[0][1] = x
	c, err := g.Get(0, 1)
	require.NoError(t, err)
	assert.Equal(t, o, c)
}

// TestNewGridFromFlat checks row-major addressing and dimension validation.
func TestNewGridFromFlat(t *testing.T) {
	g, err := crossing.NewGridFromFlat(2, 3, []crossing.Cell{o, o, x, o, x, o})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Columns())
	assert.Equal(t, "..X\n.X.", g.String())

	_, err = crossing.NewGridFromFlat(2, 3, []crossing.Cell{o, o})
	assert.ErrorIs(t, err, crossing.ErrDimensionMismatch)

	_, err = crossing.NewGridFromFlat(0, 3, nil)
	assert.ErrorIs(t, err, crossing.ErrEmptyGrid)
}

// TestParseGrid covers the text format.
func TestParseGrid(t *testing.T) {
	g := mustParse(t, "", ". . x", ".X.", "", "...")
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Columns())
	assert.Equal(t, "..X\n.X.\n...", g.String())

	_, err := crossing.ParseGrid([]string{"..#"})
	assert.ErrorIs(t, err, crossing.ErrUnknownCell)

	_, err = crossing.ParseGrid([]string{"..", "."})
	assert.ErrorIs(t, err, crossing.ErrNonRectangular)

	_, err = crossing.ParseGrid(nil)
	assert.ErrorIs(t, err, crossing.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Accessors
//----------------------------------------------------------------------------//

// TestGet checks in-range reads and out-of-range failures on a 2×3 grid.
func TestGet(t *testing.T) {
	g := mustParse(t, "..X", ".X.")

	c, err := g.Get(0, 2)
	require.NoError(t, err)
	assert.Equal(t, x, c)
	c, err = g.Get(1, 0)
	require.NoError(t, err)
	assert.Equal(t, o, c)

	invalid := [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}}
	for _, rc := range invalid {
		_, err := g.Get(rc[0], rc[1])
		assert.ErrorIs(t, err, crossing.ErrOutOfRange, "Get(%d,%d)", rc[0], rc[1])
		assert.False(t, g.InBounds(rc[0], rc[1]))
		assert.False(t, g.IsOpen(rc[0], rc[1]))
	}
	assert.True(t, g.IsOpen(1, 2))
	assert.False(t, g.IsOpen(1, 1))
	assert.Equal(t, 3, g.Steps())
}

// TestCellAndDirectionString checks the Stringers.
func TestCellAndDirectionString(t *testing.T) {
	assert.Equal(t, ".", o.String())
	assert.Equal(t, "X", x.String())
	assert.Equal(t, "cell(9)", crossing.Cell(9).String())
	assert.Equal(t, "D", crossing.StepDown.String())
	assert.Equal(t, "R", crossing.StepRight.String())
	assert.Equal(t, "direction(5)", crossing.Direction(5).String())
	assert.Equal(t, "dp", crossing.MethodDP.String())
	assert.Equal(t, "bruteforce", crossing.MethodBruteForce.String())
}

//----------------------------------------------------------------------------//
// RandomGrid
//----------------------------------------------------------------------------//

// TestRandomGrid checks validation, determinism and open corners.
func TestRandomGrid(t *testing.T) {
	_, err := crossing.RandomGrid(3, 3, 101, 1)
	assert.ErrorIs(t, err, crossing.ErrInvalidPercent)
	_, err = crossing.RandomGrid(3, 3, -1, 1)
	assert.ErrorIs(t, err, crossing.ErrInvalidPercent)
	_, err = crossing.RandomGrid(0, 3, 10, 1)
	assert.ErrorIs(t, err, crossing.ErrEmptyGrid)

	a, err := crossing.RandomGrid(6, 7, 40, 99)
	require.NoError(t, err)
	b, err := crossing.RandomGrid(6, 7, 40, 99)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String(), "same seed must yield the same grid")
	assert.True(t, a.IsOpen(0, 0))
	assert.True(t, a.IsOpen(5, 6))

	full, err := crossing.RandomGrid(3, 4, 100, 5)
	require.NoError(t, err)
	assert.Equal(t, ".XXX\nXXXX\nXXX.", full.String())

	none, err := crossing.RandomGrid(2, 2, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, "..\n..", none.String())
}
