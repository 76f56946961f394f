package crossing

import (
	"fmt"
	"strings"
)

// maxRecordedSteps is how many moves fit in Path's move mask.
const maxRecordedSteps = 64

// Path is a monotone walk that starts at (0,0) of its grid.
//
// A Path is a value: Step returns a new Path and leaves the receiver
// untouched, so candidates can branch freely during enumeration. Moves are
// packed into a 64-bit mask (bit k set ⇔ step k went right), which keeps
// copies O(1) and caps a Path at 64 moves.
type Path struct {
	grid   *Grid
	row    int
	column int
	steps  int
	moves  uint64
}

// NewPath returns an empty path at (0,0) of g.
func NewPath(g *Grid) (Path, error) {
	if g == nil {
		return Path{}, ErrNilGrid
	}

	return Path{grid: g}, nil
}

// Row returns the current row.
func (p Path) Row() int { return p.row }

// Column returns the current column.
func (p Path) Column() int { return p.column }

// Steps returns how many moves have been taken.
func (p Path) Steps() int { return p.steps }

// Pattern returns the move mask: bit k is 1 if step k went right.
func (p Path) Pattern() uint64 { return p.moves }

// AtGoal reports whether the path stands on the bottom-right cell.
func (p Path) AtGoal() bool {
	return p.grid != nil && p.row == p.grid.rows-1 && p.column == p.grid.columns-1
}

// IsStepValid reports whether moving one cell in dir keeps the path on the
// grid and on open ground. A path standing on a thicket cannot move at all.
// Complexity: O(1).
func (p Path) IsStepValid(dir Direction) bool {
	if p.grid == nil || p.steps >= maxRecordedSteps {
		return false
	}
	if !p.grid.IsOpen(p.row, p.column) {
		return false
	}
	r, c, ok := p.next(dir)
	if !ok {
		return false
	}

	return p.grid.IsOpen(r, c)
}

// Step returns the path extended by one move in dir, or ErrInvalidStep.
// The receiver is not modified.
// Complexity: O(1).
func (p Path) Step(dir Direction) (Path, error) {
	if !p.IsStepValid(dir) {
		return p, fmt.Errorf("%w: %v from (%d,%d)", ErrInvalidStep, dir, p.row, p.column)
	}

	return p.advance(dir), nil
}

// advance applies a move already known to be valid.
func (p Path) advance(dir Direction) Path {
	r, c, _ := p.next(dir)
	if dir == StepRight {
		p.moves |= 1 << uint(p.steps)
	}
	p.row, p.column = r, c
	p.steps++

	return p
}

// Directions returns the moves taken so far, in order.
func (p Path) Directions() []Direction {
	out := make([]Direction, p.steps)
	for k := range out {
		out[k] = directionAt(p.moves, k)
	}

	return out
}

// String renders the moves as a run of "R" and "D", e.g. "RDDR".
func (p Path) String() string {
	var sb strings.Builder
	sb.Grow(p.steps)
	for k := 0; k < p.steps; k++ {
		sb.WriteString(directionAt(p.moves, k).String())
	}

	return sb.String()
}

// next returns the destination of a move in dir without bounds checks.
func (p Path) next(dir Direction) (row, column int, ok bool) {
	switch dir {
	case StepDown:
		return p.row + 1, p.column, true
	case StepRight:
		return p.row, p.column + 1, true
	default:
		return 0, 0, false
	}
}

// directionAt decodes bit k of a step pattern.
func directionAt(pattern uint64, k int) Direction {
	if (pattern>>uint(k))&1 == 1 {
		return StepRight
	}

	return StepDown
}
