package crossing

import "fmt"

// Marsh crossing: exhaustive search
//
// Description:
//
//	Every monotone path from (0,0) to (R-1,C-1) takes exactly R+C-2 steps,
//	so each candidate is a (R+C-2)-bit pattern: bit k = 1 means step k goes
//	right, 0 means down. A pattern counts when replaying it from a fresh
//	Path never hits an invalid step.
//
// Algorithm Outline:
//  1. steps = R+C-2; require steps ≤ MaxBruteForceSteps.
//  2. For bits = 0 .. 2^steps-1:
//     p = NewPath(grid)
//     for k = 0..steps-1: stop if !p.IsStepValid(dir(bits,k)); else p = p.Step(...)
//     if all steps succeeded: count++
//
// Complexity:
//
//	Time   = O(2^steps · steps)
//	Memory = O(1)

// EnumeratePaths calls visit for every open monotone path from the start to
// the goal, in increasing order of step pattern. visit returning false stops
// the enumeration early. A nil visit only validates the grid.
// Returns ErrNilGrid or ErrTooManySteps before enumerating anything.
func EnumeratePaths(g *Grid, visit func(Path) bool) error {
	if g == nil {
		return ErrNilGrid
	}
	steps := g.Steps()
	if steps > MaxBruteForceSteps {
		return fmt.Errorf("%w: %d steps, max=%d", ErrTooManySteps, steps, MaxBruteForceSteps)
	}
	if visit == nil || !g.IsOpen(0, 0) {
		return nil
	}

	start := Path{grid: g}
	last := uint64(1)<<uint(steps) - 1
	for bits := uint64(0); ; bits++ {
		if p, ok := replay(start, bits, steps); ok && !visit(p) {
			return nil
		}
		if bits == last {
			break
		}
	}

	return nil
}

// replay walks pattern from start and reports whether every step was valid.
func replay(start Path, pattern uint64, steps int) (Path, bool) {
	p := start
	for k := 0; k < steps; k++ {
		dir := directionAt(pattern, k)
		if !p.IsStepValid(dir) {
			return Path{}, false
		}
		p = p.advance(dir)
	}

	return p, true
}

// CountPathsBruteForce counts open monotone paths from (0,0) to
// (Rows-1, Columns-1) by replaying every step pattern.
// A thicket at the start yields 0; a 1×1 open grid yields 1.
// Returns ErrTooManySteps when Rows+Columns-2 > MaxBruteForceSteps.
func CountPathsBruteForce(g *Grid) (uint64, error) {
	var count uint64
	err := EnumeratePaths(g, func(Path) bool {
		count++
		return true
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}
