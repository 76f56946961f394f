package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dpkit/crossing"
)

// newCrossingCmd builds `dpkit crossing`.
func newCrossingCmd(a *app) *cobra.Command {
	var (
		rows, columns, percent, limit int
		seed                          int64
		gridFile                      string
	)
	cmd := &cobra.Command{
		Use:   "crossing",
		Short: "Count monotone paths across a grid with thickets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.cfg.Crossing
			flags := cmd.Flags()
			if flags.Changed("rows") {
				c.Rows = rows
			}
			if flags.Changed("columns") {
				c.Columns = columns
			}
			if flags.Changed("thicket-percent") {
				c.ThicketPercent = percent
			}
			if flags.Changed("seed") {
				c.Seed = seed
			}
			if flags.Changed("brute-force-limit") {
				c.BruteForceLimit = limit
			}

			var (
				g   *crossing.Grid
				err error
			)
			if gridFile != "" {
				g, err = readGrid(gridFile)
			} else {
				g, err = crossing.RandomGrid(c.Rows, c.Columns, c.ThicketPercent, c.Seed)
			}
			if err != nil {
				return err
			}

			return a.runCrossing(cmd, g, c.BruteForceLimit)
		},
	}
	cmd.Flags().IntVarP(&rows, "rows", "r", 0, "grid rows (default from config)")
	cmd.Flags().IntVarP(&columns, "columns", "k", 0, "grid columns (default from config)")
	cmd.Flags().IntVar(&percent, "thicket-percent", 0, "chance in percent that a cell is a thicket")
	cmd.Flags().Int64Var(&seed, "seed", 0, "generator seed (0 uses the fixed default seed)")
	cmd.Flags().IntVar(&limit, "brute-force-limit", 0, "largest step count also solved by brute force")
	cmd.Flags().StringVarP(&gridFile, "grid-file", "f", "", "read the grid from a file of '.' and 'X' lines instead")

	return cmd
}

// readGrid parses a grid text file.
func readGrid(path string) (*crossing.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid file: %w", err)
	}

	return crossing.ParseGrid(strings.Split(string(data), "\n"))
}

// runCrossing counts paths both ways and compares the results.
func (a *app) runCrossing(cmd *cobra.Command, g *crossing.Grid, limit int) error {
	out := cmd.OutOrStdout()
	log := a.logger.With("command", "crossing", "rows", g.Rows(), "columns", g.Columns())

	fmt.Fprintln(out, g)

	start := time.Now()
	dp, err := crossing.CountPathsDP(g)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	log.Info("dynamic programming finished", "paths", dp, "elapsed", elapsed)
	fmt.Fprintf(out, "dp paths: %d (%v)\n", dp, elapsed)

	if g.Steps() > limit || g.Steps() > crossing.MaxBruteForceSteps {
		log.Info("brute force skipped", "steps", g.Steps(), "limit", limit)
		return nil
	}

	start = time.Now()
	bf, err := crossing.CountPathsBruteForce(g)
	if err != nil {
		return err
	}
	elapsed = time.Since(start)
	log.Info("brute force finished", "paths", bf, "elapsed", elapsed)
	fmt.Fprintf(out, "bruteforce paths: %d (%v)\n", bf, elapsed)

	if bf != dp {
		log.Error("algorithms disagree", "dp", dp, "bruteforce", bf)
		return fmt.Errorf("path count mismatch: dp=%d bruteforce=%d", dp, bf)
	}

	return nil
}
