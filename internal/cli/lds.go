package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dpkit/subsequence"
)

// newLDSCmd builds `dpkit lds`.
func newLDSCmd(a *app) *cobra.Command {
	var (
		size, maxElement, limit int
		seed                    int64
	)
	cmd := &cobra.Command{
		Use:   "lds",
		Short: "Find the longest strictly decreasing subsequence of a random sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.cfg.Subsequence
			flags := cmd.Flags()
			if flags.Changed("size") {
				s.Size = size
			}
			if flags.Changed("seed") {
				s.Seed = seed
			}
			if flags.Changed("max-element") {
				s.MaxElement = maxElement
			}
			if flags.Changed("brute-force-limit") {
				s.BruteForceLimit = limit
			}

			return a.runLDS(cmd, s.Size, s.Seed, s.MaxElement, s.BruteForceLimit)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 0, "sequence length (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "generator seed (0 uses the fixed default seed)")
	cmd.Flags().IntVar(&maxElement, "max-element", 0, "largest element value")
	cmd.Flags().IntVar(&limit, "brute-force-limit", 0, "largest size also solved by brute force")

	return cmd
}

// runLDS generates the sequence, solves it both ways and compares lengths.
func (a *app) runLDS(cmd *cobra.Command, size int, seed int64, maxElement, limit int) error {
	out := cmd.OutOrStdout()
	log := a.logger.With("command", "lds", "size", size, "seed", seed)

	seq, err := subsequence.RandomSequence(size, seed, maxElement)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "sequence:", seq)

	start := time.Now()
	dp := subsequence.LongestDecreasingDP(seq)
	elapsed := time.Since(start)
	log.Info("dynamic programming finished", "length", len(dp), "elapsed", elapsed)
	fmt.Fprintf(out, "dp: %v\ndp length: %d (%v)\n", dp, len(dp), elapsed)

	if size > limit || size > subsequence.MaxBruteForceLength {
		log.Info("brute force skipped", "limit", limit)
		return nil
	}

	start = time.Now()
	bf, err := subsequence.LongestDecreasingBruteForce(seq)
	if err != nil {
		return err
	}
	elapsed = time.Since(start)
	log.Info("brute force finished", "length", len(bf), "elapsed", elapsed)
	fmt.Fprintf(out, "bruteforce: %v\nbruteforce length: %d (%v)\n", bf, len(bf), elapsed)

	if len(bf) != len(dp) {
		log.Error("algorithms disagree", "dp", len(dp), "bruteforce", len(bf))
		return fmt.Errorf("length mismatch: dp=%d bruteforce=%d", len(dp), len(bf))
	}

	return nil
}
