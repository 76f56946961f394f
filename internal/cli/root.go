// Package cli implements the dpkit command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dpkit/internal/config"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// app carries state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd builds the dpkit command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "dpkit",
		Short: "Longest decreasing subsequences and marsh crossings, exhaustive vs dynamic programming",
		Long: `dpkit runs two classic exercises side by side:

  lds       longest strictly decreasing subsequence of a random sequence
  crossing  monotone paths across a grid with thickets

Each command runs the dynamic programme and, for small inputs, the
exhaustive search, then checks that both agree.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a dpkit.yaml configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	root.AddCommand(newLDSCmd(a), newCrossingCmd(a), newVersionCmd())

	return root
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and builds the run logger.
func (a *app) setup(logOut io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err := config.Validate(&cfg); err != nil {
			return err
		}
	}
	level, err := config.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(cfg.Logging.Format, "json") {
		handler = slog.NewJSONHandler(logOut, opts)
	} else {
		handler = slog.NewTextHandler(logOut, opts)
	}

	a.cfg = cfg
	a.logger = slog.New(handler).With("run_id", uuid.NewString())
	a.logger.Debug("configuration loaded", "path", a.configPath, "level", cfg.Logging.Level)

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dpkit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "dpkit", Version)
		},
	}
}
