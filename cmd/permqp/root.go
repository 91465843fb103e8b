package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is overridden at link time (-ldflags "-X main.version=...").
var version = "dev"

// rootFlags are the persistent flags shared by all subcommands.
type rootFlags struct {
	logLevel string
	dev      bool
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree so tests can run commands without shared flag state.
func newRootCmd() *cobra.Command {
	var (
		flags  = &rootFlags{}
		logger = zap.NewNop()
	)

	root := &cobra.Command{
		Use:   "permqp",
		Short: "permqp builds quadratic binary models of TSP instances",
		Long: `permqp turns a TSP instance (edge list or distance matrix) into a quadratic
binary program with one variable per (city, stop), a cyclic adjacency
objective and exactly-one constraints, and writes it as CPLEX LP, YAML or JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(flags.logLevel, flags.dev)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&flags.dev, "dev", false, "human-readable development logging")

	// Subcommands read the logger lazily: it is built in PersistentPreRunE.
	var log = func() *zap.Logger { return logger }
	root.AddCommand(
		newBuildCmd(log),
		newStatsCmd(log),
		newGenerateCmd(log),
		newVersionCmd(),
	)

	return root
}

// newLogger builds a production (JSON) or development (console) zap logger
// writing to stderr at the requested level.
func newLogger(level string, dev bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var cfg zap.Config
	if dev {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
