// SPDX-License-Identifier: MIT

// Package cli wires the wavefront commands: run, path and gen.
//
// Every command reads integer edge lists and writes to stdout (or -o), so
// commands compose in pipelines: gen | run, gen | path. Diagnostics go to
// stderr through zap; the log level comes from the optional --config file
// and is forced to debug by --verbose.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/wavefront/internal/config"
)

// RootOptions holds global flags plus the state the root command prepares
// for its subcommands before their RunE fires.
type RootOptions struct {
	ConfigPath string
	Verbose    bool

	Config config.Config // file defaults merged over config.Default()
	Logger *zap.Logger   // built from the effective log level
}

// NewRootCommand creates the root command for the wavefront CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "wavefront",
		Short: "Parallel breadth-first traversal over integer edge lists",
		Long: "wavefront computes shortest-hop distances and predecessor trees from a\n" +
			"single source, level by level, with one worker per CPU by default.\n" +
			"Edge lists are plain text: one \"src dst\" integer pair per line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load file defaults, then let --verbose override the level.
			cfg := config.Default()
			if opts.ConfigPath != "" {
				loaded, err := config.Load(opts.ConfigPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if opts.Verbose {
				cfg.LogLevel = "debug"
			}

			log, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			opts.Config = cfg
			opts.Logger = log

			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML defaults file (flags win over it)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")

	// Subcommands
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewPathCommand(opts))
	cmd.AddCommand(NewGenCommand(opts))

	return cmd
}

// newLogger builds a development zap logger on stderr at the given level,
// keeping stdout clean for pipeline output.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

// logger returns the prepared logger, or a no-op one when a subcommand is
// executed on its own (the tests do this).
func (o *RootOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
