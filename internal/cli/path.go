// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wavefront"
	"github.com/katalvlaran/wavefront/bfs"
	"github.com/katalvlaran/wavefront/edgelist"
	"github.com/katalvlaran/wavefront/result"
)

// PathOptions holds the flags for the path command.
type PathOptions struct {
	*RootOptions
	Input      string
	Source     int64
	Target     int64
	Workers    int
	Undirected bool
}

// NewPathCommand creates the path command: one shortest hop path, printed
// in walking order from source to target.
func NewPathCommand(root *RootOptions) *cobra.Command {
	opts := &PathOptions{RootOptions: root}

	cmd := &cobra.Command{
		Use:           "path",
		Short:         "Print one shortest hop path between two vertices",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyPathConfig(cmd, opts)
			return runPath(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "edge list file, one src dst pair per line")
	cmd.Flags().Int64VarP(&opts.Source, "source", "s", 0, "source vertex id")
	cmd.Flags().Int64VarP(&opts.Target, "target", "t", 0, "target vertex id")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "worker goroutines, 0 means one per CPU")
	cmd.Flags().BoolVar(&opts.Undirected, "undirected", false, "treat every edge as bidirectional")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func applyPathConfig(cmd *cobra.Command, opts *PathOptions) {
	cfg := opts.Config
	if !cmd.Flags().Changed("workers") {
		opts.Workers = cfg.Workers
	}
	if !cmd.Flags().Changed("undirected") && cfg.Undirected {
		opts.Undirected = true
	}
}

func runPath(cmd *cobra.Command, opts *PathOptions) error {
	log := opts.logger()
	runID := uuid.NewString()

	pairs, err := edgelist.ParseFile(opts.Input)
	if err != nil {
		return err
	}

	engOpts := []wavefront.Option{
		wavefront.WithLogger(log),
		wavefront.WithWorkers(opts.Workers),
	}
	if opts.Undirected {
		engOpts = append(engOpts, wavefront.WithUndirected())
	}
	eng, err := wavefront.New(pairs, engOpts...)
	if err != nil {
		return err
	}

	log.Info("path query",
		zap.String("run_id", runID),
		zap.Int64("source", opts.Source),
		zap.Int64("target", opts.Target))

	table, err := eng.BFS(opts.Source, bfs.WithContext(cmd.Context()))
	if err != nil {
		return err
	}

	hops, err := table.Path(opts.Target)
	if err != nil {
		if errors.Is(err, result.ErrUnreachable) {
			return fmt.Errorf("no path from %d to %d: %w", opts.Source, opts.Target, err)
		}
		return err
	}

	// Path reports the target first; flip it for reading order.
	parts := make([]string, 0, len(hops))
	for i := len(hops) - 1; i >= 0; i-- {
		parts = append(parts, strconv.FormatInt(int64(hops[i]), 10))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, strings.Join(parts, " -> "))
	fmt.Fprintf(out, "hops: %d\n", len(hops)-1)

	return nil
}
