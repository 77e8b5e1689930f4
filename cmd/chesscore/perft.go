package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/output"
	"github.com/lgbarn/chesscore-go/internal/perft"
)

func newPerftCmd(a *app) *cobra.Command {
	var (
		depth    int
		workers  int
		capacity int
		divide   bool
		hash     bool
		asJSON   bool
		moves    []string
	)
	cmd := &cobra.Command{
		Use:   "perft",
		Short: "Count legal move paths to a fixed depth",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("depth") {
				a.cfg.Perft.Depth = depth
			}
			if flags.Changed("workers") {
				a.cfg.Perft.Workers = workers
			}
			if flags.Changed("hash") {
				a.cfg.Perft.HashCache = hash
			}
			if flags.Changed("hash-capacity") {
				a.cfg.Perft.HashCapacity = capacity
			}
			if err := a.cfg.Perft.Validate(); err != nil {
				return err
			}

			g, err := replay(a.cfg, moves)
			if err != nil {
				return err
			}

			start := time.Now()
			res, err := perft.NewRunner(a.cfg).Run(cmd.Context(), g.Position(), a.cfg.Perft.Depth)
			if err != nil {
				return err
			}
			report := &output.Report{Depth: res.Depth, Nodes: res.Nodes, Elapsed: time.Since(start)}
			if divide {
				report.Divide = res.Divide
			}
			a.cfg.Logf(config.Summary, "perft(%d): %d nodes in %s with %d workers",
				report.Depth, report.Nodes, report.Elapsed.Round(time.Millisecond), a.cfg.Perft.Workers)

			var w output.ReportWriter = output.NewTextWriter(a.cfg.OutputFile, a.cfg)
			if asJSON {
				w = output.NewJSONWriter(a.cfg.OutputFile, a.cfg)
			}
			return w.WriteReport(report)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&depth, "depth", "d", 3, "search depth in plies")
	f.IntVarP(&workers, "workers", "w", 1, "number of worker goroutines")
	f.IntVar(&capacity, "hash-capacity", 0, "maximum cache entries (0 = unlimited)")
	f.BoolVar(&divide, "divide", false, "print the count below each root move")
	f.BoolVar(&hash, "hash", false, "share a transposition cache between workers")
	f.BoolVar(&asJSON, "json", false, "write the report as JSON")
	f.StringSliceVar(&moves, "moves", nil, "coordinate moves to play before counting")
	return cmd
}
