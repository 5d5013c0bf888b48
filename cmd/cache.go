package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// CacheStats reports row counts and cached date ranges for each chart table.
func (r *Runner) CacheStats(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd.String("config"))

	db, repo, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := repo.Stats()
	if err != nil {
		return fmt.Errorf("failed to read cache stats: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(stats, cmd.Bool("pretty"))
	}

	for _, s := range stats {
		if s.Rows == 0 {
			r.writePlainln("%s: empty", s.Chart.DisplayName())
			continue
		}
		r.writePlainln("%s: %d weeks cached (%s to %s)", s.Chart.DisplayName(), s.Rows, s.Earliest, s.Latest)
	}

	return nil
}

// CachePrune drops Hot 100 snapshots older than the rolling horizon and any
// rows with an empty roster.
func (r *Runner) CachePrune(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd.String("config"))

	db, repo, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	pruned, err := repo.Prune(config.Search.SinglesHorizonYears)
	if err != nil {
		return fmt.Errorf("failed to prune cache: %w", err)
	}

	r.logger.Info("cache pruned", "rows", pruned)
	r.writePlainln("pruned %d stale row(s)", pruned)

	return nil
}
