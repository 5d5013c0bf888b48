package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/formatter"
	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/models"
	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search scans one or both charts backward from the start date and reports
// every week the artist appears on, or a clean verdict when they never have.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	artist := strings.TrimSpace(cmd.StringArg("artist"))
	if artist == "" {
		return fmt.Errorf("%w: artist name is required", shared.ErrMissingArgument)
	}
	query := strings.ToLower(artist)

	config := r.loadConfig(cmd.String("config"))

	charts := models.Charts()
	if slug := cmd.String("chart"); slug != "" {
		chart, err := models.ChartFromSlug(slug)
		if err != nil {
			return fmt.Errorf("%w: unknown chart %q", shared.ErrInvalidFlag, slug)
		}
		charts = []models.Chart{chart}
	}

	start := r.now().UTC()
	if raw := cmd.String("start"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("failed to parse start date: %w", err)
		}
		start = parsed
	}

	db, repo, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	if pruned, err := repo.Prune(config.Search.SinglesHorizonYears); err != nil {
		r.logger.Warn("failed to prune stale snapshots", "error", err)
	} else if pruned > 0 {
		r.logger.Debug("pruned stale snapshots", "rows", pruned)
	}

	engine := r.newEngine(config, repo)

	var hits []formatter.ChartHit
	for _, chart := range charts {
		r.logger.Info("scanning chart", "chart", chart.Slug(), "artist", query, "start", models.FormatDate(start))

		if cmd.Bool("all") {
			results, err := engine.SearchAll(ctx, chart, query, start)
			if err != nil {
				return fmt.Errorf("search failed on %s: %w", chart.DisplayName(), err)
			}
			for _, result := range results {
				hits = append(hits, formatter.NewChartHit(chart, result))
			}
			continue
		}

		result, err := engine.Search(ctx, chart, query, start)
		if err != nil {
			return fmt.Errorf("search failed on %s: %w", chart.DisplayName(), err)
		}
		if result != nil {
			hits = append(hits, formatter.NewChartHit(chart, *result))
		}
	}

	return r.reportHits(cmd, artist, hits)
}

func (r *Runner) reportHits(cmd *cli.Command, artist string, hits []formatter.ChartHit) error {
	// The export is independent of the output mode. No hits still writes
	// the file, headers only.
	var exported string
	if cmd.IsSet("csv") {
		path, err := formatter.WriteCSVExport(artist, hits, cmd.String("csv"))
		if err != nil {
			return fmt.Errorf("failed to export CSV: %w", err)
		}
		exported = path
		r.logger.Info("hit history exported", "path", path)
	}

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"artist":       artist,
			"inPhilosophy": len(hits) == 0,
			"hits":         hits,
		}, cmd.Bool("pretty"))
	}

	if len(hits) == 0 {
		if err := r.writePlainln("%s not found, you're good to go!", artist); err != nil {
			return err
		}
	} else {
		for _, hit := range hits {
			r.writePlainln("%s", formatter.HitSummary(artist, hit.Chart, hit.Result))
			r.writePlain("( %s )\n", formatter.ChartURL(hit.Chart, hit.Result.Date))
		}
	}

	if exported != "" {
		return r.writePlainln("hits written to %s", exported)
	}

	return nil
}
