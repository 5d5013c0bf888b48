package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/models"
	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/shared"
)

// SnapshotStore defines the cache operation the engine depends on.
// Implemented by repositories.SnapshotCache.
type SnapshotStore interface {
	GetOrFetch(ctx context.Context, chart models.Chart, date time.Time) ([]string, error)
}

// DateResolver anchors a scan's starting point to an actual published chart
// week. Implemented by services.BillboardService.
type DateResolver interface {
	Resolve(ctx context.Context, chart models.Chart, date time.Time) (time.Time, error)
}

// Engine performs backward chart scans. It holds no per-scan state; every
// Search invocation is independent and resumable by the caller.
type Engine struct {
	resolver            DateResolver
	snapshots           SnapshotStore
	logger              *log.Logger
	now                 func() time.Time
	singlesHorizonYears int
}

// EngineOpts contains configuration options for creating an Engine.
type EngineOpts struct {
	Resolver            DateResolver
	Snapshots           SnapshotStore
	Logger              *log.Logger
	Now                 func() time.Time // defaults to time.Now, injectable for tests
	SinglesHorizonYears int
}

// NewEngine creates a new Engine with the provided dependencies.
func NewEngine(opts EngineOpts) *Engine {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SinglesHorizonYears <= 0 {
		opts.SinglesHorizonYears = models.DefaultSinglesHorizonYears
	}

	return &Engine{
		resolver:            opts.Resolver,
		snapshots:           opts.Snapshots,
		logger:              opts.Logger,
		now:                 opts.Now,
		singlesHorizonYears: opts.SinglesHorizonYears,
	}
}

// Horizon returns the oldest date a scan of the chart will examine.
func (e *Engine) Horizon(chart models.Chart) time.Time {
	return models.Horizon(chart, e.now().UTC(), e.singlesHorizonYears)
}

// Search scans the chart backward from start and returns the most recent
// week at or before it in which artist appears, or nil if the horizon is
// reached without a match.
//
// artist must already be lowercased. To enumerate earlier occurrences,
// re-invoke with start set to one week before the returned result's date.
// A source failure aborts the scan and propagates; it is never retried.
func (e *Engine) Search(ctx context.Context, chart models.Chart, artist string, start time.Time) (*models.FoundResult, error) {
	logger := e.logger.With("run", shared.GenerateID(), "chart", chart.Slug(), "artist", artist)

	resolved, err := e.resolver.Resolve(ctx, chart, start)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve start date %s: %w", models.FormatDate(start), err)
	}

	// If the scan starts inside an irregular week, step back onto the
	// canonical timeline before walking.
	if canonical, ok := models.CanonicalDate(resolved); ok {
		resolved = canonical
	}

	horizon := e.Horizon(chart)
	logger.Debug("scanning", "start", models.FormatDate(resolved), "horizon", models.FormatDate(horizon))

	walker := NewWalker(resolved, horizon)
	weeks := 0

	for {
		date, ok := walker.Next()
		if !ok {
			break
		}
		weeks++

		roster, err := e.snapshots.GetOrFetch(ctx, chart, date)
		if err != nil {
			return nil, err
		}

		if listing, position, found := FindArtist(artist, roster); found {
			logger.Info("artist found", "date", models.FormatDate(date), "position", position, "listing", listing)
			return &models.FoundResult{
				Date:     models.FormatDate(date),
				Listing:  listing,
				Position: position,
			}, nil
		}
	}

	logger.Info("horizon reached without a match", "weeks", weeks)
	return nil, nil
}

// SearchAll enumerates every week in which artist appears on the chart,
// newest first, by re-invoking Search one week before each hit. This is the
// caller-driven resumption loop packaged for non-interactive use.
func (e *Engine) SearchAll(ctx context.Context, chart models.Chart, artist string, start time.Time) ([]models.FoundResult, error) {
	var hits []models.FoundResult

	for {
		hit, err := e.Search(ctx, chart, artist, start)
		if err != nil {
			return hits, err
		}
		if hit == nil {
			return hits, nil
		}

		hits = append(hits, *hit)

		hitDate, err := models.ParseDate(hit.Date)
		if err != nil {
			return hits, err
		}
		start = hitDate.AddDate(0, 0, -7)
	}
}
