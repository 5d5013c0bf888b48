package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/models"
	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/services"
	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/shared"
)

// ChartFetcher defines the single source operation the cache needs.
// This abstraction allows for easier testing and decoupling from the
// concrete billboard.com implementation.
type ChartFetcher interface {
	Fetch(ctx context.Context, chart models.Chart, date time.Time) (*services.ChartWeek, error)
}

// SnapshotCache resolves rosters with fetch-or-populate semantics: the
// persistent store is consulted first, and a miss triggers one source fetch
// followed by one committed insert keyed by the requested date.
type SnapshotCache struct {
	repo   *SnapshotRepository
	source ChartFetcher
	logger *log.Logger
}

// NewSnapshotCache creates a new SnapshotCache over the given repository and source.
func NewSnapshotCache(repo *SnapshotRepository, source ChartFetcher, logger *log.Logger) *SnapshotCache {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &SnapshotCache{repo: repo, source: source, logger: logger}
}

// GetOrFetch returns the roster for (chart, date), fetching and caching it
// on a miss. The row is keyed by the requested date, not the date the
// source reports. A source failure propagates and nothing is cached.
func (c *SnapshotCache) GetOrFetch(ctx context.Context, chart models.Chart, date time.Time) ([]string, error) {
	key := models.FormatDate(date)

	roster, ok, err := c.repo.Get(chart, key)
	if err != nil {
		return nil, err
	}
	if ok {
		return roster, nil
	}

	c.logger.Info("no cached roster for chart week, fetching", "chart", chart.Slug(), "date", key)

	week, err := c.source.Fetch(ctx, chart, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s at %s: %w", chart.Slug(), key, err)
	}

	entries := week.Entries
	if limit := chart.EntryCap(); limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	roster = make([]string, len(entries))
	for i, entry := range entries {
		roster[i] = strings.ToLower(entry.Artist)
	}

	if err := c.repo.Save(chart, key, roster); err != nil {
		return nil, err
	}

	return roster, nil
}
