// package services defines interface ChartSource for weekly chart providers
package services

import (
	"context"
	"time"

	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/models"
)

// ChartSource defines the interface for providers of weekly music charts.
type ChartSource interface {
	// Resolve returns the actual published date of the chart week the
	// given date falls in. Used to anchor a scan's starting point.
	Resolve(ctx context.Context, chart models.Chart, date time.Time) (time.Time, error)

	// Fetch retrieves the chart week the given date falls in, with its
	// ordered entries. Fails if the provider is unreachable or the week
	// has no usable entries.
	Fetch(ctx context.Context, chart models.Chart, date time.Time) (*ChartWeek, error)

	// Name returns the name of the provider (e.g., "Billboard")
	Name() string
}

// ChartWeek represents one published chart week from any provider.
type ChartWeek struct {
	Chart   models.Chart
	Date    time.Time
	Entries []ChartEntry
}

// ChartEntry represents a single ranked entry in a chart week.
type ChartEntry struct {
	Rank   int
	Title  string
	Artist string // full credit line, e.g. "Karol G Featuring Drake"
}
