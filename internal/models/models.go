package models

import (
	"fmt"

	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/shared"
)

// ArtistSeparator joins roster entries in the cache encoding. Two characters
// chosen to never occur inside an artist credit.
const ArtistSeparator = "`~"

// Chart identifies a weekly Billboard chart.
type Chart int

const (
	// Hot100 is the weekly singles chart.
	Hot100 Chart = iota
	// Billboard200 is the weekly albums chart.
	Billboard200
)

// Charts returns both charts in the order the checker scans them.
func Charts() []Chart {
	return []Chart{Hot100, Billboard200}
}

// Slug returns the chart's URL slug on billboard.com.
func (c Chart) Slug() string {
	switch c {
	case Hot100:
		return "hot-100"
	case Billboard200:
		return "billboard-200"
	default:
		return ""
	}
}

// Table returns the chart's cache table name.
func (c Chart) Table() string {
	switch c {
	case Hot100:
		return "hot100"
	case Billboard200:
		return "bb200"
	default:
		return ""
	}
}

// DisplayName returns the chart's human-readable name.
func (c Chart) DisplayName() string {
	switch c {
	case Hot100:
		return "Hot 100"
	case Billboard200:
		return "Billboard 200"
	default:
		return ""
	}
}

// EntryCap returns the maximum number of roster entries cached for the
// chart. Zero means unbounded. Only the top 20 of the Billboard 200 matter
// to the station's philosophy.
func (c Chart) EntryCap() int {
	if c == Billboard200 {
		return 20
	}
	return 0
}

// ChartFromSlug resolves a chart from its URL slug or cache table name.
func ChartFromSlug(slug string) (Chart, error) {
	for _, c := range Charts() {
		if slug == c.Slug() || slug == c.Table() {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", shared.ErrChartNotFound, slug)
}

// FoundResult describes one chart week an artist appeared in.
//
// Listing is the full roster entry that matched, which may itself be a
// multi-artist credit line. Position is 1-indexed chart position.
type FoundResult struct {
	Date     string `json:"date"`
	Listing  string `json:"listing"`
	Position int    `json:"position"`
}
