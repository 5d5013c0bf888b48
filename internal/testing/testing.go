// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/models"
	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/services"
)

// MockChartSource is a configurable test double for [services.ChartSource].
//
// ResolveFn and FetchFn default to echoing the requested date with an empty
// roster; call counters record how often each operation ran.
type MockChartSource struct {
	ResolveFn    func(ctx context.Context, chart models.Chart, date time.Time) (time.Time, error)
	FetchFn      func(ctx context.Context, chart models.Chart, date time.Time) (*services.ChartWeek, error)
	ResolveCalls int
	FetchCalls   int
}

func (m *MockChartSource) Resolve(ctx context.Context, chart models.Chart, date time.Time) (time.Time, error) {
	m.ResolveCalls++
	if m.ResolveFn != nil {
		return m.ResolveFn(ctx, chart, date)
	}
	return date, nil
}

func (m *MockChartSource) Fetch(ctx context.Context, chart models.Chart, date time.Time) (*services.ChartWeek, error) {
	m.FetchCalls++
	if m.FetchFn != nil {
		return m.FetchFn(ctx, chart, date)
	}
	return &services.ChartWeek{Chart: chart, Date: date}, nil
}

func (m *MockChartSource) Name() string { return "mock" }

// StaticChartSource serves fixed rosters keyed by ISO date, echoing the
// requested date as the published date. Unknown dates yield a one-entry
// filler roster so scans can run to the horizon.
type StaticChartSource struct {
	Rosters    map[string][]string
	FetchCalls int
}

func (s *StaticChartSource) Resolve(ctx context.Context, chart models.Chart, date time.Time) (time.Time, error) {
	return date, nil
}

func (s *StaticChartSource) Fetch(ctx context.Context, chart models.Chart, date time.Time) (*services.ChartWeek, error) {
	s.FetchCalls++

	artists, ok := s.Rosters[models.FormatDate(date)]
	if !ok {
		artists = []string{"nobody in particular"}
	}

	entries := make([]services.ChartEntry, len(artists))
	for i, artist := range artists {
		entries[i] = services.ChartEntry{Rank: i + 1, Artist: artist}
	}

	return &services.ChartWeek{Chart: chart, Date: date, Entries: entries}, nil
}

func (s *StaticChartSource) Name() string { return "static" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}
