package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/models"
	tu "github.com/dospunk/WUOG-In-Philosophy-Checker/internal/testing"
)

// fakeStore is an in-memory SnapshotStore keyed by ISO date. Unknown dates
// yield a filler roster so scans can run to the horizon.
type fakeStore struct {
	rosters map[string][]string
	calls   []string
	err     error
}

func (f *fakeStore) GetOrFetch(ctx context.Context, chart models.Chart, date time.Time) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}

	key := models.FormatDate(date)
	f.calls = append(f.calls, key)

	if roster, ok := f.rosters[key]; ok {
		return roster, nil
	}
	return []string{"nobody in particular"}, nil
}

func fixedNow(date string) func() time.Time {
	t, err := models.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestEngine(t *testing.T) {
	t.Run("Search", func(t *testing.T) {
		t.Run("returns the most recent appearance", func(t *testing.T) {
			store := &fakeStore{rosters: map[string][]string{
				"2024-03-09": {"taylor swift", "drake & 21 savage", "olivia rodrigo"},
			}}
			engine := NewEngine(EngineOpts{
				Resolver:  &tu.MockChartSource{},
				Snapshots: store,
				Now:       fixedNow("2024-06-01"),
			})

			start, _ := models.ParseDate("2024-03-23")
			hit, err := engine.Search(context.Background(), models.Hot100, "drake", start)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hit == nil {
				t.Fatal("expected a hit")
			}
			if hit.Date != "2024-03-09" {
				t.Errorf("expected date 2024-03-09, got %s", hit.Date)
			}
			if hit.Listing != "drake & 21 savage" {
				t.Errorf("unexpected listing %q", hit.Listing)
			}
			if hit.Position != 2 {
				t.Errorf("expected position 2, got %d", hit.Position)
			}

			// Weeks above the hit were examined, nothing below it.
			want := []string{"2024-03-23", "2024-03-16", "2024-03-09"}
			if len(store.calls) != len(want) {
				t.Fatalf("expected %d store calls, got %v", len(want), store.calls)
			}
			for i, date := range want {
				if store.calls[i] != date {
					t.Errorf("call %d: expected %s, got %s", i, date, store.calls[i])
				}
			}
		})

		t.Run("exhausts to the horizon without a match", func(t *testing.T) {
			store := &fakeStore{}
			engine := NewEngine(EngineOpts{
				Resolver:  &tu.MockChartSource{},
				Snapshots: store,
				Now:       fixedNow("2024-03-23"),
			})

			// Three candidates fit between start and the 2004-03-23 horizon.
			start, _ := models.ParseDate("2004-04-13")
			hit, err := engine.Search(context.Background(), models.Hot100, "drake", start)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hit != nil {
				t.Fatalf("expected no hit, got %+v", hit)
			}
			if len(store.calls) != 3 {
				t.Errorf("expected 3 store calls, got %v", store.calls)
			}
		})

		t.Run("normalizes an irregular resolved start", func(t *testing.T) {
			actual, _ := models.ParseDate("1976-07-04")
			resolver := &tu.MockChartSource{
				ResolveFn: func(ctx context.Context, chart models.Chart, date time.Time) (time.Time, error) {
					return actual, nil
				},
			}
			store := &fakeStore{rosters: map[string][]string{
				"1976-06-26": {"wings"},
			}}
			engine := NewEngine(EngineOpts{
				Resolver:  resolver,
				Snapshots: store,
				Now:       fixedNow("1976-07-20"),
			})

			start, _ := models.ParseDate("1976-07-08")
			hit, err := engine.Search(context.Background(), models.Hot100, "wings", start)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hit == nil || hit.Date != "1976-06-26" {
				t.Fatalf("expected a hit at 1976-06-26, got %+v", hit)
			}

			// The irregular week is queried by its published date, and the
			// following candidate sits a week before the canonical date.
			want := []string{"1976-07-04", "1976-06-26"}
			for i, date := range want {
				if store.calls[i] != date {
					t.Errorf("call %d: expected %s, got %s", i, date, store.calls[i])
				}
			}
		})

		t.Run("resolver failure aborts the scan", func(t *testing.T) {
			resolveErr := errors.New("resolve failed")
			resolver := &tu.MockChartSource{
				ResolveFn: func(ctx context.Context, chart models.Chart, date time.Time) (time.Time, error) {
					return time.Time{}, resolveErr
				},
			}
			engine := NewEngine(EngineOpts{
				Resolver:  resolver,
				Snapshots: &fakeStore{},
				Now:       fixedNow("2024-06-01"),
			})

			start, _ := models.ParseDate("2024-03-23")
			if _, err := engine.Search(context.Background(), models.Hot100, "drake", start); !errors.Is(err, resolveErr) {
				t.Errorf("expected resolver error to propagate, got %v", err)
			}
		})

		t.Run("store failure aborts the scan", func(t *testing.T) {
			storeErr := errors.New("billboard down")
			engine := NewEngine(EngineOpts{
				Resolver:  &tu.MockChartSource{},
				Snapshots: &fakeStore{err: storeErr},
				Now:       fixedNow("2024-06-01"),
			})

			start, _ := models.ParseDate("2024-03-23")
			if _, err := engine.Search(context.Background(), models.Hot100, "drake", start); !errors.Is(err, storeErr) {
				t.Errorf("expected store error to propagate, got %v", err)
			}
		})
	})

	t.Run("SearchAll", func(t *testing.T) {
		t.Run("enumerates every appearance newest first", func(t *testing.T) {
			store := &fakeStore{rosters: map[string][]string{
				"2024-03-23": {"drake"},
				"2024-03-02": {"sza", "drake"},
			}}
			engine := NewEngine(EngineOpts{
				Resolver:            &tu.MockChartSource{},
				Snapshots:           store,
				Now:                 fixedNow("2024-03-23"),
				SinglesHorizonYears: 1,
			})

			start, _ := models.ParseDate("2024-03-23")
			hits, err := engine.SearchAll(context.Background(), models.Hot100, "drake", start)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(hits) != 2 {
				t.Fatalf("expected 2 hits, got %+v", hits)
			}
			if hits[0].Date != "2024-03-23" || hits[1].Date != "2024-03-02" {
				t.Errorf("expected newest-first ordering, got %+v", hits)
			}
			if hits[1].Position != 2 {
				t.Errorf("expected second hit at position 2, got %d", hits[1].Position)
			}
		})

		t.Run("no appearances yields an empty history", func(t *testing.T) {
			engine := NewEngine(EngineOpts{
				Resolver:            &tu.MockChartSource{},
				Snapshots:           &fakeStore{},
				Now:                 fixedNow("2024-03-23"),
				SinglesHorizonYears: 1,
			})

			start, _ := models.ParseDate("2024-03-23")
			hits, err := engine.SearchAll(context.Background(), models.Hot100, "drake", start)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(hits) != 0 {
				t.Errorf("expected no hits, got %+v", hits)
			}
		})
	})

	t.Run("Horizon", func(t *testing.T) {
		engine := NewEngine(EngineOpts{
			Resolver:            &tu.MockChartSource{},
			Snapshots:           &fakeStore{},
			Now:                 fixedNow("2024-03-23"),
			SinglesHorizonYears: 10,
		})

		if got := models.FormatDate(engine.Horizon(models.Hot100)); got != "2014-03-23" {
			t.Errorf("expected 2014-03-23, got %s", got)
		}
		if got := engine.Horizon(models.Billboard200); !got.Equal(models.Billboard200Earliest) {
			t.Errorf("expected the fixed 1963 horizon, got %v", got)
		}
	})
}
