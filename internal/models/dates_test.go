package models

import (
	"errors"
	"testing"
	"time"

	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/shared"
)

func TestOddDates(t *testing.T) {
	t.Run("ActualDate maps canonical to published", func(t *testing.T) {
		canonical := time.Date(1976, time.July, 3, 0, 0, 0, 0, time.UTC)

		actual, ok := ActualDate(canonical)
		if !ok {
			t.Fatal("expected 1976-07-03 to be a known irregular week")
		}
		if got := FormatDate(actual); got != "1976-07-04" {
			t.Errorf("expected 1976-07-04, got %s", got)
		}
	})

	t.Run("CanonicalDate maps published back to canonical", func(t *testing.T) {
		actual := time.Date(1976, time.July, 4, 0, 0, 0, 0, time.UTC)

		canonical, ok := CanonicalDate(actual)
		if !ok {
			t.Fatal("expected 1976-07-04 to be a known irregular week")
		}
		if got := FormatDate(canonical); got != "1976-07-03" {
			t.Errorf("expected 1976-07-03, got %s", got)
		}
	})

	t.Run("regular dates pass through untouched", func(t *testing.T) {
		regular := time.Date(2020, time.January, 4, 0, 0, 0, 0, time.UTC)

		if _, ok := ActualDate(regular); ok {
			t.Error("expected no substitution for a regular date")
		}
		if _, ok := CanonicalDate(regular); ok {
			t.Error("expected no reverse mapping for a regular date")
		}
	})
}

func TestParseDate(t *testing.T) {
	t.Run("valid ISO date", func(t *testing.T) {
		got, err := ParseDate("2023-06-10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2023, time.June, 10, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		for _, input := range []string{"06/10/2023", "2023-6-1", "yesterday", ""} {
			if _, err := ParseDate(input); !errors.Is(err, shared.ErrMalformedDate) {
				t.Errorf("ParseDate(%q): expected ErrMalformedDate, got %v", input, err)
			}
		}
	})

	t.Run("round trip", func(t *testing.T) {
		got, err := ParseDate("1976-07-04")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if FormatDate(got) != "1976-07-04" {
			t.Errorf("expected 1976-07-04, got %s", FormatDate(got))
		}
	})
}

func TestHorizon(t *testing.T) {
	today := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("hot 100 rolls back by the configured years", func(t *testing.T) {
		got := Horizon(Hot100, today, 20)
		want := time.Date(2005, time.March, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("hot 100 defaults when years is unset", func(t *testing.T) {
		got := Horizon(Hot100, today, 0)
		want := time.Date(2005, time.March, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("billboard 200 is fixed at the chart's first week", func(t *testing.T) {
		got := Horizon(Billboard200, today, 20)
		if !got.Equal(Billboard200Earliest) {
			t.Errorf("expected %v, got %v", Billboard200Earliest, got)
		}
	})
}
