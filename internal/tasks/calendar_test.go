package tasks

import (
	"testing"
	"time"

	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/models"
)

func TestWalker(t *testing.T) {
	t.Run("steps back one week at a time", func(t *testing.T) {
		start := time.Date(2024, time.March, 23, 0, 0, 0, 0, time.UTC)
		horizon := time.Date(2024, time.February, 23, 0, 0, 0, 0, time.UTC)

		walker := NewWalker(start, horizon)

		want := []string{"2024-03-23", "2024-03-16", "2024-03-09", "2024-03-02", "2024-02-24"}
		for i, expected := range want {
			date, ok := walker.Next()
			if !ok {
				t.Fatalf("walker exhausted early at step %d", i)
			}
			if got := models.FormatDate(date); got != expected {
				t.Errorf("step %d: expected %s, got %s", i, expected, got)
			}
		}

		if _, ok := walker.Next(); ok {
			t.Error("expected walker to be exhausted")
		}
	})

	t.Run("substitutes irregular weeks without breaking cadence", func(t *testing.T) {
		start := time.Date(1976, time.July, 10, 0, 0, 0, 0, time.UTC)
		horizon := time.Date(1976, time.June, 19, 0, 0, 0, 0, time.UTC)

		walker := NewWalker(start, horizon)

		want := []string{"1976-07-10", "1976-07-04", "1976-06-26"}
		for i, expected := range want {
			date, ok := walker.Next()
			if !ok {
				t.Fatalf("walker exhausted early at step %d", i)
			}
			if got := models.FormatDate(date); got != expected {
				t.Errorf("step %d: expected %s, got %s", i, expected, got)
			}
		}
	})

	t.Run("horizon is exclusive", func(t *testing.T) {
		day := time.Date(2024, time.March, 23, 0, 0, 0, 0, time.UTC)

		walker := NewWalker(day, day)
		if _, ok := walker.Next(); ok {
			t.Error("a start equal to the horizon must produce nothing")
		}

		walker = NewWalker(day, day.AddDate(0, 0, 1))
		if _, ok := walker.Next(); ok {
			t.Error("a start before the horizon must produce nothing")
		}
	})

	t.Run("candidate one week above the horizon is produced", func(t *testing.T) {
		start := time.Date(2024, time.March, 23, 0, 0, 0, 0, time.UTC)
		horizon := start.AddDate(0, 0, -7)

		walker := NewWalker(start, horizon)

		if _, ok := walker.Next(); !ok {
			t.Fatal("expected the start itself to be produced")
		}
		if _, ok := walker.Next(); ok {
			t.Error("the candidate landing on the horizon must be excluded")
		}
	})
}
