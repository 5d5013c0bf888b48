package tasks

import (
	"time"

	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/models"
)

// Walker produces the sequence of candidate chart dates for one scan,
// walking backward one week at a time from start until the horizon.
//
// The cadence is computed on the canonical timeline: when a candidate is a
// known irregular week, Next returns the substituted actual published date
// for querying, but the following candidate is still canonical minus seven
// days. A Walker never revisits a date and cannot be restarted.
type Walker struct {
	current time.Time
	horizon time.Time
}

// NewWalker creates a Walker from start (inclusive) down to horizon
// (exclusive). Candidates at or before the horizon are never produced.
func NewWalker(start, horizon time.Time) *Walker {
	return &Walker{current: start, horizon: horizon}
}

// Next returns the next candidate date to query, or false when the scan is
// exhausted. The returned date is the one to use against the cache and
// source; for irregular weeks it differs from the canonical date that
// drives the cadence.
func (w *Walker) Next() (time.Time, bool) {
	if !w.current.After(w.horizon) {
		return time.Time{}, false
	}

	query := w.current
	if actual, ok := models.ActualDate(w.current); ok {
		query = actual
	}

	// Step from the canonical date, not the substituted one.
	w.current = w.current.AddDate(0, 0, -7)

	return query, true
}
