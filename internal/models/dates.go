package models

import (
	"fmt"
	"time"

	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/shared"
)

// DateLayout is the ISO date format used for cache keys and chart URLs.
const DateLayout = "2006-01-02"

// DefaultSinglesHorizonYears is the rolling Hot 100 horizon: chart weeks
// older than this never disqualify an artist.
const DefaultSinglesHorizonYears = 20

// Billboard200Earliest is the first published Billboard 200 chart week.
var Billboard200Earliest = time.Date(1963, time.August, 17, 0, 0, 0, 0, time.UTC)

// oddDatePairs lists chart weeks whose actual published date deviates from
// the normal Saturday cadence, keyed by the canonical Saturday.
var oddDatePairs = [][2]string{
	{"1976-07-03", "1976-07-04"},
}

var (
	canonicalToActual map[string]string
	actualToCanonical map[string]string
)

func init() {
	canonicalToActual = make(map[string]string, len(oddDatePairs))
	actualToCanonical = make(map[string]string, len(oddDatePairs))
	for _, pair := range oddDatePairs {
		canonical, actual := pair[0], pair[1]
		for _, s := range pair {
			if _, err := time.Parse(DateLayout, s); err != nil {
				panic(fmt.Sprintf("odd-date table entry %q: %v", s, err))
			}
		}
		if _, dup := canonicalToActual[canonical]; dup {
			panic(fmt.Sprintf("odd-date table has duplicate canonical date %q", canonical))
		}
		if _, dup := actualToCanonical[actual]; dup {
			panic(fmt.Sprintf("odd-date table has duplicate actual date %q", actual))
		}
		canonicalToActual[canonical] = actual
		actualToCanonical[actual] = canonical
	}
}

// ActualDate returns the actual published date for a canonical chart date,
// if the date is a known irregular week.
func ActualDate(canonical time.Time) (time.Time, bool) {
	return lookupOddDate(canonicalToActual, canonical)
}

// CanonicalDate returns the canonical chart date for an actual published
// date, if the date is a known irregular week.
func CanonicalDate(actual time.Time) (time.Time, bool) {
	return lookupOddDate(actualToCanonical, actual)
}

func lookupOddDate(table map[string]string, date time.Time) (time.Time, bool) {
	mapped, ok := table[FormatDate(date)]
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, mapped)
	if err != nil {
		// Entries are validated at init; reaching this is a defect.
		panic(fmt.Sprintf("odd-date table entry %q: %v", mapped, err))
	}
	return t.UTC(), true
}

// ParseDate parses an ISO chart date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", shared.ErrMalformedDate, s)
	}
	return t.UTC(), nil
}

// FormatDate formats a chart date as an ISO string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Horizon returns the oldest date a scan of the chart will examine before
// giving up. Dates at or before the horizon are never queried.
func Horizon(c Chart, today time.Time, singlesHorizonYears int) time.Time {
	if c == Billboard200 {
		return Billboard200Earliest
	}
	if singlesHorizonYears <= 0 {
		singlesHorizonYears = DefaultSinglesHorizonYears
	}
	y, m, d := today.Date()
	return time.Date(y-singlesHorizonYears, m, d, 0, 0, 0, 0, time.UTC)
}
