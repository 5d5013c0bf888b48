// Package models defines the domain types for the in-philosophy checker.
//
// A [Chart] identifies one of the two Billboard charts the station's
// philosophy cares about, and carries the chart-specific facts: URL slug,
// cache table, roster size cap, and scan horizon. A roster travels through
// the core as an ordered []string of lowercase artist credits; the cache's
// joined-string encoding is confined to the repositories package, with only
// the [ArtistSeparator] constant shared so the matcher can reconstruct join
// boundaries.
//
// [FoundResult] is the value returned for one hit: the chart week's date,
// the full listing the artist appeared in, and its 1-indexed position.
//
// The odd-date table records the handful of chart weeks whose published
// date deviates from the normal Saturday cadence. Both directions are
// precomputed at startup: canonical→actual for querying, actual→canonical
// for resuming the weekly walk.
package models
