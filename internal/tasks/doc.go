// Package tasks implements the retrospective chart scan.
//
// # Core Operations
//
// The [Engine] drives one backward scan per invocation:
//
//  1. Anchor: the chart source resolves the requested starting date to the
//     nearest published chart week, and a resolved irregular date is mapped
//     back to its canonical Saturday so the walk stays on the canonical
//     timeline.
//  2. Walk: a [Walker] yields candidate dates, strictly seven days apart on
//     the canonical timeline, substituting the actual published date for
//     known irregular weeks on a per-query basis.
//  3. Resolve: each candidate's roster comes from the snapshot cache
//     (persistent store first, source fetch on miss).
//  4. Match: [FindArtist] checks the roster; the first hit ends the scan.
//
// A scan is resumable but stateless: [Engine.Search] returns at most one
// [models.FoundResult], and the caller re-invokes it with a start one week
// before the hit to enumerate earlier occurrences. [Engine.SearchAll] is
// that caller-driven loop packaged for non-interactive use.
//
// Fetch failures abort the scan and propagate; reaching the horizon without
// a match returns nil, which is the normal "never charted" outcome.
package tasks
