// Package repositories implements SQLite persistence for chart-week
// snapshots.
//
// Each chart owns one table (hot100, bb200) keyed by ISO date with the
// week's roster stored as a single lowercase string joined by the
// [models.ArtistSeparator]. The join/split encoding is confined to this
// package; everything above it sees rosters as ordered []string values.
//
// Key Implementations:
//   - [SnapshotRepository] : point lookup, point insert, maintenance purge, table stats
//   - [SnapshotCache] : get-or-fetch composition over the repository and a chart source
//
// Writes commit immediately, one row per cache miss. Maintenance
// ([SnapshotRepository.Prune]) runs at cache initialization: Hot 100 rows
// older than the singles horizon and empty rosters in either table (an
// upstream data artifact) are deleted.
package repositories
