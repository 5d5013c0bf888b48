// Package services defines the [ChartSource] interface for weekly chart
// providers and implements it for billboard.com.
//
// # ChartSource Interface
//
// A chart source answers two questions: which week a requested date falls in
// ([ChartSource.Resolve]), and what the ranked roster for a week is
// ([ChartSource.Fetch]). Billboard resolves any requested date to the
// nearest published chart week server-side, so both operations accept
// arbitrary dates.
//
// # Billboard Implementation
//
// [BillboardService] fetches public chart pages over HTTP and extracts the
// "Week of ..." published date and the ranked artist credits from the page
// markup with golang.org/x/net/html. No authentication is involved.
// Requests pass through a golang.org/x/time/rate limiter because a single
// horizon scan on a cold cache can touch a thousand chart weeks.
//
// # Error Handling
//
// Sources use typed errors from the shared package:
//   - [shared.ErrSourceUnavailable] : transport failure, non-2xx status, or unparseable page
//   - [shared.ErrEmptyRoster] : page parsed but carried no entries
//
// Both are fatal to the scan in progress; nothing here retries.
package services
