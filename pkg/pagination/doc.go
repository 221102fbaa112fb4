// Package pagination implements the paged iteration engine for provider
// endpoints.
//
// The provider only serves data page by page in a fixed number of rows,
// so this package presents each endpoint as a single lazily-produced
// sequence: a Cursor holds the current page, a position into it, and a
// running offset, and pulls the next page through a PageFetcher as the
// consumer advances past a full page.
//
// Example usage:
//
//	cur := pagination.NewCursor(fetcher, "getCountries", 1000)
//	countries, err := pagination.Collect(ctx, cur)
//
// The cursor:
//   - Fetches the first page on the first Next call
//   - Pre-fetches the next page when a full page is consumed
//   - Terminates on a short or empty page without an extra probe fetch
//   - Resets after natural exhaustion so the traversal can be repeated
//
// Pulls are strictly sequential; there is no parallel prefetch. Run
// independent cursors in separate goroutines to fetch endpoints in
// parallel.
package pagination
