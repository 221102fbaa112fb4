// Package source provides the concrete page-fetching strategies behind
// the pagination engine.
//
// Three fetchers implement pagination.PageFetcher:
//
//   - FilesystemFetcher reads pre-fetched page files from a snapshot
//     directory. A missing file is the normal end-of-data signal.
//   - RemoteFetcher POSTs authenticated page requests to the live
//     provider API through pkg/transport.
//   - RedisFetcher reads pages a mirror run stored in Redis, using the
//     same key layout pkg/snapshot writes.
//
// All three return parsed records; payload decoding is shared through
// pkg/wire. Fetchers are stateless aside from their configuration and
// safe for concurrent use by independent cursors.
package source
