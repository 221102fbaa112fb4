// Package snapshot defines the on-disk and Redis layouts for mirrored
// provider data, and the writers that populate them.
//
// A snapshot is a full dump of one or more endpoints, split into page
// files exactly as the provider served them, so the filesystem and
// Redis page fetchers can replay them later without touching the
// network:
//
//	<root>/<endpoint>/offset_<offset>.xml     filesystem layout
//	<prefix>:<endpoint>:offset_<offset>       Redis key layout
//
// Every snapshot run writes a manifest describing what was captured
// (run id, source URL, page size, per-endpoint page/record/byte
// counts).
//
// # Basic Usage
//
//	writer, err := snapshot.NewDirWriter("/tmp/bookingcom")
//	if err != nil {
//		return err
//	}
//	defer writer.Close()
//
//	if err := writer.WritePage(ctx, "getCountries", 0, body); err != nil {
//		return err
//	}
//
//	manifest := snapshot.NewManifest(baseURL, 1000)
//	manifest.Observe("getCountries", len(records), len(body))
//	if err := writer.WriteManifest(ctx, manifest); err != nil {
//		return err
//	}
//
// DirWriter holds a file lock on the snapshot root for the lifetime of
// the run, so two mirror processes cannot interleave pages in the same
// directory. Page and manifest writes go through a temp file and rename
// so readers never observe a partial page.
//
// # Metrics
//
// The writers export Prometheus metrics:
//
//   - booking_snapshot_pages_written_total{endpoint} - Pages persisted
//   - booking_snapshot_bytes_written_total{endpoint} - Payload bytes persisted
package snapshot
