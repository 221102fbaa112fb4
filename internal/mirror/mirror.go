// Package mirror drives full snapshot runs against the distribution
// API: every page of every selected endpoint is fetched once and handed
// to a snapshot writer, then a manifest seals the run.
package mirror

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/metglobal/bookingcom-client/pkg/pagination"
	"github.com/metglobal/bookingcom-client/pkg/snapshot"
	"github.com/metglobal/bookingcom-client/pkg/transport"
	"github.com/metglobal/bookingcom-client/pkg/wire"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds how many endpoints are mirrored in parallel.
// Pages within one endpoint always stay sequential: each offset depends
// on the previous page being full.
const DefaultWorkers = 4

// Progress receives one callback per captured page.
type Progress func(endpoint string, offset, records int)

// Config holds the mirror run configuration.
type Config struct {
	// Transport fetches pages from the live API (REQUIRED).
	Transport *transport.Client

	// Writer stores captured pages and the manifest (REQUIRED).
	Writer snapshot.PageWriter

	// Endpoints lists the feeds to mirror (REQUIRED).
	Endpoints []string

	// Rows is the page size. Defaults to pagination.DefaultRows.
	Rows int

	// Workers bounds endpoint parallelism. Defaults to DefaultWorkers.
	Workers int

	// OnPage, if set, is called after each page is written.
	OnPage Progress
}

// Runner mirrors endpoint feeds into a snapshot store.
type Runner struct {
	transport *transport.Client
	writer    snapshot.PageWriter
	endpoints []string
	rows      int
	workers   int
	onPage    Progress
	logger    zerolog.Logger
}

// Result summarizes a completed run. Latency tracks per-page fetch
// times in microseconds.
type Result struct {
	Manifest *snapshot.Manifest
	Latency  *hdrhistogram.Histogram
	Elapsed  time.Duration
}

// New creates a mirror runner.
func New(cfg Config) (*Runner, error) {
	if cfg.Transport == nil {
		return nil, fmt.Errorf("transport is required")
	}
	if cfg.Writer == nil {
		return nil, fmt.Errorf("writer is required")
	}
	if len(cfg.Endpoints) == 0 {
		return nil, fmt.Errorf("at least one endpoint is required")
	}

	rows := cfg.Rows
	if rows <= 0 {
		rows = pagination.DefaultRows
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	return &Runner{
		transport: cfg.Transport,
		writer:    cfg.Writer,
		endpoints: cfg.Endpoints,
		rows:      rows,
		workers:   workers,
		onPage:    cfg.OnPage,
		logger:    log.With().Str("component", "mirror").Logger(),
	}, nil
}

// Run mirrors every configured endpoint. The manifest is written only
// after all endpoints finished, so its presence marks a complete
// snapshot. The first endpoint failure cancels the remaining work.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	manifest := snapshot.NewManifest(r.transport.BaseURL(), r.rows)

	// Page fetch latency from 1µs to 60s at 3 significant figures.
	hist := hdrhistogram.New(1, 60_000_000, 3)
	var mu sync.Mutex

	r.logger.Info().
		Str("run_id", manifest.RunID).
		Int("endpoints", len(r.endpoints)).
		Int("rows", r.rows).
		Int("workers", r.workers).
		Msg("Mirror run started")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, endpoint := range r.endpoints {
		g.Go(func() error {
			return r.mirrorEndpoint(ctx, endpoint, manifest, hist, &mu)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := r.writer.WriteManifest(ctx, manifest); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	r.logger.Info().
		Str("run_id", manifest.RunID).
		Int("pages", manifest.TotalPages()).
		Int("records", manifest.TotalRecords()).
		Int("bytes", manifest.TotalBytes()).
		Dur("elapsed", elapsed).
		Msg("Mirror run complete")

	return &Result{
		Manifest: manifest,
		Latency:  hist,
		Elapsed:  elapsed,
	}, nil
}

// mirrorEndpoint walks one feed from offset 0 until a short or empty
// page. Empty pages are not written: a missing page file is how readers
// recognize end-of-data.
func (r *Runner) mirrorEndpoint(ctx context.Context, endpoint string, manifest *snapshot.Manifest, hist *hdrhistogram.Histogram, mu *sync.Mutex) error {
	offset := 0
	pages := 0

	for {
		fetchStart := time.Now()
		data, err := r.transport.Call(ctx, endpoint, offset, r.rows)
		if err != nil {
			return fmt.Errorf("mirror %s at offset %d: %w", endpoint, offset, err)
		}

		mu.Lock()
		us := time.Since(fetchStart).Microseconds()
		if us < hist.LowestTrackableValue() {
			us = hist.LowestTrackableValue()
		}
		if us > hist.HighestTrackableValue() {
			us = hist.HighestTrackableValue()
		}
		_ = hist.RecordValue(us)
		mu.Unlock()

		records, err := wire.DecodePage(data, endpoint)
		if err != nil {
			return fmt.Errorf("mirror %s at offset %d: %w", endpoint, offset, err)
		}

		if len(records) == 0 {
			break
		}

		if err := r.writer.WritePage(ctx, endpoint, offset, data); err != nil {
			return fmt.Errorf("mirror %s at offset %d: %w", endpoint, offset, err)
		}

		mu.Lock()
		manifest.Observe(endpoint, len(records), len(data))
		mu.Unlock()

		if r.onPage != nil {
			r.onPage(endpoint, offset, len(records))
		}

		pages++
		if len(records) < r.rows {
			break
		}
		offset += r.rows
	}

	r.logger.Debug().
		Str("endpoint", endpoint).
		Int("pages", pages).
		Msg("Endpoint mirrored")

	return nil
}
