package source

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/metglobal/bookingcom-client/pkg/pagination"
	"github.com/metglobal/bookingcom-client/pkg/snapshot"
	"github.com/metglobal/bookingcom-client/pkg/wire"
)

// FilesystemFetcher reads pages from a snapshot directory laid out as
// <root>/<endpoint>/offset_<offset>.xml.
type FilesystemFetcher struct {
	root   string
	logger zerolog.Logger
}

// NewFilesystemFetcher creates a fetcher reading from root. An empty
// root falls back to snapshot.DefaultRoot.
func NewFilesystemFetcher(root string) *FilesystemFetcher {
	if root == "" {
		root = snapshot.DefaultRoot
	}
	return &FilesystemFetcher{
		root:   root,
		logger: log.With().Str("component", "source").Str("source", "filesystem").Logger(),
	}
}

// FetchPage reads the page file for endpoint at offset.
//
// A missing file is the normal end-of-data signal and returns no page
// and no error. A file that exists but cannot be read degrades to an
// empty page instead of failing, so iteration still terminates; the
// condition is logged and counted in booking_degraded_reads_total.
// Decode failures propagate.
func (f *FilesystemFetcher) FetchPage(ctx context.Context, endpoint string, offset, rows int) (pagination.Page, error) {
	path := snapshot.PagePath(f.root, endpoint, offset)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		f.logger.Warn().
			Err(err).
			Str("endpoint", endpoint).
			Str("path", path).
			Msg("Degraded read, serving empty page")
		degradedReadsTotal.WithLabelValues(endpoint).Inc()
		return pagination.Page{}, nil
	}

	records, err := wire.DecodePage(data, endpoint)
	if err != nil {
		fetchErrorsTotal.WithLabelValues("filesystem", endpoint).Inc()
		return nil, err
	}

	pagesFetchedTotal.WithLabelValues("filesystem", endpoint).Inc()
	f.logger.Debug().
		Str("endpoint", endpoint).
		Int("offset", offset).
		Int("records", len(records)).
		Str("path", path).
		Msg("Page read")

	return pagination.Page(records), nil
}
