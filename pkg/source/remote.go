package source

import (
	"context"

	"github.com/metglobal/bookingcom-client/pkg/pagination"
	"github.com/metglobal/bookingcom-client/pkg/transport"
	"github.com/metglobal/bookingcom-client/pkg/wire"
)

// RemoteFetcher pulls pages from the live provider API.
type RemoteFetcher struct {
	transport *transport.Client
}

// NewRemoteFetcher creates a fetcher issuing requests through the given
// transport client.
func NewRemoteFetcher(client *transport.Client) *RemoteFetcher {
	return &RemoteFetcher{transport: client}
}

// FetchPage requests one page from the provider. Transport failures and
// non-2xx statuses fail fast; the provider signals end-of-data with a
// 2xx page carrying no result records, which decodes to an empty page.
func (f *RemoteFetcher) FetchPage(ctx context.Context, endpoint string, offset, rows int) (pagination.Page, error) {
	body, err := f.transport.Call(ctx, endpoint, offset, rows)
	if err != nil {
		fetchErrorsTotal.WithLabelValues("remote", endpoint).Inc()
		return nil, err
	}

	records, err := wire.DecodePage(body, endpoint)
	if err != nil {
		fetchErrorsTotal.WithLabelValues("remote", endpoint).Inc()
		return nil, err
	}

	pagesFetchedTotal.WithLabelValues("remote", endpoint).Inc()
	return pagination.Page(records), nil
}
