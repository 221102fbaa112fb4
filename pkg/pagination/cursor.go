package pagination

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/metglobal/bookingcom-client/pkg/wire"
)

// DefaultRows is the largest page size the provider serves and the
// default when none is configured.
const DefaultRows = 1000

// Page is one batch of records returned by a single fetch at a given
// offset. A nil or empty page signals no data at that offset.
type Page []wire.Record

// PageFetcher is the interface data sources must implement for
// single-page fetching.
type PageFetcher interface {
	// FetchPage returns the page of records starting at offset, at most
	// rows long. A nil page with nil error means no data at that offset.
	FetchPage(ctx context.Context, endpoint string, offset, rows int) (Page, error)
}

// Cursor is a stateful, single-pass traversal over one endpoint's
// records, pulling pages from its PageFetcher as the consumer advances.
//
// The usual loop:
//
//	cur := pagination.NewCursor(fetcher, "getCountries", 1000)
//	for cur.Next(ctx) {
//		rec := cur.Record()
//		...
//	}
//	if err := cur.Err(); err != nil {
//		return err
//	}
//
// After natural exhaustion the cursor resets itself, so the same loop
// run again reproduces the identical sequence from the start. A cursor
// abandoned mid-traversal must be Reset before reuse.
//
// A Cursor is not safe for concurrent use; run one goroutine per cursor.
type Cursor struct {
	fetcher  PageFetcher
	endpoint string
	rows     int

	buffer  Page
	pos     int
	offset  int
	primed  bool
	current wire.Record
	err     error
}

// NewCursor creates a cursor over endpoint using fetcher. A rows value
// of zero or less falls back to DefaultRows.
func NewCursor(fetcher PageFetcher, endpoint string, rows int) *Cursor {
	if rows <= 0 {
		rows = DefaultRows
	}
	return &Cursor{
		fetcher:  fetcher,
		endpoint: endpoint,
		rows:     rows,
	}
}

// Next advances the cursor to the next record. It returns false when
// the sequence is exhausted or a fetch failed; Err distinguishes the
// two.
//
// When Next hands out the last record of a full page it eagerly fetches
// the following page before returning, so the page boundary costs one
// extra round-trip inside that call instead of a probe fetch on the
// next one. A fetch failure at the boundary surfaces from that same
// call and the boundary record is not delivered.
func (c *Cursor) Next(ctx context.Context) bool {
	if c.err != nil {
		return false
	}

	if !c.primed {
		if !c.fetch(ctx) {
			return false
		}
		c.primed = true
	}

	if c.pos < len(c.buffer) {
		c.current = c.buffer[c.pos]
		c.pos++

		// Full page consumed: more data may exist, pull the next page
		// now so a trailing short page ends iteration without a probe.
		if c.pos == len(c.buffer) && len(c.buffer) == c.rows {
			c.offset += c.rows
			c.pos = 0
			if !c.fetch(ctx) {
				return false
			}
		}

		recordsTotal.WithLabelValues(c.endpoint).Inc()
		return true
	}

	log.Debug().
		Str("endpoint", c.endpoint).
		Int("rows", c.rows).
		Msg("Sequence exhausted")
	sequencesCompletedTotal.WithLabelValues(c.endpoint).Inc()
	c.Reset()
	return false
}

// fetch replaces the buffer with the page at the current offset.
func (c *Cursor) fetch(ctx context.Context) bool {
	page, err := c.fetcher.FetchPage(ctx, c.endpoint, c.offset, c.rows)
	if err != nil {
		log.Warn().
			Err(err).
			Str("endpoint", c.endpoint).
			Int("offset", c.offset).
			Msg("Page fetch failed")
		c.err = err
		return false
	}
	c.buffer = page
	return true
}

// Record returns the record Next last advanced to. It is only valid
// after a Next call that returned true.
func (c *Cursor) Record() wire.Record {
	return c.current
}

// Err returns the first error the cursor hit, or nil after natural
// exhaustion.
func (c *Cursor) Err() error {
	return c.err
}

// Reset returns the cursor to its initial state so the next Next call
// starts over at offset zero. It is the only supported way to reuse a
// cursor abandoned mid-traversal.
func (c *Cursor) Reset() {
	c.buffer = nil
	c.pos = 0
	c.offset = 0
	c.primed = false
	c.current = nil
	c.err = nil
}

// Endpoint returns the endpoint name this cursor traverses.
func (c *Cursor) Endpoint() string {
	return c.endpoint
}

// Rows returns the page size this cursor fetches with.
func (c *Cursor) Rows() int {
	return c.rows
}
