package pagination

import (
	"context"

	"github.com/metglobal/bookingcom-client/pkg/wire"
)

// Collect drains the cursor into a slice. It returns the records
// gathered up to the first fetch error, or all records and nil when the
// cursor exhausts naturally.
func Collect(ctx context.Context, c *Cursor) ([]wire.Record, error) {
	var records []wire.Record
	for c.Next(ctx) {
		records = append(records, c.Record())
	}
	return records, c.Err()
}
