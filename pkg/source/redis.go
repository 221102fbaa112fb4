package source

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/metglobal/bookingcom-client/pkg/pagination"
	"github.com/metglobal/bookingcom-client/pkg/snapshot"
	"github.com/metglobal/bookingcom-client/pkg/wire"
)

// RedisFetcher reads pages a mirror run stored in Redis under
// <prefix>:<endpoint>:offset_<offset>.
type RedisFetcher struct {
	redis  *redis.Client
	prefix string
	logger zerolog.Logger
}

// NewRedisFetcher creates a fetcher reading pages under the given key
// prefix. An empty prefix falls back to snapshot.DefaultKeyPrefix.
func NewRedisFetcher(redisClient *redis.Client, prefix string) *RedisFetcher {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	if prefix == "" {
		prefix = snapshot.DefaultKeyPrefix
	}
	return &RedisFetcher{
		redis:  redisClient,
		prefix: prefix,
		logger: log.With().Str("component", "source").Str("source", "redis").Logger(),
	}
}

// FetchPage reads the page key for endpoint at offset. A missing key is
// the normal end-of-data signal; any other Redis failure propagates.
func (f *RedisFetcher) FetchPage(ctx context.Context, endpoint string, offset, rows int) (pagination.Page, error) {
	key := snapshot.PageKey(f.prefix, endpoint, offset)

	data, err := f.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		fetchErrorsTotal.WithLabelValues("redis", endpoint).Inc()
		return nil, fmt.Errorf("read %s page: %w", endpoint, err)
	}

	records, err := wire.DecodePage(data, endpoint)
	if err != nil {
		fetchErrorsTotal.WithLabelValues("redis", endpoint).Inc()
		return nil, err
	}

	pagesFetchedTotal.WithLabelValues("redis", endpoint).Inc()
	f.logger.Debug().
		Str("endpoint", endpoint).
		Int("offset", offset).
		Int("records", len(records)).
		Msg("Page read")

	return pagination.Page(records), nil
}
