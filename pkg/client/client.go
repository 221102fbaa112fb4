// Package client exposes the booking.com distribution API as a closed
// catalog of paginated endpoint accessors backed by a pluggable page
// source.
package client

import (
	"fmt"
	"slices"
	"time"

	"github.com/metglobal/bookingcom-client/pkg/logging"
	"github.com/metglobal/bookingcom-client/pkg/pagination"
	"github.com/metglobal/bookingcom-client/pkg/snapshot"
	"github.com/metglobal/bookingcom-client/pkg/source"
	"github.com/metglobal/bookingcom-client/pkg/transport"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Strategy selects where endpoint pages are read from.
type Strategy string

const (
	// StrategyFilesystem reads pages from a local snapshot directory.
	StrategyFilesystem Strategy = "filesystem"

	// StrategyRemote reads pages from the live distribution API.
	StrategyRemote Strategy = "remote"

	// StrategyRedis reads pages from a Redis snapshot.
	StrategyRedis Strategy = "redis"
)

// Client is the main distribution API client. Every accessor returns a
// fresh cursor, so one client can drive any number of concurrent
// traversals.
type Client struct {
	fetcher pagination.PageFetcher
	config  Config
	logger  zerolog.Logger
}

// Config holds the client configuration. Only the fields of the chosen
// strategy are consulted.
type Config struct {
	// Strategy selects the page source. Defaults to StrategyFilesystem.
	Strategy Strategy

	// Rows is the page size requested per fetch. Cursors built from a
	// snapshot must use the rows the snapshot was written with.
	Rows int

	// Filesystem strategy
	Root string // snapshot directory, defaults to snapshot.DefaultRoot

	// Remote strategy
	BaseURL           string
	Username          string
	Password          string
	UserAgent         string
	Timeout           time.Duration
	RequestsPerSecond float64 // 0 disables request pacing

	// Redis strategy
	Redis     *redis.Client
	KeyPrefix string

	// Fetcher overrides the strategy-built page source (for testing).
	Fetcher pagination.PageFetcher
}

// DefaultConfig returns a configuration reading from the default local
// snapshot directory.
func DefaultConfig() Config {
	return Config{
		Strategy: StrategyFilesystem,
		Rows:     pagination.DefaultRows,
		Root:     snapshot.DefaultRoot,
	}
}

// New creates a new distribution API client.
func New(cfg Config) (*Client, error) {
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyFilesystem
	}
	if cfg.Rows <= 0 {
		cfg.Rows = pagination.DefaultRows
	}

	logger := logging.NewLogger("booking-client")

	fetcher := cfg.Fetcher
	if fetcher == nil {
		var err error
		fetcher, err = newFetcher(cfg)
		if err != nil {
			return nil, err
		}
	}

	logger.Debug().
		Str("strategy", string(cfg.Strategy)).
		Int("rows", cfg.Rows).
		Msg("Client created")

	return &Client{
		fetcher: fetcher,
		config:  cfg,
		logger:  logger,
	}, nil
}

// newFetcher builds the page source the configured strategy names.
func newFetcher(cfg Config) (pagination.PageFetcher, error) {
	switch cfg.Strategy {
	case StrategyFilesystem:
		return source.NewFilesystemFetcher(cfg.Root), nil

	case StrategyRemote:
		tc := transport.DefaultConfig(cfg.Username, cfg.Password)
		if cfg.BaseURL != "" {
			tc.BaseURL = cfg.BaseURL
		}
		if cfg.UserAgent != "" {
			tc.UserAgent = cfg.UserAgent
		}
		if cfg.Timeout > 0 {
			tc.Timeout = cfg.Timeout
		}
		tc.RequestsPerSecond = cfg.RequestsPerSecond

		tr, err := transport.New(tc)
		if err != nil {
			return nil, err
		}
		return source.NewRemoteFetcher(tr), nil

	case StrategyRedis:
		if cfg.Redis == nil {
			return nil, fmt.Errorf("redis client is required for the redis strategy")
		}
		return source.NewRedisFetcher(cfg.Redis, cfg.KeyPrefix), nil

	default:
		return nil, fmt.Errorf("unknown strategy %q", cfg.Strategy)
	}
}

// Option adjusts how a single cursor is built.
type Option func(*cursorSettings)

type cursorSettings struct {
	rows int
}

// WithRows overrides the page size for one cursor. Zero or negative
// values fall back to the client's configured rows.
func WithRows(rows int) Option {
	return func(s *cursorSettings) {
		if rows > 0 {
			s.rows = rows
		}
	}
}

// Endpoint returns a fresh cursor over any catalog endpoint by name.
// Names outside the catalog answer ErrUnknownEndpoint.
func (c *Client) Endpoint(name string, opts ...Option) (*pagination.Cursor, error) {
	if !slices.Contains(Catalog, name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, name)
	}
	return c.cursor(name, opts...), nil
}

func (c *Client) cursor(endpoint string, opts ...Option) *pagination.Cursor {
	settings := cursorSettings{rows: c.config.Rows}
	for _, opt := range opts {
		opt(&settings)
	}
	return pagination.NewCursor(c.fetcher, endpoint, settings.rows)
}
