// Package transport performs authenticated page requests against the
// provider's distribution API.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/metglobal/bookingcom-client/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Prometheus metrics for provider requests.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_requests_total",
		Help: "Total provider requests by endpoint and status",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "booking_request_duration_seconds",
		Help:    "Provider request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})
)

// DefaultBaseURL is the provider's distribution API root.
const DefaultBaseURL = "http://distribution-xml.booking.com/xml/"

// Client issues authenticated page requests to the provider.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	config     Config
	logger     zerolog.Logger
}

// Config holds the transport configuration.
type Config struct {
	// BaseURL is the API root the endpoint name is appended to. It must
	// end with a slash; request URLs are formed as <BaseURL>bookings.<endpoint>.
	BaseURL string

	// Username and Password are the provider account credentials sent
	// as basic auth on every request (REQUIRED).
	Username string
	Password string

	// UserAgent header sent with every request.
	UserAgent string

	// Timeout per request.
	Timeout time.Duration

	// RequestsPerSecond paces outbound requests. Zero disables pacing.
	RequestsPerSecond float64
}

// DefaultConfig returns a safe default configuration for the given
// provider credentials.
func DefaultConfig(username, password string) Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Username:  username,
		Password:  password,
		UserAgent: "bookingcom-client/1.0",
		Timeout:   30 * time.Second,
	}
}

// New creates a new transport client.
func New(cfg Config) (*Client, error) {
	if cfg.Username == "" {
		return nil, fmt.Errorf("username is required")
	}

	if cfg.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	logger := logging.NewLogger("transport")

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: limiter,
		config:  cfg,
		logger:  logger,
	}, nil
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// EndpointURL returns the request URL for an endpoint.
func (c *Client) EndpointURL(endpoint string) string {
	return c.config.BaseURL + "bookings." + endpoint
}

// Call POSTs one page request for endpoint at the given offset and rows
// and returns the raw response body. Any non-2xx status is returned as
// a *StatusError.
func (c *Client) Call(ctx context.Context, endpoint string, offset, rows int) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("pacing %s request: %w", endpoint, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.EndpointURL(endpoint), nil)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", endpoint, err)
	}

	q := req.URL.Query()
	q.Set("offset", strconv.Itoa(offset))
	q.Set("rows", strconv.Itoa(rows))
	req.URL.RawQuery = q.Encode()

	req.SetBasicAuth(c.config.Username, c.config.Password)
	req.Header.Set("User-Agent", c.config.UserAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return nil, fmt.Errorf("%s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status_code", resp.StatusCode).
			Int("offset", offset).
			Msg("Provider returned error status")
		return nil, &StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", endpoint, err)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("offset", offset).
		Int("rows", rows).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("Page fetched")

	return body, nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
