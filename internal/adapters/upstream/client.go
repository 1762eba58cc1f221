// Package upstream is the shared HTTP client for the league and ranking
// services: rate limited, circuit broken and instrumented.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/okian/lineup/pkg/logger"
	"github.com/okian/lineup/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultTimeout      = 20 * time.Second
	defaultPerSecond    = 5
	defaultBurst        = 1
	defaultFailureRatio = 0.6
	defaultOpenTimeout  = 30 * time.Second
	minTripRequests     = 3
	halfOpenRequests    = 1
	maxErrorBody        = 512
	maxResponseBody     = 64 << 20
)

// Client performs GET requests against one upstream source.
type Client struct {
	source    string
	http      *http.Client
	timeout   time.Duration
	userAgent string

	perSecond    float64
	burst        int
	failureRatio float64
	openTimeout  time.Duration

	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	logger  logger.Logger
}

// New creates a client for source; the name labels metrics and logs.
func New(source string, opts ...Option) *Client {
	c := &Client{
		source:       source,
		http:         &http.Client{},
		timeout:      defaultTimeout,
		userAgent:    "lineup/1.0",
		perSecond:    defaultPerSecond,
		burst:        defaultBurst,
		failureRatio: defaultFailureRatio,
		openTimeout:  defaultOpenTimeout,
		logger:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.limiter = rate.NewLimiter(rate.Limit(c.perSecond), c.burst)
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        source,
		MaxRequests: halfOpenRequests,
		Timeout:     c.openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= minTripRequests && ratio >= c.failureRatio
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			_ = metrics.UpdateBreakerState(name, breakerGauge(to))
			c.logger.Warn(context.Background(), "circuit breaker state changed",
				logger.String("source", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
		},
	})
	return c
}

// Source returns the client's source name.
func (c *Client) Source() string { return c.source }

// GetJSON fetches url and decodes the JSON body into out.
func (c *Client) GetJSON(ctx context.Context, url string, header http.Header, out any) error {
	body, err := c.Get(ctx, url, header)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, c.source, err)
	}
	return nil
}

// Get fetches url and returns the raw body. Non-2xx responses fail with
// ErrUnexpectedStatus; an open breaker fails fast with ErrCircuitOpen.
func (c *Client) Get(ctx context.Context, url string, header http.Header) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%s rate limit wait: %w", c.source, err)
	}

	start := time.Now()
	status := "error"
	res, err := c.breaker.Execute(func() (interface{}, error) {
		body, code, err := c.do(ctx, url, header)
		if code != 0 {
			status = strconv.Itoa(code)
		}
		return body, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		status = "circuit_open"
		err = fmt.Errorf("%w: %s: %w", ErrCircuitOpen, c.source, err)
	}
	metrics.RecordUpstreamRequest(c.source, status, float64(time.Since(start).Milliseconds()))

	if err != nil {
		c.logger.Debug(ctx, "upstream request failed",
			logger.String("source", c.source),
			logger.String("url", url),
			logger.Error(err),
		)
		return nil, err
	}
	return res.([]byte), nil
}

func (c *Client) do(ctx context.Context, url string, header http.Header) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s GET: %w", c.source, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%s read body: %w", c.source, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet := body
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return nil, resp.StatusCode, fmt.Errorf("%w: %s %d: %s", ErrUnexpectedStatus, c.source, resp.StatusCode, snippet)
	}
	return body, resp.StatusCode, nil
}

func breakerGauge(s gobreaker.State) int {
	switch s {
	case gobreaker.StateOpen:
		return metrics.BreakerOpen
	case gobreaker.StateHalfOpen:
		return metrics.BreakerHalfOpen
	default:
		return metrics.BreakerClosed
	}
}
