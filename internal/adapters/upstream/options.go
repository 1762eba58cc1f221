package upstream

import (
	"net/http"
	"time"

	"github.com/okian/lineup/pkg/logger"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.timeout = d
		}
	}
}

// WithRateLimit bounds outgoing requests per second.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(cl *Client) {
		if perSecond > 0 {
			cl.perSecond = perSecond
		}
		if burst > 0 {
			cl.burst = burst
		}
	}
}

// WithBreaker configures when the circuit breaker trips and how long it
// stays open.
func WithBreaker(failureRatio float64, openTimeout time.Duration) Option {
	return func(cl *Client) {
		if failureRatio > 0 && failureRatio <= 1 {
			cl.failureRatio = failureRatio
		}
		if openTimeout > 0 {
			cl.openTimeout = openTimeout
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		if ua != "" {
			cl.userAgent = ua
		}
	}
}

// WithLogger sets a custom logger for the client.
func WithLogger(l logger.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}
