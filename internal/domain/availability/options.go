package availability

import (
	"github.com/okian/lineup/internal/domain/matching"
	"github.com/okian/lineup/pkg/logger"
)

// Option applies a configuration option to the Resolver.
type Option func(*Resolver)

// WithMatcher sets the matching strategy.
func WithMatcher(m matching.Matcher) Option {
	return func(r *Resolver) {
		if m != nil {
			r.matcher = m
		}
	}
}

// WithLogger sets a custom logger for the resolver.
func WithLogger(l logger.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}
