package roster

import (
	"github.com/okian/lineup/internal/domain/matching"
	"github.com/okian/lineup/pkg/logger"
)

// Option applies a configuration option to the Assembler.
type Option func(*Assembler)

// WithMatcher sets the matching strategy.
func WithMatcher(m matching.Matcher) Option {
	return func(a *Assembler) {
		if m != nil {
			a.matcher = m
		}
	}
}

// WithLogger sets a custom logger for the assembler.
func WithLogger(l logger.Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.logger = l
		}
	}
}
