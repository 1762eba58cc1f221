// Package config defines process configuration and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Load layers a YAML file and the environment on top of the defaults.
// - Errors returned from this package wrap ErrInvalidConfig or ErrLoadConfig.
package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/okian/lineup/internal/domain/matching"
	"github.com/okian/lineup/internal/domain/model"
)

// Scoring formats accepted by the ranking feed.
const (
	ScoringStandard = "STD"
	ScoringHalf     = "HALF"
	ScoringPPR      = "PPR"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address for serve, e.g. ":9090".
	Addr string `koanf:"addr"`

	// LeagueID and UserID select the league and the owner whose roster is analysed.
	LeagueID string `koanf:"league_id"`
	UserID   string `koanf:"user_id"`

	// FantasyProsAPIKey authenticates ranking requests.
	FantasyProsAPIKey string `koanf:"fantasypros_api_key"`

	// Season and Week pin the ranking period. Zero means "current", taken
	// from the league service state.
	Season int `koanf:"season"`
	Week   int `koanf:"week"`

	// Scoring is the ranking scoring format: STD, HALF or PPR.
	Scoring string `koanf:"scoring"`

	// Positions lists the analysed positions in output order.
	Positions []string `koanf:"positions"`

	// ExcludedIDs are catalog identifiers dropped at catalog build.
	ExcludedIDs []string `koanf:"excluded_ids"`

	// CatalogPath is where the player catalog snapshot is stored.
	CatalogPath string `koanf:"catalog_path"`

	// Matcher selects the name matching strategy.
	Matcher string `koanf:"matcher"`

	SleeperBaseURL     string `koanf:"sleeper_base_url"`
	FantasyProsBaseURL string `koanf:"fantasypros_base_url"`

	// HTTPTimeout bounds every upstream request.
	HTTPTimeout time.Duration `koanf:"http_timeout"`

	// RequestsPerSecond is the client-side rate limit per upstream.
	RequestsPerSecond float64 `koanf:"requests_per_second"`

	// BreakerFailureRatio and BreakerOpenTimeout tune the upstream circuit breakers.
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio"`
	BreakerOpenTimeout  time.Duration `koanf:"breaker_open_timeout"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9090",
		Scoring:             ScoringHalf,
		Positions:           defaultPositions(),
		ExcludedIDs:         []string{},
		CatalogPath:         "players.json",
		Matcher:             matching.StrategySubstring,
		SleeperBaseURL:      "https://api.sleeper.app/v1",
		FantasyProsBaseURL:  "https://api.fantasypros.com/v2/json/nfl",
		HTTPTimeout:         20 * time.Second,
		RequestsPerSecond:   5,
		BreakerFailureRatio: 0.6,
		BreakerOpenTimeout:  30 * time.Second,
	}
}

func defaultPositions() []string {
	ps := model.SupportedPositions()
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}

// PositionList returns Positions parsed into domain positions.
// Call Validate first; unknown labels are skipped here.
func (c *Config) PositionList() []model.Position {
	out := make([]model.Position, 0, len(c.Positions))
	for _, s := range c.Positions {
		if p := model.ParsePosition(s); p.IsSupported() {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks settings needed by every command.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.CatalogPath == "" {
		return fmt.Errorf("%w: catalog_path must not be empty", ErrInvalidConfig)
	}
	if len(c.Positions) == 0 {
		return fmt.Errorf("%w: positions must not be empty", ErrInvalidConfig)
	}
	seen := make(map[model.Position]struct{}, len(c.Positions))
	for _, s := range c.Positions {
		p := model.ParsePosition(s)
		if !p.IsSupported() {
			return fmt.Errorf("%w: unknown position %q", ErrInvalidConfig, s)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: duplicate position %q", ErrInvalidConfig, s)
		}
		seen[p] = struct{}{}
	}
	switch strings.ToUpper(c.Scoring) {
	case ScoringStandard, ScoringHalf, ScoringPPR:
	default:
		return fmt.Errorf("%w: unknown scoring %q", ErrInvalidConfig, c.Scoring)
	}
	if _, err := matching.New(c.Matcher); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Season < 0 || c.Week < 0 {
		return fmt.Errorf("%w: season and week must not be negative", ErrInvalidConfig)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: http_timeout must be positive", ErrInvalidConfig)
	}
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: requests_per_second must be positive", ErrInvalidConfig)
	}
	if c.BreakerFailureRatio <= 0 || c.BreakerFailureRatio > 1 {
		return fmt.Errorf("%w: breaker_failure_ratio must be in (0, 1]", ErrInvalidConfig)
	}
	if c.BreakerOpenTimeout <= 0 {
		return fmt.Errorf("%w: breaker_open_timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

// ValidateRun checks Validate plus the credentials an analysis run needs.
func (c *Config) ValidateRun() error {
	if err := c.Validate(); err != nil {
		return err
	}
	var missing []string
	if c.LeagueID == "" {
		missing = append(missing, "league_id")
	}
	if c.UserID == "" {
		missing = append(missing, "user_id")
	}
	if c.FantasyProsAPIKey == "" {
		missing = append(missing, "fantasypros_api_key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}
	return nil
}
