package main

import (
	"github.com/okian/lineup/internal/adapters/fantasypros"
	"github.com/okian/lineup/internal/adapters/repository"
	"github.com/okian/lineup/internal/adapters/sleeper"
	"github.com/okian/lineup/internal/adapters/upstream"
	service "github.com/okian/lineup/internal/app"
	"github.com/okian/lineup/internal/config"
	"github.com/okian/lineup/internal/domain/matching"
	"github.com/okian/lineup/pkg/logger"
)

const (
	sourceSleeper     = "sleeper"
	sourceFantasyPros = "fantasypros"
	upstreamBurst     = 6
)

func newUpstream(cfg *config.Config, source string, log logger.Logger) *upstream.Client {
	return upstream.New(source,
		upstream.WithTimeout(cfg.HTTPTimeout),
		upstream.WithRateLimit(cfg.RequestsPerSecond, upstreamBurst),
		upstream.WithBreaker(cfg.BreakerFailureRatio, cfg.BreakerOpenTimeout),
		upstream.WithLogger(log.Named("upstream")),
	)
}

// newService wires the adapters described by cfg into a Service.
func newService(cfg *config.Config, log logger.Logger) (*service.Service, error) {
	m, err := matching.New(cfg.Matcher)
	if err != nil {
		return nil, err
	}
	store, err := repository.NewFileStore(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	league := sleeper.NewClient(cfg.SleeperBaseURL, newUpstream(cfg, sourceSleeper, log))
	rankings := fantasypros.NewClient(cfg.FantasyProsBaseURL, cfg.FantasyProsAPIKey, newUpstream(cfg, sourceFantasyPros, log))

	return service.New(league, rankings, store,
		service.WithLogger(log.Named("service")),
		service.WithMatcher(m),
		service.WithLeague(cfg.LeagueID, cfg.UserID),
		service.WithPeriod(cfg.Season, cfg.Week),
		service.WithScoring(cfg.Scoring),
		service.WithPositions(cfg.PositionList()...),
		service.WithExcludedIDs(cfg.ExcludedIDs...),
	)
}
