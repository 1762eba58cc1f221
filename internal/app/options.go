package service

import (
	"github.com/okian/lineup/internal/domain/matching"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMatcher sets the name matching strategy used for rosters and the pool.
func WithMatcher(m matching.Matcher) Option {
	return func(s *Service) {
		if m != nil {
			s.matcher = m
		}
	}
}

// WithLeague selects the league and the owner whose roster is analysed.
func WithLeague(leagueID, userID string) Option {
	return func(s *Service) {
		s.leagueID = leagueID
		s.userID = userID
	}
}

// WithPeriod pins the default season and week. Zero values fall back to the
// league service's current state.
func WithPeriod(season, week int) Option {
	return func(s *Service) {
		if season > 0 {
			s.season = season
		}
		if week > 0 {
			s.week = week
		}
	}
}

// WithScoring sets the ranking scoring format.
func WithScoring(scoring string) Option {
	return func(s *Service) {
		if scoring != "" {
			s.scoring = scoring
		}
	}
}

// WithPositions sets the analysed positions, in output order.
func WithPositions(ps ...model.Position) Option {
	return func(s *Service) {
		if len(ps) > 0 {
			s.positions = append([]model.Position(nil), ps...)
		}
	}
}

// WithExcludedIDs drops catalog identifiers when the catalog is built.
func WithExcludedIDs(ids ...string) Option {
	return func(s *Service) {
		s.excludedIDs = append([]string(nil), ids...)
	}
}
