// Package availability computes the pool of players no team in the league
// has rostered.
package availability

import (
	"context"
	"errors"

	"github.com/okian/lineup/internal/domain/catalog"
	"github.com/okian/lineup/internal/domain/matching"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/ranking"
	"github.com/okian/lineup/pkg/logger"
	"github.com/okian/lineup/pkg/metrics"
)

// Report summarises what the resolver left out or could not rank.
type Report struct {
	Taken       int `json:"taken"`
	Unsupported int `json:"unsupported"`
	Unranked    int `json:"unranked"`
}

// Resolver derives the available pool.
type Resolver struct {
	matcher matching.Matcher
	logger  logger.Logger
}

// NewResolver creates a Resolver. The substring matcher is the default.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		matcher: matching.Substring{},
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns every catalog player that is not in any roster's players,
// ordered by identifier. Players at positions without a ranking list are
// dropped; supported but unmatched players stay in the pool unranked.
func (r *Resolver) Resolve(ctx context.Context, rosters []model.LeagueRoster, cat *catalog.Catalog, ix *ranking.Index) (model.AvailablePool, Report, error) {
	var rep Report
	if cat == nil {
		return model.AvailablePool{}, rep, ErrNilCatalog
	}
	if ix == nil {
		return model.AvailablePool{}, rep, ErrNilIndex
	}

	taken := make(map[string]struct{})
	for _, ro := range rosters {
		for _, id := range ro.Players {
			taken[id] = struct{}{}
		}
	}
	rep.Taken = len(taken)

	pool := model.AvailablePool{}
	for _, id := range cat.IDs() {
		if _, ok := taken[id]; ok {
			continue
		}
		identity, err := cat.Lookup(id)
		if err != nil {
			continue
		}
		p, err := matching.Enrich(r.matcher, identity, ix)
		if errors.Is(err, matching.ErrUnsupportedPosition) {
			rep.Unsupported++
			continue
		}
		if !p.Ranked() {
			rep.Unranked++
		}
		pool.Players = append(pool.Players, p)
	}

	metrics.UpdateAvailablePool(pool.Len())
	r.logger.Debug(ctx, "available pool resolved",
		logger.Int("available", pool.Len()),
		logger.Int("taken", rep.Taken),
		logger.Int("unsupported", rep.Unsupported),
		logger.Int("unranked", rep.Unranked),
	)
	return pool, rep, nil
}
