// Package service wires the league and ranking sources, the catalog store
// and the domain components into one analysis run.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okian/lineup/internal/adapters/repository"
	"github.com/okian/lineup/internal/adapters/sleeper"
	"github.com/okian/lineup/internal/domain/advisory"
	"github.com/okian/lineup/internal/domain/availability"
	"github.com/okian/lineup/internal/domain/catalog"
	"github.com/okian/lineup/internal/domain/matching"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/ranking"
	"github.com/okian/lineup/internal/domain/roster"
	"github.com/okian/lineup/pkg/logger"
	"github.com/okian/lineup/pkg/metrics"
)

const defaultScoring = "HALF"

// LeagueSource is the league-management service.
type LeagueSource interface {
	State(ctx context.Context) (sleeper.State, error)
	Rosters(ctx context.Context, leagueID string) ([]model.LeagueRoster, error)
	PlayersRaw(ctx context.Context) ([]byte, error)
}

// RankingSource is the expert consensus ranking feed.
type RankingSource interface {
	Rankings(ctx context.Context, pos model.Position, season, week int, scoring string) ([]model.RankingEntry, error)
}

// Request selects the ranking period of one run. Zero values fall back to
// the configured period, then to the league's current state.
type Request struct {
	Season int `json:"season"`
	Week   int `json:"week"`
}

// Result is the outcome of one analysis run.
type Result struct {
	RunID     string                        `json:"run_id"`
	Season    int                           `json:"season"`
	Week      int                           `json:"week"`
	Scoring   string                        `json:"scoring"`
	OwnerID   string                        `json:"owner_id"`
	Roster    model.Roster                  `json:"roster"`
	Lineup    []advisory.PositionAdvisories `json:"lineup"`
	Available []advisory.Advisory           `json:"available"`
	Skipped   []model.Skip                  `json:"skipped"`
	Pool      PoolSummary                   `json:"pool"`
}

// PoolSummary describes the available pool the run compared against.
type PoolSummary struct {
	Size int `json:"size"`
	availability.Report
}

// Service runs roster analyses. It is safe for concurrent use.
type Service struct {
	league   LeagueSource
	rankings RankingSource
	store    repository.CatalogStore

	matcher     matching.Matcher
	leagueID    string
	userID      string
	season      int
	week        int
	scoring     string
	positions   []model.Position
	excludedIDs []string

	// syncMu serialises catalog downloads.
	syncMu sync.Mutex

	logger logger.Logger
}

// New constructs a Service.
func New(league LeagueSource, rankings RankingSource, store repository.CatalogStore, opts ...Option) (*Service, error) {
	if league == nil || rankings == nil || store == nil {
		return nil, ErrMissingDependency
	}
	s := &Service{
		league:    league,
		rankings:  rankings,
		store:     store,
		matcher:   matching.Substring{},
		scoring:   defaultScoring,
		positions: model.SupportedPositions(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s, nil
}

// SyncPlayers downloads the player catalog and persists it. It returns the
// number of identities in the snapshot.
func (s *Service) SyncPlayers(ctx context.Context) (int, error) {
	_, ids, err := s.syncPlayers(ctx)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

func (s *Service) syncPlayers(ctx context.Context) ([]byte, []model.PlayerIdentity, error) {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	start := time.Now()
	data, err := s.league.PlayersRaw(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: download players: %w", ErrUpstream, err)
	}
	ids, err := sleeper.DecodePlayers(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if err := s.store.Save(ctx, data); err != nil {
		return nil, nil, fmt.Errorf("save catalog: %w", err)
	}
	s.logger.Info(ctx, "player catalog synced",
		logger.Int("players", len(ids)),
		logger.Duration("took", time.Since(start)),
	)
	return data, ids, nil
}

// loadCatalog reads the stored snapshot, downloading it first when none
// exists.
func (s *Service) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var ids []model.PlayerIdentity
	downloaded := false
	data, err := s.store.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		s.logger.Info(ctx, "no player catalog on disk, downloading")
		if _, ids, err = s.syncPlayers(ctx); err != nil {
			return nil, err
		}
		downloaded = true
	case err != nil:
		return nil, fmt.Errorf("load catalog: %w", err)
	default:
		if ids, err = sleeper.DecodePlayers(data); err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
	}

	cat, err := catalog.New(ids, catalog.WithExcludedIDs(s.excludedIDs...))
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	metrics.UpdateCatalogSize(cat.Len())
	s.logger.Debug(ctx, "player catalog loaded",
		logger.Int("identities", cat.Len()),
		logger.Bool("downloaded", downloaded),
	)
	return cat, nil
}

// period resolves the season and week of a run.
func (s *Service) period(ctx context.Context, req Request) (int, int, error) {
	if req.Season < 0 || req.Week < 0 {
		return 0, 0, fmt.Errorf("%w: season %d week %d", ErrInvalidRequest, req.Season, req.Week)
	}
	season, week := req.Season, req.Week
	if season == 0 {
		season = s.season
	}
	if week == 0 {
		week = s.week
	}
	if season > 0 && week > 0 {
		return season, week, nil
	}

	st, err := s.league.State(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: league state: %w", ErrUpstream, err)
	}
	if season == 0 {
		season = st.Season
	}
	if week == 0 {
		week = st.Week
	}
	if season <= 0 || week <= 0 {
		return 0, 0, fmt.Errorf("%w: league state reports season %d week %d", ErrInvalidRequest, season, week)
	}
	return season, week, nil
}

// fetchRankings downloads one ranking list per position concurrently. The
// first failing feed cancels the others.
func (s *Service) fetchRankings(ctx context.Context, season, week int) (*ranking.Index, error) {
	lists := make([][]model.RankingEntry, len(s.positions))

	g, gctx := errgroup.WithContext(ctx)
	for i, pos := range s.positions {
		i, pos := i, pos
		g.Go(func() error {
			entries, err := s.rankings.Rankings(gctx, pos, season, week, s.scoring)
			if err != nil {
				return fmt.Errorf("%w: %s rankings: %w", ErrUpstream, pos, err)
			}
			lists[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ix := ranking.NewIndex()
	for i, pos := range s.positions {
		if err := ix.Set(pos, lists[i]); err != nil {
			return nil, err
		}
	}
	return ix, nil
}

// Analyze runs one reconciliation of the configured owner's roster against
// the expert rankings and the league's available pool.
func (s *Service) Analyze(ctx context.Context, req Request) (res Result, err error) {
	start := time.Now()
	runID := uuid.NewString()
	log := s.logger

	defer func() {
		outcome := metrics.RunSucceeded
		if err != nil {
			outcome = metrics.RunFailed
			log.Error(ctx, "analysis failed", logger.String("run_id", runID), logger.Error(err))
		}
		metrics.RecordRun(outcome, float64(time.Since(start).Milliseconds()))
	}()

	season, week, err := s.period(ctx, req)
	if err != nil {
		return Result{}, err
	}
	log.Info(ctx, "analysis started",
		logger.String("run_id", runID),
		logger.Int("season", season),
		logger.Int("week", week),
		logger.String("scoring", s.scoring),
	)

	cat, err := s.loadCatalog(ctx)
	if err != nil {
		return Result{}, err
	}
	ix, err := s.fetchRankings(ctx, season, week)
	if err != nil {
		return Result{}, err
	}
	rosters, err := s.league.Rosters(ctx, s.leagueID)
	if err != nil {
		return Result{}, fmt.Errorf("%w: rosters: %w", ErrUpstream, err)
	}

	own, found := ownerRoster(rosters, s.userID)
	if !found {
		return Result{}, fmt.Errorf("%w: owner %q league %q", ErrOwnerNotFound, s.userID, s.leagueID)
	}

	asm := roster.NewAssembler(roster.WithMatcher(s.matcher), roster.WithLogger(log))
	r, asmRep, err := asm.Assemble(ctx, own, cat, ix)
	if err != nil {
		return Result{}, err
	}

	resolver := availability.NewResolver(availability.WithMatcher(s.matcher), availability.WithLogger(log))
	pool, poolRep, err := resolver.Resolve(ctx, rosters, cat, ix)
	if err != nil {
		return Result{}, err
	}

	rep := advisory.NewEngine(advisory.WithLogger(log)).Run(ctx, r, pool, s.positions)

	skipped := asmRep.Skipped
	if skipped == nil {
		skipped = []model.Skip{}
	}

	log.Info(ctx, "analysis finished",
		logger.String("run_id", runID),
		logger.Int("rostered", len(r.Players)),
		logger.Int("skipped", len(asmRep.Skipped)),
		logger.Int("pool", pool.Len()),
		logger.Int("advisories", rep.Count()),
		logger.Duration("took", time.Since(start)),
	)

	return Result{
		RunID:     runID,
		Season:    season,
		Week:      week,
		Scoring:   s.scoring,
		OwnerID:   own.OwnerID,
		Roster:    r,
		Lineup:    rep.Lineup,
		Available: rep.Available,
		Skipped:   skipped,
		Pool:      PoolSummary{Size: pool.Len(), Report: poolRep},
	}, nil
}

func ownerRoster(rosters []model.LeagueRoster, userID string) (model.LeagueRoster, bool) {
	if userID == "" {
		return model.LeagueRoster{}, false
	}
	for _, r := range rosters {
		if r.OwnerID == userID {
			return r, true
		}
	}
	return model.LeagueRoster{}, false
}
