// Package roster turns a league roster's identifiers into enriched players.
package roster

import (
	"context"
	"errors"
	"fmt"

	"github.com/okian/lineup/internal/domain/catalog"
	"github.com/okian/lineup/internal/domain/matching"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/ranking"
	"github.com/okian/lineup/pkg/logger"
	"github.com/okian/lineup/pkg/metrics"
)

// Report lists identifiers that were skipped or degraded during assembly.
type Report struct {
	Skipped []model.Skip `json:"skipped,omitempty"`
}

// Missing returns how many identifiers were absent from the catalog.
func (r Report) Missing() int {
	n := 0
	for _, s := range r.Skipped {
		if s.Reason == model.SkipMissingIdentity {
			n++
		}
	}
	return n
}

// Assembler builds enriched rosters.
type Assembler struct {
	matcher matching.Matcher
	logger  logger.Logger
}

// NewAssembler creates an Assembler. The substring matcher is the default.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		matcher: matching.Substring{},
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble resolves every identifier of in through the catalog and the
// matcher. Order of players and starters follows in.
//
// A starter that is not among in.Players rejects the whole roster with
// ErrStarterNotRostered. Identifiers unknown to the catalog are left out and
// recorded in the report. Players at positions without a ranking list are
// kept unranked.
func (a *Assembler) Assemble(ctx context.Context, in model.LeagueRoster, cat *catalog.Catalog, ix *ranking.Index) (model.Roster, Report, error) {
	var rep Report
	if cat == nil {
		return model.Roster{}, rep, ErrNilCatalog
	}
	if ix == nil {
		return model.Roster{}, rep, ErrNilIndex
	}

	rostered := make(map[string]struct{}, len(in.Players))
	for _, id := range in.Players {
		rostered[id] = struct{}{}
	}
	for _, id := range in.Starters {
		if _, ok := rostered[id]; !ok {
			return model.Roster{}, rep, fmt.Errorf("%w: %s (owner %s)", ErrStarterNotRostered, id, in.OwnerID)
		}
	}

	out := model.Roster{
		OwnerID:  in.OwnerID,
		RosterID: in.RosterID,
		Players:  make([]model.EnrichedPlayer, 0, len(in.Players)),
		Starters: make([]model.EnrichedPlayer, 0, len(in.Starters)),
	}
	resolved := make(map[string]model.EnrichedPlayer, len(in.Players))

	for _, id := range in.Players {
		if p, done := resolved[id]; done {
			out.Players = append(out.Players, p)
			continue
		}
		p, skip, ok := a.resolve(ctx, id, cat, ix)
		if skip != nil {
			rep.Skipped = append(rep.Skipped, *skip)
		}
		if !ok {
			continue
		}
		resolved[id] = p
		out.Players = append(out.Players, p)
	}

	for _, id := range in.Starters {
		if p, ok := resolved[id]; ok {
			out.Starters = append(out.Starters, p)
		}
	}

	return out, rep, nil
}

// resolve returns the enriched player, an optional skip record, and whether
// the player belongs in the roster.
func (a *Assembler) resolve(ctx context.Context, id string, cat *catalog.Catalog, ix *ranking.Index) (model.EnrichedPlayer, *model.Skip, bool) {
	identity, err := cat.Lookup(id)
	if err != nil {
		metrics.RecordMissingIdentity()
		a.logger.Warn(ctx, "rostered player missing from catalog", logger.String("player_id", id))
		return model.EnrichedPlayer{}, &model.Skip{ID: id, Reason: model.SkipMissingIdentity, Detail: err.Error()}, false
	}

	p, err := matching.Enrich(a.matcher, identity, ix)
	if errors.Is(err, matching.ErrUnsupportedPosition) {
		a.logger.Debug(ctx, "rostered player at unsupported position",
			logger.String("player_id", id),
			logger.String("position", identity.RawPosition),
		)
		return p, &model.Skip{ID: id, Reason: model.SkipUnsupportedPosition, Detail: identity.RawPosition}, true
	}
	if !p.Ranked() {
		a.logger.Debug(ctx, "rostered player has no ranking match",
			logger.String("player_id", id),
			logger.String("name", identity.Label()),
		)
	}
	return p, nil, true
}
