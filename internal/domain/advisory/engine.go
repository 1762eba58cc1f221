package advisory

import (
	"context"
	"sort"

	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/pkg/logger"
	"github.com/okian/lineup/pkg/metrics"
)

// Engine derives advisories from enriched rosters. Comparisons never mutate
// their inputs and only ever compare players at the same position.
type Engine struct {
	logger logger.Logger
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: logger.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StartersVsBench compares every starter at pos with every bench player at
// pos. Advisories follow starter order, then bench order.
func (e *Engine) StartersVsBench(r model.Roster, pos model.Position) []Advisory {
	starters := r.StartersAt(pos)
	starting := make(map[string]struct{}, len(starters))
	for _, s := range starters {
		starting[s.ID] = struct{}{}
	}
	var bench []model.EnrichedPlayer
	for _, p := range r.PlayersAt(pos) {
		if _, ok := starting[p.ID]; !ok {
			bench = append(bench, p)
		}
	}

	out := []Advisory{}
	for _, s := range starters {
		sRank, ok := s.Rank()
		if !ok {
			out = append(out, Advisory{Kind: KindUnrankedStarter, Position: pos, Player: s})
			continue
		}
		for _, b := range bench {
			bRank, ok := b.Rank()
			if !ok {
				starter := s
				out = append(out, Advisory{Kind: KindUnrankedBenchPlayer, Position: pos, Player: b, Starter: &starter})
				continue
			}
			if bRank < sRank {
				starter := s
				out = append(out, Advisory{Kind: KindBenchOutranksStarter, Position: pos, Player: b, Starter: &starter})
			}
		}
	}
	return out
}

// RosteredVsAvailable compares every rostered player with the available
// players at the same position. Only ranked, active candidates with a
// strictly better rank count; they are listed best first.
func (e *Engine) RosteredVsAvailable(r model.Roster, pool model.AvailablePool) []Advisory {
	out := []Advisory{}
	for _, p := range r.Players {
		rank, ok := p.Rank()
		if !ok {
			out = append(out, Advisory{Kind: KindUnrankedPlayer, Position: p.Position, Player: p})
			continue
		}

		var better []model.EnrichedPlayer
		for _, c := range pool.Players {
			if c.Position != p.Position {
				continue
			}
			cRank, ok := c.Rank()
			if !ok || c.IsInactive() || cRank >= rank {
				continue
			}
			better = append(better, c)
		}
		if len(better) == 0 {
			continue
		}

		sort.SliceStable(better, func(i, j int) bool {
			ri, _ := better[i].Rank()
			rj, _ := better[j].Rank()
			return ri < rj
		})
		out = append(out, Advisory{
			Kind:       KindAvailableOutranksRostered,
			Position:   p.Position,
			Player:     p.WithHigherRated(better),
			Candidates: better,
		})
	}
	return out
}

// Run produces the lineup advisories for each position, in the order given,
// followed by the availability advisories.
func (e *Engine) Run(ctx context.Context, r model.Roster, pool model.AvailablePool, positions []model.Position) Report {
	rep := Report{Lineup: make([]PositionAdvisories, 0, len(positions))}
	for _, pos := range positions {
		rep.Lineup = append(rep.Lineup, PositionAdvisories{
			Position:   pos,
			Advisories: e.StartersVsBench(r, pos),
		})
	}
	rep.Available = e.RosteredVsAvailable(r, pool)

	for _, pa := range rep.Lineup {
		for _, a := range pa.Advisories {
			metrics.RecordAdvisory(string(a.Kind))
		}
	}
	for _, a := range rep.Available {
		metrics.RecordAdvisory(string(a.Kind))
	}
	e.logger.Debug(ctx, "advisories computed",
		logger.String("owner_id", r.OwnerID),
		logger.Int("count", rep.Count()),
	)
	return rep
}
