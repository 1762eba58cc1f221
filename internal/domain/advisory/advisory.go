// Package advisory compares enriched players and emits lineup and waiver
// advisories.
package advisory

import "github.com/okian/lineup/internal/domain/model"

// Kind tags an advisory record.
type Kind string

// Advisory kinds.
const (
	KindUnrankedPlayer            Kind = "unranked_player"
	KindUnrankedStarter           Kind = "unranked_starter"
	KindUnrankedBenchPlayer       Kind = "unranked_bench_player"
	KindBenchOutranksStarter      Kind = "bench_outranks_starter"
	KindAvailableOutranksRostered Kind = "available_outranks_rostered"
)

// Advisory is one statement about a roster.
//
// Player is the subject: the unranked player, the bench player that
// outranks Starter, or the rostered player (annotated with HigherRated)
// that Candidates outrank.
type Advisory struct {
	Kind       Kind                   `json:"kind"`
	Position   model.Position         `json:"position"`
	Player     model.EnrichedPlayer   `json:"player"`
	Starter    *model.EnrichedPlayer  `json:"starter,omitempty"`
	Candidates []model.EnrichedPlayer `json:"candidates,omitempty"`
}

// PositionAdvisories groups the starter-vs-bench advisories of one position.
type PositionAdvisories struct {
	Position   model.Position `json:"position"`
	Advisories []Advisory     `json:"advisories"`
}

// Report is the full output of one engine run.
type Report struct {
	Lineup    []PositionAdvisories `json:"lineup"`
	Available []Advisory           `json:"available"`
}

// Count returns the number of advisories in the report.
func (r Report) Count() int {
	n := len(r.Available)
	for _, pa := range r.Lineup {
		n += len(pa.Advisories)
	}
	return n
}
