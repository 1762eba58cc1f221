// Package matching resolves catalog identities to ranking entries.
package matching

import (
	"fmt"
	"strings"

	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/ranking"
	"github.com/okian/lineup/pkg/metrics"
)

// Strategy names accepted by New.
const (
	StrategySubstring  = "substring"
	StrategyNormalized = "normalized"
)

// Matcher resolves one identity to at most one ranking entry.
//
// ok is false when the position is supported but nothing matched; that is
// the expected "unranked" state. err wraps ErrUnsupportedPosition when the
// index has no list for the identity's position.
type Matcher interface {
	Match(id model.PlayerIdentity, ix *ranking.Index) (m model.Match, ok bool, err error)
}

// New returns the matcher registered under name.
func New(name string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategySubstring:
		return Substring{}, nil
	case StrategyNormalized:
		return Normalized{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// nameRule decides whether a ranking name matches a display name.
type nameRule func(entryName, displayName string) (model.Confidence, bool)

// resolve applies the shared lookup flow: team code for unnamed team-based
// identities, the name rule for everything named. The first entry in list
// order wins; the remaining candidates are only counted.
func resolve(id model.PlayerIdentity, ix *ranking.Index, rule nameRule) (model.Match, bool, error) {
	list, err := ix.List(id.Position)
	if err != nil {
		return model.Match{}, false, err
	}

	var (
		best  model.Match
		found bool
	)
	take := func(e model.RankingEntry, c model.Confidence) {
		if !found {
			best = model.Match{Entry: e, Confidence: c}
			found = true
		}
		best.Candidates++
	}

	switch {
	case id.HasDisplayName():
		for _, e := range list {
			if c, ok := rule(e.Name, id.DisplayName); ok {
				take(e, c)
			}
		}
	case id.Position.IsTeamBased():
		if id.Team == "" {
			return model.Match{}, false, nil
		}
		for _, e := range list {
			if e.TeamCode == id.Team {
				take(e, model.ConfidenceTeam)
			}
		}
	}
	return best, found, nil
}

// Substring matches names by bidirectional, case-sensitive substring
// containment with no normalization.
type Substring struct{}

// Match implements Matcher.
func (Substring) Match(id model.PlayerIdentity, ix *ranking.Index) (model.Match, bool, error) {
	return resolve(id, ix, substringRule)
}

func substringRule(entryName, displayName string) (model.Confidence, bool) {
	if entryName == "" {
		return "", false
	}
	if entryName == displayName {
		return model.ConfidenceExact, true
	}
	if strings.Contains(displayName, entryName) || strings.Contains(entryName, displayName) {
		return model.ConfidenceContained, true
	}
	return "", false
}

// Enrich matches id and wraps the result as an EnrichedPlayer, recording the
// outcome. Unsupported positions are returned as errors for the caller to
// apply its own policy.
func Enrich(m Matcher, id model.PlayerIdentity, ix *ranking.Index) (model.EnrichedPlayer, error) {
	match, ok, err := m.Match(id, ix)
	if err != nil {
		metrics.RecordMatch(id.Position.String(), metrics.MatchUnsupported)
		return model.Enrich(id, nil), err
	}
	if !ok {
		metrics.RecordMatch(id.Position.String(), metrics.MatchUnmatched)
		return model.Enrich(id, nil), nil
	}
	if match.Ambiguous() {
		metrics.RecordMatch(id.Position.String(), metrics.MatchAmbiguous)
	} else {
		metrics.RecordMatch(id.Position.String(), metrics.MatchMatched)
	}
	return model.Enrich(id, &match), nil
}
