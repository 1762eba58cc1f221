package model

// statusInactive is the roster-system status that marks a player as not
// playing regardless of the active flag.
const statusInactive = "Inactive"

// PlayerIdentity is one entry of the identity catalog.
type PlayerIdentity struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name,omitempty"` // empty for team entries
	Team        string   `json:"team,omitempty"`
	Position    Position `json:"position"`
	RawPosition string   `json:"raw_position,omitempty"` // label as reported by the source
	Active      bool     `json:"active"`
	Status      string   `json:"status,omitempty"`
}

// HasDisplayName reports whether the identity carries a player name.
func (p PlayerIdentity) HasDisplayName() bool { return p.DisplayName != "" }

// IsInactive reports whether the source roster system flags the player as
// inactive or non-active.
func (p PlayerIdentity) IsInactive() bool {
	return !p.Active || p.Status == statusInactive
}

// Label is the human-facing name: team code for team-based positions,
// display name otherwise.
func (p PlayerIdentity) Label() string {
	if p.Position.IsTeamBased() || !p.HasDisplayName() {
		return p.Team
	}
	return p.DisplayName
}

// EnrichedPlayer is an identity together with its ranking match, if any.
// Values are never mutated after construction; annotation returns a copy.
type EnrichedPlayer struct {
	PlayerIdentity
	Match       *Match           `json:"match,omitempty"`
	HigherRated []EnrichedPlayer `json:"higher_rated,omitempty"`
}

// Enrich builds an EnrichedPlayer. A nil match means "unranked".
func Enrich(id PlayerIdentity, m *Match) EnrichedPlayer {
	if m != nil {
		cp := *m
		m = &cp
	}
	return EnrichedPlayer{PlayerIdentity: id, Match: m}
}

// Ranked reports whether the player has a ranking match.
func (e EnrichedPlayer) Ranked() bool { return e.Match != nil }

// Rank returns the matched rank and true, or 0 and false when unranked.
func (e EnrichedPlayer) Rank() (int, bool) {
	if e.Match == nil {
		return 0, false
	}
	return e.Match.Entry.Rank, true
}

// WithHigherRated returns a copy of e annotated with the given players.
func (e EnrichedPlayer) WithHigherRated(players []EnrichedPlayer) EnrichedPlayer {
	out := e
	out.HigherRated = append([]EnrichedPlayer(nil), players...)
	return out
}
