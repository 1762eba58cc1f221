package model

// LeagueRoster is a roster as reported by the league-management service,
// before enrichment.
type LeagueRoster struct {
	OwnerID  string   `json:"owner_id"`
	RosterID int      `json:"roster_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
}

// Roster is an owner's enriched roster. Every starter also appears in
// Players.
type Roster struct {
	OwnerID  string           `json:"owner_id"`
	RosterID int              `json:"roster_id"`
	Players  []EnrichedPlayer `json:"players"`
	Starters []EnrichedPlayer `json:"starters"`
}

// PlayersAt returns the roster's players at position p, in roster order.
func (r Roster) PlayersAt(p Position) []EnrichedPlayer {
	return filterPosition(r.Players, p)
}

// StartersAt returns the roster's starters at position p, in roster order.
func (r Roster) StartersAt(p Position) []EnrichedPlayer {
	return filterPosition(r.Starters, p)
}

// AvailablePool is the set of catalog players not rostered by any team in
// the league, ordered by identifier.
type AvailablePool struct {
	Players []EnrichedPlayer `json:"players"`
}

// Len returns the number of players in the pool.
func (p AvailablePool) Len() int { return len(p.Players) }

// At returns the pool's players at position pos.
func (p AvailablePool) At(pos Position) []EnrichedPlayer {
	return filterPosition(p.Players, pos)
}

func filterPosition(players []EnrichedPlayer, p Position) []EnrichedPlayer {
	out := make([]EnrichedPlayer, 0, len(players))
	for _, pl := range players {
		if pl.Position == p {
			out = append(out, pl)
		}
	}
	return out
}
