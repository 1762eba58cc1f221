package sleeper

// emptySlot is the identifier Sleeper uses for an unfilled starter slot.
const emptySlot = "0"

// State is the NFL calendar state.
type State struct {
	Season     int    `json:"-"`
	Week       int    `json:"week"`
	SeasonType string `json:"season_type"`
}

type stateResponse struct {
	Season     string `json:"season"`
	Week       int    `json:"week"`
	SeasonType string `json:"season_type"`
}

type rosterResponse struct {
	OwnerID  *string  `json:"owner_id"`
	RosterID int      `json:"roster_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
}

type playerRecord struct {
	PlayerID string `json:"player_id"`
	FullName string `json:"full_name"`
	Team     string `json:"team"`
	Position string `json:"position"`
	Status   string `json:"status"`
	Active   *bool  `json:"active"`
}
