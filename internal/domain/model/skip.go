package model

// SkipReason explains why an identifier did not make it into a result
// unchanged.
type SkipReason string

const (
	// SkipMissingIdentity: a roster referenced an identifier the catalog
	// does not know. The player is left out.
	SkipMissingIdentity SkipReason = "missing_identity"
	// SkipUnsupportedPosition: the player's position has no ranking list.
	// Rosters keep the player unranked; the available pool drops it.
	SkipUnsupportedPosition SkipReason = "unsupported_position"
)

// Skip records one identifier that was dropped or degraded.
type Skip struct {
	ID     string     `json:"id"`
	Reason SkipReason `json:"reason"`
	Detail string     `json:"detail,omitempty"`
}
