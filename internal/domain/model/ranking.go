package model

// RankingEntry is one row of an expert-consensus ranking list.
// Named positions use Name; team-based positions use TeamCode.
type RankingEntry struct {
	Position Position `json:"position"`
	Name     string   `json:"name,omitempty"`
	TeamCode string   `json:"team_code,omitempty"`
	Rank     int      `json:"rank"`
}

// Confidence describes how a ranking entry was matched to an identity.
type Confidence string

const (
	// ConfidenceExact means the names were equal.
	ConfidenceExact Confidence = "exact"
	// ConfidenceContained means one name contained the other.
	ConfidenceContained Confidence = "contained"
	// ConfidenceTeam means a team-based entry matched by team code.
	ConfidenceTeam Confidence = "team"
)

// Match is the result of resolving an identity against a ranking list.
type Match struct {
	Entry      RankingEntry `json:"entry"`
	Confidence Confidence   `json:"confidence"`
	// Candidates is the number of entries that satisfied the match rule.
	// Values above one mean the first entry won an ambiguous match.
	Candidates int `json:"candidates"`
}

// Ambiguous reports whether more than one entry satisfied the match rule.
func (m Match) Ambiguous() bool { return m.Candidates > 1 }
