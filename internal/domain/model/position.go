// Package model contains domain models passed between layers.
package model

import "strings"

// Position is a fantasy roster position. Only positions with an expert
// ranking feed are represented; everything else collapses to Unsupported.
type Position string

// Supported positions.
const (
	QB          Position = "QB"
	RB          Position = "RB"
	WR          Position = "WR"
	TE          Position = "TE"
	K           Position = "K"
	DEF         Position = "DEF"
	Unsupported Position = ""
)

// SupportedPositions lists every position that can carry a ranking list,
// in the conventional lineup order.
func SupportedPositions() []Position {
	return []Position{QB, RB, WR, TE, K, DEF}
}

// ParsePosition maps a source position label to a Position.
// Unknown labels (OL, LB, DB, ...) return Unsupported.
func ParsePosition(s string) Position {
	switch p := Position(strings.ToUpper(strings.TrimSpace(s))); p {
	case QB, RB, WR, TE, K, DEF:
		return p
	default:
		return Unsupported
	}
}

// IsTeamBased reports whether the position is represented by a team entity
// rather than an individual athlete.
func (p Position) IsTeamBased() bool { return p == DEF }

// IsSupported reports whether p is one of the ranked positions.
func (p Position) IsSupported() bool { return p != Unsupported }

func (p Position) String() string {
	if p == Unsupported {
		return "UNSUPPORTED"
	}
	return string(p)
}
