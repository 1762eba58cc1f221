package fantasypros

import "errors"

// Sentinel kinds for FantasyPros adapter errors.
var (
	ErrBadRank             = errors.New("invalid rank_ecr")
	ErrUnsupportedPosition = errors.New("position has no FantasyPros feed")
)
