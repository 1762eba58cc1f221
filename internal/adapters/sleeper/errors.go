package sleeper

import "errors"

// Sentinel kinds for Sleeper adapter errors.
var (
	ErrEmptyLeagueID = errors.New("empty league id")
	ErrBadSeason     = errors.New("invalid season in nfl state")
)
