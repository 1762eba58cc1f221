package matching

import (
	"errors"

	"github.com/okian/lineup/internal/domain/ranking"
)

// Sentinel kinds for matching errors.
var (
	// ErrUnsupportedPosition is returned when the identity's position has no
	// ranking list. It is the same value the ranking index returns.
	ErrUnsupportedPosition = ranking.ErrUnsupportedPosition
	ErrUnknownStrategy     = errors.New("unknown matcher strategy")
)
