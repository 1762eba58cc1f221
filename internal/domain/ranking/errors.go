package ranking

import "errors"

// Sentinel kinds for ranking index errors.
var (
	ErrUnsupportedPosition = errors.New("no ranking list for position")
	ErrPositionMismatch    = errors.New("ranking entry position mismatch")
)
