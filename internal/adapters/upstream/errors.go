package upstream

import "errors"

// Sentinel kinds for upstream errors.
var (
	ErrUnexpectedStatus = errors.New("unexpected upstream status")
	ErrCircuitOpen      = errors.New("upstream circuit open")
	ErrDecode           = errors.New("decode upstream response")
)
