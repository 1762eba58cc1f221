package availability

import "errors"

// Sentinel kinds for availability errors.
var (
	ErrNilCatalog = errors.New("nil catalog")
	ErrNilIndex   = errors.New("nil ranking index")
)
