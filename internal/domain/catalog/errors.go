package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrMissingIdentity = errors.New("identity not in catalog")
	ErrDuplicateID     = errors.New("duplicate identity id")
	ErrEmptyID         = errors.New("empty identity id")
)
