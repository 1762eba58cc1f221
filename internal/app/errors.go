package service

import "errors"

// Sentinel error kinds for the service.
var (
	ErrMissingDependency = errors.New("missing service dependency")
	ErrInvalidRequest    = errors.New("invalid analysis request")
	ErrOwnerNotFound     = errors.New("owner has no roster in league")
	ErrUpstream          = errors.New("upstream failure")
)
