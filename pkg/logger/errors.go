package logger

import (
	"errors"
)

// Sentinel kinds for logger errors.
var (
	ErrNilWriter    = errors.New("logger writer must not be nil")
	ErrUnknownLevel = errors.New("unknown log level")
)
