package repository

import "errors"

// Sentinel kinds for catalog store errors.
var (
	ErrNotFound  = errors.New("catalog snapshot not found")
	ErrEmptyPath = errors.New("empty catalog path")
	ErrEmptyData = errors.New("empty catalog snapshot")
)
