package repository

import "errors"

// Sentinel kinds for dataset store errors.
var (
	ErrNotFound  = errors.New("record not found")
	ErrStaleLoad = errors.New("stale load generation")
	ErrEmpty     = errors.New("dataset not loaded")
)
