package source

import "errors"

// Sentinel kinds for dataset fetch errors.
var (
	ErrUnknownDataset = errors.New("unknown dataset")
	ErrFetch          = errors.New("dataset fetch failed")
	ErrParse          = errors.New("dataset parse failed")
)
