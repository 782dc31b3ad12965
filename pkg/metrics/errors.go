package metrics

import (
	"errors"
)

// Sentinel kinds for metrics failures.
var (
	ErrObserveFailed = errors.New("metrics observe failed")
)
