package domain

import "errors"

// Domain errors represent error conditions in the cardstats domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("cardstats: invalid configuration")

	// ErrNothingToRun is returned when every pipeline stage has been disabled.
	ErrNothingToRun = errors.New("cardstats: nothing to run")
)
