package tuning

import "errors"

var (
	// ErrSearchExhausted is returned when no matching vector exists within the
	// configured shell radius.
	ErrSearchExhausted = errors.New("tuning: search exhausted")

	// ErrConvergenceFailure is returned when the drift loop reaches its
	// iteration cap without getting within tolerance of the target.
	ErrConvergenceFailure = errors.New("tuning: drift did not converge")

	// ErrInvalidParameter is returned for a non-positive target ratio or
	// tolerance.
	ErrInvalidParameter = errors.New("tuning: invalid parameter")
)
