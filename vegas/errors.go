package vegas

import "errors"

// Domain errors for integration runs.
var (
	// ErrInvalidBounds indicates an empty region or a lower bound at or
	// above its upper bound.
	ErrInvalidBounds = errors.New("vegas: invalid integration bounds")

	// ErrInvalidConfig indicates a non-positive iteration, evaluation or
	// bin count.
	ErrInvalidConfig = errors.New("vegas: invalid integrator configuration")

	// ErrNonFinite indicates the integrand returned NaN or Inf.
	ErrNonFinite = errors.New("vegas: integrand returned a non-finite value")

	// ErrNotConverged indicates the per-iteration estimates are mutually
	// inconsistent (chi^2/dof above the configured ceiling).
	ErrNotConverged = errors.New("vegas: iteration estimates inconsistent (chi^2/dof too large)")

	// ErrCanceled indicates the integration was interrupted.
	ErrCanceled = errors.New("vegas: integration canceled by context")
)
