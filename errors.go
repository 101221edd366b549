package hohmann

import "errors"

// Error kinds returned by the constructors. Every failure wraps one of these
// values, so callers can discriminate with errors.Is.
var (
	// ErrInvalidParameter denotes a constructor argument which violates a
	// structural invariant (non-positive gravitational parameter or radius).
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrMissingData denotes an operation which needs data the body does not
	// carry, such as altitude handling on a body with no defined radius.
	ErrMissingData = errors.New("missing data")
	// ErrIncompatibleBodies denotes a transfer requested between orbits whose
	// bodies' gravitational parameters differ beyond tolerance.
	ErrIncompatibleBodies = errors.New("incompatible bodies")
)
