package ephem

import "errors"

// Errors reported by the ephemeris.  ErrOutsideRange accompanies a result
// that was still computed; the caller decides whether reduced accuracy is
// acceptable.  The other two always come with a zero state.
var (
	ErrInvalidBody   = errors.New("ephem: invalid body")
	ErrOutsideRange  = errors.New("ephem: date outside model range")
	ErrNoConvergence = errors.New("ephem: orbit solution did not converge")
	ErrNoPropagator  = errors.New("ephem: no propagator configured")
)
