package circuitbuild

import "errors"

// ErrWireOutOfRange indicates a gate referenced a wire index outside the
// builder's currently active wire set.
var ErrWireOutOfRange = errors.New("circuitbuild: wire index out of range")
