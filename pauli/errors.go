package pauli

import "errors"

// ErrWidthMismatch indicates the Z and X bit-vectors of a PauliProduct (or of
// two PauliProduct values compared/combined together) do not share a width.
var ErrWidthMismatch = errors.New("pauli: width mismatch")
