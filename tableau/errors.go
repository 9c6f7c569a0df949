package tableau

import "errors"

// ErrWidthMismatch indicates AddRow was given a row whose width does not
// match NbQubits.
var ErrWidthMismatch = errors.New("tableau: width mismatch")

// ErrColumnOutOfRange indicates an operation referenced a column index
// outside [0, nb_qubits).
var ErrColumnOutOfRange = errors.New("tableau: column out of range")

// ErrRowOutOfRange indicates an operation referenced a row index outside
// [0, nb_rows).
var ErrRowOutOfRange = errors.New("tableau: row out of range")
