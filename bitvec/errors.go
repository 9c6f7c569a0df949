package bitvec

import "errors"

// ErrIndexOutOfBounds indicates a Get/Set/RemoveAt index outside [0, Len()).
var ErrIndexOutOfBounds = errors.New("bitvec: index out of bounds")

// ErrLengthMismatch indicates a binary operation (Xor/And) between vectors
// of different lengths.
var ErrLengthMismatch = errors.New("bitvec: length mismatch")
