package dataflow

import "errors"

// ErrMalformedGraph indicates the host graph violates a structural
// requirement: a region lacking a unique Input sentinel, a qubit-typed
// output edge with no unique successor, or a node whose qubit port count
// does not fit its operation. A missing frontier entry is reported as
// ErrInvariantViolation, not as this error.
var ErrMalformedGraph = errors.New("dataflow: malformed graph")

// ErrWidthMismatch indicates an internal tableau operation was given a row
// of the wrong width — surfaced rather than silently ignored.
var ErrWidthMismatch = errors.New("dataflow: width mismatch")

// ErrInvariantViolation indicates that the handler of some node (a gate, a
// boundary, an opaque operation, a nested region or the Output sentinel)
// found a qubit input port with no frontier entry. Every handler reports it
// the same way; opaque nodes are not distinguished from the others.
var ErrInvariantViolation = errors.New("dataflow: invariant violation")
