package circuitgraph

import "errors"

// ErrNodeNotFound indicates a query referenced a node that was never added.
var ErrNodeNotFound = errors.New("circuitgraph: node not found")

// ErrRegionNotFound indicates a query referenced a region root that was
// never registered via AddRegion, or a Call node whose callee was never
// registered via SetCallee.
var ErrRegionNotFound = errors.New("circuitgraph: region not found")

// ErrNoSuccessor indicates SingleSucc was asked about an output port with
// no recorded connection.
var ErrNoSuccessor = errors.New("circuitgraph: output port has no successor")

// ErrNotConditional indicates CaseRegions was called on a node whose
// OpType.Kind is not ir.OpConditional.
var ErrNotConditional = errors.New("circuitgraph: node is not a Conditional")

// ErrNotTailLoop indicates LoopBody was called on a node whose OpType.Kind
// is not ir.OpTailLoop.
var ErrNotTailLoop = errors.New("circuitgraph: node is not a TailLoop")

// ErrNotCall indicates CalleeBody was called on a node whose OpType.Kind is
// not ir.OpCall.
var ErrNotCall = errors.New("circuitgraph: node is not a Call")

// ErrDuplicateNode indicates AddNode was given a NodeID already in use.
var ErrDuplicateNode = errors.New("circuitgraph: duplicate node ID")

// ErrPortOutOfRange indicates a port index outside the node's declared
// InPorts/OutPorts.
var ErrPortOutOfRange = errors.New("circuitgraph: port index out of range")
