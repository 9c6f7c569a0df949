// Package circuitbuild is a fluent builder for circuitgraph.Graph
// instances: straight-line sequences of gates threaded over a fixed set of
// qubit "wires", plus Conditional, TailLoop, and Call region constructors.
// It exists for tests and godoc examples that need a concrete graph to
// drive package dataflow over, in place of hand-assembled node/port
// wiring.
package circuitbuild
