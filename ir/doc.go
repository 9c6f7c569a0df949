// Package ir declares the host dataflow graph contract that package
// dataflow consumes: node identity, operation classification, port typing,
// and the nested-region accessors (conditional cases, tail-loop body,
// call callee) needed to drive a recursive stabilizer analysis.
//
// ir itself stores nothing; package circuitgraph provides one concrete
// implementation, and package circuitbuild constructs circuitgraph
// instances fluently.
package ir
