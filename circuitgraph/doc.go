// Package circuitgraph is one concrete, in-memory implementation of
// ir.Graph. Each region (the top-level graph, a Conditional's case, a
// TailLoop's body, a Call's callee) is backed by its own core.Graph of
// node connectivity, ordered topologically via dfs.TopologicalSort;
// port-level wiring is tracked alongside in a PortRef→PortRef table.
//
// circuitgraph is built by package circuitbuild; it is not meant to be
// hand-assembled by callers outside tests.
package circuitgraph
