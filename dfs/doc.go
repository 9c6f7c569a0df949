// Package dfs implements topological sort over a core.Graph.
//
// circuitgraph builds one directed Graph per region (nodes as vertices,
// data/control dependencies as edges) and calls TopologicalSort once to
// linearize that region's children before handing them to the dataflow
// engine, which walks nodes strictly in dependency order.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering. If the
// graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and visitation state)
//
// Errors:
//
//	ErrGraphNil      – nil graph pointer
//	ErrCycleDetected – the graph is not a DAG
//	ErrNeighborFetch – Neighbors returned an error mid-traversal
package dfs
