// Package dfs provides topological ordering over directed core.Graph
// connectivity, used by circuitgraph to linearize a region's children.
package dfs

import "errors"

// VertexState represents the DFS visitation state of a vertex during
// TopologicalSort's internal traversal.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)
