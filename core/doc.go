// Package core provides a thread-safe in-memory directed Graph: a vertex
// catalog plus an adjacency list of edges, guarded by separate
// sync.RWMutex locks for vertices (muVert) and edges+adjacency
// (muEdgeAdj) to keep the two concerns from contending with each other.
//
// circuitgraph holds one Graph per region and uses it purely as a
// connectivity index for dfs.TopologicalSort — there is no weighting,
// multi-edge, loop, or mixed-direction policy here, since a circuit's
// dependency graph never needs any of them.
//
// Core methods:
//
//	NewGraph(opts ...GraphOption) *Graph
//	WithDirected(directed bool) GraphOption
//	(g *Graph) AddVertex(id string) error        // O(1), idempotent
//	(g *Graph) AddEdge(from, to string, weight int64) (string, error) // O(1)
//	(g *Graph) Directed() bool                   // O(1)
//	(g *Graph) Vertices() []string                // O(V log V), sorted
//	(g *Graph) Neighbors(id string) ([]*Edge, error) // O(d log d), sorted by Edge.ID
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – Neighbors on a vertex that was never added
package core
