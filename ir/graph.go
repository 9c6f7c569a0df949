package ir

// Graph is the host dataflow graph contract consumed by package dataflow.
// A Graph value is organized around regions: a region is named by the
// NodeID of its root, and Children enumerates that region's direct
// members in topological order. Only edge dependencies are ordered: a node
// with no inputs (such as QAlloc) may come before the Input sentinel, and a
// sink (such as QFree) may come after the Output sentinel. Nested regions — a Conditional's cases, a TailLoop's body, a
// Call's callee — are reached via the corresponding accessor, each
// returning a NodeID (and, for CalleeBody, a Graph) that Children accepts.
type Graph interface {
	// Children returns region's direct members in topological order.
	Children(region NodeID) ([]NodeID, error)

	// OpType classifies node.
	OpType(node NodeID) (OpType, error)

	// InPorts and OutPorts report node's input and output port specs, in
	// port-index order.
	InPorts(node NodeID) ([]PortSpec, error)
	OutPorts(node NodeID) ([]PortSpec, error)

	// SingleSucc reports the unique consumer of node's outPort: the
	// successor node and the input port it connects to.
	SingleSucc(node NodeID, outPort int) (NodeID, int, error)

	// CaseRegions returns, for a Conditional node, one region root per
	// case, in case order.
	CaseRegions(conditional NodeID) ([]NodeID, error)

	// LoopBody returns a TailLoop node's body region root.
	LoopBody(tailLoop NodeID) (NodeID, error)

	// CalleeBody returns a Call node's callee graph and that graph's
	// region root (the callee graph may be the same Graph value, or a
	// distinct one holding a shared function definition).
	CalleeBody(call NodeID) (Graph, NodeID, error)
}
