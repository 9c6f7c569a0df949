package circuitgraph

import (
	"fmt"
	"sort"
	"sync"

	"github.com/qflowlabs/choidataflow/core"
	"github.com/qflowlabs/choidataflow/dfs"
	"github.com/qflowlabs/choidataflow/ir"
)

// Graph is an in-memory ir.Graph: a catalog of nodes with declared ports,
// one core.Graph of node connectivity per region, and the nested-region
// accessors (case regions, loop body, callee) consulted by CaseRegions,
// LoopBody, and CalleeBody.
type Graph struct {
	muNodes   sync.RWMutex
	muRegions sync.RWMutex

	nodes map[ir.NodeID]*nodeRecord

	regionGraphs map[ir.NodeID]*core.Graph // region root -> connectivity of its direct children
	regionOf     map[ir.NodeID]ir.NodeID   // child node -> region root it was added under

	succ map[ir.PortRef]ir.PortRef // (node,outPort) -> (succNode, succPort)

	caseRegions map[ir.NodeID][]ir.NodeID
	loopBody    map[ir.NodeID]ir.NodeID
	callees     map[ir.NodeID]calleeRef
}

type calleeRef struct {
	graph *Graph
	root  ir.NodeID
}

type nodeRecord struct {
	op       ir.OpType
	inPorts  []ir.PortSpec
	outPorts []ir.PortSpec
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:        make(map[ir.NodeID]*nodeRecord),
		regionGraphs: make(map[ir.NodeID]*core.Graph),
		regionOf:     make(map[ir.NodeID]ir.NodeID),
		succ:         make(map[ir.PortRef]ir.PortRef),
		caseRegions:  make(map[ir.NodeID][]ir.NodeID),
		loopBody:     make(map[ir.NodeID]ir.NodeID),
		callees:      make(map[ir.NodeID]calleeRef),
	}
}

var _ ir.Graph = (*Graph)(nil)

func (g *Graph) node(id ir.NodeID) (*nodeRecord, error) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("circuitgraph: node %q: %w", id, ErrNodeNotFound)
	}

	return n, nil
}

// Children returns region's direct members in topological order, derived
// from that region's connectivity graph via dfs.TopologicalSort.
func (g *Graph) Children(region ir.NodeID) ([]ir.NodeID, error) {
	g.muRegions.RLock()
	rg, ok := g.regionGraphs[region]
	g.muRegions.RUnlock()
	if !ok {
		return nil, fmt.Errorf("circuitgraph: region %q: %w", region, ErrRegionNotFound)
	}

	order, err := dfs.TopologicalSort(rg)
	if err != nil {
		return nil, fmt.Errorf("circuitgraph: Children(%q): %w", region, err)
	}

	ids := make([]ir.NodeID, len(order))
	for i, v := range order {
		ids[i] = ir.NodeID(v)
	}

	return ids, nil
}

// OpType classifies node.
func (g *Graph) OpType(node ir.NodeID) (ir.OpType, error) {
	n, err := g.node(node)
	if err != nil {
		return ir.OpType{}, err
	}

	return n.op, nil
}

// InPorts reports node's input port specs in port-index order.
func (g *Graph) InPorts(node ir.NodeID) ([]ir.PortSpec, error) {
	n, err := g.node(node)
	if err != nil {
		return nil, err
	}

	return n.inPorts, nil
}

// OutPorts reports node's output port specs in port-index order.
func (g *Graph) OutPorts(node ir.NodeID) ([]ir.PortSpec, error) {
	n, err := g.node(node)
	if err != nil {
		return nil, err
	}

	return n.outPorts, nil
}

// SingleSucc reports the unique consumer of node's outPort.
func (g *Graph) SingleSucc(node ir.NodeID, outPort int) (ir.NodeID, int, error) {
	g.muRegions.RLock()
	defer g.muRegions.RUnlock()
	to, ok := g.succ[ir.PortRef{Node: node, Port: outPort}]
	if !ok {
		return "", 0, fmt.Errorf("circuitgraph: %s[%d]: %w", node, outPort, ErrNoSuccessor)
	}

	return to.Node, to.Port, nil
}

// CaseRegions returns conditional's case region roots, in case order.
func (g *Graph) CaseRegions(conditional ir.NodeID) ([]ir.NodeID, error) {
	n, err := g.node(conditional)
	if err != nil {
		return nil, err
	}
	if n.op.Kind != ir.OpConditional {
		return nil, fmt.Errorf("circuitgraph: %s: %w", conditional, ErrNotConditional)
	}
	g.muRegions.RLock()
	defer g.muRegions.RUnlock()

	cases := g.caseRegions[conditional]
	out := make([]ir.NodeID, len(cases))
	copy(out, cases)

	return out, nil
}

// LoopBody returns tailLoop's body region root.
func (g *Graph) LoopBody(tailLoop ir.NodeID) (ir.NodeID, error) {
	n, err := g.node(tailLoop)
	if err != nil {
		return "", err
	}
	if n.op.Kind != ir.OpTailLoop {
		return "", fmt.Errorf("circuitgraph: %s: %w", tailLoop, ErrNotTailLoop)
	}
	g.muRegions.RLock()
	defer g.muRegions.RUnlock()

	return g.loopBody[tailLoop], nil
}

// CalleeBody returns call's callee graph and that graph's region root.
func (g *Graph) CalleeBody(call ir.NodeID) (ir.Graph, ir.NodeID, error) {
	n, err := g.node(call)
	if err != nil {
		return nil, "", err
	}
	if n.op.Kind != ir.OpCall {
		return nil, "", fmt.Errorf("circuitgraph: %s: %w", call, ErrNotCall)
	}
	g.muRegions.RLock()
	defer g.muRegions.RUnlock()

	ref, ok := g.callees[call]
	if !ok {
		return nil, "", fmt.Errorf("circuitgraph: %s: %w", call, ErrRegionNotFound)
	}

	return ref.graph, ref.root, nil
}

// sortedNodeIDs is a debugging/inspection helper returning every node ID
// this Graph knows about, lexically sorted.
func (g *Graph) sortedNodeIDs() []ir.NodeID {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	ids := make([]ir.NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
