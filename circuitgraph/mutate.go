package circuitgraph

import (
	"fmt"

	"github.com/qflowlabs/choidataflow/core"
	"github.com/qflowlabs/choidataflow/ir"
)

// AddRegion registers root as a fresh, empty region: a core.Graph that will
// hold the connectivity of root's eventual children. It does not itself
// create a node for root — callers that need root to also be addressable
// as a node (e.g. a Conditional or TailLoop) call AddNode separately.
func (g *Graph) AddRegion(root ir.NodeID) {
	g.muRegions.Lock()
	defer g.muRegions.Unlock()
	g.regionGraphs[root] = core.NewGraph(core.WithDirected(true))
}

// AddNode creates node id in region with the given operation and port
// specs, registering it as a member of region's connectivity graph.
func (g *Graph) AddNode(region, id ir.NodeID, op ir.OpType, inPorts, outPorts []ir.PortSpec) error {
	g.muRegions.Lock()
	rg, ok := g.regionGraphs[region]
	g.muRegions.Unlock()
	if !ok {
		return fmt.Errorf("circuitgraph: AddNode(%q): region %q: %w", id, region, ErrRegionNotFound)
	}

	g.muNodes.Lock()
	if _, exists := g.nodes[id]; exists {
		g.muNodes.Unlock()
		return fmt.Errorf("circuitgraph: AddNode(%q): %w", id, ErrDuplicateNode)
	}
	g.nodes[id] = &nodeRecord{op: op, inPorts: inPorts, outPorts: outPorts}
	g.regionOf[id] = region
	g.muNodes.Unlock()

	if err := rg.AddVertex(string(id)); err != nil {
		return fmt.Errorf("circuitgraph: AddNode(%q): %w", id, err)
	}

	return nil
}

// Connect records that from's output port feeds to's input port: a
// topological-order edge in the owning region's connectivity graph, plus a
// SingleSucc lookup entry. Both ports' nodes must have been added to the
// same region.
func (g *Graph) Connect(from, to ir.PortRef) error {
	g.muNodes.RLock()
	fromRegion, fromOK := g.regionOf[from.Node]
	toRegion, toOK := g.regionOf[to.Node]
	g.muNodes.RUnlock()
	if !fromOK {
		return fmt.Errorf("circuitgraph: Connect: %w: %s", ErrNodeNotFound, from.Node)
	}
	if !toOK {
		return fmt.Errorf("circuitgraph: Connect: %w: %s", ErrNodeNotFound, to.Node)
	}
	if fromRegion != toRegion {
		return fmt.Errorf("circuitgraph: Connect: %s and %s belong to different regions", from.Node, to.Node)
	}

	g.muRegions.Lock()
	rg := g.regionGraphs[fromRegion]
	g.succ[from] = to
	g.muRegions.Unlock()

	if _, err := rg.AddEdge(string(from.Node), string(to.Node), 0); err != nil {
		return fmt.Errorf("circuitgraph: Connect(%s -> %s): %w", from, to, err)
	}

	return nil
}

// SetCaseRegions registers conditional's case region roots, in case order.
func (g *Graph) SetCaseRegions(conditional ir.NodeID, cases []ir.NodeID) {
	g.muRegions.Lock()
	defer g.muRegions.Unlock()
	cp := make([]ir.NodeID, len(cases))
	copy(cp, cases)
	g.caseRegions[conditional] = cp
}

// SetLoopBody registers tailLoop's body region root.
func (g *Graph) SetLoopBody(tailLoop, body ir.NodeID) {
	g.muRegions.Lock()
	defer g.muRegions.Unlock()
	g.loopBody[tailLoop] = body
}

// SetCallee registers call's callee graph and region root. callee may be g
// itself (a locally defined function) or a distinct Graph.
func (g *Graph) SetCallee(call ir.NodeID, callee *Graph, root ir.NodeID) {
	g.muRegions.Lock()
	defer g.muRegions.Unlock()
	g.callees[call] = calleeRef{graph: callee, root: root}
}
