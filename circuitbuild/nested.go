package circuitbuild

import (
	"fmt"

	"github.com/qflowlabs/choidataflow/ir"
)

// Conditional appends a Conditional node over qubitWires and builds one
// case region per entry in caseFns. Each case builder starts with
// Input(len(qubitWires)) already seeded and is closed with Output by this
// method; callers only add gates. All cases must end with the same number
// of active wires as qubitWires (the unified signature §4.5 assumes).
func (b *Builder) Conditional(qubitWires []int, caseFns ...func(*Builder)) *Builder {
	for _, w := range qubitWires {
		b.checkWire(w)
	}

	caseRoots := make([]ir.NodeID, len(caseFns))
	for i, fn := range caseFns {
		cb := b.newRegion()
		cb.Input(len(qubitWires))
		fn(cb)
		caseRoots[i] = cb.Output()
	}

	id := nextNodeID()
	n := len(qubitWires)
	if err := b.g.AddNode(b.region, id, ir.OpType{Kind: ir.OpConditional}, qubitSpecs(n), qubitSpecs(n)); err != nil {
		panic(fmt.Sprintf("circuitbuild: Conditional: %v", err))
	}
	b.g.SetCaseRegions(id, caseRoots)
	b.connectFrom(id, qubitWires)
	for i, w := range qubitWires {
		b.wires[w] = ir.PortRef{Node: id, Port: i}
	}

	return b
}

// TailLoop appends a TailLoop node over passThroughWires. body is invoked
// with a fresh builder seeded with Input(len(passThroughWires)); it may
// add gates on those wires and call AllocQubit for additional loop-final
// outputs that have no loop-carried input. The TailLoop's active wires
// afterward are, in order, the (possibly gated) pass-through wires
// followed by any loop-final wires the body introduced.
func (b *Builder) TailLoop(passThroughWires []int, body func(*Builder)) *Builder {
	for _, w := range passThroughWires {
		b.checkWire(w)
	}

	bb := b.newRegion()
	bb.Input(len(passThroughWires))
	body(bb)
	bodyOutN := len(bb.wires)
	bodyRoot := bb.Output()

	id := nextNodeID()
	if err := b.g.AddNode(b.region, id, ir.OpType{Kind: ir.OpTailLoop}, qubitSpecs(len(passThroughWires)), qubitSpecs(bodyOutN)); err != nil {
		panic(fmt.Sprintf("circuitbuild: TailLoop: %v", err))
	}
	b.g.SetLoopBody(id, bodyRoot)
	b.connectFrom(id, passThroughWires)

	for i, w := range passThroughWires {
		b.wires[w] = ir.PortRef{Node: id, Port: i}
	}
	for port := len(passThroughWires); port < bodyOutN; port++ {
		b.wires = append(b.wires, ir.PortRef{Node: id, Port: port})
	}

	return b
}

// Call appends a Call node over qubitWires, building the callee region via
// callee (seeded with Input(len(qubitWires)), closed with Output by this
// method).
func (b *Builder) Call(qubitWires []int, callee func(*Builder)) *Builder {
	for _, w := range qubitWires {
		b.checkWire(w)
	}

	cb := b.newRegion()
	cb.Input(len(qubitWires))
	callee(cb)
	calleeRoot := cb.Output()

	id := nextNodeID()
	n := len(qubitWires)
	if err := b.g.AddNode(b.region, id, ir.OpType{Kind: ir.OpCall}, qubitSpecs(n), qubitSpecs(n)); err != nil {
		panic(fmt.Sprintf("circuitbuild: Call: %v", err))
	}
	b.g.SetCallee(id, b.g, calleeRoot)
	b.connectFrom(id, qubitWires)
	for i, w := range qubitWires {
		b.wires[w] = ir.PortRef{Node: id, Port: i}
	}

	return b
}
