package circuitbuild

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/qflowlabs/choidataflow/circuitgraph"
	"github.com/qflowlabs/choidataflow/ir"
)

// idCounter is process-wide so that nested regions sharing one underlying
// Graph (Conditional cases, Call callees) never collide on a node ID.
var idCounter uint64

func nextNodeID() ir.NodeID {
	return ir.NodeID("n" + strconv.FormatUint(atomic.AddUint64(&idCounter, 1), 10))
}

// Builder constructs one region of a circuitgraph.Graph: an Input
// sentinel, a sequence of gates and nested regions threaded over a set of
// active "wires", and an Output sentinel.
type Builder struct {
	g      *circuitgraph.Graph
	region ir.NodeID

	wires []ir.PortRef // wires[i] is the current tail port feeding wire i's next consumer
}

// New returns a Builder for a fresh Graph's top-level region.
func New() *Builder {
	g := circuitgraph.New()
	root := ir.NodeID("root")
	g.AddRegion(root)

	return &Builder{g: g, region: root}
}

// newRegion returns a Builder for a fresh region within the same
// underlying Graph as b — used for Conditional cases, TailLoop bodies, and
// Call callees.
func (b *Builder) newRegion() *Builder {
	root := nextNodeID()
	b.g.AddRegion(root)

	return &Builder{g: b.g, region: root}
}

// Graph returns the underlying circuitgraph.Graph being built.
func (b *Builder) Graph() *circuitgraph.Graph { return b.g }

// Region returns this builder's region root NodeID.
func (b *Builder) Region() ir.NodeID { return b.region }

func qubitSpecs(n int) []ir.PortSpec {
	ps := make([]ir.PortSpec, n)
	for i := range ps {
		ps[i] = ir.PortSpec{Port: i, Qubit: true}
	}

	return ps
}

// Input seeds the region with an Input sentinel of n qubit-typed ports,
// establishing n active wires numbered 0..n-1.
func (b *Builder) Input(n int) *Builder {
	return b.InputMixed(boolsAllTrue(n))
}

func boolsAllTrue(n int) []bool {
	bs := make([]bool, n)
	for i := range bs {
		bs[i] = true
	}

	return bs
}

// InputMixed seeds the region with an Input sentinel whose ports follow
// qubit (qubit[i] == true means port i is qubit-typed); non-qubit ports
// are not tracked as wires. Used by scenarios mixing qubit and classical
// inputs (SPEC scenario 2).
func (b *Builder) InputMixed(qubit []bool) *Builder {
	id := nextNodeID()
	specs := make([]ir.PortSpec, len(qubit))
	for i, q := range qubit {
		specs[i] = ir.PortSpec{Port: i, Qubit: q}
	}
	if err := b.g.AddNode(b.region, id, ir.OpType{Kind: ir.OpInput}, nil, specs); err != nil {
		panic(fmt.Sprintf("circuitbuild: Input: %v", err))
	}

	b.wires = b.wires[:0]
	for i, q := range qubit {
		if q {
			b.wires = append(b.wires, ir.PortRef{Node: id, Port: i})
		}
	}

	return b
}

func (b *Builder) checkWire(w int) {
	if w < 0 || w >= len(b.wires) {
		panic(fmt.Sprintf("circuitbuild: %v: wire %d", ErrWireOutOfRange, w))
	}
}

func (b *Builder) connectFrom(id ir.NodeID, srcs []int) {
	for port, w := range srcs {
		b.checkWire(w)
		if err := b.g.Connect(b.wires[w], ir.PortRef{Node: id, Port: port}); err != nil {
			panic(fmt.Sprintf("circuitbuild: Connect: %v", err))
		}
	}
}

// addGate appends a node with len(srcWires) qubit inputs and outputs,
// rewires each srcWires[i] to the new node's output port i, and returns
// the node ID.
func (b *Builder) addGate(name string, srcWires []int) ir.NodeID {
	id := nextNodeID()
	n := len(srcWires)
	if err := b.g.AddNode(b.region, id, ir.OpType{Kind: ir.OpExtension, ExtName: name}, qubitSpecs(n), qubitSpecs(n)); err != nil {
		panic(fmt.Sprintf("circuitbuild: addGate(%s): %v", name, err))
	}
	b.connectFrom(id, srcWires)
	for i, w := range srcWires {
		b.wires[w] = ir.PortRef{Node: id, Port: i}
	}

	return id
}

// Gate1 appends a single-qubit named operation on wire.
func (b *Builder) Gate1(name string, wire int) *Builder {
	b.addGate(name, []int{wire})

	return b
}

// Gate2 appends a two-qubit named operation with control wire a and target
// wire b (port 0 = a, port 1 = b).
func (b *Builder) Gate2(name string, a, bWire int) *Builder {
	b.addGate(name, []int{a, bWire})

	return b
}

// Gate3 appends a three-qubit named operation (Toffoli: ports 0,1 are
// controls, port 2 is target).
func (b *Builder) Gate3(name string, a, bWire, c int) *Builder {
	b.addGate(name, []int{a, bWire, c})

	return b
}

// Opaque appends an unrecognized extension operation with n qubit inputs
// drawn from srcWires, treated as a barrier by package dataflow.
func (b *Builder) Opaque(name string, srcWires []int) *Builder {
	b.addGate(name, srcWires)

	return b
}

// AllocQubit appends QAlloc, introducing a fresh wire (appended at the end
// of the active wire set) and returning its index.
func (b *Builder) AllocQubit() int {
	id := nextNodeID()
	if err := b.g.AddNode(b.region, id, ir.OpType{Kind: ir.OpExtension, ExtName: ir.GateQAlloc}, nil, qubitSpecs(1)); err != nil {
		panic(fmt.Sprintf("circuitbuild: AllocQubit: %v", err))
	}
	b.wires = append(b.wires, ir.PortRef{Node: id, Port: 0})

	return len(b.wires) - 1
}

// FreeQubit appends QFree on wire and removes it from the active wire set,
// shifting higher wire indices down by one.
func (b *Builder) FreeQubit(wire int) *Builder {
	b.checkWire(wire)
	id := nextNodeID()
	if err := b.g.AddNode(b.region, id, ir.OpType{Kind: ir.OpExtension, ExtName: ir.GateQFree}, qubitSpecs(1), nil); err != nil {
		panic(fmt.Sprintf("circuitbuild: FreeQubit: %v", err))
	}
	if err := b.g.Connect(b.wires[wire], ir.PortRef{Node: id, Port: 0}); err != nil {
		panic(fmt.Sprintf("circuitbuild: FreeQubit: %v", err))
	}
	b.wires = append(b.wires[:wire], b.wires[wire+1:]...)

	return b
}

// Reset appends Reset on wire, reusing the wire index.
func (b *Builder) Reset(wire int) *Builder {
	b.addGate(ir.GateReset, []int{wire})

	return b
}

// MeasureFree appends a destructive measurement on wire and removes it
// from the active wire set (no output column).
func (b *Builder) MeasureFree(wire int) *Builder {
	b.checkWire(wire)
	id := nextNodeID()
	if err := b.g.AddNode(b.region, id, ir.OpType{Kind: ir.OpExtension, ExtName: ir.GateMeasureFree}, qubitSpecs(1), nil); err != nil {
		panic(fmt.Sprintf("circuitbuild: MeasureFree: %v", err))
	}
	if err := b.g.Connect(b.wires[wire], ir.PortRef{Node: id, Port: 0}); err != nil {
		panic(fmt.Sprintf("circuitbuild: MeasureFree: %v", err))
	}
	b.wires = append(b.wires[:wire], b.wires[wire+1:]...)

	return b
}

// Output appends an Output sentinel wired from every currently active
// qubit wire, in wire order, and returns the region root for use as
// dataflow.Run's root (or a nested-region accessor's return value).
func (b *Builder) Output() ir.NodeID {
	id := nextNodeID()
	if err := b.g.AddNode(b.region, id, ir.OpType{Kind: ir.OpOutput}, qubitSpecs(len(b.wires)), nil); err != nil {
		panic(fmt.Sprintf("circuitbuild: Output: %v", err))
	}
	b.connectFrom(id, allIndices(len(b.wires)))

	return b.region
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}
