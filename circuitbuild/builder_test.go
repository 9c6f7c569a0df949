package circuitbuild

import (
	"testing"

	"github.com/qflowlabs/choidataflow/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput_SeedsWires(t *testing.T) {
	b := New().Input(2)
	require.Len(t, b.wires, 2)

	outs, err := b.g.OutPorts(b.wires[0].Node)
	require.NoError(t, err)
	assert.Len(t, outs, 2)
}

func TestInputMixed_SkipsNonQubitWires(t *testing.T) {
	b := New().InputMixed([]bool{true, false, true})
	assert.Len(t, b.wires, 2)
	assert.Equal(t, 0, b.wires[0].Port)
	assert.Equal(t, 2, b.wires[1].Port)
}

func TestGate1_RewiresOutput(t *testing.T) {
	b := New().Input(1)
	before := b.wires[0]
	b.Gate1(ir.GateH, 0)
	assert.NotEqual(t, before, b.wires[0])

	outType, err := b.g.OpType(b.wires[0].Node)
	require.NoError(t, err)
	assert.Equal(t, ir.GateH, outType.ExtName)
}

func TestGate2_ConnectsBothWires(t *testing.T) {
	b := New().Input(2)
	b.Gate2(ir.GateCX, 0, 1)

	succ0Node := b.wires[0].Node
	succ1Node := b.wires[1].Node
	assert.Equal(t, succ0Node, succ1Node)
}

func TestAllocFreeQubit_ShiftsWireIndices(t *testing.T) {
	b := New().Input(1)
	q := b.AllocQubit()
	assert.Equal(t, 1, q)
	assert.Len(t, b.wires, 2)

	b.FreeQubit(0)
	assert.Len(t, b.wires, 1)
}

func TestMeasureFree_RemovesWire(t *testing.T) {
	b := New().Input(2)
	b.MeasureFree(0)
	assert.Len(t, b.wires, 1)
}

func TestOutput_ConnectsAllActiveWires(t *testing.T) {
	b := New().Input(2)
	root := b.Output()
	assert.Equal(t, b.region, root)

	children, err := b.g.Children(root)
	require.NoError(t, err)
	assert.Len(t, children, 2) // Input + Output
}

func TestCheckWire_PanicsOutOfRange(t *testing.T) {
	b := New().Input(1)
	assert.Panics(t, func() { b.Gate1(ir.GateH, 5) })
}
