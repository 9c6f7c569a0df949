package dataflow_test

import (
	"context"
	"strings"
	"testing"

	"github.com/qflowlabs/choidataflow/circuitbuild"
	"github.com/qflowlabs/choidataflow/dataflow"
	"github.com/qflowlabs/choidataflow/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario7_QFreeReindexesSurvivingColumn(t *testing.T) {
	b := circuitbuild.New().Input(0)
	q0 := b.AllocQubit()
	q1 := b.AllocQubit()
	b.Gate1(ir.GateH, q0)
	b.Gate2(ir.GateCX, q0, q1)
	b.FreeQubit(q0)
	root := b.Output()

	sd, err := dataflow.Run(context.Background(), b.Graph(), root, ir.Boundary)
	require.NoError(t, err)

	assert.Equal(t, 1, sd.Tab.NbQubits)
	require.Len(t, sd.OutCols, 1)
	for _, col := range sd.OutCols {
		assert.Less(t, col, sd.Tab.NbQubits, "out_cols must reference a live column")
		assert.GreaterOrEqual(t, col, 0)
	}
	for _, col := range sd.FrontierCols {
		assert.Less(t, col, sd.Tab.NbQubits)
	}
}

func TestScenario8_ConditionalJoinKeepsOnlyCommonRelation(t *testing.T) {
	b := circuitbuild.New().Input(1)
	b.Conditional([]int{0},
		func(cb *circuitbuild.Builder) { cb.Gate1(ir.GateT, 0) },
		func(cb *circuitbuild.Builder) { cb.Gate1(ir.GateH, 0); cb.Gate1(ir.GateH, 0) },
	)
	root := b.Output()

	sd, err := dataflow.Run(context.Background(), b.Graph(), root, ir.Boundary)
	require.NoError(t, err)
	assert.Len(t, sd.NestedAnalysis, 2)

	var inCol, outCol int
	for _, c := range sd.InternalInCols {
		inCol = c
	}
	for _, c := range sd.InternalOutCols {
		outCol = c
	}

	hasZZ, hasXX := false, false
	for _, row := range sd.Tab.Rows {
		zIn, _ := row.Z.Get(inCol)
		zOut, _ := row.Z.Get(outCol)
		xIn, _ := row.X.Get(inCol)
		xOut, _ := row.X.Get(outCol)
		if zIn && zOut && !xIn && !xOut {
			hasZZ = true
		}
		if xIn && xOut && !zIn && !zOut {
			hasXX = true
		}
	}
	assert.True(t, hasZZ, "the Z-relation both cases agree on should survive the join")
	assert.False(t, hasXX, "the X-relation T breaks should not survive the join")
}

func TestScenario9_TailLoopPassThroughVsLoopFinal(t *testing.T) {
	b := circuitbuild.New().Input(1)
	b.TailLoop([]int{0}, func(bb *circuitbuild.Builder) {
		bb.Gate1(ir.GateX, 0)
		bb.Gate1(ir.GateX, 0)
		bb.AllocQubit()
	})
	root := b.Output()

	sd, err := dataflow.Run(context.Background(), b.Graph(), root, ir.Boundary)
	require.NoError(t, err)

	assert.Len(t, sd.InternalInCols, 1)
	assert.Len(t, sd.InternalOutCols, 2)

	var inCol int
	for _, c := range sd.InternalInCols {
		inCol = c
	}
	var passThroughOut, loopFinalOut int
	found := 0
	for k, c := range sd.InternalOutCols {
		if k.Port == 0 {
			passThroughOut = c
			found++
		} else {
			loopFinalOut = c
			found++
		}
	}
	require.Equal(t, 2, found)

	identityHolds := false
	for _, row := range sd.Tab.Rows {
		z1, _ := row.Z.Get(inCol)
		z2, _ := row.Z.Get(passThroughOut)
		if z1 && z2 {
			identityHolds = true
		}
	}
	assert.True(t, identityHolds, "pass-through qubit keeps its identity relation")

	for _, row := range sd.Tab.Rows {
		z, _ := row.Z.Get(loopFinalOut)
		x, _ := row.X.Get(loopFinalOut)
		zIn, _ := row.Z.Get(inCol)
		xIn, _ := row.X.Get(inCol)
		if (z || x) && (zIn || xIn) {
			t.Fatalf("loop-final output column must not be related to the pass-through input")
		}
	}
}

func TestScenario10_CallUnderEachFunctionOpacity(t *testing.T) {
	callee := func(cb *circuitbuild.Builder) {
		cb.Gate1(ir.GateH, 0)
		cb.Opaque("Blackbox", []int{0})
	}

	t.Run("Opaque", func(t *testing.T) {
		b := circuitbuild.New().Input(1)
		b.Call([]int{0}, callee)
		root := b.Output()

		sd, err := dataflow.Run(context.Background(), b.Graph(), root, ir.Opaque)
		require.NoError(t, err)
		assert.Empty(t, sd.NestedAnalysis, "Opaque must never recurse into the callee")
		assert.Len(t, sd.InternalInCols, 1)
		assert.Len(t, sd.InternalOutCols, 1)
	})

	t.Run("Boundary", func(t *testing.T) {
		b := circuitbuild.New().Input(1)
		b.Call([]int{0}, callee)
		root := b.Output()

		sd, err := dataflow.Run(context.Background(), b.Graph(), root, ir.Boundary)
		require.NoError(t, err)
		assert.Len(t, sd.NestedAnalysis, 1, "Boundary recurses into the callee once")
		for k := range sd.InternalInCols {
			assert.False(t, strings.Contains(string(k.Node), "::"), "Boundary must not retain callee internals")
		}
		for k := range sd.InternalOutCols {
			assert.False(t, strings.Contains(string(k.Node), "::"))
		}
	})

	t.Run("Inline", func(t *testing.T) {
		b := circuitbuild.New().Input(1)
		b.Call([]int{0}, callee)
		root := b.Output()

		sd, err := dataflow.Run(context.Background(), b.Graph(), root, ir.Inline)
		require.NoError(t, err)
		assert.Len(t, sd.NestedAnalysis, 1)

		retainedInternal := false
		for k := range sd.InternalInCols {
			if strings.Contains(string(k.Node), "::") {
				retainedInternal = true
			}
		}
		for k := range sd.InternalOutCols {
			if strings.Contains(string(k.Node), "::") {
				retainedInternal = true
			}
		}
		assert.True(t, retainedInternal, "Inline must retain the callee's internal columns")
	})
}
