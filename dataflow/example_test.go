package dataflow_test

import (
	"context"
	"fmt"

	"github.com/qflowlabs/choidataflow/circuitbuild"
	"github.com/qflowlabs/choidataflow/dataflow"
	"github.com/qflowlabs/choidataflow/ir"
)

// ExampleRun_bellPair summarizes a two-qubit Bell-preparation circuit
// (H on q0, then CX q0->q1) as a stabilizer relation: the tableau ends up
// with the two rows generating the Bell stabilizer group, XX and ZZ.
func ExampleRun_bellPair() {
	b := circuitbuild.New().Input(0)
	q0 := b.AllocQubit()
	q1 := b.AllocQubit()
	b.Gate1(ir.GateH, q0)
	b.Gate2(ir.GateCX, q0, q1)
	root := b.Output()

	sd, err := dataflow.Run(context.Background(), b.Graph(), root, ir.Boundary)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("qubits:", sd.Tab.NbQubits)
	fmt.Println("stabilizer rows:", len(sd.Tab.Rows))

	// Output:
	// qubits: 2
	// stabilizer rows: 2
}

// ExampleRun_nonCliffordBoundary summarizes a single T gate: the input
// and output columns end up related by exactly one commuting-Pauli row
// instead of a full Clifford conjugation.
func ExampleRun_nonCliffordBoundary() {
	b := circuitbuild.New().Input(1)
	b.Gate1(ir.GateT, 0)
	root := b.Output()

	sd, err := dataflow.Run(context.Background(), b.Graph(), root, ir.Boundary)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("internal in columns:", len(sd.InternalInCols))
	fmt.Println("internal out columns:", len(sd.InternalOutCols))

	// Output:
	// internal in columns: 1
	// internal out columns: 1
}
