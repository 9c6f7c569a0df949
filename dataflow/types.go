package dataflow

import (
	"github.com/qflowlabs/choidataflow/ir"
	"github.com/qflowlabs/choidataflow/tableau"
)

// StabilizerDataflow is the analysis state for one region: an owned
// tableau plus the port-to-column mappings recorded while traversing that
// region's children.
type StabilizerDataflow struct {
	Tab *tableau.ChoiTableau

	// InCols maps a region's Input sentinel's (node, port) to its tableau
	// column.
	InCols map[ir.PortRef]int
	// OutCols maps a region's Output sentinel's (node, port) to its
	// tableau column.
	OutCols map[ir.PortRef]int
	// FrontierCols maps (successor_node, successor_input_port) to the
	// column currently feeding that not-yet-processed consumer.
	FrontierCols map[ir.PortRef]int
	// InternalInCols and InternalOutCols map (node, port) to column for
	// every qubit port of every opaque or non-Clifford internal node.
	InternalInCols  map[ir.PortRef]int
	InternalOutCols map[ir.PortRef]int
	// NestedInCols and NestedOutCols map (hierarchical_node, port) to
	// column, recording where a nested region's boundary qubits landed
	// after composition.
	NestedInCols  map[ir.PortRef]int
	NestedOutCols map[ir.PortRef]int
	// NestedAnalysis retains each nested region's own completed analysis,
	// keyed by its hierarchical node, for inspection.
	NestedAnalysis map[ir.NodeID]*StabilizerDataflow
}

func newStabilizerDataflow() (*StabilizerDataflow, error) {
	tab, err := tableau.New(0)
	if err != nil {
		return nil, err
	}

	return &StabilizerDataflow{
		Tab:             tab,
		InCols:          make(map[ir.PortRef]int),
		OutCols:         make(map[ir.PortRef]int),
		FrontierCols:    make(map[ir.PortRef]int),
		InternalInCols:  make(map[ir.PortRef]int),
		InternalOutCols: make(map[ir.PortRef]int),
		NestedInCols:    make(map[ir.PortRef]int),
		NestedOutCols:   make(map[ir.PortRef]int),
		NestedAnalysis:  make(map[ir.NodeID]*StabilizerDataflow),
	}, nil
}
