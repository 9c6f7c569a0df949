package dataflow

import (
	"fmt"

	"github.com/qflowlabs/choidataflow/ir"
	"github.com/qflowlabs/choidataflow/tableau"
)

// cliffordAppend is a single or two-qubit Clifford conjugation, indexed by
// the column(s) a node's qubit input ports were holding.
type cliffordAppend func(tab *tableau.ChoiTableau, cols []int) error

var cliffordDispatch = map[string]cliffordAppend{
	ir.GateX:   func(t *tableau.ChoiTableau, c []int) error { return t.AppendX(c[0]) },
	ir.GateY:   func(t *tableau.ChoiTableau, c []int) error { return t.AppendY(c[0]) },
	ir.GateZ:   func(t *tableau.ChoiTableau, c []int) error { return t.AppendZ(c[0]) },
	ir.GateS:   func(t *tableau.ChoiTableau, c []int) error { return t.AppendS(c[0]) },
	ir.GateSdg: func(t *tableau.ChoiTableau, c []int) error { return t.AppendSdg(c[0]) },
	ir.GateV:   func(t *tableau.ChoiTableau, c []int) error { return t.AppendV(c[0]) },
	ir.GateVdg: func(t *tableau.ChoiTableau, c []int) error { return t.AppendVdg(c[0]) },
	ir.GateH:   func(t *tableau.ChoiTableau, c []int) error { return t.AppendH(c[0]) },
	ir.GateCX:  func(t *tableau.ChoiTableau, c []int) error { return t.AppendCX(c[0], c[1]) },
	ir.GateCY:  func(t *tableau.ChoiTableau, c []int) error { return t.AppendCY(c[0], c[1]) },
	ir.GateCZ:  func(t *tableau.ChoiTableau, c []int) error { return t.AppendCZ(c[0], c[1]) },
}

// isClifford reports whether name dispatches to a known Clifford append.
func isClifford(name string) bool {
	_, ok := cliffordDispatch[name]

	return ok
}

// applyClifford consumes node's qubit input frontier columns, applies the
// Clifford conjugation named by name, and republishes the same column
// index(es) to the corresponding qubit output ports — Cliffords never
// allocate new columns.
func applyClifford(sd *StabilizerDataflow, g ir.Graph, node ir.NodeID, name string) error {
	inPorts, err := g.InPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyClifford(%s): %w", node, err)
	}
	outPorts, err := g.OutPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyClifford(%s): %w", node, err)
	}
	qIn := qubitPorts(inPorts)
	qOut := qubitPorts(outPorts)

	cols := make([]int, len(qIn))
	for i, p := range qIn {
		c, err := consumeFrontier(sd, node, p.Port)
		if err != nil {
			return fmt.Errorf("dataflow: applyClifford(%s): %w", node, err)
		}
		cols[i] = c
	}

	if err := cliffordDispatch[name](sd.Tab, cols); err != nil {
		return fmt.Errorf("dataflow: applyClifford(%s,%s): %w", node, name, err)
	}

	for i, p := range qOut {
		if err := publishFrontier(sd, g, node, p.Port, cols[i]); err != nil {
			return fmt.Errorf("dataflow: applyClifford(%s): %w", node, err)
		}
	}

	return nil
}
