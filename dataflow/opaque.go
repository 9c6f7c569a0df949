package dataflow

import (
	"fmt"

	"github.com/qflowlabs/choidataflow/ir"
)

// applyOpaque implements §4.4: an opaque node is a barrier. Every qubit
// input's frontier column moves into internal_in_cols untouched; every
// qubit output gets a fresh column pair coupled by identity, with no
// relation introduced between the node's inputs and outputs.
func applyOpaque(sd *StabilizerDataflow, g ir.Graph, node ir.NodeID) error {
	inPorts, err := g.InPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyOpaque(%s): %w", node, err)
	}
	outPorts, err := g.OutPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyOpaque(%s): %w", node, err)
	}

	for _, p := range qubitPorts(inPorts) {
		c, err := consumeFrontier(sd, node, p.Port)
		if err != nil {
			return fmt.Errorf("dataflow: applyOpaque(%s): %w", node, err)
		}
		sd.InternalInCols[ir.PortRef{Node: node, Port: p.Port}] = c
	}

	for _, p := range qubitPorts(outPorts) {
		cOut := sd.Tab.AddCol()
		cFront := sd.Tab.AddCol()
		if err := addIdentityCoupling(sd.Tab, cOut, cFront); err != nil {
			return fmt.Errorf("dataflow: applyOpaque(%s): %w", node, err)
		}
		sd.InternalOutCols[ir.PortRef{Node: node, Port: p.Port}] = cOut
		if err := publishFrontier(sd, g, node, p.Port, cFront); err != nil {
			return fmt.Errorf("dataflow: applyOpaque(%s): %w", node, err)
		}
	}

	return nil
}
