package dataflow

import (
	"fmt"

	"github.com/qflowlabs/choidataflow/ir"
	"github.com/qflowlabs/choidataflow/pauli"
	"github.com/qflowlabs/choidataflow/tableau"
)

// qubitPorts filters specs to those carrying a qubit value, preserving
// port order.
func qubitPorts(specs []ir.PortSpec) []ir.PortSpec {
	out := make([]ir.PortSpec, 0, len(specs))
	for _, s := range specs {
		if s.Qubit {
			out = append(out, s)
		}
	}

	return out
}

// consumeFrontier removes and returns the frontier column feeding node's
// inPort, failing with ErrInvariantViolation if no such entry exists.
func consumeFrontier(sd *StabilizerDataflow, node ir.NodeID, inPort int) (int, error) {
	ref := ir.PortRef{Node: node, Port: inPort}
	col, ok := sd.FrontierCols[ref]
	if !ok {
		return 0, fmt.Errorf("dataflow: %s has no frontier entry: %w", ref, ErrInvariantViolation)
	}
	delete(sd.FrontierCols, ref)

	return col, nil
}

// publishFrontier records col as the frontier column feeding node's
// outPort's unique successor.
func publishFrontier(sd *StabilizerDataflow, g ir.Graph, node ir.NodeID, outPort, col int) error {
	succNode, succPort, err := g.SingleSucc(node, outPort)
	if err != nil {
		return fmt.Errorf("dataflow: %s[%d]: %w: %v", node, outPort, ErrMalformedGraph, err)
	}
	sd.FrontierCols[ir.PortRef{Node: succNode, Port: succPort}] = col

	return nil
}

// addIdentityCoupling appends the ZZ and XX stabilizers that assert column
// a equals column b (the recipe used at Input seeding, non-Clifford
// boundary output/frontier coupling, and opaque output/frontier coupling).
func addIdentityCoupling(tab *tableau.ChoiTableau, a, b int) error {
	zz, err := pauli.NewZZ(tab.NbQubits, a, b)
	if err != nil {
		return fmt.Errorf("dataflow: addIdentityCoupling: %w", err)
	}
	if err := tab.AddRow(zz); err != nil {
		return fmt.Errorf("dataflow: addIdentityCoupling: %w", err)
	}
	xx, err := pauli.NewXX(tab.NbQubits, a, b)
	if err != nil {
		return fmt.Errorf("dataflow: addIdentityCoupling: %w", err)
	}
	if err := tab.AddRow(xx); err != nil {
		return fmt.Errorf("dataflow: addIdentityCoupling: %w", err)
	}

	return nil
}
