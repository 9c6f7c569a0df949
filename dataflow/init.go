package dataflow

import (
	"fmt"

	"github.com/qflowlabs/choidataflow/ir"
)

// findInput locates the unique Input-sentinel child of region among
// children, failing with ErrMalformedGraph if there is not exactly one.
func findInput(g ir.Graph, region ir.NodeID, children []ir.NodeID) (ir.NodeID, error) {
	var input ir.NodeID
	found := false
	for _, c := range children {
		ot, err := g.OpType(c)
		if err != nil {
			return "", fmt.Errorf("dataflow: findInput(%s): %w", region, err)
		}
		if ot.Kind == ir.OpInput {
			if found {
				return "", fmt.Errorf("dataflow: region %s has more than one Input sentinel: %w", region, ErrMalformedGraph)
			}
			input = c
			found = true
		}
	}
	if !found {
		return "", fmt.Errorf("dataflow: region %s has no Input sentinel: %w", region, ErrMalformedGraph)
	}

	return input, nil
}

// initRegion seeds a fresh StabilizerDataflow from region's Input
// sentinel: for each qubit output port, allocates two fresh columns (one
// for in_cols, one for the successor's frontier entry) and adds the
// identity stabilizers coupling them, per §4.2.
func initRegion(g ir.Graph, region ir.NodeID, children []ir.NodeID) (*StabilizerDataflow, ir.NodeID, error) {
	input, err := findInput(g, region, children)
	if err != nil {
		return nil, "", err
	}

	sd, err := newStabilizerDataflow()
	if err != nil {
		return nil, "", err
	}

	outPorts, err := g.OutPorts(input)
	if err != nil {
		return nil, "", fmt.Errorf("dataflow: initRegion(%s): %w", region, err)
	}

	for _, p := range qubitPorts(outPorts) {
		succNode, succPort, err := g.SingleSucc(input, p.Port)
		if err != nil {
			return nil, "", fmt.Errorf("dataflow: initRegion(%s): Input[%d]: %w: %v", region, p.Port, ErrMalformedGraph, err)
		}

		cIn := sd.Tab.AddCol()
		cFront := sd.Tab.AddCol()
		if err := addIdentityCoupling(sd.Tab, cIn, cFront); err != nil {
			return nil, "", fmt.Errorf("dataflow: initRegion(%s): %w", region, err)
		}

		sd.InCols[ir.PortRef{Node: input, Port: p.Port}] = cIn
		sd.FrontierCols[ir.PortRef{Node: succNode, Port: succPort}] = cFront
	}

	return sd, input, nil
}
