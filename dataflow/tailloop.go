package dataflow

import (
	"context"
	"fmt"

	"github.com/qflowlabs/choidataflow/ir"
	"github.com/qflowlabs/choidataflow/tableau"
)

// applyTailLoop implements §4.6: project the body's analysis down to its
// pass-through and loop-final IO columns, then join with the identity
// relations pass-through qubits must satisfy across iterations.
func applyTailLoop(ctx context.Context, sd *StabilizerDataflow, g ir.Graph, node ir.NodeID, opacity ir.FunctionOpacity) error {
	bodyRoot, err := g.LoopBody(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyTailLoop(%s): %w", node, err)
	}

	inPorts, err := g.InPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyTailLoop(%s): %w", node, err)
	}
	outPorts, err := g.OutPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyTailLoop(%s): %w", node, err)
	}
	qIn := qubitPorts(inPorts)
	qOut := qubitPorts(outPorts)
	k := len(qIn)
	width := k + len(qOut)

	bodySD, err := runRegion(ctx, g, bodyRoot, opacity)
	if err != nil {
		return fmt.Errorf("dataflow: applyTailLoop(%s): body %s: %w", node, bodyRoot, err)
	}
	sd.NestedAnalysis[bodyRoot] = bodySD

	layout := append(colsByPort(bodySD.InCols), colsByPort(bodySD.OutCols)...)
	if len(layout) != width {
		return fmt.Errorf("dataflow: applyTailLoop(%s): body has %d IO columns, want %d: %w", node, len(layout), width, ErrMalformedGraph)
	}

	clone := bodySD.Tab.Clone()
	if err := projectAwayNonIO(clone, layout); err != nil {
		return fmt.Errorf("dataflow: applyTailLoop(%s): %w", node, err)
	}
	reordered, err := restrictAndReorder(clone, layout)
	if err != nil {
		return fmt.Errorf("dataflow: applyTailLoop(%s): %w", node, err)
	}

	initial, err := tableau.New(width)
	if err != nil {
		return fmt.Errorf("dataflow: applyTailLoop(%s): %w", node, err)
	}
	for i := 0; i < k; i++ {
		if err := addIdentityCoupling(initial, i, k+i); err != nil {
			return fmt.Errorf("dataflow: applyTailLoop(%s): %w", node, err)
		}
	}

	joined, err := joinTableaux(initial, reordered, width)
	if err != nil {
		return fmt.Errorf("dataflow: applyTailLoop(%s): %w", node, err)
	}

	offset, err := embedNested(sd.Tab, joined)
	if err != nil {
		return fmt.Errorf("dataflow: applyTailLoop(%s): %w", node, err)
	}

	for i, p := range qIn {
		cInternal, err := consumeFrontier(sd, node, p.Port)
		if err != nil {
			return fmt.Errorf("dataflow: applyTailLoop(%s): %w", node, err)
		}
		cNested := i + offset
		if err := mergeColumn(sd.Tab, cInternal, cNested); err != nil {
			return fmt.Errorf("dataflow: applyTailLoop(%s): %w", node, err)
		}
		sd.InternalInCols[ir.PortRef{Node: node, Port: p.Port}] = cInternal
		sd.NestedInCols[ir.PortRef{Node: node, Port: i}] = cNested
	}

	for i, p := range qOut {
		cInternalOut := sd.Tab.AddCol()
		cFront := sd.Tab.AddCol()
		if err := addIdentityCoupling(sd.Tab, cInternalOut, cFront); err != nil {
			return fmt.Errorf("dataflow: applyTailLoop(%s): %w", node, err)
		}
		cNestedOut := k + i + offset
		if err := mergeColumn(sd.Tab, cInternalOut, cNestedOut); err != nil {
			return fmt.Errorf("dataflow: applyTailLoop(%s): %w", node, err)
		}
		sd.InternalOutCols[ir.PortRef{Node: node, Port: p.Port}] = cInternalOut
		sd.NestedOutCols[ir.PortRef{Node: node, Port: i}] = cNestedOut
		if err := publishFrontier(sd, g, node, p.Port, cFront); err != nil {
			return fmt.Errorf("dataflow: applyTailLoop(%s): %w", node, err)
		}
	}

	return nil
}
