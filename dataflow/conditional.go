package dataflow

import (
	"context"
	"fmt"

	"github.com/qflowlabs/choidataflow/ir"
	"github.com/qflowlabs/choidataflow/tableau"
)

// applyConditional implements §4.5: recursively analyze each case region,
// project each down to its own IO columns under a shared layout, and join
// the results by row-echelon set-intersection.
func applyConditional(ctx context.Context, sd *StabilizerDataflow, g ir.Graph, node ir.NodeID, opacity ir.FunctionOpacity) error {
	cases, err := g.CaseRegions(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyConditional(%s): %w", node, err)
	}
	if len(cases) == 0 {
		return fmt.Errorf("dataflow: %s has no case regions: %w", node, ErrMalformedGraph)
	}

	inPorts, err := g.InPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyConditional(%s): %w", node, err)
	}
	outPorts, err := g.OutPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyConditional(%s): %w", node, err)
	}
	qIn := qubitPorts(inPorts)
	qOut := qubitPorts(outPorts)
	width := len(qIn) + len(qOut)

	var joined *tableau.ChoiTableau
	for _, caseRoot := range cases {
		caseSD, err := runRegion(ctx, g, caseRoot, opacity)
		if err != nil {
			return fmt.Errorf("dataflow: applyConditional(%s): case %s: %w", node, caseRoot, err)
		}
		sd.NestedAnalysis[caseRoot] = caseSD

		layout := append(colsByPort(caseSD.InCols), colsByPort(caseSD.OutCols)...)
		if len(layout) != width {
			return fmt.Errorf("dataflow: applyConditional(%s): case %s has %d IO columns, want %d: %w", node, caseRoot, len(layout), width, ErrMalformedGraph)
		}

		clone := caseSD.Tab.Clone()
		if err := projectAwayNonIO(clone, layout); err != nil {
			return fmt.Errorf("dataflow: applyConditional(%s): case %s: %w", node, caseRoot, err)
		}
		reordered, err := restrictAndReorder(clone, layout)
		if err != nil {
			return fmt.Errorf("dataflow: applyConditional(%s): case %s: %w", node, caseRoot, err)
		}

		if joined == nil {
			joined = reordered
			continue
		}
		joined, err = joinTableaux(joined, reordered, width)
		if err != nil {
			return fmt.Errorf("dataflow: applyConditional(%s): %w", node, err)
		}
	}

	offset, err := embedNested(sd.Tab, joined)
	if err != nil {
		return fmt.Errorf("dataflow: applyConditional(%s): %w", node, err)
	}

	for i, p := range qIn {
		cInternal, err := consumeFrontier(sd, node, p.Port)
		if err != nil {
			return fmt.Errorf("dataflow: applyConditional(%s): %w", node, err)
		}
		cNested := i + offset
		if err := mergeColumn(sd.Tab, cInternal, cNested); err != nil {
			return fmt.Errorf("dataflow: applyConditional(%s): %w", node, err)
		}
		sd.InternalInCols[ir.PortRef{Node: node, Port: p.Port}] = cInternal
		sd.NestedInCols[ir.PortRef{Node: node, Port: i}] = cNested
	}

	for i, p := range qOut {
		cInternalOut := sd.Tab.AddCol()
		cFront := sd.Tab.AddCol()
		if err := addIdentityCoupling(sd.Tab, cInternalOut, cFront); err != nil {
			return fmt.Errorf("dataflow: applyConditional(%s): %w", node, err)
		}
		cNestedOut := len(qIn) + i + offset
		if err := mergeColumn(sd.Tab, cInternalOut, cNestedOut); err != nil {
			return fmt.Errorf("dataflow: applyConditional(%s): %w", node, err)
		}
		sd.InternalOutCols[ir.PortRef{Node: node, Port: p.Port}] = cInternalOut
		sd.NestedOutCols[ir.PortRef{Node: node, Port: i}] = cNestedOut
		if err := publishFrontier(sd, g, node, p.Port, cFront); err != nil {
			return fmt.Errorf("dataflow: applyConditional(%s): %w", node, err)
		}
	}

	return nil
}
