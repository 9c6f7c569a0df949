package dataflow

import (
	"context"
	"fmt"

	"github.com/qflowlabs/choidataflow/ir"
)

// applyCall implements §4.7: dispatch on the configured FunctionOpacity.
func applyCall(ctx context.Context, sd *StabilizerDataflow, g ir.Graph, node ir.NodeID, opacity ir.FunctionOpacity) error {
	switch opacity {
	case ir.Opaque:
		return applyOpaque(sd, g, node)
	case ir.Boundary:
		return applyCallBoundary(ctx, sd, g, node, opacity)
	case ir.Inline:
		return applyCallInline(ctx, sd, g, node, opacity)
	default:
		return fmt.Errorf("dataflow: %s: unknown function opacity %v: %w", node, opacity, ErrMalformedGraph)
	}
}

// applyCallBoundary recursively analyzes the callee once, projects its
// tableau down to its own IO columns (discarding internals), and composes
// sequentially at node.
func applyCallBoundary(ctx context.Context, sd *StabilizerDataflow, g ir.Graph, node ir.NodeID, opacity ir.FunctionOpacity) error {
	calleeGraph, calleeRoot, err := g.CalleeBody(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyCallBoundary(%s): %w", node, err)
	}
	calleeSD, err := runRegion(ctx, calleeGraph, calleeRoot, opacity)
	if err != nil {
		return fmt.Errorf("dataflow: applyCallBoundary(%s): callee %s: %w", node, calleeRoot, err)
	}
	sd.NestedAnalysis[calleeRoot] = calleeSD

	inN := len(calleeSD.InCols)
	ioCols := append(colsByPort(calleeSD.InCols), colsByPort(calleeSD.OutCols)...)
	clone := calleeSD.Tab.Clone()
	if err := projectAwayNonIO(clone, ioCols); err != nil {
		return fmt.Errorf("dataflow: applyCallBoundary(%s): %w", node, err)
	}
	compact, err := restrictAndReorder(clone, ioCols)
	if err != nil {
		return fmt.Errorf("dataflow: applyCallBoundary(%s): %w", node, err)
	}

	inCols := make(map[ir.PortRef]int, len(calleeSD.InCols))
	for k := range calleeSD.InCols {
		inCols[k] = k.Port
	}
	outCols := make(map[ir.PortRef]int, len(calleeSD.OutCols))
	for k := range calleeSD.OutCols {
		outCols[k] = inN + k.Port
	}

	boundary := &StabilizerDataflow{
		Tab:             compact,
		InCols:          inCols,
		OutCols:         outCols,
		FrontierCols:    map[ir.PortRef]int{},
		InternalInCols:  map[ir.PortRef]int{},
		InternalOutCols: map[ir.PortRef]int{},
		NestedInCols:    map[ir.PortRef]int{},
		NestedOutCols:   map[ir.PortRef]int{},
		NestedAnalysis:  map[ir.NodeID]*StabilizerDataflow{},
	}

	return applyAnalysis(sd, g, node, boundary, false)
}

// applyCallInline recursively analyzes the callee and composes it without
// discarding internal columns, so later passes can correlate internal
// callee gates with the surrounding circuit.
func applyCallInline(ctx context.Context, sd *StabilizerDataflow, g ir.Graph, node ir.NodeID, opacity ir.FunctionOpacity) error {
	calleeGraph, calleeRoot, err := g.CalleeBody(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyCallInline(%s): %w", node, err)
	}
	calleeSD, err := runRegion(ctx, calleeGraph, calleeRoot, opacity)
	if err != nil {
		return fmt.Errorf("dataflow: applyCallInline(%s): callee %s: %w", node, calleeRoot, err)
	}
	sd.NestedAnalysis[calleeRoot] = calleeSD

	return applyAnalysis(sd, g, node, calleeSD, true)
}
