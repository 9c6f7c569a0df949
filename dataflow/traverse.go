package dataflow

import (
	"context"
	"fmt"

	"github.com/qflowlabs/choidataflow/ir"
)

// runRegion implements §4.2+§4.3 for one region: seed the frontier from the
// region's Input sentinel, then dispatch every remaining child in
// topological order, finally transferring the frontier to out_cols at the
// Output sentinel.
func runRegion(ctx context.Context, g ir.Graph, region ir.NodeID, opacity ir.FunctionOpacity) (*StabilizerDataflow, error) {
	children, err := g.Children(region)
	if err != nil {
		return nil, fmt.Errorf("dataflow: runRegion(%s): %w", region, err)
	}

	sd, input, err := initRegion(g, region, children)
	if err != nil {
		return nil, fmt.Errorf("dataflow: runRegion(%s): %w", region, err)
	}

	for _, node := range children {
		if node == input {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("dataflow: runRegion(%s): %w", region, err)
		}

		ot, err := g.OpType(node)
		if err != nil {
			return nil, fmt.Errorf("dataflow: runRegion(%s): %w", region, err)
		}

		if err := dispatchNode(ctx, sd, g, node, ot, opacity); err != nil {
			return nil, err
		}
	}

	return sd, nil
}

// dispatchNode routes one child node to its §4.3 handler by operation
// category.
func dispatchNode(ctx context.Context, sd *StabilizerDataflow, g ir.Graph, node ir.NodeID, ot ir.OpType, opacity ir.FunctionOpacity) error {
	switch ot.Kind {
	case ir.OpOutput:
		return applyOutput(sd, g, node)
	case ir.OpConditional:
		return applyConditional(ctx, sd, g, node, opacity)
	case ir.OpTailLoop:
		return applyTailLoop(ctx, sd, g, node, opacity)
	case ir.OpCall:
		return applyCall(ctx, sd, g, node, opacity)
	case ir.OpInput:
		return fmt.Errorf("dataflow: %s: unexpected second Input sentinel: %w", node, ErrMalformedGraph)
	case ir.OpExtension:
		return dispatchExtension(sd, g, node, ot.ExtName)
	default:
		return fmt.Errorf("dataflow: %s: unrecognized operation kind %v: %w", node, ot.Kind, ErrMalformedGraph)
	}
}

// dispatchExtension routes an OpExtension node by its gate name, falling
// back to the opaque handler for anything unrecognized, per §6.
func dispatchExtension(sd *StabilizerDataflow, g ir.Graph, node ir.NodeID, name string) error {
	switch {
	case isClifford(name):
		return applyClifford(sd, g, node, name)
	case isSingleQubitBoundary(name):
		return applySingleQubitBoundary(sd, g, node, name)
	case name == ir.GateCRz:
		return applyCRz(sd, g, node)
	case name == ir.GateToffoli:
		return applyToffoli(sd, g, node)
	case name == ir.GateQAlloc:
		return applyQAlloc(sd, g, node)
	case name == ir.GateQFree:
		return applyQFree(sd, g, node)
	case name == ir.GateReset:
		return applyReset(sd, g, node)
	case name == ir.GateMeasureFree:
		return applyMeasureFree(sd, g, node)
	default:
		return applyOpaque(sd, g, node)
	}
}

// applyOutput implements the Output-sentinel branch of §4.3: transfer
// every frontier entry to out_cols, keyed by the Output node's own input
// port, then clear the frontier.
func applyOutput(sd *StabilizerDataflow, g ir.Graph, node ir.NodeID) error {
	inPorts, err := g.InPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyOutput(%s): %w", node, err)
	}

	for _, p := range qubitPorts(inPorts) {
		col, err := consumeFrontier(sd, node, p.Port)
		if err != nil {
			return fmt.Errorf("dataflow: applyOutput(%s): %w", node, err)
		}
		sd.OutCols[ir.PortRef{Node: node, Port: p.Port}] = col
	}

	return nil
}
