package dataflow

import (
	"context"

	"github.com/qflowlabs/choidataflow/ir"
)

// Run is the sole entry point: it computes the stabilizer dataflow summary
// of the region rooted at root, recursing into nested regions per the
// configured FunctionOpacity for every Call node encountered (directly or
// transitively within Conditional/TailLoop bodies).
func Run(ctx context.Context, g ir.Graph, root ir.NodeID, opacity ir.FunctionOpacity) (*StabilizerDataflow, error) {
	return runRegion(ctx, g, root, opacity)
}
