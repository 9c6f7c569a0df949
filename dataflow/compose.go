package dataflow

import (
	"fmt"
	"sort"

	"github.com/qflowlabs/choidataflow/ir"
	"github.com/qflowlabs/choidataflow/pauli"
	"github.com/qflowlabs/choidataflow/tableau"
)

// qualifyNode tags orig's node identity with the hierarchical node h that
// folded it in, so internal columns from distinct nested regions never
// collide on re-key.
func qualifyNode(h, orig ir.NodeID) ir.NodeID {
	return ir.NodeID(string(h) + "::" + string(orig))
}

// colsByPort extracts m's column values ordered by their PortRef.Port,
// for maps known to hold a single node's worth of sequential qubit ports
// (in_cols, out_cols of a freshly-completed region analysis).
func colsByPort(m map[ir.PortRef]int) []int {
	type kv struct {
		port, col int
	}
	kvs := make([]kv, 0, len(m))
	for k, v := range m {
		kvs = append(kvs, kv{k.Port, v})
	}
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].port < kvs[j].port })

	cols := make([]int, len(kvs))
	for i, e := range kvs {
		cols[i] = e.col
	}

	return cols
}

// shiftRow embeds row (width w) into a fresh row of width fullWidth,
// placing its bits at columns [offset, offset+w), identity elsewhere.
func shiftRow(row *pauli.PauliProduct, fullWidth, offset int) (*pauli.PauliProduct, error) {
	out, err := pauli.New(fullWidth)
	if err != nil {
		return nil, fmt.Errorf("dataflow: shiftRow: %w", err)
	}
	for i := 0; i < row.Width(); i++ {
		z, err := row.Z.Get(i)
		if err != nil {
			return nil, fmt.Errorf("dataflow: shiftRow: %w", err)
		}
		x, err := row.X.Get(i)
		if err != nil {
			return nil, fmt.Errorf("dataflow: shiftRow: %w", err)
		}
		if err := out.Z.Set(offset+i, z); err != nil {
			return nil, fmt.Errorf("dataflow: shiftRow: %w", err)
		}
		if err := out.X.Set(offset+i, x); err != nil {
			return nil, fmt.Errorf("dataflow: shiftRow: %w", err)
		}
	}
	out.Sign = row.Sign

	return out, nil
}

// embedNested extends tab by nested.NbQubits fresh columns and copies every
// row of nested into tab at that offset, returning the offset applied.
func embedNested(tab *tableau.ChoiTableau, nested *tableau.ChoiTableau) (int, error) {
	offset := tab.NbQubits
	for i := 0; i < nested.NbQubits; i++ {
		tab.AddCol()
	}
	for _, row := range nested.Rows {
		shifted, err := shiftRow(row, tab.NbQubits, offset)
		if err != nil {
			return 0, fmt.Errorf("dataflow: embedNested: %w", err)
		}
		if err := tab.AddRow(shifted); err != nil {
			return 0, fmt.Errorf("dataflow: embedNested: %w", err)
		}
	}

	return offset, nil
}

// mergeColumn asserts cInternal == cNested by adding ZZ/XX equality rows and
// projecting cNested's own coordinates away, substituting it out of every
// surviving row — the same projection QFree applies. Unlike QFree, the
// column itself is not dropped: it stays, all-zero in every surviving row.
func mergeColumn(tab *tableau.ChoiTableau, cInternal, cNested int) error {
	if err := addIdentityCoupling(tab, cInternal, cNested); err != nil {
		return fmt.Errorf("dataflow: mergeColumn: %w", err)
	}

	return tab.Project([]tableau.Coord{{Col: cNested, IsX: false}, {Col: cNested, IsX: true}})
}

// applyAnalysis implements §4.8 apply_analysis: folds a completed nested
// analysis into sd at hierarchical node h, column-shifted by sd's current
// width. keepInternals controls whether nested's internal_in_cols/
// internal_out_cols are re-keyed and retained (Call/Inline) or dropped
// (Call/Boundary and every other composition site).
func applyAnalysis(sd *StabilizerDataflow, g ir.Graph, h ir.NodeID, nested *StabilizerDataflow, keepInternals bool) error {
	offset, err := embedNested(sd.Tab, nested.Tab)
	if err != nil {
		return fmt.Errorf("dataflow: applyAnalysis(%s): %w", h, err)
	}

	inCols := colsByPort(nested.InCols)
	outCols := colsByPort(nested.OutCols)
	for i, c := range inCols {
		sd.NestedInCols[ir.PortRef{Node: h, Port: i}] = c + offset
	}
	for i, c := range outCols {
		sd.NestedOutCols[ir.PortRef{Node: h, Port: i}] = c + offset
	}

	if keepInternals {
		for k, v := range nested.InternalInCols {
			sd.InternalInCols[ir.PortRef{Node: qualifyNode(h, k.Node), Port: k.Port}] = v + offset
		}
		for k, v := range nested.InternalOutCols {
			sd.InternalOutCols[ir.PortRef{Node: qualifyNode(h, k.Node), Port: k.Port}] = v + offset
		}
	}

	inPorts, err := g.InPorts(h)
	if err != nil {
		return fmt.Errorf("dataflow: applyAnalysis(%s): %w", h, err)
	}
	outPorts, err := g.OutPorts(h)
	if err != nil {
		return fmt.Errorf("dataflow: applyAnalysis(%s): %w", h, err)
	}

	for i, p := range qubitPorts(inPorts) {
		cInternal, err := consumeFrontier(sd, h, p.Port)
		if err != nil {
			return fmt.Errorf("dataflow: applyAnalysis(%s): %w", h, err)
		}
		cNested := sd.NestedInCols[ir.PortRef{Node: h, Port: i}]
		if err := mergeColumn(sd.Tab, cInternal, cNested); err != nil {
			return fmt.Errorf("dataflow: applyAnalysis(%s): %w", h, err)
		}
		sd.InternalInCols[ir.PortRef{Node: h, Port: p.Port}] = cInternal
	}

	for i, p := range qubitPorts(outPorts) {
		cInternalOut := sd.Tab.AddCol()
		cFront := sd.Tab.AddCol()
		if err := addIdentityCoupling(sd.Tab, cInternalOut, cFront); err != nil {
			return fmt.Errorf("dataflow: applyAnalysis(%s): %w", h, err)
		}
		cNestedOut := sd.NestedOutCols[ir.PortRef{Node: h, Port: i}]
		if err := mergeColumn(sd.Tab, cInternalOut, cNestedOut); err != nil {
			return fmt.Errorf("dataflow: applyAnalysis(%s): %w", h, err)
		}
		sd.InternalOutCols[ir.PortRef{Node: h, Port: p.Port}] = cInternalOut
		if err := publishFrontier(sd, g, h, p.Port, cFront); err != nil {
			return fmt.Errorf("dataflow: applyAnalysis(%s): %w", h, err)
		}
	}

	return nil
}
