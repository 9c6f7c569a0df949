package dataflow

import (
	"fmt"

	"github.com/qflowlabs/choidataflow/ir"
	"github.com/qflowlabs/choidataflow/pauli"
	"github.com/qflowlabs/choidataflow/tableau"
)

// boundaryKind selects which commuting Pauli a single-qubit non-Clifford
// boundary node preserves through the gate.
type boundaryKind int

const (
	boundaryZ boundaryKind = iota // T, Tdg, Rz, Measure
	boundaryX                     // Rx
	boundaryY                     // Ry
)

var singleQubitBoundary = map[string]boundaryKind{
	ir.GateT:       boundaryZ,
	ir.GateTdg:     boundaryZ,
	ir.GateRz:      boundaryZ,
	ir.GateMeasure: boundaryZ,
	ir.GateRx:      boundaryX,
	ir.GateRy:      boundaryY,
}

// isSingleQubitBoundary reports whether name is one of the non-Clifford
// single-qubit boundary operations of §4.3.
func isSingleQubitBoundary(name string) bool {
	_, ok := singleQubitBoundary[name]

	return ok
}

// boundaryCoords returns the pair of Project coordinates spanning cin/cout
// for the commuting Pauli kind k (both Z and X coordinates for Y).
func boundaryCoords(kind boundaryKind, cin, cout int) []tableau.Coord {
	switch kind {
	case boundaryX:
		return []tableau.Coord{{Col: cin, IsX: true}, {Col: cout, IsX: true}}
	case boundaryY:
		return []tableau.Coord{
			{Col: cin, IsX: false}, {Col: cout, IsX: false},
			{Col: cin, IsX: true}, {Col: cout, IsX: true},
		}
	default:
		return []tableau.Coord{{Col: cin, IsX: false}, {Col: cout, IsX: false}}
	}
}

// boundaryPauliRow returns the commuting-Pauli stabilizer row for kind
// over columns a,b.
func boundaryPauliRow(kind boundaryKind, n, a, b int) (*pauli.PauliProduct, error) {
	switch kind {
	case boundaryX:
		return pauli.NewXX(n, a, b)
	case boundaryY:
		return pauli.NewYY(n, a, b)
	default:
		return pauli.NewZZ(n, a, b)
	}
}

// applySingleQubitBoundary implements the T/Tdg/Rz/Measure/Rx/Ry recipe of
// §4.3: consume c_in, allocate c_out and c_front, couple c_out/c_front by
// identity, add the commuting-Pauli row over (c_in, c_out), then project
// to enforce commutation.
func applySingleQubitBoundary(sd *StabilizerDataflow, g ir.Graph, node ir.NodeID, name string) error {
	inPorts, err := g.InPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applySingleQubitBoundary(%s): %w", node, err)
	}
	outPorts, err := g.OutPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applySingleQubitBoundary(%s): %w", node, err)
	}
	qIn := qubitPorts(inPorts)
	qOut := qubitPorts(outPorts)
	if len(qIn) != 1 || len(qOut) != 1 {
		return fmt.Errorf("dataflow: %s: single-qubit boundary op with %d in / %d out qubit ports: %w", node, len(qIn), len(qOut), ErrMalformedGraph)
	}

	cIn, err := consumeFrontier(sd, node, qIn[0].Port)
	if err != nil {
		return fmt.Errorf("dataflow: applySingleQubitBoundary(%s): %w", node, err)
	}
	cOut := sd.Tab.AddCol()
	cFront := sd.Tab.AddCol()

	sd.InternalInCols[ir.PortRef{Node: node, Port: qIn[0].Port}] = cIn
	sd.InternalOutCols[ir.PortRef{Node: node, Port: qOut[0].Port}] = cOut

	if err := addIdentityCoupling(sd.Tab, cOut, cFront); err != nil {
		return fmt.Errorf("dataflow: applySingleQubitBoundary(%s): %w", node, err)
	}

	kind := singleQubitBoundary[name]
	row, err := boundaryPauliRow(kind, sd.Tab.NbQubits, cIn, cOut)
	if err != nil {
		return fmt.Errorf("dataflow: applySingleQubitBoundary(%s): %w", node, err)
	}
	if err := sd.Tab.AddRow(row); err != nil {
		return fmt.Errorf("dataflow: applySingleQubitBoundary(%s): %w", node, err)
	}
	if err := sd.Tab.Project(boundaryCoords(kind, cIn, cOut)); err != nil {
		return fmt.Errorf("dataflow: applySingleQubitBoundary(%s): %w", node, err)
	}

	return publishFrontier(sd, g, node, qOut[0].Port, cFront)
}

// applyCRz implements the two-qubit non-Clifford boundary recipe: two
// (c_in, c_out, c_front) triples, a ZZ stabilizer per qubit, one combined
// projection over both pairs' Z coordinates.
func applyCRz(sd *StabilizerDataflow, g ir.Graph, node ir.NodeID) error {
	return applyMultiQubitBoundary(sd, g, node, []boundaryKind{boundaryZ, boundaryZ})
}

// applyToffoli implements the three-qubit non-Clifford boundary recipe:
// ZZ on the two controls (ports 0,1), XX on the target (port 2).
func applyToffoli(sd *StabilizerDataflow, g ir.Graph, node ir.NodeID) error {
	return applyMultiQubitBoundary(sd, g, node, []boundaryKind{boundaryZ, boundaryZ, boundaryX})
}

// applyMultiQubitBoundary generalizes the single-qubit boundary recipe to
// several qubit ports, each with its own commuting-Pauli kind, joined by
// one combined projection over every pair's coordinates.
func applyMultiQubitBoundary(sd *StabilizerDataflow, g ir.Graph, node ir.NodeID, kinds []boundaryKind) error {
	inPorts, err := g.InPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyMultiQubitBoundary(%s): %w", node, err)
	}
	outPorts, err := g.OutPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyMultiQubitBoundary(%s): %w", node, err)
	}
	qIn := qubitPorts(inPorts)
	qOut := qubitPorts(outPorts)
	if len(qIn) != len(kinds) || len(qOut) != len(kinds) {
		return fmt.Errorf("dataflow: %s: expected %d qubit ports, got %d in / %d out: %w", node, len(kinds), len(qIn), len(qOut), ErrMalformedGraph)
	}

	cIns := make([]int, len(kinds))
	cOuts := make([]int, len(kinds))
	cFronts := make([]int, len(kinds))
	var coords []tableau.Coord

	for i, kind := range kinds {
		cIn, err := consumeFrontier(sd, node, qIn[i].Port)
		if err != nil {
			return fmt.Errorf("dataflow: applyMultiQubitBoundary(%s): %w", node, err)
		}
		cOut := sd.Tab.AddCol()
		cFront := sd.Tab.AddCol()
		cIns[i], cOuts[i], cFronts[i] = cIn, cOut, cFront

		sd.InternalInCols[ir.PortRef{Node: node, Port: qIn[i].Port}] = cIn
		sd.InternalOutCols[ir.PortRef{Node: node, Port: qOut[i].Port}] = cOut

		if err := addIdentityCoupling(sd.Tab, cOut, cFront); err != nil {
			return fmt.Errorf("dataflow: applyMultiQubitBoundary(%s): %w", node, err)
		}

		row, err := boundaryPauliRow(kind, sd.Tab.NbQubits, cIn, cOut)
		if err != nil {
			return fmt.Errorf("dataflow: applyMultiQubitBoundary(%s): %w", node, err)
		}
		if err := sd.Tab.AddRow(row); err != nil {
			return fmt.Errorf("dataflow: applyMultiQubitBoundary(%s): %w", node, err)
		}
		coords = append(coords, boundaryCoords(kind, cIn, cOut)...)
	}

	if err := sd.Tab.Project(coords); err != nil {
		return fmt.Errorf("dataflow: applyMultiQubitBoundary(%s): %w", node, err)
	}

	for i := range kinds {
		if err := publishFrontier(sd, g, node, qOut[i].Port, cFronts[i]); err != nil {
			return fmt.Errorf("dataflow: applyMultiQubitBoundary(%s): %w", node, err)
		}
	}

	return nil
}

// applyQAlloc allocates a fresh |0> qubit: one column, stabilized by Z,
// published to the successor's frontier entry.
func applyQAlloc(sd *StabilizerDataflow, g ir.Graph, node ir.NodeID) error {
	outPorts, err := g.OutPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyQAlloc(%s): %w", node, err)
	}
	qOut := qubitPorts(outPorts)
	if len(qOut) != 1 {
		return fmt.Errorf("dataflow: %s: QAlloc must have exactly one qubit output: %w", node, ErrMalformedGraph)
	}

	cFront := sd.Tab.AddCol()
	row, err := pauli.NewZ(sd.Tab.NbQubits, cFront)
	if err != nil {
		return fmt.Errorf("dataflow: applyQAlloc(%s): %w", node, err)
	}
	if err := sd.Tab.AddRow(row); err != nil {
		return fmt.Errorf("dataflow: applyQAlloc(%s): %w", node, err)
	}

	return publishFrontier(sd, g, node, qOut[0].Port, cFront)
}

// applyQFree consumes c_in, projects out its Z coordinate, and drops its
// column, shifting every higher column index referenced anywhere in sd
// down by one to preserve D2.
func applyQFree(sd *StabilizerDataflow, g ir.Graph, node ir.NodeID) error {
	inPorts, err := g.InPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyQFree(%s): %w", node, err)
	}
	qIn := qubitPorts(inPorts)
	if len(qIn) != 1 {
		return fmt.Errorf("dataflow: %s: QFree must have exactly one qubit input: %w", node, ErrMalformedGraph)
	}

	cIn, err := consumeFrontier(sd, node, qIn[0].Port)
	if err != nil {
		return fmt.Errorf("dataflow: applyQFree(%s): %w", node, err)
	}
	if err := sd.Tab.Project([]tableau.Coord{{Col: cIn, IsX: false}}); err != nil {
		return fmt.Errorf("dataflow: applyQFree(%s): %w", node, err)
	}
	if err := sd.Tab.DropCol(cIn); err != nil {
		return fmt.Errorf("dataflow: applyQFree(%s): %w", node, err)
	}
	reindexAfterDrop(sd, cIn)

	return nil
}

// reindexAfterDrop decrements every column index greater than dropped
// across every map owned by sd, matching DropCol's column shift.
func reindexAfterDrop(sd *StabilizerDataflow, dropped int) {
	for _, m := range []map[ir.PortRef]int{
		sd.InCols, sd.OutCols, sd.FrontierCols,
		sd.InternalInCols, sd.InternalOutCols,
		sd.NestedInCols, sd.NestedOutCols,
	} {
		for k, v := range m {
			if v > dropped {
				m[k] = v - 1
			}
		}
	}
}

// applyReset consumes c_in, projects out its Z coordinate, then adds a
// fresh Z_{c_in} stabilizer and reuses c_in as the output frontier column.
func applyReset(sd *StabilizerDataflow, g ir.Graph, node ir.NodeID) error {
	inPorts, err := g.InPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyReset(%s): %w", node, err)
	}
	outPorts, err := g.OutPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyReset(%s): %w", node, err)
	}
	qIn := qubitPorts(inPorts)
	qOut := qubitPorts(outPorts)
	if len(qIn) != 1 || len(qOut) != 1 {
		return fmt.Errorf("dataflow: %s: Reset must have exactly one qubit in/out: %w", node, ErrMalformedGraph)
	}

	cIn, err := consumeFrontier(sd, node, qIn[0].Port)
	if err != nil {
		return fmt.Errorf("dataflow: applyReset(%s): %w", node, err)
	}
	if err := sd.Tab.Project([]tableau.Coord{{Col: cIn, IsX: false}}); err != nil {
		return fmt.Errorf("dataflow: applyReset(%s): %w", node, err)
	}
	row, err := pauli.NewZ(sd.Tab.NbQubits, cIn)
	if err != nil {
		return fmt.Errorf("dataflow: applyReset(%s): %w", node, err)
	}
	if err := sd.Tab.AddRow(row); err != nil {
		return fmt.Errorf("dataflow: applyReset(%s): %w", node, err)
	}

	return publishFrontier(sd, g, node, qOut[0].Port, cIn)
}

// applyMeasureFree consumes c_in and records it in internal_in_cols; the
// qubit is destroyed, so no output frontier entry is published.
func applyMeasureFree(sd *StabilizerDataflow, g ir.Graph, node ir.NodeID) error {
	inPorts, err := g.InPorts(node)
	if err != nil {
		return fmt.Errorf("dataflow: applyMeasureFree(%s): %w", node, err)
	}
	qIn := qubitPorts(inPorts)
	if len(qIn) != 1 {
		return fmt.Errorf("dataflow: %s: MeasureFree must have exactly one qubit input: %w", node, ErrMalformedGraph)
	}

	cIn, err := consumeFrontier(sd, node, qIn[0].Port)
	if err != nil {
		return fmt.Errorf("dataflow: applyMeasureFree(%s): %w", node, err)
	}
	sd.InternalInCols[ir.PortRef{Node: node, Port: qIn[0].Port}] = cIn

	return nil
}
