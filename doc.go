// Package choidataflow computes stabilizer-based relational dataflow
// summaries over hierarchical quantum circuit graphs.
//
// Each region of a circuit (a function body, a Conditional case, a
// TailLoop body) is summarized as a GF(2) stabilizer tableau relating its
// input and output qubit columns: Clifford gates conjugate the tableau in
// place, non-Clifford boundaries are abstracted by a single
// commuting-Pauli relation between their own input and output columns,
// opaque operations are barriers with no relation across them, and nested
// regions (Conditional, TailLoop, Call) are summarized
// independently and then composed or joined into the enclosing tableau.
//
// The packages are organized as:
//
//	bitvec/      — packed GF(2) bit vectors backing every Pauli row
//	pauli/       — single stabilizer rows (Z/X bits + sign) and their products
//	tableau/     — ChoiTableau: rows of PauliProduct, Clifford conjugation, echelon/project
//	ir/          — the hierarchical circuit graph interface and node/port types
//	circuitgraph/ — an in-memory ir.Graph built on one core.Graph per region
//	circuitbuild/ — a fluent wire-based builder for constructing circuits
//	dataflow/    — the traversal engine computing the stabilizer summary
//	core/, dfs/, matrix/ — graph connectivity, topological order, and dense export
package choidataflow
