// Package tableau implements ChoiTableau, a binary symplectic tableau
// representing a set of Pauli stabilizer relations over the Choi state of a
// circuit skeleton. It supports Clifford appends, row multiplication,
// row-echelon reduction over selected coordinates, and column projection —
// the algebraic core that package dataflow drives over a circuit graph.
package tableau
