// Package matrix provides a small row-major dense matrix, used to export
// numeric snapshots of GF(2) structures (such as a ChoiTableau) for
// debugging, logging, or downstream tooling that expects a plain
// two-dimensional array rather than packed bits.
//
// This is a deliberately narrow slice of a general linear-algebra matrix
// package: only construction, bounds-checked At/Set, Clone, and String are
// provided. There is no arithmetic, no decomposition, and no graph
// adapter here — nothing in this module needs them.
package matrix
