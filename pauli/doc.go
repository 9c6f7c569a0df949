// Package pauli defines PauliProduct, one row of a stabilizer tableau: a
// tensor product of Pauli operators over N columns, encoded as paired
// Z/X bit-vectors plus a sign bit (Y = iXZ is represented by setting both
// the Z and X bit for that column).
package pauli
