package pauli

import (
	"fmt"

	"github.com/qflowlabs/choidataflow/bitvec"
)

// PauliProduct is one stabilizer row over N columns: the tensor product
// ∏ᵢ (±) Zᵢ^{z[i]} Xᵢ^{x[i]}, with Y on column i encoded by setting both
// Z[i] and X[i]. Sign true means the overall phase is negative.
type PauliProduct struct {
	Z    *bitvec.BitVector
	X    *bitvec.BitVector
	Sign bool
}

// New returns an identity PauliProduct (all-zero Z/X) over n columns.
func New(n int) (*PauliProduct, error) {
	z, err := bitvec.New(n)
	if err != nil {
		return nil, fmt.Errorf("pauli.New(%d): %w", n, err)
	}
	x, err := bitvec.New(n)
	if err != nil {
		return nil, fmt.Errorf("pauli.New(%d): %w", n, err)
	}

	return &PauliProduct{Z: z, X: x}, nil
}

// Width reports the number of columns. Panics if Z and X widths disagree,
// which indicates a previously-broken invariant rather than caller error.
func (p *PauliProduct) Width() int {
	if p.Z.Len() != p.X.Len() {
		panic(fmt.Sprintf("pauli: Z width %d != X width %d", p.Z.Len(), p.X.Len()))
	}

	return p.Z.Len()
}

// Clone returns an independent deep copy.
func (p *PauliProduct) Clone() *PauliProduct {
	return &PauliProduct{Z: p.Z.Clone(), X: p.X.Clone(), Sign: p.Sign}
}

// singleColumn builds a width-n PauliProduct with the given bits set at col.
func singleColumn(n, col int, z, x bool) (*PauliProduct, error) {
	p, err := New(n)
	if err != nil {
		return nil, err
	}
	if err := p.Z.Set(col, z); err != nil {
		return nil, fmt.Errorf("pauli.singleColumn: %w", err)
	}
	if err := p.X.Set(col, x); err != nil {
		return nil, fmt.Errorf("pauli.singleColumn: %w", err)
	}

	return p, nil
}

// NewZ returns width-n Z_col.
func NewZ(n, col int) (*PauliProduct, error) { return singleColumn(n, col, true, false) }

// NewX returns width-n X_col.
func NewX(n, col int) (*PauliProduct, error) { return singleColumn(n, col, false, true) }

// NewY returns width-n Y_col (both Z and X bits set at col).
func NewY(n, col int) (*PauliProduct, error) { return singleColumn(n, col, true, true) }

// pairColumns builds a width-n PauliProduct with the given bits set at both
// col0 and col1 (e.g. Z_col0 · Z_col1, the identity-coupling row shape used
// throughout the dataflow engine).
func pairColumns(n, col0, col1 int, z, x bool) (*PauliProduct, error) {
	p, err := singleColumn(n, col0, z, x)
	if err != nil {
		return nil, err
	}
	if err := p.Z.Set(col1, z); err != nil {
		return nil, fmt.Errorf("pauli.pairColumns: %w", err)
	}
	if err := p.X.Set(col1, x); err != nil {
		return nil, fmt.Errorf("pauli.pairColumns: %w", err)
	}

	return p, nil
}

// NewZZ returns width-n Z_col0 · Z_col1.
func NewZZ(n, col0, col1 int) (*PauliProduct, error) { return pairColumns(n, col0, col1, true, false) }

// NewXX returns width-n X_col0 · X_col1.
func NewXX(n, col0, col1 int) (*PauliProduct, error) { return pairColumns(n, col0, col1, false, true) }

// NewYY returns width-n Y_col0 · Y_col1 (both Z and X bits set at both
// columns), the commuting-Pauli row used for Ry boundary nodes.
func NewYY(n, col0, col1 int) (*PauliProduct, error) { return pairColumns(n, col0, col1, true, true) }
