package tableau

import (
	"fmt"

	"github.com/qflowlabs/choidataflow/matrix"
	"github.com/qflowlabs/choidataflow/pauli"
)

// ChoiTableau is a set of Pauli stabilizer relations over N columns: a
// row-major binary symplectic tableau representing the Choi state of a
// circuit skeleton.
//
// Invariants: every row has width NbQubits; rows are assumed to pairwise
// commute; row ordering is observable only during Echelon/Project.
type ChoiTableau struct {
	NbQubits int
	Rows     []*pauli.PauliProduct
}

// New returns an empty tableau over n columns (zero rows).
func New(n int) (*ChoiTableau, error) {
	if n < 0 {
		return nil, fmt.Errorf("tableau.New(%d): %w", n, ErrColumnOutOfRange)
	}

	return &ChoiTableau{NbQubits: n}, nil
}

func (t *ChoiTableau) checkCol(q int) error {
	if q < 0 || q >= t.NbQubits {
		return fmt.Errorf("tableau: column %d (width %d): %w", q, t.NbQubits, ErrColumnOutOfRange)
	}

	return nil
}

func (t *ChoiTableau) checkRow(r int) error {
	if r < 0 || r >= len(t.Rows) {
		return fmt.Errorf("tableau: row %d (nb_rows %d): %w", r, len(t.Rows), ErrRowOutOfRange)
	}

	return nil
}

// AddCol appends a zero column to every existing row and returns the new
// column's index (the tableau's width before the call).
func (t *ChoiTableau) AddCol() int {
	idx := t.NbQubits
	for _, r := range t.Rows {
		r.Z.Append(false)
		r.X.Append(false)
	}
	t.NbQubits++

	return idx
}

// AddRow validates row's width against NbQubits and appends an independent
// copy of it.
func (t *ChoiTableau) AddRow(row *pauli.PauliProduct) error {
	if row.Width() != t.NbQubits {
		return fmt.Errorf("tableau.AddRow: row width %d, tableau width %d: %w", row.Width(), t.NbQubits, ErrWidthMismatch)
	}
	t.Rows = append(t.Rows, row.Clone())

	return nil
}

// DropCol removes column col from every row and decrements NbQubits,
// shifting every higher column index down by one. Used when a qubit is
// freed and its tableau column goes out of scope.
func (t *ChoiTableau) DropCol(col int) error {
	if err := t.checkCol(col); err != nil {
		return fmt.Errorf("tableau.DropCol: %w", err)
	}
	for _, r := range t.Rows {
		if err := r.Z.RemoveAt(col); err != nil {
			return fmt.Errorf("tableau.DropCol: %w", err)
		}
		if err := r.X.RemoveAt(col); err != nil {
			return fmt.Errorf("tableau.DropCol: %w", err)
		}
	}
	t.NbQubits--

	return nil
}

// Clone returns an independent deep copy of the tableau.
func (t *ChoiTableau) Clone() *ChoiTableau {
	rows := make([]*pauli.PauliProduct, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = r.Clone()
	}

	return &ChoiTableau{NbQubits: t.NbQubits, Rows: rows}
}

// ToDense renders the tableau as a 2·NbRows × (NbQubits+1) matrix of 0/1
// floats for inspection: row 2i holds stabilizer i's Z bits (plus its sign in
// the trailing column), row 2i+1 holds its X bits (trailing column 0).
func (t *ChoiTableau) ToDense() (*matrix.Dense, error) {
	d, err := matrix.NewDense(2*len(t.Rows), t.NbQubits+1)
	if err != nil {
		return nil, fmt.Errorf("tableau.ToDense: %w", err)
	}
	for i, r := range t.Rows {
		for q := 0; q < t.NbQubits; q++ {
			z, err := r.Z.Get(q)
			if err != nil {
				return nil, fmt.Errorf("tableau.ToDense: %w", err)
			}
			x, err := r.X.Get(q)
			if err != nil {
				return nil, fmt.Errorf("tableau.ToDense: %w", err)
			}
			if z {
				_ = d.Set(2*i, q, 1)
			}
			if x {
				_ = d.Set(2*i+1, q, 1)
			}
		}
		if r.Sign {
			_ = d.Set(2*i, t.NbQubits, 1)
		}
	}

	return d, nil
}

func bxor(a, b bool) bool { return a != b }
