package tableau

import (
	"fmt"

	"github.com/qflowlabs/choidataflow/pauli"
)

// Coord identifies one tableau coordinate: column col's Z bit (IsX == false)
// or X bit (IsX == true). Used to parameterize Echelon/Project over the
// subset of coordinates a caller cares about.
type Coord struct {
	Col int
	IsX bool
}

func coordBit(row *pauli.PauliProduct, c Coord) (bool, error) {
	if c.IsX {
		return row.X.Get(c.Col)
	}

	return row.Z.Get(c.Col)
}

// RowMult computes i^coeff · row[rr] · row[rw] in place into row[rw]:
// the Z and X bit-vectors are XORed, and the sign is the XOR of both input
// signs with a parity correction over positions where row[rr] has X=1 and
// row[rw] has Z=1 but not the reverse, plus coeff mod 2.
func (t *ChoiTableau) RowMult(rr, rw, coeff int) error {
	if err := t.checkRow(rr); err != nil {
		return fmt.Errorf("tableau.RowMult: %w", err)
	}
	if err := t.checkRow(rw); err != nil {
		return fmt.Errorf("tableau.RowMult: %w", err)
	}
	a, b := t.Rows[rr], t.Rows[rw]

	parity := false
	for i := 0; i < t.NbQubits; i++ {
		axi, _ := a.X.Get(i)
		bzi, _ := b.Z.Get(i)
		bxi, _ := b.X.Get(i)
		azi, _ := a.Z.Get(i)
		cond1 := axi && bzi
		cond2 := bxi && azi
		if cond1 && !cond2 {
			parity = !parity
		}
	}

	newSign := a.Sign != b.Sign
	newSign = newSign != parity
	if coeff%2 != 0 {
		newSign = !newSign
	}

	if err := b.Z.Xor(a.Z); err != nil {
		return fmt.Errorf("tableau.RowMult: %w", err)
	}
	if err := b.X.Xor(a.X); err != nil {
		return fmt.Errorf("tableau.RowMult: %w", err)
	}
	b.Sign = newSign

	return nil
}

// Echelon performs Gaussian elimination over GF(2) with respect to the given
// coordinates, taken in order: for each coordinate, find an unpivoted row
// with a 1 there, move it to the next pivot position, and eliminate that
// coordinate from every other row via RowMult. A coordinate with no
// remaining 1 among unpivoted rows is left unconstrained. Coordinates not
// named in colOrder are untouched.
func (t *ChoiTableau) Echelon(colOrder []Coord) error {
	pivot := 0
	for _, c := range colOrder {
		if err := t.checkCol(c.Col); err != nil {
			return fmt.Errorf("tableau.Echelon: %w", err)
		}

		found := -1
		for r := pivot; r < len(t.Rows); r++ {
			bit, err := coordBit(t.Rows[r], c)
			if err != nil {
				return fmt.Errorf("tableau.Echelon: %w", err)
			}
			if bit {
				found = r
				break
			}
		}
		if found == -1 {
			continue
		}
		t.Rows[pivot], t.Rows[found] = t.Rows[found], t.Rows[pivot]

		for j := 0; j < len(t.Rows); j++ {
			if j == pivot {
				continue
			}
			bit, err := coordBit(t.Rows[j], c)
			if err != nil {
				return fmt.Errorf("tableau.Echelon: %w", err)
			}
			if bit {
				if err := t.RowMult(pivot, j, 0); err != nil {
					return fmt.Errorf("tableau.Echelon: %w", err)
				}
			}
		}
		pivot++
	}

	return nil
}

// Project echelon-reduces over cols, then drops every row that retains a 1
// in any of the cols coordinates — the stabilizers that fail to commute with
// the unknown operation on those columns.
func (t *ChoiTableau) Project(cols []Coord) error {
	if err := t.Echelon(cols); err != nil {
		return fmt.Errorf("tableau.Project: %w", err)
	}

	kept := make([]*pauli.PauliProduct, 0, len(t.Rows))
	for _, row := range t.Rows {
		retained := false
		for _, c := range cols {
			bit, err := coordBit(row, c)
			if err != nil {
				return fmt.Errorf("tableau.Project: %w", err)
			}
			if bit {
				retained = true
				break
			}
		}
		if !retained {
			kept = append(kept, row)
		}
	}
	t.Rows = kept

	return nil
}
