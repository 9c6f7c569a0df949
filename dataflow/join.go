package dataflow

import (
	"fmt"

	"github.com/qflowlabs/choidataflow/pauli"
	"github.com/qflowlabs/choidataflow/tableau"
)

// projectAwayNonIO marginalizes out every column of tab not named in
// ioCols, leaving only rows supported entirely on the IO columns.
func projectAwayNonIO(tab *tableau.ChoiTableau, ioCols []int) error {
	kept := make(map[int]bool, len(ioCols))
	for _, c := range ioCols {
		kept[c] = true
	}

	var coords []tableau.Coord
	for c := 0; c < tab.NbQubits; c++ {
		if !kept[c] {
			coords = append(coords, tableau.Coord{Col: c, IsX: false}, tableau.Coord{Col: c, IsX: true})
		}
	}

	return tab.Project(coords)
}

// restrictAndReorder builds a new tableau of width len(colMapping), where
// new column i takes its bits from tab's column colMapping[i]. Every row
// of tab must already have zero support outside colMapping (guaranteed by
// a prior projectAwayNonIO call over the same set).
func restrictAndReorder(tab *tableau.ChoiTableau, colMapping []int) (*tableau.ChoiTableau, error) {
	out, err := tableau.New(len(colMapping))
	if err != nil {
		return nil, fmt.Errorf("dataflow: restrictAndReorder: %w", err)
	}

	for _, row := range tab.Rows {
		newRow, err := pauli.New(len(colMapping))
		if err != nil {
			return nil, fmt.Errorf("dataflow: restrictAndReorder: %w", err)
		}
		for i, oldCol := range colMapping {
			z, err := row.Z.Get(oldCol)
			if err != nil {
				return nil, fmt.Errorf("dataflow: restrictAndReorder: %w", err)
			}
			x, err := row.X.Get(oldCol)
			if err != nil {
				return nil, fmt.Errorf("dataflow: restrictAndReorder: %w", err)
			}
			if err := newRow.Z.Set(i, z); err != nil {
				return nil, fmt.Errorf("dataflow: restrictAndReorder: %w", err)
			}
			if err := newRow.X.Set(i, x); err != nil {
				return nil, fmt.Errorf("dataflow: restrictAndReorder: %w", err)
			}
		}
		newRow.Sign = row.Sign
		if err := out.AddRow(newRow); err != nil {
			return nil, fmt.Errorf("dataflow: restrictAndReorder: %w", err)
		}
	}

	return out, nil
}

// fullColOrder returns every (col, is_x) coordinate of a width-n tableau,
// Z before X per column, the canonical order used to bring two tableaux
// to a comparable echelon form before joining.
func fullColOrder(n int) []tableau.Coord {
	coords := make([]tableau.Coord, 0, 2*n)
	for c := 0; c < n; c++ {
		coords = append(coords, tableau.Coord{Col: c, IsX: false}, tableau.Coord{Col: c, IsX: true})
	}

	return coords
}

// rowKey renders a row's Z/X bits and sign as a comparable string, used to
// detect identical rows across two independently echelon-reduced tableaux.
func rowKey(row *pauli.PauliProduct) string {
	sign := "0"
	if row.Sign {
		sign = "1"
	}

	return row.Z.String() + "|" + row.X.String() + "|" + sign
}

// joinTableaux implements §4.5 step 3 / §4.6 step 3: reduce both a and b to
// row-echelon over the full column set, then retain only rows present in
// both reduced forms (set-intersection join in GF(2)).
func joinTableaux(a, b *tableau.ChoiTableau, width int) (*tableau.ChoiTableau, error) {
	order := fullColOrder(width)
	if err := a.Echelon(order); err != nil {
		return nil, fmt.Errorf("dataflow: joinTableaux: %w", err)
	}
	if err := b.Echelon(order); err != nil {
		return nil, fmt.Errorf("dataflow: joinTableaux: %w", err)
	}

	bKeys := make(map[string]bool, len(b.Rows))
	for _, row := range b.Rows {
		bKeys[rowKey(row)] = true
	}

	out, err := tableau.New(width)
	if err != nil {
		return nil, fmt.Errorf("dataflow: joinTableaux: %w", err)
	}
	for _, row := range a.Rows {
		if bKeys[rowKey(row)] {
			if err := out.AddRow(row); err != nil {
				return nil, fmt.Errorf("dataflow: joinTableaux: %w", err)
			}
		}
	}

	return out, nil
}
