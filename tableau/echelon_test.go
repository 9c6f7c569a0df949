package tableau_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qflowlabs/choidataflow/pauli"
	"github.com/qflowlabs/choidataflow/tableau"
)

func TestRowMult_XorsZAndX(t *testing.T) {
	tb, _ := tableau.New(2)
	a, _ := pauli.NewZ(2, 0)
	b, _ := pauli.NewX(2, 1)
	require.NoError(t, tb.AddRow(a))
	require.NoError(t, tb.AddRow(b))

	require.NoError(t, tb.RowMult(0, 1, 0))
	zs, xs, _ := func() (z, x []bool, s bool) {
		r := tb.Rows[1]
		for q := 0; q < tb.NbQubits; q++ {
			zb, _ := r.Z.Get(q)
			xb, _ := r.X.Get(q)
			z = append(z, zb)
			x = append(x, xb)
		}

		return z, x, r.Sign
	}()
	assert.True(t, zs[0])
	assert.True(t, xs[1])
}

func TestRowMult_RowOutOfRange(t *testing.T) {
	tb, _ := tableau.New(1)
	assert.ErrorIs(t, tb.RowMult(0, 1, 0), tableau.ErrRowOutOfRange)
}

func TestRowMult_CoeffFlipsSign(t *testing.T) {
	tb, _ := tableau.New(1)
	a, _ := pauli.New(1)
	b, _ := pauli.New(1)
	require.NoError(t, tb.AddRow(a))
	require.NoError(t, tb.AddRow(b))

	require.NoError(t, tb.RowMult(0, 1, 1))
	assert.True(t, tb.Rows[1].Sign)
}

func TestEchelon_PivotsAndEliminates(t *testing.T) {
	tb, _ := tableau.New(2)
	r0, _ := pauli.NewZ(2, 0)
	r1, _ := pauli.NewZ(2, 0)
	require.NoError(t, tb.AddRow(r0))
	require.NoError(t, tb.AddRow(r1))

	require.NoError(t, tb.Echelon([]tableau.Coord{{Col: 0, IsX: false}}))

	z1, _ := tb.Rows[1].Z.Get(0)
	assert.False(t, z1, "second row sharing the pivot coordinate must be eliminated")
}

func TestEchelon_UnconstrainedCoordinateLeavesPivotUnadvanced(t *testing.T) {
	tb, _ := tableau.New(2)
	r0, _ := pauli.NewX(2, 0)
	require.NoError(t, tb.AddRow(r0))

	err := tb.Echelon([]tableau.Coord{{Col: 1, IsX: false}, {Col: 0, IsX: true}})
	require.NoError(t, err)

	x0, _ := tb.Rows[0].X.Get(0)
	assert.True(t, x0)
}

func TestEchelon_ColumnOutOfRange(t *testing.T) {
	tb, _ := tableau.New(1)
	err := tb.Echelon([]tableau.Coord{{Col: 9, IsX: false}})
	assert.ErrorIs(t, err, tableau.ErrColumnOutOfRange)
}

func TestProject_DropsRowsRetainingProjectedCoordinate(t *testing.T) {
	tb, _ := tableau.New(2)
	keep, _ := pauli.NewZ(2, 1)
	drop, _ := pauli.NewZ(2, 0)
	require.NoError(t, tb.AddRow(keep))
	require.NoError(t, tb.AddRow(drop))

	require.NoError(t, tb.Project([]tableau.Coord{{Col: 0, IsX: false}}))

	assert.Len(t, tb.Rows, 1)
	z1, _ := tb.Rows[0].Z.Get(1)
	assert.True(t, z1)
}

func TestProject_KeepsIdentityRow(t *testing.T) {
	tb, _ := tableau.New(1)
	id, _ := pauli.New(1)
	require.NoError(t, tb.AddRow(id))

	require.NoError(t, tb.Project([]tableau.Coord{{Col: 0, IsX: false}, {Col: 0, IsX: true}}))
	assert.Len(t, tb.Rows, 1)
}
