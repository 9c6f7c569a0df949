package tableau_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qflowlabs/choidataflow/pauli"
	"github.com/qflowlabs/choidataflow/tableau"
)

func rowOf(t *testing.T, tb *tableau.ChoiTableau, i int) (zs, xs []bool, sign bool) {
	t.Helper()
	r := tb.Rows[i]
	for q := 0; q < tb.NbQubits; q++ {
		z, _ := r.Z.Get(q)
		x, _ := r.X.Get(q)
		zs = append(zs, z)
		xs = append(xs, x)
	}

	return zs, xs, r.Sign
}

func TestAppendX_FlipsSignOnZ(t *testing.T) {
	tb, _ := tableau.New(1)
	row, _ := pauli.NewZ(1, 0)
	require.NoError(t, tb.AddRow(row))

	require.NoError(t, tb.AppendX(0))
	_, _, sign := rowOf(t, tb, 0)
	assert.True(t, sign)
}

func TestAppendX_ColumnOutOfRange(t *testing.T) {
	tb, _ := tableau.New(1)
	assert.ErrorIs(t, tb.AppendX(5), tableau.ErrColumnOutOfRange)
}

func TestAppendZ_FlipsSignOnX(t *testing.T) {
	tb, _ := tableau.New(1)
	row, _ := pauli.NewX(1, 0)
	require.NoError(t, tb.AddRow(row))

	require.NoError(t, tb.AppendZ(0))
	_, _, sign := rowOf(t, tb, 0)
	assert.True(t, sign)
}

func TestAppendS_MapsXToY(t *testing.T) {
	tb, _ := tableau.New(1)
	row, _ := pauli.NewX(1, 0)
	require.NoError(t, tb.AddRow(row))

	require.NoError(t, tb.AppendS(0))
	zs, xs, sign := rowOf(t, tb, 0)
	assert.True(t, zs[0])
	assert.True(t, xs[0])
	assert.False(t, sign)
}

func TestAppendV_MapsZToY(t *testing.T) {
	tb, _ := tableau.New(1)
	row, _ := pauli.NewZ(1, 0)
	require.NoError(t, tb.AddRow(row))

	require.NoError(t, tb.AppendV(0))
	zs, xs, _ := rowOf(t, tb, 0)
	assert.True(t, zs[0])
	assert.True(t, xs[0])
}

func TestAppendH_SwapsZAndX(t *testing.T) {
	tb, _ := tableau.New(1)
	row, _ := pauli.NewZ(1, 0)
	require.NoError(t, tb.AddRow(row))

	require.NoError(t, tb.AppendH(0))
	zs, xs, _ := rowOf(t, tb, 0)
	assert.False(t, zs[0])
	assert.True(t, xs[0])
}

func TestAppendCX_PropagatesX(t *testing.T) {
	tb, _ := tableau.New(2)
	row, _ := pauli.NewX(2, 0)
	require.NoError(t, tb.AddRow(row))

	require.NoError(t, tb.AppendCX(0, 1))
	_, xs, _ := rowOf(t, tb, 0)
	assert.True(t, xs[0])
	assert.True(t, xs[1], "X on control propagates to target")
}

func TestAppendCX_PropagatesZ(t *testing.T) {
	tb, _ := tableau.New(2)
	row, _ := pauli.NewZ(2, 1)
	require.NoError(t, tb.AddRow(row))

	require.NoError(t, tb.AppendCX(0, 1))
	zs, _, _ := rowOf(t, tb, 0)
	assert.True(t, zs[0], "Z on target propagates to control")
	assert.True(t, zs[1])
}

func TestAppendCX_ColumnOutOfRange(t *testing.T) {
	tb, _ := tableau.New(2)
	assert.ErrorIs(t, tb.AppendCX(0, 9), tableau.ErrColumnOutOfRange)
}

func TestAppendCZ_Symmetric(t *testing.T) {
	tb, _ := tableau.New(2)
	row, _ := pauli.NewX(2, 0)
	require.NoError(t, tb.AddRow(row))

	require.NoError(t, tb.AppendCZ(0, 1))
	zs, xs, _ := rowOf(t, tb, 0)
	assert.True(t, xs[0])
	assert.True(t, zs[1], "X on one CZ qubit induces Z on the other")
}

func TestAppendY_FixesYFlipsXAndZ(t *testing.T) {
	tb, _ := tableau.New(1)
	xRow, _ := pauli.NewX(1, 0)
	zRow, _ := pauli.NewZ(1, 0)
	yRow, _ := pauli.NewY(1, 0)
	require.NoError(t, tb.AddRow(xRow))
	require.NoError(t, tb.AddRow(zRow))
	require.NoError(t, tb.AddRow(yRow))

	require.NoError(t, tb.AppendY(0))
	_, _, s0 := rowOf(t, tb, 0)
	_, _, s1 := rowOf(t, tb, 1)
	_, _, s2 := rowOf(t, tb, 2)
	assert.True(t, s0, "Y negates X")
	assert.True(t, s1, "Y negates Z")
	assert.False(t, s2, "Y fixes Y")
}

func TestAppendSdg_IsInverseOfS(t *testing.T) {
	tb, _ := tableau.New(1)
	row, _ := pauli.NewX(1, 0)
	require.NoError(t, tb.AddRow(row))

	require.NoError(t, tb.AppendS(0))
	require.NoError(t, tb.AppendSdg(0))
	zs, xs, sign := rowOf(t, tb, 0)
	assert.False(t, zs[0])
	assert.True(t, xs[0])
	assert.False(t, sign)
}

func TestAppendVdg_IsInverseOfV(t *testing.T) {
	tb, _ := tableau.New(1)
	row, _ := pauli.NewZ(1, 0)
	require.NoError(t, tb.AddRow(row))

	require.NoError(t, tb.AppendV(0))
	require.NoError(t, tb.AppendVdg(0))
	zs, xs, sign := rowOf(t, tb, 0)
	assert.True(t, zs[0])
	assert.False(t, xs[0])
	assert.False(t, sign)
}

func TestAppendCY(t *testing.T) {
	tb, _ := tableau.New(2)
	row, _ := pauli.NewX(2, 0)
	require.NoError(t, tb.AddRow(row))

	require.NoError(t, tb.AppendCY(0, 1))
	_, xs, _ := rowOf(t, tb, 0)
	assert.True(t, xs[0])
}
