package pauli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qflowlabs/choidataflow/pauli"
)

func TestNewIsIdentity(t *testing.T) {
	p, err := pauli.New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Width())
	assert.False(t, p.Sign)
	for i := 0; i < 3; i++ {
		z, _ := p.Z.Get(i)
		x, _ := p.X.Get(i)
		assert.False(t, z)
		assert.False(t, x)
	}
}

func TestNewZXY(t *testing.T) {
	z, err := pauli.NewZ(2, 0)
	require.NoError(t, err)
	zv, _ := z.Z.Get(0)
	xv, _ := z.X.Get(0)
	assert.True(t, zv)
	assert.False(t, xv)

	x, err := pauli.NewX(2, 1)
	require.NoError(t, err)
	zv, _ = x.Z.Get(1)
	xv, _ = x.X.Get(1)
	assert.False(t, zv)
	assert.True(t, xv)

	y, err := pauli.NewY(2, 0)
	require.NoError(t, err)
	zv, _ = y.Z.Get(0)
	xv, _ = y.X.Get(0)
	assert.True(t, zv)
	assert.True(t, xv)
}

func TestNewZZXX(t *testing.T) {
	zz, err := pauli.NewZZ(4, 0, 2)
	require.NoError(t, err)
	for _, col := range []int{0, 2} {
		zv, _ := zz.Z.Get(col)
		assert.True(t, zv)
	}
	for _, col := range []int{1, 3} {
		zv, _ := zz.Z.Get(col)
		assert.False(t, zv)
	}

	xx, err := pauli.NewXX(4, 1, 3)
	require.NoError(t, err)
	for _, col := range []int{1, 3} {
		xv, _ := xx.X.Get(col)
		assert.True(t, xv)
	}

	yy, err := pauli.NewYY(4, 0, 1)
	require.NoError(t, err)
	for _, col := range []int{0, 1} {
		zv, _ := yy.Z.Get(col)
		xv, _ := yy.X.Get(col)
		assert.True(t, zv)
		assert.True(t, xv)
	}
}

func TestClone(t *testing.T) {
	p, _ := pauli.NewZ(2, 0)
	cp := p.Clone()
	_ = p.Z.Set(1, true)
	v, _ := cp.Z.Get(1)
	assert.False(t, v)
}

func TestWidthPanicsOnBrokenInvariant(t *testing.T) {
	p, _ := pauli.New(2)
	wider, _ := pauli.New(3)
	p.X = wider.X
	assert.Panics(t, func() { p.Width() })
}
