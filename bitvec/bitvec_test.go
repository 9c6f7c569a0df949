package bitvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qflowlabs/choidataflow/bitvec"
)

func TestNew_NegativeLength(t *testing.T) {
	_, err := bitvec.New(-1)
	assert.ErrorIs(t, err, bitvec.ErrIndexOutOfBounds)
}

func TestGetSet(t *testing.T) {
	b, err := bitvec.New(5)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		v, err := b.Get(i)
		require.NoError(t, err)
		assert.False(t, v)
	}

	require.NoError(t, b.Set(2, true))
	v, err := b.Get(2)
	require.NoError(t, err)
	assert.True(t, v)

	_, err = b.Get(5)
	assert.ErrorIs(t, err, bitvec.ErrIndexOutOfBounds)
	assert.ErrorIs(t, b.Set(-1, true), bitvec.ErrIndexOutOfBounds)
}

func TestXorAnd(t *testing.T) {
	a, _ := bitvec.New(4)
	b, _ := bitvec.New(4)
	_ = a.Set(0, true)
	_ = a.Set(1, true)
	_ = b.Set(1, true)
	_ = b.Set(2, true)

	require.NoError(t, a.Xor(b))
	v0, _ := a.Get(0)
	v1, _ := a.Get(1)
	v2, _ := a.Get(2)
	v3, _ := a.Get(3)
	assert.True(t, v0)
	assert.False(t, v1)
	assert.True(t, v2)
	assert.False(t, v3)

	c, _ := bitvec.New(3)
	assert.ErrorIs(t, a.Xor(c), bitvec.ErrLengthMismatch)
	assert.ErrorIs(t, a.And(c), bitvec.ErrLengthMismatch)
}

func TestNotMasksTail(t *testing.T) {
	b, _ := bitvec.New(3)
	b.Not()
	for i := 0; i < 3; i++ {
		v, _ := b.Get(i)
		assert.True(t, v)
	}
	assert.Equal(t, "111", b.String())
}

func TestAppendAndRemoveAt(t *testing.T) {
	b, _ := bitvec.New(0)
	idx0 := b.Append(true)
	idx1 := b.Append(false)
	idx2 := b.Append(true)
	assert.Equal(t, 0, idx0)
	assert.Equal(t, 1, idx1)
	assert.Equal(t, 2, idx2)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, "101", b.String())

	require.NoError(t, b.RemoveAt(1))
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "11", b.String())

	assert.ErrorIs(t, b.RemoveAt(9), bitvec.ErrIndexOutOfBounds)
}

func TestParity(t *testing.T) {
	b, _ := bitvec.New(130) // spans 3 words
	assert.False(t, b.Parity())
	_ = b.Set(0, true)
	assert.True(t, b.Parity())
	_ = b.Set(129, true)
	assert.False(t, b.Parity())
}

func TestClone(t *testing.T) {
	b, _ := bitvec.New(4)
	_ = b.Set(1, true)
	cp := b.Clone()
	_ = b.Set(2, true)

	v1, _ := cp.Get(1)
	v2, _ := cp.Get(2)
	assert.True(t, v1)
	assert.False(t, v2)
}

func TestFlip(t *testing.T) {
	b, _ := bitvec.New(2)
	require.NoError(t, b.Flip(0))
	v, _ := b.Get(0)
	assert.True(t, v)
	require.NoError(t, b.Flip(0))
	v, _ = b.Get(0)
	assert.False(t, v)
	assert.ErrorIs(t, b.Flip(7), bitvec.ErrIndexOutOfBounds)
}
