package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qflowlabs/choidataflow/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_SetAt(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	assert.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	assert.NoError(t, m.Set(0, 2, 1))
	v, err := m.At(0, 2)
	assert.NoError(t, err)
	assert.Equal(t, float64(1), v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(-1, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestDense_Clone(t *testing.T) {
	m, _ := matrix.NewDense(1, 2)
	_ = m.Set(0, 0, 5)
	cp := m.Clone()
	_ = m.Set(0, 0, 9)

	v, _ := cp.At(0, 0)
	assert.Equal(t, float64(5), v)
}

func TestDense_String(t *testing.T) {
	m, _ := matrix.NewDense(1, 2)
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 0)
	assert.Equal(t, "[1, 0]\n", m.String())
}
