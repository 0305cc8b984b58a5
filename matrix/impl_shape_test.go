// Package matrix_test: Reshape kernel tests.
package matrix_test

import (
	"testing"

	"github.com/jiang13/numpycpp/matrix"
	"github.com/stretchr/testify/require"
)

// TestReshapeRowMajorOrder pins the storage-order contract: elements are
// drawn in row-major linear order.
func TestReshapeRowMajorOrder(t *testing.T) {
	m := mustDense(t, [][]float32{{1, 2, 3}, {4, 5, 6}})

	r, err := matrix.Reshape(m, 3, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float32{{1, 2}, {3, 4}, {5, 6}}, rowsOf(t, r))
}

// TestReshapeRoundTrip verifies reshape(reshape(M,r,c), rows, cols) == M.
func TestReshapeRoundTrip(t *testing.T) {
	m := mustDense(t, [][]float32{{1, 2, 3, 4}, {5, 6, 7, 8}})

	mid, err := matrix.Reshape(m, 4, 2)
	require.NoError(t, err)

	back, err := matrix.Reshape(mid, 2, 4)
	require.NoError(t, err)
	require.Equal(t, rowsOf(t, m), rowsOf(t, back))
}

// TestReshapeCountMismatch ensures a disagreeing element count fails with
// ErrShapeMismatch.
func TestReshapeCountMismatch(t *testing.T) {
	m := mustDense(t, [][]float32{{1, 2}, {3, 4}})

	_, err := matrix.Reshape(m, 3, 2) // 4 elements cannot fill 6 slots
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// TestReshapeNegativeTarget ensures negative target dimensions are rejected.
func TestReshapeNegativeTarget(t *testing.T) {
	m := mustDense(t, [][]float32{{1, 2}})

	_, err := matrix.Reshape(m, -1, -2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestReshapeNil ensures a nil input is rejected with ErrNilMatrix.
func TestReshapeNil(t *testing.T) {
	_, err := matrix.Reshape(nil, 1, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestReshapePurity ensures the result never aliases the source.
func TestReshapePurity(t *testing.T) {
	m := mustDense(t, [][]float32{{1, 2}, {3, 4}})

	r, err := matrix.Reshape(m, 1, 4)
	require.NoError(t, err)
	require.NoError(t, r.Set(0, 0, 99)) // mutate the result only

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, float32(1), orig) // source unchanged
}

// TestReshapeEmpty verifies zero-element shapes reshape freely between each other.
func TestReshapeEmpty(t *testing.T) {
	m := mustEmpty(t, 0, 5)

	r, err := matrix.Reshape(m, 5, 0)
	require.NoError(t, err)
	require.Equal(t, 5, r.Rows())
	require.Equal(t, 0, r.Cols())
}
