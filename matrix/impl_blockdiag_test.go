// Package matrix_test: BlockDiag kernel tests.
package matrix_test

import (
	"testing"

	"github.com/jiang13/numpycpp/matrix"
	"github.com/stretchr/testify/require"
)

// TestBlockDiagBinary assembles two blocks along the diagonal.
func TestBlockDiagBinary(t *testing.T) {
	a := mustDense(t, [][]float32{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float32{{5}})

	r, err := matrix.BlockDiag(a, b)
	require.NoError(t, err)

	expected := [][]float32{
		{1, 2, 0},
		{3, 4, 0},
		{0, 0, 5},
	}
	require.Equal(t, expected, rowsOf(t, r))
}

// TestBlockDiagTernary assembles three blocks along the diagonal.
func TestBlockDiagTernary(t *testing.T) {
	a := mustDense(t, [][]float32{{1}})
	b := mustDense(t, [][]float32{{2, 3}, {4, 5}})
	c := mustDense(t, [][]float32{{6}})

	r, err := matrix.BlockDiag(a, b, c)
	require.NoError(t, err)

	expected := [][]float32{
		{1, 0, 0, 0},
		{0, 2, 3, 0},
		{0, 4, 5, 0},
		{0, 0, 0, 6},
	}
	require.Equal(t, expected, rowsOf(t, r))
}

// TestBlockDiagArityFacades ensures BlockDiag2/BlockDiag3 are observationally
// identical to the variadic form.
func TestBlockDiagArityFacades(t *testing.T) {
	a := mustDense(t, [][]float32{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float32{{5}})
	c := mustDense(t, [][]float32{{6, 7}})

	variadic, err := matrix.BlockDiag(a, b)
	require.NoError(t, err)
	binary, err := matrix.BlockDiag2(a, b)
	require.NoError(t, err)
	require.Equal(t, rowsOf(t, variadic), rowsOf(t, binary))

	variadic, err = matrix.BlockDiag(a, b, c)
	require.NoError(t, err)
	ternary, err := matrix.BlockDiag3(a, b, c)
	require.NoError(t, err)
	require.Equal(t, rowsOf(t, variadic), rowsOf(t, ternary))
}

// TestBlockDiagZeroDimensionOperand verifies degenerate operands shift the
// diagonal cursor along one axis and place nothing (zero-padded placement).
func TestBlockDiagZeroDimensionOperand(t *testing.T) {
	a := mustDense(t, [][]float32{{1, 2}, {3, 4}})
	b := mustEmpty(t, 0, 3) // contributes three columns, no rows

	r, err := matrix.BlockDiag(a, b)
	require.NoError(t, err)

	expected := [][]float32{
		{1, 2, 0, 0, 0},
		{3, 4, 0, 0, 0},
	}
	require.Equal(t, expected, rowsOf(t, r))
}

// TestBlockDiagNoOperands verifies the zero-arity call yields the 0x0 empty.
func TestBlockDiagNoOperands(t *testing.T) {
	r, err := matrix.BlockDiag()
	require.NoError(t, err)
	require.Equal(t, 0, r.Rows())
	require.Equal(t, 0, r.Cols())
}

// TestBlockDiagNil ensures nil operands are rejected with ErrNilMatrix.
func TestBlockDiagNil(t *testing.T) {
	_, err := matrix.BlockDiag(mustDense(t, [][]float32{{1}}), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestBlockDiagOfScalarsIsDiagonal verifies the diagonality property for
// 1x1 blocks and the exact-zero off-diagonal region in general.
func TestBlockDiagOfScalarsIsDiagonal(t *testing.T) {
	d1 := mustDense(t, [][]float32{{7}})
	d2 := mustDense(t, [][]float32{{-3}})

	r, err := matrix.BlockDiag(d1, d2)
	require.NoError(t, err)
	require.True(t, matrix.IsDiagonal(r))

	// Off-diagonal entries are exactly 0.0, not merely within tolerance.
	v, err := r.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, float32(0), v)
	v, err = r.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, float32(0), v)
}
