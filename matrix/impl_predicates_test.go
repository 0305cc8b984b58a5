// Package matrix_test: IsDiagonal predicate tests.
package matrix_test

import (
	"testing"

	"github.com/jiang13/numpycpp/matrix"
	"github.com/stretchr/testify/require"
)

// TestIsDiagonalTrue accepts a clean diagonal matrix.
func TestIsDiagonalTrue(t *testing.T) {
	m := mustDense(t, [][]float32{
		{2, 0, 0},
		{0, 3, 0},
		{0, 0, 4},
	})
	require.True(t, matrix.IsDiagonal(m))
}

// TestIsDiagonalOffDiagonalEntry rejects a single off-diagonal 1.
func TestIsDiagonalOffDiagonalEntry(t *testing.T) {
	m := mustDense(t, [][]float32{
		{2, 0, 0},
		{0, 3, 1},
		{0, 0, 4},
	})
	require.False(t, matrix.IsDiagonal(m))
}

// TestIsDiagonalNonSquare rejects every non-square input regardless of content.
func TestIsDiagonalNonSquare(t *testing.T) {
	m := mustDense(t, [][]float32{
		{1, 0},
		{0, 1},
		{0, 0},
	})
	require.False(t, matrix.IsDiagonal(m))
}

// TestIsDiagonalCancellingResidual documents the signed-sum contract:
// off-diagonal entries of opposite sign cancel and the matrix still
// reports diagonal.
func TestIsDiagonalCancellingResidual(t *testing.T) {
	m := mustDense(t, [][]float32{
		{5, 1, -1},
		{0, 6, 0},
		{0, 0, 7},
	})
	require.True(t, matrix.IsDiagonal(m))
}

// TestIsDiagonalToleranceBoundary pins the strict-inequality threshold:
// residuals below DefaultEpsilon pass, residuals at or above it fail.
func TestIsDiagonalToleranceBoundary(t *testing.T) {
	below := mustDense(t, [][]float32{
		{1, 1e-6},
		{0, 2},
	})
	require.True(t, matrix.IsDiagonal(below)) // 1e-6 < 1e-5

	at := mustDense(t, [][]float32{
		{1, 1e-5},
		{0, 2},
	})
	require.False(t, matrix.IsDiagonal(at)) // strict <, so 1e-5 fails
}

// TestIsDiagonalWithEpsilon verifies the tolerance override.
func TestIsDiagonalWithEpsilon(t *testing.T) {
	m := mustDense(t, [][]float32{
		{1, 1e-6},
		{0, 2},
	})

	require.True(t, matrix.IsDiagonal(m)) // default 1e-5 admits 1e-6
	require.False(t, matrix.IsDiagonal(m, matrix.WithEpsilon(1e-7)))
	require.True(t, matrix.IsDiagonal(m, matrix.WithEpsilon(1e-3)))
}

// TestIsDiagonalDegenerate covers nil and 0x0 inputs.
func TestIsDiagonalDegenerate(t *testing.T) {
	// nil is never diagonal; 0x0 is square with zero residual; 0x3 is
	// empty but non-square.
	require.False(t, matrix.IsDiagonal(nil))
	require.True(t, matrix.IsDiagonal(mustEmpty(t, 0, 0)))
	require.False(t, matrix.IsDiagonal(mustEmpty(t, 0, 3)))
}
