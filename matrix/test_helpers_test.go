// SPDX-License-Identifier: MIT

// Package matrix_test: shared fixtures and small helpers for the matrix
// package tests. Helpers fail the calling test on unexpected errors so the
// test bodies stay focused on behavior.
package matrix_test

import (
	"testing"

	"github.com/jiang13/numpycpp/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense from a row-major literal, failing the test on error.
func mustDense(t *testing.T, rows [][]float32) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// mustEmpty builds an empty (or any zero-filled) matrix with the given shape.
func mustEmpty(t *testing.T, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	return m
}

// rowsOf extracts the full contents of m as a row-major literal for
// require.Equal comparisons against expected fixtures.
func rowsOf(t *testing.T, m matrix.Matrix) [][]float32 {
	t.Helper()
	out := make([][]float32, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		out[i] = make([]float32, m.Cols())
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}
