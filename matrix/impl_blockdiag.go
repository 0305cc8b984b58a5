// SPDX-License-Identifier: MIT

// Package matrix - block-diagonal assembly.
//
// Purpose:
//   - BlockDiag: build a matrix with the operands placed sequentially along
//     the main diagonal and exact 0.0 everywhere else.
//
// Strategy:
//   - Zero-fill-then-place: one allocation of the final shape, then one
//     block write per operand. The off-diagonal region is never touched,
//     so it stays exactly zero.
package matrix

// BlockDiag creates a block-diagonal matrix from the provided matrices.
// With operands M₁..M_k the result has shape (Σ rows) × (Σ cols) and M_i is
// placed at offset (Σ_{j<i} rows, Σ_{j<i} cols).
//
// Implementation:
//   - Stage 1: nil-guard every operand and accumulate the final shape.
//   - Stage 2: allocate the zero result once; place each operand with a
//     single SetBlock in input order.
//
// Behavior highlights:
//   - Degenerate operands with zero rows or columns are valid; they shift
//     the diagonal cursor along one axis and place nothing.
//   - No arity limit; BlockDiag() with no operands yields the 0×0 empty.
//
// Errors:
//   - ErrNilMatrix only; the operation is total over valid matrices.
//
// Complexity:
//   - Time O(R*C) for the R×C result, Space O(R*C).
func BlockDiag(ms ...Matrix) (Matrix, error) {
	// Accumulate the final shape while guarding nil operands.
	var rows, cols int
	for _, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return nil, matrixErrorf(opBlockDiag, err)
		}
		rows += m.Rows()
		cols += m.Cols()
	}

	// One zero-filled allocation of the final shape.
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opBlockDiag, err)
	}

	// Walk the diagonal cursor and place each operand.
	var r0, c0 int
	for _, m := range ms {
		if err = res.SetBlock(r0, c0, m); err != nil {
			return nil, matrixErrorf(opBlockDiag, err)
		}
		r0 += m.Rows()
		c0 += m.Cols()
	}

	return res, nil
}
