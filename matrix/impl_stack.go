// SPDX-License-Identifier: MIT

// Package matrix - concatenation kernels.
//
// Purpose:
//   - VStack: stack two matrices in sequence vertically (a on top).
//   - HStack: stack two matrices in sequence horizontally (a on the left).
//
// Empty-operand policy:
//   - An operand that is empty along the concatenation axis is absorbed:
//     the result is a fresh copy of the other operand.
//   - When BOTH operands are empty along the concatenation axis, their
//     cross-axis counts must still agree; silent preference of one count
//     is disallowed and the kernels fail with ErrShapeMismatch.
package matrix

// copyOf materializes any Matrix into a fresh *Dense of the same shape.
// Used by the stack kernels for the absorption paths so every output is a
// newly owned buffer. Complexity: O(r*c).
func copyOf(m Matrix) (*Dense, error) {
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	// Whole-matrix block placement at the origin.
	if err = res.SetBlock(0, 0, m); err != nil {
		return nil, err
	}

	return res, nil
}

// VStack concatenates a over b, producing an (a.Rows()+b.Rows()) × n matrix.
//
// Implementation:
//   - Stage 1: nil guards; resolve the empty-operand absorption rules.
//   - Stage 2: require matching column counts; allocate and place both
//     operands with zero-copy-free block writes.
//
// Behavior highlights:
//   - a.Rows()==0 → fresh copy of b; b.Rows()==0 → fresh copy of a.
//   - Both zero-row with differing column counts → ErrShapeMismatch.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (wrapped with both shapes).
//
// Complexity:
//   - Time O((ra+rb)*n), Space O((ra+rb)*n).
func VStack(a, b Matrix) (Matrix, error) {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, matrixErrorf(opVStack, err)
	}

	// Absorption: an operand with zero rows contributes nothing, but when
	// both are row-empty the column counts must still agree.
	if a.Rows() == 0 {
		if b.Rows() == 0 && a.Cols() != b.Cols() {
			return nil, shapeMismatchf(opVStack, a.Rows(), a.Cols(), b.Rows(), b.Cols())
		}

		return copyOf(b)
	}
	if b.Rows() == 0 {
		return copyOf(a)
	}

	// Both operands are non-empty along the stacking axis.
	if a.Cols() != b.Cols() {
		return nil, shapeMismatchf(opVStack, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	// Single result allocation, then two block placements.
	res, err := NewDense(a.Rows()+b.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	if err = res.SetBlock(0, 0, a); err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	if err = res.SetBlock(a.Rows(), 0, b); err != nil {
		return nil, matrixErrorf(opVStack, err)
	}

	return res, nil
}

// HStack concatenates a beside b, producing an m × (a.Cols()+b.Cols())
// matrix; the dual of VStack under transposition.
//
// Implementation:
//   - Stage 1: nil guards; resolve the empty-operand absorption rules.
//   - Stage 2: require matching row counts; allocate and place both
//     operands side by side.
//
// Behavior highlights:
//   - a.Cols()==0 → fresh copy of b; b.Cols()==0 → fresh copy of a.
//   - Both zero-column with differing row counts → ErrShapeMismatch.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (wrapped with both shapes).
//
// Complexity:
//   - Time O(m*(ca+cb)), Space O(m*(ca+cb)).
func HStack(a, b Matrix) (Matrix, error) {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, matrixErrorf(opHStack, err)
	}

	// Absorption: an operand with zero columns contributes nothing, but
	// when both are column-empty the row counts must still agree.
	if a.Cols() == 0 {
		if b.Cols() == 0 && a.Rows() != b.Rows() {
			return nil, shapeMismatchf(opHStack, a.Rows(), a.Cols(), b.Rows(), b.Cols())
		}

		return copyOf(b)
	}
	if b.Cols() == 0 {
		return copyOf(a)
	}

	// Both operands are non-empty along the stacking axis.
	if a.Rows() != b.Rows() {
		return nil, shapeMismatchf(opHStack, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	// Single result allocation, then two block placements.
	res, err := NewDense(a.Rows(), a.Cols()+b.Cols())
	if err != nil {
		return nil, matrixErrorf(opHStack, err)
	}
	if err = res.SetBlock(0, 0, a); err != nil {
		return nil, matrixErrorf(opHStack, err)
	}
	if err = res.SetBlock(0, a.Cols(), b); err != nil {
		return nil, matrixErrorf(opHStack, err)
	}

	return res, nil
}
