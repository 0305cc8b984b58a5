// SPDX-License-Identifier: MIT

// Package matrix - shape kernels.
//
// Purpose:
//   - Reshape: give a matrix a new shape without changing its data.
//
// Storage-order contract:
//   - The substrate is row-major, so Reshape relabels the flat ROW-MAJOR
//     buffer: element (i,j) of the result is the element of the source at
//     the same row-major linear index. This ordering is pinned and is part
//     of the public contract; column-major environments produce a different
//     permutation for non-trivial reshapes.
package matrix

// Reshape returns a rows×cols matrix whose elements are drawn from m in
// row-major linear order.
//
// Implementation:
//   - Stage 1: validate m non-nil, rows/cols non-negative, and the element
//     count product (rows*cols == m.Rows()*m.Cols()).
//   - Stage 2: allocate the result; *Dense fast path is a single flat copy,
//     the interface fallback walks linear indices with fixed order.
//
// Behavior highlights:
//   - Pure: the result never aliases m (even in the fast path the buffer
//     is freshly copied).
//   - Empty matrices reshape freely between any zero-element shapes
//     (e.g. 0×5 → 5×0).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrInvalidDimensions (negative target),
//     ErrShapeMismatch (element count disagreement, wrapped with both shapes).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the fresh result.
func Reshape(m Matrix, rows, cols int) (Matrix, error) {
	// Validate presence and target sanity.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReshape, err)
	}
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opReshape, ErrInvalidDimensions)
	}
	// Element counts must agree exactly; wrap with both shapes.
	if err := ValidateReshapeCount(m, rows, cols); err != nil {
		return nil, shapeMismatchf(opReshape, m.Rows(), m.Cols(), rows, cols)
	}

	// Allocate the result with the validated shape.
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opReshape, err)
	}

	// Fast path: *Dense source → the relabel is a single flat copy.
	if d, ok := m.(*Dense); ok {
		copy(res.data, d.data)

		return res, nil
	}

	// Generic fallback: walk the shared row-major linear index space.
	mc := m.Cols()
	n := rows * cols
	var v float32
	for k := 0; k < n; k++ { // deterministic 0..n-1
		if v, err = m.At(k/mc, k%mc); err != nil {
			return nil, matrixErrorf(opReshape, err)
		}
		res.data[k] = v
	}

	return res, nil
}
