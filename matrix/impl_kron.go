// SPDX-License-Identifier: MIT

// Package matrix - Kronecker product kernel.
//
// Purpose:
//   - Kron: the bilinear operation producing, from A (m×n) and B (p×q),
//     an (m·p)×(n·q) matrix whose (i,j)-th p×q block is A[i,j]·B.
package matrix

// Kron computes the Kronecker product K = A ⊗ B.
// For every (i,j) the submatrix K[i·p:(i+1)·p, j·q:(j+1)·q] equals A[i,j]·B.
//
// Implementation:
//   - Stage 1: nil guards; read shapes once; allocate the (m·p)×(n·q) zero
//     result.
//   - Stage 2: *Dense fast path scales B's rows directly into the flat
//     result buffer with row-major traversal of A and a zero-skip;
//     the interface fallback uses At/Set with the same fixed order.
//
// Behavior highlights:
//   - Total over valid matrices: any zero dimension of either operand
//     yields the corresponding zero dimension and an element-free result.
//   - Zero entries of A skip their block entirely; the result is already
//     zero-filled, so the skip is unobservable in the output.
//
// Errors:
//   - ErrNilMatrix only.
//
// Determinism:
//   - Fixed i→j order over A, then bi→bj over B.
//
// Complexity:
//   - Time O(m·n·p·q), Space O(m·p·n·q) for the result.
func Kron(a, b Matrix) (Matrix, error) {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	// Read shapes once (O(1)).
	m, n := a.Rows(), a.Cols()
	p, q := b.Rows(), b.Cols()

	// Allocate the zero result of the final shape.
	res, err := NewDense(m*p, n*q)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	resCols := n * q

	// Fast path: both *Dense → scale B's rows straight into res.data.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var av float32
			var i, j, bi, bj, dst int
			for i = 0; i < m; i++ { // row-major traversal of A
				for j = 0; j < n; j++ {
					av = da.data[i*n+j]
					if av == 0 { // block is all zeros already
						continue
					}
					for bi = 0; bi < p; bi++ { // scale one row of B per pass
						dst = (i*p+bi)*resCols + j*q
						for bj = 0; bj < q; bj++ {
							res.data[dst+bj] = av * db.data[bi*q+bj]
						}
					}
				}
			}

			return res, nil
		}
	}

	// Generic fallback via At with the same fixed traversal order.
	var av, bv float32
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opKron, err)
			}
			if av == 0 {
				continue
			}
			for bi := 0; bi < p; bi++ {
				for bj := 0; bj < q; bj++ {
					if bv, err = b.At(bi, bj); err != nil {
						return nil, matrixErrorf(opKron, err)
					}
					res.data[(i*p+bi)*resCols+(j*q+bj)] = av * bv
				}
			}
		}
	}

	return res, nil
}
