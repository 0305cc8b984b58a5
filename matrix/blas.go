// SPDX-License-Identifier: MIT

// Package matrix - gonum interop.
//
// Purpose:
//   - Bridge the row-major float32 Dense container to gonum's blas32
//     surface so results of this package can feed BLAS kernels (Gemm and
//     friends) without an element-type conversion.
//
// Conventions:
//   - blas32.General is row-major with an explicit Stride; a dense matrix
//     exported here always uses Stride == max(1, Cols) as gonum requires a
//     positive stride even for zero-column shapes.
//   - Both directions COPY: the exported General never aliases the Dense
//     buffer and vice versa, preserving the package-wide no-aliasing rule.
package matrix

import "gonum.org/v1/gonum/blas/blas32"

// ToBLAS32 exports m as a freshly allocated blas32.General.
//
// Implementation:
//   - Stage 1: nil guard; read shape once.
//   - Stage 2: copy the row-major buffer (flat copy for *Dense, At walk
//     otherwise) into a General with Stride = max(1, cols).
//
// Errors:
//   - ErrNilMatrix only.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToBLAS32(m Matrix) (blas32.General, error) {
	if err := ValidateNotNil(m); err != nil {
		return blas32.General{}, matrixErrorf(opToBLAS, err)
	}

	rows, cols := m.Rows(), m.Cols()
	// gonum requires Stride >= max(1, Cols) even when the matrix is empty.
	stride := cols
	if stride < 1 {
		stride = 1
	}
	g := blas32.General{
		Rows:   rows,
		Cols:   cols,
		Stride: stride,
		Data:   make([]float32, rows*cols),
	}

	// Fast path: *Dense shares the General's packed row-major layout.
	if d, ok := m.(*Dense); ok {
		copy(g.Data, d.data)

		return g, nil
	}

	// Generic fallback with fixed i→j order.
	var v float32
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return blas32.General{}, matrixErrorf(opToBLAS, err)
			}
			g.Data[i*cols+j] = v
		}
	}

	return g, nil
}

// FromBLAS32 imports a blas32.General into a fresh *Dense, honoring the
// General's Stride (rows may be padded in the source buffer).
//
// Implementation:
//   - Stage 1: validate shape (non-negative), stride (>= max(1, Cols)) and
//     that Data covers the last addressable element.
//   - Stage 2: per-row copy from the strided source into the packed Dense.
//
// Errors:
//   - ErrInvalidDimensions (negative shape), ErrShapeMismatch (stride or
//     backing-slice length inconsistent with the declared shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromBLAS32(g blas32.General) (*Dense, error) {
	if g.Rows < 0 || g.Cols < 0 {
		return nil, matrixErrorf(opFromBLAS, ErrInvalidDimensions)
	}
	minStride := g.Cols
	if minStride < 1 {
		minStride = 1
	}
	if g.Stride < minStride {
		return nil, shapeMismatchf(opFromBLAS, g.Rows, g.Cols, g.Rows, g.Stride)
	}
	// The last addressable element is (Rows-1)*Stride + Cols - 1.
	if g.Rows > 0 && g.Cols > 0 && len(g.Data) < (g.Rows-1)*g.Stride+g.Cols {
		return nil, shapeMismatchf(opFromBLAS, g.Rows, g.Cols, 1, len(g.Data))
	}

	res, err := NewDense(g.Rows, g.Cols)
	if err != nil {
		return nil, matrixErrorf(opFromBLAS, err)
	}
	// Element-free shapes carry no data to copy; the padded source rows may
	// not even be addressable, so return before slicing.
	if g.Rows == 0 || g.Cols == 0 {
		return res, nil
	}

	// Per-row copy collapses the stride into the packed layout.
	for i := 0; i < g.Rows; i++ {
		copy(res.data[i*g.Cols:(i+1)*g.Cols], g.Data[i*g.Stride:i*g.Stride+g.Cols])
	}

	return res, nil
}
