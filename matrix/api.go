// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     implementation and never changes loop orders or numeric policy.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init by the runtime.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		_ = I.Set(i, i, 1.0) // bounds-safe after shape validation
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(r*c) zeroing. Handy to preallocate staging buffers.
func ZerosLike(m Matrix) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols())
}

// ---------- Arity facades (observationally identical to BlockDiag) ----------

// BlockDiag2 creates a block-diagonal matrix from two operands.
// Complexity: O(R*C) for the R×C result.
func BlockDiag2(a, b Matrix) (Matrix, error) { return BlockDiag(a, b) }

// BlockDiag3 creates a block-diagonal matrix from three operands.
// Complexity: O(R*C) for the R×C result.
func BlockDiag3(a, b, c Matrix) (Matrix, error) { return BlockDiag(a, b, c) }

// ---------- Aliases ----------

// ConcatRows is an alias for VStack: a stacked over b.
// Complexity: O(R*C).
func ConcatRows(a, b Matrix) (Matrix, error) { return VStack(a, b) }

// ConcatCols is an alias for HStack: a placed left of b.
// Complexity: O(R*C).
func ConcatCols(a, b Matrix) (Matrix, error) { return HStack(a, b) }

// KroneckerProduct is an alias for Kron: A ⊗ B.
// Complexity: O(m·n·p·q).
func KroneckerProduct(a, b Matrix) (Matrix, error) { return Kron(a, b) }
