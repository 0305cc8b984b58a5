// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating nil/shape checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	return nil
}

// ValidateBinaryNotNil — composite: NotNil(a) → NotNil(b).
// Errors: ErrNilMatrix. Complexity: O(1).
func ValidateBinaryNotNil(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinaryNotNil", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinaryNotNil", err)
	}

	return nil
}

// ValidateReshapeCount checks that a rows×cols target holds exactly the
// element count of m. Assumes m non-nil and rows, cols ≥ 0 (callers ensure).
// Returns plain ErrShapeMismatch; kernels wrap it with both shapes.
// Complexity: O(1).
func ValidateReshapeCount(m Matrix, rows, cols int) error {
	if rows*cols != m.Rows()*m.Cols() {
		return ErrShapeMismatch
	}

	return nil
}
