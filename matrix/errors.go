// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors and the shared
// wrapping helpers used across the matrix package. All kernels MUST return
// these sentinels and tests MUST check them via errors.Is. No kernel panics
// on user-triggered error conditions; panics are reserved for programmer
// errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrShapeMismatch is the single user-facing fault kind for incompatible
	// dimensions: Reshape with a disagreeing element count, VStack/HStack
	// with disagreeing cross-axis counts, ragged row literals. Call sites
	// wrap it with both offending shapes.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrInvalidDimensions indicates a negative row or column count was
	// requested from a constructor. Zero dimensions are legal (empty matrix).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) or a block
	// window is outside valid bounds. Public indexers MUST return this,
	// not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix operand was passed to an
	// operation.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opReshape   = "Reshape"
	opVStack    = "VStack"
	opHStack    = "HStack"
	opBlockDiag = "BlockDiag"
	opKron      = "Kron"
	opFromRows  = "NewDenseFromRows"
	opFromBLAS  = "FromBLAS32"
	opToBLAS    = "ToBLAS32"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// sentinel via %w so errors.Is keeps matching. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeMismatchf builds the canonical ErrShapeMismatch wrapper carrying the
// operation tag and both offending shapes. Callers recover the kind with
// errors.Is(err, ErrShapeMismatch) and the shapes from the message.
func shapeMismatchf(tag string, ar, ac, br, bc int) error {
	return fmt.Errorf("%s: %dx%d vs %dx%d: %w", tag, ar, ac, br, bc, ErrShapeMismatch)
}

// denseErrorf wraps an underlying error with Dense method context and the
// callsite coordinates, e.g. "Dense.At(3,0): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
