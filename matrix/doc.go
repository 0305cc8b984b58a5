// SPDX-License-Identifier: MIT

// Package matrix provides dense single-precision matrix primitives
// mirroring a familiar subset of numpy/scipy/MATLAB routines.
//
// The package exposes:
//
//   - Dense, a row-major float32 container with safe accessors, block
//     assignment (SetBlock) and diagonal extraction (Diagonal).
//   - Shape operations: Reshape — a data-preserving relabel of the flat
//     row-major buffer.
//   - Concatenation: VStack and HStack with empty-operand absorption.
//   - Block construction: BlockDiag (variadic, plus two- and three-arity
//     facades) and the Kronecker product Kron.
//   - Structural predicates: IsDiagonal with a configurable tolerance.
//   - Interop: ToBLAS32 / FromBLAS32 converters for gonum blas32.General.
//
// Every operation is a pure function: inputs are borrowed read-only and
// outputs are freshly allocated. Shape faults surface as ErrShapeMismatch
// wrapped with both offending shapes; match with errors.Is.
//
// Empty matrices (zero rows and/or zero columns) are first-class values:
// they carry no elements but keep their non-zero dimension, which is what
// makes the concatenation absorption rules well defined.
package matrix
