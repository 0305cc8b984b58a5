// Package numpycpp is a small library of dense-matrix manipulation
// primitives inspired by a familiar subset of numpy, scipy and MATLAB
// routines.
//
// 🚀 What is numpycpp?
//
//	A flat collection of pure, stateless functions over one value type —
//	a dense row-major matrix of float32 — providing:
//		• Shape operations: Reshape (data-preserving relabel)
//		• Structural predicates: IsDiagonal (tolerance-based)
//		• Concatenation: VStack, HStack (empty operands are absorbed)
//		• Block construction: BlockDiag (any arity)
//		• Kronecker product: Kron
//
// ✨ Why choose numpycpp?
//
//   - Predictable contracts – a single error kind for shape faults,
//     matched with errors.Is; no panics on user input
//   - Pure functions – inputs are borrowed read-only, outputs are always
//     freshly allocated; concurrent calls need no synchronisation
//   - Interop-ready – matrices export to gonum blas32.General so results
//     can feed BLAS kernels downstream
//
// Everything lives under a single subpackage:
//
//	matrix/ — the Dense substrate, validators, options and all kernels
//
// See matrix/doc.go and the package tests for usage patterns.
//
//	go get github.com/jiang13/numpycpp/matrix
package numpycpp
