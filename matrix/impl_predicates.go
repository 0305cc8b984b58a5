// SPDX-License-Identifier: MIT

// Package matrix - structural predicates.
//
// Purpose:
//   - IsDiagonal: report whether a matrix is square with (near-)zero
//     off-diagonal content under the configured tolerance.
//
// Tolerance contract (intentional, documented):
//   - The check accumulates the SIGNED sum of the off-diagonal entries and
//     compares its absolute value against eps. Positive and negative
//     off-diagonal entries can therefore cancel: a matrix with +1 at (0,1)
//     and -1 at (0,2) reports diagonal. This reproduces the established
//     contract of the routine this predicate mirrors; a norm-based test
//     (Σ|·| or max-abs) would be stricter and is NOT what this function
//     promises. Callers needing strictness can tighten eps only so far —
//     the cancelling behavior is inherent to the signed sum.
package matrix

import "math"

// IsDiagonal reports whether m is square and its off-diagonal residual is
// below tolerance. Non-square input (including nil) is never diagonal.
//
// Implementation:
//   - Stage 1: nil and squareness gates; resolve options (DefaultEpsilon
//     unless WithEpsilon overrides).
//   - Stage 2: accumulate the signed off-diagonal sum — equivalent to
//     summing M − diag(M) without materialising the diagonal matrix —
//     and compare |sum| < eps.
//
// Behavior highlights:
//   - Total function: never returns an error; 0×0 is trivially diagonal.
//   - Accumulation stays in float32 to match the element type's arithmetic.
//
// Determinism:
//   - Fixed i→j order over the full square.
//
// Complexity:
//   - Time O(n²), Space O(1) — a single scalar accumulator, no D temporary.
func IsDiagonal(m Matrix, opts ...Option) bool {
	// Nil input cannot be square in any meaningful sense.
	if m == nil {
		return false
	}
	// Not square → not diagonal, immediately.
	n := m.Rows()
	if n != m.Cols() {
		return false
	}

	// Resolve tolerance from options (DefaultEpsilon = 1e-5).
	o := gatherOptions(opts...)

	// Signed off-diagonal sum; cancellation across entries is intentional.
	var sum float32

	// Fast path: *Dense → flat buffer walk skipping the diagonal offset.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		for i = 0; i < n; i++ {
			base = i * n
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				sum += d.data[base+j]
			}
		}

		return float32(math.Abs(float64(sum))) < o.eps
	}

	// Generic fallback with the same fixed order. At cannot fail inside
	// the validated square, so errors are ignored deliberately.
	var v float32
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v, _ = m.At(i, j)
			sum += v
		}
	}

	return float32(math.Abs(float64(sum))) < o.eps
}
