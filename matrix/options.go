// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for structural predicates.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon is the tolerance used by structural predicates. IsDiagonal
// reports true when the absolute value of the signed off-diagonal residual
// sum is strictly below this threshold.
const DefaultEpsilon float32 = 1e-5

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	eps float32 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the tolerance eps used by structural predicates.
// Larger eps relaxes the IsDiagonal residual check; use judiciously.
// Panics with a stable message when eps is NaN, ±Inf or negative.
// Complexity: O(1).
func WithEpsilon(eps float32) Option {
	if math.IsNaN(float64(eps)) || math.IsInf(float64(eps), 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon.
	return func(o *Options) { o.eps = eps }
}

// ---------- Option resolution ----------

// gatherOptions applies user-provided Option setters on top of the
// documented defaults; last-writer-wins semantics. Pure function.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
