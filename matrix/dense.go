// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major float32 buffer with the explicit
//     index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/SetBlock return errors
//     instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c);
//     SetBlock: O(h*w); Diagonal: O(min(r,c)).
package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxSetBlock = "SetBlock" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix of float32 values.
//   - r,c hold dimensions (rows, cols); either may be zero (empty matrix).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>= 0; zero denotes an empty matrix)
	data []float32 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Zero rows and/or columns are legal and produce an empty matrix that keeps
// its non-zero dimension; only negative dimensions are rejected.
// Complexity: O(r*c) time and memory (zero-fill by the runtime).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape: empties are first-class, negatives are not.
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float32, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFromRows builds a Dense from a row-major literal. Every row must
// have the same length; ragged input fails with ErrShapeMismatch carrying
// both the expected and the offending row shape. An empty outer slice
// produces a legal 0×0 matrix.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float32) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}

	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	// Copy row by row; reject ragged input before touching later rows.
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, shapeMismatchf(opFromRows, 1, c, 1, len(rows[i]))
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Kept unexported so the public surface never panics on bad indices.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float32, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange. The library applies
// no numeric filtering: caller-supplied NaN/±Inf pass through unchanged.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float32) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]float32, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}
}

// SetBlock assigns src into the rectangular region whose top-left corner is
// (r0, c0). The whole window [r0:r0+src.Rows(), c0:c0+src.Cols()) must lie
// inside the receiver; otherwise ErrOutOfRange is returned and nothing is
// written. Empty src is a valid no-op placement.
// Complexity: O(h*w) for an h×w source.
func (m *Dense) SetBlock(r0, c0 int, src Matrix) error {
	if src == nil {
		return fmt.Errorf("Dense.%s(%d,%d): %w", ctxSetBlock, r0, c0, ErrNilMatrix)
	}
	h, w := src.Rows(), src.Cols()
	// Validate the full window before any write (no partial work).
	if r0 < 0 || c0 < 0 || r0+h > m.r || c0+w > m.c {
		return fmt.Errorf("Dense.%s(%d,%d,%dx%d): %w", ctxSetBlock, r0, c0, h, w, ErrOutOfRange)
	}

	// Fast path: *Dense source → per-row flat copy.
	if d, ok := src.(*Dense); ok {
		for i := 0; i < h; i++ { // iterate source rows deterministically
			copy(m.data[(r0+i)*m.c+c0:(r0+i)*m.c+c0+w], d.data[i*w:(i+1)*w])
		}

		return nil
	}

	// Generic fallback via At with fixed i→j order.
	var v float32
	var err error
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if v, err = src.At(i, j); err != nil {
				return fmt.Errorf("Dense.%s(%d,%d): %w", ctxSetBlock, r0, c0, err)
			}
			m.data[(r0+i)*m.c+(c0+j)] = v
		}
	}

	return nil
}

// Diagonal extracts the main diagonal into a fresh slice of length
// min(r, c). An empty matrix yields an empty slice.
// Complexity: O(min(r,c)).
func (m *Dense) Diagonal() []float32 {
	n := m.r
	if m.c < n {
		n = m.c
	}
	diag := make([]float32, n)
	for i := 0; i < n; i++ { // fixed i order
		diag[i] = m.data[i*m.c+i]
	}

	return diag
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float32) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// String provides a readable row-wise dump for diagnostics.
// Not for hot paths; intended for logs and debugging.
// Complexity: O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
