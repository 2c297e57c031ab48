// File: dense.go
// Role: row-major float64 storage with a safe public surface.
//
// The buffer is flat (offset = i*cols + j) for cache-friendly batch reads;
// At/Set return errors instead of panicking, and all traversals use fixed
// loop order so output is deterministic.
package state

import (
	"fmt"
	"strings"
)

// Dense is a concrete row-major matrix: r×c values in one contiguous buffer.
type Dense struct {
	r, c int
	data []float64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense allocates an r×c zero matrix.
// Returns ErrBadShape unless rows > 0 and cols > 0. Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf bounds-checks (row, col) and computes the flat offset.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col). Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return fmt.Errorf("Dense.Set(%d,%d): %w", row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of one row. Complexity: O(c).
func (m *Dense) Row(row int) ([]float64, error) {
	if row < 0 || row >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", row, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[row*m.c:(row+1)*m.c])

	return out, nil
}

// Clone returns an independent deep copy. Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Do visits each element in row-major order and stops early when f returns
// false. Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders rows as bracketed comma-separated lines, for diagnostics.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[base+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
