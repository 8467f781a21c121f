// Package matrix provides the dense 2-D numeric container the network engine
// is built on.
//
// Two method families exist side by side. Methods on *Matrix mutate the
// receiver in place; package-level functions never touch their arguments and
// return a freshly allocated result. Every binary operation checks shapes
// before it writes anything, so a failed call leaves all operands untouched.
package matrix

import (
	"fmt"
	"math/rand"
	"strings"
)

// Matrix is a rows×cols grid of float64 values stored row-major.
// The element at (i, j) lives at data[i*cols+j].
type Matrix struct {
	rows, cols int
	data       []float64
}

// New creates a zero-filled rows×cols matrix.
// It panics if either dimension is negative.
func New(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: negative dimensions %dx%d", rows, cols))
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at (i, j). It panics if the index is out of range.
func (m *Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set stores v at (i, j). It panics if the index is out of range.
func (m *Matrix) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d", i, j, m.rows, m.cols))
	}
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// RandomFill overwrites every element with a value drawn uniformly from
// [min, max). A nil rng uses the math/rand package source.
func (m *Matrix) RandomFill(rng *rand.Rand, min, max float64) {
	span := max - min
	for i := range m.data {
		var r float64
		if rng != nil {
			r = rng.Float64()
		} else {
			r = rand.Float64()
		}
		m.data[i] = r*span + min
	}
}

// Map replaces each element v at (i, j) with f(v, i, j).
func (m *Matrix) Map(f func(v float64, i, j int) float64) {
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j, v := range row {
			row[j] = f(v, i, j)
		}
	}
}

// StaticMap returns a new matrix holding f applied to every element of m.
func StaticMap(m *Matrix, f func(float64) float64) *Matrix {
	out := New(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = f(v)
	}
	return out
}

// Equal reports whether a and b have the same shape and every pair of
// elements differs by at most tol.
func Equal(a, b *Matrix, tol float64) bool {
	if !sameShape(a, b) {
		return false
	}
	for i, v := range a.data {
		d := v - b.data[i]
		if d > tol || d < -tol {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.cols+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
