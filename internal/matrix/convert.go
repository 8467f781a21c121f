package matrix

import "math"

// FromSlice packs flat into a matrix with the given column count, row-major.
// cols <= 0 means a single column. The row count is ceil(len(flat)/cols);
// slots past the end of flat and NaN entries are stored as 0.
func FromSlice(flat []float64, cols int) *Matrix {
	if cols <= 0 {
		cols = 1
	}
	rows := (len(flat) + cols - 1) / cols
	m := New(rows, cols)
	for i, v := range flat {
		if math.IsNaN(v) {
			continue
		}
		m.data[i] = v
	}
	return m
}

// ToSlice flattens m row-major into a new slice of length rows*cols.
func ToSlice(m *Matrix) []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Column returns m reshaped or cut to exactly n rows and one column:
// m is flattened, missing trailing values are 0 and extra values are dropped.
func Column(m *Matrix, n int) *Matrix {
	out := New(n, 1)
	copy(out.data, m.data)
	return out
}
