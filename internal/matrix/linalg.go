package matrix

import "gonum.org/v1/gonum/mat"

// dense returns a gonum view sharing m's backing storage.
// gonum rejects empty shapes, so callers handle those before asking for a view.
func (m *Matrix) dense() *mat.Dense {
	return mat.NewDense(m.rows, m.cols, m.data)
}

func (m *Matrix) empty() bool {
	return m.rows == 0 || m.cols == 0
}

// MatrixProduct returns the linear-algebra product a·b, shaped
// a.Rows() × b.Cols(). It fails with ErrIncompatibleProduct unless
// a.Cols() == b.Rows(); there is no elementwise fallback.
func MatrixProduct(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, shapeErrorf("MatrixProduct", a, b, ErrIncompatibleProduct)
	}
	out := New(a.rows, b.cols)
	// an empty inner dimension sums over nothing and leaves zeros
	if a.empty() || b.empty() || out.empty() {
		return out, nil
	}
	out.dense().Mul(a.dense(), b.dense())
	return out, nil
}

// Transpose returns the m.Cols() × m.Rows() matrix with out[i][j] = m[j][i].
func Transpose(m *Matrix) *Matrix {
	out := New(m.cols, m.rows)
	if m.empty() {
		return out
	}
	out.dense().Copy(m.dense().T())
	return out
}
